package help

import "github.com/charmbracelet/glamour"

// noMarginStyle drops glamour's document margins so the text sits flush in the frame.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// render converts markdown to styled terminal text wrapped at width.
// A named style is used instead of auto detection, which queries the
// terminal and leaks the reply into the input stream.
func render(doc string, width int, style string) (string, error) {
	if style == "" {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(doc)
}
