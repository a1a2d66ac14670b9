package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Rounded border runes.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// Frame describes a bordered panel with a title embedded in the top edge:
//
//	╭─ Title (hint) ─────╮
type Frame struct {
	Title   string
	Hint    string
	Width   int
	Height  int // 0 sizes to content
	Focused bool
}

// Render draws content inside the frame. Lines wider than the frame are
// truncated, shorter ones padded so the right edge lines up.
func (f Frame) Render(content string) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	var titleColor lipgloss.TerminalColor = OverlayTitleColor
	if f.Focused {
		borderColor = BorderHighlightFocusColor
		titleColor = BorderHighlightFocusColor
	}
	border := lipgloss.NewStyle().Foreground(borderColor)
	title := lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	inner := max(f.Width-2, 1)

	lines := strings.Split(content, "\n")
	if f.Height > 0 {
		bodyHeight := max(f.Height-2, 1)
		if len(lines) > bodyHeight {
			lines = lines[:bodyHeight]
		}
		for len(lines) < bodyHeight {
			lines = append(lines, "")
		}
	}

	var b strings.Builder
	b.WriteString(f.top(inner, border, title))
	for _, line := range lines {
		line = ansi.Truncate(line, inner, "…")
		if pad := inner - ansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		b.WriteByte('\n')
		b.WriteString(border.Render(borderVertical) + line + border.Render(borderVertical))
	}
	b.WriteByte('\n')
	b.WriteString(border.Render(borderBottomLeft + strings.Repeat(borderHorizontal, inner) + borderBottomRight))
	return b.String()
}

func (f Frame) top(inner int, border, title lipgloss.Style) string {
	// "─ " + title + " " needs at least four columns
	if f.Title == "" || inner < 4 {
		return border.Render(borderTopLeft + strings.Repeat(borderHorizontal, inner) + borderTopRight)
	}

	label := f.Title
	if f.Hint != "" {
		label += " (" + f.Hint + ")"
	}
	label = ansi.Truncate(label, inner-3, "…")
	dashes := max(inner-3-ansi.StringWidth(label), 0)

	rendered := title.Render(label)
	if f.Hint != "" && strings.HasSuffix(label, ")") {
		rendered = title.Render(f.Title) + " " + HintStyle.Render("("+f.Hint+")")
	}
	return border.Render(borderTopLeft+borderHorizontal+" ") +
		rendered +
		border.Render(" "+strings.Repeat(borderHorizontal, dashes)+borderTopRight)
}
