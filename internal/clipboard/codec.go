package clipboard

import "strings"

// Serialize renders a matrix as newline-separated rows of tab-separated
// values. Tabs and newlines inside a value become spaces so the shape survives.
func Serialize(matrix [][]string) string {
	var sb strings.Builder
	for i, row := range matrix {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, v := range row {
			if j > 0 {
				sb.WriteByte('\t')
			}
			sb.WriteString(flatten(v))
		}
	}
	return sb.String()
}

// Parse splits text into rows and cells. CRLF line endings and a single
// trailing newline are tolerated. Empty text parses to no rows.
func Parse(text string) [][]string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	out := make([][]string, len(lines))
	for i, line := range lines {
		out[i] = strings.Split(line, "\t")
	}
	return out
}

var flattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

func flatten(v string) string {
	if !strings.ContainsAny(v, "\t\r\n") {
		return v
	}
	return flattener.Replace(v)
}
