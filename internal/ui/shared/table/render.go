package table

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/ui/styles"
)

// CellState is the per-cell paint information supplied by the host.
type CellState struct {
	Focused  bool
	Selected bool
	Flash    bool
	Editing  bool
	Pending  bool
}

// StateFunc reports how the cell at p should be painted.
type StateFunc func(p grid.Pos) CellState

// View renders the visible part of g. editor replaces the text of the cell
// whose state has Editing set.
func (m Model) View(g *grid.Model, state StateFunc, editor string) string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if g.Empty() {
		return m.emptyView()
	}
	if state == nil {
		state = func(grid.Pos) CellState { return CellState{} }
	}

	spans := m.layout(g)
	start, end := m.rowRange(g)
	sep := styles.GridlineStyle.Render("│")

	lines := make([]string, 0, m.height)
	lines = append(lines, m.headerLine(g, spans))
	for r := start; r < end; r++ {
		var b strings.Builder
		for i, s := range spans {
			if i > 0 {
				b.WriteString(sep)
			}
			p := grid.Pos{Row: r, Col: s.col}
			b.WriteString(zone.Mark(m.CellZoneID(p), m.cell(g, p, s.width, state(p), editor)))
		}
		lines = append(lines, b.String())
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (m Model) headerLine(g *grid.Model, spans []span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		c, _ := g.Column(s.col)
		title := c.Title()
		if c.Header {
			title = ""
		}
		parts[i] = styles.HeaderStyle.Render(fit(title, s.width, alignFor(c)))
	}
	return strings.Join(parts, styles.GridlineStyle.Render("│"))
}

func (m Model) cell(g *grid.Model, p grid.Pos, width int, st CellState, editor string) string {
	c, _ := g.Column(p.Col)

	if st.Editing {
		text := ansi.Truncate(editor, width, "")
		if pad := width - ansi.StringWidth(text); pad > 0 {
			text += strings.Repeat(" ", pad)
		}
		return styles.EditingCellStyle.Render(text)
	}

	text := fit(Display(c, g.ValueAt(p)), width, alignFor(c))
	switch {
	case st.Flash:
		return styles.FlashCellStyle.Render(text)
	case st.Focused:
		return styles.FocusCellStyle.Render(text)
	case st.Selected:
		return styles.SelectedCellStyle.Render(text)
	case c.Header:
		return styles.RowHeaderStyle.Render(text)
	case st.Pending:
		return styles.PendingMarkStyle.Render(text)
	case c.Kind == grid.KindComposite:
		parts := strings.Split(text, grid.CompositeSeparator)
		for i := range parts {
			parts[i] = styles.ReadOnlyCellStyle.Render(parts[i])
		}
		return strings.Join(parts, styles.CompositeSepStyle.Render(grid.CompositeSeparator))
	case c.ReadOnly:
		return styles.ReadOnlyCellStyle.Render(text)
	default:
		return styles.CellStyle.Render(text)
	}
}

func (m Model) emptyView() string {
	msg := styles.HintStyle.Render(fit("No records", m.width, lipgloss.Center))
	lines := make([]string, m.height)
	lines[min(m.height/2, m.height-1)] = msg
	return strings.Join(lines, "\n")
}

// Display turns a canonical value into the text drawn in the cell.
// Copy and commit always use the canonical value, never this.
func Display(c grid.Column, v string) string {
	if c.Kind == grid.KindCheckbox {
		switch v {
		case "true":
			return "[x]"
		case "false", "":
			return "[ ]"
		}
	}
	return v
}

func alignFor(c grid.Column) lipgloss.Position {
	switch {
	case c.Header, c.Kind == grid.KindNumber:
		return lipgloss.Right
	case c.Kind == grid.KindCheckbox:
		return lipgloss.Center
	default:
		return lipgloss.Left
	}
}

// fit truncates plain text to width on grapheme boundaries, adding an
// ellipsis when it cuts, and pads the rest according to align.
func fit(s string, width int, align lipgloss.Position) string {
	if width <= 0 {
		return ""
	}
	s = truncate(s, width)
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + s
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}

func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		w := g.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(g.Str())
		used += w
	}
	return b.String() + "…"
}
