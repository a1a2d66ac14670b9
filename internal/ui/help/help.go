// Package help renders the key reference overlay shown with F1.
package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/ui/overlay"
	"github.com/zjrosen/gridline/internal/ui/styles"
)

// maxWidth caps the help box on wide terminals.
const maxWidth = 80

// groupTitles names the groups returned by KeyMap.FullHelp, in order.
var groupTitles = []string{"Navigation", "Selection", "Editing", "Paging", "General"}

// Model holds the help overlay state.
type Model struct {
	keys    keys.KeyMap
	columns []grid.Column
	style   string

	width, height int
	viewport      viewport.Model
}

// New creates a help overlay for the given bindings and schema.
func New(km keys.KeyMap, cols []grid.Column) Model {
	return Model{keys: km, columns: cols, viewport: viewport.New(0, 0)}
}

// SetStyle picks the glamour style ("dark", "light", ...).
func (m Model) SetStyle(style string) Model {
	m.style = style
	return m.refresh()
}

// SetColumns replaces the schema listed in the overlay.
func (m Model) SetColumns(cols []grid.Column) Model {
	m.columns = cols
	return m.refresh()
}

// SetSize updates the terminal dimensions and re-renders the body.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	return m.refresh()
}

func (m Model) boxSize() (int, int) {
	w := min(max(m.width-4, 20), maxWidth)
	h := max(m.height-2, 5)
	return w, h
}

func (m Model) refresh() Model {
	if m.width == 0 || m.height == 0 {
		return m
	}
	w, h := m.boxSize()
	// frame border plus one column of padding each side
	inner := w - 4
	doc := Document(m.keys, m.columns)
	body, err := render(doc, inner, m.style)
	if err != nil {
		log.ErrorErr(log.CatUI, "render help", err)
		body = doc
	}
	m.viewport.Width = inner
	m.viewport.Height = h - 2
	m.viewport.SetContent(strings.TrimRight(body, "\n"))
	return m
}

// Update scrolls the body.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the framed help box.
func (m Model) View() string {
	w, h := m.boxSize()
	h = min(h, m.viewport.TotalLineCount()+2)
	lines := strings.Split(m.viewport.View(), "\n")
	for i, l := range lines {
		lines[i] = " " + l
	}
	hint := "esc close"
	if !m.viewport.AtTop() || !m.viewport.AtBottom() {
		hint = fmt.Sprintf("↑↓ scroll · %d%%", int(m.viewport.ScrollPercent()*100))
	}
	return styles.Frame{Title: "Help", Hint: hint, Width: w, Height: h, Focused: true}.
		Render(strings.Join(lines, "\n"))
}

// Overlay centres the help box on top of bg.
func (m Model) Overlay(bg string) string {
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Document builds the markdown shown in the overlay.
func Document(km keys.KeyMap, cols []grid.Column) string {
	var b strings.Builder
	b.WriteString("# Keys\n\n")
	for i, group := range km.FullHelp() {
		title := "More"
		if i < len(groupTitles) {
			title = groupTitles[i]
		}
		fmt.Fprintf(&b, "## %s\n\n| Key | Action |\n| --- | --- |\n", title)
		for _, binding := range group {
			writeBinding(&b, binding)
		}
		b.WriteString("\n")
	}

	b.WriteString("## Mouse\n\n")
	b.WriteString("- **click** focuses a cell\n")
	b.WriteString("- **drag** selects a rectangle\n")
	b.WriteString("- **ctrl+click** toggles a cell in the selection\n")
	b.WriteString("- **shift+click** extends from the anchor\n")
	b.WriteString("- **double-click** starts editing\n\n")

	if len(cols) > 0 {
		b.WriteString("## Columns\n\n")
		for _, c := range cols {
			if c.ID == grid.RowNumberColumnID {
				continue
			}
			fmt.Fprintf(&b, "- **%s** %s", c.Title(), describeKind(c))
			if !c.Editable() {
				b.WriteString(", read-only")
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func writeBinding(b *strings.Builder, binding key.Binding) {
	h := binding.Help()
	if h.Key == "" {
		return
	}
	fmt.Fprintf(b, "| `%s` | %s |\n", h.Key, h.Desc)
}

func describeKind(c grid.Column) string {
	switch c.Kind {
	case grid.KindNumber:
		return "number"
	case grid.KindCheckbox:
		return "checkbox, true or false"
	case grid.KindStatus:
		if len(c.Options) > 0 {
			return "one of " + strings.Join(c.Options, ", ")
		}
		return "status"
	case grid.KindComposite:
		return "joins " + strings.Join(c.Parts, ", ")
	default:
		return "text"
	}
}
