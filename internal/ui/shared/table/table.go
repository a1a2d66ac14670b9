// Package table renders a grid.Model as a spreadsheet-style table and maps
// terminal coordinates back to cells.
//
// The table is a pure render component: focus, selection and edit state
// live in the engine and reach the renderer through a CellState callback.
// The Model only tracks viewport size, scroll offsets and screen origin.
//
// Layout, top to bottom: one header line, then one line per visible row.
// Header columns (the row-number column) are pinned on the left; data
// columns scroll horizontally. Columns are separated by a one-cell gutter.
package table

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/gridline/internal/grid"
)

// gutter is the width of the separator between columns.
const gutter = 1

// Model holds viewport state for one table.
type Model struct {
	width, height int
	rowOff        int // first visible row
	colOff        int // first visible scrolling column, as an index into the data columns
	originX       int
	originY       int
	zonePrefix    string
}

// New creates a table whose cell zones are namespaced by prefix.
func New(prefix string) Model {
	return Model{zonePrefix: prefix}
}

// SetSize sets the available dimensions.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	return m
}

// Size returns the dimensions set with SetSize.
func (m Model) Size() (int, int) { return m.width, m.height }

// SetOrigin records where the table's top-left corner lands on screen so
// HitTest can take absolute mouse coordinates.
func (m Model) SetOrigin(x, y int) Model {
	m.originX, m.originY = x, y
	return m
}

// Offsets returns the first visible row and scrolling column.
func (m Model) Offsets() (row, col int) { return m.rowOff, m.colOff }

// VisibleRows is the number of data lines the viewport can show.
func (m Model) VisibleRows() int { return max(m.height-1, 0) }

// Reset scrolls back to the top-left.
func (m Model) Reset() Model {
	m.rowOff, m.colOff = 0, 0
	return m
}

// EnsureVisible scrolls the minimum amount that brings p into view.
func (m Model) EnsureVisible(g *grid.Model, p grid.Pos) Model {
	if g.Empty() {
		return m.Reset()
	}

	rows := m.VisibleRows()
	switch {
	case p.Row < m.rowOff:
		m.rowOff = p.Row
	case rows > 0 && p.Row >= m.rowOff+rows:
		m.rowOff = p.Row - rows + 1
	}
	m.rowOff = min(max(m.rowOff, 0), max(g.RowCount()-1, 0))

	col, ok := g.Column(p.Col)
	if !ok || col.Header {
		return m
	}
	data := g.DataColumns()
	idx := indexOf(data, p.Col)
	if idx < m.colOff {
		m.colOff = idx
		return m
	}
	for m.colOff < idx && !m.fits(g, data, idx) {
		m.colOff++
	}
	return m
}

// fits reports whether data column data[idx] is fully visible at the current offset.
func (m Model) fits(g *grid.Model, data []int, idx int) bool {
	x := pinnedWidth(g)
	for i := m.colOff; i <= idx; i++ {
		c, _ := g.Column(data[i])
		x += c.Width + gutter
	}
	return x-gutter <= m.width
}

// span is one rendered column's horizontal extent, relative to the table.
type span struct {
	col   int // model column index
	x     int
	width int
}

// layout returns the columns drawn at the current offset, left to right.
// The last scrolling column may be clipped to the viewport.
func (m Model) layout(g *grid.Model) []span {
	if g.Empty() || m.width == 0 {
		return nil
	}
	var out []span
	x := 0
	place := func(i int) bool {
		c, _ := g.Column(i)
		if x >= m.width {
			return false
		}
		w := min(c.Width, m.width-x)
		out = append(out, span{col: i, x: x, width: w})
		x += w + gutter
		return true
	}
	for i, c := range g.Columns() {
		if c.Header {
			place(i)
		}
	}
	data := g.DataColumns()
	for _, i := range data[min(m.colOff, len(data)):] {
		if !place(i) {
			break
		}
	}
	return out
}

// rowRange returns the half-open range of visible rows.
func (m Model) rowRange(g *grid.Model) (int, int) {
	if g.Empty() {
		return 0, 0
	}
	start := min(m.rowOff, g.RowCount())
	return start, min(start+m.VisibleRows(), g.RowCount())
}

// HitTest maps absolute screen coordinates to a cell. The header line and
// the space past the last column or row are outside the grid. A gutter
// belongs to the column on its left.
func (m Model) HitTest(g *grid.Model, x, y int) (grid.Pos, bool) {
	rx, ry := x-m.originX, y-m.originY
	if rx < 0 || ry < 1 || rx >= m.width || ry >= m.height {
		return grid.Pos{}, false
	}
	start, end := m.rowRange(g)
	row := start + ry - 1
	if row >= end {
		return grid.Pos{}, false
	}
	for _, s := range m.layout(g) {
		if rx >= s.x && rx < s.x+s.width+gutter {
			return grid.Pos{Row: row, Col: s.col}, true
		}
	}
	return grid.Pos{}, false
}

// CellAt resolves a mouse event to a cell, preferring the zones registered
// by the last zone.Scan and falling back to HitTest.
func (m Model) CellAt(g *grid.Model, msg tea.MouseMsg) (grid.Pos, bool) {
	if g.Empty() {
		return grid.Pos{}, false
	}
	start, end := m.rowRange(g)
	for _, s := range m.layout(g) {
		for r := start; r < end; r++ {
			p := grid.Pos{Row: r, Col: s.col}
			if z := zone.Get(m.CellZoneID(p)); z != nil && !z.IsZero() && z.InBounds(msg) {
				return p, true
			}
		}
	}
	return m.HitTest(g, msg.X, msg.Y)
}

// CellZoneID names the bubblezone zone wrapping a cell.
func (m Model) CellZoneID(p grid.Pos) string {
	return fmt.Sprintf("%scell-%d-%d", m.zonePrefix, p.Row, p.Col)
}

func pinnedWidth(g *grid.Model) int {
	w := 0
	for _, c := range g.Columns() {
		if c.Header {
			w += c.Width + gutter
		}
	}
	return w
}

func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return 0
}
