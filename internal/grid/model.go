package grid

import (
	"fmt"
	"slices"
	"strconv"
)

// Coord addresses a cell by local row index and column ID.
type Coord struct {
	Row int
	Col string
}

func (c Coord) String() string { return fmt.Sprintf("(%d,%s)", c.Row, c.Col) }

// Pos addresses a cell by row and column index.
type Pos struct {
	Row int
	Col int
}

// Less orders positions row-major.
func (p Pos) Less(o Pos) bool {
	if p.Row != o.Row {
		return p.Row < o.Row
	}
	return p.Col < o.Col
}

// ComparePos is a row-major comparator for slices.SortFunc.
func ComparePos(a, b Pos) int {
	switch {
	case a.Less(b):
		return -1
	case b.Less(a):
		return 1
	default:
		return 0
	}
}

// Row is one grid row.
type Row struct {
	Index    int
	RecordID string
	Values   map[string]string
}

// Model is the grid the engine edits. Columns are fixed for the life of
// the model; cell values change through SetValue.
type Model struct {
	columns    []Column
	colIndex   map[string]int
	rows       []Row
	pagination Pagination
}

// NewModel assembles a model from already canonical rows.
func NewModel(cols []Column, rows []Row, page Pagination) (*Model, error) {
	idx := make(map[string]int, len(cols))
	for i, c := range cols {
		if _, dup := idx[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.ID)
		}
		idx[c.ID] = i
	}
	for i := range rows {
		rows[i].Index = i
		if rows[i].Values == nil {
			rows[i].Values = make(map[string]string, len(cols))
		}
	}
	return &Model{
		columns:    slices.Clone(cols),
		colIndex:   idx,
		rows:       rows,
		pagination: page.Normalized(),
	}, nil
}

func (m *Model) RowCount() int { return len(m.rows) }
func (m *Model) ColCount() int { return len(m.columns) }

// Empty reports whether the grid has no addressable cell.
func (m *Model) Empty() bool { return m == nil || len(m.rows) == 0 || len(m.columns) == 0 }

// Columns returns a copy of the column list.
func (m *Model) Columns() []Column { return slices.Clone(m.columns) }

// Column returns the column at index i.
func (m *Model) Column(i int) (Column, bool) {
	if i < 0 || i >= len(m.columns) {
		return Column{}, false
	}
	return m.columns[i], true
}

// ColumnIndex returns the index of the column with id.
func (m *Model) ColumnIndex(id string) (int, bool) {
	i, ok := m.colIndex[id]
	return i, ok
}

// Row returns the row at local index i.
func (m *Model) Row(i int) (Row, bool) {
	if i < 0 || i >= len(m.rows) {
		return Row{}, false
	}
	return m.rows[i], true
}

// RecordID returns the record identifier of row i, or "" when out of range.
func (m *Model) RecordID(i int) string {
	if r, ok := m.Row(i); ok {
		return r.RecordID
	}
	return ""
}

// Pagination returns the page window the rows were built for.
func (m *Model) Pagination() Pagination { return m.pagination }

// RowLabel returns the row header text for local row i.
func (m *Model) RowLabel(i int) string {
	return strconv.Itoa(m.pagination.DisplayOrdinal(i))
}

// Contains reports whether p is inside the grid.
func (m *Model) Contains(p Pos) bool {
	return p.Row >= 0 && p.Row < len(m.rows) && p.Col >= 0 && p.Col < len(m.columns)
}

// CoordOf converts a position into a coordinate.
func (m *Model) CoordOf(p Pos) (Coord, bool) {
	if !m.Contains(p) {
		return Coord{}, false
	}
	return Coord{Row: p.Row, Col: m.columns[p.Col].ID}, true
}

// PosOf converts a coordinate into a position.
func (m *Model) PosOf(c Coord) (Pos, bool) {
	col, ok := m.colIndex[c.Col]
	if !ok || c.Row < 0 || c.Row >= len(m.rows) {
		return Pos{}, false
	}
	return Pos{Row: c.Row, Col: col}, true
}

// Value returns the canonical text at c.
func (m *Model) Value(c Coord) (string, bool) {
	p, ok := m.PosOf(c)
	if !ok {
		return "", false
	}
	return m.ValueAt(p), true
}

// ValueAt returns the canonical text at p, or "" outside the grid.
func (m *Model) ValueAt(p Pos) string {
	if !m.Contains(p) {
		return ""
	}
	col := m.columns[p.Col]
	if col.Header {
		return m.RowLabel(p.Row)
	}
	return m.rows[p.Row].Values[col.ID]
}

// Editable reports whether the cell at p accepts edits.
func (m *Model) Editable(p Pos) bool {
	if !m.Contains(p) {
		return false
	}
	return m.columns[p.Col].Editable()
}

// SetValue overwrites the text at c. It refuses non-editable cells.
func (m *Model) SetValue(c Coord, v string) error {
	p, ok := m.PosOf(c)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, c)
	}
	if !m.columns[p.Col].Editable() {
		return fmt.Errorf("%w: %s", ErrNotEditable, c)
	}
	m.rows[c.Row].Values[c.Col] = v
	return nil
}

// DataColumns returns the indexes of every non-header column in order.
func (m *Model) DataColumns() []int {
	out := make([]int, 0, len(m.columns))
	for i, c := range m.columns {
		if !c.Header {
			out = append(out, i)
		}
	}
	return out
}

// FirstDataColumn returns the index of the first non-header column.
func (m *Model) FirstDataColumn() int {
	for i, c := range m.columns {
		if !c.Header {
			return i
		}
	}
	return 0
}
