// Package navigation computes where focus goes for a keyboard move.
// Every function is pure and never fails: moves past an edge clamp or are
// reported as no-ops.
package navigation

import "github.com/zjrosen/gridline/internal/grid"

// Bounds is the size of the navigable grid.
type Bounds struct {
	Rows int
	Cols int
}

// Empty reports whether there is no cell to focus.
func (b Bounds) Empty() bool { return b.Rows <= 0 || b.Cols <= 0 }

// Clamp pulls p inside the bounds.
func (b Bounds) Clamp(p grid.Pos) grid.Pos {
	if b.Empty() {
		return grid.Pos{}
	}
	return grid.Pos{
		Row: min(max(p.Row, 0), b.Rows-1),
		Col: min(max(p.Col, 0), b.Cols-1),
	}
}

// Direction is an arrow direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Step moves one cell in d, clamped to the grid edges.
func Step(from grid.Pos, d Direction, b Bounds) grid.Pos {
	to := from
	switch d {
	case Up:
		to.Row--
	case Down:
		to.Row++
	case Left:
		to.Col--
	case Right:
		to.Col++
	}
	return b.Clamp(to)
}

// Next moves right, wrapping to the first column of the next row.
// It reports false, leaving focus put, on the last cell.
func Next(from grid.Pos, b Bounds) (grid.Pos, bool) {
	if b.Empty() {
		return from, false
	}
	from = b.Clamp(from)
	switch {
	case from.Col < b.Cols-1:
		return grid.Pos{Row: from.Row, Col: from.Col + 1}, true
	case from.Row < b.Rows-1:
		return grid.Pos{Row: from.Row + 1, Col: 0}, true
	default:
		return from, false
	}
}

// Prev mirrors Next: left, wrapping to the last column of the previous row.
func Prev(from grid.Pos, b Bounds) (grid.Pos, bool) {
	if b.Empty() {
		return from, false
	}
	from = b.Clamp(from)
	switch {
	case from.Col > 0:
		return grid.Pos{Row: from.Row, Col: from.Col - 1}, true
	case from.Row > 0:
		return grid.Pos{Row: from.Row - 1, Col: b.Cols - 1}, true
	default:
		return from, false
	}
}

// RowStart returns the first cell of the row.
func RowStart(from grid.Pos, b Bounds) grid.Pos {
	return b.Clamp(grid.Pos{Row: from.Row, Col: 0})
}

// RowEnd returns the last cell of the row.
func RowEnd(from grid.Pos, b Bounds) grid.Pos {
	return b.Clamp(grid.Pos{Row: from.Row, Col: b.Cols - 1})
}

// All returns the anchor and focus that cover the whole grid.
func All(b Bounds) (grid.Pos, grid.Pos) {
	if b.Empty() {
		return grid.Pos{}, grid.Pos{}
	}
	return grid.Pos{}, grid.Pos{Row: b.Rows - 1, Col: b.Cols - 1}
}
