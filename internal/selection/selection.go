// Package selection tracks the anchor, focus and covered cells of the grid.
//
// A selection is either a rectangle spanned by anchor and focus, or an
// explicit set of cells. The focused cell is always a member. Pointer drags
// grow a rectangle while the button is down and are materialized into a set
// on release. Whether a drag is in progress is the caller's state; the
// selection only reshapes itself.
package selection

import (
	"maps"
	"slices"

	"github.com/zjrosen/gridline/internal/grid"
)

// Shape tells how membership is computed.
type Shape int

const (
	ShapeRect Shape = iota
	ShapeSet
)

func (s Shape) String() string {
	if s == ShapeSet {
		return "set"
	}
	return "rect"
}

// Selection is the grid's current cell selection.
type Selection struct {
	anchor grid.Pos
	focus  grid.Pos
	shape  Shape
	cells  map[grid.Pos]struct{}
}

// New returns a selection collapsed onto (0,0).
func New() *Selection {
	return &Selection{}
}

func (s *Selection) Anchor() grid.Pos { return s.anchor }
func (s *Selection) Focus() grid.Pos { return s.focus }
func (s *Selection) Shape() Shape { return s.shape }

// SetFocus moves focus to p and collapses the selection onto it.
func (s *Selection) SetFocus(p grid.Pos) {
	s.SetRect(p, p)
}

// SetRect selects the rectangle between anchor and focus.
func (s *Selection) SetRect(anchor, focus grid.Pos) {
	s.anchor = anchor
	s.focus = focus
	s.shape = ShapeRect
	s.cells = nil
}

// ExtendTo moves focus to p keeping the anchor, as Shift+Arrow does.
// A set selection is turned back into a rectangle from the anchor.
func (s *Selection) ExtendTo(p grid.Pos) {
	s.SetRect(s.anchor, p)
}

// SetSet selects exactly cells. focus is added when missing and the anchor
// is placed on it.
func (s *Selection) SetSet(cells []grid.Pos, focus grid.Pos) {
	set := make(map[grid.Pos]struct{}, len(cells)+1)
	for _, c := range cells {
		set[c] = struct{}{}
	}
	set[focus] = struct{}{}
	s.anchor = focus
	s.focus = focus
	s.shape = ShapeSet
	s.cells = set
}

// Toggle adds or removes p and focuses it. Removing the last remaining
// cell keeps it selected.
func (s *Selection) Toggle(p grid.Pos) {
	if s.shape == ShapeRect {
		s.cells = s.rectCells()
		s.shape = ShapeSet
	}
	if _, ok := s.cells[p]; !ok {
		s.cells[p] = struct{}{}
		s.focus = p
		s.anchor = p
		return
	}
	if len(s.cells) == 1 {
		return
	}
	delete(s.cells, p)
	if s.focus == p {
		s.focus = slices.MinFunc(slices.Collect(maps.Keys(s.cells)), grid.ComparePos)
		s.anchor = s.focus
	}
}

// Contains reports whether p is selected.
func (s *Selection) Contains(p grid.Pos) bool {
	if s.shape == ShapeSet {
		_, ok := s.cells[p]
		return ok
	}
	lo, hi := s.Bounds()
	return p.Row >= lo.Row && p.Row <= hi.Row && p.Col >= lo.Col && p.Col <= hi.Col
}

// Bounds returns the top-left and bottom-right corners covering the selection.
func (s *Selection) Bounds() (grid.Pos, grid.Pos) {
	if s.shape == ShapeSet {
		lo, hi := s.focus, s.focus
		for c := range s.cells {
			lo = grid.Pos{Row: min(lo.Row, c.Row), Col: min(lo.Col, c.Col)}
			hi = grid.Pos{Row: max(hi.Row, c.Row), Col: max(hi.Col, c.Col)}
		}
		return lo, hi
	}
	lo := grid.Pos{Row: min(s.anchor.Row, s.focus.Row), Col: min(s.anchor.Col, s.focus.Col)}
	hi := grid.Pos{Row: max(s.anchor.Row, s.focus.Row), Col: max(s.anchor.Col, s.focus.Col)}
	return lo, hi
}

// Len returns the number of selected cells.
func (s *Selection) Len() int {
	if s.shape == ShapeSet {
		return len(s.cells)
	}
	lo, hi := s.Bounds()
	return (hi.Row - lo.Row + 1) * (hi.Col - lo.Col + 1)
}

// IsSingle reports whether only the focused cell is selected.
func (s *Selection) IsSingle() bool { return s.Len() == 1 }

// Clear collapses the selection onto the focused cell.
func (s *Selection) Clear() {
	s.SetFocus(s.focus)
}

// Cells lists selected cells in row-major order.
func (s *Selection) Cells() []grid.Pos {
	var out []grid.Pos
	if s.shape == ShapeSet {
		out = slices.Collect(maps.Keys(s.cells))
	} else {
		out = slices.Collect(maps.Keys(s.rectCells()))
	}
	slices.SortFunc(out, grid.ComparePos)
	return out
}

// BeginDrag anchors a pointer gesture at p.
func (s *Selection) BeginDrag(p grid.Pos) {
	s.SetFocus(p)
}

// DragTo grows the gesture rectangle from the anchor to p. It reports
// whether anything changed.
func (s *Selection) DragTo(p grid.Pos) bool {
	if s.shape == ShapeRect && s.focus == p {
		return false
	}
	s.SetRect(s.anchor, p)
	return true
}

// EndDrag freezes the cells covered by the gesture into a set.
func (s *Selection) EndDrag() {
	if s.shape == ShapeSet || s.IsSingle() {
		return
	}
	anchor := s.anchor
	s.SetSet(s.Cells(), s.focus)
	s.anchor = anchor
}

// Clamp pulls the selection inside a rows x cols grid after the grid shrank.
func (s *Selection) Clamp(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		s.SetFocus(grid.Pos{})
		return
	}
	clamp := func(p grid.Pos) grid.Pos {
		return grid.Pos{Row: min(max(p.Row, 0), rows-1), Col: min(max(p.Col, 0), cols-1)}
	}
	if s.shape == ShapeSet {
		kept := make([]grid.Pos, 0, len(s.cells))
		for c := range s.cells {
			if c.Row < rows && c.Col < cols {
				kept = append(kept, c)
			}
		}
		s.SetSet(kept, clamp(s.focus))
		return
	}
	s.SetRect(clamp(s.anchor), clamp(s.focus))
}

func (s *Selection) rectCells() map[grid.Pos]struct{} {
	lo, hi := s.Bounds()
	out := make(map[grid.Pos]struct{}, (hi.Row-lo.Row+1)*(hi.Col-lo.Col+1))
	for r := lo.Row; r <= hi.Row; r++ {
		for c := lo.Col; c <= hi.Col; c++ {
			out[grid.Pos{Row: r, Col: c}] = struct{}{}
		}
	}
	return out
}
