package clipboard

import (
	"errors"
	"fmt"
	"slices"

	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/log"
)

// ErrNothingToCopy is returned when the selection holds no data column.
var ErrNothingToCopy = errors.New("nothing to copy")

// Target is one cell a paste writes to.
type Target struct {
	Coord grid.Coord
	Value string
}

// Bridge copies selections to a Channel and plans pastes from it.
type Bridge struct {
	ch Channel
}

func NewBridge(ch Channel) *Bridge {
	return &Bridge{ch: ch}
}

// Matrix reads the distinct selected rows by the distinct selected data
// columns out of m, both in grid order. Row-number cells are left out.
func Matrix(m *grid.Model, cells []grid.Pos) [][]string {
	var rows, cols []int
	for _, p := range cells {
		if !m.Contains(p) {
			continue
		}
		if c, _ := m.Column(p.Col); c.Header {
			continue
		}
		rows = append(rows, p.Row)
		cols = append(cols, p.Col)
	}
	slices.Sort(rows)
	slices.Sort(cols)
	rows = slices.Compact(rows)
	cols = slices.Compact(cols)

	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		line := make([]string, len(cols))
		for j, c := range cols {
			line[j] = m.ValueAt(grid.Pos{Row: r, Col: c})
		}
		out = append(out, line)
	}
	return out
}

// Copy writes the selection to the channel and returns the text written.
func (b *Bridge) Copy(m *grid.Model, cells []grid.Pos) (string, error) {
	matrix := Matrix(m, cells)
	if len(matrix) == 0 {
		return "", ErrNothingToCopy
	}
	text := Serialize(matrix)
	if err := b.ch.Write(text); err != nil {
		return "", err
	}
	log.Debug(log.CatClipboard, "copied", "rows", len(matrix), "cols", len(matrix[0]))
	return text, nil
}

// Targets lays matrix out from focus and returns the cells that exist and
// accept edits, plus how many values were skipped. A focus on the
// row-number column anchors at the first data column instead.
func Targets(m *grid.Model, focus grid.Pos, matrix [][]string) ([]Target, int) {
	anchor := focus
	if c, ok := m.Column(anchor.Col); ok && c.Header {
		anchor.Col = m.FirstDataColumn()
	}

	var targets []Target
	skipped := 0
	for i, line := range matrix {
		for j, v := range line {
			p := grid.Pos{Row: anchor.Row + i, Col: anchor.Col + j}
			if !m.Editable(p) {
				skipped++
				continue
			}
			coord, _ := m.CoordOf(p)
			targets = append(targets, Target{Coord: coord, Value: v})
		}
	}
	return targets, skipped
}

// Paste reads the channel and plans writes anchored at focus.
func (b *Bridge) Paste(m *grid.Model, focus grid.Pos) ([]Target, int, error) {
	text, err := b.ch.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("paste: %w", err)
	}
	targets, skipped := Targets(m, focus, Parse(text))
	log.Debug(log.CatClipboard, "paste planned", "targets", len(targets), "skipped", skipped)
	return targets, skipped, nil
}
