// Package bulkedit applies one value to every selected cell of one column.
package bulkedit

import (
	"errors"
	"fmt"

	"github.com/zjrosen/gridline/internal/grid"
)

var (
	ErrPromptClosed = errors.New("bulk edit prompt is not open")
	ErrNoTargets    = errors.New("no editable cells selected in column")
)

// Prompt is the bulk-edit dialog state: closed, or open for one column.
type Prompt struct {
	open   bool
	column string
}

// Open opens the prompt for a column of m. Header and read-only columns
// are refused.
func (p *Prompt) Open(m *grid.Model, columnID string) error {
	i, ok := m.ColumnIndex(columnID)
	if !ok {
		return fmt.Errorf("%w: %q", grid.ErrUnknownColumn, columnID)
	}
	if c, _ := m.Column(i); !c.Editable() {
		return fmt.Errorf("%w: column %q", grid.ErrNotEditable, columnID)
	}
	p.open = true
	p.column = columnID
	return nil
}

func (p *Prompt) Close() {
	p.open = false
	p.column = ""
}

func (p *Prompt) IsOpen() bool { return p.open }
func (p *Prompt) Column() string { return p.column }

// Plan returns one write per selected cell lying in the column. Cells of
// other columns and non-editable cells are ignored.
func Plan(m *grid.Model, cells []grid.Pos, columnID, value string) ([]grid.Coord, error) {
	col, ok := m.ColumnIndex(columnID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", grid.ErrUnknownColumn, columnID)
	}
	var out []grid.Coord
	for _, c := range cells {
		if c.Col != col || !m.Editable(c) {
			continue
		}
		out = append(out, grid.Coord{Row: c.Row, Col: columnID})
	}
	if len(out) == 0 {
		return nil, ErrNoTargets
	}
	return out, nil
}

// Outcome classifies a finished batch.
type Outcome int

const (
	OutcomeSuccess Outcome = iota
	OutcomePartial
	OutcomeFailure
	// OutcomeStale means every write was discarded because its row
	// changed before the batch resolved.
	OutcomeStale
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomePartial:
		return "partial"
	case OutcomeStale:
		return "stale"
	default:
		return "failure"
	}
}

// Report aggregates a bulk edit.
type Report struct {
	Column    string
	Value     string
	Succeeded int
	Failed    int
	Discarded int
	Err       error
}

// Outcome tells full, partial and total failure apart. Discarded writes
// (their row changed under them) count as neither, unless nothing else
// happened.
func (r Report) Outcome() Outcome {
	switch {
	case r.Succeeded == 0 && r.Failed == 0 && r.Discarded > 0:
		return OutcomeStale
	case r.Failed == 0:
		return OutcomeSuccess
	case r.Succeeded > 0:
		return OutcomePartial
	default:
		return OutcomeFailure
	}
}

// KeepSelection reports whether the selection should survive the batch:
// only a total failure keeps it so the user can retry.
func (r Report) KeepSelection() bool { return r.Outcome() == OutcomeFailure }

func (r Report) String() string {
	switch r.Outcome() {
	case OutcomeSuccess:
		return fmt.Sprintf("Updated %d cells in %s", r.Succeeded, r.Column)
	case OutcomePartial:
		return fmt.Sprintf("Updated %d of %d cells in %s; %d failed", r.Succeeded, r.Succeeded+r.Failed, r.Column, r.Failed)
	case OutcomeStale:
		return fmt.Sprintf("Bulk edit of %s not applied: the rows changed before it finished", r.Column)
	default:
		return fmt.Sprintf("Bulk edit of %s failed for all %d cells", r.Column, r.Failed)
	}
}
