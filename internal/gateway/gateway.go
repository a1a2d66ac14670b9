// Package gateway defines the single write path from the grid to storage.
package gateway

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds per-cell fallback calls in CommitMany.
const DefaultConcurrency = 4

var (
	ErrReadOnly       = errors.New("column is read-only")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrRecordNotFound = errors.New("record not found")
)

// Write is one cell write. RowIndex is the local row on the current page;
// RecordID identifies the record the row showed when the write was issued.
type Write struct {
	RowIndex int
	ColumnID string
	RecordID string
	Value    string
}

func (w Write) String() string {
	return fmt.Sprintf("row=%d col=%s record=%s", w.RowIndex, w.ColumnID, w.RecordID)
}

// Gateway persists a single cell.
type Gateway interface {
	CommitCell(ctx context.Context, w Write) error
}

// BatchGateway persists many cells in one call.
type BatchGateway interface {
	Gateway
	CommitMany(ctx context.Context, writes []Write) BatchResult
}

// Func adapts a function to Gateway.
type Func func(ctx context.Context, w Write) error

func (f Func) CommitCell(ctx context.Context, w Write) error { return f(ctx, w) }

// CommitError wraps a failed write.
type CommitError struct {
	Write Write
	Err   error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit %s: %v", e.Write, e.Err)
}

func (e *CommitError) Unwrap() error { return e.Err }

// Outcome is the result of one write in a batch.
type Outcome struct {
	Write Write
	Err   error
}

// BatchResult aggregates per-write outcomes.
type BatchResult struct {
	Outcomes  []Outcome
	Succeeded int
	Failed    int
}

// NewBatchResult counts outcomes.
func NewBatchResult(outcomes []Outcome) BatchResult {
	r := BatchResult{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Err != nil {
			r.Failed++
		} else {
			r.Succeeded++
		}
	}
	return r
}

func (r BatchResult) Total() int { return r.Succeeded + r.Failed }
func (r BatchResult) AllFailed() bool { return r.Total() > 0 && r.Succeeded == 0 }
func (r BatchResult) Partial() bool { return r.Succeeded > 0 && r.Failed > 0 }

// Err joins every failure, nil when all writes succeeded.
func (r BatchResult) Err() error {
	var errs []error
	for _, o := range r.Outcomes {
		if o.Err != nil {
			errs = append(errs, o.Err)
		}
	}
	return errors.Join(errs...)
}

// CommitMany writes every cell. It uses g's own batch call when g is a
// BatchGateway and otherwise issues one CommitCell per write, at most
// limit at a time. Outcomes keep the order of writes.
func CommitMany(ctx context.Context, g Gateway, writes []Write, limit int) BatchResult {
	if bg, ok := g.(BatchGateway); ok {
		return bg.CommitMany(ctx, writes)
	}
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	outcomes := make([]Outcome, len(writes))
	var eg errgroup.Group
	eg.SetLimit(limit)
	for i, w := range writes {
		eg.Go(func() error {
			err := g.CommitCell(ctx, w)
			if err != nil {
				err = &CommitError{Write: w, Err: err}
			}
			outcomes[i] = Outcome{Write: w, Err: err}
			return nil
		})
	}
	_ = eg.Wait()
	return NewBatchResult(outcomes)
}
