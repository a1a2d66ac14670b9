package engine

import (
	"context"
	"time"

	"github.com/zjrosen/gridline/internal/bulkedit"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/pubsub"
)

// Status is where a commit stands.
type Status int

const (
	StatusPending Status = iota
	StatusCommitted
	StatusFailed
	StatusDiscarded
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCommitted:
		return "committed"
	case StatusFailed:
		return "failed"
	case StatusDiscarded:
		return "discarded"
	default:
		return "unknown"
	}
}

// Ticket is a commit the model already shows and the host must persist.
type Ticket struct {
	ID         string
	Write      gateway.Write
	Generation uint64
	Old        string
	IssuedAt   time.Time
	BatchID    string
	seq        uint64
}

// Coord is the cell the ticket writes.
func (t Ticket) Coord() grid.Coord {
	return grid.Coord{Row: t.Write.RowIndex, Col: t.Write.ColumnID}
}

// Resolution is the gateway's answer for a ticket.
type Resolution struct {
	Ticket Ticket
	Err    error
}

// Update is a ticket with its final status.
type Update struct {
	Ticket Ticket
	Status Status
	Err    error
}

// Event is published on the engine's broker.
type Event struct {
	Update     *Update
	Report     *bulkedit.Report
	Text       string
	Cells      int
	Generation uint64
}

// Effect is what a user action produced.
type Effect struct {
	Tickets []Ticket
	Err     error
	Notice  string
}

func (f *Effect) add(o Effect) {
	f.Tickets = append(f.Tickets, o.Tickets...)
	if o.Err != nil {
		f.Err = o.Err
	}
	if o.Notice != "" {
		f.Notice = o.Notice
	}
}

// issue applies value to the model and returns the ticket to persist.
func (e *Engine) issue(c grid.Coord, value, batchID string) (Ticket, error) {
	old, _ := e.model.Value(c)
	if err := e.model.SetValue(c, value); err != nil {
		return Ticket{}, err
	}
	e.seq++
	t := Ticket{
		ID: e.opts.NewID(),
		Write: gateway.Write{
			RowIndex: c.Row,
			ColumnID: c.Col,
			RecordID: e.model.RecordID(c.Row),
			Value:    value,
		},
		Generation: e.generation,
		Old:        old,
		IssuedAt:   e.opts.Clock.Now(),
		BatchID:    batchID,
		seq:        e.seq,
	}
	e.pending[t.ID] = t
	log.Debug(log.CatPersist, "commit issued", "ticket", t.ID, "cell", c, "record", t.Write.RecordID)
	e.publish(pubsub.IssuedEvent, Event{Update: &Update{Ticket: t, Status: StatusPending}})
	return t, nil
}

// Execute persists one ticket. Safe to call from any goroutine.
func (e *Engine) Execute(ctx context.Context, t Ticket) Resolution {
	if e.opts.Gateway == nil {
		return Resolution{Ticket: t, Err: ErrNoGateway}
	}
	err := e.opts.Gateway.CommitCell(ctx, t.Write)
	if err != nil {
		err = &gateway.CommitError{Write: t.Write, Err: err}
	}
	return Resolution{Ticket: t, Err: err}
}

// Resolve folds a gateway answer back into the engine. A ticket whose row
// now holds a different record is discarded. Success never touches the
// displayed value. Failure is reported and, with the revert-on-failure
// flag, rolls the cell back when nothing newer was written to it.
func (e *Engine) Resolve(res Resolution) Update {
	t := res.Ticket
	if _, ok := e.pending[t.ID]; !ok {
		log.Warn(log.CatPersist, "resolution for unknown ticket", "ticket", t.ID)
		return Update{Ticket: t, Status: StatusDiscarded, Err: res.Err}
	}
	delete(e.pending, t.ID)

	if e.stale(t) {
		u := Update{Ticket: t, Status: StatusDiscarded, Err: res.Err}
		log.Info(log.CatPersist, "stale commit discarded", "ticket", t.ID, "cell", t.Coord(), "record", t.Write.RecordID)
		e.publish(pubsub.DiscardedEvent, Event{Update: &u})
		return u
	}

	if res.Err == nil {
		u := Update{Ticket: t, Status: StatusCommitted}
		log.Debug(log.CatPersist, "commit succeeded", "ticket", t.ID, "cell", t.Coord())
		e.publish(pubsub.CommittedEvent, Event{Update: &u})
		return u
	}

	u := Update{Ticket: t, Status: StatusFailed, Err: res.Err}
	log.ErrorErr(log.CatPersist, "commit failed", res.Err, "ticket", t.ID, "cell", t.Coord(), "record", t.Write.RecordID)
	if e.opts.Flags.Enabled(flags.FlagRevertOnFailure) {
		e.revert(t)
	}
	e.publish(pubsub.FailedEvent, Event{Update: &u})
	return u
}

func (e *Engine) stale(t Ticket) bool {
	if t.Generation == e.generation {
		return false
	}
	return e.model == nil || e.model.RecordID(t.Write.RowIndex) != t.Write.RecordID
}

func (e *Engine) revert(t Ticket) {
	c := t.Coord()
	if cur, ok := e.model.Value(c); !ok || cur != t.Write.Value {
		return
	}
	for _, other := range e.pending {
		if other.Coord() == c && other.seq > t.seq {
			return
		}
	}
	if err := e.model.SetValue(c, t.Old); err != nil {
		log.ErrorErr(log.CatPersist, "revert failed", err, "cell", c)
		return
	}
	log.Info(log.CatPersist, "cell reverted after failed commit", "cell", c)
}
