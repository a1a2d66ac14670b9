// Package engine is the grid interaction engine. It owns the grid model,
// the selection, the inline edit session, the interaction mode and the
// commits in flight, and it is the only writer of any of them.
//
// Every method except Execute and ExecuteBatch must be called from one
// goroutine, normally the UI event loop. Execute and ExecuteBatch only read
// the ticket and call the gateway, so hosts run them off-loop and feed the
// result back through Resolve and ResolveBatch.
package engine

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zjrosen/gridline/internal/bulkedit"
	"github.com/zjrosen/gridline/internal/clipboard"
	"github.com/zjrosen/gridline/internal/clock"
	"github.com/zjrosen/gridline/internal/edit"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/navigation"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/selection"
)

// DefaultCopyFlash is how long copied cells stay highlighted.
const DefaultCopyFlash = 600 * time.Millisecond

var (
	ErrNoGateway    = errors.New("no persistence gateway configured")
	ErrEmptyGrid    = errors.New("grid has no cells")
	ErrBulkInFlight = errors.New("a bulk edit is already running")
)

// Mode is the interaction mode. Exactly one is active.
type Mode int

const (
	ModeIdle Mode = iota
	ModeEditing
	ModeDragging
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeEditing:
		return "editing"
	case ModeDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Options configures an Engine.
type Options struct {
	Gateway         gateway.Gateway
	Clipboard       clipboard.Channel
	Clock           clock.Clock
	Events          *pubsub.Broker[Event]
	Flags           *flags.Registry
	CopyFlash       time.Duration
	BulkConcurrency int
	NewID           func() string
}

// Engine is the grid interaction engine.
type Engine struct {
	opts   Options
	bridge *clipboard.Bridge

	model      *grid.Model
	generation uint64
	sel        *selection.Selection
	session    edit.Session
	mode       Mode
	prompt     bulkedit.Prompt

	pending    map[string]Ticket
	seq        uint64
	bulkBatch  string
	flashUntil time.Time
}

// New creates an engine with an empty grid.
func New(opts Options) *Engine {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.NewID == nil {
		opts.NewID = uuid.NewString
	}
	if opts.CopyFlash <= 0 {
		opts.CopyFlash = DefaultCopyFlash
	}
	if opts.BulkConcurrency <= 0 {
		opts.BulkConcurrency = gateway.DefaultConcurrency
	}
	e := &Engine{
		opts:    opts,
		sel:     selection.New(),
		pending: make(map[string]Ticket),
	}
	if opts.Clipboard != nil {
		e.bridge = clipboard.NewBridge(opts.Clipboard)
	}
	e.session.OnTransition = func(from, to edit.State, t edit.Trigger) {
		log.Debug(log.CatEdit, "edit transition", "from", from, "to", to, "trigger", t)
	}
	return e
}

// Load replaces the grid after the host fetched new records. Any open edit
// is dropped without a commit, and the selection collapses onto restore,
// or (0,0) when restore is nil. Commits still in flight stay pending and
// are checked against the new rows when they resolve.
func (e *Engine) Load(m *grid.Model, restore *grid.Pos) {
	if e.session.Active() {
		log.Info(log.CatEdit, "edit discarded by reload", "target", e.session.Target())
	}
	e.session.Discard()
	e.prompt.Close()
	e.mode = ModeIdle
	e.model = m
	e.generation++

	focus := grid.Pos{}
	if restore != nil {
		focus = *restore
	}
	e.sel.SetFocus(focus)
	b := e.Bounds()
	e.sel.Clamp(b.Rows, b.Cols)

	log.Debug(log.CatGrid, "grid loaded", "generation", e.generation, "rows", b.Rows, "cols", b.Cols, "pending", len(e.pending))
	e.publish(pubsub.ReloadedEvent, Event{Generation: e.generation})
}

func (e *Engine) Model() *grid.Model { return e.model }
func (e *Engine) Selection() *selection.Selection { return e.sel }
func (e *Engine) Mode() Mode { return e.mode }
func (e *Engine) Generation() uint64 { return e.generation }
func (e *Engine) Pending() int { return len(e.pending) }

// Bounds returns the navigable size of the grid.
func (e *Engine) Bounds() navigation.Bounds {
	if e.model == nil {
		return navigation.Bounds{}
	}
	return navigation.Bounds{Rows: e.model.RowCount(), Cols: e.model.ColCount()}
}

// Focus returns the focused cell.
func (e *Engine) Focus() grid.Pos { return e.sel.Focus() }

// Editing returns the cell being edited and its draft.
func (e *Engine) Editing() (grid.Coord, string, bool) {
	if !e.session.Active() {
		return grid.Coord{}, "", false
	}
	return e.session.Target(), e.session.Draft(), true
}

// BulkPrompt reports whether the bulk prompt is open and for which column.
func (e *Engine) BulkPrompt() (string, bool) {
	return e.prompt.Column(), e.prompt.IsOpen()
}

// BulkRunning reports whether a bulk batch is awaiting its result.
func (e *Engine) BulkRunning() bool { return e.bulkBatch != "" }

// PendingAt reports whether a commit for c is in flight.
func (e *Engine) PendingAt(c grid.Coord) bool {
	for _, t := range e.pending {
		if t.Coord() == c && t.Generation == e.generation {
			return true
		}
	}
	return false
}

// CopyFlashing reports whether copied cells should still be highlighted.
func (e *Engine) CopyFlashing() bool {
	return e.opts.Clock.Now().Before(e.flashUntil)
}

// FlashDeadline is when the copy highlight ends.
func (e *Engine) FlashDeadline() time.Time { return e.flashUntil }

func (e *Engine) empty() bool { return e.model.Empty() }

func (e *Engine) publish(kind pubsub.EventType, ev Event) {
	if e.opts.Events != nil {
		e.opts.Events.Publish(kind, ev)
	}
}
