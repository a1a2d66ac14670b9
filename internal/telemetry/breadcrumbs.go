package telemetry

import (
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
)

// Kind classifies a breadcrumb.
type Kind string

const (
	KindKeyboard   Kind = "keyboard"
	KindMouse      Kind = "mouse"
	KindNavigation Kind = "navigation"
	KindPersist    Kind = "persist"
)

// DefaultBreadcrumbs is the ring size used by New.
const DefaultBreadcrumbs = 100

// repeatWindow bounds how far apart two identical crumbs may be and still collapse.
const repeatWindow = time.Second

type entry struct {
	kind    Kind
	message string
	data    map[string]any
	level   sentry.Level
	at      time.Time
	count   int
}

// Breadcrumbs is a fixed-size ring of recent user and persistence activity.
// Consecutive identical crumbs collapse into one with a repeat count.
type Breadcrumbs struct {
	mu      sync.Mutex
	entries []entry
	next    int
	size    int
	now     func() time.Time
}

// NewBreadcrumbs creates a ring holding at most capacity entries.
func NewBreadcrumbs(capacity int) *Breadcrumbs {
	if capacity < 1 {
		capacity = 1
	}
	return &Breadcrumbs{
		entries: make([]entry, capacity),
		now:     time.Now,
	}
}

func (b *Breadcrumbs) add(kind Kind, level sentry.Level, message string, data map[string]any) {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	at := b.now()
	if b.size > 0 {
		last := &b.entries[(b.next-1+len(b.entries))%len(b.entries)]
		if last.kind == kind && last.message == message && at.Sub(last.at) <= repeatWindow {
			last.count++
			last.at = at
			return
		}
	}

	b.entries[b.next] = entry{kind: kind, message: message, data: data, level: level, at: at, count: 1}
	b.next = (b.next + 1) % len(b.entries)
	if b.size < len(b.entries) {
		b.size++
	}
}

// Key records a key press.
func (b *Breadcrumbs) Key(key string) {
	b.add(KindKeyboard, sentry.LevelDebug, "key "+key, map[string]any{"key": key})
}

// Mouse records a pointer action on a cell.
func (b *Breadcrumbs) Mouse(action string, row, col int) {
	b.add(KindMouse, sentry.LevelDebug, "mouse "+action, map[string]any{
		"action": action,
		"row":    row,
		"col":    col,
	})
}

// Navigation records a page or mode change.
func (b *Breadcrumbs) Navigation(what, detail string) {
	b.add(KindNavigation, sentry.LevelInfo, what+": "+detail, map[string]any{"detail": detail})
}

// Persist records a commit outcome.
func (b *Breadcrumbs) Persist(op, recordID, columnID string, err error) {
	data := map[string]any{"record_id": recordID, "column_id": columnID}
	level := sentry.LevelInfo
	if err != nil {
		data["error"] = err.Error()
		level = sentry.LevelWarning
	}
	b.add(KindPersist, level, op, data)
}

// Len returns the number of stored (collapsed) entries.
func (b *Breadcrumbs) Len() int {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Snapshot returns the entries oldest first as sentry breadcrumbs.
func (b *Breadcrumbs) Snapshot() []*sentry.Breadcrumb {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]*sentry.Breadcrumb, 0, b.size)
	start := (b.next - b.size + len(b.entries)) % len(b.entries)
	for i := 0; i < b.size; i++ {
		e := b.entries[(start+i)%len(b.entries)]
		msg, data := e.message, e.data
		if e.count > 1 {
			msg = fmt.Sprintf("%s (x%d)", e.message, e.count)
			data = maps.Clone(e.data)
			if data == nil {
				data = map[string]any{}
			}
			data["count"] = e.count
		}
		out = append(out, &sentry.Breadcrumb{
			Category:  string(e.kind),
			Message:   msg,
			Data:      data,
			Level:     e.level,
			Timestamp: e.at,
		})
	}
	return out
}

// Reset empties the ring.
func (b *Breadcrumbs) Reset() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	clear(b.entries)
	b.next, b.size = 0, 0
}
