// Package watcher notices external writes to the grid's SQLite file so the
// host can reload the visible page.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/pubsub"
)

// EventType distinguishes watcher notifications.
type EventType int

const (
	DBChanged EventType = iota
	WatcherError
)

// WatcherEvent is published on the watcher's broker.
type WatcherEvent struct {
	Type  EventType
	Error error
}

// Config holds watcher configuration options.
type Config struct {
	DBPath      string
	DebounceDur time.Duration
}

// DefaultConfig watches dbPath with a short debounce.
func DefaultConfig(dbPath string) Config {
	return Config{
		DBPath:      dbPath,
		DebounceDur: 300 * time.Millisecond,
	}
}

// Watcher monitors a database file and its sidecars.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dbPath    string
	names     map[string]struct{}
	debounce  time.Duration
	broker    *pubsub.Broker[WatcherEvent]
	done      chan struct{}
	stopOnce  sync.Once

	// unix nanos; writes before this instant are ignored
	mutedUntil atomic.Int64
	now        func() time.Time
}

// New creates a watcher for cfg.DBPath. Call Start to begin watching.
func New(cfg Config) (*Watcher, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("watcher: empty database path")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	base := filepath.Base(cfg.DBPath)
	return &Watcher{
		fsWatcher: fsw,
		dbPath:    cfg.DBPath,
		names: map[string]struct{}{
			base:              {},
			base + "-wal":     {},
			base + "-journal": {},
		},
		debounce: cfg.DebounceDur,
		broker:   pubsub.NewBroker[WatcherEvent](),
		done:     make(chan struct{}),
		now:      time.Now,
	}, nil
}

// Broker delivers DBChanged and WatcherError events.
func (w *Watcher) Broker() *pubsub.Broker[WatcherEvent] {
	return w.broker
}

// Start begins watching the directory containing the database.
func (w *Watcher) Start() error {
	dir := filepath.Dir(w.dbPath)
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "Watching database", "path", w.dbPath, "debounce", w.debounce)

	go w.loop()
	return nil
}

// Mute suppresses notifications for d. The host calls it around its own
// commits so they do not bounce back as external changes.
func (w *Watcher) Mute(d time.Duration) {
	until := w.now().Add(d).UnixNano()
	for {
		cur := w.mutedUntil.Load()
		if cur >= until || w.mutedUntil.CompareAndSwap(cur, until) {
			return
		}
	}
}

func (w *Watcher) muted() bool {
	return w.now().UnixNano() < w.mutedUntil.Load()
}

// Stop terminates the watcher and closes its broker.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.broker.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			if w.muted() {
				continue
			}

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			timerC = timer.C
			pending = true

		case <-timerC:
			timerC = nil
			if pending && !w.muted() {
				log.Debug(log.CatWatcher, "Database changed", "path", w.dbPath)
				w.broker.Publish(pubsub.ChangedEvent, WatcherEvent{Type: DBChanged})
			}
			pending = false

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatcher, "Watch error", "error", err)
			w.broker.Publish(pubsub.ErrorEvent, WatcherEvent{Type: WatcherError, Error: err})

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports writes or creations of the database or its WAL and journal files.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return false
	}
	_, ok := w.names[filepath.Base(event.Name)]
	return ok
}
