// Package app contains the root application model.
package app

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/mode"
	"github.com/zjrosen/gridline/internal/mode/sheet"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/ui/shared/logoverlay"
	"github.com/zjrosen/gridline/internal/watcher"
)

// Options configures the root model.
type Options struct {
	Services mode.Services

	// Changes carries external database writes. Nil disables auto refresh.
	Changes *pubsub.Broker[watcher.WatcherEvent]

	// Debug enables the log overlay (Ctrl+X toggle).
	Debug bool
}

// Model is the root application state.
type Model struct {
	sheet sheet.Model
	keys  keys.KeyMap

	debugMode   bool
	logOverlay  logoverlay.Model
	logListener *log.LogListener

	changes *pubsub.ContinuousListener[watcher.WatcherEvent]

	width  int
	height int
}

// New creates the root model. Subscriptions live until ctx is cancelled.
func New(ctx context.Context, opts Options) (Model, error) {
	page, err := sheet.New(ctx, opts.Services)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		sheet:      page,
		keys:       keys.DefaultKeyMap(),
		debugMode:  opts.Debug,
		logOverlay: logoverlay.New(),
	}
	if opts.Changes != nil {
		m.changes = pubsub.NewContinuousListener(ctx, opts.Changes)
	}
	if opts.Debug {
		m.logListener = log.NewListener(ctx)
	}
	return m, nil
}

// Init loads the first page and starts the listeners.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.sheet.Init()}
	if m.changes != nil {
		cmds = append(cmds, m.changes.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Sheet returns the grid page.
func (m Model) Sheet() sheet.Model { return m.sheet }

// LogsVisible reports whether the debug log overlay is open.
func (m Model) LogsVisible() bool { return m.logOverlay.Visible() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.sheet = m.sheet.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)
		return m, nil

	case log.LogEvent:
		m.logOverlay.Append(msg.Payload)
		m.logOverlay.SetDropped(log.Dropped())
		if m.logListener == nil {
			return m, nil
		}
		return m, m.logListener.Listen()

	case pubsub.Event[watcher.WatcherEvent]:
		return m.handleWatcher(msg.Payload)

	case logoverlay.CloseMsg:
		m.logOverlay.Hide()
		return m, nil

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			return m, nil
		}

	case tea.KeyMsg:
		if m.debugMode && key.Matches(msg, m.keys.Logs) && !m.sheet.Editing() {
			m.logOverlay.Toggle()
			return m, nil
		}
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m Model) handleWatcher(ev watcher.WatcherEvent) (tea.Model, tea.Cmd) {
	next := m.changes.Listen()
	switch ev.Type {
	case watcher.DBChanged:
		log.Debug(log.CatWatcher, "database changed, reloading page")
		var cmd tea.Cmd
		m.sheet, cmd = m.sheet.Reload()
		return m, tea.Batch(cmd, next)
	case watcher.WatcherError:
		log.Warn(log.CatWatcher, "watcher error received", "error", ev.Error)
	}
	return m, next
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.sheet.View()
	if m.logOverlay.Visible() {
		view = m.logOverlay.Overlay(view)
	}
	return view
}
