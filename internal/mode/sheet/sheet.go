// Package sheet is the grid host page. It loads pages of records through
// the configured source, turns key and mouse input into engine calls and
// runs the tickets the engine issues as commands.
package sheet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	bhelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/gridline/internal/cachemanager"
	"github.com/zjrosen/gridline/internal/clock"
	"github.com/zjrosen/gridline/internal/config"
	"github.com/zjrosen/gridline/internal/engine"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/mode"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/telemetry"
	"github.com/zjrosen/gridline/internal/ui/help"
	"github.com/zjrosen/gridline/internal/ui/shared/table"
	"github.com/zjrosen/gridline/internal/ui/styles"
	"github.com/zjrosen/gridline/internal/ui/toaster"
)

// ErrNoSource is returned by New when no record source is configured.
var ErrNoSource = errors.New("no record source configured")

const (
	toastDuration = 3 * time.Second
	// chrome is the title line plus the status line.
	chrome = 2
)

type click struct {
	pos grid.Pos
	at  time.Time
}

// stats counts resolved commits as observed on the engine's event broker.
type stats struct {
	committed int
	failed    int
	discarded int
}

// Model is the sheet page state. The engine is shared between copies of
// the Model; everything else is a value.
type Model struct {
	services mode.Services
	ctx      context.Context
	clock    clock.Clock
	crumbs   *telemetry.Breadcrumbs

	engine  *engine.Engine
	adapter *grid.Adapter
	pages   *cachemanager.ReadThroughCache[string, pageData, grid.Pagination]
	page    grid.Pagination
	title   string

	keys       keys.KeyMap
	dispatcher keys.Dispatcher
	table      table.Model
	editor     textinput.Model
	editTarget grid.Coord
	bulk       textinput.Model
	help       help.Model
	helpBar    bhelp.Model
	toaster    toaster.Model

	history   *pubsub.ContinuousListener[engine.Event]
	stats     stats
	lastSaved time.Time

	showHelp      bool
	loading       bool
	reloadPending bool
	err           error

	lastClick   click
	doubleClick time.Duration

	width  int
	height int
}

// New builds the page. ctx bounds every store and gateway call it makes.
func New(ctx context.Context, services mode.Services) (Model, error) {
	if services.Source == nil {
		return Model{}, ErrNoSource
	}
	cfg := services.Config
	if cfg == nil {
		d := config.Defaults()
		cfg = &d
		services.Config = cfg
	}
	if services.Clock == nil {
		services.Clock = clock.Real{}
	}
	if services.Events == nil {
		services.Events = pubsub.NewBroker[engine.Event]()
	}

	adapter, err := grid.NewAdapter(cfg.Columns(),
		grid.WithIDField(cfg.Store.Key),
		grid.WithRowNumbers(cfg.Grid.RowNumbers))
	if err != nil {
		return Model{}, fmt.Errorf("mounting columns: %w", err)
	}

	eng := engine.New(engine.Options{
		Gateway:         services.Gateway,
		Clipboard:       services.Clipboard,
		Clock:           services.Clock,
		Events:          services.Events,
		Flags:           services.Flags,
		CopyFlash:       cfg.Grid.CopyFlash,
		BulkConcurrency: cfg.Grid.BulkConcurrency,
	})

	source := services.Source
	fetch := func(ctx context.Context, p grid.Pagination) (pageData, error) {
		records, total, err := source.Page(ctx, p)
		return pageData{Records: records, Total: total}, err
	}
	cache := cachemanager.NewInMemoryCacheManager[string, pageData]("pages", pageTTL, 2*pageTTL)
	skipCache := !services.Flags.Enabled(flags.FlagPageCache)

	editor := textinput.New()
	editor.Prompt = ""
	bulk := textinput.New()
	bulk.Prompt = ""
	bulk.CharLimit = 256

	size := cfg.Grid.ItemsPerPage
	if size <= 0 {
		size = config.DefaultItemsPerPage
	}
	doubleClick := cfg.Grid.DoubleClick
	if doubleClick <= 0 {
		doubleClick = config.DefaultDoubleClick
	}

	km := keys.DefaultKeyMap()
	return Model{
		services:    services,
		ctx:         ctx,
		clock:       services.Clock,
		crumbs:      services.Reporter.Breadcrumbs(),
		engine:      eng,
		adapter:     adapter,
		pages:       cachemanager.NewReadThroughCache(cache, fetch, skipCache),
		page:        grid.Pagination{CurrentPage: 1, ItemsPerPage: size},
		title:       cfg.Store.Table,
		keys:        km,
		dispatcher:  keys.NewDispatcher(km),
		table:       table.New("sheet-"),
		editor:      editor,
		bulk:        bulk,
		help:        help.New(km, adapter.Columns()),
		helpBar:     bhelp.New(),
		toaster:     toaster.New(),
		history:     pubsub.NewContinuousListener(ctx, services.Events),
		loading:     true,
		doubleClick: doubleClick,
	}, nil
}

// Init loads the first page and starts following engine events.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(m.page, nil), m.history.Listen())
}

// Engine exposes the interaction engine, mainly for tests and embedders.
func (m Model) Engine() *engine.Engine { return m.engine }

// Page returns the current pagination window.
func (m Model) Page() grid.Pagination { return m.page }

// Loading reports whether a page fetch is in flight.
func (m Model) Loading() bool { return m.loading }

// ShowingHelp reports whether the help overlay is open.
func (m Model) ShowingHelp() bool { return m.showHelp }

// Editing reports whether an inline edit is open. The app uses this to
// keep global shortcuts out of the editor.
func (m Model) Editing() bool {
	_, open := m.engine.BulkPrompt()
	return open || m.engine.Mode() == engine.ModeEditing
}

// SetSize handles terminal resize.
func (m Model) SetSize(width, height int) Model {
	m.width, m.height = width, height
	m.table = m.table.SetSize(width, max(height-chrome, 0)).SetOrigin(0, 1)
	m.table = m.table.EnsureVisible(m.engine.Model(), m.engine.Focus())
	m.help = m.help.SetSize(width, height)
	m.helpBar.Width = width
	m.bulk.Width = max(width/2, 10)
	return m
}

// View renders the page.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	var editor string
	if m.engine.Mode() == engine.ModeEditing {
		editor = m.editor.View()
	}
	view := strings.Join([]string{
		m.renderTitle(),
		m.table.View(m.engine.Model(), m.cellState, editor),
		m.renderStatus(),
	}, "\n")
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	return zone.Scan(view)
}

func (m Model) cellState(p grid.Pos) table.CellState {
	e := m.engine
	st := table.CellState{
		Focused:  p == e.Focus(),
		Selected: e.Selection().Contains(p),
	}
	st.Flash = st.Selected && e.CopyFlashing()
	if c, ok := e.Model().CoordOf(p); ok {
		st.Pending = e.PendingAt(c)
		if target, _, editing := e.Editing(); editing && target == c {
			st.Editing = true
		}
	}
	return st
}

func (m Model) renderTitle() string {
	left := lipgloss.NewStyle().Bold(true).Foreground(styles.GridHeaderColor).Render("gridline") +
		styles.HintStyle.Render(" · "+m.title)

	var info []string
	if g := m.engine.Model(); !g.Empty() {
		p := m.page
		first := p.DisplayOrdinal(0)
		last := p.DisplayOrdinal(g.RowCount() - 1)
		info = append(info, fmt.Sprintf("page %d/%d", p.CurrentPage, p.TotalPages()),
			fmt.Sprintf("rows %d–%d of %d", first, last, p.TotalItems))
	}
	if m.loading {
		info = append(info, "loading…")
	}
	if n := m.engine.Pending(); n > 0 {
		info = append(info, fmt.Sprintf("saving %d", n))
	}
	if s := m.stats; s.committed+s.failed+s.discarded > 0 {
		info = append(info, fmt.Sprintf("✓%d ✗%d", s.committed, s.failed))
	}
	if !m.lastSaved.IsZero() {
		info = append(info, "saved "+clock.Since(m.lastSaved, m.clock))
	}
	right := styles.HintStyle.Render(strings.Join(info, " · "))

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m Model) renderStatus() string {
	if column, open := m.engine.BulkPrompt(); open {
		label := fmt.Sprintf("Set %s for %d selected cells: ", m.columnTitle(column), len(m.engine.Selection().Cells()))
		if m.engine.BulkRunning() {
			return styles.PromptStyle.Render(label) + styles.HintStyle.Render("saving…")
		}
		return styles.PromptStyle.Render(label) + m.bulk.View()
	}
	if m.engine.Mode() == engine.ModeEditing {
		return m.helpBar.ShortHelpView([]key.Binding{m.keys.Enter, m.keys.Tab, m.keys.ShiftTab, m.keys.Escape})
	}
	return m.helpBar.ShortHelpView(m.keys.ShortHelp())
}

func (m Model) columnTitle(id string) string {
	if g := m.engine.Model(); g != nil {
		if i, ok := g.ColumnIndex(id); ok {
			c, _ := g.Column(i)
			return c.Title()
		}
	}
	return id
}
