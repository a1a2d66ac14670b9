package sheet

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/config"
	"github.com/zjrosen/gridline/internal/engine"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/ui/toaster"
)

const (
	pageTTL         = 30 * time.Second
	pageSizeStep    = 10
	minItemsPerPage = 5
)

// pageData is one cached page fetch.
type pageData struct {
	Records []grid.Record
	Total   int
}

type pageLoadedMsg struct {
	page    grid.Pagination
	data    pageData
	restore *grid.Pos
	err     error
}

func pageKey(p grid.Pagination) string {
	return fmt.Sprintf("%d/%d", p.CurrentPage, p.ItemsPerPage)
}

func (m Model) loadCmd(p grid.Pagination, restore *grid.Pos) tea.Cmd {
	pages, ctx := m.pages, m.ctx
	return func() tea.Msg {
		data, err := pages.Get(ctx, pageKey(p), p, pageTTL)
		return pageLoadedMsg{page: p, data: data, restore: restore, err: err}
	}
}

func (m Model) handlePageLoaded(msg pageLoadedMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		m.loading = false
		m.err = msg.err
		log.ErrorErr(log.CatDB, "page load failed", msg.err, "page", msg.page.CurrentPage, "size", msg.page.ItemsPerPage)
		m.services.Reporter.CaptureError(msg.err, map[string]string{"op": "load_page"})
		cmd := m.toast("Loading records failed: "+msg.err.Error(), toaster.StyleError)
		return m, cmd
	}

	p := msg.page
	p.TotalItems = msg.data.Total
	if len(msg.data.Records) == 0 && p.CurrentPage > p.TotalPages() {
		// The table shrank under us; show its new last page instead.
		return m, m.loadCmd(p.WithPage(p.TotalPages()), msg.restore)
	}

	if m.engine.Mode() == engine.ModeEditing {
		log.Debug(log.CatGrid, "reload deferred while editing")
		m.loading = false
		m.reloadPending = true
		return m, nil
	}

	model, err := m.adapter.Build(msg.data.Records, p)
	if err != nil {
		m.loading = false
		m.err = err
		log.ErrorErr(log.CatGrid, "building grid failed", err)
		m.services.Reporter.CaptureError(err, map[string]string{"op": "build_grid"})
		cmd := m.toast(err.Error(), toaster.StyleError)
		return m, cmd
	}

	if p.CurrentPage != m.page.CurrentPage || p.ItemsPerPage != m.page.ItemsPerPage {
		m.table = m.table.Reset()
	}
	m.page = p
	m.loading = false
	m.err = nil
	m.engine.Load(model, msg.restore)
	m.table = m.table.EnsureVisible(model, m.engine.Focus())
	return m, m.syncEditor()
}

// Reload refetches the current page and keeps the focused cell. While an
// edit is open the reload waits until the edit ends.
func (m Model) Reload() (Model, tea.Cmd) {
	if m.engine.Mode() == engine.ModeEditing {
		m.reloadPending = true
		return m, nil
	}
	m.reloadPending = false
	m.invalidate()
	focus := m.engine.Focus()
	m.loading = true
	return m, m.loadCmd(m.page, &focus)
}

func (m Model) invalidate() {
	if err := m.pages.Invalidate(m.ctx); err != nil {
		log.ErrorErr(log.CatCache, "page cache flush failed", err)
	}
}

func (m Model) changePage(to int) (Model, tea.Cmd) {
	next := m.page.WithPage(to)
	if next.CurrentPage == m.page.CurrentPage {
		return m, nil
	}
	m.crumbs.Navigation("page", strconv.Itoa(next.CurrentPage))
	if h := m.services.Pages.OnPageChange; h != nil {
		h(next.CurrentPage)
	}
	m.loading = true
	return m, m.loadCmd(next, &grid.Pos{Col: m.engine.Focus().Col})
}

func (m Model) resizePage(size int) (Model, tea.Cmd) {
	size = min(max(size, minItemsPerPage), config.MaxItemsPerPage)
	if size == m.page.ItemsPerPage {
		return m, nil
	}
	next := m.page.WithItemsPerPage(size)
	m.crumbs.Navigation("page size", strconv.Itoa(size))
	if h := m.services.Pages.OnItemsPerPageChange; h != nil {
		h(size)
	}
	m.loading = true
	cmds := []tea.Cmd{m.loadCmd(next, &grid.Pos{Col: m.engine.Focus().Col})}
	if path := m.services.ConfigPath; path != "" {
		cmds = append(cmds, func() tea.Msg {
			if err := config.SaveItemsPerPage(path, size); err != nil {
				log.ErrorErr(log.CatConfig, "saving page size failed", err, "path", path)
			}
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}
