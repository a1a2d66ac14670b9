package sheet

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/engine"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/ui/toaster"
)

type flashDoneMsg struct{}

// Update handles messages for the page.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case pageLoadedMsg:
		return m.handlePageLoaded(msg)
	case commitResolvedMsg:
		return m.handleCommitResolved(msg)
	case batchResolvedMsg:
		return m.handleBatchResolved(msg)
	case pubsub.Event[engine.Event]:
		m.stats.observe(msg.Type)
		if msg.Type == pubsub.CommittedEvent {
			m.lastSaved = m.clock.Now()
		}
		return m, m.history.Listen()
	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil
	case flashDoneMsg:
		return m, nil
	}

	if m.engine.Mode() == engine.ModeEditing {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (s *stats) observe(t pubsub.EventType) {
	switch t {
	case pubsub.CommittedEvent:
		s.committed++
	case pubsub.FailedEvent:
		s.failed++
	case pubsub.DiscardedEvent:
		s.discarded++
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.crumbs.Key(msg.String())

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape) {
			m.showHelp = false
			return m, nil
		}
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		return m, cmd
	}

	if _, open := m.engine.BulkPrompt(); open {
		return m.handleBulkKey(msg)
	}

	editing := m.engine.Mode() == engine.ModeEditing
	command := m.dispatcher.Dispatch(msg, editing)

	if editing && command.Intent == keys.IntentNone {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		if err := m.engine.SetDraft(m.editor.Value()); err != nil {
			log.ErrorErr(log.CatEdit, "draft update rejected", err)
		}
		return m, cmd
	}
	if command.Intent.Host() {
		return m.handleHostIntent(command.Intent)
	}

	eff := m.engine.Handle(command)
	var cmds []tea.Cmd
	if _, open := m.engine.BulkPrompt(); open && command.Intent == keys.IntentBulkEdit {
		m.bulk.Reset()
		m.bulk.Placeholder = m.engine.Model().ValueAt(m.engine.Focus())
		cmds = append(cmds, m.bulk.Focus())
	}
	cmds = append(cmds, m.apply(&eff))
	return m, tea.Batch(cmds...)
}

func (m Model) handleHostIntent(intent keys.Intent) (Model, tea.Cmd) {
	switch intent {
	case keys.IntentNextPage:
		return m.changePage(m.page.CurrentPage + 1)
	case keys.IntentPrevPage:
		return m.changePage(m.page.CurrentPage - 1)
	case keys.IntentGrowPage:
		return m.resizePage(m.page.ItemsPerPage + pageSizeStep)
	case keys.IntentShrinkPage:
		return m.resizePage(m.page.ItemsPerPage - pageSizeStep)
	case keys.IntentRefresh:
		return m.Reload()
	case keys.IntentHelp:
		m.showHelp = true
		return m, nil
	case keys.IntentQuit:
		if n := m.engine.Pending(); n > 0 {
			log.Warn(log.CatPersist, "quitting with commits in flight", "pending", n)
		}
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleBulkKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.engine.BulkRunning() {
		return m, nil
	}
	switch msg.Type {
	case tea.KeyEsc:
		m.engine.CancelBulk()
		m.bulk.Blur()
		return m, nil
	case tea.KeyEnter:
		return m.applyBulk()
	}
	var cmd tea.Cmd
	m.bulk, cmd = m.bulk.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.showHelp {
		return m, nil
	}
	if _, open := m.engine.BulkPrompt(); open {
		return m, nil
	}
	g := m.engine.Model()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			eff := m.engine.Handle(keys.Command{Intent: keys.IntentUp})
			cmd := m.apply(&eff)
			return m, cmd
		case tea.MouseButtonWheelDown:
			eff := m.engine.Handle(keys.Command{Intent: keys.IntentDown})
			cmd := m.apply(&eff)
			return m, cmd
		case tea.MouseButtonLeft:
		default:
			return m, nil
		}

		p, ok := m.table.CellAt(g, msg)
		if !ok {
			return m, nil
		}
		now := m.clock.Now()
		if m.isDoubleClick(msg, p, now) {
			m.lastClick = click{}
			m.crumbs.Mouse("double-click", p.Row, p.Col)
			eff := m.engine.DoubleClick(p)
			cmd := m.apply(&eff)
			return m, cmd
		}
		m.lastClick = click{pos: p, at: now}
		m.crumbs.Mouse("press", p.Row, p.Col)

		var mods engine.Modifier
		if msg.Shift {
			mods |= engine.ModShift
		}
		if msg.Ctrl {
			mods |= engine.ModCtrl
		}
		eff := m.engine.Press(p, mods)
		cmd := m.apply(&eff)
		return m, cmd

	case tea.MouseActionMotion:
		if m.engine.Mode() != engine.ModeDragging {
			return m, nil
		}
		if p, ok := m.table.CellAt(g, msg); ok && m.engine.Drag(p) {
			m.table = m.table.EnsureVisible(g, p)
		}
		return m, nil

	case tea.MouseActionRelease:
		if m.engine.Mode() == engine.ModeDragging {
			m.engine.Release()
			m.crumbs.Mouse("release", m.engine.Focus().Row, m.engine.Focus().Col)
		}
	}
	return m, nil
}

// isDoubleClick reports whether a plain press on p follows the previous one
// on the same cell within the double-click window. Clicks inside the open
// editor never count, so they do not reopen it.
func (m Model) isDoubleClick(msg tea.MouseMsg, p grid.Pos, now time.Time) bool {
	if msg.Shift || msg.Ctrl || m.lastClick.at.IsZero() || m.lastClick.pos != p {
		return false
	}
	if target, _, editing := m.engine.Editing(); editing {
		if tp, ok := m.engine.Model().PosOf(target); ok && tp == p {
			return false
		}
	}
	return now.Sub(m.lastClick.at) <= m.doubleClick
}

// apply turns an engine effect into commands: one per ticket, a banner for
// errors and notices, and the follow-ups for edit and flash state.
func (m *Model) apply(eff *engine.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, t := range eff.Tickets {
		cmds = append(cmds, m.commitCmd(t))
	}

	switch {
	case eff.Err != nil:
		style := toaster.StyleError
		if errors.Is(eff.Err, grid.ErrNotEditable) {
			style = toaster.StyleWarn
		}
		log.Debug(log.CatGrid, "action refused", "error", eff.Err)
		cmds = append(cmds, m.toast(eff.Err.Error(), style))
	case eff.Notice != "":
		cmds = append(cmds, m.toast(eff.Notice, toaster.StyleInfo))
	}

	cmds = append(cmds, m.syncEditor())
	if m.engine.CopyFlashing() {
		d := m.engine.FlashDeadline().Sub(m.clock.Now())
		cmds = append(cmds, tea.Tick(d, func(time.Time) tea.Msg { return flashDoneMsg{} }))
	}
	m.table = m.table.EnsureVisible(m.engine.Model(), m.engine.Focus())

	if m.reloadPending && m.engine.Mode() != engine.ModeEditing {
		var cmd tea.Cmd
		*m, cmd = m.Reload()
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// syncEditor points the text input at the engine's edit session.
func (m *Model) syncEditor() tea.Cmd {
	target, draft, ok := m.engine.Editing()
	if !ok {
		m.editor.Blur()
		m.editTarget = grid.Coord{}
		return nil
	}
	if m.editor.Focused() && m.editTarget == target {
		return nil
	}
	m.editTarget = target
	m.editor.SetValue(draft)
	m.editor.CursorEnd()
	if g := m.engine.Model(); g != nil {
		if i, ok := g.ColumnIndex(target.Col); ok {
			c, _ := g.Column(i)
			m.editor.Width = max(c.Width-1, 1)
		}
	}
	m.crumbs.Navigation("edit", target.String())
	return m.editor.Focus()
}

func (m *Model) toast(text string, style toaster.Style) tea.Cmd {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style, toastDuration)
	return cmd
}
