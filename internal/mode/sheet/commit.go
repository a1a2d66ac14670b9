package sheet

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/gridline/internal/bulkedit"
	"github.com/zjrosen/gridline/internal/engine"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/mode"
	"github.com/zjrosen/gridline/internal/ui/toaster"
)

// muteWindow covers the file events our own write produces after it returns.
const muteWindow = time.Second

type commitResolvedMsg struct {
	res engine.Resolution
}

type batchResolvedMsg struct {
	res engine.BatchResolution
}

func mute(w mode.Muter) {
	if w != nil {
		w.Mute(muteWindow)
	}
}

// commitCmd persists t off the event loop.
func (m Model) commitCmd(t engine.Ticket) tea.Cmd {
	e, ctx, w := m.engine, m.ctx, m.services.Watcher
	return func() tea.Msg {
		mute(w)
		res := e.Execute(ctx, t)
		mute(w)
		return commitResolvedMsg{res: res}
	}
}

func (m Model) handleCommitResolved(msg commitResolvedMsg) (Model, tea.Cmd) {
	u := m.engine.Resolve(msg.res)
	w := u.Ticket.Write
	m.crumbs.Persist(u.Status.String(), w.RecordID, w.ColumnID, u.Err)

	var cmds []tea.Cmd
	switch u.Status {
	case engine.StatusCommitted:
		m.invalidate()
	case engine.StatusFailed:
		m.invalidate()
		cause := u.Err
		var ce *gateway.CommitError
		if errors.As(cause, &ce) {
			cause = ce.Err
		}
		text := fmt.Sprintf("Saving %s in row %s failed: %v", m.columnTitle(w.ColumnID), m.rowLabel(w.RowIndex), cause)
		cmds = append(cmds, m.toast(text, toaster.StyleError))
	}
	cmds = append(cmds, m.apply(&engine.Effect{}))
	return m, tea.Batch(cmds...)
}

func (m Model) applyBulk() (Model, tea.Cmd) {
	batch, err := m.engine.ApplyBulk(m.bulk.Value())
	if err != nil {
		log.Debug(log.CatBulk, "bulk edit refused", "error", err)
		cmd := m.toast(err.Error(), toaster.StyleWarn)
		return m, cmd
	}
	m.bulk.Blur()
	m.crumbs.Navigation("bulk", fmt.Sprintf("%s=%q x%d", batch.Column, batch.Value, len(batch.Tickets)))

	e, ctx, w := m.engine, m.ctx, m.services.Watcher
	return m, func() tea.Msg {
		mute(w)
		res := e.ExecuteBatch(ctx, batch)
		mute(w)
		return batchResolvedMsg{res: res}
	}
}

func (m Model) handleBatchResolved(msg batchResolvedMsg) (Model, tea.Cmd) {
	report := m.engine.ResolveBatch(msg.res)
	m.invalidate()
	m.crumbs.Persist("bulk "+report.Outcome().String(), "", report.Column, report.Err)

	style := toaster.StyleSuccess
	var cmds []tea.Cmd
	switch report.Outcome() {
	case bulkedit.OutcomePartial, bulkedit.OutcomeStale:
		style = toaster.StyleWarn
	case bulkedit.OutcomeFailure:
		style = toaster.StyleError
		// the prompt stays open for a retry
		cmds = append(cmds, m.bulk.Focus())
	}
	cmds = append(cmds, m.toast(report.String(), style), m.apply(&engine.Effect{}))
	return m, tea.Batch(cmds...)
}

func (m Model) rowLabel(row int) string {
	if g := m.engine.Model(); g != nil && row < g.RowCount() {
		return g.RowLabel(row)
	}
	return fmt.Sprint(m.page.DisplayOrdinal(row))
}
