package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/gridline/internal/bulkedit"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/gateway"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/pubsub"
	"github.com/zjrosen/gridline/internal/selection"
)

func cmd(i keys.Intent) keys.Command { return keys.Command{Intent: i} }

func TestArrowsClampAtEdges(t *testing.T) {
	f := newFixture(t)
	last := f.e.Bounds().Rows - 1

	f.focus(pos(last, colName))
	f.e.Handle(cmd(keys.IntentDown))
	require.Equal(t, pos(last, colName), f.e.Focus())

	f.focus(pos(0, colAge))
	f.e.Handle(cmd(keys.IntentUp))
	require.Equal(t, pos(0, colAge), f.e.Focus())

	f.e.Handle(cmd(keys.IntentDown))
	require.Equal(t, pos(1, colAge), f.e.Focus())
}

func TestTabWrapsAndStopsAtLastCell(t *testing.T) {
	f := newFixture(t)
	b := f.e.Bounds()

	f.focus(pos(0, b.Cols-1))
	f.e.Handle(cmd(keys.IntentTab))
	require.Equal(t, pos(1, 0), f.e.Focus(), "tab wraps to the row-number column of the next row")

	f.focus(pos(b.Rows-1, b.Cols-1))
	f.e.Handle(cmd(keys.IntentTab))
	require.Equal(t, pos(b.Rows-1, b.Cols-1), f.e.Focus())

	f.focus(pos(0, 0))
	f.e.Handle(cmd(keys.IntentShiftTab))
	require.Equal(t, pos(0, 0), f.e.Focus())
}

func TestShiftArrowExtendsWithFixedAnchor(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(2, colName))

	f.e.Handle(cmd(keys.IntentExtendRight))

	sel := f.e.Selection()
	require.Equal(t, pos(2, colName), sel.Anchor())
	require.Equal(t, pos(2, colGender), sel.Focus())
	require.Equal(t, []grid.Pos{pos(2, colName), pos(2, colGender)}, sel.Cells())

	f.e.Handle(cmd(keys.IntentExtendDown))
	require.Equal(t, pos(2, colName), sel.Anchor())
	require.Equal(t, 4, sel.Len())
}

func TestEnterWhenIdleMovesDown(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(1, colAge))
	eff := f.e.Handle(cmd(keys.IntentEnter))
	require.Empty(t, eff.Tickets)
	require.Equal(t, pos(2, colAge), f.e.Focus())
}

func TestSelectAll(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(3, 3))
	f.e.Handle(cmd(keys.IntentSelectAll))

	b := f.e.Bounds()
	require.Equal(t, pos(0, 0), f.e.Selection().Anchor())
	require.Equal(t, pos(b.Rows-1, b.Cols-1), f.e.Focus())
	require.Equal(t, b.Rows*b.Cols, f.e.Selection().Len())

	f.e.Handle(cmd(keys.IntentEscape))
	require.True(t, f.e.Selection().IsSingle())
}

func TestEscapeAfterEditLeavesValue(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(1, colName))

	f.e.Handle(cmd(keys.IntentEdit))
	require.Equal(t, ModeEditing, f.e.Mode())

	eff := f.e.Handle(cmd(keys.IntentEscape))
	require.NoError(t, eff.Err)
	require.Empty(t, eff.Tickets)
	require.Equal(t, ModeIdle, f.e.Mode())
	require.Equal(t, "Kumar", f.value(t, 1, "name"))
	f.gw.AssertNotCalled(t, "CommitCell", mock.Anything, mock.Anything)
}

func TestEscapeDiscardsTypedDraft(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(1, colName))

	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Kumari"))
	f.e.Handle(cmd(keys.IntentEscape))

	require.Equal(t, "Kumar", f.value(t, 1, "name"))
	require.Zero(t, f.e.Pending())
}

func TestEditCommitIsOptimisticAndMovesDown(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.events.Subscribe(ctx)
	f.focus(pos(1, colName))

	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Sharma"))
	eff := f.e.Handle(cmd(keys.IntentEnter))

	require.NoError(t, eff.Err)
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, "Sharma", f.value(t, 1, "name"), "model updates before the gateway answers")
	require.Equal(t, pos(2, colName), f.e.Focus())
	require.Equal(t, 1, f.e.Pending())
	require.True(t, f.e.PendingAt(grid.Coord{Row: 1, Col: "name"}))

	want := gateway.Write{RowIndex: 1, ColumnID: "name", RecordID: "p2", Value: "Sharma"}
	require.Equal(t, want, eff.Tickets[0].Write)
	require.Equal(t, "Kumar", eff.Tickets[0].Old)

	f.gw.EXPECT().CommitCell(mock.Anything, want).Return(nil).Once()
	res := f.e.Execute(ctx, eff.Tickets[0])
	u := f.e.Resolve(res)

	require.Equal(t, StatusCommitted, u.Status)
	require.Zero(t, f.e.Pending())
	require.Equal(t, "Sharma", f.value(t, 1, "name"))

	issued := <-sub
	require.Equal(t, pubsub.IssuedEvent, issued.Type)
	committed := <-sub
	require.Equal(t, pubsub.CommittedEvent, committed.Type)
	require.Equal(t, "t1", committed.Payload.Update.Ticket.ID)
}

func TestUnchangedCommitIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(1, colName))

	f.e.Handle(cmd(keys.IntentEdit))
	eff := f.e.Handle(cmd(keys.IntentEnter))

	require.Empty(t, eff.Tickets)
	require.Equal(t, ModeIdle, f.e.Mode())
	require.Equal(t, pos(2, colName), f.e.Focus(), "focus still moves")
}

func TestTabCommitsAndAdvances(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colAge))

	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("32"))
	eff := f.e.Handle(cmd(keys.IntentTab))
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, pos(0, colDistrict), f.e.Focus())

	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Nagpur"))
	eff = f.e.Handle(cmd(keys.IntentShiftTab))
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, pos(0, colAge), f.e.Focus())
}

func TestTypeToEdit(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(3, colName))

	f.e.Handle(keys.Command{Intent: keys.IntentType, Text: "R"})
	coord, draft, ok := f.e.Editing()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 3, Col: "name"}, coord)
	require.Equal(t, "R", draft)

	f.e.Handle(cmd(keys.IntentEscape))

	f.focus(pos(3, colProfile))
	f.e.Handle(keys.Command{Intent: keys.IntentType, Text: "x"})
	require.Equal(t, ModeIdle, f.e.Mode(), "read-only cells ignore typing")
}

func TestTypeToEditDisabledByFlag(t *testing.T) {
	f := newFixture(t, withFlag(flags.FlagTypeToEdit, false))
	f.focus(pos(0, colName))
	f.e.Handle(keys.Command{Intent: keys.IntentType, Text: "a"})
	require.Equal(t, ModeIdle, f.e.Mode())
}

func TestEditRefusedOnHeaderAndReadOnly(t *testing.T) {
	f := newFixture(t)

	f.focus(pos(0, 0))
	eff := f.e.Handle(cmd(keys.IntentEdit))
	require.ErrorIs(t, eff.Err, grid.ErrNotEditable)
	require.Equal(t, ModeIdle, f.e.Mode())

	f.focus(pos(0, colProfile))
	eff = f.e.Handle(cmd(keys.IntentClear))
	require.ErrorIs(t, eff.Err, grid.ErrNotEditable)
}

func TestClearCommitsEmptyValue(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(2, colDistrict))

	eff := f.e.Handle(cmd(keys.IntentClear))
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, "", eff.Tickets[0].Write.Value)
	require.Equal(t, "", f.value(t, 2, "district"))

	eff = f.e.Handle(cmd(keys.IntentClear))
	require.Empty(t, eff.Tickets, "already empty")
}

func TestOpeningSecondEditCommitsFirst(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Asha K"))

	eff := f.e.BeginEdit(pos(4, colDistrict), nil)
	require.NoError(t, eff.Err)
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, "name", eff.Tickets[0].Write.ColumnID)

	coord, draft, ok := f.e.Editing()
	require.True(t, ok)
	require.Equal(t, grid.Coord{Row: 4, Col: "district"}, coord)
	require.Equal(t, "Pune", draft)
}

func TestCopyPasteRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.e.Selection().SetRect(pos(0, colName), pos(1, colGender))

	eff := f.e.Handle(cmd(keys.IntentCopy))
	require.NoError(t, eff.Err)
	text, err := f.clip.Read()
	require.NoError(t, err)
	require.Equal(t, "Asha\tF\nKumar\tM", text)

	f.focus(pos(3, colName))
	eff = f.e.Handle(cmd(keys.IntentPaste))
	require.NoError(t, eff.Err)
	require.Len(t, eff.Tickets, 4, "one ticket per cell")

	require.Equal(t, "Asha", f.value(t, 3, "name"))
	require.Equal(t, "F", f.value(t, 3, "gender"))
	require.Equal(t, "Kumar", f.value(t, 4, "name"))
	require.Equal(t, "M", f.value(t, 4, "gender"))
}

func TestPasteSkipsReadOnlyAndOffGrid(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.clip.Write("Delhi\tcomposite\textra\nAgra"))

	f.focus(pos(4, colDistrict))
	eff := f.e.Handle(cmd(keys.IntentPaste))
	require.Len(t, eff.Tickets, 1)
	require.Contains(t, eff.Notice, "skipped 3")
}

func TestPasteOntoIdenticalCellsIsNoOp(t *testing.T) {
	f := newFixture(t)
	f.e.Selection().SetRect(pos(0, colName), pos(1, colGender))
	require.NoError(t, f.e.Handle(cmd(keys.IntentCopy)).Err)

	f.focus(pos(0, colName))
	eff := f.e.Handle(cmd(keys.IntentPaste))

	require.NoError(t, eff.Err)
	require.Empty(t, eff.Tickets)
	require.Zero(t, f.e.Pending())
	require.Equal(t, "Pasted 0 cells, 4 unchanged", eff.Notice)
}

func TestPasteCommitsOnlyChangedCells(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.clip.Write("Asha\tM"))

	f.focus(pos(0, colName))
	eff := f.e.Handle(cmd(keys.IntentPaste))

	require.Len(t, eff.Tickets, 1)
	require.Equal(t, grid.Coord{Row: 0, Col: "gender"}, eff.Tickets[0].Coord())
	require.Equal(t, "M", f.value(t, 0, "gender"))
	require.Contains(t, eff.Notice, "1 unchanged")
}

func TestCopyFlashExpires(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colName))

	f.e.Handle(cmd(keys.IntentCopy))
	require.True(t, f.e.CopyFlashing())
	require.Equal(t, base.Add(DefaultCopyFlash), f.e.FlashDeadline())

	f.now = base.Add(time.Second)
	require.False(t, f.e.CopyFlashing())
}

func TestBulkEditOnlyTargetColumn(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.e.Selection().SetSet([]grid.Pos{
		pos(1, colDistrict),
		pos(3, colDistrict),
		pos(0, colName),
		pos(2, colAge),
	}, pos(0, colDistrict))
	require.Equal(t, 5, f.e.Selection().Len())

	require.NoError(t, f.e.OpenBulk())
	column, open := f.e.BulkPrompt()
	require.True(t, open)
	require.Equal(t, "district", column)

	batch, err := f.e.ApplyBulk("Jaipur")
	require.NoError(t, err)
	require.Len(t, batch.Tickets, 3)
	require.True(t, f.e.BulkRunning())
	for _, r := range []int{0, 1, 3} {
		require.Equal(t, "Jaipur", f.value(t, r, "district"))
	}
	require.Equal(t, "Agra", f.value(t, 2, "district"))

	f.gw.EXPECT().CommitCell(mock.Anything, mock.MatchedBy(func(w gateway.Write) bool {
		return w.ColumnID == "district" && w.Value == "Jaipur"
	})).Return(nil).Times(3)

	report := f.e.ResolveBatch(f.e.ExecuteBatch(ctx, batch))
	require.Equal(t, 3, report.Succeeded)
	require.Equal(t, bulkedit.OutcomeSuccess, report.Outcome())
	require.True(t, f.e.Selection().IsSingle(), "selection is cleared")
	_, open = f.e.BulkPrompt()
	require.False(t, open)
	require.False(t, f.e.BulkRunning())
}

func TestBulkEditPartialFailureClearsSelection(t *testing.T) {
	f := newFixture(t)
	f.e.Selection().SetRect(pos(0, colAge), pos(2, colAge))
	require.NoError(t, f.e.OpenBulk())

	batch, err := f.e.ApplyBulk("40")
	require.NoError(t, err)

	f.gw.EXPECT().CommitCell(mock.Anything, mock.MatchedBy(func(w gateway.Write) bool { return w.RowIndex == 1 })).
		Return(errors.New("constraint")).Once()
	f.gw.EXPECT().CommitCell(mock.Anything, mock.Anything).Return(nil).Times(2)

	report := f.e.ResolveBatch(f.e.ExecuteBatch(context.Background(), batch))
	require.Equal(t, bulkedit.OutcomePartial, report.Outcome())
	require.Equal(t, 2, report.Succeeded)
	require.Equal(t, 1, report.Failed)
	require.True(t, f.e.Selection().IsSingle())
	require.Error(t, report.Err)
}

func TestBulkEditTotalFailureKeepsSelection(t *testing.T) {
	f := newFixture(t)
	f.e.Selection().SetRect(pos(0, colAge), pos(2, colAge))
	require.NoError(t, f.e.OpenBulk())

	batch, err := f.e.ApplyBulk("40")
	require.NoError(t, err)

	f.gw.EXPECT().CommitCell(mock.Anything, mock.Anything).Return(errors.New("offline")).Times(3)
	report := f.e.ResolveBatch(f.e.ExecuteBatch(context.Background(), batch))

	require.Equal(t, bulkedit.OutcomeFailure, report.Outcome())
	require.Equal(t, 3, f.e.Selection().Len())
	_, open := f.e.BulkPrompt()
	require.True(t, open, "prompt stays open for a retry")
}

func TestBulkEditRefusals(t *testing.T) {
	f := newFixture(t)

	_, err := f.e.ApplyBulk("x")
	require.ErrorIs(t, err, bulkedit.ErrPromptClosed)

	f.focus(pos(0, colProfile))
	require.ErrorIs(t, f.e.OpenBulk(), grid.ErrNotEditable)

	f.focus(pos(0, colName))
	require.NoError(t, f.e.OpenBulk())
	_, err = f.e.ApplyBulk("x")
	require.NoError(t, err)
	_, err = f.e.ApplyBulk("y")
	require.ErrorIs(t, err, ErrBulkInFlight)

	f.e.Handle(cmd(keys.IntentEscape))
	_, open := f.e.BulkPrompt()
	require.False(t, open)
}

func TestBulkEditAfterReloadIsStale(t *testing.T) {
	f := newFixture(t)
	f.e.Selection().SetRect(pos(0, colDistrict), pos(2, colDistrict))
	require.NoError(t, f.e.OpenBulk())
	batch, err := f.e.ApplyBulk("Jaipur")
	require.NoError(t, err)
	require.Len(t, batch.Tickets, 3)

	f.e.Load(buildModel(t, peopleRecords()[3:], grid.Pagination{}), nil)

	outcomes := make([]gateway.Outcome, len(batch.Tickets))
	for i, tk := range batch.Tickets {
		outcomes[i] = gateway.Outcome{Write: tk.Write}
	}
	report := f.e.ResolveBatch(BatchResolution{Batch: batch, Result: gateway.NewBatchResult(outcomes)})

	require.Equal(t, bulkedit.OutcomeStale, report.Outcome())
	require.Equal(t, 3, report.Discarded)
	require.Zero(t, report.Succeeded)
	require.Contains(t, report.String(), "rows changed")
	require.False(t, f.e.BulkRunning())
	require.Equal(t, "Kota", f.value(t, 0, "district"), "new rows are untouched")
}

func TestRowLabelsFollowPagination(t *testing.T) {
	f := newFixture(t)
	recs := make([]grid.Record, 5)
	for i := range recs {
		recs[i] = grid.Record{"id": i, "name": "n"}
	}
	f.e.Load(buildModel(t, recs, grid.Pagination{CurrentPage: 3, ItemsPerPage: 100, TotalItems: 1000}), nil)

	require.Equal(t, "204", f.e.Model().RowLabel(3))
	require.Equal(t, "204", f.e.Model().ValueAt(pos(3, 0)))
}

func TestStaleResolutionIsDiscarded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sub := f.events.Subscribe(ctx)

	f.focus(pos(0, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Asha P"))
	eff := f.e.Handle(cmd(keys.IntentEnter))
	require.Len(t, eff.Tickets, 1)
	<-sub

	shifted := peopleRecords()[1:]
	f.e.Load(buildModel(t, shifted, grid.Pagination{}), nil)
	<-sub

	u := f.e.Resolve(Resolution{Ticket: eff.Tickets[0]})
	require.Equal(t, StatusDiscarded, u.Status)
	require.Equal(t, "Kumar", f.value(t, 0, "name"), "the new row is untouched")

	ev := <-sub
	require.Equal(t, pubsub.DiscardedEvent, ev.Type)
}

func TestResolutionAfterReloadOfSameRecordStillApplies(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Asha P"))
	eff := f.e.Handle(cmd(keys.IntentEnter))

	f.e.Load(buildModel(t, peopleRecords(), grid.Pagination{}), nil)

	u := f.e.Resolve(Resolution{Ticket: eff.Tickets[0], Err: errors.New("timeout")})
	require.Equal(t, StatusFailed, u.Status)
}

func TestFailureIsReportedWithoutRollback(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(1, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Sharma"))
	eff := f.e.Handle(cmd(keys.IntentEnter))

	f.gw.EXPECT().CommitCell(mock.Anything, mock.Anything).Return(errors.New("denied")).Once()
	res := f.e.Execute(context.Background(), eff.Tickets[0])
	var ce *gateway.CommitError
	require.ErrorAs(t, res.Err, &ce)

	u := f.e.Resolve(res)
	require.Equal(t, StatusFailed, u.Status)
	require.Equal(t, "Sharma", f.value(t, 1, "name"))
}

func TestRevertOnFailureFlag(t *testing.T) {
	f := newFixture(t, withFlag(flags.FlagRevertOnFailure, true))
	f.focus(pos(1, colName))

	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Sharma"))
	first := f.e.Handle(cmd(keys.IntentEnter)).Tickets[0]

	f.focus(pos(1, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Shah"))
	second := f.e.Handle(cmd(keys.IntentEnter)).Tickets[0]

	f.e.Resolve(Resolution{Ticket: first, Err: errors.New("x")})
	require.Equal(t, "Shah", f.value(t, 1, "name"), "a newer value is never rolled back")

	f.e.Resolve(Resolution{Ticket: second, Err: errors.New("x")})
	require.Equal(t, "Sharma", f.value(t, 1, "name"), "rolled back to what the failed ticket replaced")
}

func TestUnknownResolutionIsIgnored(t *testing.T) {
	f := newFixture(t)
	u := f.e.Resolve(Resolution{Ticket: Ticket{ID: "nope"}})
	require.Equal(t, StatusDiscarded, u.Status)
}

func TestLoadDiscardsOpenEdit(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(2, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("changed"))

	restore := pos(9, 9)
	f.e.Load(buildModel(t, peopleRecords(), grid.Pagination{}), &restore)

	require.Equal(t, ModeIdle, f.e.Mode())
	_, _, editing := f.e.Editing()
	require.False(t, editing)
	require.Equal(t, pos(4, colProfile), f.e.Focus(), "restore is clamped")
	require.Zero(t, f.e.Pending())
}

func TestLoadDuringDragEndsGesture(t *testing.T) {
	f := newFixture(t)
	f.e.Press(pos(0, colName), 0)
	require.True(t, f.e.Drag(pos(2, colAge)))

	f.e.Load(buildModel(t, peopleRecords(), grid.Pagination{}), nil)

	require.Equal(t, ModeIdle, f.e.Mode())
	require.False(t, f.e.Drag(pos(3, colName)), "the gesture died with the old grid")
	f.e.Release()
	sel := f.e.Selection()
	require.Equal(t, selection.ShapeRect, sel.Shape())
	require.True(t, sel.IsSingle())
	require.Equal(t, pos(0, 0), sel.Focus())
}

func TestPointerDragSelectsRectangle(t *testing.T) {
	f := newFixture(t)

	f.e.Press(pos(1, colName), 0)
	require.Equal(t, ModeDragging, f.e.Mode())
	require.True(t, f.e.Drag(pos(3, colAge)))
	require.True(t, f.e.Drag(pos(3, 99)), "moves are clamped to the grid")
	f.e.Drag(pos(3, colAge))
	f.e.Release()

	require.Equal(t, ModeIdle, f.e.Mode())
	sel := f.e.Selection()
	require.Equal(t, selection.ShapeSet, sel.Shape())
	require.Equal(t, 9, sel.Len())
	require.Equal(t, pos(1, colName), sel.Anchor())
	require.Equal(t, pos(3, colAge), sel.Focus())

	require.False(t, f.e.Drag(pos(0, 0)), "no drag after release")
}

func TestPointerModifiers(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colName))

	f.e.Press(pos(2, colName), ModCtrl)
	require.Equal(t, 2, f.e.Selection().Len())
	require.Equal(t, ModeIdle, f.e.Mode())

	f.focus(pos(0, colName))
	f.e.Press(pos(1, colGender), ModShift)
	require.Equal(t, pos(0, colName), f.e.Selection().Anchor())
	require.Equal(t, 4, f.e.Selection().Len())
}

func TestPressElsewhereCommitsEdit(t *testing.T) {
	f := newFixture(t)
	f.focus(pos(0, colName))
	f.e.Handle(cmd(keys.IntentEdit))
	require.NoError(t, f.e.SetDraft("Asha R"))

	eff := f.e.Press(pos(0, colName), 0)
	require.Empty(t, eff.Tickets, "pressing inside the edited cell keeps editing")
	require.Equal(t, ModeEditing, f.e.Mode())

	eff = f.e.Press(pos(3, colAge), 0)
	require.Len(t, eff.Tickets, 1)
	require.Equal(t, "Asha R", f.value(t, 0, "name"))
	require.Equal(t, ModeDragging, f.e.Mode())
	f.e.Release()
}

func TestDoubleClickEdits(t *testing.T) {
	f := newFixture(t)
	f.e.Press(pos(4, colDistrict), 0)
	eff := f.e.DoubleClick(pos(4, colDistrict))
	require.NoError(t, eff.Err)
	require.Equal(t, ModeEditing, f.e.Mode())

	eff = f.e.StopEditing()
	require.Empty(t, eff.Tickets)
	require.Equal(t, ModeIdle, f.e.Mode())
}

func TestKeysIgnoredWhileDragging(t *testing.T) {
	f := newFixture(t)
	f.e.Press(pos(1, colName), 0)
	f.e.Handle(cmd(keys.IntentDown))
	require.Equal(t, pos(1, colName), f.e.Focus())

	f.e.Handle(cmd(keys.IntentEscape))
	require.Equal(t, ModeIdle, f.e.Mode())
}

func TestEmptyGridIgnoresInput(t *testing.T) {
	f := newFixture(t)
	f.e.Load(buildModel(t, nil, grid.Pagination{}), nil)

	require.Equal(t, Effect{}, f.e.Handle(cmd(keys.IntentDown)))
	require.Equal(t, Effect{}, f.e.Press(pos(0, 0), 0))
	require.ErrorIs(t, f.e.OpenBulk(), ErrEmptyGrid)
}

func TestExecuteWithoutGateway(t *testing.T) {
	e := New(Options{})
	res := e.Execute(context.Background(), Ticket{ID: "x"})
	require.ErrorIs(t, res.Err, ErrNoGateway)

	br := e.ExecuteBatch(context.Background(), Batch{Tickets: []Ticket{{ID: "a"}}})
	require.True(t, br.Result.AllFailed())
}
