package engine

import (
	"errors"
	"fmt"

	"github.com/zjrosen/gridline/internal/clipboard"
	"github.com/zjrosen/gridline/internal/flags"
	"github.com/zjrosen/gridline/internal/grid"
	"github.com/zjrosen/gridline/internal/keys"
	"github.com/zjrosen/gridline/internal/log"
	"github.com/zjrosen/gridline/internal/navigation"
	"github.com/zjrosen/gridline/internal/pubsub"
)

// Handle applies one dispatched key command.
func (e *Engine) Handle(cmd keys.Command) Effect {
	if e.empty() || cmd.Intent.Host() {
		return Effect{}
	}
	switch e.mode {
	case ModeEditing:
		return e.handleEditing(cmd)
	case ModeDragging:
		if cmd.Intent == keys.IntentEscape {
			e.Release()
		}
		return Effect{}
	default:
		return e.handleIdle(cmd)
	}
}

func (e *Engine) handleEditing(cmd keys.Command) Effect {
	b := e.Bounds()
	focus := e.sel.Focus()
	switch cmd.Intent {
	case keys.IntentEnter:
		eff := e.commitEdit()
		e.sel.SetFocus(navigation.Step(focus, navigation.Down, b))
		return eff
	case keys.IntentTab:
		eff := e.commitEdit()
		if to, ok := navigation.Next(focus, b); ok {
			e.sel.SetFocus(to)
		}
		return eff
	case keys.IntentShiftTab:
		eff := e.commitEdit()
		if to, ok := navigation.Prev(focus, b); ok {
			e.sel.SetFocus(to)
		}
		return eff
	case keys.IntentEscape:
		return e.cancelEdit()
	}
	return Effect{}
}

func (e *Engine) handleIdle(cmd keys.Command) Effect {
	b := e.Bounds()
	focus := e.sel.Focus()

	switch cmd.Intent {
	case keys.IntentUp:
		e.sel.SetFocus(navigation.Step(focus, navigation.Up, b))
	case keys.IntentDown, keys.IntentEnter:
		e.sel.SetFocus(navigation.Step(focus, navigation.Down, b))
	case keys.IntentLeft:
		e.sel.SetFocus(navigation.Step(focus, navigation.Left, b))
	case keys.IntentRight:
		e.sel.SetFocus(navigation.Step(focus, navigation.Right, b))

	case keys.IntentExtendUp:
		e.sel.ExtendTo(navigation.Step(focus, navigation.Up, b))
	case keys.IntentExtendDown:
		e.sel.ExtendTo(navigation.Step(focus, navigation.Down, b))
	case keys.IntentExtendLeft:
		e.sel.ExtendTo(navigation.Step(focus, navigation.Left, b))
	case keys.IntentExtendRight:
		e.sel.ExtendTo(navigation.Step(focus, navigation.Right, b))

	case keys.IntentTab:
		if to, ok := navigation.Next(focus, b); ok {
			e.sel.SetFocus(to)
		}
	case keys.IntentShiftTab:
		if to, ok := navigation.Prev(focus, b); ok {
			e.sel.SetFocus(to)
		}
	case keys.IntentHome:
		e.sel.SetFocus(navigation.RowStart(focus, b))
	case keys.IntentEnd:
		e.sel.SetFocus(navigation.RowEnd(focus, b))

	case keys.IntentEscape:
		if e.prompt.IsOpen() {
			e.CancelBulk()
			break
		}
		e.sel.Clear()
	case keys.IntentSelectAll:
		anchor, last := navigation.All(b)
		e.sel.SetRect(anchor, last)

	case keys.IntentEdit:
		return e.BeginEdit(focus, nil)
	case keys.IntentType:
		if !e.opts.Flags.Enabled(flags.FlagTypeToEdit) || !e.model.Editable(focus) {
			return Effect{}
		}
		return e.BeginEdit(focus, &cmd.Text)
	case keys.IntentClear:
		return e.clearCell(focus)
	case keys.IntentCopy:
		return e.copySelection()
	case keys.IntentPaste:
		return e.paste()
	case keys.IntentBulkEdit:
		return Effect{Err: e.OpenBulk()}
	}
	return Effect{}
}

// BeginEdit opens an edit of p. draft seeds the text; nil starts from the
// cell's value. An edit already open elsewhere is committed first.
func (e *Engine) BeginEdit(p grid.Pos, draft *string) Effect {
	var eff Effect
	if e.session.Active() {
		eff.add(e.commitEdit())
	}
	if !e.model.Editable(p) {
		eff.Err = fmt.Errorf("%w: %s", grid.ErrNotEditable, e.describe(p))
		return eff
	}
	c, _ := e.model.CoordOf(p)
	original := e.model.ValueAt(p)
	text := original
	if draft != nil {
		text = *draft
	}
	if err := e.session.Begin(c, original, text); err != nil {
		eff.Err = err
		return eff
	}
	e.mode = ModeEditing
	e.sel.SetFocus(p)
	return eff
}

// SetDraft replaces the text of the open edit.
func (e *Engine) SetDraft(text string) error {
	return e.session.SetDraft(text)
}

// StopEditing commits the open edit, if any, without moving focus.
func (e *Engine) StopEditing() Effect {
	if !e.session.Active() {
		return Effect{}
	}
	return e.commitEdit()
}

func (e *Engine) commitEdit() Effect {
	out, err := e.session.Commit()
	e.mode = ModeIdle
	if err != nil {
		return Effect{Err: err}
	}
	if !out.Changed() {
		log.Debug(log.CatEdit, "unchanged edit, nothing to commit", "cell", out.Target)
		return Effect{}
	}
	t, err := e.issue(out.Target, out.Value, "")
	if err != nil {
		return Effect{Err: err}
	}
	return Effect{Tickets: []Ticket{t}}
}

func (e *Engine) cancelEdit() Effect {
	err := e.session.Cancel()
	e.mode = ModeIdle
	return Effect{Err: err}
}

func (e *Engine) clearCell(p grid.Pos) Effect {
	if !e.model.Editable(p) {
		return Effect{Err: fmt.Errorf("%w: %s", grid.ErrNotEditable, e.describe(p))}
	}
	c, _ := e.model.CoordOf(p)
	if e.model.ValueAt(p) == "" {
		return Effect{}
	}
	t, err := e.issue(c, "", "")
	if err != nil {
		return Effect{Err: err}
	}
	return Effect{Tickets: []Ticket{t}}
}

func (e *Engine) copySelection() Effect {
	if e.bridge == nil {
		return Effect{Err: clipboard.ErrUnavailable}
	}
	cells := e.sel.Cells()
	if _, err := e.bridge.Copy(e.model, cells); err != nil {
		return Effect{Err: err}
	}
	e.flashUntil = e.opts.Clock.Now().Add(e.opts.CopyFlash)
	e.publish(pubsub.CopiedEvent, Event{Cells: len(cells)})
	return Effect{Notice: fmt.Sprintf("Copied %d cells", len(cells))}
}

func (e *Engine) paste() Effect {
	if e.bridge == nil {
		return Effect{Err: clipboard.ErrUnavailable}
	}
	targets, skipped, err := e.bridge.Paste(e.model, e.sel.Focus())
	if err != nil {
		return Effect{Err: err}
	}
	var eff Effect
	var errs []error
	unchanged := 0
	for _, tg := range targets {
		if v, ok := e.model.Value(tg.Coord); ok && v == tg.Value {
			unchanged++
			continue
		}
		t, err := e.issue(tg.Coord, tg.Value, "")
		if err != nil {
			errs = append(errs, err)
			continue
		}
		eff.Tickets = append(eff.Tickets, t)
	}
	eff.Err = errors.Join(errs...)
	if skipped > 0 || unchanged > 0 {
		eff.Notice = fmt.Sprintf("Pasted %d cells", len(eff.Tickets))
		if unchanged > 0 {
			eff.Notice += fmt.Sprintf(", %d unchanged", unchanged)
		}
		if skipped > 0 {
			eff.Notice += fmt.Sprintf(", skipped %d read-only or off-grid", skipped)
		}
	}
	e.publish(pubsub.PastedEvent, Event{Cells: len(eff.Tickets)})
	return eff
}

func (e *Engine) describe(p grid.Pos) string {
	if c, ok := e.model.CoordOf(p); ok {
		return c.String()
	}
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
