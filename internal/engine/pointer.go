package engine

import "github.com/zjrosen/gridline/internal/grid"

// Modifier is a set of keyboard modifiers held during a pointer press.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
)

// Press handles a pointer press on p. A plain press starts a drag, shift
// extends from the anchor, ctrl toggles the cell. Pressing outside the
// cell being edited commits the edit first.
func (e *Engine) Press(p grid.Pos, mods Modifier) Effect {
	if e.empty() || !e.model.Contains(p) {
		return Effect{}
	}
	var eff Effect
	if e.session.Active() {
		if target, _ := e.model.PosOf(e.session.Target()); target == p && mods == 0 {
			return eff
		}
		eff.add(e.commitEdit())
	}
	switch {
	case mods&ModCtrl != 0:
		e.sel.Toggle(p)
	case mods&ModShift != 0:
		e.sel.ExtendTo(p)
	default:
		e.sel.BeginDrag(p)
		e.mode = ModeDragging
	}
	return eff
}

// Drag moves an active drag to p, clamped to the grid. It reports whether
// the selection changed.
func (e *Engine) Drag(p grid.Pos) bool {
	if e.mode != ModeDragging {
		return false
	}
	return e.sel.DragTo(e.Bounds().Clamp(p))
}

// Release ends an active drag.
func (e *Engine) Release() {
	if e.mode != ModeDragging {
		return
	}
	e.sel.EndDrag()
	e.mode = ModeIdle
}

// DoubleClick opens an edit of p.
func (e *Engine) DoubleClick(p grid.Pos) Effect {
	if e.empty() || !e.model.Contains(p) {
		return Effect{}
	}
	e.Release()
	return e.BeginEdit(p, nil)
}
