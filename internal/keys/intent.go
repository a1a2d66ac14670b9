package keys

// Intent is what a key press asks the grid to do.
type Intent int

const (
	IntentNone Intent = iota
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentExtendUp
	IntentExtendDown
	IntentExtendLeft
	IntentExtendRight
	IntentTab
	IntentShiftTab
	IntentHome
	IntentEnd
	IntentEnter
	IntentEscape
	IntentEdit
	IntentClear
	IntentSelectAll
	IntentCopy
	IntentPaste
	IntentBulkEdit
	IntentType // printable text; starts an edit
	IntentNextPage
	IntentPrevPage
	IntentGrowPage
	IntentShrinkPage
	IntentRefresh
	IntentHelp
	IntentQuit
)

var intentNames = [...]string{
	IntentNone:        "none",
	IntentUp:          "up",
	IntentDown:        "down",
	IntentLeft:        "left",
	IntentRight:       "right",
	IntentExtendUp:    "extend-up",
	IntentExtendDown:  "extend-down",
	IntentExtendLeft:  "extend-left",
	IntentExtendRight: "extend-right",
	IntentTab:         "tab",
	IntentShiftTab:    "shift-tab",
	IntentHome:        "home",
	IntentEnd:         "end",
	IntentEnter:       "enter",
	IntentEscape:      "escape",
	IntentEdit:        "edit",
	IntentClear:       "clear",
	IntentSelectAll:   "select-all",
	IntentCopy:        "copy",
	IntentPaste:       "paste",
	IntentBulkEdit:    "bulk-edit",
	IntentType:        "type",
	IntentNextPage:    "next-page",
	IntentPrevPage:    "prev-page",
	IntentGrowPage:    "grow-page",
	IntentShrinkPage:  "shrink-page",
	IntentRefresh:     "refresh",
	IntentHelp:        "help",
	IntentQuit:        "quit",
}

func (i Intent) String() string {
	if i < 0 || int(i) >= len(intentNames) {
		return "unknown"
	}
	return intentNames[i]
}

// Host reports whether the intent is handled by the hosting page rather
// than the grid engine.
func (i Intent) Host() bool {
	switch i {
	case IntentNextPage, IntentPrevPage, IntentGrowPage, IntentShrinkPage, IntentRefresh, IntentHelp, IntentQuit:
		return true
	}
	return false
}

// Command is one dispatched key press.
type Command struct {
	Intent Intent
	Text   string // set for IntentType
}
