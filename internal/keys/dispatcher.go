package keys

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type route struct {
	binding key.Binding
	intent  Intent
}

// Dispatcher normalizes key messages into exactly one Command.
type Dispatcher struct {
	idle    []route
	editing []route
}

// NewDispatcher builds the routing tables for km. Order matters: the first
// matching binding wins, so shifted arrows are listed before plain ones.
func NewDispatcher(km KeyMap) Dispatcher {
	return Dispatcher{
		idle: []route{
			{km.ExtendUp, IntentExtendUp},
			{km.ExtendDown, IntentExtendDown},
			{km.ExtendLeft, IntentExtendLeft},
			{km.ExtendRight, IntentExtendRight},
			{km.Up, IntentUp},
			{km.Down, IntentDown},
			{km.Left, IntentLeft},
			{km.Right, IntentRight},
			{km.ShiftTab, IntentShiftTab},
			{km.Tab, IntentTab},
			{km.Home, IntentHome},
			{km.End, IntentEnd},
			{km.Enter, IntentEnter},
			{km.Escape, IntentEscape},
			{km.Edit, IntentEdit},
			{km.Clear, IntentClear},
			{km.SelectAll, IntentSelectAll},
			{km.Copy, IntentCopy},
			{km.Paste, IntentPaste},
			{km.BulkEdit, IntentBulkEdit},
			{km.NextPage, IntentNextPage},
			{km.PrevPage, IntentPrevPage},
			{km.GrowPage, IntentGrowPage},
			{km.ShrinkPage, IntentShrinkPage},
			{km.Refresh, IntentRefresh},
			{km.Help, IntentHelp},
			{km.Quit, IntentQuit},
		},
		editing: []route{
			{km.Enter, IntentEnter},
			{km.ShiftTab, IntentShiftTab},
			{km.Tab, IntentTab},
			{km.Escape, IntentEscape},
			{km.Quit, IntentQuit},
		},
	}
}

// Dispatch maps msg to a command. While editing only the keys that end an
// edit are intents; everything else is left to the text input.
func (d Dispatcher) Dispatch(msg tea.KeyMsg, editing bool) Command {
	table := d.idle
	if editing {
		table = d.editing
	}
	for _, r := range table {
		if key.Matches(msg, r.binding) {
			return Command{Intent: r.intent}
		}
	}
	if !editing {
		if text, ok := printable(msg); ok {
			return Command{Intent: IntentType, Text: text}
		}
	}
	return Command{Intent: IntentNone}
}

func printable(msg tea.KeyMsg) (string, bool) {
	if msg.Alt {
		return "", false
	}
	switch msg.Type {
	case tea.KeyRunes:
		return string(msg.Runes), len(msg.Runes) > 0
	case tea.KeySpace:
		return " ", true
	}
	return "", false
}
