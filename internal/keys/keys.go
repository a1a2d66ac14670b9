// Package keys contains keybinding definitions and the dispatcher that
// turns key presses into grid intents.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the grid.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Home     key.Binding
	End      key.Binding

	// Selection
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding
	SelectAll   key.Binding

	// Editing
	Enter    key.Binding
	Edit     key.Binding
	Clear    key.Binding
	Escape   key.Binding
	Copy     key.Binding
	Paste    key.Binding
	BulkEdit key.Binding

	// Paging
	NextPage   key.Binding
	PrevPage   key.Binding
	GrowPage   key.Binding
	ShrinkPage key.Binding
	Refresh    key.Binding

	// General
	Help key.Binding
	Logs key.Binding // debug log overlay, handled by the app
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "move right"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next cell"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous cell"),
		),
		Home: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first column"),
		),
		End: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last column"),
		),

		ExtendUp: key.NewBinding(
			key.WithKeys("shift+up"),
			key.WithHelp("shift+↑", "extend up"),
		),
		ExtendDown: key.NewBinding(
			key.WithKeys("shift+down"),
			key.WithHelp("shift+↓", "extend down"),
		),
		ExtendLeft: key.NewBinding(
			key.WithKeys("shift+left"),
			key.WithHelp("shift+←", "extend left"),
		),
		ExtendRight: key.NewBinding(
			key.WithKeys("shift+right"),
			key.WithHelp("shift+→", "extend right"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "select all"),
		),

		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "commit / move down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "edit cell"),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete", "backspace"),
			key.WithHelp("del", "clear cell"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "copy"),
		),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "paste"),
		),
		BulkEdit: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "bulk edit column"),
		),

		NextPage: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "next page"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "previous page"),
		),
		GrowPage: key.NewBinding(
			key.WithKeys("alt++", "alt+="),
			key.WithHelp("alt++", "more rows per page"),
		),
		ShrinkPage: key.NewBinding(
			key.WithKeys("alt+-"),
			key.WithHelp("alt+-", "fewer rows per page"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reload"),
		),

		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "help"),
		),
		Logs: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "debug log"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q"),
			key.WithHelp("ctrl+q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the status bar.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Copy, k.Paste, k.BulkEdit, k.Help, k.Quit}
}

// FullHelp returns keybindings for the help overlay.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Tab, k.ShiftTab, k.Home, k.End},  // Navigation
		{k.ExtendUp, k.ExtendDown, k.ExtendLeft, k.ExtendRight, k.SelectAll}, // Selection
		{k.Enter, k.Edit, k.Clear, k.Escape, k.Copy, k.Paste, k.BulkEdit},    // Editing
		{k.NextPage, k.PrevPage, k.GrowPage, k.ShrinkPage, k.Refresh},        // Paging
		{k.Help, k.Logs, k.Quit},
	}
}
