package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines every binding with built-in help text. List screens match
// only the non-printable bindings here; printable runes always feed the
// filter instead.
type KeyMap struct {
	// Global
	Quit      key.Binding
	ForceQuit key.Binding
	Back      key.Binding
	Confirm   key.Binding
	Save      key.Binding
	Theme     key.Binding

	// Lists
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	NextTab  key.Binding
	PrevTab  key.Binding
	Drop     key.Binding
	Plus     key.Binding
	Minus    key.Binding

	// Base view
	MoveNorth key.Binding
	MoveSouth key.Binding
	MoveWest  key.Binding
	MoveEast  key.Binding
	Wait      key.Binding
	Inventory key.Binding
	Shop      key.Binding
	Trainer   key.Binding
	Crafting  key.Binding
	Sheet     key.Binding
	Map       key.Binding
	Console   key.Binding
	Debug     key.Binding
	Help      key.Binding

	// Map overlay
	Recenter key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Save: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "save"),
		),
		Theme: key.NewBinding(
			key.WithKeys("f2"),
			key.WithHelp("f2", "theme"),
		),

		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "pagedown"),
			key.WithHelp("pgdn", "page down"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Drop: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
			key.WithHelp("del", "drop"),
		),
		Plus: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "raise"),
		),
		Minus: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "lower"),
		),

		MoveNorth: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "north"),
		),
		MoveSouth: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "south"),
		),
		MoveWest: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "west"),
		),
		MoveEast: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "east"),
		),
		Wait: key.NewBinding(
			key.WithKeys(".", " "),
			key.WithHelp(".", "wait"),
		),
		Inventory: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "inventory"),
		),
		Shop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "shop"),
		),
		Trainer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "trainer"),
		),
		Crafting: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "craft"),
		),
		Sheet: key.NewBinding(
			key.WithKeys("@"),
			key.WithHelp("@", "sheet"),
		),
		Map: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "map"),
		),
		Console: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "console"),
		),
		Debug: key.NewBinding(
			key.WithKeys("f6"),
			key.WithHelp("f6", "debug"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),

		Recenter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "recenter"),
		),
	}
}
