package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/mrlokans/nameboard/internal/board"
)

// KeyMap defines the key bindings of the terminal board.
type KeyMap struct {
	// Browsing.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding // Scroll back to the top of the board.
	Jump     key.Binding // Uppercase letter: jump to that group.

	// Intents on the selected name.
	Edit   key.Binding
	Like   key.Binding
	Delete key.Binding

	Add     key.Binding
	Random  key.Binding
	Refresh key.Binding

	// Text entry (add and edit).
	Submit key.Binding
	Cancel key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Lowercase keys act, uppercase
// letters jump.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	Jump: key.NewBinding(
		key.WithKeys(board.Alphabet...),
		key.WithHelp("A-Z", "jump"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Like: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "like"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d", "x"),
		key.WithHelp("d", "delete"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Random: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "random"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "refresh"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// browseHelp lists the bindings shown in the footer while browsing.
func (k KeyMap) browseHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Like, k.Delete, k.Random, k.Jump, k.Top, k.Quit}
}

func (k KeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
