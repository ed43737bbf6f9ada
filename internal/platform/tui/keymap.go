package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lcd-pong/internal/core"
)

// KeyMap binds keys to the four board switches and the front end actions.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	Restart   key.Binding
	Snapshot  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown, k.RightUp, k.RightDown},
		{k.Restart, k.Snapshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		LeftUp: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "P1 up"),
		),
		LeftDown: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "P1 down"),
		),
		RightUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "P2 up"),
		),
		RightDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "P2 down"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "copy frame"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to an action. Keys without a binding
// map to ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.LeftUp):
		return core.ActionLeftUp
	case key.Matches(msg, k.LeftDown):
		return core.ActionLeftDown
	case key.Matches(msg, k.RightUp):
		return core.ActionRightUp
	case key.Matches(msg, k.RightDown):
		return core.ActionRightDown
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Snapshot):
		return core.ActionSnapshot
	}
	return core.ActionNone
}
