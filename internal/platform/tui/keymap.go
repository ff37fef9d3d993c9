package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/memory-match/internal/core"
)

// KeyMap defines the key bindings for the game, with help metadata for the
// results screen's help bar.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Flip    key.Binding
	Restart key.Binding
	Results key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Flip, k.Restart, k.Results, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Flip, k.Restart, k.Results, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("up/w/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("down/s/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("left/a/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("right/d/l", "move right"),
		),
		Flip: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "flip card"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
// Space is reported as ActionRestart; the model gates it on the win state
// since space only restarts from the win screen.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool, isSpace bool) {
	if key.Matches(msg, k.Quit) {
		return core.ActionQuit, true, false
	}

	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp, false, false
	case key.Matches(msg, k.Down):
		return core.ActionDown, false, false
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false, false
	case key.Matches(msg, k.Flip):
		return core.ActionFlip, false, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false, false
	}

	if msg.String() == " " {
		return core.ActionRestart, false, true
	}

	return core.ActionNone, false, false
}
