package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sheepjump/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Jump       key.Binding
	Start      key.Binding
	Pause      key.Binding
	Quit       key.Binding
	Sound      key.Binding
	Screenshot key.Binding
	Exit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Quit, k.Sound}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Start, k.Pause, k.Quit},
		{k.Sound, k.Screenshot, k.Exit},
	}
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "jump"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p", "pause"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "menu/quit"),
		),
		Sound: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "sound"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^s", "screenshot"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^c", "exit"),
		),
	}
}

// Action is what a key press asks the platform to do.
type Action struct {
	Command     core.Command // Forwarded to the game; CommandNone if not a game key
	ToggleSound bool
	Screenshot  bool
	Exit        bool
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to an action.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) Action {
	switch {
	case key.Matches(msg, km.keys.Exit):
		return Action{Exit: true}
	case key.Matches(msg, km.keys.Screenshot):
		return Action{Screenshot: true}
	case key.Matches(msg, km.keys.Sound):
		return Action{ToggleSound: true}
	case key.Matches(msg, km.keys.Jump):
		return Action{Command: core.CommandJumpOrConfirm}
	case key.Matches(msg, km.keys.Start):
		return Action{Command: core.CommandStart}
	case key.Matches(msg, km.keys.Pause):
		return Action{Command: core.CommandPauseToggle}
	case key.Matches(msg, km.keys.Quit):
		return Action{Command: core.CommandQuitOrReset}
	}
	return Action{}
}
