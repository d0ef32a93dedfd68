package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sheepjump/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, Action{Command: core.CommandJumpOrConfirm}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, Action{Command: core.CommandJumpOrConfirm}},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, Action{Command: core.CommandJumpOrConfirm}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, Action{Command: core.CommandStart}},
		{"p", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, Action{Command: core.CommandPauseToggle}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, Action{Command: core.CommandPauseToggle}},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, Action{Command: core.CommandQuitOrReset}},
		{"m", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'m'}}, Action{ToggleSound: true}},
		{"ctrl+s", tea.KeyMsg{Type: tea.KeyCtrlS}, Action{Screenshot: true}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, Action{Exit: true}},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}, Action{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %+v, expected %+v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestHelpListsBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should not be empty")
	}
	total := 0
	for _, group := range keys.FullHelp() {
		total += len(group)
	}
	if total != 7 {
		t.Errorf("full help lists %d bindings, expected 7", total)
	}
}
