package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/sheepjump/internal/storage"
)

func newScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	runs := []storage.RunRecord{
		{Player: "dolly", Difficulty: "normal", Score: 120, Duration: 40 * time.Second, Jumps: 12},
		{Player: "shaun", Difficulty: "hard", Score: 300, Duration: 75 * time.Second, Jumps: 30},
		{Player: "dolly", Difficulty: "hard", Score: 80, Duration: 20 * time.Second, Jumps: 6},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}
	return store
}

func TestScoreboardTabs(t *testing.T) {
	m := NewScoreboardModel(newScoreStore(t), "hard", 100, 30)

	if m.Difficulty() != "hard" {
		t.Fatalf("Difficulty() = %q, expected hard", m.Difficulty())
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "shaun" || rows[0][2] != "300" {
		t.Errorf("hard rows = %v", rows)
	}
	if m.stats == nil || m.stats.Runs != 2 || m.stats.HighScore != 300 {
		t.Errorf("hard stats = %+v", m.stats)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Difficulty() != "fixed" || len(m.table.Rows()) != 0 {
		t.Errorf("tab should move to fixed with no runs, got %q %d", m.Difficulty(), len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	if m.Difficulty() != "" || len(m.table.Rows()) != 3 {
		t.Errorf("tab should wrap to all runs, got %q %d", m.Difficulty(), len(m.table.Rows()))
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m = next.(ScoreboardModel)
	if m.Difficulty() != "fixed" {
		t.Errorf("shift+tab should go back to fixed, got %q", m.Difficulty())
	}
}

func TestScoreboardView(t *testing.T) {
	m := NewScoreboardModel(newScoreStore(t), "normal", 100, 30)
	out := m.View()
	for _, want := range []string{"HIGH SCORES", "dolly", "Stats", "Best"} {
		if !strings.Contains(out, want) {
			t.Errorf("view should contain %q", want)
		}
	}

	empty := NewScoreboardModel(nil, "", 60, 20)
	if !strings.Contains(empty.View(), "No runs recorded yet") {
		t.Error("empty scoreboard should say so")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, "", 80, 24)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{9 * time.Second, "0:09"},
		{75 * time.Second, "1:15"},
		{61*time.Minute + 500*time.Millisecond, "61:01"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tt.d, got, tt.want)
		}
	}
}
