package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	run := RunRecord{
		Player:           "dolly",
		Difficulty:       "normal",
		Score:            142,
		EventScore:       120,
		TimeScore:        22,
		Duration:         22500 * time.Millisecond,
		Jumps:            14,
		ObstaclesCleared: 9,
		HazardsCleared:   1,
	}
	id, err := store.SaveRun(run)
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	runs, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("Expected 1 run, got %d", len(runs))
	}

	got := runs[0]
	if got.ID != id {
		t.Errorf("ID = %d, expected %d", got.ID, id)
	}
	got.ID, got.CreatedAt = 0, time.Time{}
	if got != run {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", got, run)
	}
}

func TestStoreTopRunsOrderAndFilter(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []RunRecord{
		{Player: "a", Difficulty: "normal", Score: 100},
		{Player: "b", Difficulty: "normal", Score: 50},
		{Player: "c", Difficulty: "normal", Score: 200},
		{Player: "d", Difficulty: "normal", Score: 100},
		{Player: "e", Difficulty: "hard", Score: 500},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns("normal", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	want := []string{"c", "a", "d", "b"}
	if len(runs) != len(want) {
		t.Fatalf("Expected %d runs, got %d", len(want), len(runs))
	}
	for i, p := range want {
		if runs[i].Player != p {
			t.Errorf("position %d = %s, expected %s (ties keep insertion order)", i, runs[i].Player, p)
		}
	}

	all, _ := store.TopRuns("", 10)
	if len(all) != 5 || all[0].Player != "e" {
		t.Errorf("empty difficulty should list every run, got %d", len(all))
	}

	limited, _ := store.TopRuns("normal", 2)
	if len(limited) != 2 {
		t.Errorf("Expected 2 runs with limit, got %d", len(limited))
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("easy")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for no runs, got %d", high)
	}

	store.SaveRun(RunRecord{Difficulty: "easy", Score: 100})
	store.SaveRun(RunRecord{Difficulty: "easy", Score: 300})
	store.SaveRun(RunRecord{Difficulty: "hard", Score: 900})

	high, _ = store.HighScore("easy")
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
	high, _ = store.HighScore("")
	if high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Difficulty: "normal", Score: 100})
	store.SaveRun(RunRecord{Difficulty: "normal", Score: 200})
	store.SaveRun(RunRecord{Difficulty: "hard", Score: 300})

	if err := store.ClearRuns("normal"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("normal", 10); len(runs) != 0 {
		t.Errorf("Expected 0 normal runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("hard", 10); len(runs) != 1 {
		t.Error("Hard runs should not be affected by clearing normal")
	}

	store.ClearRuns("")
	if runs, _ := store.TopRuns("", 10); len(runs) != 0 {
		t.Error("Clearing with no difficulty should remove everything")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRun(RunRecord{Difficulty: "normal", Score: 100, Duration: 10 * time.Second})
	store.SaveRun(RunRecord{Difficulty: "normal", Score: 300, Duration: 30 * time.Second})

	stats, err := store.Stats("normal")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 2 || stats.HighScore != 300 || stats.AvgScore != 200 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TotalTime != 40*time.Second {
		t.Errorf("total time = %v, expected 40s", stats.TotalTime)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("last played should be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
