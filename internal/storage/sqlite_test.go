package storage

import (
	"os"
	"path/filepath"
	"testing"
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

func saveScore(t *testing.T, store *Store, gameID string, score int) {
	t.Helper()
	if _, err := store.SaveRun(RunEntry{GameID: gameID, Score: score}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
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

	_, err := store.SaveRun(RunEntry{
		GameID:     "runner",
		Score:      100,
		Ticks:      5400,
		Difficulty: "hard",
		Degraded:   true,
	})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	saveScore(t, store, "runner", 50)
	saveScore(t, store, "runner", 200)
	saveScore(t, store, "other", 500)

	runs, err := store.TopRuns("runner", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}

	// Sorted by score descending
	if runs[0].Score != 200 || runs[1].Score != 100 || runs[2].Score != 50 {
		t.Errorf("Runs not in descending score order: %d, %d, %d",
			runs[0].Score, runs[1].Score, runs[2].Score)
	}

	// Run metadata survives the round trip
	if runs[1].Ticks != 5400 || runs[1].Difficulty != "hard" || !runs[1].Degraded {
		t.Errorf("Run metadata lost: %+v", runs[1])
	}

	otherRuns, err := store.TopRuns("other", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(otherRuns) != 1 {
		t.Errorf("Expected 1 run for other game, got %d", len(otherRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		saveScore(t, store, "runner", (i+1)*100)
	}

	runs, err := store.TopRuns("runner", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 500 || runs[1].Score != 400 || runs[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	saveScore(t, store, "runner", 100)
	saveScore(t, store, "runner", 300)
	saveScore(t, store, "runner", 200)

	high, err = store.HighScore("runner")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	saveScore(t, store, "runner", 100)
	saveScore(t, store, "runner", 200)
	saveScore(t, store, "other", 300)

	if err := store.ClearRuns("runner"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runnerRuns, _ := store.TopRuns("runner", 10)
	if len(runnerRuns) != 0 {
		t.Errorf("Expected 0 runner runs after clear, got %d", len(runnerRuns))
	}

	otherRuns, _ := store.TopRuns("other", 10)
	if len(otherRuns) != 1 {
		t.Error("Other game's runs should not be affected by the clear")
	}
}

func TestStoreAllRuns(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		saveScore(t, store, "runner", i*10)
	}

	runs, err := store.AllRuns("runner")
	if err != nil {
		t.Fatalf("AllRuns() failed: %v", err)
	}
	if len(runs) != 20 {
		t.Errorf("Expected 20 runs, got %d", len(runs))
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || stats.HighScore != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveRun(RunEntry{GameID: "runner", Score: 10, Ticks: 600})
	store.SaveRun(RunEntry{GameID: "runner", Score: 30, Ticks: 1800})

	stats, err = store.GetGameStats("runner")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, expected 2", stats.RunsCount)
	}
	if stats.HighScore != 30 {
		t.Errorf("HighScore = %d, expected 30", stats.HighScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %v, expected 20", stats.AvgScore)
	}
	if stats.TotalTicks != 2400 {
		t.Errorf("TotalTicks = %d, expected 2400", stats.TotalTicks)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
