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

	runs := []struct {
		score   int
		outcome string
		reason  string
	}{
		{100, OutcomeLost, "wrong answer"},
		{50, OutcomeLost, "too many unsolved equations"},
		{120, OutcomeWon, "maximum height reached"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r.score, r.outcome, r.reason, 90*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	entries, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(entries))
	}

	// Sorted by score descending
	if entries[0].Score != 120 || entries[1].Score != 100 || entries[2].Score != 50 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
	if entries[0].Outcome != OutcomeWon {
		t.Errorf("Expected best run to be won, got %q", entries[0].Outcome)
	}
	if entries[0].Reason != "maximum height reached" {
		t.Errorf("Unexpected reason %q", entries[0].Reason)
	}
	if entries[0].DurationSecs != 90 {
		t.Errorf("Expected duration 90s, got %d", entries[0].DurationSecs)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun((i+1)*10, OutcomeLost, "wrong answer", time.Minute)
	}

	entries, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(entries) != 3 {
		t.Errorf("Expected 3 runs with limit, got %d", len(entries))
	}
	if entries[0].Score != 50 || entries[1].Score != 40 || entries[2].Score != 30 {
		t.Errorf("Runs not in expected order: %v", entries)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty table, got %d", high)
	}

	store.SaveRun(10, OutcomeLost, "wrong answer", time.Minute)
	store.SaveRun(120, OutcomeWon, "maximum height reached", time.Minute)
	store.SaveRun(80, OutcomeLost, "too many unsolved equations", time.Minute)

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 120 {
		t.Errorf("Expected high score of 120, got %d", high)
	}
}

func TestStoreRunStats(t *testing.T) {
	store := openTestStore(t)

	st, err := store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if st.Plays != 0 || st.Wins != 0 || st.HighScore != 0 {
		t.Errorf("Expected zero stats for empty table, got %+v", st)
	}

	store.SaveRun(120, OutcomeWon, "maximum height reached", time.Minute)
	store.SaveRun(40, OutcomeLost, "wrong answer", time.Minute)
	store.SaveRun(120, OutcomeWon, "maximum height reached", time.Minute)

	st, err = store.RunStats()
	if err != nil {
		t.Fatalf("RunStats() failed: %v", err)
	}
	if st.Plays != 3 {
		t.Errorf("Expected 3 plays, got %d", st.Plays)
	}
	if st.Wins != 2 {
		t.Errorf("Expected 2 wins, got %d", st.Wins)
	}
	if st.HighScore != 120 {
		t.Errorf("Expected high score 120, got %d", st.HighScore)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(10, OutcomeLost, "wrong answer", time.Minute)
	store.SaveRun(20, OutcomeLost, "wrong answer", time.Minute)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	entries, _ := store.TopRuns(10)
	if len(entries) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(entries))
	}
}

func TestStoreCreatesNestedDirectories(t *testing.T) {
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
