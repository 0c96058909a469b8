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

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
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

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunRecord{
		{Score: 100, SpeedLevel: 3, SnakeLength: 12, Outcome: "game_over", Duration: 45 * time.Second},
		{Score: 50, SpeedLevel: 2, SnakeLength: 7, Outcome: "game_over", Duration: 20 * time.Second},
		{Score: 200, SpeedLevel: 5, SnakeLength: 25, Outcome: "victory", Duration: 90 * time.Second},
	}
	for _, run := range runs {
		if _, err := store.SaveRun(run); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(got))
	}
	if got[0].Score != 200 || got[1].Score != 100 || got[2].Score != 50 {
		t.Errorf("Runs not ordered by score descending: %d, %d, %d",
			got[0].Score, got[1].Score, got[2].Score)
	}
	if got[0].Outcome != "victory" {
		t.Errorf("Expected top run outcome victory, got %q", got[0].Outcome)
	}
	if got[0].Duration != 90*time.Second {
		t.Errorf("Expected duration 90s, got %v", got[0].Duration)
	}
	if got[0].SnakeLength != 25 {
		t.Errorf("Expected snake length 25, got %d", got[0].SnakeLength)
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunRecord{Score: (i + 1) * 100, SpeedLevel: 1, SnakeLength: 2, Outcome: "game_over"})
	}

	got, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}

	if len(got) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(got))
	}
	if got[0].Score != 500 || got[1].Score != 400 || got[2].Score != 300 {
		t.Errorf("Runs not in expected order: %v", got)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score 0 for empty store, got %d", high)
	}

	store.SaveRun(RunRecord{Score: 100, SpeedLevel: 1, SnakeLength: 5, Outcome: "game_over"})
	store.SaveRun(RunRecord{Score: 300, SpeedLevel: 4, SnakeLength: 15, Outcome: "game_over"})
	store.SaveRun(RunRecord{Score: 200, SpeedLevel: 2, SnakeLength: 9, Outcome: "game_over"})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100, SpeedLevel: 1, SnakeLength: 5, Outcome: "game_over"})
	store.SaveRun(RunRecord{Score: 200, SpeedLevel: 1, SnakeLength: 8, Outcome: "game_over"})

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	got, _ := store.TopRuns(10)
	if len(got) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(got))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunRecord{Score: 100, SpeedLevel: 1, SnakeLength: 5, Outcome: "game_over"})
	store.SaveRun(RunRecord{Score: 300, SpeedLevel: 3, SnakeLength: 14, Outcome: "victory"})

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.RunsCount != 2 {
		t.Errorf("RunsCount = %d, want 2", stats.RunsCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
}

func TestStoreThemeSetting(t *testing.T) {
	store := openTestStore(t)

	id, err := store.ThemeID()
	if err != nil {
		t.Fatalf("ThemeID() failed: %v", err)
	}
	if id != "" {
		t.Errorf("Expected empty theme id, got %q", id)
	}

	if err := store.SaveThemeID("ocean"); err != nil {
		t.Fatalf("SaveThemeID() failed: %v", err)
	}
	if err := store.SaveThemeID("mono"); err != nil {
		t.Fatalf("SaveThemeID() overwrite failed: %v", err)
	}

	id, err = store.ThemeID()
	if err != nil {
		t.Fatalf("ThemeID() failed: %v", err)
	}
	if id != "mono" {
		t.Errorf("Expected theme id mono, got %q", id)
	}
}
