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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{LevelID: "simple", Score: 1, Frames: 400, Mode: ModeManual, Cause: "floor"},
		{LevelID: "simple", Score: 0, Frames: 120, Mode: ModeManual, Cause: "pipe"},
		{LevelID: "simple", Score: 1, Frames: 900, Mode: ModeAutopilot, Cause: "floor"},
		{LevelID: "marathon", Score: 42, Frames: 8000, Mode: ModeAutopilot, Cause: "pipe"},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.TopRuns("simple", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("Expected 3 simple runs, got %d", len(got))
	}

	// Sorted by score descending, frames descending breaking ties
	if got[0].Score != 1 || got[0].Frames != 900 {
		t.Errorf("Top run: got score %d frames %d, want 1/900", got[0].Score, got[0].Frames)
	}
	if got[1].Score != 1 || got[1].Frames != 400 {
		t.Errorf("Second run: got score %d frames %d, want 1/400", got[1].Score, got[1].Frames)
	}
	if got[2].Score != 0 {
		t.Errorf("Third run: got score %d, want 0", got[2].Score)
	}

	if got[0].Mode != ModeAutopilot || got[0].Cause != "floor" {
		t.Errorf("Run metadata not persisted: %+v", got[0])
	}

	marathonRuns, err := store.TopRuns("marathon", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(marathonRuns) != 1 {
		t.Errorf("Expected 1 marathon run, got %d", len(marathonRuns))
	}
}

func TestStoreTopRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{LevelID: "medium", Score: i + 1, Frames: 100})
	}

	runs, err := store.TopRuns("medium", 3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 5 || runs[1].Score != 4 || runs[2].Score != 3 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestScore("simple")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected best score 0 for empty level, got %d", best)
	}

	store.SaveRun(RunEntry{LevelID: "simple", Score: 1})
	store.SaveRun(RunEntry{LevelID: "simple", Score: 3})
	store.SaveRun(RunEntry{LevelID: "simple", Score: 2})

	best, err = store.BestScore("simple")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 3 {
		t.Errorf("Expected best score 3, got %d", best)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "simple", Score: 1})
	store.SaveRun(RunEntry{LevelID: "simple", Score: 2})
	store.SaveRun(RunEntry{LevelID: "hard", Score: 5})

	if err := store.ClearRuns("simple"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	simpleRuns, _ := store.TopRuns("simple", 10)
	if len(simpleRuns) != 0 {
		t.Errorf("Expected 0 simple runs after clear, got %d", len(simpleRuns))
	}

	hardRuns, _ := store.TopRuns("hard", 10)
	if len(hardRuns) != 1 {
		t.Error("Hard runs should not be affected by clearing simple")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "medium", Score: 2, Frames: 500})
	store.SaveRun(RunEntry{LevelID: "medium", Score: 4, Frames: 1500})

	stats, err := store.Stats("medium")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}

	if stats.Runs != 2 {
		t.Errorf("Runs: got %d, want 2", stats.Runs)
	}
	if stats.BestScore != 4 {
		t.Errorf("BestScore: got %d, want 4", stats.BestScore)
	}
	if stats.AvgScore != 3 {
		t.Errorf("AvgScore: got %v, want 3", stats.AvgScore)
	}
	if stats.MaxFrames != 1500 {
		t.Errorf("MaxFrames: got %d, want 1500", stats.MaxFrames)
	}
}

func TestStoreAllStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "simple", Score: 1})
	store.SaveRun(RunEntry{LevelID: "hard", Score: 7})
	store.SaveRun(RunEntry{LevelID: "hard", Score: 3})

	all, err := store.AllStats()
	if err != nil {
		t.Fatalf("AllStats() failed: %v", err)
	}

	if len(all) != 2 {
		t.Fatalf("Expected stats for 2 levels, got %d", len(all))
	}
	if all["hard"].Runs != 2 || all["hard"].BestScore != 7 {
		t.Errorf("Hard stats wrong: %+v", all["hard"])
	}
	if all["simple"].Runs != 1 {
		t.Errorf("Simple stats wrong: %+v", all["simple"])
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

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
