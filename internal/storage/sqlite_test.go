package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenNestedPath(t *testing.T) {
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

func TestStoreScores(t *testing.T) {
	store := openTest(t)

	for _, s := range []int{100, 50, 200} {
		if _, err := store.SaveScore("ricochet", s); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("ricochet_sandbox", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("ricochet", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 200 || scores[1].Score != 100 {
		t.Errorf("TopScores() = %+v, expected 200 then 100", scores)
	}

	high, err := store.HighScore("ricochet")
	if err != nil || high != 200 {
		t.Errorf("HighScore() = %d, %v; expected 200", high, err)
	}

	if err := store.ClearScores("ricochet"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("ricochet"); high != 0 {
		t.Errorf("HighScore() after clear = %d, expected 0", high)
	}
	if high, _ := store.HighScore("ricochet_sandbox"); high != 500 {
		t.Error("Other modes should not be affected by clearing")
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTest(t)

	runs := []RunRecord{
		{LevelID: "01", Run: 1, Outcome: "out_of_bounds", Duration: 3.5, Contacts: 4},
		{LevelID: "01", Run: 2, Outcome: "settled", Duration: 6, Contacts: 9, Collected: 2, Money: 200, Completed: true},
		{LevelID: "02", Run: 1, Outcome: "timed_out", Duration: 120},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	got, err := store.RecentRuns("01", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("RecentRuns(01) returned %d runs, expected 2", len(got))
	}
	if got[0].Run != 2 || !got[0].Completed || got[0].Money != 200 {
		t.Errorf("newest run = %+v", got[0])
	}

	all, err := store.RecentRuns("", 10)
	if err != nil || len(all) != 3 {
		t.Errorf("RecentRuns(\"\") = %d runs, %v; expected 3", len(all), err)
	}
}

func TestStoreLevelResults(t *testing.T) {
	store := openTest(t)

	if res, err := store.LevelResult("01"); err != nil || res != nil {
		t.Fatalf("LevelResult() for an unplayed level = %+v, %v", res, err)
	}

	store.SaveRun(RunRecord{LevelID: "01", Run: 3, Outcome: "settled", Money: 200, Completed: true})
	store.SaveRun(RunRecord{LevelID: "01", Run: 1, Outcome: "settled", Money: 300, Completed: true})
	store.SaveRun(RunRecord{LevelID: "01", Run: 1, Outcome: "out_of_bounds", Money: 900})

	res, err := store.LevelResult("01")
	if err != nil || res == nil {
		t.Fatalf("LevelResult() = %v, %v", res, err)
	}
	if res.BestMoney != 300 || res.FewestRuns != 1 || res.Completions != 2 {
		t.Errorf("LevelResult() = %+v, expected best 300 in 1 run over 2 completions", res)
	}

	all, err := store.AllLevelResults()
	if err != nil || len(all) != 1 || all["01"] == nil {
		t.Errorf("AllLevelResults() = %v, %v", all, err)
	}
}
