package storage

import (
	"errors"
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
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

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

func TestReopenKeepsData(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SubmitTime("1", 4200, nil); err != nil {
		t.Fatalf("SubmitTime() failed: %v", err)
	}
	if _, err := store.UpdateSensitivity(1.7); err != nil {
		t.Fatalf("UpdateSensitivity() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if ms, err := store.BestTime("1"); err != nil || ms != 4200 {
		t.Errorf("BestTime() = %d, %v; want 4200", ms, err)
	}
	st, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if st.Sensitivity != 1.7 {
		t.Errorf("sensitivity = %v, want 1.7 to survive reopen", st.Sensitivity)
	}
}

func TestSubmitTimeKeepsStrictMinimum(t *testing.T) {
	store := openTestStore(t)

	steps := []struct {
		ms       int64
		improved bool
		best     int64
	}{
		{5000, true, 5000},
		{6000, false, 5000},
		{5000, false, 5000},
		{4999, true, 4999},
	}
	for i, s := range steps {
		improved, err := store.SubmitTime("2", s.ms, []byte{byte(i)})
		if err != nil {
			t.Fatalf("SubmitTime(%d) failed: %v", s.ms, err)
		}
		if improved != s.improved {
			t.Errorf("SubmitTime(%d) improved = %v, want %v", s.ms, improved, s.improved)
		}
		best, err := store.BestTime("2")
		if err != nil {
			t.Fatalf("BestTime() failed: %v", err)
		}
		if best != s.best {
			t.Errorf("after %d: best = %d, want %d", s.ms, best, s.best)
		}
	}

	blob, err := store.BestReplay("2")
	if err != nil {
		t.Fatalf("BestReplay() failed: %v", err)
	}
	if len(blob) != 1 || blob[0] != 3 {
		t.Errorf("replay = %v, want the blob stored with the best time", blob)
	}

	if _, err := store.SubmitTime("2", -1, nil); err == nil {
		t.Error("expected error for negative time")
	}
}

func TestBestTimeMissing(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.BestTime("3"); !errors.Is(err, ErrNoBestTime) {
		t.Errorf("BestTime() error = %v, want ErrNoBestTime", err)
	}
	if _, err := store.BestReplay("3"); !errors.Is(err, ErrNoBestTime) {
		t.Errorf("BestReplay() error = %v, want ErrNoBestTime", err)
	}
}

func TestAllBestTimesAndClear(t *testing.T) {
	store := openTestStore(t)

	for key, ms := range map[string]int64{"1": 3000, "2": 7000, "spiral": 12000} {
		if _, err := store.SubmitTime(key, ms, nil); err != nil {
			t.Fatalf("SubmitTime() failed: %v", err)
		}
	}

	all, err := store.AllBestTimes()
	if err != nil {
		t.Fatalf("AllBestTimes() failed: %v", err)
	}
	if len(all) != 3 || all["spiral"] != 12000 {
		t.Errorf("AllBestTimes() = %v", all)
	}

	entries, err := store.BestEntries()
	if err != nil {
		t.Fatalf("BestEntries() failed: %v", err)
	}
	if len(entries) != 3 || entries[0].LevelKey != "1" || entries[0].HasReplay {
		t.Errorf("BestEntries() = %+v", entries)
	}

	if err := store.ClearBestTimes("1"); err != nil {
		t.Fatalf("ClearBestTimes(1) failed: %v", err)
	}
	if _, err := store.BestTime("1"); !errors.Is(err, ErrNoBestTime) {
		t.Errorf("level 1 still has a best time: %v", err)
	}

	if err := store.ClearBestTimes(""); err != nil {
		t.Fatalf("ClearBestTimes(all) failed: %v", err)
	}
	all, _ = store.AllBestTimes()
	if len(all) != 0 {
		t.Errorf("AllBestTimes() after clear = %v", all)
	}
}

func TestSettings(t *testing.T) {
	store := openTestStore(t)

	st, err := store.Settings()
	if err != nil {
		t.Fatalf("Settings() failed: %v", err)
	}
	if st != DefaultSettings() {
		t.Errorf("fresh settings = %+v, want defaults", st)
	}

	tests := []struct {
		in, want float64
	}{
		{1.3, 1.3},
		{9, 2.5},
		{0.1, 0.4},
	}
	for _, tt := range tests {
		got, err := store.UpdateSensitivity(tt.in)
		if err != nil {
			t.Fatalf("UpdateSensitivity(%v) failed: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("UpdateSensitivity(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if err := store.SetVibration(false); err != nil {
		t.Fatalf("SetVibration() failed: %v", err)
	}
	if err := store.SetSound(false); err != nil {
		t.Fatalf("SetSound() failed: %v", err)
	}
	if err := store.EnsureDefaults(); err != nil {
		t.Fatalf("EnsureDefaults() failed: %v", err)
	}

	st, _ = store.Settings()
	want := Settings{Sensitivity: 0.4, Vibration: false, Sound: false}
	if st != want {
		t.Errorf("settings = %+v, want %+v (EnsureDefaults must not overwrite)", st, want)
	}
}

func TestRunsAndStats(t *testing.T) {
	store := openTestStore(t)

	runs := []RunResult{
		{LevelKey: "1", Outcome: "lost", ElapsedMS: 1200},
		{LevelKey: "1", Outcome: "won", ElapsedMS: 9000},
		{LevelKey: "1", Outcome: "lost", ElapsedMS: 800},
		{LevelKey: "4", Outcome: "won", ElapsedMS: 20000},
	}
	for _, r := range runs {
		if err := store.RecordRun(r); err != nil {
			t.Fatalf("RecordRun() failed: %v", err)
		}
	}
	if _, err := store.SubmitTime("1", 9000, nil); err != nil {
		t.Fatalf("SubmitTime() failed: %v", err)
	}
	if _, err := store.SubmitTime("5", 30000, nil); err != nil {
		t.Fatalf("SubmitTime() failed: %v", err)
	}

	recent, err := store.RecentRuns("1", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].ElapsedMS != 800 || recent[1].Outcome != "won" {
		t.Errorf("RecentRuns() = %+v", recent)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt was not parsed")
	}

	everything, err := store.RecentRuns("", 0)
	if err != nil {
		t.Fatalf("RecentRuns(all) failed: %v", err)
	}
	if len(everything) != 4 {
		t.Errorf("RecentRuns(all) returned %d runs, want 4", len(everything))
	}

	stats, err := store.LevelStats("1")
	if err != nil {
		t.Fatalf("LevelStats() failed: %v", err)
	}
	if stats.Attempts != 3 || stats.Wins != 1 || stats.Losses != 2 || !stats.HasBest || stats.BestTimeMS != 9000 {
		t.Errorf("LevelStats() = %+v", stats)
	}

	empty, err := store.LevelStats("3")
	if err != nil {
		t.Fatalf("LevelStats(unplayed) failed: %v", err)
	}
	if empty.Attempts != 0 || empty.HasBest || !empty.LastPlayed.IsZero() {
		t.Errorf("LevelStats(unplayed) = %+v", empty)
	}

	all, err := store.AllLevelStats()
	if err != nil {
		t.Fatalf("AllLevelStats() failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("AllLevelStats() has %d levels, want 3", len(all))
	}
	if all["4"].Wins != 1 || all["4"].HasBest {
		t.Errorf("level 4 stats = %+v", all["4"])
	}
	if all["5"].Attempts != 0 || all["5"].BestTimeMS != 30000 {
		t.Errorf("level 5 stats = %+v", all["5"])
	}
}
