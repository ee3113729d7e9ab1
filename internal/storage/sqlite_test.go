package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shapefall/shapefall/internal/score"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestHighScoreDerivedFromSessions(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty store high score = %d, expected 0", high)
	}

	for _, sc := range []int{100, 300, 200} {
		if err := store.SaveHighScore(sc); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", sc, err)
		}
	}

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("high score = %d, expected 300", high)
	}
}

func TestLeaderboardRoundTrip(t *testing.T) {
	store := openTestStore(t)

	entries, err := store.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() on empty store failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("empty store returned %d entries", len(entries))
	}

	want := []score.Entry{
		{Name: "ace", Score: 120, Date: "2026-08-23"},
		{Name: "bob", Score: 90, Date: "2026-08-22"},
		{Name: "cat", Score: 40, Date: "2026-08-21"},
	}
	if err := store.SaveLeaderboard(want); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	got, err := store.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d entries, expected %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, got[i], want[i])
		}
	}
}

func TestSaveLeaderboardReplaces(t *testing.T) {
	store := openTestStore(t)

	first := []score.Entry{
		{Name: "old1", Score: 10, Date: "2026-01-01"},
		{Name: "old2", Score: 5, Date: "2026-01-01"},
	}
	if err := store.SaveLeaderboard(first); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	second := []score.Entry{{Name: "new", Score: 99, Date: "2026-08-23"}}
	if err := store.SaveLeaderboard(second); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	got, err := store.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}
	if len(got) != 1 || got[0].Name != "new" {
		t.Errorf("board after replace = %v, expected the single new entry", got)
	}
}

func TestRecentSessions(t *testing.T) {
	store := openTestStore(t)

	for _, sc := range []int{10, 20, 30, 40, 50} {
		if err := store.SaveHighScore(sc); err != nil {
			t.Fatalf("SaveHighScore(%d) failed: %v", sc, err)
		}
	}

	records, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records with limit 3, expected 3", len(records))
	}
}

func TestReset(t *testing.T) {
	store := openTestStore(t)

	store.SaveHighScore(100)
	store.SaveLeaderboard([]score.Entry{{Name: "ace", Score: 100, Date: "2026-08-23"}})

	if err := store.Reset(); err != nil {
		t.Fatalf("Reset() failed: %v", err)
	}

	high, _ := store.HighScore()
	if high != 0 {
		t.Errorf("high score after reset = %d, expected 0", high)
	}
	entries, _ := store.Leaderboard()
	if len(entries) != 0 {
		t.Errorf("leaderboard after reset has %d entries", len(entries))
	}
}
