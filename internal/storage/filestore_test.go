package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shapefall/shapefall/internal/score"
)

func TestFileStoreHighScoreRoundTrip(t *testing.T) {
	fs, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}

	high, err := fs.HighScore()
	if err != nil {
		t.Fatalf("HighScore() on fresh store failed: %v", err)
	}
	if high != 0 {
		t.Errorf("fresh store high score = %d, expected 0", high)
	}

	if err := fs.SaveHighScore(420); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}
	high, err = fs.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 420 {
		t.Errorf("high score = %d, expected 420", high)
	}
}

func TestFileStoreLeaderboardRoundTrip(t *testing.T) {
	fs, err := OpenFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}

	want := []score.Entry{
		{Name: "ace", Score: 120, Date: "2026-08-23"},
		{Name: "bob", Score: 90, Date: "2026-08-22"},
	}
	if err := fs.SaveLeaderboard(want); err != nil {
		t.Fatalf("SaveLeaderboard() failed: %v", err)
	}

	got, err := fs.Leaderboard()
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

func TestFileStoreSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	raw := "ace 120 2026-08-23\nnot-a-valid-line\nbob nan 2026-08-22\ncat 40 2026-08-21\n"
	if err := os.WriteFile(filepath.Join(dir, leaderboardFile), []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}
	entries, err := fs.Leaderboard()
	if err != nil {
		t.Fatalf("Leaderboard() failed: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected the 2 well-formed ones", len(entries))
	}
	if entries[0].Name != "ace" || entries[1].Name != "cat" {
		t.Errorf("wrong entries survived: %v", entries)
	}
}

func TestFileStoreMalformedHighScore(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, highScoreFile), []byte("garbage\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := OpenFileStore(dir)
	if err != nil {
		t.Fatalf("OpenFileStore() failed: %v", err)
	}
	if _, err := fs.HighScore(); err == nil {
		t.Error("HighScore() on garbage file returned nil error")
	}
}
