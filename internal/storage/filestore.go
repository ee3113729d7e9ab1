package storage

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shapefall/shapefall/internal/score"
)

const (
	highScoreFile   = "highscore.txt"
	leaderboardFile = "leaderboard.txt"
)

// FileStore persists scores as plain text files in a directory: the high
// score as a single integer, the leaderboard as one "name score date" line
// per entry. Missing files mean no data yet, not an error.
type FileStore struct {
	dir string
}

// OpenFileStore prepares a file store rooted at dir, creating it if needed.
// A leading ~ expands to the home directory.
func OpenFileStore(dir string) (*FileStore, error) {
	if dir != "" && dir[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dir = filepath.Join(home, dir[1:])
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// HighScore reads the stored high score, 0 when the file doesn't exist yet.
func (f *FileStore) HighScore() (int, error) {
	data, err := os.ReadFile(filepath.Join(f.dir, highScoreFile))
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: read high score: %v", ErrUnavailable, err)
	}

	sc, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("%w: malformed high score file: %v", ErrUnavailable, err)
	}
	return sc, nil
}

// SaveHighScore writes the high score file.
func (f *FileStore) SaveHighScore(sc int) error {
	path := filepath.Join(f.dir, highScoreFile)
	if err := os.WriteFile(path, []byte(strconv.Itoa(sc)+"\n"), 0o644); err != nil {
		return fmt.Errorf("%w: write high score: %v", ErrUnavailable, err)
	}
	return nil
}

// Leaderboard reads the board file. Malformed lines are skipped so one bad
// edit doesn't lose the whole board.
func (f *FileStore) Leaderboard() ([]score.Entry, error) {
	file, err := os.Open(filepath.Join(f.dir, leaderboardFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read leaderboard: %v", ErrUnavailable, err)
	}
	defer file.Close()

	var entries []score.Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		e, ok := parseEntry(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: scan leaderboard: %v", ErrUnavailable, err)
	}

	return entries, nil
}

// SaveLeaderboard rewrites the board file.
func (f *FileStore) SaveLeaderboard(entries []score.Entry) error {
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "%s %d %s\n", e.Name, e.Score, e.Date)
	}

	path := filepath.Join(f.dir, leaderboardFile)
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: write leaderboard: %v", ErrUnavailable, err)
	}
	return nil
}

// parseEntry parses one "name score date" line. The name never contains
// spaces (enforced on entry), the date may.
func parseEntry(line string) (score.Entry, bool) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return score.Entry{}, false
	}

	sc, err := strconv.Atoi(fields[1])
	if err != nil {
		return score.Entry{}, false
	}

	e := score.Entry{Name: fields[0], Score: sc}
	if len(fields) > 2 {
		e.Date = strings.Join(fields[2:], " ")
	}
	return e, true
}

var _ score.Store = (*FileStore)(nil)
