// Package storage implements score persistence backends. The default is
// SQLite through the pure-Go modernc.org/sqlite driver, so no CGO is
// needed; a plain-text file store is available as a fallback.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/shapefall/shapefall/internal/score"
)

// ErrUnavailable wraps any backend failure. Callers are expected to degrade
// to in-memory defaults rather than abort the session.
var ErrUnavailable = errors.New("storage unavailable")

// SQLiteStore persists the high score and the leaderboard in a SQLite
// database. It also keeps an append-only log of finished sessions.
type SQLiteStore struct {
	db *sql.DB
}

// SessionRecord is one row of the session history log.
type SessionRecord struct {
	ID       int64
	Score    int
	PlayedAt time.Time
}

// Open creates or opens the database at the given path, creating parent
// directories and running migrations. A leading ~ expands to the home
// directory.
func Open(dbPath string) (*SQLiteStore, error) {
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return s, nil
}

// migrate creates the schema if it doesn't exist.
func (s *SQLiteStore) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			played_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_score ON sessions(score DESC);

		CREATE TABLE IF NOT EXISTS leaderboard (
			position INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			date TEXT NOT NULL
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// HighScore returns the best session score ever logged, 0 when the log is
// empty.
func (s *SQLiteStore) HighScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM sessions").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("%w: query high score: %v", ErrUnavailable, err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// SaveHighScore logs a finished session's score. The high score itself is
// derived, so the log stays append-only.
func (s *SQLiteStore) SaveHighScore(sc int) error {
	if _, err := s.db.Exec("INSERT INTO sessions (score) VALUES (?)", sc); err != nil {
		return fmt.Errorf("%w: save score: %v", ErrUnavailable, err)
	}
	return nil
}

// Leaderboard returns the stored board, best first.
func (s *SQLiteStore) Leaderboard() ([]score.Entry, error) {
	rows, err := s.db.Query(
		"SELECT name, score, date FROM leaderboard ORDER BY position ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query leaderboard: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var entries []score.Entry
	for rows.Next() {
		var e score.Entry
		if err := rows.Scan(&e.Name, &e.Score, &e.Date); err != nil {
			return nil, fmt.Errorf("%w: scan leaderboard row: %v", ErrUnavailable, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: leaderboard iteration: %v", ErrUnavailable, err)
	}

	return entries, nil
}

// SaveLeaderboard replaces the stored board atomically.
func (s *SQLiteStore) SaveLeaderboard(entries []score.Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin leaderboard save: %v", ErrUnavailable, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("%w: clear leaderboard: %v", ErrUnavailable, err)
	}
	for i, e := range entries {
		if _, err := tx.Exec(
			"INSERT INTO leaderboard (position, name, score, date) VALUES (?, ?, ?, ?)",
			i+1, e.Name, e.Score, e.Date,
		); err != nil {
			return fmt.Errorf("%w: insert leaderboard row: %v", ErrUnavailable, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit leaderboard: %v", ErrUnavailable, err)
	}
	return nil
}

// RecentSessions returns the session log, newest first.
func (s *SQLiteStore) RecentSessions(limit int) ([]SessionRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, played_at
		 FROM sessions
		 ORDER BY played_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: query sessions: %v", ErrUnavailable, err)
	}
	defer rows.Close()

	var records []SessionRecord
	for rows.Next() {
		var r SessionRecord
		var playedAt any
		if err := rows.Scan(&r.ID, &r.Score, &playedAt); err != nil {
			return nil, fmt.Errorf("%w: scan session row: %v", ErrUnavailable, err)
		}

		// The driver may hand back either a time.Time or its string form.
		switch v := playedAt.(type) {
		case time.Time:
			r.PlayedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.PlayedAt = parsed
			}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: session iteration: %v", ErrUnavailable, err)
	}

	return records, nil
}

// Reset wipes the session log and the leaderboard.
func (s *SQLiteStore) Reset() error {
	if _, err := s.db.Exec("DELETE FROM sessions"); err != nil {
		return fmt.Errorf("%w: clear sessions: %v", ErrUnavailable, err)
	}
	if _, err := s.db.Exec("DELETE FROM leaderboard"); err != nil {
		return fmt.Errorf("%w: clear leaderboard: %v", ErrUnavailable, err)
	}
	return nil
}

var _ score.Store = (*SQLiteStore)(nil)
