// Package score tracks session score, the combo streak state machine, and
// the persisted high score and leaderboard.
package score

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// ComboState describes where the streak machine currently is.
type ComboState int

const (
	ComboIdle     ComboState = iota // no streak
	ComboBuilding                   // streak shorter than the threshold
	ComboActive                     // multiplier engaged
)

// Config holds the combo and leaderboard tuning.
type Config struct {
	Threshold  int     // consecutive hits before the multiplier engages
	Increment  float64 // multiplier gain per hit past the threshold
	MaxEntries int     // leaderboard capacity
}

// DefaultConfig returns the classic tuning: multiplier from the third
// consecutive hit, +0.5 per further hit, ten leaderboard slots.
func DefaultConfig() Config {
	return Config{Threshold: 3, Increment: 0.5, MaxEntries: 10}
}

// Store abstracts high-score and leaderboard persistence. Any load error is
// treated as "persistence unavailable": the manager falls back to zero
// values and the session continues without it.
type Store interface {
	HighScore() (int, error)
	SaveHighScore(score int) error
	Leaderboard() ([]Entry, error)
	SaveLeaderboard(entries []Entry) error
}

// Manager is an explicitly constructed service object: no process-wide
// singleton, one instance per game session, injected where needed.
type Manager struct {
	cfg    Config
	store  Store
	logger *log.Logger

	score      int
	highScore  int
	combo      int
	multiplier float64
	board      Leaderboard

	// OnComboBreak, if set, fires when a miss ends a streak that was in
	// progress. Used to cut off combo visuals the same frame.
	OnComboBreak func(length int)
}

// NewManager creates a manager and loads persisted state from the store.
// A nil store disables persistence. Store failures are logged and degrade
// to defaults; they never fail construction.
func NewManager(store Store, cfg Config, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Threshold <= 0 {
		cfg.Threshold = 3
	}
	if cfg.MaxEntries <= 0 {
		cfg.MaxEntries = 10
	}

	m := &Manager{
		cfg:        cfg,
		store:      store,
		logger:     logger,
		multiplier: 1.0,
		board:      Leaderboard{maxEntries: cfg.MaxEntries},
	}

	if store != nil {
		if hs, err := store.HighScore(); err != nil {
			logger.Warn("high score unavailable, starting from zero", "error", err)
		} else {
			m.highScore = hs
		}
		if entries, err := store.Leaderboard(); err != nil {
			logger.Warn("leaderboard unavailable, starting empty", "error", err)
		} else {
			m.board.entries = entries
			m.board.normalize()
		}
	}

	return m
}

// AddPoints registers a hit: the combo length grows first, the multiplier
// is recomputed from the just-incremented length, and only then are the
// points applied. Returns the points actually awarded.
func (m *Manager) AddPoints(base int) int {
	m.combo++
	if m.combo >= m.cfg.Threshold {
		m.multiplier = 1.0 + float64(m.combo-m.cfg.Threshold)*m.cfg.Increment
	}

	awarded := int(math.Round(float64(base) * m.multiplier))
	m.score += awarded
	return awarded
}

// BreakCombo registers a miss: the streak and multiplier reset, and the
// combo-broken signal fires if a streak was in progress.
func (m *Manager) BreakCombo() {
	wasRunning := m.combo > 0
	length := m.combo
	m.combo = 0
	m.multiplier = 1.0

	if wasRunning && m.OnComboBreak != nil {
		m.OnComboBreak(length)
	}
}

// ResetSession clears the session score and streak, keeping the persisted
// high score and leaderboard.
func (m *Manager) ResetSession() {
	m.score = 0
	m.combo = 0
	m.multiplier = 1.0
}

// State returns the current position of the combo state machine.
func (m *Manager) State() ComboState {
	switch {
	case m.combo == 0:
		return ComboIdle
	case m.combo < m.cfg.Threshold:
		return ComboBuilding
	default:
		return ComboActive
	}
}

// ComboLabel renders the HUD string for an engaged multiplier, empty while
// the streak is below the threshold.
func (m *Manager) ComboLabel() string {
	if m.State() != ComboActive {
		return ""
	}
	return fmt.Sprintf("COMBO x%.1f", m.multiplier)
}

// Score returns the current session score.
func (m *Manager) Score() int { return m.score }

// HighScore returns the best score seen, including the current session.
func (m *Manager) HighScore() int {
	if m.score > m.highScore {
		return m.score
	}
	return m.highScore
}

// Combo returns the current streak length.
func (m *Manager) Combo() int { return m.combo }

// Multiplier returns the current combo multiplier.
func (m *Manager) Multiplier() float64 { return m.multiplier }

// Board returns the leaderboard entries, best first.
func (m *Manager) Board() []Entry { return m.board.Entries() }

// Qualifies reports whether the current session score would make the
// leaderboard.
func (m *Manager) Qualifies() bool {
	return m.score > 0 && m.board.Qualifies(m.score)
}

// SubmitEntry inserts the current session score under the given name and
// persists the board. The insertion happens even if persistence fails.
func (m *Manager) SubmitEntry(name string, date string) error {
	m.board.Insert(Entry{Name: name, Score: m.score, Date: date})

	if m.store == nil {
		return nil
	}
	if err := m.store.SaveLeaderboard(m.board.Entries()); err != nil {
		m.logger.Warn("could not persist leaderboard", "error", err)
		return fmt.Errorf("score: persist leaderboard: %w", err)
	}
	return nil
}

// Finalize persists the high score if the session beat it. Called on
// session teardown; failures degrade to a warning.
func (m *Manager) Finalize() error {
	if m.score <= m.highScore {
		return nil
	}
	m.highScore = m.score

	if m.store == nil {
		return nil
	}
	if err := m.store.SaveHighScore(m.highScore); err != nil {
		m.logger.Warn("could not persist high score", "error", err)
		return fmt.Errorf("score: persist high score: %w", err)
	}
	return nil
}
