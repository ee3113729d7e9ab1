package game

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/shapefall/shapefall/internal/config"
	"github.com/shapefall/shapefall/internal/core"
	"github.com/shapefall/shapefall/internal/score"
)

// Manager owns the session state machine. All states are constructed up
// front; exactly one is active and transitions run onExit then onEnter.
type Manager struct {
	rt     core.RuntimeConfig
	cfg    config.Config
	scores *score.Manager
	logger *log.Logger

	states  map[StateType]State
	current State
}

// Status is the session summary the platform layer reads after each tick.
type Status struct {
	Score     int
	HighScore int
	GameOver  bool
	Qualifies bool
}

// New creates a manager with all states wired and the menu active.
// A zero seed picks a time-based one, so only explicit seeds replay.
func New(cfg config.Config, rt core.RuntimeConfig, scores *score.Manager, logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	m := &Manager{
		rt:     rt,
		cfg:    cfg,
		scores: scores,
		logger: logger,
	}

	playing := newPlayingState(m)
	m.states = map[StateType]State{
		StateMenu:     newMenuState(m),
		StatePlaying:  playing,
		StatePaused:   newPausedState(m, playing),
		StateGameOver: newGameOverState(m),
	}

	m.current = m.states[StateMenu]
	m.current.OnEnter()
	return m
}

// ChangeState switches the active state: the old state's OnExit runs before
// the new state's OnEnter.
func (m *Manager) ChangeState(t StateType) {
	next, ok := m.states[t]
	if !ok {
		m.logger.Error("unknown state requested", "state", t)
		return
	}

	m.logger.Debug("state transition", "from", m.current.Type(), "to", t)
	m.current.OnExit()
	m.current = next
	m.current.OnEnter()
}

// Current returns the active state's type.
func (m *Manager) Current() StateType {
	return m.current.Type()
}

// HandleInput forwards one input frame to the active state.
func (m *Manager) HandleInput(in core.InputFrame) {
	m.current.HandleInput(in)
}

// Update advances the active state by the shared frame delta.
func (m *Manager) Update(dt float64) {
	m.current.Update(dt)
}

// Render draws the active state into the screen buffer.
func (m *Manager) Render(s *core.Screen) {
	s.Clear()
	m.current.Render(s)
}

// Status returns the session summary for the platform layer.
func (m *Manager) Status() Status {
	return Status{
		Score:     m.scores.Score(),
		HighScore: m.scores.HighScore(),
		GameOver:  m.current.Type() == StateGameOver,
		Qualifies: m.scores.Qualifies(),
	}
}

// Scores exposes the score manager for the platform's name-entry flow.
func (m *Manager) Scores() *score.Manager {
	return m.scores
}
