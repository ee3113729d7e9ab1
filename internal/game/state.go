// Package game implements the session state machine and the gameplay loop:
// menu, playing, paused and game-over states driven by a fixed-timestep
// tick from the platform layer.
package game

import "github.com/shapefall/shapefall/internal/core"

// StateType identifies a state in the session machine.
type StateType int

const (
	StateMenu StateType = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (t StateType) String() string {
	switch t {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// State is one mode of the session. Exactly one state is active at a time;
// the active state receives every input frame and tick, and owns the screen.
type State interface {
	Type() StateType
	OnEnter()
	OnExit()
	HandleInput(in core.InputFrame)
	Update(dt float64)
	Render(s *core.Screen)
}
