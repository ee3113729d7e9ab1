package game

import "github.com/shapefall/shapefall/internal/core"

// pausedState freezes the session: the playing field stays on screen under
// an overlay, and nothing advances until the player resumes.
type pausedState struct {
	m       *Manager
	playing *playingState
}

func newPausedState(m *Manager, playing *playingState) *pausedState {
	return &pausedState{m: m, playing: playing}
}

func (s *pausedState) Type() StateType { return StatePaused }
func (s *pausedState) OnEnter()        {}
func (s *pausedState) OnExit()         {}

func (s *pausedState) HandleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionPause), in.Has(core.ActionConfirm):
		// Resume without resetting the session.
		s.playing.suspended = true
		s.m.ChangeState(StatePlaying)
	case in.Has(core.ActionBack):
		s.playing.abandon()
		s.m.ChangeState(StateMenu)
	}
}

func (s *pausedState) Update(dt float64) {}

func (s *pausedState) Render(scr *core.Screen) {
	// Frozen field underneath the overlay.
	s.playing.Render(scr)

	mid := scr.Height() / 2
	scr.DrawTextCenteredColored(mid-1, "╔══════════════════╗", core.ColorYellow)
	scr.DrawTextCenteredColored(mid, "║      PAUSED      ║", core.ColorYellow)
	scr.DrawTextCenteredColored(mid+1, "╚══════════════════╝", core.ColorYellow)
	scr.DrawTextCentered(mid+3, "p resume   esc menu")
}
