package game

import (
	"fmt"

	"github.com/shapefall/shapefall/internal/core"
)

// gameOverState shows the final score and leaderboard. The platform layer
// handles name entry for a qualifying score before forwarding input here.
type gameOverState struct {
	m          *Manager
	finalScore int
	newBest    bool
}

func newGameOverState(m *Manager) *gameOverState {
	return &gameOverState{m: m}
}

func (s *gameOverState) Type() StateType { return StateGameOver }

func (s *gameOverState) OnEnter() {
	s.finalScore = s.m.scores.Score()
	s.newBest = s.finalScore > 0 && s.finalScore >= s.m.scores.HighScore()

	if err := s.m.scores.Finalize(); err != nil {
		s.m.logger.Warn("high score not persisted", "error", err)
	}
	s.m.logger.Info("session over", "score", s.finalScore)
}

func (s *gameOverState) OnExit() {}

func (s *gameOverState) HandleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
		s.m.ChangeState(StatePlaying)
	case in.Has(core.ActionBack):
		s.m.ChangeState(StateMenu)
	}
}

func (s *gameOverState) Update(dt float64) {}

func (s *gameOverState) Render(scr *core.Screen) {
	top := 2

	scr.DrawTextCenteredColored(top, "GAME OVER", core.ColorBrightRed)
	scr.DrawTextCenteredColored(top+2, fmt.Sprintf("final score: %d", s.finalScore), core.ColorWhite)
	if s.newBest {
		scr.DrawTextCenteredColored(top+3, "new best!", core.ColorGold)
	} else {
		scr.DrawTextCenteredColored(top+3, fmt.Sprintf("best: %d", s.m.scores.HighScore()), core.ColorCyan)
	}

	board := s.m.scores.Board()
	if len(board) > 0 {
		scr.DrawTextCenteredColored(top+5, "── leaderboard ──", core.ColorGray)
		for i, e := range board {
			line := fmt.Sprintf("%2d. %-12s %6d  %s", i+1, e.Name, e.Score, e.Date)
			scr.DrawTextCentered(top+6+i, line)
		}
	}

	scr.DrawTextCentered(scr.Height()-2, "r play again   esc menu   q quit")
}
