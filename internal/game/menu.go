package game

import (
	"fmt"

	"github.com/shapefall/shapefall/internal/core"
)

var titleArt = []string{
	"███ █   █ ███ ███ ███ ███ ███ █   █",
	"█   █   █ █ █ █ █ █   █   █ █ █   █",
	"███ █████ █ █ ███ ██  ██  █ █ █   █",
	"  █ █   █ █ █ █   █   █   █ █ █   █",
	"███ █   █ ███ █   ███ █   █ █ ███ ███",
}

// menuState is the entry screen: title, best score, controls.
type menuState struct {
	m *Manager
}

func newMenuState(m *Manager) *menuState {
	return &menuState{m: m}
}

func (s *menuState) Type() StateType { return StateMenu }
func (s *menuState) OnEnter()        {}
func (s *menuState) OnExit()         {}

func (s *menuState) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionConfirm) || in.Click {
		s.m.ChangeState(StatePlaying)
	}
}

func (s *menuState) Update(dt float64) {}

func (s *menuState) Render(scr *core.Screen) {
	top := scr.Height()/2 - 7
	if top < 0 {
		top = 0
	}

	for i, line := range titleArt {
		scr.DrawTextCenteredColored(top+i, line, core.ColorGold)
	}

	scr.DrawTextCentered(top+6, "click the shapes before they fall")

	if best := s.m.scores.HighScore(); best > 0 {
		scr.DrawTextCenteredColored(top+8, fmt.Sprintf("best score: %d", best), core.ColorCyan)
	}

	scr.DrawTextCentered(top+10, "enter or click to play")
	scr.DrawTextCenteredColored(top+11, "p pause   q quit", core.ColorGray)
}
