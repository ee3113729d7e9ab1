package particles

import (
	"math/rand"

	"github.com/shapefall/shapefall/internal/core"
)

// ScreenShake produces a decaying random offset applied to the render
// origin on heavy hits. Intensity falls linearly to zero over the duration.
type ScreenShake struct {
	duration  float64
	intensity float64
	timer     float64
	active    bool
	rng       *rand.Rand
}

// NewScreenShake creates a shake generator with its own seeded RNG.
func NewScreenShake(seed int64) *ScreenShake {
	return &ScreenShake{rng: rand.New(rand.NewSource(seed))}
}

// Start begins a shake of the given duration (seconds) and intensity
// (cells of maximum displacement). Restarting replaces any running shake.
func (s *ScreenShake) Start(duration, intensity float64) {
	if duration <= 0 {
		return
	}
	s.duration = duration
	s.intensity = intensity
	s.timer = 0
	s.active = true
}

// Update advances the shake clock by the shared frame delta.
func (s *ScreenShake) Update(dt float64) {
	if !s.active {
		return
	}
	s.timer += dt
	if s.timer >= s.duration {
		s.active = false
	}
}

// Offset returns the current render-origin displacement. Zero when idle.
func (s *ScreenShake) Offset() core.Vec2 {
	if !s.active {
		return core.Vec2{}
	}
	current := s.intensity * (1 - s.timer/s.duration)
	return core.Vec2{
		X: (s.rng.Float64()*2 - 1) * current,
		Y: (s.rng.Float64()*2 - 1) * current,
	}
}

// Active reports whether a shake is in progress.
func (s *ScreenShake) Active() bool {
	return s.active
}

// Stop ends the shake immediately.
func (s *ScreenShake) Stop() {
	s.active = false
}
