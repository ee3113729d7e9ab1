package particles

import (
	"math"
	"math/rand"

	"github.com/shapefall/shapefall/internal/core"
)

// Emission tuning. Speeds are cells/sec; lifetimes are seconds.
const (
	minLifetime = 0.5
	maxLifetime = 1.0

	upwardBias = 3.0 // initial kick against gravity so bursts bloom upward

	hitCount   = 20
	hitSpeed   = 14.0
	missCount  = 10
	missSpeed  = 6.0
	comboCount = 15
	comboSpeed = 10.0
)

// System owns a fixed pool of particles and emits bursts from it. Emission
// never allocates: if fewer inactive particles remain than requested, the
// burst is silently smaller. Never an error.
type System struct {
	particles []Particle
	rng       *rand.Rand
	gravity   float64
}

// NewSystem creates a system with the given pool capacity and gravity,
// seeded for deterministic effect playback.
func NewSystem(capacity int, gravity float64, seed int64) *System {
	if capacity <= 0 {
		capacity = 100
	}
	return &System{
		particles: make([]Particle, capacity),
		rng:       rand.New(rand.NewSource(seed)),
		gravity:   gravity,
	}
}

// EmitBurst activates up to count inactive particles at pos, flying in
// uniformly random directions with magnitudes scaled by speedScale.
// Returns how many particles were actually emitted.
func (s *System) EmitBurst(pos core.Vec2, count int, color core.Color, speedScale float64) int {
	emitted := 0
	for i := range s.particles {
		if emitted >= count {
			break
		}
		if s.particles[i].Active {
			continue
		}
		s.emit(&s.particles[i], pos, color, speedScale, 1, 1)
		emitted++
	}
	return emitted
}

// EmitHit plays the hit feedback: a bright burst in the clicked shape's color.
func (s *System) EmitHit(pos core.Vec2, color core.Color) {
	s.EmitBurst(pos, hitCount, color, hitSpeed)
}

// EmitMiss plays the miss feedback: a reddish trailing burst at the bottom.
func (s *System) EmitMiss(pos core.Vec2) {
	s.EmitBurst(pos, missCount, core.ColorRed, missSpeed)
}

// EmitCombo plays the combo sparkle: gold, larger and longer-lived than a
// normal burst. Only the caller decides when the combo is active.
func (s *System) EmitCombo(pos core.Vec2) {
	emitted := 0
	for i := range s.particles {
		if emitted >= comboCount {
			break
		}
		if s.particles[i].Active {
			continue
		}
		s.emit(&s.particles[i], pos, core.ColorGold, comboSpeed, 1.6, 1.5)
		emitted++
	}
}

// Update advances every active particle by the shared frame delta.
func (s *System) Update(dt float64) {
	for i := range s.particles {
		s.particles[i].Update(dt, s.gravity)
	}
}

// Render draws active particles into the screen buffer, shifted by the
// given origin offset (screen shake). Glyph density tracks remaining alpha.
func (s *System) Render(dst *core.Screen, offset core.Vec2) {
	for i := range s.particles {
		p := &s.particles[i]
		if !p.Active {
			continue
		}
		x := int(math.Round(p.Pos.X + offset.X))
		y := int(math.Round(p.Pos.Y + offset.Y))
		dst.SetCell(x, y, particleGlyph(p.Alpha()), p.Color)
	}
}

// ActiveCount returns how many particles are currently alive.
func (s *System) ActiveCount() int {
	n := 0
	for i := range s.particles {
		if s.particles[i].Active {
			n++
		}
	}
	return n
}

// Capacity returns the fixed pool size.
func (s *System) Capacity() int {
	return len(s.particles)
}

// Clear deactivates every particle. Used on state transitions.
func (s *System) Clear() {
	for i := range s.particles {
		s.particles[i].Active = false
	}
}

// emit configures one pooled particle in place. sizeScale and lifeScale
// stretch the base ranges for emphasized effects (combo sparkles).
func (s *System) emit(p *Particle, pos core.Vec2, color core.Color, speedScale, sizeScale, lifeScale float64) {
	angle := s.rng.Float64() * 2 * math.Pi
	magnitude := speedScale + s.rng.Float64()*speedScale*0.5

	p.Pos = pos
	p.Vel = core.Vec2{
		X: math.Cos(angle) * magnitude,
		Y: math.Sin(angle)*magnitude - upwardBias,
	}
	p.Elapsed = 0
	p.MaxLifetime = (minLifetime + s.rng.Float64()*(maxLifetime-minLifetime)) * lifeScale
	p.StartSize = (1 + s.rng.Float64()*2) * sizeScale
	p.EndSize = 0.5
	p.Color = color
	p.Active = true
}

// particleGlyph maps remaining alpha to a density ramp so particles visually
// dissolve as they age.
func particleGlyph(alpha float64) rune {
	switch {
	case alpha > 170:
		return '●'
	case alpha > 85:
		return '•'
	default:
		return '·'
	}
}
