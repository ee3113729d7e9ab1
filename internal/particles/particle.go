// Package particles implements short-lived visual feedback effects: burst
// emitters drawing from a fixed-capacity pool, plus a screen shake helper.
// Effects are purely cosmetic and independent of gameplay state.
package particles

import "github.com/shapefall/shapefall/internal/core"

// Particle is one visual effect unit. Particles live in a fixed slice inside
// the System and are reused in place; they are never allocated per frame.
type Particle struct {
	Pos core.Vec2
	Vel core.Vec2

	Elapsed     float64
	MaxLifetime float64

	StartSize float64
	EndSize   float64
	Color     core.Color

	Active bool
}

// Update advances the particle by dt seconds under the given downward
// gravity. The particle deactivates the tick its elapsed lifetime reaches
// the maximum.
func (p *Particle) Update(dt, gravity float64) {
	if !p.Active {
		return
	}

	p.Elapsed += dt
	if p.Elapsed >= p.MaxLifetime {
		p.Active = false
		return
	}

	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel.Y += gravity * dt
}

// Progress returns elapsed/maxLifetime clamped to [0, 1].
func (p *Particle) Progress() float64 {
	if p.MaxLifetime <= 0 {
		return 1
	}
	return core.ClampF(p.Elapsed/p.MaxLifetime, 0, 1)
}

// Alpha returns the current opacity on a 0-255 scale: a linear fade from
// fully opaque at birth to fully transparent at end of life.
func (p *Particle) Alpha() float64 {
	return core.ClampF(255*(1-p.Progress()), 0, 255)
}

// Size returns the current size, linearly interpolated over the lifetime.
func (p *Particle) Size() float64 {
	return core.Lerp(p.StartSize, p.EndSize, p.Progress())
}
