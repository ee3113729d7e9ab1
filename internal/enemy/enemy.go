// Package enemy implements the falling targets: a closed set of variants
// with fixed per-variant traits and a factory that draws variants from a
// fixed categorical distribution.
package enemy

import (
	"math"

	"github.com/shapefall/shapefall/internal/core"
)

// Variant is a fixed behavior/trait profile for a falling shape.
type Variant int

const (
	Normal Variant = iota
	Fast
	Tank
	Bonus

	variantCount
)

// String returns a human-readable name for the variant.
func (v Variant) String() string {
	switch v {
	case Normal:
		return "normal"
	case Fast:
		return "fast"
	case Tank:
		return "tank"
	case Bonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// traitSet holds the numeric traits fixed per variant at spawn time.
type traitSet struct {
	speedScale float64 // multiplier over the configured base fall speed
	healthCost int     // health lost when the shape reaches the bottom
	pointValue int     // base points awarded on a hit
	width      float64 // bounding size in cells
	height     float64
	color      core.Color
	glyph      rune
}

// Trait table: speed/health-cost/point-value are determined solely by the
// variant and never change for the lifetime of an instance.
var traits = [variantCount]traitSet{
	Normal: {speedScale: 1.0, healthCost: 1, pointValue: 1, width: 6, height: 3, color: core.ColorGreen, glyph: '█'},
	Fast:   {speedScale: 1.75, healthCost: 1, pointValue: 2, width: 5, height: 2, color: core.ColorBrightRed, glyph: '▓'},
	Tank:   {speedScale: 0.6, healthCost: 2, pointValue: 3, width: 8, height: 4, color: core.ColorBlue, glyph: '█'},
	Bonus:  {speedScale: 1.25, healthCost: 0, pointValue: 5, width: 6, height: 3, color: core.ColorGold, glyph: '▒'},
}

// Bonus variant lifecycle constants.
const (
	bonusLifetime  = 5.0 // seconds before an unclicked bonus vanishes
	bonusFadeStart = 0.7 // fraction of lifetime at which the fade begins
)

// Tuning holds variant behavior parameters that scale with the play area.
type Tuning struct {
	BaseSpeed    float64 // baseline fall speed, cells/sec
	OscAmplitude float64 // fast-variant horizontal wiggle, cells/sec
	OscFrequency float64 // fast-variant wiggle frequency, per cell of descent
}

// Enemy is one falling target. Instances live in a pool and are configured
// in place by the factory; traits are immutable between Spawn and recycle.
type Enemy struct {
	Pos     core.Vec2
	Variant Variant
	Active  bool

	// Fixed at spawn by the variant.
	Speed      float64
	HealthCost int
	PointValue int

	// Variant-specific transient state.
	age   float64 // seconds since spawn
	scale float64 // bonus pulse factor
	alpha float64 // 0..1, bonus fade

	tuning Tuning
}

// Spawn configures the enemy in place for a fresh life.
func (e *Enemy) Spawn(v Variant, pos core.Vec2, tuning Tuning) {
	t := traits[v]
	e.Pos = pos
	e.Variant = v
	e.Active = true
	e.Speed = tuning.BaseSpeed * t.speedScale
	e.HealthCost = t.healthCost
	e.PointValue = t.pointValue
	e.age = 0
	e.scale = 1
	e.alpha = 1
	e.tuning = tuning
}

// Reset deactivates the enemy; used as the pool reset hook.
func (e *Enemy) Reset() {
	e.Active = false
}

// Update advances the enemy by dt seconds: the base downward move first,
// then the variant behavior hook. Inactive enemies never move.
func (e *Enemy) Update(dt float64) {
	if !e.Active {
		return
	}

	e.Pos.Y += e.Speed * dt
	e.age += dt

	switch e.Variant {
	case Fast:
		// Periodic horizontal wiggle keyed to how far the shape has fallen.
		e.Pos.X += math.Sin(e.Pos.Y*e.tuning.OscFrequency) * e.tuning.OscAmplitude * dt

	case Bonus:
		e.scale = 0.8 + 0.2*math.Sin(e.age*10)

		if e.age > bonusLifetime*bonusFadeStart {
			fade := (e.age - bonusLifetime*bonusFadeStart) / (bonusLifetime * (1 - bonusFadeStart))
			e.alpha = core.ClampF(1-fade, 0, 1)
		}

		// Vanishes even if never clicked or missed.
		if e.age >= bonusLifetime {
			e.Active = false
		}
	}
}

// Expired reports that a bonus shape ran out its lifetime without being
// clicked or reaching the bottom.
func (e *Enemy) Expired() bool {
	return !e.Active && e.Variant == Bonus && e.age >= bonusLifetime
}

// Bounds returns the current axis-aligned bounding box. The bonus pulse
// scales the box around its center.
func (e *Enemy) Bounds() core.RectF {
	t := traits[e.Variant]
	w := t.width * e.scale
	h := t.height * e.scale
	return core.RectF{
		X: e.Pos.X + (t.width-w)/2,
		Y: e.Pos.Y + (t.height-h)/2,
		W: w,
		H: h,
	}
}

// OffScreen reports whether the shape has fallen past the bottom edge.
// This is the miss condition.
func (e *Enemy) OffScreen(screenH float64) bool {
	return e.Pos.Y > screenH
}

// ContainsPoint reports whether a click at p hits the shape.
// Inactive shapes are never clickable.
func (e *Enemy) ContainsPoint(p core.Vec2) bool {
	return e.Active && e.Bounds().Contains(p)
}

// Color returns the variant display color.
func (e *Enemy) Color() core.Color {
	return traits[e.Variant].color
}

// Glyph returns the fill rune used to draw the shape. A fading bonus shape
// thins out as its alpha drops.
func (e *Enemy) Glyph() rune {
	if e.Variant == Bonus && e.alpha < 0.5 {
		return '░'
	}
	return traits[e.Variant].glyph
}

// Alpha returns the current opacity in [0, 1]. Only the bonus variant fades.
func (e *Enemy) Alpha() float64 {
	return e.alpha
}
