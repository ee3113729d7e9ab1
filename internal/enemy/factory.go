package enemy

import (
	"math/rand"

	"github.com/shapefall/shapefall/internal/core"
)

// Spawn distribution: cumulative thresholds over a uniform draw in [0, 100).
// 50% normal, 25% fast, 20% tank, 5% bonus.
var spawnThresholds = []struct {
	limit   float64
	variant Variant
}{
	{50, Normal},
	{75, Fast},
	{95, Tank},
	{100, Bonus},
}

// Factory configures pooled enemies in place. It owns its own seeded RNG so
// spawn sequences are reproducible for a given seed.
type Factory struct {
	rng    *rand.Rand
	tuning Tuning
}

// NewFactory creates a factory with the given seed and behavior tuning.
func NewFactory(seed int64, tuning Tuning) *Factory {
	return &Factory{
		rng:    rand.New(rand.NewSource(seed)),
		tuning: tuning,
	}
}

// Spawn configures e as the requested variant at the given position.
func (f *Factory) Spawn(e *Enemy, v Variant, pos core.Vec2) {
	e.Spawn(v, pos, f.tuning)
}

// SpawnRandom configures e as a randomly drawn variant and returns the
// variant chosen.
func (f *Factory) SpawnRandom(e *Enemy, pos core.Vec2) Variant {
	v := f.randomVariant()
	f.Spawn(e, v, pos)
	return v
}

// SpawnX returns a random horizontal spawn position for the given play-area
// width, keeping the widest shape fully inside the area.
func (f *Factory) SpawnX(screenW float64) float64 {
	margin := traits[Tank].width
	if screenW <= margin {
		return 0
	}
	return f.rng.Float64() * (screenW - margin)
}

// SetBaseSpeed adjusts the baseline fall speed applied to future spawns.
// Used by difficulty progression; already-spawned enemies keep their speed.
func (f *Factory) SetBaseSpeed(speed float64) {
	f.tuning.BaseSpeed = speed
}

func (f *Factory) randomVariant() Variant {
	roll := f.rng.Float64() * 100
	for _, t := range spawnThresholds {
		if roll < t.limit {
			return t.variant
		}
	}
	return Normal
}
