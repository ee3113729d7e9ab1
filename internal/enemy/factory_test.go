package enemy

import (
	"math"
	"testing"

	"github.com/shapefall/shapefall/internal/core"
)

func TestSpawnDistribution(t *testing.T) {
	f := NewFactory(42, testTuning)

	const trials = 100000
	counts := map[Variant]int{}
	var e Enemy
	for i := 0; i < trials; i++ {
		v := f.SpawnRandom(&e, core.Vec2{})
		counts[v]++
	}

	want := map[Variant]float64{
		Normal: 0.50,
		Fast:   0.25,
		Tank:   0.20,
		Bonus:  0.05,
	}

	for v, expected := range want {
		got := float64(counts[v]) / trials
		if math.Abs(got-expected) > 0.01 {
			t.Errorf("%s frequency = %.4f, expected %.2f ± 0.01", v, got, expected)
		}
	}
}

func TestFactoryDeterminism(t *testing.T) {
	f1 := NewFactory(7, testTuning)
	f2 := NewFactory(7, testTuning)

	var a, b Enemy
	for i := 0; i < 200; i++ {
		v1 := f1.SpawnRandom(&a, core.Vec2{})
		v2 := f2.SpawnRandom(&b, core.Vec2{})
		if v1 != v2 {
			t.Fatalf("draw %d differs: %s vs %s", i, v1, v2)
		}
	}
}

func TestSpawnXStaysInside(t *testing.T) {
	f := NewFactory(1, testTuning)

	for i := 0; i < 1000; i++ {
		x := f.SpawnX(80)
		if x < 0 || x > 80-traits[Tank].width {
			t.Fatalf("SpawnX = %v outside playable range", x)
		}
	}
}

func TestSetBaseSpeedAffectsFutureSpawns(t *testing.T) {
	f := NewFactory(1, testTuning)

	var e Enemy
	f.Spawn(&e, Normal, core.Vec2{})
	if e.Speed != testTuning.BaseSpeed {
		t.Fatalf("Speed = %v, expected %v", e.Speed, testTuning.BaseSpeed)
	}

	f.SetBaseSpeed(12)
	var e2 Enemy
	f.Spawn(&e2, Normal, core.Vec2{})
	if e2.Speed != 12 {
		t.Errorf("Speed = %v after SetBaseSpeed, expected 12", e2.Speed)
	}
	// Already-spawned enemies keep their speed.
	if e.Speed != testTuning.BaseSpeed {
		t.Errorf("existing enemy speed changed to %v", e.Speed)
	}
}
