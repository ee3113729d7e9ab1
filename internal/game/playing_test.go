package game

import (
	"testing"

	"github.com/shapefall/shapefall/internal/config"
	"github.com/shapefall/shapefall/internal/core"
	"github.com/shapefall/shapefall/internal/enemy"
	"github.com/shapefall/shapefall/internal/score"
)

// testConfig returns a config with progression disabled and spawning
// effectively off, so tests control the field explicitly.
func testConfig() config.Config {
	cfg := config.Default()
	cfg.Gameplay.SpawnInterval = 9999
	cfg.Difficulty.Enabled = false
	cfg.Difficulty.Progression.Type = "none"
	return cfg
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func newTestGame(cfg config.Config) *Manager {
	scores := score.NewManager(nil, score.Config{
		Threshold:  cfg.Combo.Threshold,
		Increment:  cfg.Combo.Increment,
		MaxEntries: cfg.Leaderboard.MaxEntries,
	}, nil)
	return New(cfg, testRuntime(), scores, nil)
}

// enterPlaying drives the manager from the menu into a running session.
func enterPlaying(t *testing.T, m *Manager) *playingState {
	t.Helper()
	m.ChangeState(StatePlaying)
	if m.Current() != StatePlaying {
		t.Fatalf("state = %v, expected playing", m.Current())
	}
	return m.states[StatePlaying].(*playingState)
}

// forceSpawn places a specific variant on the field, bypassing the timer.
func forceSpawn(t *testing.T, p *playingState, v enemy.Variant, pos core.Vec2) *enemy.Enemy {
	t.Helper()
	_, e, err := p.enemies.Acquire()
	if err != nil {
		t.Fatalf("acquire failed: %v", err)
	}
	p.factory.Spawn(e, v, pos)
	return e
}

func tick(m *Manager, frames int) {
	dt := testRuntime().Delta()
	for i := 0; i < frames; i++ {
		m.Update(dt)
	}
}

func clickAt(m *Manager, pos core.Vec2) {
	in := core.NewInputFrame()
	in.SetClick(pos)
	m.HandleInput(in)
	m.Update(testRuntime().Delta())
}

func TestClickRemovesShapeAndScores(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)

	e := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
	clickAt(m, e.Bounds().Center())

	if got := m.Scores().Score(); got != 1 {
		t.Errorf("score after normal hit = %d, expected 1", got)
	}
	if p.enemies.InUseCount() != 0 {
		t.Errorf("shape not released after hit, in use = %d", p.enemies.InUseCount())
	}
}

func TestClickResolvesOldestShape(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)

	// Two overlapping shapes: the first-spawned one must take the click.
	first := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
	second := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 11, Y: 5})

	clickAt(m, core.Vec2{X: 12, Y: 6})

	if p.enemies.InUseCount() != 1 {
		t.Fatalf("in use = %d after one click, expected 1", p.enemies.InUseCount())
	}
	if first.Active || !second.Active {
		t.Error("click did not resolve to the oldest shape")
	}
	if got := m.Scores().Score(); got != 1 {
		t.Errorf("score = %d, expected exactly one award", got)
	}
}

func TestClickOnEmptySpaceDoesNothing(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)

	forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
	m.Scores().AddPoints(1) // streak in progress
	combo := m.Scores().Combo()

	clickAt(m, core.Vec2{X: 70, Y: 20})

	if p.enemies.InUseCount() != 1 {
		t.Error("empty-space click removed a shape")
	}
	if m.Scores().Combo() != combo {
		t.Error("empty-space click changed the combo")
	}
}

func TestMissCostsHealthAndBreaksCombo(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)
	startHealth := p.health

	m.Scores().AddPoints(1)
	m.Scores().AddPoints(1)

	// Just above the bottom edge; one sweep after crossing releases it.
	forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 23.9})
	tick(m, 10)

	if p.health != startHealth-1 {
		t.Errorf("health = %d, expected exactly one cost of 1", p.health)
	}
	if p.enemies.InUseCount() != 0 {
		t.Error("missed shape not released")
	}
	if m.Scores().Combo() != 0 {
		t.Error("miss did not break the combo")
	}
}

func TestTankMissCostsDouble(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)
	startHealth := p.health

	forceSpawn(t, p, enemy.Tank, core.Vec2{X: 10, Y: 23.9})
	tick(m, 30)

	if p.health != startHealth-2 {
		t.Errorf("health = %d, expected a cost of 2", p.health)
	}
}

func TestBonusExpiresSilently(t *testing.T) {
	cfg := testConfig()
	cfg.Enemies.BaseSpeed = 0.01 // stays on screen for its whole lifetime
	m := newTestGame(cfg)
	p := enterPlaying(t, m)
	startHealth := p.health

	m.Scores().AddPoints(1)
	forceSpawn(t, p, enemy.Bonus, core.Vec2{X: 10, Y: 2})

	// Run well past the bonus lifetime.
	tick(m, 6*60)

	if p.enemies.InUseCount() != 0 {
		t.Error("expired bonus not recycled")
	}
	if p.health != startHealth {
		t.Error("bonus expiry cost health")
	}
	if m.Scores().Combo() != 1 {
		t.Error("bonus expiry broke the combo")
	}
}

func TestTankHitShakesScreen(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)

	e := forceSpawn(t, p, enemy.Tank, core.Vec2{X: 10, Y: 5})
	clickAt(m, e.Bounds().Center())

	if !p.shake.Active() {
		t.Error("tank hit did not start a screen shake")
	}
}

func TestSpawnTimerAndCap(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.SpawnInterval = 0.1
	cfg.Gameplay.MaxEnemies = 3
	cfg.Enemies.BaseSpeed = 0.01 // nothing falls off during the test
	m := newTestGame(cfg)
	p := enterPlaying(t, m)

	tick(m, 12)
	if p.enemies.InUseCount() == 0 {
		t.Fatal("no spawns after the interval elapsed")
	}

	tick(m, 5*60)
	if got := p.enemies.InUseCount(); got > 3 {
		t.Errorf("in use = %d, expected the cap of 3", got)
	}
}

func TestSpawnTimerHoldsWhileCapped(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.SpawnInterval = 0.5
	cfg.Gameplay.MaxEnemies = 1
	cfg.Enemies.BaseSpeed = 0.01
	m := newTestGame(cfg)
	p := enterPlaying(t, m)

	tick(m, 31)
	if got := p.enemies.InUseCount(); got != 1 {
		t.Fatalf("in use = %d after first interval, expected the cap of 1", got)
	}

	// A full interval elapses while the cap holds the spawn back.
	tick(m, 60)

	// Free the slot; the accumulated timer must fire on the very next
	// frame, not half a second later.
	h := p.enemies.InUse()[0]
	clickAt(m, p.enemies.Get(h).Bounds().Center())
	tick(m, 1)

	if got := p.enemies.InUseCount(); got != 1 {
		t.Errorf("in use = %d one frame after a slot freed, expected 1", got)
	}
}

func TestComboHitEmitsComboBurst(t *testing.T) {
	m := newTestGame(testConfig())
	p := enterPlaying(t, m)

	// Two hits build the streak just below the threshold of three.
	for i := 0; i < 2; i++ {
		e := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
		clickAt(m, e.Bounds().Center())
	}
	p.effects.Clear()

	e := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
	clickAt(m, e.Bounds().Center())

	if m.Scores().State() != score.ComboActive {
		t.Fatalf("combo state = %v after third hit, expected active", m.Scores().State())
	}
	// The active-combo hit carries the gold sparkle on top of the plain
	// hit burst of 20.
	if got := p.effects.ActiveCount(); got <= 20 {
		t.Errorf("active particles = %d, expected the combo burst on top of the hit burst", got)
	}
}

func TestExhaustedPoolSkipsSpawn(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.SpawnInterval = 0.05
	cfg.Gameplay.PoolSize = 2
	cfg.Gameplay.MaxEnemies = 50
	cfg.Gameplay.AllowPoolGrowth = false
	cfg.Enemies.BaseSpeed = 0.01
	m := newTestGame(cfg)
	p := enterPlaying(t, m)

	// Frames keep running past exhaustion.
	tick(m, 60)
	if got := p.enemies.InUseCount(); got != 2 {
		t.Errorf("in use = %d, expected the whole pool of 2", got)
	}
	if m.Current() != StatePlaying {
		t.Error("exhaustion did not leave the session running")
	}
}

func TestGameOverAtZeroHealth(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.StartHealth = 1
	m := newTestGame(cfg)
	p := enterPlaying(t, m)

	forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 23.9})
	tick(m, 10)

	if m.Current() != StateGameOver {
		t.Fatalf("state = %v, expected game over", m.Current())
	}
	if !m.Status().GameOver {
		t.Error("status does not report game over")
	}
}

func TestRestartResetsSession(t *testing.T) {
	cfg := testConfig()
	cfg.Gameplay.StartHealth = 1
	m := newTestGame(cfg)
	p := enterPlaying(t, m)

	e := forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 5})
	clickAt(m, e.Bounds().Center())

	forceSpawn(t, p, enemy.Normal, core.Vec2{X: 10, Y: 23.9})
	tick(m, 10)
	if m.Current() != StateGameOver {
		t.Fatal("expected game over")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	m.HandleInput(in)

	if m.Current() != StatePlaying {
		t.Fatalf("state = %v after restart, expected playing", m.Current())
	}
	if m.Scores().Score() != 0 {
		t.Error("restart kept the old session score")
	}
	if p.health != 1 || p.enemies.InUseCount() != 0 {
		t.Error("restart did not reset the field")
	}
}
