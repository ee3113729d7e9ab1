package game

import (
	"errors"
	"fmt"
	"math"

	"github.com/shapefall/shapefall/internal/config"
	"github.com/shapefall/shapefall/internal/core"
	"github.com/shapefall/shapefall/internal/enemy"
	"github.com/shapefall/shapefall/internal/particles"
	"github.com/shapefall/shapefall/internal/pool"
	"github.com/shapefall/shapefall/internal/score"
)

// Tank hits kick the screen.
const (
	tankShakeDuration  = 0.25
	tankShakeIntensity = 1.5
)

// playingState runs the core loop: spawn falling shapes, advance them, sweep
// misses, resolve clicks, then settle effects. The frame order is fixed and
// every subsystem shares one delta per tick.
type playingState struct {
	m *Manager

	enemies    *pool.Pool[enemy.Enemy]
	factory    *enemy.Factory
	effects    *particles.System
	shake      *particles.ScreenShake
	difficulty *config.DifficultyManager

	health     int
	spawnTimer float64
	ticks      int

	// Click recorded during input handling, resolved inside Update so the
	// frame order stays fixed.
	clickQueued bool
	clickPos    core.Vec2

	// Set when leaving for the pause state so the session survives the
	// round trip.
	suspended bool
}

func newPlayingState(m *Manager) *playingState {
	cfg := m.cfg
	tuning := enemy.Tuning{
		BaseSpeed:    cfg.Enemies.BaseSpeed,
		OscAmplitude: cfg.Enemies.OscAmplitude,
		OscFrequency: cfg.Enemies.OscFrequency,
	}

	return &playingState{
		m: m,
		enemies: pool.New(
			cfg.Gameplay.PoolSize,
			func() enemy.Enemy { return enemy.Enemy{} },
			(*enemy.Enemy).Reset,
			cfg.Gameplay.AllowPoolGrowth,
		),
		factory:    enemy.NewFactory(m.rt.Seed, tuning),
		effects:    particles.NewSystem(cfg.Particles.PoolSize, cfg.Particles.Gravity, m.rt.Seed+1),
		shake:      particles.NewScreenShake(m.rt.Seed + 2),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
}

func (p *playingState) Type() StateType { return StatePlaying }

// OnEnter starts a fresh session, unless we are resuming from pause.
func (p *playingState) OnEnter() {
	if p.suspended {
		p.suspended = false
		return
	}

	p.m.scores.ResetSession()
	p.enemies.ReleaseAll()
	p.effects.Clear()
	p.shake.Stop()
	p.health = p.m.cfg.Gameplay.StartHealth
	p.spawnTimer = 0
	p.ticks = 0
	p.clickQueued = false

	p.m.logger.Info("session started",
		"health", p.health,
		"pool", p.enemies.Size(),
	)
}

// abandon discards a suspended session so the next entry starts fresh.
// Called when the player quits to the menu from pause.
func (p *playingState) abandon() {
	p.suspended = false
	p.enemies.ReleaseAll()
	p.effects.Clear()
	p.shake.Stop()
}

// OnExit tears the session down, unless we are only pausing.
func (p *playingState) OnExit() {
	if p.suspended {
		return
	}
	p.enemies.ReleaseAll()
	p.effects.Clear()
	p.shake.Stop()
}

func (p *playingState) HandleInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		p.suspended = true
		p.m.ChangeState(StatePaused)
		return
	}
	if in.Click {
		p.clickQueued = true
		p.clickPos = in.Pointer
	}
}

func (p *playingState) Update(dt float64) {
	p.ticks++

	p.spawnEnemies(dt)
	p.moveEnemies(dt)
	p.sweepMisses()
	p.resolveClick()

	p.effects.Update(dt)
	p.shake.Update(dt)

	if p.health <= 0 {
		p.health = 0
		p.m.ChangeState(StateGameOver)
	}
}

// spawnEnemies emits at the difficulty-scaled interval, capped by the live
// enemy limit. The timer only resets on a successful spawn, so a spawn held
// back by the cap or an exhausted pool fires the frame a slot frees.
func (p *playingState) spawnEnemies(dt float64) {
	p.spawnTimer += dt

	sc := p.m.scores.Score()
	interval := p.difficulty.SpawnInterval(p.m.cfg.Gameplay.SpawnInterval, sc, p.ticks)
	if p.spawnTimer < interval {
		return
	}
	if p.enemies.InUseCount() >= p.m.cfg.Gameplay.MaxEnemies {
		return
	}

	p.factory.SetBaseSpeed(p.difficulty.Speed(p.m.cfg.Enemies.BaseSpeed, sc, p.ticks))

	_, e, err := p.enemies.Acquire()
	if err != nil {
		if errors.Is(err, pool.ErrExhausted) {
			p.m.logger.Debug("enemy pool exhausted, spawn skipped")
			return
		}
		p.m.logger.Error("enemy acquire failed", "error", err)
		return
	}
	p.spawnTimer = 0

	pos := core.Vec2{X: p.factory.SpawnX(float64(p.m.rt.ScreenW)), Y: -4}
	v := p.factory.SpawnRandom(e, pos)
	p.m.logger.Debug("spawned", "variant", v, "x", pos.X)
}

func (p *playingState) moveEnemies(dt float64) {
	for _, h := range p.enemies.InUse() {
		p.enemies.Get(h).Update(dt)
	}
}

// sweepMisses releases shapes that left the screen or ran out their bonus
// lifetime. Iterates a snapshot so releasing mid-loop cannot skip a
// neighbor.
func (p *playingState) sweepMisses() {
	snapshot := append([]pool.Handle(nil), p.enemies.InUse()...)
	screenH := float64(p.m.rt.ScreenH)

	for _, h := range snapshot {
		e := p.enemies.Get(h)

		switch {
		case e.Expired():
			// A bonus fading out is not a miss: no health loss, no combo
			// break.
			p.release(h)

		case e.Active && e.OffScreen(screenH):
			p.health -= e.HealthCost
			p.m.scores.BreakCombo()

			center := e.Bounds().Center()
			p.effects.EmitMiss(core.Vec2{X: center.X, Y: screenH - 1})
			p.m.logger.Debug("missed",
				"variant", e.Variant,
				"cost", e.HealthCost,
				"health", p.health,
			)
			p.release(h)
		}
	}
}

// resolveClick consumes a queued click against the live shapes in spawn
// order, so overlapping shapes resolve to the oldest one. At most one shape
// is hit per click; a click on empty space does nothing.
func (p *playingState) resolveClick() {
	if !p.clickQueued {
		return
	}
	p.clickQueued = false

	snapshot := append([]pool.Handle(nil), p.enemies.InUse()...)
	for _, h := range snapshot {
		e := p.enemies.Get(h)
		if !e.ContainsPoint(p.clickPos) {
			continue
		}

		awarded := p.m.scores.AddPoints(e.PointValue)
		center := e.Bounds().Center()
		p.effects.EmitHit(center, e.Color())
		if p.m.scores.State() == score.ComboActive {
			p.effects.EmitCombo(center)
		}
		if e.Variant == enemy.Tank {
			p.shake.Start(tankShakeDuration, tankShakeIntensity)
		}

		p.m.logger.Debug("hit",
			"variant", e.Variant,
			"awarded", awarded,
			"combo", p.m.scores.Combo(),
		)
		p.release(h)
		return
	}
}

// release returns a shape to the pool. An invalid release is a loop bug;
// it is logged and the frame continues.
func (p *playingState) release(h pool.Handle) {
	if err := p.enemies.Release(h); err != nil {
		p.m.logger.Warn("enemy release ignored", "handle", int(h), "error", err)
	}
}

func (p *playingState) Render(s *core.Screen) {
	offset := p.shake.Offset()

	for _, h := range p.enemies.InUse() {
		e := p.enemies.Get(h)
		if !e.Active {
			continue
		}
		b := e.Bounds()
		r := core.NewRect(
			int(math.Round(b.X+offset.X)),
			int(math.Round(b.Y+offset.Y)),
			int(math.Round(b.W)),
			int(math.Round(b.H)),
		)
		s.FillRect(r, e.Glyph(), e.Color())
	}

	p.effects.Render(s, offset)
	p.renderHUD(s)
}

func (p *playingState) renderHUD(s *core.Screen) {
	s.DrawHLine(0, 1, s.Width(), '─')

	s.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", p.m.scores.Score()), core.ColorWhite)
	if label := p.m.scores.ComboLabel(); label != "" {
		s.DrawTextColored(14, 0, label, core.ColorGold)
	}

	health := fmt.Sprintf("HP %d", p.health)
	s.DrawTextColored(s.Width()/2-len(health)/2, 0, health, healthColor(p.health, p.m.cfg.Gameplay.StartHealth))

	best := fmt.Sprintf("BEST %d", p.m.scores.HighScore())
	s.DrawTextColored(s.Width()-len(best)-1, 0, best, core.ColorCyan)
}

// healthColor shifts from green to red as health drains.
func healthColor(health, max int) core.Color {
	if max <= 0 {
		return core.ColorWhite
	}
	switch {
	case health*3 >= max*2:
		return core.ColorGreen
	case health*3 >= max:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}
