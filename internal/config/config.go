// Package config provides YAML-based gameplay configuration loading and
// the difficulty progression manager.
package config

// Config contains all gameplay tuning for a session.
type Config struct {
	Gameplay    GameplayConfig    `yaml:"gameplay"`
	Enemies     EnemiesConfig     `yaml:"enemies"`
	Particles   ParticlesConfig   `yaml:"particles"`
	Combo       ComboConfig       `yaml:"combo"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
	Difficulty  DifficultyConfig  `yaml:"difficulty"`
}

// GameplayConfig defines session-level rules.
type GameplayConfig struct {
	StartHealth     int     `yaml:"start_health"`
	MaxEnemies      int     `yaml:"max_enemies"`
	SpawnInterval   float64 `yaml:"spawn_interval"` // seconds between spawns at level 0
	PoolSize        int     `yaml:"pool_size"`
	AllowPoolGrowth bool    `yaml:"allow_pool_growth"`
}

// EnemiesConfig defines shared movement tuning for falling shapes.
type EnemiesConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`    // cells/sec before variant scaling
	OscAmplitude float64 `yaml:"osc_amplitude"` // horizontal wiggle amplitude
	OscFrequency float64 `yaml:"osc_frequency"` // wiggle frequency over fall depth
}

// ParticlesConfig defines the effect system budget.
type ParticlesConfig struct {
	PoolSize int     `yaml:"pool_size"`
	Gravity  float64 `yaml:"gravity"` // cells/sec^2 pulling particles down
}

// ComboConfig defines the scoring streak parameters.
type ComboConfig struct {
	Threshold int     `yaml:"threshold"`
	Increment float64 `yaml:"increment"`
}

// LeaderboardConfig defines leaderboard capacity.
type LeaderboardConfig struct {
	MaxEntries int `yaml:"max_entries"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a session.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Added to fall speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // Seconds shaved off the spawn interval at max
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
