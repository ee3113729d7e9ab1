package config

import (
	_ "embed"
)

//go:embed defaults/shapefall.yaml
var defaultYAML []byte

// Default returns the built-in configuration, matching the embedded YAML.
func Default() Config {
	return Config{
		Gameplay: GameplayConfig{
			StartHealth:     10,
			MaxEnemies:      12,
			SpawnInterval:   1.0,
			PoolSize:        32,
			AllowPoolGrowth: false,
		},
		Enemies: EnemiesConfig{
			BaseSpeed:    6.0,
			OscAmplitude: 5.0,
			OscFrequency: 0.3,
		},
		Particles: ParticlesConfig{
			PoolSize: 256,
			Gravity:  9.0,
		},
		Combo: ComboConfig{
			Threshold: 3,
			Increment: 0.5,
		},
		Leaderboard: LeaderboardConfig{
			MaxEntries: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				IntervalReduction: 0.6,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML, for printing or seeding a
// user config file.
func DefaultYAML() []byte {
	return defaultYAML
}
