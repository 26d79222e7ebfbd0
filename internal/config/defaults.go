package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultCrossyConfig returns the default crossing game configuration.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		Grid: GridSettings{
			Lanes:      4,
			Cols:       7,
			Vehicles:   6,
			BaseSpeed:  80,
			Difficulty: 3,
			Scale:      1.0,
		},
		Difficulty: DifficultyConfig{
			Enabled: false,
			Progression: ProgressionConfig{
				Type:  "streak",
				MaxAt: 20,
			},
			Scaling: ScalingConfig{
				DifficultyBoost: 5,
			},
		},
	}
}
