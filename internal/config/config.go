// Package config provides YAML-based game configuration loading and
// difficulty management for crossy.
package config

// CrossyConfig contains all configuration for the crossing game.
type CrossyConfig struct {
	Grid       GridSettings     `yaml:"grid"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// GridSettings defines the initial grid tunables. The in-game settings keys
// mutate these at runtime within the documented bounds.
type GridSettings struct {
	Lanes      int     `yaml:"lanes"`
	Cols       int     `yaml:"cols"`
	Vehicles   int     `yaml:"vehicles"`
	BaseSpeed  float64 `yaml:"base_speed"` // Native pixels per second
	Difficulty int     `yaml:"difficulty"`
	Scale      float64 `yaml:"scale"`
}

// DifficultyConfig defines the streak-based difficulty progression system.
// When disabled the effective difficulty is exactly the grid setting.
type DifficultyConfig struct {
	Enabled     bool              `yaml:"enabled"`
	Progression ProgressionConfig `yaml:"progression"`
	Scaling     ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "streak" or "none"
	MaxAt int    `yaml:"max_at"` // Streak at which max progression is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	DifficultyBoost int `yaml:"difficulty_boost"` // Difficulty points added at max progression
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyCrossyPreset modifies the config based on a difficulty preset.
// "fixed" disables progression and keeps the config's own difficulty.
func ApplyCrossyPreset(cfg *CrossyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Grid.Difficulty = 1
		cfg.Difficulty.Enabled = true
	case DifficultyNormal:
		cfg.Grid.Difficulty = 3
		cfg.Difficulty.Enabled = true
	case DifficultyHard:
		cfg.Grid.Difficulty = 6
		cfg.Difficulty.Enabled = true
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
	}
}
