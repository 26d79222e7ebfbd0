package config

import "math"

// DifficultyManager calculates the effective difficulty bonus from the
// player's current streak. Vehicle speed rolls add the bonus on top of the
// grid's difficulty setting.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current progression level (0.0 to 1.0) for a streak.
func (d *DifficultyManager) Level(streak int) float64 {
	if !d.IsEnabled() {
		return 0
	}
	if d.cfg.Progression.Type != "streak" {
		return 0
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	return clampF(float64(streak)/maxAt, 0.0, 1.0)
}

// Boost returns the difficulty points to add on top of the grid setting
// for the given streak. Zero when progression is disabled.
func (d *DifficultyManager) Boost(streak int) int {
	level := d.Level(streak)
	return int(math.Round(level * float64(d.cfg.Scaling.DifficultyBoost)))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
