package config

import (
	"math"
	"time"
)

// DifficultyManager calculates dynamic game parameters based on rows cleared
// or elapsed ascend ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: cfg.InitialLevel,
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on rows cleared/ticks.
func (d *DifficultyManager) Level(rows int, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "rows":
		progress = float64(rows) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed multiplier based on difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, rows int, ticks int) float64 {
	level := d.Level(rows, ticks)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// AscendInterval returns the ascend interval for the current difficulty.
// The interval shrinks as speed grows and never drops below the configured minimum.
func (d *DifficultyManager) AscendInterval(base time.Duration, rows int, ticks int) time.Duration {
	speed := d.Speed(1.0, rows, ticks)
	if speed <= 0 {
		return base
	}

	interval := time.Duration(float64(base) / speed)
	minInterval := time.Duration(d.cfg.Scaling.MinIntervalMs) * time.Millisecond
	if minInterval > 0 && interval < minInterval {
		interval = min(minInterval, base)
	}
	return interval.Round(time.Millisecond)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
