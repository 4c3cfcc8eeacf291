// Package config provides YAML-based game configuration loading and
// difficulty management for Ascend.
package config

import (
	"fmt"
	"time"
)

// AscendConfig contains all configuration for the Ascend game.
type AscendConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Advisor    AdvisorConfig    `yaml:"advisor"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the board geometry and the starting layout.
type BoardConfig struct {
	Rows       int      `yaml:"rows"`
	Cols       int      `yaml:"cols"`
	BossColors []string `yaml:"boss_colors"`
	Layout     string   `yaml:"layout"` // Built-in layout ID, empty for a blank board
}

// TimingConfig defines the session timers.
type TimingConfig struct {
	AscendIntervalMs   int `yaml:"ascend_interval_ms"`
	AdvisoryIntervalMs int `yaml:"advisory_interval_ms"`
}

// AscendInterval returns the ascend interval as a duration.
func (t TimingConfig) AscendInterval() time.Duration {
	return time.Duration(t.AscendIntervalMs) * time.Millisecond
}

// AdvisoryInterval returns the advisory interval as a duration.
func (t TimingConfig) AdvisoryInterval() time.Duration {
	return time.Duration(t.AdvisoryIntervalMs) * time.Millisecond
}

// AdvisorConfig defines the move advisor.
type AdvisorConfig struct {
	Enabled bool          `yaml:"enabled"`
	Workers int           `yaml:"workers"` // 0 or 1 scores candidates sequentially
	Weights WeightsConfig `yaml:"weights"`
}

// WeightsConfig holds the move scoring weights.
type WeightsConfig struct {
	ChainFactor float64 `yaml:"chain_factor"`
	DepthMax    float64 `yaml:"depth_max"`
	BossBonus   float64 `yaml:"boss_bonus"`
}

// SpawnConfig defines how new pieces enter the staging row.
type SpawnConfig struct {
	MinWidth   int     `yaml:"min_width"`
	MaxWidth   int     `yaml:"max_width"`
	BossChance float64 `yaml:"boss_chance"` // 0.0 - 1.0
	EveryTicks int     `yaml:"every_ticks"` // Ascend ticks between spawn attempts
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "rows", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Rows cleared or ascend ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra ascend speed at max difficulty
	MinIntervalMs   int     `yaml:"min_interval_ms"`  // Fastest allowed ascend interval
}

// Validate rejects configurations the game cannot run with.
func (c AscendConfig) Validate() error {
	switch {
	case c.Board.Rows < 3:
		return fmt.Errorf("config: board.rows must be at least 3, got %d", c.Board.Rows)
	case c.Board.Cols < 1:
		return fmt.Errorf("config: board.cols must be at least 1, got %d", c.Board.Cols)
	case c.Timing.AscendIntervalMs <= 0:
		return fmt.Errorf("config: timing.ascend_interval_ms must be positive")
	case c.Timing.AdvisoryIntervalMs <= 0:
		return fmt.Errorf("config: timing.advisory_interval_ms must be positive")
	case c.Advisor.Workers < 0:
		return fmt.Errorf("config: advisor.workers must not be negative")
	case c.Advisor.Weights.ChainFactor < 0 || c.Advisor.Weights.DepthMax < 0 || c.Advisor.Weights.BossBonus < 0:
		return fmt.Errorf("config: advisor.weights must not be negative")
	case c.Spawn.MinWidth < 1:
		return fmt.Errorf("config: spawn.min_width must be at least 1")
	case c.Spawn.MaxWidth < c.Spawn.MinWidth:
		return fmt.Errorf("config: spawn.max_width %d is below min_width %d", c.Spawn.MaxWidth, c.Spawn.MinWidth)
	case c.Spawn.MaxWidth > c.Board.Cols:
		return fmt.Errorf("config: spawn.max_width %d exceeds board.cols %d", c.Spawn.MaxWidth, c.Board.Cols)
	case c.Spawn.BossChance < 0 || c.Spawn.BossChance > 1:
		return fmt.Errorf("config: spawn.boss_chance must be within [0, 1]")
	case c.Spawn.EveryTicks < 1:
		return fmt.Errorf("config: spawn.every_ticks must be at least 1")
	case c.Difficulty.InitialLevel < 0 || c.Difficulty.InitialLevel > 1:
		return fmt.Errorf("config: difficulty.initial_level must be within [0, 1]")
	}

	switch c.Difficulty.Progression.Type {
	case "rows", "time", "none", "":
	default:
		return fmt.Errorf("config: unknown difficulty.progression.type %q", c.Difficulty.Progression.Type)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. The empty string means
// "keep the configured difficulty".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed, "":
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

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

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
