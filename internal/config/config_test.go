package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultAscendConfig(), cfg)
}

func TestLoadAscendMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, "timing:\n  ascend_interval_ms: 700\nspawn:\n  boss_chance: 0.5\n")

	cfg, err := LoadAscend(path)
	require.NoError(t, err)
	assert.Equal(t, 700*time.Millisecond, cfg.Timing.AscendInterval())
	assert.Equal(t, 500*time.Millisecond, cfg.Timing.AdvisoryInterval())
	assert.InDelta(t, 0.5, cfg.Spawn.BossChance, 1e-9)
	assert.Equal(t, 11, cfg.Board.Rows)
	assert.True(t, cfg.Advisor.Enabled)
}

func TestLoadAscendCustomPathErrors(t *testing.T) {
	_, err := LoadAscend(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadAscend(writeConfig(t, "board: [broken"))
	assert.Error(t, err)

	_, err = LoadAscend(writeConfig(t, "spawn:\n  max_width: 20\n"))
	assert.ErrorContains(t, err, "spawn.max_width")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AscendConfig)
		ok     bool
	}{
		{"defaults", func(*AscendConfig) {}, true},
		{"tiny board", func(c *AscendConfig) { c.Board.Rows = 2 }, false},
		{"no columns", func(c *AscendConfig) { c.Board.Cols = 0 }, false},
		{"zero ascend interval", func(c *AscendConfig) { c.Timing.AscendIntervalMs = 0 }, false},
		{"zero advisory interval", func(c *AscendConfig) { c.Timing.AdvisoryIntervalMs = 0 }, false},
		{"negative workers", func(c *AscendConfig) { c.Advisor.Workers = -1 }, false},
		{"negative weight", func(c *AscendConfig) { c.Advisor.Weights.BossBonus = -1 }, false},
		{"zero min width", func(c *AscendConfig) { c.Spawn.MinWidth = 0 }, false},
		{"max below min", func(c *AscendConfig) { c.Spawn.MinWidth, c.Spawn.MaxWidth = 3, 2 }, false},
		{"boss chance above one", func(c *AscendConfig) { c.Spawn.BossChance = 1.5 }, false},
		{"zero spawn cadence", func(c *AscendConfig) { c.Spawn.EveryTicks = 0 }, false},
		{"unknown progression", func(c *AscendConfig) { c.Difficulty.Progression.Type = "score" }, false},
		{"no progression", func(c *AscendConfig) { c.Difficulty.Progression.Type = "none" }, true},
		{"full width spawns", func(c *AscendConfig) { c.Spawn.MaxWidth = c.Board.Cols }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAscendConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed", ""} {
		p, err := ParsePreset(s)
		require.NoError(t, err)
		assert.Equal(t, DifficultyPreset(s), p)
	}

	_, err := ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestApplyAscendPreset(t *testing.T) {
	cfg := DefaultAscendConfig()
	ApplyAscendPreset(&cfg, DifficultyHard)
	assert.True(t, cfg.Difficulty.Enabled)
	assert.InDelta(t, 0.7, cfg.Difficulty.InitialLevel, 1e-9)
	assert.Equal(t, 800, cfg.Timing.AscendIntervalMs)
	assert.NoError(t, cfg.Validate())

	cfg = DefaultAscendConfig()
	ApplyAscendPreset(&cfg, DifficultyFixed)
	assert.False(t, cfg.Difficulty.Enabled)

	cfg = DefaultAscendConfig()
	ApplyAscendPreset(&cfg, "")
	assert.Equal(t, DefaultAscendConfig(), cfg)
}

func TestDifficultyAscendInterval(t *testing.T) {
	cfg := DefaultAscendConfig().Difficulty
	d := NewDifficultyManager(cfg)

	assert.Equal(t, time.Second, d.AscendInterval(time.Second, 0, 0))
	assert.InDelta(t, 0.5, d.Level(20, 0), 1e-9)
	assert.Equal(t, 500*time.Millisecond, d.AscendInterval(time.Second, 20, 0))
	assert.Equal(t, 333*time.Millisecond, d.AscendInterval(time.Second, 40, 0))
	// Progress past max_at is clamped
	assert.Equal(t, 333*time.Millisecond, d.AscendInterval(time.Second, 400, 0))

	cfg.Scaling.SpeedMultiplier = 10
	fast := NewDifficultyManager(cfg)
	assert.Equal(t, 250*time.Millisecond, fast.AscendInterval(time.Second, 40, 0))
	assert.Equal(t, 200*time.Millisecond, fast.AscendInterval(200*time.Millisecond, 40, 0))

	d.SetEnabled(false)
	assert.False(t, d.IsEnabled())
	assert.Equal(t, time.Second, d.AscendInterval(time.Second, 40, 0))
}

func TestDifficultyTimeProgression(t *testing.T) {
	cfg := DefaultAscendConfig().Difficulty
	cfg.Progression = ProgressionConfig{Type: "time", MaxAt: 100}
	d := NewDifficultyManager(cfg)
	d.SetInitialLevel(0.5)

	assert.InDelta(t, 0.5, d.Level(999, 0), 1e-9)
	assert.InDelta(t, 0.75, d.Level(0, 50), 1e-9)
	assert.InDelta(t, 1.0, d.Level(0, 1000), 1e-9)
}
