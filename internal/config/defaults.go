package config

import (
	_ "embed"
)

//go:embed defaults/ascend.yaml
var defaultAscendYAML []byte

// DefaultAscendConfig returns the default Ascend configuration.
func DefaultAscendConfig() AscendConfig {
	return AscendConfig{
		Board: BoardConfig{
			Rows:       11,
			Cols:       9,
			BossColors: []string{"red", "rgb(255, 0, 0)"},
		},
		Timing: TimingConfig{
			AscendIntervalMs:   1000,
			AdvisoryIntervalMs: 500,
		},
		Advisor: AdvisorConfig{
			Enabled: true,
			Workers: 0,
			Weights: WeightsConfig{
				ChainFactor: 0.5,
				DepthMax:    2.0,
				BossBonus:   1.2,
			},
		},
		Spawn: SpawnConfig{
			MinWidth:   1,
			MaxWidth:   4,
			BossChance: 0.1,
			EveryTicks: 1,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "rows",
				MaxAt: 40,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
				MinIntervalMs:   250,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAscendYAML
}
