package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the name of the Ascend config file in the search directories.
const ConfigFile = "ascend.yaml"

// LoadAscend loads Ascend configuration. Files are merged over the defaults,
// so a file only needs the keys it changes.
// Search order: customPath -> ~/.ascend/configs/ascend.yaml -> ./configs/ascend.yaml -> embedded default
func LoadAscend(customPath string) (AscendConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AscendConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return AscendConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultAscendYAML)
	if err != nil {
		return DefaultAscendConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes data over the hardcoded defaults and validates the result.
func parse(data []byte) (AscendConfig, error) {
	cfg := DefaultAscendConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AscendConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return AscendConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ascend", "configs", filename)
}

// ApplyAscendPreset modifies the config based on a difficulty preset.
func ApplyAscendPreset(cfg *AscendConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust spawning based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.BossChance = 0.05
		cfg.Timing.AscendIntervalMs = 1500
	case DifficultyHard:
		cfg.Spawn.BossChance = 0.25
		cfg.Timing.AscendIntervalMs = 800
	}
}
