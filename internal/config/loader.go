package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no configuration file was found.
const SourceEmbedded = "embedded"

// LoadPong loads pong configuration.
// Search order: customPath -> ~/.lcdpong/configs/pong.yaml -> ./configs/pong.yaml -> embedded default
func LoadPong(customPath string) (PongConfig, error) {
	cfg, _, err := ResolvePong(customPath)
	return cfg, err
}

// ResolvePong is LoadPong that also reports the file the configuration came
// from, or SourceEmbedded. Files are decoded over the defaults, so a partial
// file only overrides the keys it sets.
func ResolvePong(customPath string) (PongConfig, string, error) {
	cfg := DefaultPongConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("pong.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			candidate := DefaultPongConfig()
			if err := yaml.Unmarshal(data, &candidate); err == nil {
				return candidate, userCfgPath, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "pong.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		candidate := DefaultPongConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, localPath, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultPongYAML, &cfg); err != nil {
		return DefaultPongConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// Marshal renders the configuration as YAML.
func (c PongConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lcdpong", "configs", filename)
}

// ApplyPongPreset modifies the config based on a difficulty preset.
func ApplyPongPreset(cfg *PongConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ball.VelocityX = 2
		cfg.Ball.VelocityY = 1
		cfg.Paddles.Speed = 5
		cfg.Gameplay.CPUSkill = 0.5
	case DifficultyHard:
		cfg.Ball.VelocityX = 4
		cfg.Ball.VelocityY = 3
		cfg.Paddles.Speed = 4
		cfg.Gameplay.CPUSkill = 0.9
	}
}
