package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "patterns.yaml"

// Load loads the puzzle configuration and validates it.
// Search order: customPath -> ~/.patterns/configs/patterns.yaml ->
// ./configs/patterns.yaml -> embedded default.
// An explicit customPath that cannot be read or parsed is an error; the
// fallback locations are skipped silently when broken.
func Load(customPath string) (PatternConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return PatternConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return PatternConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return PatternConfig{}, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	if cfg, ok := tryLoad(filepath.Join("configs", configFileName)); ok {
		return cfg, nil
	}

	cfg, err := Parse(defaultPatternsYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultPatternConfig(), nil
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// to name the values it changes.
func Parse(data []byte) (PatternConfig, error) {
	cfg := DefaultPatternConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PatternConfig{}, err
	}
	return cfg, nil
}

// tryLoad reads, parses and validates a fallback config file.
func tryLoad(path string) (PatternConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PatternConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil || cfg.Validate() != nil {
		return PatternConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".patterns", "configs", filename)
}
