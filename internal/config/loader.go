package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSlide loads the puzzle configuration.
// Search order: customPath -> ~/.slide/configs/slide.yaml -> ./configs/slide.yaml -> embedded default
func LoadSlide(customPath string) (SlideConfig, error) {
	var cfg SlideConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if cfg, err = Parse(data); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, cfg.Validate()
	}

	// Try user config directory
	if userCfgPath := userConfigPath("slide.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, err := Parse(data); err == nil && parsed.Validate() == nil {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/slide.yaml"); err == nil {
		if parsed, err := Parse(data); err == nil && parsed.Validate() == nil {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	parsed, err := Parse(defaultSlideYAML)
	if err != nil {
		return DefaultSlideConfig(), nil // Fallback to hardcoded if embed fails
	}
	return parsed, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they set.
func Parse(data []byte) (SlideConfig, error) {
	cfg := DefaultSlideConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Grid.WrapPolicy == "" {
		cfg.Grid.WrapPolicy = WrapCarry
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg SlideConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".slide", "configs", filename)
}
