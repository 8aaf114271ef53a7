package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColorDash loads the game configuration.
// Search order: customPath -> ~/.colordash/colordash.yaml -> ./configs/colordash.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadColorDash(customPath string) (ColorDashConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ColorDashConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return ColorDashConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// User config directory, then local configs directory. Broken files are skipped.
	candidates := []string{userConfigPath("colordash.yaml"), filepath.Join("configs", "colordash.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultColorDashYAML)
	if err != nil {
		return DefaultColorDashConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the built-in defaults and validates the result.
func Parse(data []byte) (ColorDashConfig, error) {
	cfg := DefaultColorDashConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ColorDashConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return ColorDashConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a config as YAML.
func Marshal(cfg ColorDashConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode yaml: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".colordash", filename)
}
