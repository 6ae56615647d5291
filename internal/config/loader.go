package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is the project-relative override location.
const localConfigPath = "configs/tetro.yaml"

// Load loads the game configuration.
// Search order: ~/.tetro/config.yaml -> ./configs/tetro.yaml -> embedded default.
// Files that are missing or fail to parse are skipped.
func Load() (Config, string) {
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if cfg, err := LoadFile(userCfgPath); err == nil {
			return cfg, userCfgPath
		}
	}

	if cfg, err := LoadFile(localConfigPath); err == nil {
		return cfg, localConfigPath
	}

	cfg, err := Parse(defaultTetroYAML)
	if err != nil {
		return Default(), "builtin" // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded"
}

// LoadFile reads and parses a single configuration file.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults, so partial files are allowed.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	cfg.Validate()
	return cfg, nil
}

// Encode renders the configuration as YAML.
func Encode(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}

// UserConfigPath returns the path to the user config file, or empty if home is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tetro", "config.yaml")
}
