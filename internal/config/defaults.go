package config

import (
	_ "embed"
)

//go:embed defaults/tetro.yaml
var defaultTetroYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetroYAML
}
