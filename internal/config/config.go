// Package config provides YAML-based game configuration loading.
package config

import "time"

// Config contains all tunable parameters of the game.
type Config struct {
	Timing   TimingConfig   `yaml:"timing"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Log      LogConfig      `yaml:"log"`
}

// TimingConfig defines the real-time cadences of the game loop.
type TimingConfig struct {
	Gravity       time.Duration `yaml:"gravity"`         // Interval between automatic one-row descents
	PollInterval  time.Duration `yaml:"poll_interval"`   // Input poll / simulation tick period
	GameOverDelay time.Duration `yaml:"game_over_delay"` // How long the GAME OVER screen stays up
}

// GameplayConfig defines scoring and lives.
type GameplayConfig struct {
	Lives      int `yaml:"lives"`
	LinePoints int `yaml:"line_points"` // Points per cleared row, no multi-line bonus
}

// LogConfig defines where diagnostic logs go.
// The terminal belongs to the game, so logs are only written to a file.
type LogConfig struct {
	File  string `yaml:"file"`  // Empty disables logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			Gravity:       500 * time.Millisecond,
			PollInterval:  100 * time.Millisecond,
			GameOverDelay: 3 * time.Second,
		},
		Gameplay: GameplayConfig{
			Lives:      3,
			LinePoints: 100,
		},
		Log: LogConfig{
			File:  "",
			Level: "info",
		},
	}
}

// Validate replaces out-of-range values with their defaults.
func (c *Config) Validate() {
	def := Default()

	if c.Timing.Gravity <= 0 {
		c.Timing.Gravity = def.Timing.Gravity
	}
	if c.Timing.PollInterval <= 0 {
		c.Timing.PollInterval = def.Timing.PollInterval
	}
	if c.Timing.GameOverDelay < 0 {
		c.Timing.GameOverDelay = def.Timing.GameOverDelay
	}
	if c.Gameplay.Lives <= 0 {
		c.Gameplay.Lives = def.Gameplay.Lives
	}
	if c.Gameplay.LinePoints < 0 {
		c.Gameplay.LinePoints = def.Gameplay.LinePoints
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
