// Package config provides YAML configuration for the snake driver and its
// presentation: clock rate, colors, key bindings and logging.
// Board size, starting speed and scoring are fixed and not configurable.
package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// Config is the full runtime configuration.
type Config struct {
	Clock int         `yaml:"clock"`
	Theme ThemeConfig `yaml:"theme"`
	Keys  KeysConfig  `yaml:"keys"`
	Log   LogConfig   `yaml:"log"`
}

// ThemeConfig holds lipgloss color strings for each screen role.
type ThemeConfig struct {
	Snake  string `yaml:"snake"`
	Apple  string `yaml:"apple"`
	Alert  string `yaml:"alert"`
	Border string `yaml:"border"`
	Text   string `yaml:"text"`
}

// KeysConfig lists the key names bound to each input.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Quit  []string `yaml:"quit"`
}

// LogConfig controls the file logger.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Validate checks that the configuration can drive a game.
func (c Config) Validate() error {
	var errs []error

	if c.Clock <= 0 {
		errs = append(errs, fmt.Errorf("clock must be positive, got %d", c.Clock))
	}

	seen := make(map[string]string)
	for _, b := range c.Keys.bindings() {
		if len(b.keys) == 0 {
			errs = append(errs, fmt.Errorf("keys.%s: no keys bound", b.name))
		}
		for _, k := range b.keys {
			if other, ok := seen[k]; ok && other != b.name {
				errs = append(errs, fmt.Errorf("keys.%s: %q is already bound to %s", b.name, k, other))
			}
			seen[k] = b.name
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("log.level: %w", err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid configuration: %w", err)
	}
	return nil
}

type namedKeys struct {
	name string
	keys []string
}

func (k KeysConfig) bindings() []namedKeys {
	return []namedKeys{
		{"up", k.Up},
		{"down", k.Down},
		{"left", k.Left},
		{"right", k.Right},
		{"quit", k.Quit},
	}
}
