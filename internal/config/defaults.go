package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It mirrors
// defaults/snake.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Clock: 1000,
		Theme: ThemeConfig{
			Snake:  "2",
			Apple:  "1",
			Alert:  "1",
			Border: "245",
			Text:   "15",
		},
		Keys: KeysConfig{
			Up:    []string{"up", "w", "k"},
			Down:  []string{"down", "s", "j"},
			Left:  []string{"left", "a", "h"},
			Right: []string{"right", "d", "l"},
			Quit:  []string{"q", "esc", "ctrl+c"},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
