package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// newLogger opens the configured log file. The game owns the terminal, so
// without a file all log output is discarded.
func newLogger(conf config.LogConfig) (*log.Logger, func(), error) {
	level := log.InfoLevel
	if conf.Level != "" {
		parsed, err := log.ParseLevel(conf.Level)
		if err != nil {
			return nil, nil, fmt.Errorf("log: %w", err)
		}
		level = parsed
	}

	var w io.Writer = io.Discard
	closeFn := func() {}

	if conf.File != "" {
		if dir := filepath.Dir(conf.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("log: failed to create directory: %w", err)
			}
		}
		f, err := os.OpenFile(conf.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("log: failed to open %s: %w", conf.File, err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, closeFn, nil
}
