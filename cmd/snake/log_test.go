package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/config"
)

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{Level: "warn"})
	require.NoError(t, err)
	defer closeLog()

	require.Equal(t, log.WarnLevel, logger.GetLevel())
}

func TestNewLoggerDefaultLevel(t *testing.T) {
	logger, closeLog, err := newLogger(config.LogConfig{})
	require.NoError(t, err)
	defer closeLog()

	require.Equal(t, log.InfoLevel, logger.GetLevel())
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	logger, closeLog, err := newLogger(config.LogConfig{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Debug("apple eaten", "apples", 3)
	closeLog()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	line := string(data)
	require.True(t, strings.Contains(line, "snake"), "missing prefix: %q", line)
	require.Contains(t, line, "apple eaten")
	require.Contains(t, line, "apples=3")
}

func TestNewLoggerBadLevel(t *testing.T) {
	_, _, err := newLogger(config.LogConfig{Level: "loud"})
	require.Error(t, err)
}
