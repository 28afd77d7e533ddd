package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD/HJKL  - Steer
  Any direction     - Restart (after game over)
  Q/Esc/Ctrl+C      - Quit

The game speeds up with every apple. --clock scales the whole pace:
a full step runs every (clock - speed) frames.

Examples:
  snake play
  snake play --seed 42
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(conf.Log)
	if err != nil {
		return err
	}
	defer closeLog()

	// Get terminal size for the initial screen
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Clock = conf.Clock
	cfg.Seed = flagSeed

	logger.Info("starting", "clock", cfg.Clock, "seed", cfg.Seed, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	final, err := tui.Run(cfg, conf, logger)
	if err != nil {
		logger.Error("program failed", "error", err)
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("finished", "score", final.Score(), "apples", final.ApplesEaten)
	return nil
}

// loadConfig reads the configuration and applies command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	conf, err := config.Load(flagConfig)
	if err != nil {
		return conf, err
	}

	flags := cmd.Flags()
	if flags.Changed("clock") {
		conf.Clock = flagClock
	}
	if flags.Changed("log-file") {
		conf.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		conf.Log.Level = flagLogLevel
	}

	// Overrides go through the same checks as the file
	return conf, conf.Validate()
}
