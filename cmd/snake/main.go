// snake is a classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play (same as "snake play")
//	snake play               - Play a game
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible apple placement
//	--config <path>      - Use a custom config YAML
//	--clock <rate>       - Override driver frames per second (default: 1000)
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - Set log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagClock    int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer the snake, eat apples, don't bite yourself",
	Long: `Snake is the classic game on a 20x20 board in your terminal.

Every apple is worth 100 points and makes the snake longer and faster.
Running into a wall or into the snake ends the game; press any direction
to start again.

Available commands:
  play     - Play a game (default)
  config   - Print the effective configuration

Examples:
  snake
  snake play --seed 42
  snake --clock 500 --log-file snake.log --log-level debug
  snake config --default > ~/.snake/config.yaml`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagClock, "clock", 0, "Driver frames per second (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}
