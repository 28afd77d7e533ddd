package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The configuration is searched in this order:
  --config <path>
  ~/.snake/config.yaml
  ./configs/snake.yaml
  built-in defaults

Examples:
  snake config
  snake config --default > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagDefault {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	conf, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(conf)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
