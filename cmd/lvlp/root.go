package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlp/internal/config"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvlp",
		Short: "Maximize production value under resource limits",
		Long: `lvlp solves "maximize prices·x subject to coefficients·x <= resources, x >= 0"
with the tableau simplex method. The coefficient table is a ';'-separated file
(--data) or the built-in feed dataset.

Settings come from --config (TOML, YAML or JSON), then ` + config.EnvPrefix + `_* environment
variables, then flags.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.String("config", "", "configuration file (toml, yaml or json)")
	pf.String("data", "", "coefficient table; empty selects the built-in dataset")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "text", "log format: text or json")
	pf.String("log-file", "", "write logs to this rotated file instead of stderr")

	cmd.AddCommand(
		newSolveCommand(),
		newDatasetCommand(),
	)

	return cmd
}

// loadConfig resolves the configuration for cmd from --config, the
// environment and cmd's flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	return config.Load(path, cmd.Flags())
}
