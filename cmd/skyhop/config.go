package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the configuration as YAML",
	Long: `Print the configuration skyhop would run with, as YAML.

Config files are searched in this order:
  1. --config <path>
  2. ~/.skyhop/skyhop.yaml
  3. ./configs/skyhop.yaml
  4. built-in defaults

Examples:
  skyhop config
  skyhop config --defaults > ~/.skyhop/skyhop.yaml
  skyhop config --config ./my-skyhop.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}

	cmd.PrintErrf("# source: %s\n", source)
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
