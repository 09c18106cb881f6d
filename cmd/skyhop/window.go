package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a window at the world's native resolution and play there.

Controls:
  Left/A, Right/D  - Steer
  Esc/Q            - Quit

Examples:
  skyhop window
  skyhop window --seed 42 --debug`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	res, err := window.Run(window.Options{
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Logger:  logger,
	})
	if err != nil {
		return err
	}

	logger.Info("session finished", "outcome", res.Outcome, "score", res.Score, "frames", res.Frames)
	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d\n", res.Score)
	return nil
}
