package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The playfield is scaled down to fit the
terminal window.

Controls:
  Left/A, Right/D  - Steer
  Q/Esc/Ctrl+C     - Quit
  Ctrl+S           - Save a screenshot to ~/.skyhop/screenshots

Logs are only written when --log-file is set.

Examples:
  skyhop play
  skyhop play --seed 42
  skyhop play --config ./my-skyhop.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// stderr would draw over the alternate screen
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	cols, rows := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}

	res, err := tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtimeConfig(cfg),
		Logger:  logger,
		Cols:    cols,
		Rows:    rows,
	})
	if err != nil {
		return err
	}

	logger.Info("session finished", "outcome", res.Outcome, "score", res.Score, "frames", res.Frames)
	fmt.Fprintf(cmd.OutOrStdout(), "Score: %d\n", res.Score)
	return nil
}
