package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/game"
	"github.com/vovakirdan/skyhop/internal/platform/tui"
)

var (
	flagSimFrames int
	flagSimScale  int
	flagSimSteer  string
	flagSimQuiet  bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a display or real-time pacing, then print the
last frame as text and the result.

The player holds one steering direction for the whole run:
  none   - never steer (default)
  left   - hold left
  right  - hold right

The session ends at game over or after --frames steps.

Examples:
  skyhop sim
  skyhop sim --seed 7 --frames 1200 --steer right
  skyhop sim --quiet --scale 5`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimFrames, "frames", 600, "Maximum number of steps")
	simCmd.Flags().IntVar(&flagSimScale, "scale", 10, "World pixels per output column")
	simCmd.Flags().StringVar(&flagSimSteer, "steer", "none", "Held direction: none, left, right")
	simCmd.Flags().BoolVar(&flagSimQuiet, "quiet", false, "Only print the result line")
}

// steadyInput holds one direction and requests termination after limit polls.
type steadyInput struct {
	steer core.Action
	limit int
	polls int
}

func (s *steadyInput) Poll() core.InputFrame {
	s.polls++
	in := core.NewInputFrame()
	if s.polls > s.limit {
		in.Set(core.ActionQuit)
		return in
	}
	if s.steer != core.ActionNone {
		in.Set(s.steer)
	}
	return in
}

func parseSteer(s string) (core.Action, error) {
	switch s {
	case "none", "":
		return core.ActionNone, nil
	case "left":
		return core.ActionLeft, nil
	case "right":
		return core.ActionRight, nil
	default:
		return core.ActionNone, fmt.Errorf("unknown steer %q (expected none, left or right)", s)
	}
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	steer, err := parseSteer(flagSimSteer)
	if err != nil {
		return err
	}
	if flagSimFrames < 1 {
		return fmt.Errorf("--frames must be positive, got %d", flagSimFrames)
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	rc := runtimeConfig(cfg)
	seed := rc.ResolveSeed()
	renderer := tui.NewCellRenderer(cfg.Screen.Width, cfg.Screen.Height, flagSimScale)
	loop := game.NewLoop(
		game.NewWorld(cfg, game.NewSeededGenerator(cfg, seed)),
		game.LoopOptions{
			Renderer: renderer,
			Input:    &steadyInput{steer: steer, limit: flagSimFrames},
			Clock:    game.InstantClock{},
			TickRate: rc.TickRate,
			Logger:   logger,
		},
	)

	logger.Debug("simulating", "seed", seed, "frames", flagSimFrames, "steer", steer)
	res, err := loop.Run(context.Background())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !flagSimQuiet {
		fmt.Fprintln(out, renderer.Screen().String())
	}
	st := loop.World().Status()
	fmt.Fprintf(out, "outcome=%s score=%d frames=%d bounces=%d seed=%d\n",
		res.Outcome, res.Score, res.Frames, st.Bounces, seed)
	return nil
}
