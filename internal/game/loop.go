package game

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Outcome tells the frontend what to do after a frame.
type Outcome int

const (
	OutcomeContinue Outcome = iota // keep running
	OutcomeGameOver                // player fell off; show the summary, then exit
	OutcomeQuit                    // termination requested; exit now, no summary
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "Continue"
	case OutcomeGameOver:
		return "GameOver"
	case OutcomeQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// ErrNoClock is returned by Run when the loop was built without a clock.
var ErrNoClock = errors.New("game: loop has no clock")

// LoopOptions are the external collaborators of a Loop.
// Clock and TickRate are only used by Run; frontends that pace frames
// themselves can leave them unset. A zero TickRate uses the world's
// configured FPS.
type LoopOptions struct {
	Renderer core.Renderer
	Input    core.InputSource
	Clock    core.Clock
	Logger   *log.Logger
	TickRate int
}

// Result summarizes a finished session.
type Result struct {
	Outcome Outcome
	Score   int
	Frames  int
}

// Loop drives a World: it samples input, steps the simulation and renders.
type Loop struct {
	world    *World
	renderer core.Renderer
	input    core.InputSource
	clock    core.Clock
	logger   *log.Logger
	tickRate int
	outcome  Outcome
}

// NewLoop wires a world to its collaborators.
func NewLoop(world *World, opts LoopOptions) *Loop {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	tickRate := opts.TickRate
	if tickRate <= 0 {
		tickRate = world.Config().Timing.FPS
	}
	return &Loop{
		world:    world,
		renderer: opts.Renderer,
		input:    opts.Input,
		clock:    opts.Clock,
		logger:   logger,
		tickRate: tickRate,
	}
}

// TickRate returns the frame rate Run paces at.
func (l *Loop) TickRate() int {
	return l.tickRate
}

// World returns the driven world.
func (l *Loop) World() *World {
	return l.world
}

// Outcome returns the latest frame outcome.
func (l *Loop) Outcome() Outcome {
	return l.outcome
}

// Advance polls input and steps the world once, without rendering.
// A termination request ends the session before the world is stepped.
// Once the session has ended every call returns the same outcome.
func (l *Loop) Advance() Outcome {
	if l.outcome != OutcomeContinue {
		return l.outcome
	}

	in := l.input.Poll()
	if in.Has(core.ActionQuit) {
		l.outcome = OutcomeQuit
		l.logger.Info("quit requested", "score", l.world.Score(), "frame", l.world.Status().Frame)
		return l.outcome
	}

	st := l.world.Step(in)
	if st.State == StateGameOver {
		l.outcome = OutcomeGameOver
		l.logger.Info("game over", "score", st.Score, "frame", st.Frame, "bounces", st.Bounces)
	}
	return l.outcome
}

// Render draws the current frame: the playfield while running, the summary
// after game over. Nothing is drawn after a quit.
func (l *Loop) Render() {
	switch l.outcome {
	case OutcomeQuit:
		return
	case OutcomeGameOver:
		l.world.DrawGameOver(l.renderer)
	default:
		l.world.Draw(l.renderer)
	}
	l.renderer.Present()
}

// Frame advances and renders one frame.
func (l *Loop) Frame() Outcome {
	out := l.Advance()
	l.Render()
	return out
}

// Run paces frames with the clock until the session ends. After game over the
// summary stays up for the configured delay. A quit request or a cancelled
// context returns immediately without showing the summary.
func (l *Loop) Run(ctx context.Context) (Result, error) {
	if l.clock == nil {
		return Result{}, ErrNoClock
	}
	delay := l.world.Config().Timing.GameOverDelay

	for {
		if ctx.Err() != nil {
			l.outcome = OutcomeQuit
			l.logger.Debug("context cancelled", "error", ctx.Err())
			return l.result(), nil
		}

		l.clock.Tick(l.tickRate)

		switch l.Frame() {
		case OutcomeQuit:
			return l.result(), nil
		case OutcomeGameOver:
			l.clock.Sleep(delay)
			return l.result(), nil
		}
	}
}

func (l *Loop) result() Result {
	st := l.world.Status()
	return Result{Outcome: l.outcome, Score: st.Score, Frames: st.Frame}
}
