// Package window runs skyhop in a desktop window with ebiten, drawing at
// the world's native pixel resolution.
package window

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/game"
)

// Options configure a window session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Game adapts a game.Loop to ebiten.Game.
type Game struct {
	loop         *game.Loop
	renderer     *Renderer
	width        int
	height       int
	summaryTicks int // Updates left before exit once the game is over
}

// NewGame builds a fresh world fed by input and drawn by renderer.
func NewGame(opts Options, input core.InputSource, renderer *Renderer) *Game {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.ResolveSeed()
	logger.Debug("window session created", "seed", seed)

	world := game.NewWorld(cfg, game.NewSeededGenerator(cfg, seed))
	loop := game.NewLoop(world, game.LoopOptions{
		Renderer: renderer,
		Input:    input,
		Logger:   logger,
		TickRate: opts.Runtime.TickRate,
	})
	return &Game{
		loop:         loop,
		renderer:     renderer,
		width:        cfg.Screen.Width,
		height:       cfg.Screen.Height,
		summaryTicks: game.FramesIn(cfg.Timing.GameOverDelay, loop.TickRate()),
	}
}

// TickRate returns the updates per second the game expects.
func (g *Game) TickRate() int {
	return g.loop.TickRate()
}

// Update advances one frame. It returns ebiten.Termination on quit, or once
// the game-over summary has been shown for the configured delay.
func (g *Game) Update() error {
	if g.loop.Outcome() == game.OutcomeGameOver {
		g.summaryTicks--
		if g.summaryTicks <= 0 {
			return ebiten.Termination
		}
		return nil
	}

	if g.loop.Advance() == game.OutcomeQuit {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current frame onto screen.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.renderer == nil {
		return
	}
	g.renderer.SetTarget(screen)
	g.loop.Render()
}

// Layout keeps the logical screen at the world size; ebiten scales it to the window.
func (g *Game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Result returns the outcome and score of the session so far.
func (g *Game) Result() game.Result {
	st := g.loop.World().Status()
	return game.Result{Outcome: g.loop.Outcome(), Score: st.Score, Frames: st.Frame}
}

// Run opens the window and blocks until the session ends.
func Run(opts Options) (game.Result, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return game.Result{}, err
	}

	cfg := opts.Config
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	g := NewGame(opts, Keyboard{}, renderer)
	ebiten.SetTPS(g.TickRate())
	if err := ebiten.RunGame(g); err != nil {
		return g.Result(), fmt.Errorf("window: %w", err)
	}
	return g.Result(), nil
}
