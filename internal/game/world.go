// Package game implements skyhop: a vertical platform jumper where the player
// bounces automatically, the camera follows upward and the score is the
// highest point reached.
//
// The package holds pure game logic. Frontends supply drawing, input and
// pacing through the core.Renderer, core.InputSource and core.Clock
// interfaces.
package game

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// State is the session state machine.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Status is a summary of the session after a step.
type Status struct {
	State   State
	Score   int // Highest scroll total observed
	Scroll  int // Current scroll total
	Frame   int // Steps taken while running
	Bounces int // Landings so far
}

// World owns the player and a fixed number of platform slots.
type World struct {
	cfg       config.Config
	gen       *Generator
	player    *Player
	platforms []Platform
	scroll    int
	score     int
	state     State
	frame     int
	bounces   int
}

// NewWorld creates a running world with the player at its start position and
// the generator's initial platforms.
func NewWorld(cfg config.Config, gen *Generator) *World {
	return &World{
		cfg:       cfg,
		gen:       gen,
		player:    NewPlayer(cfg),
		platforms: gen.Initial(),
		state:     StateRunning,
	}
}

// Step advances the world by one frame. It does nothing once the game is over.
func (w *World) Step(in core.InputFrame) Status {
	if w.state != StateRunning {
		return w.Status()
	}
	w.frame++

	if w.player.Update(w.platforms, in) >= 0 {
		w.bounces++
	}

	for i := range w.platforms {
		w.platforms[i].Update()
	}

	w.followPlayer()

	if w.scroll > w.score {
		w.score = w.scroll
	}

	if w.player.Rect.Y > w.cfg.Screen.Height {
		w.state = StateGameOver
	}

	w.recycle()

	return w.Status()
}

// followPlayer shifts everything down when the player climbs above the
// middle of the screen, pinning the player to the middle line.
func (w *World) followPlayer() {
	mid := w.cfg.MidY()
	if w.player.Rect.Y >= mid {
		return
	}
	shift := mid - w.player.Rect.Y
	w.player.Rect.Y += shift
	for i := range w.platforms {
		w.platforms[i].Rect.Y += shift
	}
	w.scroll += shift
}

// recycle replaces platforms that scrolled past the bottom, in slot order.
// Each replacement is placed above the topmost platform at that moment, so a
// slot replaced later in the same pass stacks above one replaced earlier.
func (w *World) recycle() {
	for i := range w.platforms {
		if w.platforms[i].Rect.Y > w.cfg.Screen.Height {
			w.platforms[i] = w.gen.Recycle(w.platforms)
		}
	}
}

// Status returns the current session summary.
func (w *World) Status() Status {
	return Status{
		State:   w.state,
		Score:   w.score,
		Scroll:  w.scroll,
		Frame:   w.frame,
		Bounces: w.bounces,
	}
}

// State returns the current state.
func (w *World) State() State {
	return w.state
}

// Score returns the highest scroll total observed.
func (w *World) Score() int {
	return w.score
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return *w.player
}

// Platforms returns a copy of the platform slots.
func (w *World) Platforms() []Platform {
	out := make([]Platform, len(w.platforms))
	copy(out, w.platforms)
	return out
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}
