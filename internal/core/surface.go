package core

import "time"

// Align controls horizontal placement of text relative to its anchor point.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge of the text
	AlignCenter              // x is the horizontal center of the text
)

// Renderer is the drawing surface a frontend provides to the game.
// Coordinates are world pixels; the frontend decides how they map to its
// output (terminal cells, window pixels).
type Renderer interface {
	// Clear fills the whole surface with a color.
	Clear(c Color)
	// DrawRect fills a rectangle.
	DrawRect(r Rect, c Color)
	// DrawText draws a single line of text whose top is at y.
	DrawText(text string, x, y int, align Align, c Color)
	// Present makes the frame visible.
	Present()
}

// InputSource reports the player's input for the next tick.
type InputSource interface {
	Poll() InputFrame
}

// Clock paces the frame loop.
type Clock interface {
	// Tick blocks until the next frame is due at the given rate.
	Tick(fps int)
	// Sleep blocks for a fixed duration.
	Sleep(d time.Duration)
}

// RuntimeConfig contains per-session settings chosen by the frontend.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means pick one from the current time
}

// ResolveSeed returns the configured seed, or a time-based one when unset.
func (c RuntimeConfig) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
