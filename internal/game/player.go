package game

import (
	"math"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Player is the bouncing sprite. Its size never changes during a session.
type Player struct {
	Rect core.Rect
	VelY float64 // pixels per frame, positive is down

	physics config.PhysicsConfig
	speedX  int
	screenW int
}

// NewPlayer places a player at its configured start position with no velocity.
func NewPlayer(cfg config.Config) *Player {
	x, y := cfg.PlayerStart()
	return &Player{
		Rect:    core.NewRect(x, y, cfg.Player.Width, cfg.Player.Height),
		physics: cfg.Physics,
		speedX:  cfg.Player.SpeedX,
		screenW: cfg.Screen.Width,
	}
}

// Update applies gravity, horizontal input with wrap-around, and landing.
// It returns the slot index of the platform landed on, or -1.
//
// Landing is only checked while falling. Platforms are tested in slot order
// and the first one that overlaps the player with its bottom at or below the
// player's bottom wins: the player is put on top of it and bounced up.
func (p *Player) Update(platforms []Platform, in core.InputFrame) int {
	p.VelY += p.physics.Gravity
	p.Rect.Y += int(math.Round(p.VelY))

	if in.Has(core.ActionLeft) {
		p.Rect.X -= p.speedX
	}
	if in.Has(core.ActionRight) {
		p.Rect.X += p.speedX
	}

	// Wrap around horizontally
	if p.Rect.Right() < 0 {
		p.Rect.X = p.screenW
	} else if p.Rect.X > p.screenW {
		p.Rect.SetRight(0)
	}

	if p.VelY <= 0 {
		return -1
	}
	for i, pl := range platforms {
		if p.Rect.Intersects(pl.Rect) && p.Rect.Bottom() <= pl.Rect.Bottom() {
			p.Rect.SetBottom(pl.Rect.Y)
			p.VelY = -p.physics.JumpSpeed
			return i
		}
	}
	return -1
}
