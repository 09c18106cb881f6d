package game

import (
	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

// Platform is a rectangle the player bounces on. Moving platforms oscillate
// horizontally around the x they were created at.
type Platform struct {
	Rect   core.Rect
	Moving bool

	// Oscillation state, only meaningful when Moving is set.
	OriginX int // x at creation
	Dir     int // +1 right, -1 left
	Range   int // half-range in pixels
	Speed   int // pixels per frame
}

// NewPlatform creates a static platform.
func NewPlatform(x, y, w, h int) Platform {
	return Platform{Rect: core.NewRect(x, y, w, h)}
}

// NewMovingPlatform creates a platform that starts moving right from x.
func NewMovingPlatform(x, y, w, h, moveRange, speed int) Platform {
	return Platform{
		Rect:    core.NewRect(x, y, w, h),
		Moving:  true,
		OriginX: x,
		Dir:     1,
		Range:   moveRange,
		Speed:   speed,
	}
}

// Update advances the oscillation by one frame. The direction flips once the
// displacement from OriginX reaches Range; there is no easing.
func (p *Platform) Update() {
	if !p.Moving {
		return
	}
	p.Rect.X += p.Dir * p.Speed
	if core.Abs(p.Rect.X-p.OriginX) >= p.Range {
		p.Dir = -p.Dir
	}
}

// Color returns the palette color for this platform kind.
func (p Platform) Color(pal config.PaletteConfig) core.Color {
	if p.Moving {
		return pal.PlatformMoving
	}
	return pal.PlatformStatic
}
