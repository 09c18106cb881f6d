package game

import (
	"math/rand"

	"github.com/vovakirdan/skyhop/internal/config"
)

// Generator produces platforms from the configured ranges.
// All randomness comes from the injected source, so a seeded source gives a
// reproducible sequence.
type Generator struct {
	cfg config.Config
	rng *rand.Rand
}

// NewGenerator creates a generator drawing from rng.
func NewGenerator(cfg config.Config, rng *rand.Rand) *Generator {
	return &Generator{cfg: cfg, rng: rng}
}

// NewSeededGenerator creates a generator with its own source seeded by seed.
func NewSeededGenerator(cfg config.Config, seed int64) *Generator {
	return NewGenerator(cfg, rand.New(rand.NewSource(seed)))
}

// Initial returns the starting platforms. Slot 0 is the wide static base near
// the bottom; every following slot sits a random gap above the previous one.
func (g *Generator) Initial() []Platform {
	sc := g.cfg.Screen
	pc := g.cfg.Platforms

	platforms := make([]Platform, 0, pc.Count)
	platforms = append(platforms, NewPlatform(
		sc.Width/2-pc.Width,
		sc.Height-pc.BaseOffset,
		pc.Width*2,
		pc.Height,
	))

	y := sc.Height - pc.FirstRowOffset
	for len(platforms) < pc.Count {
		p := g.above(y)
		y = p.Rect.Y
		platforms = append(platforms, p)
	}
	return platforms
}

// Recycle returns a fresh platform one random gap above the topmost of existing.
func (g *Generator) Recycle(existing []Platform) Platform {
	return g.above(Topmost(existing))
}

// above draws x, gap and the moving flag, in that order, for a platform
// placed one gap above y.
func (g *Generator) above(y int) Platform {
	pc := g.cfg.Platforms
	x := g.intBetween(0, g.cfg.Screen.Width-pc.Width)
	y -= g.intBetween(pc.GapMin, pc.GapMax)
	if g.rng.Float64() < pc.MoveChance {
		return NewMovingPlatform(x, y, pc.Width, pc.Height, pc.MoveRange, pc.MoveSpeed)
	}
	return NewPlatform(x, y, pc.Width, pc.Height)
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.Intn(hi-lo+1)
}

// Topmost returns the smallest top y among platforms.
func Topmost(platforms []Platform) int {
	top := platforms[0].Rect.Y
	for _, p := range platforms[1:] {
		if p.Rect.Y < top {
			top = p.Rect.Y
		}
	}
	return top
}
