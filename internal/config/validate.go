package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Validate rejects parameter combinations the game cannot run with.
// It is meant to be called once at startup.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Screen.Width > 0 && c.Screen.Height > 0,
		"screen size %dx%d must be positive", c.Screen.Width, c.Screen.Height)

	check(c.Physics.Gravity > 0, "physics.gravity %v must be positive", c.Physics.Gravity)
	check(c.Physics.JumpSpeed > c.Physics.Gravity,
		"physics.jump_speed %v must exceed gravity %v", c.Physics.JumpSpeed, c.Physics.Gravity)

	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size %dx%d must be positive", c.Player.Width, c.Player.Height)
	check(c.Player.SpeedX >= 0, "player.speed_x %d must not be negative", c.Player.SpeedX)

	p := c.Platforms
	check(p.Width > 0 && p.Height > 0, "platform size %dx%d must be positive", p.Width, p.Height)
	check(p.Width <= c.Screen.Width,
		"platforms.width %d must fit the screen width %d", p.Width, c.Screen.Width)
	check(2*p.Width <= c.Screen.Width,
		"base platform width %d must fit the screen width %d", 2*p.Width, c.Screen.Width)
	check(p.Count >= 1, "platforms.count %d must be at least 1", p.Count)
	check(p.GapMin > 0, "platforms.gap_min %d must be positive", p.GapMin)
	check(p.GapMin <= p.GapMax, "platforms.gap_min %d must not exceed gap_max %d", p.GapMin, p.GapMax)
	check(p.MoveChance >= 0 && p.MoveChance <= 1,
		"platforms.move_chance %v must be within [0, 1]", p.MoveChance)
	check(p.MoveRange >= 0, "platforms.move_range %d must not be negative", p.MoveRange)
	check(p.MoveSpeed >= 0, "platforms.move_speed %d must not be negative", p.MoveSpeed)

	check(c.Timing.FPS > 0, "timing.fps %d must be positive", c.Timing.FPS)
	check(c.Timing.GameOverDelay >= 0, "timing.game_over_delay %v must not be negative", c.Timing.GameOverDelay)

	return errors.Join(errs...)
}
