// Package config provides YAML-based game configuration loading and
// validation. Every tunable constant of the game lives here.
package config

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

// Config contains all configuration for a skyhop session.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Player    PlayerConfig    `yaml:"player"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Palette   PaletteConfig   `yaml:"palette"`
	Timing    TimingConfig    `yaml:"timing"`
}

// ScreenConfig defines the visible area in world pixels.
type ScreenConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PhysicsConfig defines per-frame kinematics.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical velocity every frame
	JumpSpeed float64 `yaml:"jump_speed"` // Upward speed given on landing
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	SpeedX      int `yaml:"speed_x"`      // Horizontal pixels per frame while a direction is held
	StartOffset int `yaml:"start_offset"` // Gap between player bottom and screen bottom at start
}

// PlatformsConfig defines platform geometry and the generator's ranges.
type PlatformsConfig struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Count          int     `yaml:"count"`            // Fixed number of platform slots
	GapMin         int     `yaml:"gap_min"`          // Minimum vertical gap between rows
	GapMax         int     `yaml:"gap_max"`          // Maximum vertical gap between rows
	BaseOffset     int     `yaml:"base_offset"`      // Base platform top, measured up from the bottom
	FirstRowOffset int     `yaml:"first_row_offset"` // Generation start, measured up from the bottom
	MoveChance     float64 `yaml:"move_chance"`      // Probability a generated platform oscillates
	MoveRange      int     `yaml:"move_range"`       // Oscillation half-range in pixels
	MoveSpeed      int     `yaml:"move_speed"`       // Oscillation pixels per frame
}

// PaletteConfig defines the fixed colors.
type PaletteConfig struct {
	Background     core.Color `yaml:"background"`
	Player         core.Color `yaml:"player"`
	PlatformStatic core.Color `yaml:"platform_static"`
	PlatformMoving core.Color `yaml:"platform_moving"`
	Text           core.Color `yaml:"text"`
	GameOver       core.Color `yaml:"game_over"`
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	FPS           int           `yaml:"fps"`
	GameOverDelay time.Duration `yaml:"game_over_delay"` // How long the summary stays up
}

// PlayerStart returns the player's initial top-left corner: horizontally at
// the screen center, resting StartOffset above the bottom.
func (c Config) PlayerStart() (int, int) {
	return c.Screen.Width / 2, c.Screen.Height - c.Player.Height - c.Player.StartOffset
}

// MidY returns the camera pin line.
func (c Config) MidY() int {
	return c.Screen.Height / 2
}
