package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

//go:embed defaults/skyhop.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/skyhop.yaml
// and is used when the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  400,
			Height: 600,
			Title:  "Skyhop",
		},
		Physics: PhysicsConfig{
			Gravity:   0.5,
			JumpSpeed: 15,
		},
		Player: PlayerConfig{
			Width:       30,
			Height:      30,
			SpeedX:      5,
			StartOffset: 50,
		},
		Platforms: PlatformsConfig{
			Width:          70,
			Height:         15,
			Count:          6,
			GapMin:         50,
			GapMax:         120,
			BaseOffset:     50,
			FirstRowOffset: 100,
			MoveChance:     0.3,
			MoveRange:      50,
			MoveSpeed:      2,
		},
		Palette: PaletteConfig{
			Background:     core.RGB(20, 20, 20),
			Player:         core.RGB(255, 50, 50),
			PlatformStatic: core.RGB(0, 150, 255),
			PlatformMoving: core.RGB(150, 255, 0),
			Text:           core.RGB(255, 255, 255),
			GameOver:       core.RGB(255, 0, 0),
		},
		Timing: TimingConfig{
			FPS:           60,
			GameOverDelay: 2 * time.Second,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
