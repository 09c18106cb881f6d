package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/skyhop/internal/core"
)

func TestEmbeddedMatchesDefault(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() differ:\n yaml: %+v\n code: %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("platforms:\n  move_chance: 0\npalette:\n  player: \"#00ff00\"\ntiming:\n  game_over_delay: 500ms\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Platforms.MoveChance != 0 {
		t.Errorf("MoveChance = %v, expected 0", cfg.Platforms.MoveChance)
	}
	if cfg.Platforms.GapMax != 120 {
		t.Errorf("GapMax = %d, expected default 120", cfg.Platforms.GapMax)
	}
	if cfg.Palette.Player != core.RGB(0, 255, 0) {
		t.Errorf("Palette.Player = %v, expected #00ff00", cfg.Palette.Player)
	}
	if cfg.Timing.GameOverDelay != 500*time.Millisecond {
		t.Errorf("GameOverDelay = %v, expected 500ms", cfg.Timing.GameOverDelay)
	}
}

func TestParseRejectsBadColor(t *testing.T) {
	if _, err := Parse([]byte("palette:\n  player: \"#00ff\"\n")); err == nil {
		t.Error("Parse should reject a malformed color")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal(Default())) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"gap min above max", func(c *Config) { c.Platforms.GapMin, c.Platforms.GapMax = 130, 120 }},
		{"zero gap", func(c *Config) { c.Platforms.GapMin = 0 }},
		{"move chance above one", func(c *Config) { c.Platforms.MoveChance = 1.5 }},
		{"negative move chance", func(c *Config) { c.Platforms.MoveChance = -0.1 }},
		{"no platforms", func(c *Config) { c.Platforms.Count = 0 }},
		{"platform wider than screen", func(c *Config) { c.Platforms.Width = 500 }},
		{"base wider than screen", func(c *Config) { c.Platforms.Width = 250 }},
		{"jump weaker than gravity", func(c *Config) { c.Physics.JumpSpeed = 0.4 }},
		{"zero gravity", func(c *Config) { c.Physics.Gravity = 0 }},
		{"zero fps", func(c *Config) { c.Timing.FPS = 0 }},
		{"empty screen", func(c *Config) { c.Screen.Height = 0 }},
		{"flat player", func(c *Config) { c.Player.Height = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() error should wrap ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("platforms:\n  count: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Platforms.Count != 8 {
		t.Errorf("Count = %d, expected 8", cfg.Platforms.Count)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("platforms:\n  gap_min: 200\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() should reject gap_min > gap_max with ErrInvalid, got %v", err)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() should fail for a missing custom path")
	}
}

func TestPlayerStart(t *testing.T) {
	x, y := Default().PlayerStart()
	if x != 200 || y != 520 {
		t.Errorf("PlayerStart() = (%d, %d), expected (200, 520)", x, y)
	}
	if Default().MidY() != 300 {
		t.Errorf("MidY() = %d, expected 300", Default().MidY())
	}
}
