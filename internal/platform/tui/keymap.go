package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyhop/internal/core"
)

// DefaultHoldTicks is how long a direction stays pressed after its last key
// event. Terminals report key repeats but never key releases, so a held key
// is emulated by keeping it active until repeats stop arriving.
const DefaultHoldTicks = 12

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// ShortHelp returns bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Quit}
}

// FullHelp returns bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Quit, k.Screenshot},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// KeyInput turns Bubble Tea key messages into per-tick input frames.
// It implements core.InputSource.
type KeyInput struct {
	keys  KeyMap
	hold  int
	left  int // Ticks left before Left is released
	right int // Ticks left before Right is released
	quit  bool
}

// NewKeyInput creates an input source that keeps a direction held for
// holdTicks ticks after each key event.
func NewKeyInput(keys KeyMap, holdTicks int) *KeyInput {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &KeyInput{keys: keys, hold: holdTicks}
}

// HandleKey records a key press. It reports whether the key belongs to the game.
func (k *KeyInput) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, k.keys.Quit):
		k.quit = true
	case key.Matches(msg, k.keys.Left):
		k.left = k.hold
		k.right = 0
	case key.Matches(msg, k.keys.Right):
		k.right = k.hold
		k.left = 0
	default:
		return false
	}
	return true
}

// Poll returns the input for the next tick and ages held directions.
// A quit request is reported once.
func (k *KeyInput) Poll() core.InputFrame {
	in := core.NewInputFrame()
	if k.quit {
		in.Set(core.ActionQuit)
		k.quit = false
	}
	if k.left > 0 {
		in.Set(core.ActionLeft)
		k.left--
	}
	if k.right > 0 {
		in.Set(core.ActionRight)
		k.right--
	}
	return in
}
