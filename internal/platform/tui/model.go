package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/game"
)

// Options configure a terminal session.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// Cols and Rows are the initial terminal size, used until the first
	// resize message. Zero picks a scale of 10 pixels per column.
	Cols int
	Rows int

	// ScreenshotDir is where ctrl+s writes the current frame.
	// Empty means ~/.skyhop/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a skyhop session.
type Model struct {
	loop          *game.Loop
	input         *KeyInput
	renderer      *CellRenderer
	keys          KeyMap
	help          help.Model
	logger        *log.Logger
	tickRate      int
	summaryTicks  int // Ticks left before exit once the game is over
	screenshotDir string
	quitting      bool
}

// NewModel creates a model running a fresh world.
func NewModel(opts Options) Model {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	seed := opts.Runtime.ResolveSeed()
	world := game.NewWorld(cfg, game.NewSeededGenerator(cfg, seed))

	renderer := NewCellRenderer(cfg.Screen.Width, cfg.Screen.Height, 10)
	if opts.Cols > 0 && opts.Rows > 0 {
		renderer.Fit(opts.Cols, opts.Rows-helpRows)
	}

	keys := DefaultKeyMap()
	input := NewKeyInput(keys, DefaultHoldTicks)

	loop := game.NewLoop(world, game.LoopOptions{
		Renderer: renderer,
		Input:    input,
		Logger:   logger,
		TickRate: opts.Runtime.TickRate,
	})
	tickRate := loop.TickRate()

	logger.Debug("session created", "seed", seed, "tick_rate", tickRate)

	return Model{
		loop:          loop,
		input:         input,
		renderer:      renderer,
		keys:          keys,
		help:          help.New(),
		logger:        logger,
		tickRate:      tickRate,
		summaryTicks:  game.FramesIn(cfg.Timing.GameOverDelay, tickRate),
		screenshotDir: opts.ScreenshotDir,
	}
}

// Lines reserved below the playfield.
const helpRows = 1

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Screenshot) {
			if path, err := m.saveScreenshot(); err != nil {
				m.logger.Warn("screenshot failed", "error", err)
			} else {
				m.logger.Info("screenshot saved", "path", path)
			}
			return m, nil
		}
		m.input.HandleKey(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.renderer.Fit(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleTick advances the game by one frame. After game over the summary
// stays up for the configured delay before the program exits.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Outcome() == game.OutcomeGameOver {
		m.summaryTicks--
		if m.summaryTicks <= 0 {
			m.quitting = true
			return m, tea.Quit
		}
		return m, tickCmd(m.tickRate)
	}

	if m.loop.Advance() == game.OutcomeQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() (string, error) {
	m.loop.Render()

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".skyhop", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("skyhop_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.renderer.Screen().String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// Result returns the outcome and score of the session so far.
func (m Model) Result() game.Result {
	st := m.loop.World().Status()
	return game.Result{Outcome: m.loop.Outcome(), Score: st.Score, Frames: st.Frame}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.loop.Render()

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.renderer.Screen()))
	sb.WriteRune('\n')
	sb.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	return sb.String()
}

// Run starts the Bubble Tea program and blocks until the session ends.
func Run(opts Options) (game.Result, error) {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return game.Result{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return game.Result{}, fmt.Errorf("tui: unexpected model %T", final)
	}
	return m.Result(), nil
}
