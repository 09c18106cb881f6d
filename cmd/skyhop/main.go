// skyhop is a vertical platform jumper: the player bounces off platforms
// automatically, the camera follows upward and the score is the highest
// point reached.
//
// Usage:
//
//	skyhop play     - Play in the terminal
//	skyhop window   - Play in a desktop window
//	skyhop serve    - Start SSH server for remote play
//	skyhop sim      - Run a headless session and print the last frame
//	skyhop config   - Print the game configuration as YAML
//
// Global flags:
//
//	--fps <rate>       - Override the tick rate from the config
//	--seed <value>     - Set RNG seed for a reproducible platform layout
//	--config <path>    - Load a custom config YAML
//	--debug            - Enable debug logging
//	--log-file <path>  - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyhop",
	Short: "Skyhop - bounce your way up, endlessly",
	Long: `Skyhop is a minimal vertical platform jumper. The player bounces off
platforms on its own; steer left and right to land on the next one. The
screen wraps horizontally and the score is the highest point reached.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  sim      - Run a headless session
  config   - Print the configuration

Examples:
  skyhop play
  skyhop window --seed 42
  skyhop serve --ssh :2222
  skyhop sim --frames 600 --steer right
  skyhop config > my-skyhop.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use the config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns the process logger. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyhop",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// loadConfig resolves the game configuration and logs where it came from.
func loadConfig(logger *log.Logger) (config.Config, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	logger.Debug("config loaded", "source", source)
	return cfg, nil
}

// runtimeConfig builds the per-session settings from the global flags.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rc := core.RuntimeConfig{TickRate: cfg.Timing.FPS, Seed: flagSeed}
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	return rc
}
