// mines is a terminal minesweeper.
//
// Usage:
//
//	mines play [preset]      - Play a board (easy, medium, hard or custom flags)
//	mines menu               - Pick boards interactively
//	mines presets            - List the difficulty presets
//	mines serve              - Serve games over SSH and HTTP
//
// Global flags:
//
//	--fps <rate>       - Clock refreshes per second (default: 1)
//	--seed <value>     - Mine layout seed for reproducible boards
//	--config <path>    - Presets YAML file
//	--debug            - Verbose logging
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal minesweeper with a preset picker, custom boards,
and SSH and HTTP servers for remote play.

Available commands:
  play     - Play a board directly
  menu     - Interactive board picker
  presets  - Show the difficulty presets
  serve    - Start the SSH and HTTP servers

Examples:
  mines play
  mines play hard
  mines play --rows 12 --cols 20 --mines 40
  mines menu
  mines serve --ssh :23234 --http :8080`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 1, "Clock refreshes per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Mine layout seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a presets YAML file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadPresets reads the presets from --config or the default search path.
func loadPresets() config.Presets {
	presets, err := config.LoadPresets(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return presets
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// tuiLogger returns the logger for local play. The terminal belongs to the
// game, so logs go to ~/.mines/debug.log with --debug and nowhere otherwise.
func tuiLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	path := filepath.Join(home, ".mines", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open debug log: %v\n", err)
		return log.New(io.Discard), func() {}
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "mines",
	})
	return logger, func() { f.Close() }
}

// serverLogger returns a stderr logger for one server component.
func serverLogger(prefix string) *log.Logger {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          prefix,
	})
}
