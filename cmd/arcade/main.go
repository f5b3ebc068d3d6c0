// arcade is a terminal arcade with four vibe-coded games.
//
// Usage:
//
//	arcade list                  - List available games
//	arcade play <game>           - Play a game
//	arcade menu                  - Start menu to pick games interactively
//	arcade sim <game>            - Run a game headless with a scripted pilot
//	arcade history [game]        - Show recorded runs
//	arcade serve                 - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.arcade/runs.db)
//	--debug         - Log sound events and other debug output
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/vibe-arcade/internal/games/bricks"
	_ "github.com/vovakirdan/vibe-arcade/internal/games/chase"
	_ "github.com/vovakirdan/vibe-arcade/internal/games/mansion"
	_ "github.com/vovakirdan/vibe-arcade/internal/games/platformer"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagDebug   bool
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Vibe Arcade - four small games in your terminal",
	Long: `Vibe Arcade bundles four small real-time games that share one
terminal runtime: a haunted mansion, a car chase, a brick breaker and a
side-scrolling platformer.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  sim      - Run a game headless with a scripted pilot
  history  - Show recorded runs and statistics
  serve    - Start SSH server for remote play

Examples:
  arcade list
  arcade play mansion
  arcade play platformer --difficulty hard
  arcade sim chase --ticks 3600 --seed 42
  arcade history bricks
  arcade serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file used while a TUI owns the terminal")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

// newLogger creates the command logger writing to w.
func newLogger(w io.Writer) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// tuiLogger logs to the log file, since stderr is hidden behind the alt
// screen. The returned func closes the file.
func tuiLogger() (*log.Logger, func()) {
	if flagLogFile == "" {
		return newLogger(io.Discard), func() {}
	}

	path := flagLogFile
	if len(path) > 1 && path[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return newLogger(io.Discard), func() {}
	}
	return newLogger(f), func() { f.Close() }
}

// openStore opens the run history database. Games still work without it,
// so a failure only warns.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// createGame builds and initialises a registered game.
func createGame(gameID, configPath, difficulty string, cfg core.RuntimeConfig) (registry.Game, error) {
	if !registry.Exists(gameID) {
		return nil, fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, err
	}

	game, err := registry.Create(gameID, registry.Options{
		ConfigPath: configPath,
		Difficulty: preset,
	})
	if err != nil {
		return nil, err
	}
	if err := game.Init(cfg); err != nil {
		return nil, fmt.Errorf("init %s: %w", gameID, err)
	}
	return game, nil
}
