package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/platform/tui"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  WASD/Arrows  - Move
  Space        - Flashlight / jump
  X            - Vacuum
  Enter/Tab    - Door / next level
  V            - Vibes palette (mansion)
  P            - Pause
  R            - Restart (after game over)
  B/Esc        - Leave (when paused or over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play mansion
  arcade play chase --difficulty easy
  arcade play platformer --seed 7
  arcade play bricks --config ./my-bricks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}

	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.Seed = cfg.ResolvedSeed()
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()

	cfg := terminalConfig()
	game, err := createGame(args[0], flagConfig, flagDifficulty, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore(logger)

	runErr := tui.Run(game, store, cfg, tui.GameOptions{
		Difficulty: flagDifficulty,
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
