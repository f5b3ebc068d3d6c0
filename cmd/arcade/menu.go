package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, left/right to pick the difficulty and
Enter to start a game. Leaving a game returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Select game
  Tab          - Run history
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./runs.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog := tuiLogger()
	defer closeLog()

	store := openStore(logger)
	cfg := terminalConfig()

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Picks up any size changes
		cfg = res.Config
		if res.Quit {
			break
		}

		if res.WantsHistory {
			goBack, histErr := tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
			if histErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			}
			if goBack {
				continue
			}
			break
		}

		// Fresh seed for every game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		game, err := createGame(res.GameID, flagConfig, string(res.Difficulty), cfg)
		if err != nil {
			logger.Error("could not start game", "game", res.GameID, "error", err)
			continue
		}

		if err := tui.Run(game, store, cfg, tui.GameOptions{
			Difficulty: string(res.Difficulty),
			Logger:     logger,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
