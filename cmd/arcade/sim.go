package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/runner"
)

var (
	flagTicks    int
	flagPilot    string
	flagContinue bool
	flagNoSave   bool
	flagSimW     int
	flagSimH     int
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with a scripted pilot",
	Long: `Run a game without a terminal UI. A pilot presses the keys, the run
ends at game over, level complete or after --ticks, and it is recorded in
the run history like a played one.

Pilots: ` + strings.Join(runner.PilotNames(), ", ") + `

Examples:
  arcade sim chase
  arcade sim mansion --ticks 7200 --seed 42
  arcade sim platformer --continue --pilot random
  arcade sim bricks --pilot idle --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Stop after this many ticks (0 = until the game ends)")
	simCmd.Flags().StringVar(&flagPilot, "pilot", "random", "Pilot that supplies the input")
	simCmd.Flags().BoolVar(&flagContinue, "continue", false, "Move on to the next level after a level is complete")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
	defaults := core.DefaultConfig()
	simCmd.Flags().IntVar(&flagSimW, "width", defaults.ScreenW, "Screen width")
	simCmd.Flags().IntVar(&flagSimH, "height", defaults.ScreenH, "Screen height")
}

func runSim(_ *cobra.Command, args []string) {
	logger := newLogger(os.Stderr)

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimW,
		ScreenH:  flagSimH,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	cfg.Seed = cfg.ResolvedSeed()

	game, err := createGame(args[0], flagConfig, flagDifficulty, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pilot, err := runner.NewPilot(flagPilot, cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A nil *storage.Store must not end up in the interface
	var store runner.RunStore
	if !flagNoSave {
		if s := openStore(logger); s != nil {
			defer s.Close()
			store = s
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sum, err := runner.Run(ctx, game, pilot, store, runner.Options{
		MaxTicks:   flagTicks,
		Seed:       cfg.Seed,
		Difficulty: flagDifficulty,
		Continue:   flagContinue,
		Logger:     logger,
	})

	printSummary(sum, cfg)

	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(sum runner.Summary, cfg core.RuntimeConfig) {
	fmt.Printf("Game:     %s\n", sum.GameID)
	fmt.Printf("Outcome:  %s\n", sum.Outcome())
	fmt.Printf("Progress: %d\n", sum.Progress)
	fmt.Printf("Health:   %d\n", sum.Health)
	fmt.Printf("Ticks:    %d (%.1fs)\n", sum.Ticks, float64(sum.Ticks)/float64(cfg.TickRate))
	fmt.Printf("Seed:     %d\n", cfg.Seed)
	if sum.RunID != "" {
		fmt.Printf("Run:      %s\n", sum.RunID)
	}

	if len(sum.Sounds) == 0 {
		return
	}

	sounds := make([]core.Sound, 0, len(sum.Sounds))
	for s := range sum.Sounds {
		sounds = append(sounds, s)
	}
	slices.Sort(sounds)

	fmt.Println()
	fmt.Println("Sounds:")
	for _, s := range sounds {
		fmt.Printf("  %-12s %d\n", s, sum.Sounds[s])
	}
}
