package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryClear bool
	flagHistoryRun   string
)

var historyCmd = &cobra.Command{
	Use:   "history [game]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs and per-game statistics. Without a game
the runs of every game are listed.

Examples:
  arcade history
  arcade history mansion --limit 5
  arcade history chase --clear
  arcade history --run <id>`,
	Args: cobra.MaximumNArgs(1),
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to show")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the recorded runs instead of showing them")
	historyCmd.Flags().StringVar(&flagHistoryRun, "run", "", "Show one run by its ID (as printed by 'arcade sim')")
}

func runHistory(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) > 0 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening run database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryRun != "" {
		if err := printRun(os.Stdout, store, flagHistoryRun); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flagHistoryClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.RecentRuns(gameID, flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	printRuns(runs)
	fmt.Println()

	if gameID != "" {
		st, err := store.Stats(gameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
			os.Exit(1)
		}
		printStats(map[string]*storage.RunStats{gameID: st})
		return
	}

	all, err := store.AllStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}
	printStats(all)
}

func printRuns(runs []storage.RunRecord) {
	fmt.Printf("  %-10s  %-14s  %8s  %7s  %-6s  %s\n", "Game", "Outcome", "Progress", "Ticks", "Level", "Date")
	fmt.Printf("  %-10s  %-14s  %8s  %7s  %-6s  %s\n", "----", "-------", "--------", "-----", "-----", "----")
	for _, r := range runs {
		level := r.Difficulty
		if level == "" {
			level = "-"
		}
		fmt.Printf("  %-10s  %-14s  %8d  %7d  %-6s  %s\n",
			r.GameID, r.Outcome, r.Progress, r.Ticks, level, r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func printStats(stats map[string]*storage.RunStats) {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	fmt.Printf("  %-10s  %5s  %5s  %5s  %7s\n", "Game", "Runs", "Wins", "Best", "Avg")
	for _, id := range ids {
		st := stats[id]
		fmt.Printf("  %-10s  %5d  %5d  %5d  %7.1f\n", id, st.Runs, st.Wins, st.BestProgress, st.AvgProgress)
	}
}

// printRun writes the details of one recorded run.
func printRun(w io.Writer, store *storage.Store, id string) error {
	r, err := store.RunByID(id)
	if err != nil {
		return err
	}
	if r == nil {
		return fmt.Errorf("no run with ID %q", id)
	}

	level := r.Difficulty
	if level == "" {
		level = "-"
	}
	fmt.Fprintf(w, "Run:      %s\n", r.ID)
	fmt.Fprintf(w, "Game:     %s\n", r.GameID)
	fmt.Fprintf(w, "Outcome:  %s\n", r.Outcome)
	fmt.Fprintf(w, "Progress: %d\n", r.Progress)
	fmt.Fprintf(w, "Ticks:    %d\n", r.Ticks)
	fmt.Fprintf(w, "Seed:     %d\n", r.Seed)
	fmt.Fprintf(w, "Level:    %s\n", level)
	fmt.Fprintf(w, "Date:     %s\n", r.CreatedAt.Format("2006-01-02 15:04"))
	return nil
}
