// Package runner drives games without a terminal. A pilot supplies the input
// for every tick and the finished run is written to a RunStore.
package runner

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/storage"
)

//go:generate mockgen -destination=mock/mock_run_store.go -package=runnermock github.com/vovakirdan/vibe-arcade/internal/runner RunStore

// RunStore persists finished runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(rec storage.RunRecord) (string, error)
}

// Options configure a headless run.
type Options struct {
	MaxTicks   int    // Stop after this many ticks; 0 runs until the game ends
	Seed       int64  // Recorded with the run
	Difficulty string // Recorded with the run
	Continue   bool   // Confirm through LevelComplete until the game stays complete
	Logger     *log.Logger
}

// Summary describes a finished run.
type Summary struct {
	RunID    string
	GameID   string
	Status   core.Status
	Aborted  bool
	Progress int
	Health   int
	Ticks    int
	Sounds   map[core.Sound]int
}

// Outcome is the string stored for the run.
func (s Summary) Outcome() string {
	if s.Aborted {
		return storage.OutcomeAborted
	}
	return s.Status.String()
}

// Run steps an initialised game until it reaches a terminal status, the tick
// limit runs out or ctx is cancelled. Cancellation is checked between ticks;
// the partial run is still recorded and ctx.Err() is returned with it.
// A nil store skips recording.
func Run(ctx context.Context, game registry.Game, pilot Pilot, store RunStore, opts Options) (Summary, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	sum := Summary{
		GameID: game.ID(),
		Sounds: make(map[core.Sound]int),
	}
	st := game.State()
	confirming := false

	var runErr error
	for opts.MaxTicks <= 0 || sum.Ticks < opts.MaxTicks {
		if err := ctx.Err(); err != nil {
			sum.Aborted = true
			runErr = err
			break
		}

		var in core.InputFrame
		if confirming {
			in = core.FrameOf(core.ActionConfirm)
		} else {
			in = pilot.Next(sum.Ticks, st)
		}

		res := game.Step(in)
		sum.Ticks++
		st = res.State
		for _, ev := range res.Events {
			sum.Sounds[ev]++
			logger.Debug("sound", "game", sum.GameID, "tick", sum.Ticks, "event", ev)
		}

		if !st.Status.Terminal() {
			confirming = false
			continue
		}
		if opts.Continue && st.Status == core.StatusLevelComplete && !confirming {
			confirming = true
			continue
		}
		break
	}

	sum.Status = st.Status
	sum.Progress = st.Progress
	sum.Health = st.Health

	logger.Info("run finished",
		"game", sum.GameID,
		"outcome", sum.Outcome(),
		"progress", sum.Progress,
		"ticks", sum.Ticks,
	)

	if store == nil {
		return sum, runErr
	}

	id, err := store.SaveRun(storage.RunRecord{
		GameID:     sum.GameID,
		Outcome:    sum.Outcome(),
		Progress:   sum.Progress,
		Ticks:      sum.Ticks,
		Seed:       opts.Seed,
		Difficulty: opts.Difficulty,
	})
	if err != nil {
		return sum, fmt.Errorf("runner: save run: %w", err)
	}
	sum.RunID = id

	return sum, runErr
}
