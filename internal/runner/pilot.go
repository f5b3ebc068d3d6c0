package runner

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// Pilot produces the input for each tick of a headless run.
type Pilot interface {
	Next(tick int, st core.GameState) core.InputFrame
}

// PilotFunc adapts a function to the Pilot interface.
type PilotFunc func(tick int, st core.GameState) core.InputFrame

// Next calls f.
func (f PilotFunc) Next(tick int, st core.GameState) core.InputFrame {
	return f(tick, st)
}

// Idle never presses anything.
type Idle struct{}

// Next returns an empty frame.
func (Idle) Next(int, core.GameState) core.InputFrame {
	return core.NewInputFrame()
}

var directions = [][]core.Action{
	nil,
	{core.ActionLeft},
	{core.ActionRight},
	{core.ActionUp},
	{core.ActionDown},
	{core.ActionLeft, core.ActionUp},
	{core.ActionRight, core.ActionUp},
	{core.ActionLeft, core.ActionDown},
	{core.ActionRight, core.ActionDown},
}

// Random mashes buttons. It holds a direction for a random number of ticks
// and taps the action buttons now and then. It never pauses, restarts or
// quits.
type Random struct {
	rng  *rand.Rand
	dir  []core.Action
	hold int
}

// NewRandom creates a random pilot. The same seed gives the same inputs.
func NewRandom(seed int64) *Random {
	return &Random{rng: core.NewRand(seed)}
}

// Next returns the input for the next tick.
func (r *Random) Next(int, core.GameState) core.InputFrame {
	if r.hold <= 0 {
		r.dir = directions[r.rng.Intn(len(directions))]
		r.hold = 10 + r.rng.Intn(30)
	}
	r.hold--

	in := core.FrameOf(r.dir...)
	switch n := r.rng.Intn(60); {
	case n < 6:
		in.Set(core.ActionPrimary)
	case n < 9:
		in.Set(core.ActionSecondary)
	case n < 10:
		in.Set(core.ActionConfirm)
	}
	return in
}

var pilots = map[string]func(seed int64) Pilot{
	"idle":   func(int64) Pilot { return Idle{} },
	"random": func(seed int64) Pilot { return NewRandom(seed) },
}

// NewPilot creates a pilot by name.
func NewPilot(name string, seed int64) (Pilot, error) {
	f, ok := pilots[name]
	if !ok {
		return nil, fmt.Errorf("runner: unknown pilot %q (available: %v)", name, PilotNames())
	}
	return f(seed), nil
}

// PilotNames returns the available pilot names, sorted.
func PilotNames() []string {
	names := make([]string, 0, len(pilots))
	for name := range pilots {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
