package chase

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

func newTestGame(t *testing.T, cfg config.ChaseConfig, seed int64) *Game {
	t.Helper()
	g := New(cfg)
	if err := g.Init(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return g
}

// parkedCar returns a motionless car on top of the player.
func parkedCar(g *Game) *sim.Actor {
	return sim.NewPatroller(g.player.X, g.player.Y, 32, 24, 0, core.V(1, 0), g.arena())
}

// parkedCop returns a motionless police car on top of the player.
func parkedCop(g *Game) *sim.Actor {
	cop := sim.NewChaser(0, 0, 36, 28, 0, 0)
	cop.X, cop.Y = g.player.X, g.player.Y
	return cop
}

func TestInitialState(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)

	if len(g.cars) != 8 {
		t.Errorf("expected 8 cars, got %d", len(g.cars))
	}
	for i, car := range g.cars {
		if car.X < 60 || car.X > 840 || car.Y < 60 || car.Y > 540 {
			t.Errorf("car %d placed outside the spawn area: (%v, %v)", i, car.X, car.Y)
		}
		if d := car.Patrol.Dir; d.Len() != 1 || (d.X != 0 && d.Y != 0) {
			t.Errorf("car %d direction %+v is not cardinal", i, d)
		}
	}
	if g.player.X != 450 || g.player.Y != 300 {
		t.Errorf("player should start at (450, 300), got (%v, %v)", g.player.X, g.player.Y)
	}
	if st := g.State(); st.Health != 100 || st.Status != core.StatusInRoom {
		t.Errorf("unexpected initial state %+v", st)
	}
}

func TestPlayerMovementClamps(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = nil

	g.Step(core.FrameOf(core.ActionRight, core.ActionUp))
	if g.player.X != 456 || g.player.Y != 294 {
		t.Errorf("player should move 6px per axis, got (%v, %v)", g.player.X, g.player.Y)
	}

	for range 200 {
		g.Step(core.FrameOf(core.ActionLeft, core.ActionDown))
	}
	if g.player.X != 0 || g.player.Y != 600-24 {
		t.Errorf("player should clamp to the arena, got (%v, %v)", g.player.X, g.player.Y)
	}
}

func TestCarHitIsRateLimited(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = []*sim.Actor{parkedCar(g)}

	res := g.Step(core.NewInputFrame())
	if g.hp != 92 || g.wanted != 1 {
		t.Fatalf("first hit: hp=%d wanted=%d, expected 92 and 1", g.hp, g.wanted)
	}
	if !slices.Equal(res.Events, []core.Sound{core.SoundHurt}) {
		t.Errorf("expected hurt sound, got %v", res.Events)
	}
	if len(g.cops) != 1 {
		t.Errorf("wanted 1 should call one cop, got %d", len(g.cops))
	}

	// Ticks 2..36 are inside the 36-tick window
	for range 35 {
		g.cops = nil
		g.Step(core.NewInputFrame())
	}
	if g.hp != 92 {
		t.Fatalf("hit inside the interval should not count, hp=%d", g.hp)
	}

	g.cops = nil
	g.Step(core.NewInputFrame())
	if g.hp != 84 || g.wanted != 2 {
		t.Errorf("hit at tick 37: hp=%d wanted=%d, expected 84 and 2", g.hp, g.wanted)
	}
	if len(g.cops) != 2 {
		t.Errorf("wanted 2 should call two cops, got %d", len(g.cops))
	}
}

func TestWantedLevelCaps(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = []*sim.Actor{parkedCar(g)}
	g.wanted = 3

	g.Step(core.NewInputFrame())
	if g.Wanted() != 3 {
		t.Errorf("wanted should cap at 3, got %d", g.Wanted())
	}
	if len(g.Cops()) != 3 {
		t.Errorf("expected three cops, got %d", len(g.Cops()))
	}
	for _, cop := range g.Cops() {
		if cop.Speed < 4.2 || cop.Speed > 4.21 {
			t.Errorf("cop speed = %v, expected about 2.7+0.5*3", cop.Speed)
		}
	}
}

func TestNoCopsWhenEnoughAreChasing(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = []*sim.Actor{parkedCar(g)}
	far := sim.NewChaser(100, 100, 36, 28, 0, 0)
	g.cops = []*sim.Actor{far, far, far}
	g.wanted = 0

	g.Step(core.NewInputFrame())
	if len(g.cops) != 3 {
		t.Errorf("three cops already cover wanted 1, got %d", len(g.cops))
	}
}

func TestCopHitSharesClock(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = []*sim.Actor{parkedCar(g)}

	g.Step(core.NewInputFrame())
	if g.hp != 92 {
		t.Fatalf("car hit: hp=%d", g.hp)
	}

	g.cars = nil
	g.cops = []*sim.Actor{parkedCop(g)}

	// Ticks 2..42 are inside the 42-tick window of the car hit
	for range 41 {
		g.Step(core.NewInputFrame())
	}
	if g.hp != 92 {
		t.Fatalf("cop hit inside the shared interval should not count, hp=%d", g.hp)
	}

	res := g.Step(core.NewInputFrame())
	if g.hp != 74 {
		t.Errorf("cop hit at tick 43: hp=%d, expected 74", g.hp)
	}
	if !slices.Equal(res.Events, []core.Sound{core.SoundHurt}) {
		t.Errorf("expected hurt sound, got %v", res.Events)
	}
}

func TestCopsLeavingArenaAreRemoved(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = nil

	out := sim.NewChaser(0, 0, 36, 28, 0, 0)
	out.X, out.Y = -5, 100
	edge := sim.NewChaser(0, 0, 36, 28, 0, 0)
	edge.X, edge.Y = 899, 100
	g.cops = []*sim.Actor{out, edge}

	g.Step(core.NewInputFrame())
	if len(g.cops) != 1 || g.cops[0] != edge {
		t.Errorf("only the cop inside the arena should remain, got %d", len(g.cops))
	}
}

func TestHPDepletionEndsGame(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.cars = []*sim.Actor{parkedCar(g)}
	g.hp = 5

	res := g.Step(core.NewInputFrame())
	if res.State.Status != core.StatusGameOver || !res.State.GameOver {
		t.Fatalf("status = %s, expected game-over", res.State.Status)
	}
	if res.State.Health != 0 {
		t.Errorf("health = %d, expected 0", res.State.Health)
	}
	if !slices.Equal(res.Events, []core.Sound{core.SoundHurt, core.SoundFailure}) {
		t.Errorf("unexpected events %v", res.Events)
	}

	res = g.Step(core.FrameOf(core.ActionRestart))
	if res.State.Status != core.StatusInRoom || res.State.Health != 100 || len(g.cars) != 8 {
		t.Errorf("restart should reset the run, got %+v", res.State)
	}
}

func TestSurvivalGoal(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.Gameplay.SurviveTicks = 120
	g := newTestGame(t, cfg, 1)
	g.cars = nil

	var res core.StepResult
	for range 119 {
		res = g.Step(core.NewInputFrame())
	}
	if res.State.Status != core.StatusInRoom || res.State.Progress != 1 {
		t.Fatalf("tick 119: %+v", res.State)
	}

	res = g.Step(core.NewInputFrame())
	if res.State.Status != core.StatusLevelComplete || res.State.Progress != 2 {
		t.Errorf("tick 120: %+v", res.State)
	}
	if !slices.Equal(res.Events, []core.Sound{core.SoundSuccess}) {
		t.Errorf("expected success, got %v", res.Events)
	}
}

func TestHardPresetAddsCars(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	config.ApplyChasePreset(&cfg, config.DifficultyHard)
	g := newTestGame(t, cfg, 1)

	// 10 cars plus int(0.7 * 4) from the starting difficulty
	if len(g.cars) != 12 {
		t.Errorf("expected 12 cars, got %d", len(g.cars))
	}
	if g.hp != 70 {
		t.Errorf("expected 70 HP, got %d", g.hp)
	}
}

func TestGameDeterminism(t *testing.T) {
	run := func() string {
		g := newTestGame(t, config.DefaultChaseConfig(), 99)
		for i := range 600 {
			in := core.FrameOf(core.ActionRight)
			if i%40 < 20 {
				in = core.FrameOf(core.ActionUp)
			}
			if g.Step(in).State.GameOver {
				break
			}
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%d/%d/%d/%v,%v", g.tick, g.hp, g.wanted, g.player.X, g.player.Y)
		for _, c := range append(g.cars, g.cops...) {
			fmt.Fprintf(&b, "|%v,%v", c.X, c.Y)
		}
		return b.String()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("Determinism failed:\n%s\n%s", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, config.DefaultChaseConfig(), 1)
	g.wanted = 2

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	if !strings.ContainsRune(out, PlayerChar) || !strings.ContainsRune(out, RoadChar) {
		t.Error("render should draw the player and the streets")
	}
	if !strings.Contains(out, "HP: 100  Wanted: ") || strings.Count(out, "★") != 2 {
		t.Errorf("unexpected HUD row %q", screen.Row(0))
	}
}

func TestInitRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultChaseConfig()
	cfg.Player.HP = 0
	err := New(cfg).Init(core.DefaultConfig())
	if !errors.Is(err, core.ErrInvalidConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}
