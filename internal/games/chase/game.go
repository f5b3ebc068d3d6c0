// Package chase implements the top-down chase: dodge patrolling traffic, and
// every crash raises the wanted level and calls in more police.
package chase

import (
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

func init() {
	registry.Register("chase", "Grand Vibe Chase", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadChase(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyChasePreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}

// Placement margins for spawned actors.
const (
	carMargin = 60
	copNear   = 20
	copFar    = 60
)

var cardinals = []core.Vec2{core.V(1, 0), core.V(-1, 0), core.V(0, 1), core.V(0, -1)}

// Game implements the chase controller.
type Game struct {
	player *sim.Actor
	cars   []*sim.Actor
	cops   []*sim.Actor
	hits   sim.HitClock // Shared by car and cop hits

	status core.Status
	paused bool
	tick   int
	hp     int
	wanted int
	sounds core.Sounds

	runtime    core.RuntimeConfig
	cfg        config.ChaseConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a chase game with the given configuration.
func New(cfg config.ChaseConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "chase" }
func (g *Game) Title() string { return "Grand Vibe Chase" }

// Init validates the configuration and places the traffic.
func (g *Game) Init(runtime core.RuntimeConfig) error {
	if err := runtime.Validate(); err != nil {
		return err
	}
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRand(runtime.ResolvedSeed())
	g.Reset()
	return nil
}

func (g *Game) arena() core.Box {
	return core.NewBox(0, 0, g.cfg.Arena.Width, g.cfg.Arena.Height)
}

// Reset puts the player in the middle of a fresh set of cars.
func (g *Game) Reset() {
	p := g.cfg.Player
	g.player = sim.NewPlayer(g.cfg.Arena.Width/2, g.cfg.Arena.Height/2, p.Width, p.Height, p.Speed)

	c := g.cfg.Cars
	n := g.difficulty.Count(c.Count, 0, 0)
	g.cars = make([]*sim.Actor, 0, n)
	for range n {
		x := g.randRange(carMargin, g.cfg.Arena.Width-carMargin)
		y := g.randRange(carMargin, g.cfg.Arena.Height-carMargin)
		dir := cardinals[g.rng.Intn(len(cardinals))]
		g.cars = append(g.cars, sim.NewPatroller(x, y, c.Width, c.Height, c.Speed, dir, g.arena()))
	}
	g.cops = nil
	g.hits.Reset()

	g.status = core.StatusInRoom
	g.paused = false
	g.tick = 0
	g.hp = p.HP
	g.wanted = 0
	g.sounds = g.sounds[:0]
}

// randRange returns an integral position in [lo, hi].
func (g *Game) randRange(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + float64(g.rng.Intn(int(hi-lo)+1))
}

// Step advances the chase by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.status.Terminal() {
		g.Reset()
		return g.result()
	}
	if g.status.Terminal() {
		return g.result()
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	g.update(in)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.sounds.Drain()}
}

// update moves traffic, police and player, then applies hits.
func (g *Game) update(in core.InputFrame) {
	for _, car := range g.cars {
		sim.Update(car, sim.Env{})
	}
	env := sim.Env{Target: g.player}
	for _, cop := range g.cops {
		sim.Update(cop, env)
	}

	dx, dy := in.Axis()
	a := g.arena()
	g.player.X = core.ClampF(g.player.X+dx*g.player.Speed, a.Left(), a.Right()-g.player.W)
	g.player.Y = core.ClampF(g.player.Y+dy*g.player.Speed, a.Top(), a.Bottom()-g.player.H)

	g.carHits()
	g.copHits()

	g.cops = sim.Compact(g.cops, func(c *sim.Actor) bool {
		return c.X >= a.Left() && c.X < a.Right() && c.Y >= a.Top() && c.Y < a.Bottom()
	})

	switch {
	case g.hp <= 0:
		g.status = core.StatusGameOver
		g.sounds.Emit(core.SoundFailure)
	case g.cfg.Gameplay.SurviveTicks > 0 && g.tick >= g.cfg.Gameplay.SurviveTicks:
		g.status = core.StatusLevelComplete
		g.sounds.Emit(core.SoundSuccess)
	}
}

// carHits applies traffic collisions. Each one raises the wanted level and
// calls in police while there are fewer than two per wanted star.
func (g *Game) carHits() {
	c := g.cfg.Cars
	box := g.player.Box()
	for _, car := range g.cars {
		if !box.Overlaps(car.Box()) || !g.hits.Ready(g.tick, c.Interval) {
			continue
		}
		g.hits.Mark(g.tick)
		g.hp -= c.Damage
		g.wanted = min(g.wanted+1, g.cfg.Gameplay.MaxWanted)
		g.sounds.Emit(core.SoundHurt)

		if len(g.cops) < 2*g.wanted {
			g.spawnCops(g.wanted)
		}
	}
}

// copHits applies police collisions.
func (g *Game) copHits() {
	c := g.cfg.Cops
	box := g.player.Box()
	for _, cop := range g.cops {
		if !box.Overlaps(cop.Box()) || !g.hits.Ready(g.tick, c.Interval) {
			continue
		}
		g.hits.Mark(g.tick)
		g.hp -= c.Damage
		g.sounds.Emit(core.SoundHurt)
	}
}

// spawnCops adds n police cars at random positions. Their speed grows with
// the wanted level and the elapsed time.
func (g *Game) spawnCops(n int) {
	c := g.cfg.Cops
	base := c.BaseSpeed + c.SpeedPerWanted*float64(g.wanted)
	speed := g.difficulty.Speed(base, 0, g.tick)
	for range n {
		x := g.randRange(copNear, g.cfg.Arena.Width-copFar)
		y := g.randRange(copNear, g.cfg.Arena.Height-copFar)
		cop := sim.NewChaser(0, 0, c.Width, c.Height, speed, 0)
		cop.X, cop.Y = x, y
		g.cops = append(g.cops, cop)
	}
}

// Wanted returns the current wanted level.
func (g *Game) Wanted() int { return g.wanted }

// Cops returns the pursuing police cars.
func (g *Game) Cops() []*sim.Actor { return g.cops }

// State returns the current game state. Progress is seconds survived.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status:   g.status,
		Progress: g.tick / g.runtime.TickRate,
		Health:   max(g.hp, 0),
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
	}
}
