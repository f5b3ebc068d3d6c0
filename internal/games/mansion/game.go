// Package mansion implements the ghost-hunting mansion: a multi-floor room
// graph, ghosts that chase the player, a flashlight that stuns them and a
// vacuum that removes stunned ghosts.
package mansion

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
	"github.com/vovakirdan/vibe-arcade/internal/world"
)

func init() {
	registry.Register("mansion", "Ghost Mansion", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadMansion(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyMansionPreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game implements the mansion floor controller.
type Game struct {
	mansion *world.Mansion
	player  *sim.Actor
	target  *sim.Actor // Last ghost caught by the flashlight

	status     core.Status
	paused     bool
	vibes      bool
	tick       int
	flashCool  int
	vacuumCool int
	caught     int
	sounds     core.Sounds

	runtime    core.RuntimeConfig
	cfg        config.MansionConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a mansion game with the given configuration.
func New(cfg config.MansionConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "mansion" }
func (g *Game) Title() string { return "Ghost Mansion" }

// Init validates the configuration and generates the first mansion.
func (g *Game) Init(runtime core.RuntimeConfig) error {
	if err := runtime.Validate(); err != nil {
		return err
	}
	if err := g.cfg.Validate(); err != nil {
		return err
	}
	if err := g.genConfig(g.cfg.Layout.MaxFloors).Validate(); err != nil {
		return err
	}
	g.runtime = runtime
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	g.rng = core.NewRand(runtime.ResolvedSeed())
	g.Reset()
	return nil
}

// genConfig maps the layout settings onto the room graph generator.
func (g *Game) genConfig(floors int) world.GenConfig {
	l := g.cfg.Layout
	gh := g.cfg.Ghosts
	return world.GenConfig{
		Floors:          floors,
		MinRooms:        l.MinRooms,
		MaxRooms:        l.MaxRooms,
		GridW:           l.GridW,
		GridH:           l.GridH,
		CellSize:        l.CellSize,
		ExtraEdgeFactor: l.ExtraEdgeFactor,
		SpawnChance:     l.GhostChance,
		Spawn: func(_ *world.Room, cx, cy float64) *sim.Actor {
			return sim.NewChaser(cx, cy, gh.Size, gh.Size, gh.Speed, gh.Jitter)
		},
	}
}

// Reset generates a new mansion and puts the player at the spawn point.
func (g *Game) Reset() {
	l := g.cfg.Layout
	floors, err := world.Generate(g.genConfig(l.MinFloors+g.rng.Intn(l.MaxFloors-l.MinFloors+1)), g.rng)
	core.Invariant(err == nil, "generate mansion: %v", err)
	g.mansion, err = world.NewMansion(floors)
	core.Invariant(err == nil, "enter mansion: %v", err)

	p := g.cfg.Player
	g.player = sim.NewPlayer(0, 0, p.Size, p.Size, p.Step)
	g.player.CenterOn(p.SpawnX, p.SpawnY)
	g.target = nil

	g.status = core.StatusInRoom
	g.paused = false
	g.tick = 0
	g.flashCool = 0
	g.vacuumCool = 0
	g.caught = 0
	g.sounds = g.sounds[:0]
}

// Mansion exposes the floor graph and the player's position in it.
func (g *Game) Mansion() *world.Mansion { return g.mansion }

// Player returns the player actor. Its centre is the player's position.
func (g *Game) Player() *sim.Actor { return g.player }

// Ghosts returns the ghosts of the current room.
func (g *Game) Ghosts() []*sim.Actor { return g.mansion.Current.Entities }

// Step advances the mansion by one tick.
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
	g.status = core.StatusInRoom
	g.handleInput(in)
	g.update()
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.sounds.Drain()}
}

// handleInput applies the player's actions for this tick.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionToggleMode) {
		g.vibes = !g.vibes
	}

	if dx, dy := in.Axis(); dx != 0 || dy != 0 {
		g.move(dx, dy)
	}
	if in.Has(core.ActionPrimary) {
		g.flash()
	}
	if in.Has(core.ActionSecondary) {
		g.vacuum()
	}
	if in.Has(core.ActionConfirm) {
		g.walkThroughDoor()
	}
}

// move steps the player and updates facing with horizontal priority.
func (g *Game) move(dx, dy float64) {
	p := g.cfg.Player
	c := g.player.Center()
	cx := core.ClampF(c.X+dx*p.Step, p.Margin, g.cfg.Screen.Width-p.Margin)
	cy := core.ClampF(c.Y+dy*p.Step, p.Margin, g.cfg.Screen.Height-p.Margin)
	g.player.CenterOn(cx, cy)

	switch {
	case dx > 0:
		g.player.Facing = core.V(1, 0)
	case dx < 0:
		g.player.Facing = core.V(-1, 0)
	case dy > 0:
		g.player.Facing = core.V(0, 1)
	case dy < 0:
		g.player.Facing = core.V(0, -1)
	}
	g.sounds.Emit(core.SoundStep)
}

// walkThroughDoor moves to a random adjacent room.
// The player keeps its screen position.
func (g *Game) walkThroughDoor() {
	id, ok := g.mansion.RandomDoor(g.rng)
	if !ok {
		return
	}
	g.mansion.GotoRoom(id)
	g.sounds.Emit(core.SoundStep)
}

// update runs the per-tick rules: ghosts, stairs, cooldowns, then death.
func (g *Game) update() {
	ghosts := g.Ghosts()
	env := sim.Env{Target: g.player, Rand: g.rng}
	speed := g.difficulty.Speed(g.cfg.Ghosts.Speed, g.mansion.FloorIndex, g.tick)
	for _, gh := range ghosts {
		gh.Speed = speed
		sim.Update(gh, env)
	}

	if g.onStairs() && g.mansion.UpStairs() {
		g.player.CenterOn(g.cfg.Player.SpawnX, g.cfg.Player.SpawnY)
		g.target = nil
		g.status = core.StatusTransitioning
		g.sounds.Emit(core.SoundStairs)
		return
	}

	if g.flashCool > 0 {
		g.flashCool--
	}
	if g.vacuumCool > 0 {
		g.vacuumCool--
	}

	if g.touchingGhost() {
		g.status = core.StatusGameOver
		g.sounds.Emit(core.SoundFailure)
		return
	}

	if g.mansion.LastFloor() && g.floorGhosts() == 0 {
		g.status = core.StatusLevelComplete
		g.sounds.Emit(core.SoundSuccess)
	}
}

// onStairs reports whether the player stands on the current room's stairs.
func (g *Game) onStairs() bool {
	room := g.mansion.Current
	if !room.HasStairs {
		return false
	}
	sx, sy := room.Center(g.cfg.Layout.CellSize)
	c := g.player.Center()
	r := g.cfg.Layout.StairsRadius
	return math.Abs(c.X-sx) < r && math.Abs(c.Y-sy) < r
}

// touchingGhost reports an un-stunned ghost within the kill radius.
func (g *Game) touchingGhost() bool {
	c := g.player.Center()
	r := g.cfg.Ghosts.KillRadius
	for _, gh := range g.Ghosts() {
		gc := gh.Center()
		if !gh.Stunned() && math.Abs(c.X-gc.X) < r && math.Abs(c.Y-gc.Y) < r {
			return true
		}
	}
	return false
}

// floorGhosts counts the ghosts left on the current floor.
func (g *Game) floorGhosts() int {
	n := 0
	for _, r := range g.mansion.Floor().Rooms {
		n += len(r.Entities)
	}
	return n
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	health := 1
	if g.status == core.StatusGameOver {
		health = 0
	}
	return core.GameState{
		Status:   g.status,
		Progress: g.mansion.FloorIndex,
		Health:   health,
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
	}
}
