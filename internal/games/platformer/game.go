// Package platformer implements a side-scrolling campaign of worlds and
// levels. The last level of each world is a castle whose boss must be
// stomped before the goal opens.
package platformer

import (
	"math/rand"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

func init() {
	registry.Register("platformer", "Vibe Platformer", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPlatformer(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPlatformerPreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game implements the platformer level controller.
type Game struct {
	level *Level
	hurt  sim.HitClock

	status  core.Status
	paused  bool
	tick    int
	hp      int
	cleared int
	sounds  core.Sounds

	runtime    core.RuntimeConfig
	cfg        config.PlatformerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a platformer with the given configuration.
func New(cfg config.PlatformerConfig) *Game {
	return &Game{cfg: cfg}
}

func (g *Game) ID() string    { return "platformer" }
func (g *Game) Title() string { return "Vibe Platformer" }

// Init validates the configuration and loads the first level.
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

// Reset restarts the campaign from the first level of the first world.
func (g *Game) Reset() {
	g.hp = g.cfg.Player.HP
	g.cleared = 0
	g.paused = false
	g.sounds = g.sounds[:0]
	g.loadLevel(0, 0)
}

// loadLevel builds a level and makes it current. Boss speed grows with the
// world index.
func (g *Game) loadLevel(world, index int) {
	speed := g.difficulty.Speed(g.cfg.Boss.Speed, world, 0)
	g.level = NewLevel(g.cfg, world, index, speed)
	g.level.UpdateCamera(g.cfg.Screen.Width)
	g.hurt.Reset()
	g.status = core.StatusInRoom
	g.tick = 0
}

// Level returns the current level.
func (g *Game) Level() *Level { return g.level }

// finalLevel reports whether the current level ends the campaign.
func (g *Game) finalLevel() bool {
	c := g.cfg.Campaign
	return g.level.World == c.Worlds-1 && g.level.Index == c.LevelsPerWorld-1
}

// nextLevel advances to the following level, moving on to the next world
// after its castle. The campaign stays complete after the final level.
func (g *Game) nextLevel() {
	if g.finalLevel() {
		return
	}
	world, index := g.level.World, g.level.Index+1
	if index >= g.cfg.Campaign.LevelsPerWorld {
		world, index = world+1, 0
	}
	g.loadLevel(world, index)
	g.status = core.StatusTransitioning
}

// Step advances the platformer by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) && g.status.Terminal() {
		g.Reset()
		return g.result()
	}
	if g.status == core.StatusLevelComplete && in.Has(core.ActionConfirm) {
		g.nextLevel()
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
	g.update(in)
	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.sounds.Drain()}
}

// update runs the player, then the boss and its contact check, then the
// camera and the goal.
func (g *Game) update(in core.InputFrame) {
	lv := g.level
	phys := g.cfg.Physics
	p := lv.Player

	dx, _ := in.Axis()
	p.VX = dx * p.Speed
	if dx != 0 {
		p.Facing = core.V(dx, 0)
	}
	if (in.Has(core.ActionPrimary) || in.Has(core.ActionUp)) && p.Grounded {
		p.VY = phys.JumpSpeed
	}
	sim.Update(p, sim.Env{Solids: lv.Tiles, Gravity: phys.Gravity})
	p.X = core.ClampF(p.X, 0, lv.Length-p.W)

	if lv.Boss != nil {
		sim.Update(lv.Boss, sim.Env{Target: p, Solids: lv.Tiles, Gravity: phys.Gravity, Rand: g.rng})
		g.bossContact()
		if g.status == core.StatusGameOver {
			return
		}
	}

	lv.UpdateCamera(g.cfg.Screen.Width)

	if lv.AtGoal(g.cfg.Screen.Width - phys.Tile) {
		g.cleared++
		g.status = core.StatusLevelComplete
		g.sounds.Emit(core.SoundSuccess)
	}
}

// bossContact resolves stomps and side contact with the boss.
func (g *Game) bossContact() {
	bounce := g.cfg.Physics.JumpSpeed / 2
	switch sim.Stomp(g.level.Boss, g.level.Player, bounce, g.cfg.Boss.LatchStomp) {
	case sim.StompHit:
		g.sounds.Emit(core.SoundStomp)
	case sim.StompDefeated:
		g.sounds.Emit(core.SoundStomp)
		g.sounds.Emit(core.SoundSuccess)
	case sim.StompContact:
		if !g.hurt.Ready(g.tick, g.cfg.Player.HurtInterval) {
			return
		}
		g.hurt.Mark(g.tick)
		g.hp--
		g.sounds.Emit(core.SoundHurt)
		if g.hp <= 0 {
			g.hp = 0
			g.status = core.StatusGameOver
			g.sounds.Emit(core.SoundFailure)
		}
	}
}

// HP returns the player's remaining hit points.
func (g *Game) HP() int { return g.hp }

// State returns the current game state. Progress counts cleared levels.
func (g *Game) State() core.GameState {
	return core.GameState{
		Status:   g.status,
		Progress: g.cleared,
		Health:   g.hp,
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
	}
}
