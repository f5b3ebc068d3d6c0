// Package bricks implements a brick breaker: a paddle, one ball and a wall of
// bricks that break one per tick.
package bricks

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/hud"
	"github.com/vovakirdan/vibe-arcade/internal/registry"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

// Visual characters for rendering
const (
	PaddleChar = '='
	BallChar   = '●'
	BrickChar  = '█'
)

// Brick colors by row (cycling through)
var BrickColors = []core.Color{
	core.ColorBrightRed,
	core.ColorOrange,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
	core.ColorBrightMagenta,
}

const (
	minScreenW = 30
	minScreenH = 15
)

func init() {
	registry.Register("bricks", "Brick Breaker", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadBricks(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyBricksPreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}

// Game implements the brick breaker.
type Game struct {
	// Game objects
	paddle core.Box
	ball   sim.Ball
	blocks []core.Box
	rows   []int // Grid row of each block, parallel to blocks

	// Game state
	status core.Status
	paused bool
	broken int
	tick   int
	sounds core.Sounds

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.BricksConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand
}

// New creates a brick breaker with the given configuration.
func New(cfg config.BricksConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return "bricks" }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Brick Breaker" }

// Init validates the configuration and builds the first board.
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

// field is the playing area in world units.
func (g *Game) field() core.Box {
	return core.NewBox(0, 0, g.cfg.Field.Width, g.cfg.Field.Height)
}

// Reset rebuilds the wall and serves a new ball.
func (g *Game) Reset() {
	g.status = core.StatusInRoom
	g.paused = false
	g.broken = 0
	g.tick = 0
	g.sounds = g.sounds[:0]

	g.buildWall()

	p := g.cfg.Paddle
	g.paddle = core.NewBox((g.cfg.Field.Width-p.Width)/2, g.cfg.Field.Height-p.Offset, p.Width, p.Height)

	dir := core.V(1, -1)
	if g.rng.Intn(2) == 0 {
		dir.X = -1
	}
	speed := g.difficulty.Speed(g.cfg.Ball.Speed, 0, 0)
	g.ball = sim.Ball{
		Pos: core.V(g.paddle.CenterX(), g.paddle.Top()-g.cfg.Ball.Radius-1),
		Vel: dir.Unit().Scale(speed),
		R:   g.cfg.Ball.Radius,
	}
}

// buildWall lays out the brick grid with equal gaps on both sides.
func (g *Game) buildWall() {
	b := g.cfg.Bricks
	width := (g.cfg.Field.Width - b.Gap*float64(b.Cols+1)) / float64(b.Cols)

	g.blocks = make([]core.Box, 0, b.Rows*b.Cols)
	g.rows = make([]int, 0, b.Rows*b.Cols)
	for row := range b.Rows {
		for col := range b.Cols {
			x := b.Gap + float64(col)*(width+b.Gap)
			y := b.TopOffset + float64(row)*(b.Height+b.Gap)
			g.blocks = append(g.blocks, core.NewBox(x, y, width, b.Height))
			g.rows = append(g.rows, row)
		}
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	// Handle restart
	if in.Has(core.ActionRestart) && g.status.Terminal() {
		g.Reset()
		return g.result()
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) && !g.status.Terminal() {
		g.paused = !g.paused
	}

	// Don't update if paused or finished
	if g.paused || g.status.Terminal() {
		return g.result()
	}

	g.tick++
	g.updatePaddle(in)
	g.updateBall()

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.sounds.Drain()}
}

// updatePaddle moves the paddle horizontally, keeping it inside the field.
func (g *Game) updatePaddle(in core.InputFrame) {
	dx, _ := in.Axis()
	g.paddle.X = core.ClampF(g.paddle.X+dx*g.cfg.Paddle.Speed, 0, g.cfg.Field.Width-g.paddle.W)
}

// updateBall moves the ball and resolves, in order: walls, paddle, the
// first overlapping brick, then the lose and win checks.
func (g *Game) updateBall() {
	field := g.field()

	g.ball.Step()

	if g.ball.BounceWalls(field) != sim.WallNone {
		g.sounds.Emit(core.SoundWallHit)
	}

	if g.ball.BouncePaddle(g.paddle, g.cfg.Ball.MaxAngle) {
		g.sounds.Emit(core.SoundPaddleHit)
	}

	if i := g.ball.BreakFirst(g.blocks); i >= 0 {
		g.blocks = slices.Delete(g.blocks, i, i+1)
		g.rows = slices.Delete(g.rows, i, i+1)
		g.broken++
		g.sounds.Emit(core.SoundBrickBreak)
	}

	switch {
	case g.ball.Lost(field):
		g.status = core.StatusGameOver
		g.sounds.Emit(core.SoundFailure)
	case len(g.blocks) == 0:
		g.status = core.StatusLevelComplete
		g.sounds.Emit(core.SoundSuccess)
	}
}

// Render draws the current game state to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	if hud.TooSmall(dst, minScreenW, minScreenH) {
		return
	}

	vp := core.NewViewport(g.field(), dst.Width(), dst.Height(), hud.Rows)

	for i, blk := range g.blocks {
		c := BrickColors[g.rows[i]%len(BrickColors)]
		dst.DrawRectColored(vp.Rect(blk), BrickChar, c)
	}

	dst.DrawRectColored(vp.Rect(g.paddle), PaddleChar, core.ColorBrightWhite)

	if g.status != core.StatusGameOver {
		bx, by := vp.Point(g.ball.Pos.X, g.ball.Pos.Y)
		dst.SetColored(bx, by, BallChar, core.ColorBrightYellow)
	}

	total := g.cfg.Bricks.Rows * g.cfg.Bricks.Cols
	hud.Bar(dst, fmt.Sprintf("Bricks: %d/%d", g.broken, total), "", "P:Pause  Q:Quit")
	hud.StatusOverlay(dst, g.State(), "YOU WIN!", "GAME OVER")
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	health := 1
	if g.status == core.StatusGameOver {
		health = 0
	}
	return core.GameState{
		Status:   g.status,
		Progress: g.broken,
		Health:   health,
		GameOver: g.status.Terminal(),
		Paused:   g.paused,
	}
}
