// Package sim holds the actor model shared by every game: positioned boxes with
// velocity, an axis-separated collision resolver against static geometry, and
// the per-kind behaviour rules evaluated once per tick.
package sim

import "github.com/vovakirdan/vibe-arcade/internal/core"

// Kind is the closed set of actor behaviours.
type Kind int

const (
	KindPlayer Kind = iota
	KindPatrol
	KindChaser
	KindBoss
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindPatrol:
		return "patrol"
	case KindChaser:
		return "chaser"
	case KindBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// BossPhase is the coarse lifecycle of a boss. Active -> Defeated is one-way.
type BossPhase int

const (
	PhaseActive BossPhase = iota
	PhaseDefeated
)

func (p BossPhase) String() string {
	if p == PhaseDefeated {
		return "defeated"
	}
	return "active"
}

// Patrol is the payload of a KindPatrol actor.
type Patrol struct {
	Dir    core.Vec2 // Cardinal unit direction
	Bounds core.Box  // Crossing an edge reverses that axis
}

// Chase is the payload of a KindChaser actor.
type Chase struct {
	Jitter float64 // Uniform per-axis wobble added to each step, 0 for direct pursuit
}

// Boss is the payload of a KindBoss actor.
type Boss struct {
	HP         int
	Phase      BossPhase
	JumpChance float64 // Per-tick probability of a jump while grounded
	JumpSpeed  float64 // Vertical impulse of a jump (negative is up)

	latched bool // Player is still on top of the boss from the last stomp
}

// Actor is a positioned, sized entity. X and Y are the top-left corner.
type Actor struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
	Speed  float64

	Kind     Kind
	Stun     int       // Ticks of suspended behaviour left
	Facing   core.Vec2 // Last non-zero movement direction
	Grounded bool      // Landed on geometry during the last resolve

	Patrol *Patrol
	Chase  *Chase
	Boss   *Boss
}

// NewPlayer creates a player actor.
func NewPlayer(x, y, w, h, speed float64) *Actor {
	return &Actor{X: x, Y: y, W: w, H: h, Speed: speed, Kind: KindPlayer, Facing: core.V(1, 0)}
}

// NewPatroller creates an actor that walks dir until it crosses bounds.
func NewPatroller(x, y, w, h, speed float64, dir core.Vec2, bounds core.Box) *Actor {
	return &Actor{
		X: x, Y: y, W: w, H: h,
		Speed:  speed,
		Kind:   KindPatrol,
		Facing: dir,
		Patrol: &Patrol{Dir: dir, Bounds: bounds},
	}
}

// NewChaser creates an actor centred on (cx, cy) that pursues its target.
func NewChaser(cx, cy, w, h, speed, jitter float64) *Actor {
	return &Actor{
		X: cx - w/2, Y: cy - h/2, W: w, H: h,
		Speed: speed,
		Kind:  KindChaser,
		Chase: &Chase{Jitter: jitter},
	}
}

// NewBoss creates an active boss.
func NewBoss(x, y, w, h, speed float64, hp int, jumpChance, jumpSpeed float64) *Actor {
	return &Actor{
		X: x, Y: y, W: w, H: h,
		Speed: speed,
		Kind:  KindBoss,
		Boss:  &Boss{HP: hp, Phase: PhaseActive, JumpChance: jumpChance, JumpSpeed: jumpSpeed},
	}
}

// Box returns the actor's bounding box.
func (a *Actor) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.W, a.H)
}

// Center returns the centre of the bounding box.
func (a *Actor) Center() core.Vec2 {
	return core.V(a.X+a.W/2, a.Y+a.H/2)
}

// CenterOn moves the actor so its centre is at (cx, cy).
func (a *Actor) CenterOn(cx, cy float64) {
	a.X = cx - a.W/2
	a.Y = cy - a.H/2
}

func (a *Actor) Right() float64  { return a.X + a.W }
func (a *Actor) Bottom() float64 { return a.Y + a.H }

// Stunned reports whether the stun modifier is active.
func (a *Actor) Stunned() bool {
	return a.Stun > 0
}

// Defeated reports whether the actor is a boss in its final phase.
func (a *Actor) Defeated() bool {
	return a.Boss != nil && a.Boss.Phase == PhaseDefeated
}

// DistanceTo returns the distance between the two centres.
func (a *Actor) DistanceTo(o *Actor) float64 {
	return o.Center().Sub(a.Center()).Len()
}
