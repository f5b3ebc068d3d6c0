package sim

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// Env is what an actor can see while it updates.
type Env struct {
	Target  *Actor     // Pursued actor for chasers and bosses
	Solids  []core.Box // Static geometry
	Gravity float64
	Rand    *rand.Rand // Jitter and boss jumps; nil disables both
}

// Update advances a by one tick according to its kind.
// A stunned actor only counts its stun down.
func Update(a *Actor, env Env) {
	if a.Stun > 0 {
		a.Stun--
		return
	}

	switch a.Kind {
	case KindPlayer:
		a.Grounded = Resolve(a, env.Solids, env.Gravity)
	case KindPatrol:
		patrol(a)
	case KindChaser:
		chase(a, env)
	case KindBoss:
		boss(a, env)
	}
}

func patrol(a *Actor) {
	p := a.Patrol
	if p == nil {
		return
	}
	a.X += p.Dir.X * a.Speed
	a.Y += p.Dir.Y * a.Speed

	box := a.Box()
	if box.Left() < p.Bounds.Left() || box.Right() > p.Bounds.Right() {
		p.Dir.X = -p.Dir.X
	}
	if box.Top() < p.Bounds.Top() || box.Bottom() > p.Bounds.Bottom() {
		p.Dir.Y = -p.Dir.Y
	}
	a.Facing = p.Dir
}

func chase(a *Actor, env Env) {
	if env.Target == nil {
		return
	}
	dir := env.Target.Center().Sub(a.Center()).Unit()
	step := dir.Scale(a.Speed)

	if a.Chase != nil && a.Chase.Jitter > 0 && env.Rand != nil {
		j := a.Chase.Jitter
		step.X += (env.Rand.Float64()*2 - 1) * j
		step.Y += (env.Rand.Float64()*2 - 1) * j
	}

	a.X += step.X
	a.Y += step.Y
	if !dir.IsZero() {
		a.Facing = dir
	}
}

func boss(a *Actor, env Env) {
	b := a.Boss
	if b == nil {
		return
	}

	if b.Phase == PhaseDefeated {
		a.VX = 0
		a.VY += env.Gravity
		a.Y += a.VY
		return
	}

	if env.Target != nil {
		a.VX = a.Speed * core.Sign(env.Target.Center().X-a.Center().X)
		if a.VX != 0 {
			a.Facing = core.V(core.Sign(a.VX), 0)
		}
	}
	a.Grounded = Resolve(a, env.Solids, env.Gravity)
	if a.Grounded && env.Rand != nil && env.Rand.Float64() < b.JumpChance {
		a.VY = b.JumpSpeed
	}
}

// StompResult classifies a boss/player contact check.
type StompResult int

const (
	StompNone     StompResult = iota // No contact, or contact that does not count
	StompHit                         // Boss lost one HP
	StompDefeated                    // Boss lost its last HP
	StompContact                     // Touching an active boss without stomping
)

// Stomp checks the player landing on boss. A qualifying stomp needs overlap,
// the player falling, and the player's bottom edge above the boss's centre.
// It costs the boss one HP and bounces the player with vertical velocity
// bounce. Defeated bosses never register contact.
//
// With latch set, one continuous overlap counts at most one stomp, and
// contact during that overlap is ignored. Without it every qualifying tick
// counts.
func Stomp(boss, player *Actor, bounce float64, latch bool) StompResult {
	b := boss.Boss
	if b == nil || b.Phase == PhaseDefeated {
		return StompNone
	}
	if !boss.Box().Overlaps(player.Box()) {
		b.latched = false
		return StompNone
	}
	if latch && b.latched {
		return StompNone
	}

	if player.VY > 0 && player.Bottom() < boss.Center().Y {
		b.latched = true
		b.HP--
		player.VY = bounce
		if b.HP <= 0 {
			b.HP = 0
			b.Phase = PhaseDefeated
			return StompDefeated
		}
		return StompHit
	}
	return StompContact
}

// HitClock rate-limits a repeating hit. The first hit is always ready.
type HitClock struct {
	last  int
	armed bool
}

// Ready reports whether interval ticks have passed since the last Mark.
func (c *HitClock) Ready(tick, interval int) bool {
	return !c.armed || tick-c.last >= interval
}

// Mark records a hit at tick.
func (c *HitClock) Mark(tick int) {
	c.last = tick
	c.armed = true
}

// Reset forgets the last hit.
func (c *HitClock) Reset() {
	*c = HitClock{}
}

// Compact removes the items keep rejects, preserving order.
// Call it after the pass that decided the removals, never during it.
func Compact[T any](items []T, keep func(T) bool) []T {
	return slices.DeleteFunc(items, func(it T) bool { return !keep(it) })
}
