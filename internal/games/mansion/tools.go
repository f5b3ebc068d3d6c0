package mansion

import (
	"math"
	"slices"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

// flash stuns every ghost inside the beam box ahead of the player and
// remembers the last one hit as the vacuum target.
func (g *Game) flash() {
	if g.flashCool > 0 {
		return
	}
	t := g.cfg.Tools
	g.flashCool = t.FlashCooldown
	g.sounds.Emit(core.SoundStun)

	beam := g.beamCenter()
	for _, gh := range g.Ghosts() {
		gc := gh.Center()
		if math.Abs(beam.X-gc.X) < t.FlashRange && math.Abs(beam.Y-gc.Y) < t.FlashRange {
			gh.Stun = t.StunTicks
			g.target = gh
		}
	}
}

// beamCenter returns the point the flashlight is aimed at.
func (g *Game) beamCenter() core.Vec2 {
	return g.player.Center().Add(g.player.Facing.Scale(g.cfg.Tools.FlashReach))
}

// vacuum removes the remembered ghost when it is still stunned, in this
// room and close enough. A failed attempt only plays the failure sound.
func (g *Game) vacuum() {
	if g.vacuumCool > 0 || g.target == nil {
		return
	}
	room := g.mansion.Current
	target := g.target
	r := g.cfg.Tools.VacuumRange
	c, tc := g.player.Center(), target.Center()

	if !slices.Contains(room.Entities, target) || !target.Stunned() ||
		math.Abs(c.X-tc.X) >= r || math.Abs(c.Y-tc.Y) >= r {
		g.sounds.Emit(core.SoundFailure)
		return
	}

	room.Entities = sim.Compact(room.Entities, func(a *sim.Actor) bool { return a != target })
	g.target = nil
	g.caught++
	g.vacuumCool = g.cfg.Tools.VacuumCooldown
	g.sounds.Emit(core.SoundSuccess)
}
