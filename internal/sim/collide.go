package sim

import "github.com/vovakirdan/vibe-arcade/internal/core"

// Resolve moves a by its velocity against static geometry, one axis at a time.
//
// The horizontal pass applies VX and clamps the leading edge to every solid it
// now overlaps. The vertical pass adds gravity to VY, applies it and clamps the
// same way, zeroing VY on contact. Solids are visited in order and the last
// clamp wins. Returns true when the actor landed on something.
func Resolve(a *Actor, solids []core.Box, gravity float64) bool {
	a.X += a.VX
	for _, s := range solids {
		if !a.Box().Overlaps(s) {
			continue
		}
		switch {
		case a.VX > 0:
			a.X = s.Left() - a.W
		case a.VX < 0:
			a.X = s.Right()
		}
	}

	a.VY += gravity
	a.Y += a.VY
	grounded := false
	for _, s := range solids {
		if !a.Box().Overlaps(s) {
			continue
		}
		switch {
		case a.VY > 0:
			a.Y = s.Top() - a.H
			a.VY = 0
			grounded = true
		case a.VY < 0:
			a.Y = s.Bottom()
			a.VY = 0
		}
	}
	return grounded
}

// Touching returns the first actor in others whose box overlaps a, or nil.
func Touching(a *Actor, others []*Actor) *Actor {
	box := a.Box()
	for _, o := range others {
		if o != a && box.Overlaps(o.Box()) {
			return o
		}
	}
	return nil
}
