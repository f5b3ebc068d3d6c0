package bricks

import "math"

// Snapshot contains the simulation state compared by determinism tests.
// Floats are stored as their IEEE bits so equal states hash equally.
type Snapshot struct {
	Tick      int
	Status    int
	Broken    int
	PaddleX   uint64
	BallData  [4]uint64 // X, Y, VX, VY
	BrickData []uint64  // X, Y of each remaining brick
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bricks := make([]uint64, 0, len(g.blocks)*2)
	for _, b := range g.blocks {
		bricks = append(bricks, math.Float64bits(b.X), math.Float64bits(b.Y))
	}

	return Snapshot{
		Tick:    g.tick,
		Status:  int(g.status),
		Broken:  g.broken,
		PaddleX: math.Float64bits(g.paddle.X),
		BallData: [4]uint64{
			math.Float64bits(g.ball.Pos.X),
			math.Float64bits(g.ball.Pos.Y),
			math.Float64bits(g.ball.Vel.X),
			math.Float64bits(g.ball.Vel.Y),
		},
		BrickData: bricks,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)             //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Broken)     //#nosec G115 -- hash computation
	h = h*31 + snap.PaddleX

	for _, v := range snap.BallData {
		h = h*31 + v
	}
	for _, v := range snap.BrickData {
		h = h*31 + v
	}
	return h
}
