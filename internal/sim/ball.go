package sim

import (
	"math"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// WallHit describes what a ball touched at the arena edge.
type WallHit int

const (
	WallNone WallHit = iota
	WallSide
	WallTop
)

// Ball is the circular actor of the brick game. Pos is the centre.
type Ball struct {
	Pos core.Vec2
	Vel core.Vec2
	R   float64
}

// Bounds returns the square bounding the ball.
func (b *Ball) Bounds() core.Box {
	return core.BoxAround(b.Pos.X, b.Pos.Y, 2*b.R, 2*b.R)
}

// Speed returns the velocity magnitude.
func (b *Ball) Speed() float64 {
	return b.Vel.Len()
}

// Step moves the ball by its velocity.
func (b *Ball) Step() {
	b.Pos = b.Pos.Add(b.Vel)
}

// BounceWalls reflects off the side and top walls of arena, keeping the ball
// inside. The bottom is open.
func (b *Ball) BounceWalls(arena core.Box) WallHit {
	box := b.Bounds()
	hit := WallNone
	if box.Left() <= arena.Left() || box.Right() >= arena.Right() {
		b.Vel.X = -b.Vel.X
		b.Pos.X = core.ClampF(b.Pos.X, arena.Left()+b.R, arena.Right()-b.R)
		hit = WallSide
	}
	if box.Top() <= arena.Top() {
		b.Vel.Y = -b.Vel.Y
		b.Pos.Y = arena.Top() + b.R
		hit = WallTop
	}
	return hit
}

// Lost reports whether the ball has dropped out through the arena bottom.
func (b *Ball) Lost(arena core.Box) bool {
	return b.Bounds().Top() >= arena.Bottom()
}

// BouncePaddle rebounds a descending ball off paddle. The hit offset from the
// paddle centre, normalised to [-1, 1], maps linearly onto [-maxAngle,
// maxAngle] degrees from vertical; speed is preserved. Returns false when the
// ball is rising or not touching the paddle.
func (b *Ball) BouncePaddle(paddle core.Box, maxAngle float64) bool {
	if b.Vel.Y <= 0 || !b.Bounds().Overlaps(paddle) {
		return false
	}

	speed := b.Speed()
	offset := 0.0
	if paddle.W > 0 {
		offset = core.ClampF((b.Pos.X-paddle.CenterX())/(paddle.W/2), -1, 1)
	}
	theta := offset * maxAngle * math.Pi / 180
	b.Vel = core.V(speed*math.Sin(theta), -speed*math.Cos(theta))
	b.Pos.Y = paddle.Top() - b.R - 1
	return true
}

// BreakFirst finds the first block the ball overlaps and reflects off it.
// A ball centre within one radius of the block's left or right edge is a side
// hit (reflect X); anything else is a top/bottom hit (reflect Y). Returns the
// block index for the caller to remove, or -1.
func (b *Ball) BreakFirst(blocks []core.Box) int {
	box := b.Bounds()
	for i, blk := range blocks {
		if !box.Overlaps(blk) {
			continue
		}
		if math.Abs(b.Pos.X-blk.Left()) < b.R || math.Abs(b.Pos.X-blk.Right()) < b.R {
			b.Vel.X = -b.Vel.X
		} else {
			b.Vel.Y = -b.Vel.Y
		}
		return i
	}
	return -1
}
