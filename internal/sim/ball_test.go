package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

var testPaddle = core.NewBox(100, 500, 110, 15)

// bounceAngle is the angle from straight up, positive to the right.
func bounceAngle(v core.Vec2) float64 {
	return math.Atan2(v.X, -v.Y) * 180 / math.Pi
}

func TestBouncePaddle_Center(t *testing.T) {
	b := &Ball{Pos: core.V(testPaddle.CenterX(), 495), Vel: core.V(0, 5), R: 8}

	require.True(t, b.BouncePaddle(testPaddle, 60))

	assert.InDelta(t, 0, b.Vel.X, 1e-9)
	assert.InDelta(t, -5, b.Vel.Y, 1e-9)
	assert.InDelta(t, 0, bounceAngle(b.Vel), 1e-9)
	assert.Equal(t, testPaddle.Top()-b.R-1, b.Pos.Y, "ball is lifted above the paddle")
}

func TestBouncePaddle_Edges(t *testing.T) {
	tests := []struct {
		name  string
		x     float64
		angle float64
	}{
		{"left edge", testPaddle.Left(), -60},
		{"right edge", testPaddle.Right(), 60},
		{"past left edge clamps", testPaddle.Left() - 5, -60},
		{"quarter right", testPaddle.CenterX() + testPaddle.W/4, 30},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := &Ball{Pos: core.V(tc.x, 495), Vel: core.V(0, 5), R: 8}

			require.True(t, b.BouncePaddle(testPaddle, 60))

			assert.InDelta(t, tc.angle, bounceAngle(b.Vel), 1e-9)
			assert.InDelta(t, 5, b.Speed(), 1e-9)
		})
	}
}

func TestBouncePaddle_PreservesSpeed(t *testing.T) {
	b := &Ball{Pos: core.V(130, 495), Vel: core.V(3, 4), R: 8}

	require.True(t, b.BouncePaddle(testPaddle, 60))

	assert.InDelta(t, 5, b.Speed(), 1e-9)
	assert.Less(t, b.Vel.Y, 0.0)
}

func TestBouncePaddle_IgnoresRisingBall(t *testing.T) {
	b := &Ball{Pos: core.V(testPaddle.CenterX(), 505), Vel: core.V(1, -5), R: 8}

	assert.False(t, b.BouncePaddle(testPaddle, 60))
	assert.Equal(t, core.V(1, -5), b.Vel)
}

func TestBreakFirst(t *testing.T) {
	blocks := []core.Box{core.NewBox(0, 0, 50, 20), core.NewBox(60, 0, 50, 20)}

	t.Run("face hit reflects vertically", func(t *testing.T) {
		b := &Ball{Pos: core.V(25, 24), Vel: core.V(1, -5), R: 8}

		assert.Equal(t, 0, b.BreakFirst(blocks))
		assert.Equal(t, core.V(1, 5), b.Vel)
	})

	t.Run("side hit reflects horizontally and stops at first block", func(t *testing.T) {
		// Overlaps both blocks; only the first is processed
		b := &Ball{Pos: core.V(55, 10), Vel: core.V(3, 1), R: 8}

		assert.Equal(t, 0, b.BreakFirst(blocks))
		assert.Equal(t, core.V(-3, 1), b.Vel)
	})

	t.Run("miss", func(t *testing.T) {
		b := &Ball{Pos: core.V(300, 300), Vel: core.V(3, 1), R: 8}

		assert.Equal(t, -1, b.BreakFirst(blocks))
		assert.Equal(t, core.V(3, 1), b.Vel)
	})
}

func TestBounceWalls(t *testing.T) {
	arena := core.NewBox(0, 0, 800, 600)

	side := &Ball{Pos: core.V(5, 300), Vel: core.V(-5, 1), R: 8}
	assert.Equal(t, WallSide, side.BounceWalls(arena))
	assert.Equal(t, 5.0, side.Vel.X)
	assert.Equal(t, 8.0, side.Pos.X)

	top := &Ball{Pos: core.V(400, 5), Vel: core.V(1, -5), R: 8}
	assert.Equal(t, WallTop, top.BounceWalls(arena))
	assert.Equal(t, 5.0, top.Vel.Y)
	assert.Equal(t, 8.0, top.Pos.Y)

	open := &Ball{Pos: core.V(400, 300), Vel: core.V(1, -5), R: 8}
	assert.Equal(t, WallNone, open.BounceWalls(arena))

	assert.True(t, (&Ball{Pos: core.V(400, 610), R: 8}).Lost(arena))
	assert.False(t, (&Ball{Pos: core.V(400, 590), R: 8}).Lost(arena))
}
