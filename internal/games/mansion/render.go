package mansion

import (
	"fmt"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/hud"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	GhostChar  = 'G'
	StairsChar = '≡'
	DoorChar   = '·'
	BeamChar   = '*'
)

const (
	minScreenW = 40
	minScreenH = 16
	roomInset  = 8  // World units between neighbouring room outlines
	beamTicks  = 8  // Ticks the flashlight beam stays visible
	vibeTicks  = 20 // Ticks per vibes palette colour
)

// vibePalette cycles while vibes mode is on.
var vibePalette = []core.Color{
	core.ColorBrightMagenta,
	core.ColorBrightCyan,
	core.ColorCyan,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
}

// Render draws the current floor, the room's ghosts and the player.
func (g *Game) Render(dst *core.Screen) {
	if hud.TooSmall(dst, minScreenW, minScreenH) {
		return
	}

	world := core.NewBox(0, 0, g.cfg.Screen.Width, g.cfg.Screen.Height)
	vp := core.NewViewport(world, dst.Width(), dst.Height(), hud.Rows)
	cell := g.cfg.Layout.CellSize
	floor := g.mansion.Floor()
	room := g.mansion.Current

	for _, r := range floor.Rooms {
		c := core.ColorGray
		if r.Visited {
			c = core.ColorWhite
		}
		if g.vibes {
			c = g.vibeColor()
		}
		box := core.NewBox(float64(r.GridX)*cell, float64(r.GridY)*cell, cell-roomInset, cell-roomInset)
		dst.DrawBoxColored(vp.Rect(box), c)
	}

	// Doors of the current room
	cx, cy := room.Center(cell)
	x0, y0 := vp.Point(cx, cy)
	for _, id := range room.Doors {
		dx, dy := floor.Room(id).Center(cell)
		x1, y1 := vp.Point(dx, dy)
		drawLine(dst, x0, y0, x1, y1, DoorChar, core.ColorBrightGreen)
	}

	for _, r := range floor.Rooms {
		if r.HasStairs {
			sx, sy := vp.Point(r.Center(cell))
			dst.SetColored(sx, sy, StairsChar, core.ColorBrightYellow)
		}
	}

	for _, gh := range g.Ghosts() {
		c := gh.Center()
		gx, gy := vp.Point(c.X, c.Y)
		if gh.Stunned() {
			dst.SetColored(gx, gy, GhostChar, core.ColorBrightMagenta)
		} else {
			dst.SetColored(gx, gy, GhostChar, core.ColorBrightWhite)
		}
	}

	if g.flashCool > g.cfg.Tools.FlashCooldown-beamTicks {
		b := g.beamCenter()
		bx, by := vp.Point(b.X, b.Y)
		dst.SetColored(bx, by, BeamChar, core.ColorBrightYellow)
	}

	p := g.player.Center()
	px, py := vp.Point(p.X, p.Y)
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)

	vibes := "OFF"
	if g.vibes {
		vibes = "ON"
	}
	left := fmt.Sprintf("Floor %d/%d  Rooms %d  Ghosts %d",
		g.mansion.FloorIndex+1, len(g.mansion.Floors), len(floor.Rooms), len(g.Ghosts()))
	hud.Bar(dst, left, "", "Vibes: "+vibes)
	hud.StatusOverlay(dst, g.State(), "MANSION CLEARED!", "ONE SHOT... GAME OVER!")
}

func (g *Game) vibeColor() core.Color {
	return vibePalette[(g.tick/vibeTicks)%len(vibePalette)]
}

// drawLine plots a Bresenham line between two cells.
func drawLine(dst *core.Screen, x0, y0, x1, y1 int, r rune, c core.Color) {
	dx := core.Abs(x1 - x0)
	dy := -core.Abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		dst.SetColored(x0, y0, r, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
