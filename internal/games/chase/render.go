package chase

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/hud"
)

// Visual characters for rendering
const (
	RoadChar   = '░'
	PlayerChar = '▣'
	CarChar    = '▪'
	CopChar    = '■'
)

const (
	minScreenW = 40
	minScreenH = 14

	// Street grid in world units
	roadFirst = 60
	roadPitch = 120
	roadWidth = 48
)

// Render draws the streets, traffic, police and player.
func (g *Game) Render(dst *core.Screen) {
	if hud.TooSmall(dst, minScreenW, minScreenH) {
		return
	}

	a := g.arena()
	vp := core.NewViewport(a, dst.Width(), dst.Height(), hud.Rows)

	for y := float64(roadFirst); y < a.Bottom(); y += roadPitch {
		dst.DrawRectColored(vp.Rect(core.NewBox(0, y, a.W, roadWidth)), RoadChar, core.ColorGray)
	}
	for x := float64(roadFirst); x < a.Right(); x += roadPitch {
		dst.DrawRectColored(vp.Rect(core.NewBox(x, 0, roadWidth, a.H)), RoadChar, core.ColorGray)
	}

	for _, car := range g.cars {
		dst.DrawRectColored(vp.Rect(car.Box()), CarChar, core.ColorBrightYellow)
	}
	for _, cop := range g.cops {
		dst.DrawRectColored(vp.Rect(cop.Box()), CopChar, core.ColorBrightRed)
	}
	dst.DrawRectColored(vp.Rect(g.player.Box()), PlayerChar, core.ColorBrightCyan)

	stars := strings.Repeat("★", g.wanted) + strings.Repeat("·", max(g.cfg.Gameplay.MaxWanted-g.wanted, 0))
	left := fmt.Sprintf("HP: %d  Wanted: %s", max(g.hp, 0), stars)
	right := fmt.Sprintf("%ds", g.State().Progress)
	hud.Bar(dst, left, "", right)
	hud.StatusOverlay(dst, g.State(), "YOU GOT AWAY!", "BUSTED!")
}
