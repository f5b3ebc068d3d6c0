package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/games/hud"
)

// Visual characters for rendering
const (
	TileChar   = '▓'
	PlayerChar = '█'
	BossChar   = '▒'
	GoalChar   = '|'
)

const (
	minScreenW = 32
	minScreenH = 14
)

// Render draws the visible part of the level.
func (g *Game) Render(dst *core.Screen) {
	if hud.TooSmall(dst, minScreenW, minScreenH) {
		return
	}

	lv := g.level
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	vp := core.NewViewport(core.NewBox(lv.Scroll, 0, w, h), dst.Width(), dst.Height(), hud.Rows)
	world := WorldAt(lv.World)

	for _, t := range lv.Tiles {
		if t.Right() <= lv.Scroll || t.Left() >= lv.Scroll+w {
			continue
		}
		dst.DrawRectColored(vp.Rect(t), TileChar, world.Color)
	}

	// Goal post at the far end of the level
	if !lv.BossActive() {
		gx, _ := vp.Point(lv.Length-g.cfg.Physics.Tile, 0)
		dst.DrawVLine(gx, hud.Rows, dst.Height()-hud.Rows, GoalChar)
	}

	if b := lv.Boss; b != nil && b.Y < h {
		c := core.ColorOrange
		if b.Defeated() {
			c = core.ColorGray
		}
		dst.DrawRectColored(vp.Rect(b.Box()), BossChar, c)
	}

	dst.DrawRectColored(vp.Rect(lv.Player.Box()), PlayerChar, core.ColorBrightRed)

	left := fmt.Sprintf("World %d-%d %s", lv.World+1, lv.Index+1, world.Name)
	right := ""
	if lv.Boss != nil {
		hp := lv.Boss.Boss.HP
		right = "Boss: " + strings.Repeat("●", hp) + strings.Repeat("○", max(g.cfg.Boss.HP-hp, 0))
	}
	hud.Bar(dst, left, hud.Hearts(g.hp), right)

	g.renderOverlay(dst)
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.status == core.StatusLevelComplete && g.finalLevel():
		hud.Box(dst, "YOU BEAT THE GAME!", "Press R to play again", core.ColorBrightGreen)
	case g.status == core.StatusLevelComplete:
		hud.Box(dst, "LEVEL CLEAR!", "Press Enter for the next level", core.ColorBrightGreen)
	default:
		hud.StatusOverlay(dst, g.State(), "", "GAME OVER")
	}
}
