package platformer

import (
	"fmt"

	"github.com/vovakirdan/vibe-arcade/internal/config"
	"github.com/vovakirdan/vibe-arcade/internal/core"
	"github.com/vovakirdan/vibe-arcade/internal/sim"
)

// World describes a themed group of levels.
type World struct {
	Name  string
	Color core.Color
}

// Worlds is the world catalogue. Campaigns with more worlds reuse the
// themes in order.
var Worlds = []World{
	{Name: "Grasslands", Color: core.ColorGreen},
	{Name: "Desert", Color: core.ColorYellow},
	{Name: "Snowfield", Color: core.ColorBrightWhite},
	{Name: "Seaside", Color: core.ColorCyan},
	{Name: "Sky Realm", Color: core.ColorBrightBlue},
}

// WorldAt returns the theme of world index i.
func WorldAt(i int) World {
	w := Worlds[i%len(Worlds)]
	if i >= len(Worlds) {
		w.Name = fmt.Sprintf("%s %d", w.Name, i/len(Worlds)+1)
	}
	return w
}

// Level is one stage of the campaign. The last level of each world is a
// castle guarded by a boss.
type Level struct {
	World  int
	Index  int
	Castle bool
	Length float64    // Level width in world units
	Tiles  []core.Box // Static geometry
	Player *sim.Actor
	Boss   *sim.Actor // nil outside castles
	Scroll float64    // Camera left edge
}

// NewLevel builds level index of world with fresh geometry and entities.
func NewLevel(cfg config.PlatformerConfig, world, index int, bossSpeed float64) *Level {
	w, h := cfg.Screen.Width, cfg.Screen.Height
	tile := cfg.Physics.Tile

	lv := &Level{
		World:  world,
		Index:  index,
		Castle: index == cfg.Campaign.LevelsPerWorld-1,
		Length: w * float64(cfg.Campaign.LengthScreens),
	}

	// Ground: a row of double-height tiles across the whole level
	groundY := h - 2*tile
	for x := 0.0; x < lv.Length; x += tile {
		lv.Tiles = append(lv.Tiles, core.NewBox(x, groundY, tile, 2*tile))
	}

	p := cfg.Player
	lv.Player = sim.NewPlayer(2*tile, h-3*tile, p.Width, p.Height, cfg.Physics.RunSpeed)

	if lv.Castle {
		b := cfg.Boss
		lv.Boss = sim.NewBoss(w-5*tile, h-4*tile, b.Width, b.Height, bossSpeed, b.HP, b.JumpChance, b.JumpSpeed)
	}
	return lv
}

// BossActive reports whether a boss still guards the level.
func (lv *Level) BossActive() bool {
	return lv.Boss != nil && !lv.Boss.Defeated()
}

// UpdateCamera keeps the player a third of the way across the screen,
// without showing anything past either end of the level.
func (lv *Level) UpdateCamera(screenW float64) {
	lv.Scroll = core.ClampF(lv.Player.Center().X-screenW/3, 0, max(lv.Length-screenW, 0))
}

// AtGoal reports whether the player's on-screen right edge has reached
// goalX. Castle levels also need the boss defeated.
func (lv *Level) AtGoal(goalX float64) bool {
	return lv.Player.Right()-lv.Scroll >= goalX && !lv.BossActive()
}
