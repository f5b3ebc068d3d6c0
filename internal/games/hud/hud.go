// Package hud draws the text overlays shared by the games: the top status
// bar, centred message boxes and the window-too-small notice.
package hud

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/vovakirdan/vibe-arcade/internal/core"
)

// Rows is the number of screen rows the status bar occupies.
const Rows = 1

// Bar draws left, centre and right aligned text on row 0.
func Bar(dst *core.Screen, left, center, right string) {
	dst.DrawTextColored(1, 0, left, core.ColorBrightWhite)
	if center != "" {
		dst.DrawTextCentered(0, center)
	}
	if right != "" {
		dst.DrawTextColored(dst.Width()-runewidth.StringWidth(right)-1, 0, right, core.ColorBrightWhite)
	}
}

// Box draws a bordered message box in the middle of the screen.
func Box(dst *core.Screen, title, subtitle string, c core.Color) {
	boxW := max(runewidth.StringWidth(title), runewidth.StringWidth(subtitle)) + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	r := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(r, ' ')
	dst.DrawBoxColored(r, c)

	dst.DrawTextColored(boxX+(boxW-runewidth.StringWidth(title))/2, boxY+1, title, c)
	dst.DrawText(boxX+(boxW-runewidth.StringWidth(subtitle))/2, boxY+3, subtitle)
}

// StatusOverlay draws the box for paused and terminal states.
// Nothing is drawn while the game is running.
func StatusOverlay(dst *core.Screen, st core.GameState, won, lost string) {
	switch {
	case st.Status == core.StatusGameOver:
		Box(dst, lost, "Press R to restart", core.ColorBrightRed)
	case st.Status == core.StatusLevelComplete:
		Box(dst, won, "Press R to restart", core.ColorBrightGreen)
	case st.Paused:
		Box(dst, "PAUSED", "Press P to resume", core.ColorBrightYellow)
	}
}

// TooSmall draws a notice and returns true when dst is below minW x minH.
func TooSmall(dst *core.Screen, minW, minH int) bool {
	if dst.Width() >= minW && dst.Height() >= minH {
		return false
	}
	dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
	dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minW, minH))
	return true
}

// Hearts renders an HP counter.
func Hearts(hp int) string {
	if hp <= 0 {
		return "HP: -"
	}
	if hp > 10 {
		return fmt.Sprintf("HP: %d", hp)
	}
	s := "HP: "
	for range hp {
		s += "♥"
	}
	return s
}
