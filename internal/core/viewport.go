package core

import "math"

// Viewport maps world coordinates onto screen cells.
// Games simulate in world units and draw through a viewport sized to the
// current terminal, so a resize never touches simulation state.
type Viewport struct {
	World   Box // Visible world region
	Cols    int // Screen columns available
	Rows    int // Screen rows available
	OffsetY int // First screen row used (rows above are HUD)
}

// NewViewport fits a world region into cols x rows cells below a HUD of hudRows.
func NewViewport(world Box, cols, rows, hudRows int) Viewport {
	return Viewport{World: world, Cols: cols, Rows: max(rows-hudRows, 1), OffsetY: hudRows}
}

// Point maps a world point to a screen cell.
func (v Viewport) Point(x, y float64) (int, int) {
	if v.World.W <= 0 || v.World.H <= 0 {
		return 0, v.OffsetY
	}
	cx := int(math.Floor((x - v.World.X) / v.World.W * float64(v.Cols)))
	cy := int(math.Floor((y - v.World.Y) / v.World.H * float64(v.Rows)))
	return cx, cy + v.OffsetY
}

// Rect maps a world box to a screen rectangle at least one cell in size.
func (v Viewport) Rect(b Box) Rect {
	x0, y0 := v.Point(b.Left(), b.Top())
	x1, y1 := v.Point(b.Right(), b.Bottom())
	return NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
