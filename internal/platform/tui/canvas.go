package tui

import (
	"math"

	"github.com/vovakirdan/hugrun/internal/core"
)

// Glyphs used to rasterize the scene.
const (
	glyphEmpty    = ' '
	glyphObstacle = '█'
	glyphAvatar   = '●'
	glyphGoal     = '♥'
)

// DrawScene rasterizes a scene into dst inside the viewport, framed by a
// border one cell outside it. Elements are drawn back to front: obstacles,
// goal, player, then the overlay.
func DrawScene(dst *core.Screen, scene core.Scene, vp core.Viewport) {
	dst.FillCells(vp.Col, vp.Row, vp.Cols, vp.Rows, glyphEmpty, core.ColorDefault)
	dst.DrawBox(vp.Col-1, vp.Row-1, vp.Cols+2, vp.Rows+2, core.ColorGray)

	for _, b := range scene.Obstacles {
		drawBlock(dst, b, vp)
	}
	drawAvatar(dst, scene.Goal, vp, glyphGoal, false)
	drawAvatar(dst, scene.Player, vp, glyphAvatar, true)

	if scene.Overlay != nil {
		drawOverlay(dst, *scene.Overlay, vp)
	}
}

// cellBounds returns the canvas area covered by a viewport-local cell.
func cellBounds(vp core.Viewport, col, row int) core.Rect {
	w, h := vp.UnitsPerCol(), vp.UnitsPerRow()
	return core.NewRect(float64(col)*w, float64(row)*h, w, h)
}

// drawBlock fills every cell the rectangle overlaps, so thin obstacles never
// vanish between cell centers.
func drawBlock(dst *core.Screen, b core.Block, vp core.Viewport) {
	c0, r0 := vp.CellOf(core.Vec2{X: b.Box.X, Y: b.Box.Y})
	c1, r1 := vp.CellOf(core.Vec2{X: b.Box.Right(), Y: b.Box.Bottom()})

	for row := max(r0, 0); row <= min(r1, vp.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, vp.Cols-1); col++ {
			if cellBounds(vp, col, row).Intersects(b.Box) {
				dst.SetColor(vp.Col+col, vp.Row+row, glyphObstacle, b.Color)
			}
		}
	}
}

// drawAvatar draws the circle inscribed in the avatar's box. With a mouth,
// the wedge of half-angle MouthAngle facing right is left open.
func drawAvatar(dst *core.Screen, a core.Avatar, vp core.Viewport, glyph rune, mouth bool) {
	center := a.Box.Center()
	radius := a.Box.W / 2

	c0, r0 := vp.CellOf(core.Vec2{X: a.Box.X, Y: a.Box.Y})
	c1, r1 := vp.CellOf(core.Vec2{X: a.Box.Right(), Y: a.Box.Bottom()})

	drawn := false
	for row := max(r0, 0); row <= min(r1, vp.Rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, vp.Cols-1); col++ {
			d := vp.CellCenter(col, row).Sub(center)
			if d.Len() > radius {
				continue
			}
			if mouth && a.MouthAngle > 0 && d.Len() > 0 && math.Abs(math.Atan2(d.Y, d.X)) < a.MouthAngle {
				continue
			}
			dst.SetColor(vp.Col+col, vp.Row+row, glyph, a.Color)
			drawn = true
		}
	}

	// Tiny viewports: keep the avatar visible as a single cell.
	if !drawn {
		col, row := vp.CellOf(center)
		if col >= 0 && col < vp.Cols && row >= 0 && row < vp.Rows {
			dst.SetColor(vp.Col+col, vp.Row+row, glyph, a.Color)
		}
	}
}

// drawOverlay draws a framed message box centered in the viewport.
func drawOverlay(dst *core.Screen, o core.Overlay, vp core.Viewport) {
	w := max(len([]rune(o.Title)), len([]rune(o.Prompt))) + 4
	h := 4
	x := vp.Col + (vp.Cols-w)/2
	y := vp.Row + (vp.Rows-h)/2

	dst.FillCells(x, y, w, h, glyphEmpty, core.ColorDefault)
	dst.DrawBox(x, y, w, h, o.Color)
	dst.DrawText(x+(w-len([]rune(o.Title)))/2, y+1, o.Title, o.Color)
	dst.DrawText(x+(w-len([]rune(o.Prompt)))/2, y+2, o.Prompt, core.ColorWhite)
}
