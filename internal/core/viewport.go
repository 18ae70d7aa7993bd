package core

import "math"

// CellAspect is the height of a terminal cell relative to its width.
const CellAspect = 2.0

// Viewport maps the logical canvas onto a rectangle of display cells.
// It plays the role of the scaled canvas element: the canvas keeps its
// logical size while the display area follows the terminal.
type Viewport struct {
	Col, Row   int // Top-left display cell of the canvas area
	Cols, Rows int // Size of the canvas area in cells
	CanvasW    float64
	CanvasH    float64
}

// FitViewport returns the largest viewport with the canvas aspect ratio that
// fits in availCols × availRows cells, anchored at (col, row).
func FitViewport(col, row, availCols, availRows int, canvasW, canvasH float64) Viewport {
	availCols = Max(availCols, 1)
	availRows = Max(availRows, 1)

	// A square canvas needs twice as many columns as rows.
	cols := availCols
	rows := int(math.Round(float64(cols) * canvasH / canvasW / CellAspect))
	if rows > availRows {
		rows = availRows
		cols = int(math.Round(float64(rows) * CellAspect * canvasW / canvasH))
	}

	return Viewport{
		Col:     col,
		Row:     row,
		Cols:    Max(cols, 1),
		Rows:    Max(rows, 1),
		CanvasW: canvasW,
		CanvasH: canvasH,
	}
}

// UnitsPerCol returns the canvas width covered by one display column.
func (v Viewport) UnitsPerCol() float64 {
	return v.CanvasW / float64(v.Cols)
}

// UnitsPerRow returns the canvas height covered by one display row.
func (v Viewport) UnitsPerRow() float64 {
	return v.CanvasH / float64(v.Rows)
}

// ToCanvas maps a display cell to the canvas point at the cell's center.
// The second return value reports whether the cell is inside the viewport;
// the point is returned either way so drags can leave the play field.
func (v Viewport) ToCanvas(col, row int) (Vec2, bool) {
	localCol := col - v.Col
	localRow := row - v.Row
	p := Vec2{
		X: (float64(localCol) + 0.5) * v.UnitsPerCol(),
		Y: (float64(localRow) + 0.5) * v.UnitsPerRow(),
	}
	cells := Rect{W: float64(v.Cols), H: float64(v.Rows)}
	return p, cells.Contains(float64(localCol), float64(localRow))
}

// CellCenter returns the canvas point at the center of a viewport-local cell.
func (v Viewport) CellCenter(localCol, localRow int) Vec2 {
	return Vec2{
		X: (float64(localCol) + 0.5) * v.UnitsPerCol(),
		Y: (float64(localRow) + 0.5) * v.UnitsPerRow(),
	}
}

// CellOf returns the viewport-local cell containing a canvas point.
func (v Viewport) CellOf(p Vec2) (int, int) {
	return int(math.Floor(p.X / v.UnitsPerCol())), int(math.Floor(p.Y / v.UnitsPerRow()))
}
