package render

import (
	"math"

	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
)

// Canvas maps the logical play area onto a grid of terminal cells
// The last row is reserved for the status line
type Canvas struct {
	Cols, Rows int
}

// Resize adopts a new terminal size
func (c *Canvas) Resize(w, h int) {
	c.Cols = max(w, 1)
	c.Rows = max(h-1, 1)
}

// Cell returns the cell holding logical point p; ok is false off-grid
func (c Canvas) Cell(p vmath.Vec2) (x, y int, ok bool) {
	x = int(math.Floor(p.X * float64(c.Cols) / parameter.ScreenWidth))
	y = int(math.Floor(p.Y * float64(c.Rows) / parameter.ScreenHeight))
	return x, y, x >= 0 && x < c.Cols && y >= 0 && y < c.Rows
}

// Logical returns the logical point at the center of cell (x, y)
func (c Canvas) Logical(x, y int) vmath.Vec2 {
	return vmath.V2(
		(float64(x)+0.5)*parameter.ScreenWidth/float64(c.Cols),
		(float64(y)+0.5)*parameter.ScreenHeight/float64(c.Rows),
	)
}

// CellSize returns the logical extent of one cell
func (c Canvas) CellSize() vmath.Vec2 {
	return vmath.V2(parameter.ScreenWidth/float64(c.Cols), parameter.ScreenHeight/float64(c.Rows))
}
