package component

import "github.com/lixenwraith/missile-command/vmath"

// MaskComponent approximates a sprite shape for overlap tests
// Width and Height are unscaled pixel extents; explosions use Width/2 as radius
type MaskComponent struct {
	Width, Height float64
}

// Radius returns the circle radius at the given scale
func (m MaskComponent) Radius(scale float64) float64 {
	return m.Width / 2 * scale
}

// Bounds returns the mask rectangle centered at pos
func (m MaskComponent) Bounds(pos vmath.Vec2, scale float64) vmath.Rect {
	return vmath.RectAt(pos, m.Width*scale, m.Height*scale)
}

// HitboxComponent is a static rectangle for cities and batteries
type HitboxComponent struct {
	Rect vmath.Rect
}

// ContainerComponent is the area an entity must stay in
type ContainerComponent struct {
	Rect vmath.Rect
}
