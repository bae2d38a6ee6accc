package physics

import (
	"math"

	"github.com/lixenwraith/missile-command/vmath"
)

// PointInRect is the hit test for cities and batteries
func PointInRect(p vmath.Vec2, r vmath.Rect) bool {
	return r.Contains(p)
}

// InRadius reports whether p lies strictly inside the circle
func InRadius(center vmath.Vec2, radius float64, p vmath.Vec2) bool {
	return center.Sub(p).LenSq() < radius*radius
}

// CircleRectOverlap reports whether a circle and rectangle intersect
// Used for scaled explosion masks against flyer masks
func CircleRectOverlap(center vmath.Vec2, radius float64, r vmath.Rect) bool {
	nx := math.Max(r.Left(), math.Min(center.X, r.Right()))
	ny := math.Max(r.Top(), math.Min(center.Y, r.Bottom()))
	return InRadius(center, radius, vmath.V2(nx, ny))
}
