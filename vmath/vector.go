package vmath

import "math"

// Vec2 is a float64 2D vector in logical screen space
// Y grows downward, matching the 256x240 play field
type Vec2 struct {
	X, Y float64
}

// V2 is shorthand for Vec2{x, y}
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LenSq returns squared magnitude without sqrt
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

func (v Vec2) Len() float64 {
	return math.Sqrt(v.LenSq())
}

// Dist returns the euclidean distance between two points
func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

// IsZero reports whether both components are exactly zero
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalize returns the unit vector, zero-safe
// Degenerate input yields the zero vector instead of NaN
func (v Vec2) Normalize() Vec2 {
	mag := v.Len()
	if mag == 0 {
		return Vec2{}
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}
}

// Perpendicular returns the vector rotated 90 degrees counter-clockwise
func (v Vec2) Perpendicular() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Direction returns the unit vector from v toward target, zero-safe
func (v Vec2) Direction(target Vec2) Vec2 {
	return target.Sub(v).Normalize()
}

// MoveTowards steps from v toward target by at most maxStep
// Returns target exactly when within reach
func (v Vec2) MoveTowards(target Vec2, maxStep float64) Vec2 {
	delta := target.Sub(v)
	dist := delta.Len()
	if dist <= maxStep || dist == 0 {
		return target
	}
	return v.Add(delta.Scale(maxStep / dist))
}

// Clamp restricts v to the rectangle r
func (v Vec2) Clamp(r Rect) Vec2 {
	return Vec2{
		X: math.Max(r.Left(), math.Min(v.X, r.Right())),
		Y: math.Max(r.Top(), math.Min(v.Y, r.Bottom())),
	}
}
