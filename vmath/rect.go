package vmath

// Rect is an axis-aligned rectangle, origin at top-left
type Rect struct {
	X, Y, W, H float64
}

// RectAt returns a w by h rectangle centered on c
func RectAt(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of the rectangle
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Contains reports whether p lies inside r
// Right and bottom edges are exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Inflate grows the rectangle by dx, dy on each axis, keeping the center
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx/2, Y: r.Y - dy/2, W: r.W + dx, H: r.H + dy}
}
