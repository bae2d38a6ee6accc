package vmath

import (
	"math"
	"testing"
)

func TestNormalizeZeroSafe(t *testing.T) {
	n := Vec2{}.Normalize()
	if !n.IsZero() {
		t.Errorf("Expected zero vector, got %+v", n)
	}

	n = V2(3, 4).Normalize()
	if math.Abs(n.Len()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Len())
	}
	if math.Abs(n.X-0.6) > 1e-12 || math.Abs(n.Y-0.8) > 1e-12 {
		t.Errorf("Expected (0.6, 0.8), got %+v", n)
	}
}

func TestMoveTowards(t *testing.T) {
	tests := []struct {
		name   string
		from   Vec2
		to     Vec2
		step   float64
		expect Vec2
	}{
		{"within reach snaps", V2(0, 0), V2(3, 4), 10, V2(3, 4)},
		{"exact reach snaps", V2(0, 0), V2(3, 4), 5, V2(3, 4)},
		{"partial step", V2(0, 0), V2(10, 0), 4, V2(4, 0)},
		{"same point", V2(7, 7), V2(7, 7), 1, V2(7, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.from.MoveTowards(tt.to, tt.step)
			if got.Dist(tt.expect) > 1e-9 {
				t.Errorf("Expected %+v, got %+v", tt.expect, got)
			}
		})
	}
}

func TestPerpendicularIsOrthogonal(t *testing.T) {
	v := V2(2, -5)
	if d := v.Dot(v.Perpendicular()); d != 0 {
		t.Errorf("Expected dot 0, got %f", d)
	}
}

func TestRectContainsAndInflate(t *testing.T) {
	r := RectAt(V2(100, 100), 22, 12)
	if !r.Contains(V2(100, 100)) {
		t.Error("Expected center to be inside")
	}
	if r.Contains(V2(111, 100)) {
		t.Error("Expected right edge to be exclusive")
	}
	if !r.Contains(V2(89, 94)) {
		t.Error("Expected top-left corner to be inside")
	}

	big := r.Inflate(10, 10)
	if big.Center() != r.Center() {
		t.Errorf("Expected inflate to keep center, got %+v", big.Center())
	}
	if big.W != 32 || big.H != 22 {
		t.Errorf("Expected 32x22, got %.0fx%.0f", big.W, big.H)
	}
}

func TestClamp(t *testing.T) {
	r := Rect{X: 0, Y: 0, W: 10, H: 10}
	got := V2(-5, 20).Clamp(r)
	if got != V2(0, 10) {
		t.Errorf("Expected (0,10), got %+v", got)
	}
}
