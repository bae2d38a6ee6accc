package component

import "github.com/lixenwraith/missile-command/vmath"

// PRSAComponent is the authoritative world transform
// Scale doubles as collision radius driver for explosions
type PRSAComponent struct {
	Pos      vmath.Vec2
	Rotation float64 // Degrees
	Scale    float64
	Alpha    float64 // 0..255
}

// NewPRSA returns a transform at pos with unit scale and full alpha
func NewPRSA(pos vmath.Vec2) PRSAComponent {
	return PRSAComponent{Pos: pos, Scale: 1, Alpha: 255}
}
