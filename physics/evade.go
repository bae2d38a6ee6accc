package physics

import "github.com/lixenwraith/missile-command/vmath"

// EvadeProfile defines how smart bombs react to nearby explosions
type EvadeProfile struct {
	LethalFactor float64 // Kill radius = explosion radius * LethalFactor
	DangerMargin float64 // Evasion starts within explosion radius + DangerMargin
	CloseMargin  float64 // Radial dodge within kill radius + CloseMargin
	Dodge        float64 // Length of one evasive displacement
}

// EvadeAction is the outcome of an explosion proximity check
type EvadeAction uint8

const (
	EvadeNone EvadeAction = iota
	EvadeLethal
	EvadeLateral
	EvadeRadial
)

// Evade classifies a smart bomb against one explosion and computes the dodge
// growing gates evasion: a shrinking explosion is ignored unless lethal
func Evade(pos, heading, blast vmath.Vec2, radius float64, growing bool, p *EvadeProfile) (EvadeAction, vmath.Vec2) {
	lethal := radius * p.LethalFactor
	if InRadius(blast, lethal, pos) {
		return EvadeLethal, vmath.Vec2{}
	}

	if !growing || !InRadius(blast, radius+p.DangerMargin, pos) {
		return EvadeNone, vmath.Vec2{}
	}

	away := pos.Sub(blast)

	if InRadius(blast, lethal+p.CloseMargin, pos) {
		dir := away.Normalize()
		if dir.IsZero() {
			dir = heading.Normalize().Perpendicular()
		}
		return EvadeRadial, dir.Scale(p.Dodge)
	}

	side := heading.Normalize().Perpendicular()
	if side.IsZero() {
		side = away.Normalize()
	}
	// Sidestep to the side facing away from the blast
	if side.Dot(away) < 0 {
		side = side.Scale(-1)
	}
	return EvadeLateral, side.Scale(p.Dodge)
}
