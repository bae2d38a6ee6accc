package component

import "github.com/lixenwraith/missile-command/vmath"

// TargetComponent is the destination point of a missile or smart bomb
type TargetComponent struct {
	Pos vmath.Vec2
}
