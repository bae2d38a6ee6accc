package physics

import "github.com/lixenwraith/missile-command/vmath"

// Aim returns the momentum that moves pos toward target at speed
// Degenerate direction (pos == target) falls back to zero momentum
func Aim(pos, target vmath.Vec2, speed float64) vmath.Vec2 {
	return pos.Direction(target).Scale(speed)
}

// Overshot reports whether the last step carried pos past target
// True when the remaining distance is below one step of momentum
// and momentum now points away from the target
func Overshot(pos, momentum, target vmath.Vec2, dt float64) bool {
	step := momentum.Len() * dt
	if step == 0 {
		return false
	}
	toTarget := target.Sub(pos)
	return toTarget.Len() < step && toTarget.Dot(momentum) < 0
}
