package component

import "github.com/lixenwraith/missile-command/vmath"

// MomentumComponent is the velocity applied each tick, pixels per second
type MomentumComponent struct {
	Velocity vmath.Vec2
}

// SpeedComponent drives entities whose momentum is recomputed every tick
// Smart bombs carry it; missiles fix momentum at spawn instead
type SpeedComponent struct {
	Value float64
}

// EvadeFixComponent is a one-shot displacement applied on the next tick
type EvadeFixComponent struct {
	Offset vmath.Vec2
}
