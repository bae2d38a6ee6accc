package component

import "github.com/lixenwraith/missile-command/timer"

// ExplosionComponent drives explosion growth and shrink
// Loop 0 of the curve is the growing stage, loop 1 the shrinking stage
type ExplosionComponent struct {
	Curve timer.LerpThing
}

// Growing reports whether the explosion is in its first stage
func (e *ExplosionComponent) Growing() bool {
	return e.Curve.Loop() == 0 && !e.Curve.Finished()
}
