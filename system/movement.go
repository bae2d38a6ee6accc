package system

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/physics"
)

// Momentum integrates position: pos += momentum*dt
func Momentum(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.Momentum), func(dt float64, e core.Entity) {
		prsa := w.PRSA.MustGet(e)
		prsa.Pos = prsa.Pos.Add(w.Momentum.MustGet(e).Velocity.Scale(dt))
	})
}

// EvadeFix applies a pending one-shot dodge and consumes it
func EvadeFix(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.EvadeFix), func(_ float64, e core.Entity) {
		prsa := w.PRSA.MustGet(e)
		prsa.Pos = prsa.Pos.Add(w.EvadeFix.MustGet(e).Offset)
		w.EvadeFix.RemoveComponent(e)
	})
}

// Aim re-steers smart bombs toward their target at their own speed
func Aim(c *Context, dt float64) {
	w := c.World
	q := w.Query().
		With(w.PRSA, w.Target, w.Momentum, w.Speed).
		Has(component.IsSmartbomb)
	w.RunSystem(dt, q, func(_ float64, e core.Entity) {
		w.Momentum.MustGet(e).Velocity = physics.Aim(
			w.PRSA.MustGet(e).Pos, w.Target.MustGet(e).Pos, w.Speed.MustGet(e).Value)
	})
}

// Overshoot snaps entities that passed their target back onto it and kills them
func Overshoot(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.Momentum, w.Target), func(dt float64, e core.Entity) {
		prsa := w.PRSA.MustGet(e)
		target := w.Target.MustGet(e).Pos
		if physics.Overshot(prsa.Pos, w.Momentum.MustGet(e).Velocity, target, dt) {
			prsa.Pos = target
			w.SetProperty(e, component.IsDead)
		}
	})
}

// Trail records the segment from the previous tail to the current position
func Trail(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.Trail), func(_ float64, e core.Entity) {
		pos := w.PRSA.MustGet(e).Pos
		trail := w.Trail.MustGet(e)
		if trail.Tail() != pos {
			trail.Append(pos)
		}
	})
}

// TargetReached kills entities sitting exactly on their target
func TargetReached(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.Target), func(_ float64, e core.Entity) {
		if w.PRSA.MustGet(e).Pos == w.Target.MustGet(e).Pos {
			w.SetProperty(e, component.IsDead)
		}
	})
}
