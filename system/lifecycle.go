package system

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
)

// Explosions advances every blast curve into its scale
// A finished curve marks the explosion dead
func Explosions(c *Context, dt float64) {
	w := c.World
	q := w.Query().With(w.Explosion, w.PRSA).Has(component.IsExplosion)
	w.RunSystem(dt, q, func(dt float64, e core.Entity) {
		ex := w.Explosion.MustGet(e)
		ex.Curve.Tick(dt)
		w.PRSA.MustGet(e).Scale = ex.Curve.Value()
		if ex.Curve.Finished() {
			w.SetProperty(e, component.IsDead)
		}
	})
}

// Container culls entities that left their roaming area
// Culled entities die without detonating
func Container(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.PRSA, w.Container), func(_ float64, e core.Entity) {
		if !w.Container.MustGet(e).Rect.Contains(w.PRSA.MustGet(e).Pos) {
			w.SetProperty(e, component.IsDead, component.IsCulled)
		}
	})
}

// Lifetime counts down and kills on expiry
func Lifetime(c *Context, dt float64) {
	w := c.World
	w.RunSystem(dt, w.Query().With(w.Lifetime), func(dt float64, e core.Entity) {
		lt := w.Lifetime.MustGet(e)
		lt.Remaining.Tick(dt)
		if lt.Remaining.Cold() {
			w.SetProperty(e, component.IsDead)
		}
	})
}
