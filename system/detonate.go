package system

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
)

// Detonate spawns an explosion for every dead threat that was not culled
// A lingering flyer already exploded when it was hit
func Detonate(c *Context, dt float64) {
	w := c.World
	for _, kind := range []core.Property{component.IsFlyer, component.IsMissile, component.IsSmartbomb} {
		q := w.Query().With(w.PRSA).Has(kind, component.IsDead)
		w.RunSystem(dt, q, func(_ float64, e core.Entity) {
			if w.HasProperty(e, component.IsCulled) || w.HasProperty(e, component.IsLingering) {
				return
			}
			c.Launch.Explosion(w.PRSA.MustGet(e).Pos)
		})
	}
}
