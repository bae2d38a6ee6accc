package system

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/physics"
	"github.com/lixenwraith/missile-command/timer"
	"github.com/lixenwraith/missile-command/vmath"
)

// Collide resolves every collision pair once per tick, in fixed order
// Entities already dead are skipped; the first matching collider wins
func Collide(c *Context) {
	FlyerExplosions(c)
	GroundHits(c, component.IsMissile, component.IsBattery)
	GroundHits(c, component.IsMissile, component.IsCity)
	MissileExplosions(c)
	GroundHits(c, component.IsSmartbomb, component.IsBattery)
	GroundHits(c, component.IsSmartbomb, component.IsCity)
	SmartbombExplosions(c)
}

// threats returns live attackers of the given kind
// Defense missiles never collide with the ground
func (c *Context) threats(kind core.Property) []core.Entity {
	w := c.World
	q := w.Query().With(w.PRSA).Has(kind)
	if kind == component.IsMissile {
		q.Has(component.IsIncoming)
	}
	out := q.Execute()
	live := out[:0]
	for _, e := range out {
		if !w.HasProperty(e, component.IsDead) {
			live = append(live, e)
		}
	}
	return live
}

func (c *Context) explosions() []core.Entity {
	w := c.World
	return w.Query().With(w.PRSA, w.Mask, w.Explosion).Has(component.IsExplosion).Execute()
}

// blast returns the center and current kill radius of an explosion
func (c *Context) blast(e core.Entity) (center vmath.Vec2, radius float64) {
	w := c.World
	prsa := w.PRSA.MustGet(e)
	return prsa.Pos, w.Mask.MustGet(e).Radius(prsa.Scale)
}

// FlyerExplosions stops a flyer caught in a blast, leaves it lingering and scores it
func FlyerExplosions(c *Context) {
	w := c.World
	blasts := c.explosions()

	q := w.Query().With(w.PRSA, w.Mask, w.Momentum).Has(component.IsFlyer)
	for _, f := range q.Execute() {
		if w.HasProperty(f, component.IsDead) || w.HasProperty(f, component.IsLingering) {
			continue
		}
		prsa := w.PRSA.MustGet(f)
		bounds := w.Mask.MustGet(f).Bounds(prsa.Pos, prsa.Scale)

		for _, b := range blasts {
			center, radius := c.blast(b)
			if !physics.CircleRectOverlap(center, radius, bounds) {
				continue
			}

			w.Momentum.MustGet(f).Velocity = vmath.Vec2{}
			w.SetProperty(f, component.IsLingering)
			w.Lifetime.Set(f, component.LifetimeComponent{Remaining: timer.NewCooldown(parameter.FlyerLinger)})
			c.Launch.Explosion(prsa.Pos)

			score := parameter.ScorePlane
			if w.HasProperty(f, component.IsSatellite) {
				score = parameter.ScoreSatellite
			}
			c.State.Award(score)
			break
		}
	}
}

// GroundHits resolves attackers of one kind against batteries or cities
// Hit tests use the attacker's point position against the target hitbox
func GroundHits(c *Context, attacker, ground core.Property) {
	w := c.World
	for _, a := range c.threats(attacker) {
		pos := w.PRSA.MustGet(a).Pos
		targets := w.Query().With(w.Hitbox, w.Slot).Has(ground).Execute()
		if ground == component.IsCity {
			// Ruins still stop attackers but keep their slot state
			targets = append(targets, w.Query().With(w.Hitbox, w.Slot).Has(component.IsRuin).Execute()...)
		}
		for _, t := range targets {
			if !w.Alive(t) || !physics.PointInRect(pos, w.Hitbox.MustGet(t).Rect) {
				continue
			}
			w.SetProperty(a, component.IsDead)
			slot := w.Slot.MustGet(t).ID
			switch {
			case w.HasProperty(t, component.IsRuin):
			case ground == component.IsCity:
				c.ruinCity(t, slot)
			default:
				c.destroyBattery(slot)
			}
			break
		}
	}
}

// ruinCity swaps a living city for a ruin in the same slot
func (c *Context) ruinCity(city core.Entity, slot int) {
	c.World.RemoveEntity(city)
	c.Launch.Ruin(slot)
	c.State.Cities[slot] = false
}

// destroyBattery empties a battery; its silos vanish after a short delay
func (c *Context) destroyBattery(id int) {
	w := c.World
	for _, silo := range c.State.Batteries[id] {
		if w.Alive(silo) {
			w.Lifetime.Set(silo, component.LifetimeComponent{Remaining: timer.NewCooldown(parameter.SiloDestructionLifetime)})
		}
	}
	c.State.Batteries[id] = nil
}

// MissileExplosions kills incoming missiles inside a blast radius
func MissileExplosions(c *Context) {
	w := c.World
	blasts := c.explosions()
	for _, m := range c.threats(component.IsMissile) {
		pos := w.PRSA.MustGet(m).Pos
		for _, b := range blasts {
			center, radius := c.blast(b)
			if physics.InRadius(center, radius, pos) {
				w.SetProperty(m, component.IsDead)
				c.State.Award(parameter.ScoreMissile)
				break
			}
		}
	}
}

// SmartbombExplosions kills smart bombs inside the lethal radius
// Near a growing blast a smart bomb schedules one evasive step instead
func SmartbombExplosions(c *Context) {
	w := c.World
	blasts := c.explosions()
	for _, s := range c.threats(component.IsSmartbomb) {
		pos := w.PRSA.MustGet(s).Pos
		var heading vmath.Vec2
		if m := w.Momentum.Get(s); m != nil {
			heading = m.Velocity
		}

		for _, b := range blasts {
			center, radius := c.blast(b)
			action, dodge := physics.Evade(pos, heading, center, radius, w.Explosion.MustGet(b).Growing(), &c.Evade)
			switch action {
			case physics.EvadeNone:
				continue
			case physics.EvadeLethal:
				w.SetProperty(s, component.IsDead)
				c.State.Award(parameter.ScoreSmartbomb)
			default:
				if !w.EvadeFix.HasComponent(s) {
					w.EvadeFix.Set(s, component.EvadeFixComponent{Offset: dodge})
				}
			}
			break
		}
	}
}
