// Package launcher creates fully assembled game entities
// Every factory returns the new entity id; callers own slot bookkeeping
package launcher

import (
	"math/rand"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/physics"
	"github.com/lixenwraith/missile-command/timer"
	"github.com/lixenwraith/missile-command/vmath"
	"github.com/lixenwraith/missile-command/wave"
)

// Launcher bundles the dependencies every factory needs
type Launcher struct {
	World *engine.World
	Rand  *rand.Rand
	Sound engine.SoundPlayer
}

func New(w *engine.World, rng *rand.Rand, sound engine.SoundPlayer) *Launcher {
	if sound == nil {
		sound = engine.NopSound{}
	}
	return &Launcher{World: w, Rand: rng, Sound: sound}
}

// Battery creates the battery entity and its silo pyramid
// Returns the silo entities in launch order (last is fired first)
func (l *Launcher) Battery(id int) []core.Entity {
	w := l.World
	pos := parameter.PosBatteries[id]

	e := w.CreateEntity()
	w.SetProperty(e, component.IsBattery)
	w.PRSA.Set(e, component.NewPRSA(pos))
	w.Slot.Set(e, component.SlotComponent{ID: id, Battery: id})
	w.Hitbox.Set(e, component.HitboxComponent{Rect: parameter.HitboxBattery(id)})

	n := len(parameter.SiloOffsets)
	silos := make([]core.Entity, 0, n)
	for i, offset := range parameter.SiloOffsets {
		silos = append(silos, l.Silo(id*n+i, id, pos.Add(parameter.BatterySiloOffset).Add(offset)))
	}
	return silos
}

// Silo creates one unit of battery ammunition
func (l *Launcher) Silo(id, battery int, pos vmath.Vec2) core.Entity {
	w := l.World
	e := w.CreateEntity()
	w.SetProperty(e, component.IsSilo)
	w.PRSA.Set(e, component.NewPRSA(pos))
	w.Slot.Set(e, component.SlotComponent{ID: id, Battery: battery})
	return e
}

// City creates a living city in the given slot
func (l *Launcher) City(slot int) core.Entity {
	return l.settlement(slot, component.IsCity)
}

// Ruin creates a destroyed city in the given slot
func (l *Launcher) Ruin(slot int) core.Entity {
	return l.settlement(slot, component.IsRuin)
}

func (l *Launcher) settlement(slot int, kind core.Property) core.Entity {
	w := l.World
	e := w.CreateEntity()
	w.SetProperty(e, kind)
	w.PRSA.Set(e, component.NewPRSA(parameter.PosCities[slot]))
	w.Slot.Set(e, component.SlotComponent{ID: slot, Battery: -1})
	w.Hitbox.Set(e, component.HitboxComponent{Rect: parameter.HitboxCity(slot)})
	return e
}

// Missile launches an incoming or defense missile
// Momentum is fixed at launch; a degenerate aim yields zero momentum
func (l *Launcher) Missile(start, dest vmath.Vec2, speed float64, incoming bool, shutdown *component.ShutdownComponent) core.Entity {
	w := l.World
	e := w.CreateEntity()

	w.SetProperty(e, component.IsMissile, component.IsTrail)
	if incoming {
		w.SetProperty(e, component.IsIncoming)
	} else {
		w.SetProperty(e, component.IsDefense)
	}

	w.PRSA.Set(e, component.NewPRSA(start))
	w.Momentum.Set(e, component.MomentumComponent{Velocity: physics.Aim(start, dest, speed)})
	w.Target.Set(e, component.TargetComponent{Pos: dest})
	w.Trail.Set(e, component.NewTrail(start))
	if shutdown != nil {
		w.Shutdown.Set(e, *shutdown)
	}
	return e
}

// Explosion spawns a blast that grows for ExplosionDuration then shrinks
func (l *Launcher) Explosion(pos vmath.Vec2) core.Entity {
	w := l.World
	e := w.CreateEntity()

	prsa := component.NewPRSA(pos)
	prsa.Scale = parameter.ExplosionScaleMin

	w.SetProperty(e, component.IsExplosion)
	w.PRSA.Set(e, prsa)
	w.Explosion.Set(e, component.ExplosionComponent{
		Curve: timer.NewLerp(parameter.ExplosionScaleMin, parameter.ExplosionScaleMax,
			parameter.ExplosionDuration, timer.RepeatBounce, 2),
	})
	w.Mask.Set(e, component.MaskComponent{Width: parameter.ExplosionMaskWidth, Height: parameter.ExplosionMaskWidth})

	l.Sound.Play(engine.SoundExplosion, 0)
	return e
}

// Flyer spawns the single plane or satellite of a wave
// Returns ErrDuplicateEntity if a flyer is already alive
func (l *Launcher) Flyer(row wave.FlyerRow) (core.Entity, error) {
	w := l.World
	e, err := w.CreateNamedEntity(parameter.FlyerName)
	if err != nil {
		return core.NoEntity, err
	}

	kind, speed := component.IsPlane, float64(parameter.PlaneSpeed)
	mask := component.MaskComponent{Width: parameter.PlaneMaskW, Height: parameter.PlaneMaskH}
	if l.Rand.Intn(2) == 1 {
		kind, speed = component.IsSatellite, parameter.SatelliteSpeed
		mask = component.MaskComponent{Width: parameter.SatelliteMaskW, Height: parameter.SatelliteMaskH}
	}

	lo, hi := row.MaxHeight, row.MinHeight
	if lo > hi {
		lo, hi = hi, lo
	}
	height := lo + float64(l.Rand.Intn(int(hi-lo)+1))

	w.SetProperty(e, component.IsFlyer, kind)
	w.PRSA.Set(e, component.NewPRSA(vmath.V2(parameter.FlyerEntryX, height)))
	w.Momentum.Set(e, component.MomentumComponent{Velocity: vmath.V2(speed, 0)})
	w.Mask.Set(e, mask)
	w.Container.Set(e, component.ContainerComponent{Rect: parameter.Container})
	w.FlyerShoot.Set(e, component.FlyerShootComponent{Cooldown: timer.NewCooldown(row.ShootCooldown)})
	w.Sound.Set(e, component.SoundComponent{Handle: l.Sound.Play(engine.SoundFlyer, -1)})
	w.Shutdown.Set(e, component.ShutdownComponent{
		Events: []event.EventType{event.EventFlyerGone, event.EventIncomingReleased, event.EventSoundStop},
	})
	return e, nil
}

// Smartbomb spawns a homing bomb whose momentum is re-aimed every tick
func (l *Launcher) Smartbomb(start, dest vmath.Vec2, speed float64) core.Entity {
	w := l.World
	e := w.CreateEntity()

	w.SetProperty(e, component.IsSmartbomb)
	w.PRSA.Set(e, component.NewPRSA(start))
	w.Speed.Set(e, component.SpeedComponent{Value: speed})
	w.Momentum.Set(e, component.MomentumComponent{Velocity: physics.Aim(start, dest, speed)})
	w.Target.Set(e, component.TargetComponent{Pos: dest})
	w.Container.Set(e, component.ContainerComponent{Rect: parameter.Container})
	w.Sound.Set(e, component.SoundComponent{Handle: l.Sound.Play(engine.SoundSmartbomb, -1)})
	w.Shutdown.Set(e, component.ShutdownComponent{
		Events: []event.EventType{event.EventSmartbombReleased, event.EventSoundStop},
	})
	return e
}

// Target marks the aim point of a defense missile
func (l *Launcher) Target(pos vmath.Vec2) core.Entity {
	w := l.World
	e := w.CreateEntity()
	w.SetProperty(e, component.IsTarget)
	w.PRSA.Set(e, component.NewPRSA(pos))
	return e
}

// Crosshair creates the player reticle
func (l *Launcher) Crosshair(pos vmath.Vec2) (core.Entity, error) {
	w := l.World
	e, err := w.CreateNamedEntity(parameter.CrosshairName)
	if err != nil {
		return core.NoEntity, err
	}
	w.SetProperty(e, component.IsCrosshair)
	w.PRSA.Set(e, component.NewPRSA(pos))
	return e, nil
}
