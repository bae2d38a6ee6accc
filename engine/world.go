package engine

import (
	"fmt"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
)

// World owns entities, their property tags and all typed component stores
// Single-threaded: every mutation happens inside one Update call
type World struct {
	nextEntityID core.Entity

	alive entitySet
	props map[core.Entity]core.PropertySet

	names  map[string]core.Entity
	nameOf map[core.Entity]string

	// Per-tag index and registered archetype indexes, updated incrementally
	byProperty [core.MaxProperties]entitySet
	archetypes map[core.PropertySet]*entitySet

	// Component Stores (Public for direct system access)
	PRSA       *Store[component.PRSAComponent]
	Momentum   *Store[component.MomentumComponent]
	Speed      *Store[component.SpeedComponent]
	Target     *Store[component.TargetComponent]
	Trail      *Store[component.TrailComponent]
	Mask       *Store[component.MaskComponent]
	Hitbox     *Store[component.HitboxComponent]
	Container  *Store[component.ContainerComponent]
	Lifetime   *Store[component.LifetimeComponent]
	FlyerShoot *Store[component.FlyerShootComponent]
	Explosion  *Store[component.ExplosionComponent]
	EvadeFix   *Store[component.EvadeFixComponent]
	Slot       *Store[component.SlotComponent]
	Shutdown   *Store[component.ShutdownComponent]
	Sound      *Store[component.SoundComponent]

	// Lifecycle registry - all stores implement AnyStore for uniform cleanup
	allStores []AnyStore
}

// NewWorld creates a world with all component stores initialized
func NewWorld() *World {
	w := &World{
		nextEntityID: 1,
		props:        make(map[core.Entity]core.PropertySet),
		names:        make(map[string]core.Entity),
		nameOf:       make(map[core.Entity]string),
		archetypes:   make(map[core.PropertySet]*entitySet),
		PRSA:         NewStore[component.PRSAComponent]("prsa"),
		Momentum:     NewStore[component.MomentumComponent]("momentum"),
		Speed:        NewStore[component.SpeedComponent]("speed"),
		Target:       NewStore[component.TargetComponent]("target"),
		Trail:        NewStore[component.TrailComponent]("trail"),
		Mask:         NewStore[component.MaskComponent]("mask"),
		Hitbox:       NewStore[component.HitboxComponent]("hitbox"),
		Container:    NewStore[component.ContainerComponent]("container"),
		Lifetime:     NewStore[component.LifetimeComponent]("lifetime"),
		FlyerShoot:   NewStore[component.FlyerShootComponent]("flyer_shoot"),
		Explosion:    NewStore[component.ExplosionComponent]("explosion"),
		EvadeFix:     NewStore[component.EvadeFixComponent]("evade_fix"),
		Slot:         NewStore[component.SlotComponent]("slot"),
		Shutdown:     NewStore[component.ShutdownComponent]("shutdown"),
		Sound:        NewStore[component.SoundComponent]("sound"),
	}

	w.allStores = []AnyStore{
		w.PRSA, w.Momentum, w.Speed, w.Target, w.Trail,
		w.Mask, w.Hitbox, w.Container, w.Lifetime, w.FlyerShoot,
		w.Explosion, w.EvadeFix, w.Slot, w.Shutdown, w.Sound,
	}

	return w
}

// CreateEntity allocates a new anonymous entity
func (w *World) CreateEntity() core.Entity {
	e := w.nextEntityID
	w.nextEntityID++
	w.alive.add(e)
	w.props[e] = 0
	if set, ok := w.archetypes[0]; ok {
		set.add(e)
	}
	return e
}

// CreateNamedEntity allocates an entity reachable by name
// Names are unique among live entities
func (w *World) CreateNamedEntity(name string) (core.Entity, error) {
	if existing, ok := w.names[name]; ok {
		return existing, fmt.Errorf("%w: %q is entity %d", ErrDuplicateEntity, name, existing)
	}
	e := w.CreateEntity()
	w.names[name] = e
	w.nameOf[e] = name
	return e, nil
}

// Named resolves a live named entity
func (w *World) Named(name string) (core.Entity, bool) {
	e, ok := w.names[name]
	return e, ok
}

// Alive reports whether the entity exists
func (w *World) Alive(e core.Entity) bool {
	_, ok := w.props[e]
	return ok
}

// EntityCount returns the number of live entities
func (w *World) EntityCount() int {
	return w.alive.len()
}

// Entities returns all live entities in creation order
func (w *World) Entities() []core.Entity {
	return w.alive.snapshot()
}

func (w *World) mustProps(e core.Entity) core.PropertySet {
	p, ok := w.props[e]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrUnknownEntity, e))
	}
	return p
}

// RemoveEntity destroys the entity and cascades to all stores and indexes
// Panics with ErrUnknownEntity if the entity does not exist
func (w *World) RemoveEntity(e core.Entity) {
	old := w.mustProps(e)

	for _, store := range w.allStores {
		store.RemoveComponent(e)
	}

	old.Each(func(p core.Property) {
		w.byProperty[p].remove(e)
	})
	for _, set := range w.archetypes {
		set.remove(e)
	}

	if name, ok := w.nameOf[e]; ok {
		delete(w.names, name)
		delete(w.nameOf, e)
	}

	delete(w.props, e)
	w.alive.remove(e)
}

// PurgeByProperty removes every entity carrying p and returns the count
func (w *World) PurgeByProperty(p core.Property) int {
	victims := w.byProperty[p].snapshot()
	for _, e := range victims {
		w.RemoveEntity(e)
	}
	return len(victims)
}

// Reset removes all entities and archetype registrations
// Entity ids keep increasing across resets
func (w *World) Reset() {
	for _, store := range w.allStores {
		store.ClearAllComponent()
	}
	for i := range w.byProperty {
		w.byProperty[i].clear()
	}
	w.archetypes = make(map[core.PropertySet]*entitySet)
	w.props = make(map[core.Entity]core.PropertySet)
	w.names = make(map[string]core.Entity)
	w.nameOf = make(map[core.Entity]string)
	w.alive.clear()
}
