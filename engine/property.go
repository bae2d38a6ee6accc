package engine

import "github.com/lixenwraith/missile-command/core"

// SetProperty sets one or more tags on an entity
func (w *World) SetProperty(e core.Entity, ps ...core.Property) {
	old := w.mustProps(e)
	next := old | core.Props(ps...)
	if next == old {
		return
	}
	w.props[e] = next
	for _, p := range ps {
		w.byProperty[p].add(e)
	}
	w.reindex(e, old, next)
}

// ClearProperty removes a tag from an entity
func (w *World) ClearProperty(e core.Entity, p core.Property) {
	old := w.mustProps(e)
	if !old.Has(p) {
		return
	}
	next := old.Without(p)
	w.props[e] = next
	w.byProperty[p].remove(e)
	w.reindex(e, old, next)
}

// HasProperty reports whether the entity carries p
// Panics with ErrUnknownEntity if the entity does not exist
func (w *World) HasProperty(e core.Entity, p core.Property) bool {
	return w.mustProps(e).Has(p)
}

// Properties returns the full tag set of an entity
func (w *World) Properties(e core.Entity) core.PropertySet {
	return w.mustProps(e)
}

// CountWith returns the number of entities carrying p
func (w *World) CountWith(p core.Property) int {
	return w.byProperty[p].len()
}

// EntitiesWith returns entities carrying every given tag, in creation order
func (w *World) EntitiesWith(ps ...core.Property) []core.Entity {
	return w.Query().Has(ps...).Execute()
}

// CreateArchetype registers an index for entities whose tags contain mask
// The index is backfilled and then maintained on every tag change
func (w *World) CreateArchetype(ps ...core.Property) {
	mask := core.Props(ps...)
	if _, ok := w.archetypes[mask]; ok {
		return
	}
	set := &entitySet{}
	for _, e := range w.alive.items {
		if w.props[e].Contains(mask) {
			set.add(e)
		}
	}
	w.archetypes[mask] = set
}

// reindex moves the entity between archetype sets after a tag change
func (w *World) reindex(e core.Entity, old, next core.PropertySet) {
	for mask, set := range w.archetypes {
		was, is := old.Contains(mask), next.Contains(mask)
		switch {
		case is && !was:
			set.add(e)
		case was && !is:
			set.remove(e)
		}
	}
}
