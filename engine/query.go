package engine

import (
	"slices"

	"github.com/lixenwraith/missile-command/core"
)

// QueryBuilder provides a fluent interface for archetype queries
// An entity matches when its tags are a superset of the requested tags
// and it owns a component in every requested store
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	mask     core.PropertySet
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder.
// Use With() and Has() to add filters, then Execute() to get the results.
//
// Example:
//
//	missiles := world.Query().
//	    With(world.PRSA, world.Trail).
//	    Has(component.IsMissile, component.IsDead).
//	    Execute()
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds component stores to the query filter.
//
// Panics if called after Execute().
func (qb *QueryBuilder) With(stores ...QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, stores...)
	return qb
}

// Has adds required property tags to the query filter.
//
// Panics if called after Execute().
func (qb *QueryBuilder) Has(ps ...core.Property) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.mask |= core.Props(ps...)
	return qb
}

// Execute runs the query and returns matching entities in creation order.
// The result is a materialized slice, safe to iterate while removing entities.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	w := qb.world
	candidates, sorted := qb.candidates()

	results := candidates[:0]
	for _, e := range candidates {
		if !w.props[e].Contains(qb.mask) {
			continue
		}
		if !qb.ownsAll(e) {
			continue
		}
		results = append(results, e)
	}

	if !sorted {
		slices.Sort(results)
	}
	qb.results = results
	return qb.results
}

// candidates picks the smallest starting set
// Prefers a registered archetype matching the mask exactly
func (qb *QueryBuilder) candidates() ([]core.Entity, bool) {
	w := qb.world

	if set, ok := w.archetypes[qb.mask]; ok {
		return set.snapshot(), true
	}

	var best *entitySet
	qb.mask.Each(func(p core.Property) {
		if best == nil || w.byProperty[p].len() < best.len() {
			best = &w.byProperty[p]
		}
	})

	var smallest QueryableStore
	for _, s := range qb.stores {
		if smallest == nil || s.CountEntity() < smallest.CountEntity() {
			smallest = s
		}
	}

	switch {
	case best != nil && (smallest == nil || best.len() <= smallest.CountEntity()):
		return best.snapshot(), true
	case smallest != nil:
		return smallest.AllEntity(), false
	default:
		return w.alive.snapshot(), true
	}
}

func (qb *QueryBuilder) ownsAll(e core.Entity) bool {
	for _, s := range qb.stores {
		if !s.HasComponent(e) {
			return false
		}
	}
	return true
}

// RunSystem invokes fn once per entity matching the query
// Entities removed by an earlier invocation in the same run are skipped
// Returns the number of invocations
func (w *World) RunSystem(dt float64, qb *QueryBuilder, fn func(dt float64, e core.Entity)) int {
	n := 0
	for _, e := range qb.Execute() {
		if !w.Alive(e) {
			continue
		}
		fn(dt, e)
		n++
	}
	return n
}
