package engine

import (
	"fmt"

	"github.com/lixenwraith/missile-command/core"
)

// Store is a generic container for a specific component type T
// Components are held by pointer so systems mutate them in place
// Entity order is insertion order and survives removals
type Store[T any] struct {
	name       string
	components map[core.Entity]*T
	entities   []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:       name,
		components: make(map[core.Entity]*T),
		entities:   make([]core.Entity, 0, 64),
	}
}

// Set inserts or replaces the component of an entity, last write wins
func (s *Store[T]) Set(e core.Entity, val T) *T {
	ptr, exists := s.components[e]
	if !exists {
		ptr = new(T)
		s.components[e] = ptr
		s.entities = append(s.entities, e)
	}
	*ptr = val
	return ptr
}

// Get returns the component pointer, nil if absent
func (s *Store[T]) Get(e core.Entity) *T {
	return s.components[e]
}

// Lookup returns the component pointer and whether it exists
func (s *Store[T]) Lookup(e core.Entity) (*T, bool) {
	ptr, ok := s.components[e]
	return ptr, ok
}

// MustGet returns the component pointer and panics if absent
// Absence means a caller iterated something other than a live query result
func (s *Store[T]) MustGet(e core.Entity) *T {
	ptr, ok := s.components[e]
	if !ok {
		panic(fmt.Errorf("%w: entity %d has no %s component", ErrMissingComponent, e, s.name))
	}
	return ptr
}

// RemoveComponent deletes the component of an entity, order-preserving
func (s *Store[T]) RemoveComponent(e core.Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// HasComponent checks if entity has this component
func (s *Store[T]) HasComponent(e core.Entity) bool {
	_, ok := s.components[e]
	return ok
}

// AllEntity returns a copy of all entities with this component type
func (s *Store[T]) AllEntity() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// CountEntity returns number of entities with this component
func (s *Store[T]) CountEntity() int {
	return len(s.entities)
}

// ClearAllComponent removes all components from this store
func (s *Store[T]) ClearAllComponent() {
	s.components = make(map[core.Entity]*T)
	s.entities = s.entities[:0]
}

// Name returns the store label used in diagnostics
func (s *Store[T]) Name() string {
	return s.name
}
