package engine

import (
	"sort"

	"github.com/lixenwraith/missile-command/core"
)

// entitySet is an ordered set of entities sorted by id
// Ids are monotonic, so id order is creation order
type entitySet struct {
	items []core.Entity
}

func (s *entitySet) search(e core.Entity) int {
	return sort.Search(len(s.items), func(i int) bool { return s.items[i] >= e })
}

func (s *entitySet) add(e core.Entity) {
	i := s.search(e)
	if i < len(s.items) && s.items[i] == e {
		return
	}
	// Fast path: new entities carry the highest id
	if i == len(s.items) {
		s.items = append(s.items, e)
		return
	}
	s.items = append(s.items, 0)
	copy(s.items[i+1:], s.items[i:])
	s.items[i] = e
}

func (s *entitySet) remove(e core.Entity) {
	i := s.search(e)
	if i < len(s.items) && s.items[i] == e {
		s.items = append(s.items[:i], s.items[i+1:]...)
	}
}

func (s *entitySet) has(e core.Entity) bool {
	i := s.search(e)
	return i < len(s.items) && s.items[i] == e
}

func (s *entitySet) len() int {
	return len(s.items)
}

func (s *entitySet) snapshot() []core.Entity {
	out := make([]core.Entity, len(s.items))
	copy(out, s.items)
	return out
}

func (s *entitySet) clear() {
	s.items = s.items[:0]
}
