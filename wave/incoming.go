package wave

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/missile-command/core"
)

// ErrCapacityExceeded signals an Add past capacity
// Callers pre-check FreeSlots, so this is a scheduler bug
var ErrCapacityExceeded = errors.New("slot capacity exceeded")

// Incoming is a bounded set of in-flight threats ordered oldest first
// Invariant: FreeSlots() == Capacity() - Len()
type Incoming struct {
	capacity int
	order    []core.Entity
	members  map[core.Entity]struct{}
}

// NewIncoming creates a set with the given number of slots
func NewIncoming(capacity int) *Incoming {
	return &Incoming{
		capacity: capacity,
		order:    make([]core.Entity, 0, capacity),
		members:  make(map[core.Entity]struct{}, capacity),
	}
}

// Add inserts e; adding an existing member is a no-op
func (in *Incoming) Add(e core.Entity) error {
	if _, ok := in.members[e]; ok {
		return nil
	}
	if len(in.order) >= in.capacity {
		return fmt.Errorf("%w: %d of %d slots used", ErrCapacityExceeded, len(in.order), in.capacity)
	}
	in.members[e] = struct{}{}
	in.order = append(in.order, e)
	return nil
}

// MustAdd inserts e and panics on ErrCapacityExceeded
func (in *Incoming) MustAdd(e core.Entity) {
	if err := in.Add(e); err != nil {
		panic(err)
	}
}

// Remove drops e if present
func (in *Incoming) Remove(e core.Entity) {
	if _, ok := in.members[e]; !ok {
		return
	}
	delete(in.members, e)
	for i, m := range in.order {
		if m == e {
			in.order = append(in.order[:i], in.order[i+1:]...)
			break
		}
	}
}

// Contains reports membership
func (in *Incoming) Contains(e core.Entity) bool {
	_, ok := in.members[e]
	return ok
}

func (in *Incoming) Len() int {
	return len(in.order)
}

func (in *Incoming) Capacity() int {
	return in.capacity
}

// FreeSlots returns Capacity() - Len()
func (in *Incoming) FreeSlots() int {
	return in.capacity - len(in.order)
}

// Members returns a snapshot, oldest first
func (in *Incoming) Members() []core.Entity {
	out := make([]core.Entity, len(in.order))
	copy(out, in.order)
	return out
}
