package component

import (
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/event"
)

// ShutdownComponent lists the events emitted once when the entity is removed
// Link names an owned entity for EventLinkedRemove
type ShutdownComponent struct {
	Events []event.EventType
	Link   core.Entity
}

// SoundHandle is a stoppable playing sound
type SoundHandle interface {
	Stop()
}

// SoundComponent holds the looping sound owned by an entity
type SoundComponent struct {
	Handle SoundHandle
}
