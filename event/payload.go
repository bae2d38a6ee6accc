package event

import "github.com/lixenwraith/missile-command/core"

// GameEvent is a single queued notification
type GameEvent struct {
	Type    EventType
	Entity  core.Entity // Source entity, NoEntity for global events
	Payload any
}

// LinkPayload names the entity to remove alongside the source
type LinkPayload struct {
	Target core.Entity
}

// Stopper is the part of a sound handle the shutdown stage needs
type Stopper interface {
	Stop()
}

// SoundStopPayload carries the handle of a looping sound
type SoundStopPayload struct {
	Handle Stopper
}

// SoundRequestPayload asks for a named sound
// Loops follows the provider convention: 0 plays once, -1 loops forever
type SoundRequestPayload struct {
	Sound string
	Loops int
}

// BonusCityPayload reports the new bonus city count
type BonusCityPayload struct {
	Count int
	Score int
}
