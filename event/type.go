package event

// EventType represents the type of game event
type EventType int

const (
	// === Shutdown Event ===

	// EventIncomingReleased frees one incoming slot
	// Trigger: ShutdownSystem on incoming missile or flyer removal
	// Consumer: Spawner | Payload: nil
	EventIncomingReleased EventType = iota + 1

	// EventSmartbombReleased frees one smart bomb slot and its reserved incoming budget
	// Trigger: ShutdownSystem on smart bomb removal
	// Consumer: Spawner | Payload: nil
	EventSmartbombReleased

	// EventFlyerGone rearms the flyer spawn cooldown
	// Trigger: ShutdownSystem on flyer removal
	// Consumer: Spawner | Payload: nil
	EventFlyerGone

	// EventLinkedRemove removes an entity owned by the dead one
	// Trigger: ShutdownSystem on defense missile removal (target marker)
	// Consumer: Game | Payload: *LinkPayload
	EventLinkedRemove

	// EventSoundStop stops a looping sound owned by the dead entity
	// Trigger: ShutdownSystem on flyer or smart bomb removal
	// Consumer: Game | Payload: *SoundStopPayload
	EventSoundStop

	// === Feedback Event ===

	// EventSoundRequest requests audio playback
	// Trigger: Systems requiring audio feedback
	// Consumer: Game -> SoundPlayer | Payload: *SoundRequestPayload
	EventSoundRequest

	// EventBonusCity signals a crossed bonus city score threshold
	// Trigger: GameState.AddScore
	// Consumer: Game (log, sound) | Payload: *BonusCityPayload
	EventBonusCity
)

var typeNames = map[EventType]string{
	EventIncomingReleased:  "incoming_released",
	EventSmartbombReleased: "smartbomb_released",
	EventFlyerGone:         "flyer_gone",
	EventLinkedRemove:      "linked_remove",
	EventSoundStop:         "sound_stop",
	EventSoundRequest:      "sound_request",
	EventBonusCity:         "bonus_city",
}

func (t EventType) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}
