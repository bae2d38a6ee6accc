package system

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/event"
)

// Shutdown converts the hooks of dead entities into queued events
// The hook is consumed so it can never fire twice
func Shutdown(c *Context, dt float64) {
	w := c.World
	q := w.Query().With(w.Shutdown).Has(component.IsDead)
	w.RunSystem(dt, q, func(_ float64, e core.Entity) {
		sd := w.Shutdown.MustGet(e)
		for _, t := range sd.Events {
			ev := event.GameEvent{Type: t, Entity: e}
			switch t {
			case event.EventLinkedRemove:
				ev.Payload = &event.LinkPayload{Target: sd.Link}
			case event.EventSoundStop:
				snd := w.Sound.Get(e)
				if snd == nil || snd.Handle == nil {
					continue
				}
				ev.Payload = &event.SoundStopPayload{Handle: snd.Handle}
			}
			c.Events.Push(ev)
		}
		w.Shutdown.RemoveComponent(e)
	})
}

// Prune removes every dead entity
func Prune(c *Context) int {
	w := c.World
	dead := w.EntitiesWith(component.IsDead)
	for _, e := range dead {
		w.RemoveEntity(e)
	}
	return len(dead)
}

// HandleShutdown performs the hook events that need no game knowledge
// Returns false for events the caller must handle itself
func HandleShutdown(c *Context, ev event.GameEvent) bool {
	switch ev.Type {
	case event.EventLinkedRemove:
		if p, ok := ev.Payload.(*event.LinkPayload); ok && p.Target != core.NoEntity && c.World.Alive(p.Target) {
			c.World.RemoveEntity(p.Target)
		}
		return true
	case event.EventSoundStop:
		if p, ok := ev.Payload.(*event.SoundStopPayload); ok {
			p.Handle.Stop()
		}
		return true
	}
	return false
}
