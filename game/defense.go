package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
)

// launchDefense fires one counter missile from pad at target
// The target marker is removed together with the missile
func (g *Game) launchDefense(pad int, target vmath.Vec2) {
	silo, ok := g.state.PopSilo(pad)
	if !ok {
		g.sound.Play(engine.SoundBrzzz, 0)
		g.log.Debug("launch refused, battery empty", zap.Int("pad", pad))
		return
	}
	if g.world.Alive(silo) {
		g.world.RemoveEntity(silo)
	}
	if len(g.state.Batteries[pad]) == g.cfg.LowAmmoWarnThreshold {
		g.sound.Play(engine.SoundLowAmmo, 2)
	}

	marker := g.launch.Target(target)
	g.launch.Missile(parameter.PosBatteries[pad], target, parameter.MissileSpeeds[pad], false,
		&component.ShutdownComponent{
			Events: []event.EventType{event.EventLinkedRemove},
			Link:   marker,
		})
	g.sound.Play(engine.SoundLaunch, 0)
}

// playDemo replays every recorded command that is due
func (g *Game) playDemo(dt float64) {
	g.demoWalker.Advance(dt)
	for {
		ev, ok := g.demoWalker.Next()
		if !ok || ev.Command == DemoNop {
			return
		}

		switch ev.Command {
		case DemoMouse:
			g.setMouse(vmath.V2(ev.Args[0], ev.Args[1]))
		case DemoMissile:
			if g.incoming.FreeSlots() == 0 {
				g.log.Warn("demo missile dropped, no free slot", zap.Float64("at", ev.At))
				continue
			}
			g.launchIncoming(vmath.V2(ev.Args[0], ev.Args[1]), vmath.V2(ev.Args[2], ev.Args[3]), ev.Args[4])
		case DemoDefense:
			g.launchDefense(int(ev.Args[0]), g.mouse)
		}
	}
}
