package game

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
)

// freeSlots is the incoming capacity left after smart bomb reservations
func (g *Game) freeSlots() int {
	return g.incoming.FreeSlots() - parameter.SmartbombSlotCost*g.smartbombs.Len()
}

// spawnThreats runs the per-tick wave scheduler:
// flyer, gated missile batch, flyer volley, forks, smart bomb
func (g *Game) spawnThreats(dt float64) {
	launched := 0
	g.cdFlyer.Tick(dt)

	if _, alive := g.world.Named(parameter.FlyerName); !alive &&
		g.wave.HasFlyers() && g.cdFlyer.Cold() && g.freeSlots() > 0 {
		if f, err := g.launch.Flyer(g.wave.Flyer); err == nil {
			g.incoming.MustAdd(f)
			launched++
		}
	}

	if g.mayLaunch() {
		launched += g.spawnMissiles(g.cfg.MaxLaunchesPerFrame-launched, nil)
	}

	if f, alive := g.world.Named(parameter.FlyerName); alive && !g.world.HasProperty(f, component.IsLingering) {
		shoot := g.world.FlyerShoot.MustGet(f)
		shoot.Cooldown.Tick(dt)
		if shoot.Cooldown.Cold() {
			shoot.Cooldown.Reset()
			origin := g.world.PRSA.MustGet(f).Pos
			launched += g.spawnMissiles(1+g.rng.Intn(3), &origin)
		}
	}

	launched += g.forkMissiles()

	if g.cfg.MaxLaunchesPerFrame-launched > 0 &&
		g.smartbombsLeft > 0 &&
		g.smartbombs.FreeSlots() > 0 &&
		g.incoming.FreeSlots() >= parameter.SmartbombSlotCost*(g.smartbombs.Len()+1) {
		start := vmath.V2(float64(g.rng.Intn(parameter.ScreenWidth+1)), parameter.MissileSpawnY)
		s := g.launch.Smartbomb(start, g.targets.next(), g.wave.MissileSpeed)
		g.smartbombs.MustAdd(s)
		g.smartbombsLeft--
	}
}

// mayLaunch gates a new batch: nothing in flight, or every threat already
// below the required height
func (g *Game) mayLaunch() bool {
	if g.incoming.Len() == 0 && g.incomingLeft > 0 {
		return true
	}
	for _, e := range g.incoming.Members() {
		prsa := g.world.PRSA.Get(e)
		if prsa == nil || prsa.Pos.Y <= g.cfg.IncomingRequiredHeight {
			return false
		}
	}
	return true
}

// forkMissiles scans in-flight threats oldest first; a threat inside the
// fork band splits into 1-3 new missiles from its position
// The scan stops at the first threat outside the band
func (g *Game) forkMissiles() int {
	launched := 0
	for _, e := range g.incoming.Members() {
		prsa := g.world.PRSA.Get(e)
		if prsa == nil {
			break
		}
		y := prsa.Pos.Y
		if !(g.cfg.ForkHeightMin < y && y < g.cfg.ForkHeightMax) || g.freeSlots() <= 0 || g.incomingLeft <= 0 {
			break
		}
		origin := prsa.Pos
		launched += g.spawnMissiles(1+g.rng.Intn(3), &origin)
	}
	return launched
}

// spawnMissiles launches up to n incoming missiles within slot and wave budget
// A nil origin picks a random point above the screen
func (g *Game) spawnMissiles(n int, origin *vmath.Vec2) int {
	toLaunch := min(n, g.freeSlots(), g.incomingLeft)
	for i := 0; i < toLaunch; i++ {
		start := vmath.V2(float64(g.rng.Intn(parameter.ScreenWidth+1)), parameter.MissileSpawnY)
		if origin != nil {
			start = *origin
		}
		g.launchIncoming(start, g.targets.next(), g.wave.MissileSpeed)
	}
	return max(toLaunch, 0)
}

func (g *Game) launchIncoming(start, dest vmath.Vec2, speed float64) core.Entity {
	e := g.launch.Missile(start, dest, speed, true, &component.ShutdownComponent{
		Events: []event.EventType{event.EventIncomingReleased},
	})
	g.incoming.MustAdd(e)
	g.incomingLeft--
	return e
}
