package game

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/timer"
	"github.com/lixenwraith/missile-command/wave"
)

// waveEntities are rebuilt from scratch at the start of every wave
var waveEntities = []core.Property{
	component.IsBattery,
	component.IsCity,
	component.IsRuin,
	component.IsExplosion,
	component.IsFlyer,
	component.IsMissile,
	component.IsSmartbomb,
	component.IsSilo,
	component.IsTarget,
}

// setupWave clears the field, rebuilds batteries and cities and loads the
// next wave record
func (g *Game) setupWave() {
	g.stopSounds()
	for _, p := range waveEntities {
		g.world.PurgeByProperty(p)
	}
	g.events.Clear()

	for i := range parameter.BatteryCount {
		g.state.Batteries[i] = g.launch.Battery(i)
	}

	restored := 0
	for slot, alive := range g.state.Cities {
		switch {
		case alive:
			g.launch.City(slot)
		case g.state.BonusCities > 0:
			g.state.BonusCities--
			g.state.Cities[slot] = true
			g.launch.City(slot)
			restored++
		default:
			g.launch.Ruin(slot)
		}
	}
	g.targets = newTargetCycle(g.rng, g.state.Cities)

	g.wave = g.waveIter.Next()
	g.state.Level++
	g.state.ScoreMult = min(g.state.Level/2+1, g.cfg.MaxScoreMult)

	g.incomingLeft = g.wave.Missiles
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)
	g.cdFlyer = timer.NewCooldown(g.wave.Flyer.Cooldown)
	g.smartbombsLeft = g.wave.Smartbombs
	g.smartbombs = wave.NewIncoming(g.cfg.SmartbombSlots)

	g.log.Info("wave setup",
		zap.Int("level", g.state.Level),
		zap.Int("mult", g.state.ScoreMult),
		zap.Int("missiles", g.wave.Missiles),
		zap.Float64("speed", g.wave.MissileSpeed),
		zap.Int("smartbombs", g.wave.Smartbombs),
		zap.Bool("flyers", g.wave.HasFlyers()),
		zap.Int("cities", g.state.CitiesAlive()),
		zap.Int("restored", restored),
		zap.Int("bonus_cities", g.state.BonusCities))
}
