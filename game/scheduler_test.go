package game

import (
	"testing"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/config"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/vmath"
	"github.com/lixenwraith/missile-command/wave"
)

// noFlyers disables flyers and smart bombs so only missiles spawn
func noFlyers(missiles int, speed float64) func(*config.Config) {
	return func(cfg *config.Config) {
		cfg.Waves = []config.WaveConfig{{Missiles: missiles, Speed: speed}}
		cfg.Flyers = []config.FlyerConfig{{}}
	}
}

func TestWaveBudgetNeverExceeded(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(12, 60))
	g.Update(testDt)

	seen := make(map[core.Entity]bool)
	for i := 0; i < 60*60 && g.Result() == OutcomeRunning; i++ {
		g.Update(testDt)

		if n := g.incoming.Len(); n > g.cfg.IncomingSlots {
			t.Fatalf("Tick %d: %d threats in flight, capacity %d", i, n, g.cfg.IncomingSlots)
		}
		for _, e := range g.world.EntitiesWith(component.IsMissile, component.IsIncoming) {
			seen[e] = true
		}
		if g.Phase() == PhaseDebriefing || g.Phase() == PhaseGameOver {
			break
		}
	}

	if len(seen) > 12 {
		t.Errorf("Expected at most 12 missiles, got %d", len(seen))
	}
	if len(seen)+g.incomingLeft != 12 {
		t.Errorf("Expected spawned %d + left %d = 12", len(seen), g.incomingLeft)
	}
	if len(seen) == 0 {
		t.Error("Expected missiles to spawn")
	}
	t.Logf("✓ %d missiles spawned within budget", len(seen))
}

func TestGatingWaitsForRequiredHeight(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(12, 10))
	toPlaying(t, g)
	g.world.PurgeByProperty(component.IsMissile)
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)
	g.incomingLeft = 10

	m := g.launchIncoming(vmath.V2(50, 30), vmath.V2(50, 230), 10)

	g.spawnThreats(0)
	if n := g.incoming.Len(); n != 1 {
		t.Fatalf("Expected batch held back, got %d in flight", n)
	}

	g.world.PRSA.MustGet(m).Pos.Y = g.cfg.IncomingRequiredHeight + 1
	g.spawnThreats(0)
	if n := g.incoming.Len(); n != 1+g.cfg.MaxLaunchesPerFrame {
		t.Errorf("Expected a batch of %d, got %d in flight", g.cfg.MaxLaunchesPerFrame, n-1)
	}
}

func TestForkFromOldestMissile(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(12, 10))
	toPlaying(t, g)
	g.world.PurgeByProperty(component.IsMissile)
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)

	forkPos := vmath.V2(50, 100)
	g.launchIncoming(forkPos, vmath.V2(50, 230), 10)
	g.launchIncoming(vmath.V2(60, 10), vmath.V2(60, 230), 10)
	g.incomingLeft = 10

	g.spawnThreats(0)

	forked := g.incoming.Len() - 2
	if forked < 1 || forked > 3 {
		t.Fatalf("Expected 1-3 forked missiles, got %d", forked)
	}
	if g.incomingLeft != 10-forked {
		t.Errorf("Expected budget %d, got %d", 10-forked, g.incomingLeft)
	}
	for _, e := range g.incoming.Members()[2:] {
		if head := g.world.Trail.MustGet(e).Head(); head != forkPos {
			t.Errorf("Expected fork from %v, got %v", forkPos, head)
		}
	}
	t.Logf("✓ Oldest missile forked into %d", forked)
}

func TestForkScanStopsAtFirstOutside(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(12, 10))
	toPlaying(t, g)
	g.world.PurgeByProperty(component.IsMissile)
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)

	g.launchIncoming(vmath.V2(60, 10), vmath.V2(60, 230), 10)
	g.launchIncoming(vmath.V2(50, 100), vmath.V2(50, 230), 10)
	g.incomingLeft = 10

	g.spawnThreats(0)

	if n := g.incoming.Len(); n != 2 {
		t.Errorf("Expected no fork behind a high missile, got %d in flight", n)
	}
}

func TestForkRespectsBudget(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(12, 10))
	toPlaying(t, g)
	g.world.PurgeByProperty(component.IsMissile)
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)

	g.launchIncoming(vmath.V2(50, 100), vmath.V2(50, 230), 10)
	g.launchIncoming(vmath.V2(60, 10), vmath.V2(60, 230), 10)
	g.incomingLeft = 0

	g.spawnThreats(0)

	if n := g.incoming.Len(); n != 2 {
		t.Errorf("Expected no fork without budget, got %d", n)
	}
}

func TestSmartbombsReserveSlots(t *testing.T) {
	g, _ := newTestGame(t, noFlyers(0, 10))
	toPlaying(t, g)
	g.smartbombsLeft = 5

	for i := 0; i < 5; i++ {
		g.spawnThreats(0)
	}

	if n := g.smartbombs.Len(); n != g.cfg.SmartbombSlots {
		t.Errorf("Expected %d smart bombs, got %d", g.cfg.SmartbombSlots, n)
	}
	if g.smartbombsLeft != 5-g.cfg.SmartbombSlots {
		t.Errorf("Expected %d left, got %d", 5-g.cfg.SmartbombSlots, g.smartbombsLeft)
	}
	if free := g.freeSlots(); free != g.cfg.IncomingSlots-2*g.cfg.SmartbombSlots {
		t.Errorf("Expected %d free slots, got %d", g.cfg.IncomingSlots-2*g.cfg.SmartbombSlots, free)
	}
}

func TestFlyerSpawnsAndShoots(t *testing.T) {
	g, _ := newTestGame(t, func(cfg *config.Config) {
		cfg.Waves = []config.WaveConfig{{Missiles: 20, Speed: 10}}
		cfg.Flyers = []config.FlyerConfig{{MinHeight: 80, MaxHeight: 80, Cooldown: 1, ShootCooldown: 0.5}}
	})
	toPlaying(t, g)
	g.world.PurgeByProperty(component.IsMissile)
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)
	g.incomingLeft = 20

	// Flyer cooldown runs from wave setup
	g.spawnThreats(1)
	f, ok := g.world.Named("flyer")
	if !ok {
		t.Fatal("Expected a flyer")
	}
	if !g.incoming.Contains(f) {
		t.Error("Expected flyer to hold an incoming slot")
	}

	// Hold missile batches back so only the volley spawns
	g.world.PRSA.MustGet(f).Pos.Y = 10
	before := g.incoming.Len()
	g.spawnThreats(0.5)
	volley := g.incoming.Len() - before
	if volley < 1 || volley > 3 {
		t.Errorf("Expected a volley of 1-3, got %d", volley)
	}
	t.Logf("✓ Flyer volley of %d", volley)
}
