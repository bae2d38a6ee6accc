package game

import (
	"errors"
	"testing"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/config"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/engine/fsm"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
)

const testDt = 1.0 / 60

type countingSound struct {
	engine.NopSound
	played map[string]int
	paused bool
}

func newCountingSound() *countingSound {
	return &countingSound{played: make(map[string]int)}
}

func (s *countingSound) Play(name string, loops int) component.SoundHandle {
	s.played[name]++
	return s.NopSound.Play(name, loops)
}

func (s *countingSound) PauseAll()  { s.paused = true }
func (s *countingSound) ResumeAll() { s.paused = false }

func newTestGame(t *testing.T, mutate func(*config.Config)) (*Game, *countingSound) {
	t.Helper()
	cfg := config.Default()
	cfg.Game.Seed = 7
	if mutate != nil {
		mutate(cfg)
	}
	snd := newCountingSound()
	g, err := New(Options{Config: cfg, Sound: snd})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, snd
}

// toPlaying runs setup and briefing
func toPlaying(t *testing.T, g *Game) {
	t.Helper()
	g.Update(testDt)
	g.Update(parameter.BriefingDuration)
	if g.Phase() != PhasePlaying {
		t.Fatalf("Expected playing phase, got %v", g.Phase())
	}
}

func TestNextPhase(t *testing.T) {
	tests := []struct {
		from   Phase
		branch int
		want   Phase
	}{
		{PhaseSetup, 0, PhaseBriefing},
		{PhaseBriefing, 0, PhasePlaying},
		{PhasePlaying, 0, PhasePreLinger},
		{PhasePreLinger, 0, PhaseLinger},
		{PhaseLinger, BranchDebriefing, PhaseDebriefing},
		{PhaseLinger, BranchGameOver, PhaseGameOver},
		{PhaseDebriefing, 0, PhaseSetup},
	}
	for _, tt := range tests {
		got, err := NextPhase(tt.from, tt.branch)
		if err != nil {
			t.Errorf("NextPhase(%v, %d): %v", tt.from, tt.branch, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Expected %v -> %v, got %v", tt.from, tt.want, got)
		}
	}

	if _, err := NextPhase(PhaseGameOver, 0); !errors.Is(err, fsm.ErrTerminal) {
		t.Errorf("Expected ErrTerminal, got %v", err)
	}
	if _, err := NextPhase(PhaseLinger, 2); !errors.Is(err, fsm.ErrInvalidBranch) {
		t.Errorf("Expected ErrInvalidBranch, got %v", err)
	}
}

func TestNextDebriefPhase(t *testing.T) {
	p := DebriefSetup
	want := []DebriefPhase{DebriefLingerPre, DebriefMissiles, DebriefCities, DebriefLingerPost}
	for _, w := range want {
		var err error
		if p, err = NextDebriefPhase(p); err != nil || p != w {
			t.Fatalf("Expected %d, got %d (%v)", w, p, err)
		}
	}
	if _, err := NextDebriefPhase(p); !errors.Is(err, fsm.ErrTerminal) {
		t.Errorf("Expected ErrTerminal, got %v", err)
	}
}

func TestNewRejectsEmptyTables(t *testing.T) {
	cfg := config.Default()
	cfg.Waves = nil
	if _, err := New(Options{Config: cfg}); !errors.Is(err, config.ErrEmptyWaveTable) {
		t.Errorf("Expected ErrEmptyWaveTable, got %v", err)
	}
}

func TestSetupWaveLevelAndMultiplier(t *testing.T) {
	g, _ := newTestGame(t, nil)

	wantMult := []int{1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 6}
	for level, want := range wantMult {
		g.setupWave()
		if g.state.Level != level {
			t.Fatalf("Expected level %d, got %d", level, g.state.Level)
		}
		if g.state.ScoreMult != want {
			t.Errorf("Level %d: expected mult %d, got %d", level, want, g.state.ScoreMult)
		}
	}
}

func TestSetupWaveRebuildsField(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.state.Cities[2] = false
	g.state.Cities[4] = false
	g.state.BonusCities = 1

	g.setupWave()

	w := g.world
	if !g.state.Cities[2] {
		t.Error("Expected bonus city to restore the first ruined slot")
	}
	if g.state.Cities[4] {
		t.Error("Expected second ruined slot to stay ruined")
	}
	if g.state.BonusCities != 0 {
		t.Errorf("Expected bonus city consumed, got %d", g.state.BonusCities)
	}
	if n := w.CountWith(component.IsCity); n != 5 {
		t.Errorf("Expected 5 cities, got %d", n)
	}
	if n := w.CountWith(component.IsRuin); n != 1 {
		t.Errorf("Expected 1 ruin, got %d", n)
	}
	if n := g.state.SilosLeft(); n != parameter.BatteryCount*len(parameter.SiloOffsets) {
		t.Errorf("Expected full batteries, got %d silos", n)
	}

	g.setupWave()
	if n := w.CountWith(component.IsRuin); n != 1 {
		t.Errorf("Expected ruins rebuilt not duplicated, got %d", n)
	}
	if n := w.CountWith(component.IsSilo); n != parameter.BatteryCount*len(parameter.SiloOffsets) {
		t.Errorf("Expected silos rebuilt not duplicated, got %d", n)
	}
	t.Logf("✓ Wave setup restored one city from the bonus pool")
}

func TestTargetCycleInterleavesCitiesAndBatteries(t *testing.T) {
	g, _ := newTestGame(t, nil)
	cities := []bool{true, true, true, true, true, true}

	tc := newTargetCycle(g.rng, cities)
	if len(tc.points) != 6 {
		t.Fatalf("Expected 6 targets, got %d", len(tc.points))
	}
	seen := make(map[vmath.Vec2]bool)
	for i, p := range tc.points {
		if i%2 == 1 {
			if p != parameter.PosBatteries[i/2] {
				t.Errorf("Expected battery %d at %d, got %v", i/2, i, p)
			}
			continue
		}
		if seen[p] {
			t.Errorf("Expected distinct cities, %v repeated", p)
		}
		seen[p] = true
	}

	first := tc.next()
	for range len(tc.points) - 1 {
		tc.next()
	}
	if again := tc.next(); again != first {
		t.Errorf("Expected cycle to wrap to %v, got %v", first, again)
	}
}

func TestTargetCycleFewCities(t *testing.T) {
	g, _ := newTestGame(t, nil)

	tc := newTargetCycle(g.rng, []bool{false, false, false, true, false, false})
	for i, p := range tc.points {
		if i%2 == 0 && p != parameter.PosCities[3] {
			t.Errorf("Expected the only city at %d, got %v", i, p)
		}
	}

	tc = newTargetCycle(g.rng, make([]bool, parameter.CityCount))
	if len(tc.points) != parameter.BatteryCount {
		t.Errorf("Expected batteries only, got %v", tc.points)
	}
}

func TestDefenseLaunch(t *testing.T) {
	g, snd := newTestGame(t, nil)
	toPlaying(t, g)

	target := vmath.V2(128, 100)
	g.DispatchEvent(InputEvent{Kind: InputPointer, Pos: target})
	g.DispatchEvent(InputEvent{Kind: InputKey, Key: 'w'})

	w := g.world
	if n := len(g.state.Batteries[1]); n != len(parameter.SiloOffsets)-1 {
		t.Errorf("Expected one silo used, got %d left", n)
	}
	if n := w.CountWith(component.IsDefense); n != 1 {
		t.Fatalf("Expected 1 defense missile, got %d", n)
	}
	if n := w.CountWith(component.IsTarget); n != 1 {
		t.Errorf("Expected target marker, got %d", n)
	}
	if snd.played[engine.SoundLaunch] != 1 {
		t.Errorf("Expected launch sound, got %v", snd.played)
	}

	for i := 0; i < 60; i++ {
		g.Update(testDt)
	}
	if n := w.CountWith(component.IsTarget); n != 0 {
		t.Errorf("Expected target marker removed with its missile, got %d", n)
	}
	t.Logf("✓ Defense missile reached target and removed its marker")
}

func TestDefenseEmptiesBattery(t *testing.T) {
	g, snd := newTestGame(t, nil)
	toPlaying(t, g)

	for range len(parameter.SiloOffsets) {
		g.launchDefense(0, vmath.V2(50, 50))
	}
	if snd.played[engine.SoundLowAmmo] != 1 {
		t.Errorf("Expected one low ammo warning, got %d", snd.played[engine.SoundLowAmmo])
	}
	if snd.played[engine.SoundBrzzz] != 0 {
		t.Error("Expected no refusal while silos remain")
	}

	g.launchDefense(0, vmath.V2(50, 50))
	if snd.played[engine.SoundBrzzz] != 1 {
		t.Error("Expected refusal sound on empty battery")
	}
	if n := g.world.CountWith(component.IsDefense); n != len(parameter.SiloOffsets) {
		t.Errorf("Expected %d defense missiles, got %d", len(parameter.SiloOffsets), n)
	}
}

func TestLaunchKeysIgnoredOutsidePlaying(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt) // setup -> briefing

	g.DispatchEvent(InputEvent{Kind: InputKey, Key: 'q'})
	if n := g.world.CountWith(component.IsDefense); n != 0 {
		t.Errorf("Expected no launch during briefing, got %d", n)
	}
}

func TestPointerClampedToConstraint(t *testing.T) {
	g, _ := newTestGame(t, nil)

	g.DispatchEvent(InputEvent{Kind: InputPointer, Pos: vmath.V2(400, 239)})

	e, ok := g.world.Named(parameter.CrosshairName)
	if !ok {
		t.Fatal("Expected crosshair")
	}
	want := vmath.V2(parameter.CrosshairConstraint.Right(), parameter.CrosshairConstraint.Bottom())
	if pos := g.world.PRSA.MustGet(e).Pos; pos != want {
		t.Errorf("Expected crosshair at %v, got %v", want, pos)
	}
}

func TestPauseSuspendsUpdate(t *testing.T) {
	g, snd := newTestGame(t, nil)

	g.DispatchEvent(InputEvent{Kind: InputKey, Key: KeyPause})
	if !g.Paused() || !snd.paused {
		t.Fatal("Expected game and sounds paused")
	}

	g.Update(testDt)
	if g.Phase() != PhaseSetup {
		t.Errorf("Expected no progress while paused, got %v", g.Phase())
	}

	g.DispatchEvent(InputEvent{Kind: InputKey, Key: KeyPause})
	if g.Paused() || snd.paused {
		t.Error("Expected game and sounds resumed")
	}
	g.Update(testDt)
	if g.Phase() != PhaseBriefing {
		t.Errorf("Expected briefing after resume, got %v", g.Phase())
	}
}

func TestQuit(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.DispatchEvent(InputEvent{Kind: InputQuit})
	if g.Result() != OutcomeQuit {
		t.Errorf("Expected quit, got %v", g.Result())
	}
}

func TestPreLingerTriplesThreatSpeed(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt)

	m := g.launchIncoming(vmath.V2(10, 10), vmath.V2(10, 200), 20)
	s := g.launch.Smartbomb(vmath.V2(50, 10), vmath.V2(50, 200), 20)
	g.phase = PhasePreLinger

	g.Update(testDt)

	if v := g.world.Momentum.MustGet(m).Velocity; v != vmath.V2(0, 60) {
		t.Errorf("Expected missile momentum (0,60), got %v", v)
	}
	if sp := g.world.Speed.MustGet(s).Value; sp != 60 {
		t.Errorf("Expected smart bomb speed 60, got %v", sp)
	}
	if g.Phase() != PhaseLinger {
		t.Errorf("Expected linger, got %v", g.Phase())
	}
}

func TestLingerToGameOver(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt)

	for i := range g.state.Cities {
		g.state.Cities[i] = false
	}
	g.state.Score = 8000
	g.phase = PhaseLinger

	g.Update(testDt)
	if g.Phase() != PhaseGameOver {
		t.Fatalf("Expected gameover, got %v", g.Phase())
	}

	g.Update(testDt)
	if g.Result() != OutcomeHighscore {
		t.Errorf("Expected highscore outcome, got %v", g.Result())
	}
}

func TestLingerToGameOverWithoutHighscore(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt)

	for i := range g.state.Cities {
		g.state.Cities[i] = false
	}
	g.state.Score = 100
	g.phase = PhaseLinger

	g.Update(testDt)
	g.Update(testDt)
	if g.Result() != OutcomeGameOver {
		t.Errorf("Expected gameover outcome, got %v", g.Result())
	}
}

func TestLingerWaitsForThreats(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt)
	g.phase = PhaseLinger

	g.launchIncoming(vmath.V2(10, 10), vmath.V2(10, 200), 20)
	g.Update(testDt)
	if g.Phase() != PhaseLinger {
		t.Fatalf("Expected linger while a missile flies, got %v", g.Phase())
	}

	g.world.PurgeByProperty(component.IsMissile)
	g.Update(testDt)
	if g.Phase() != PhaseDebriefing {
		t.Errorf("Expected debriefing with cities alive, got %v", g.Phase())
	}
	if g.View().Debrief == nil {
		t.Error("Expected debriefing view")
	}
}

func TestLingerEndsWithSmartbombOnRuin(t *testing.T) {
	g, _ := newTestGame(t, nil)
	g.Update(testDt)
	g.state.Cities[2] = false
	g.setupWave()
	g.phase = PhaseLinger

	dest := parameter.PosCities[2]
	s := g.launch.Smartbomb(dest.Add(vmath.V2(0.3, -40)), dest, 100)

	for i := 0; i < 1800 && g.Phase() == PhaseLinger; i++ {
		g.Update(testDt)
	}
	if g.Phase() != PhaseDebriefing {
		t.Fatalf("Expected linger to settle into debriefing, got %v", g.Phase())
	}
	if g.world.Alive(s) {
		t.Error("Expected smart bomb removed on the ruin")
	}
	if g.state.Cities[2] {
		t.Error("Expected ruined slot to stay ruined")
	}
	t.Logf("✓ Smart bomb aimed at a ruin does not stall the wave")
}

func TestPlayingEndsWhenSilosGone(t *testing.T) {
	g, _ := newTestGame(t, nil)
	toPlaying(t, g)

	for i := range g.state.Batteries {
		g.state.Batteries[i] = nil
	}
	g.Update(testDt)
	if g.Phase() != PhasePreLinger {
		t.Errorf("Expected pre-linger, got %v", g.Phase())
	}
}

func TestHighScoreView(t *testing.T) {
	g, _ := newTestGame(t, nil)
	if hs := g.View().HighScore; hs != 7500 {
		t.Errorf("Expected table leader 7500, got %d", hs)
	}
	g.state.Score = 9000
	if hs := g.View().HighScore; hs != 9000 {
		t.Errorf("Expected beaten high score 9000, got %d", hs)
	}
}
