// Package game is the orchestrator: wave flow, threat scheduling, player
// defense, debriefing and demo playback on top of the entity world
package game

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/config"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/highscore"
	"github.com/lixenwraith/missile-command/launcher"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/status"
	"github.com/lixenwraith/missile-command/system"
	"github.com/lixenwraith/missile-command/timer"
	"github.com/lixenwraith/missile-command/vmath"
	"github.com/lixenwraith/missile-command/wave"
)

// HighscoreTable is the part of the table the game reads
type HighscoreTable interface {
	Leader() highscore.Record
	Last() highscore.Record
}

// Options wires a Game
// Sound, Highscores, Status and Logger default to silent in-memory versions
type Options struct {
	Config     *config.Config
	Sound      engine.SoundPlayer
	Highscores HighscoreTable
	Demo       *DemoScript // nil for a player game
	Status     *status.Registry
	Logger     *zap.Logger
}

// Game runs one session from the first wave to game over
// Single-threaded: DispatchEvent, Update and Draw are called from one loop
type Game struct {
	cfg    config.GameConfig
	waves  []wave.Row
	flyers []wave.FlyerRow

	log    *zap.Logger
	sound  engine.SoundPlayer
	scores HighscoreTable
	stats  *metrics

	demo       *DemoScript
	demoWalker *DemoWalker

	rng    *rand.Rand
	world  *engine.World
	state  *engine.GameState
	events *event.Queue
	launch *launcher.Launcher
	sys    *system.Context

	phase   Phase
	paused  bool
	outcome Outcome
	mouse   vmath.Vec2

	waveIter       *wave.Iterator
	wave           wave.Wave
	targets        *targetCycle
	incomingLeft   int
	incoming       *wave.Incoming
	smartbombsLeft int
	smartbombs     *wave.Incoming
	cdFlyer        timer.Cooldown
	briefing       timer.Cooldown
	debrief        *Debriefing
}

type metrics struct {
	phase      *status.AtomicString
	level      *atomic.Int64
	slots      *atomic.Int64
	left       *atomic.Int64
	smartbombs *atomic.Int64
	entities   *atomic.Int64
}

// New validates the wave tables and returns a game ready for Reset
func New(opts Options) (*Game, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:    cfg.Game,
		waves:  cfg.WaveTable(),
		flyers: cfg.FlyerTable(),
		log:    opts.Logger,
		sound:  opts.Sound,
		scores: opts.Highscores,
		demo:   opts.Demo,
		events: event.NewQueue(),
		world:  engine.NewWorld(),
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	g.log = g.log.Named("game")
	if g.sound == nil {
		g.sound = engine.NopSound{}
	}
	if g.scores == nil {
		g.scores = highscore.New(nil)
	}
	reg := opts.Status
	if reg == nil {
		reg = status.NewRegistry()
	}
	g.stats = &metrics{
		phase:      reg.Strings.Get(status.KeyPhase),
		level:      reg.Ints.Get(status.KeyLevel),
		slots:      reg.Ints.Get(status.KeySlots),
		left:       reg.Ints.Get(status.KeyLeft),
		smartbombs: reg.Ints.Get(status.KeySmartbombs),
		entities:   reg.Ints.Get(status.KeyEntities),
	}

	if _, err := wave.NewIterator(g.waves, g.flyers); err != nil {
		return nil, fmt.Errorf("wave table: %w", err)
	}

	g.state = engine.NewGameState(parameter.CityCount, parameter.BatteryCount, g.cfg.BonusCityScore, g.events)
	g.launch = launcher.New(g.world, nil, g.sound)
	g.sys = system.NewContext(g.launch, g.state, g.events)

	g.Reset()
	return g, nil
}

// Reset starts a fresh session at wave one
func (g *Game) Reset() {
	g.world.Reset()
	g.events.Clear()
	g.state.Reset(parameter.CityCount, parameter.BatteryCount)

	seed := g.cfg.Seed
	switch {
	case g.demo != nil:
		seed = parameter.DemoSeed
	case seed == 0:
		seed = time.Now().UnixNano()
	}
	g.rng = rand.New(rand.NewSource(seed))
	g.launch.Rand = g.rng

	g.world.CreateArchetype(component.IsMissile, component.IsIncoming)
	g.world.CreateArchetype(component.IsExplosion)
	g.world.CreateArchetype(component.IsSmartbomb)
	g.world.CreateArchetype(component.IsFlyer)

	g.mouse = parameter.Screen.Center()
	if _, err := g.launch.Crosshair(g.mouse); err != nil {
		panic(err)
	}

	// Tables were validated in New
	g.waveIter, _ = wave.NewIterator(g.waves, g.flyers)
	g.phase = phaseGraph.Start()
	g.paused = false
	g.outcome = OutcomeRunning
	g.debrief = nil
	g.incoming = wave.NewIncoming(g.cfg.IncomingSlots)
	g.smartbombs = wave.NewIncoming(g.cfg.SmartbombSlots)
	if g.demo != nil {
		g.demoWalker = g.demo.Walker()
	}

	g.log.Debug("reset", zap.Int64("seed", seed), zap.Bool("demo", g.demo != nil))
}

// Restart resumes after an external overlay, such as pause, returned control
func (g *Game) Restart() {
	g.paused = false
	g.sound.ResumeAll()
}

// DispatchEvent applies one player input
func (g *Game) DispatchEvent(ev InputEvent) {
	if ev.Kind == InputQuit {
		g.finish(OutcomeQuit)
		return
	}

	if g.demo != nil {
		if ev.Kind == InputKey {
			g.finish(OutcomeDemoEnd)
		}
		return
	}

	switch ev.Kind {
	case InputPointer:
		g.setMouse(ev.Pos)
	case InputKey:
		if ev.Key == KeyPause {
			g.togglePause()
			return
		}
		if g.paused {
			return
		}
		if pad, ok := KeySiloMap[ev.Key]; ok && g.phase == PhasePlaying {
			g.launchDefense(pad, g.mouse)
		}
	}
}

func (g *Game) togglePause() {
	if g.paused {
		g.Restart()
		return
	}
	g.paused = true
	g.sound.PauseAll()
}

// setMouse moves the crosshair, clamped above the ground line
func (g *Game) setMouse(p vmath.Vec2) {
	g.mouse = p.Clamp(parameter.CrosshairConstraint)
	if e, ok := g.world.Named(parameter.CrosshairName); ok {
		g.world.PRSA.MustGet(e).Pos = g.mouse
	}
}

// Update advances the game by dt seconds
func (g *Game) Update(dt float64) {
	if g.paused || g.outcome != OutcomeRunning {
		return
	}

	switch g.phase {
	case PhaseSetup:
		g.updateSetup()
	case PhaseBriefing:
		g.updateBriefing(dt)
	case PhasePlaying:
		g.updatePlaying(dt)
	case PhasePreLinger:
		g.updatePreLinger()
	case PhaseLinger:
		g.updateLinger(dt)
	case PhaseDebriefing:
		g.updateDebriefing(dt)
	case PhaseGameOver:
		g.updateGameOver()
	}

	g.events.Drain(g.handleEvent)
	g.publish()
}

// advance moves to the next phase along branch
func (g *Game) advance(branch int) {
	next, err := NextPhase(g.phase, branch)
	if err != nil {
		panic(fmt.Errorf("phase %v: %w", g.phase, err))
	}
	g.log.Debug("phase", zap.Stringer("from", g.phase), zap.Stringer("to", next))
	g.phase = next
}

func (g *Game) updateSetup() {
	g.setupWave()
	g.briefing = timer.NewCooldown(parameter.BriefingDuration)
	g.advance(0)
}

func (g *Game) updateBriefing(dt float64) {
	g.briefing.Tick(dt)
	if g.briefing.Cold() {
		g.advance(0)
	}
}

func (g *Game) updatePlaying(dt float64) {
	if g.state.SilosLeft() == 0 ||
		(g.incoming.Len() == 0 && g.incomingLeft <= 0 &&
			g.smartbombs.Len() == 0 && g.smartbombsLeft <= 0) {
		g.advance(0)
		return
	}

	if g.demo != nil {
		g.playDemo(dt)
	} else {
		g.spawnThreats(dt)
	}
	system.Run(g.sys, dt)
}

// updatePreLinger speeds up every remaining threat threefold
func (g *Game) updatePreLinger() {
	w := g.world
	for _, kind := range []core.Property{component.IsMissile, component.IsFlyer} {
		for _, e := range w.Query().With(w.Momentum).Has(kind).Execute() {
			m := w.Momentum.MustGet(e)
			m.Velocity = m.Velocity.Scale(3)
		}
	}
	for _, e := range w.Query().With(w.Speed).Has(component.IsSmartbomb).Execute() {
		w.Speed.MustGet(e).Value *= 3
	}
	g.advance(0)
}

// updateLinger lets the battle settle, then branches on surviving cities
func (g *Game) updateLinger(dt float64) {
	w := g.world
	settled := w.CountWith(component.IsMissile) == 0 &&
		w.CountWith(component.IsFlyer) == 0 &&
		w.CountWith(component.IsExplosion) == 0 &&
		w.CountWith(component.IsSmartbomb) == 0

	if settled {
		if !g.state.AnyCity() && g.state.BonusCities == 0 {
			g.advance(BranchGameOver)
		} else {
			g.advance(BranchDebriefing)
			g.debrief = NewDebriefing(g.world, g.state, g.events)
		}
	}
	system.Run(g.sys, dt)
}

func (g *Game) updateDebriefing(dt float64) {
	if g.debrief == nil {
		g.debrief = NewDebriefing(g.world, g.state, g.events)
	}
	if !g.debrief.Update(dt) {
		return
	}
	g.debrief = nil

	if g.demo != nil {
		g.finish(OutcomeDemoEnd)
		return
	}
	g.advance(0)
}

func (g *Game) updateGameOver() {
	outcome := OutcomeGameOver
	if g.state.Score > g.scores.Last().Score {
		outcome = OutcomeHighscore
	}
	g.log.Info("game over",
		zap.Int("score", g.state.Score),
		zap.Int("level", g.state.Level),
		zap.Stringer("outcome", outcome))
	g.finish(outcome)
}

func (g *Game) finish(o Outcome) {
	if g.outcome != OutcomeRunning {
		return
	}
	g.outcome = o
	g.stopSounds()
}

// handleEvent consumes queued notifications after the systems ran
func (g *Game) handleEvent(ev event.GameEvent) {
	if system.HandleShutdown(g.sys, ev) {
		return
	}

	switch ev.Type {
	case event.EventIncomingReleased:
		g.incoming.Remove(ev.Entity)
	case event.EventSmartbombReleased:
		g.smartbombs.Remove(ev.Entity)
	case event.EventFlyerGone:
		g.cdFlyer.Reset()
	case event.EventSoundRequest:
		if p, ok := ev.Payload.(*event.SoundRequestPayload); ok {
			g.sound.Play(p.Sound, p.Loops)
		}
	case event.EventBonusCity:
		g.sound.Play(engine.SoundBonusCity, 0)
		if p, ok := ev.Payload.(*event.BonusCityPayload); ok {
			g.log.Info("bonus city", zap.Int("bonus_cities", p.Count), zap.Int("score", p.Score))
		}
	}
}

// stopSounds silences every looping entity sound
func (g *Game) stopSounds() {
	for _, e := range g.world.Sound.AllEntity() {
		if snd := g.world.Sound.Get(e); snd != nil && snd.Handle != nil {
			snd.Handle.Stop()
		}
	}
}

func (g *Game) publish() {
	g.stats.phase.Store(g.phase.String())
	g.stats.level.Store(int64(g.state.Level))
	g.stats.slots.Store(int64(g.incoming.Len()))
	g.stats.left.Store(int64(g.incomingLeft))
	g.stats.smartbombs.Store(int64(g.smartbombs.Len()))
	g.stats.entities.Store(int64(g.world.EntityCount()))
}

// Phase returns the current wave phase
func (g *Game) Phase() Phase { return g.phase }

// Paused reports whether Update is suspended
func (g *Game) Paused() bool { return g.paused }

// Result returns the session outcome, OutcomeRunning while in progress
func (g *Game) Result() Outcome { return g.outcome }

// Score returns the current score
func (g *Game) Score() int { return g.state.Score }

// Demo reports whether the game replays a recording
func (g *Game) Demo() bool { return g.demo != nil }
