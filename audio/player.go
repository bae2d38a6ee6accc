// Package audio synthesizes the game sounds with beep and mixes them to the speaker
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/engine"
)

// DefaultSampleRate is the speaker output rate
const DefaultSampleRate = beep.SampleRate(44100)

// Player plays pre-rendered sounds through one mixer
// It implements engine.SoundPlayer and is safe for use from the game loop
// while the speaker goroutine pulls samples
type Player struct {
	mu      sync.Mutex
	format  beep.Format
	buffers map[string]*beep.Buffer
	mixer   *beep.Mixer
	ctrl    *beep.Ctrl
	out     beep.Streamer
	log     *zap.Logger
	started bool
}

var _ engine.SoundPlayer = (*Player)(nil)

// NewPlayer renders the sound bank at rate; volume is a gain in effects.Volume base-2 steps
func NewPlayer(rate beep.SampleRate, volume float64, log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	p := &Player{
		format:  beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
		buffers: make(map[string]*beep.Buffer, len(bank)),
		mixer:   &beep.Mixer{},
		log:     log.Named("audio"),
	}
	p.ctrl = &beep.Ctrl{Streamer: p.mixer}
	p.out = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: volume}

	for name, r := range bank {
		buf := beep.NewBuffer(p.format)
		buf.Append(r(rate))
		p.buffers[name] = buf
	}
	return p
}

// Start opens the speaker and begins pulling the mix
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p)
	p.started = true
	p.log.Debug("speaker started", zap.Int("rate", int(p.format.SampleRate)))
	return nil
}

// Close stops every sound and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	started := p.started
	p.started = false
	p.mixer.Clear()
	p.mu.Unlock()

	if started {
		speaker.Clear()
		speaker.Close()
	}
}

// Play starts a sound; loops 0 plays once, n repeats n more times, -1 until stopped
// Unknown names are logged and return a handle that does nothing
func (p *Player) Play(name string, loops int) component.SoundHandle {
	buf, ok := p.buffers[name]
	if !ok {
		p.log.Warn("unknown sound", zap.String("sound", name))
		return engine.NopSound{}.Play(name, loops)
	}

	count := loops + 1
	if loops < 0 {
		count = -1
	}
	h := &handle{p: p, ctrl: &beep.Ctrl{Streamer: beep.Loop(count, buf.Streamer(0, buf.Len()))}}

	p.mu.Lock()
	p.mixer.Add(h.ctrl)
	p.mu.Unlock()
	return h
}

// PauseAll silences the mix while keeping every sound's position
func (p *Player) PauseAll() {
	p.mu.Lock()
	p.ctrl.Paused = true
	p.mu.Unlock()
}

// ResumeAll continues where PauseAll stopped
func (p *Player) ResumeAll() {
	p.mu.Lock()
	p.ctrl.Paused = false
	p.mu.Unlock()
}

// Active returns the number of sounds still in the mix
func (p *Player) Active() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Len()
}

// Stream pulls the mix; called by the speaker goroutine
func (p *Player) Stream(samples [][2]float64) (n int, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.out.Stream(samples)
}

func (p *Player) Err() error { return nil }

type handle struct {
	p    *Player
	ctrl *beep.Ctrl
}

// Stop drops the sound from the mix on the next pull
func (h *handle) Stop() {
	h.p.mu.Lock()
	h.ctrl.Streamer = nil
	h.p.mu.Unlock()
}
