package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/missile-command/engine"
)

// recipe synthesizes one sound at the given rate
type recipe func(rate beep.SampleRate) beep.Streamer

func tone(freq float64, d time.Duration, wave WaveType, vol float64) recipe {
	return func(rate beep.SampleRate) beep.Streamer {
		osc := NewOscillator(freq, d, wave, rate)
		return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, d/3, rate), vol)
	}
}

func sweep(from, to float64, d time.Duration, wave WaveType, vol float64) recipe {
	return func(rate beep.SampleRate) beep.Streamer {
		osc := NewSweep(from, to, d, wave, rate)
		return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, d/4, rate), vol)
	}
}

func seq(parts ...recipe) recipe {
	return func(rate beep.SampleRate) beep.Streamer {
		ss := make([]beep.Streamer, len(parts))
		for i, p := range parts {
			ss[i] = p(rate)
		}
		return beep.Seq(ss...)
	}
}

func mix(parts ...recipe) recipe {
	return func(rate beep.SampleRate) beep.Streamer {
		ss := make([]beep.Streamer, len(parts))
		for i, p := range parts {
			ss[i] = p(rate)
		}
		return beep.Mix(ss...)
	}
}

func boom(d time.Duration) recipe {
	return func(rate beep.SampleRate) beep.Streamer {
		noise := NewOscillator(0, d, WaveNoise, rate)
		rumble := NewSweep(90, 40, d, WaveSine, rate)
		return NewDecay(beep.Mix(newVolume(noise, 0.25), newVolume(rumble, 0.3)), 6, rate)
	}
}

// bank maps the sound names of engine.SoundPlayer to their synth recipes
var bank = map[string]recipe{
	engine.SoundLaunch: mix(
		sweep(900, 200, 250*time.Millisecond, WaveSaw, 0.15),
		tone(0, 250*time.Millisecond, WaveNoise, 0.1),
	),
	engine.SoundExplosion: boom(600 * time.Millisecond),
	engine.SoundBrzzz:     tone(100, 150*time.Millisecond, WaveSaw, 0.3),
	engine.SoundLowAmmo:   seq(tone(880, 80*time.Millisecond, WaveSquare, 0.15), tone(0, 40*time.Millisecond, WaveSine, 0)),
	engine.SoundFlyer:     sweep(300, 420, 400*time.Millisecond, WaveSquare, 0.08),
	engine.SoundSmartbomb: seq(
		tone(600, 120*time.Millisecond, WaveSine, 0.2),
		tone(900, 120*time.Millisecond, WaveSine, 0.2),
	),
	engine.SoundSiloCount: tone(1200, 40*time.Millisecond, WaveSquare, 0.12),
	engine.SoundBonusCity: seq(
		tone(523.25, 120*time.Millisecond, WaveSine, 0.25),
		tone(659.25, 120*time.Millisecond, WaveSine, 0.25),
		tone(783.99, 240*time.Millisecond, WaveSine, 0.25),
	),
}
