package engine

import "github.com/lixenwraith/missile-command/component"

// Sound names understood by every SoundPlayer
const (
	SoundLaunch    = "launch"
	SoundExplosion = "explosion"
	SoundBrzzz     = "brzzz"
	SoundLowAmmo   = "low-ammo"
	SoundFlyer     = "flyer"
	SoundSmartbomb = "smartbomb"
	SoundSiloCount = "silo-count"
	SoundBonusCity = "bonus-city"
)

// SoundPlayer is the fire-and-forget sound provider
// loops: 0 plays once, n plays n additional times, -1 loops until stopped
type SoundPlayer interface {
	Play(sound string, loops int) component.SoundHandle
	PauseAll()
	ResumeAll()
}

// NopSound is a silent SoundPlayer for tests and muted runs
type NopSound struct{}

type nopHandle struct{}

func (nopHandle) Stop() {}

func (NopSound) Play(string, int) component.SoundHandle { return nopHandle{} }
func (NopSound) PauseAll()                              {}
func (NopSound) ResumeAll()                             {}
