package component

import "github.com/lixenwraith/missile-command/timer"

// LifetimeComponent flags the entity dead when the countdown goes cold
type LifetimeComponent struct {
	Remaining timer.Cooldown
}

// FlyerShootComponent gates bomblet release of a flyer
type FlyerShootComponent struct {
	Cooldown timer.Cooldown
}
