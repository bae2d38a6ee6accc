// Package timer provides dt-driven countdown and interpolation primitives
// No wall-clock access: every value advances only through Tick
package timer

// Cooldown counts down a fixed duration
// A fresh Cooldown is hot until duration seconds of dt have been ticked
type Cooldown struct {
	Duration float64
	elapsed  float64
}

// NewCooldown creates a hot cooldown of d seconds
func NewCooldown(d float64) Cooldown {
	return Cooldown{Duration: d}
}

// Tick advances the cooldown by dt seconds
func (c *Cooldown) Tick(dt float64) {
	c.elapsed += dt
}

// Cold reports whether the duration has fully elapsed
func (c *Cooldown) Cold() bool {
	return c.elapsed >= c.Duration
}

// Hot is the inverse of Cold
func (c *Cooldown) Hot() bool {
	return !c.Cold()
}

// Reset restarts the countdown with the current duration
func (c *Cooldown) Reset() {
	c.elapsed = 0
}

// ResetTo restarts the countdown with a new duration
func (c *Cooldown) ResetTo(d float64) {
	c.Duration = d
	c.elapsed = 0
}

// Remaining returns seconds left, zero once cold
func (c *Cooldown) Remaining() float64 {
	if r := c.Duration - c.elapsed; r > 0 {
		return r
	}
	return 0
}

// Normalized returns elapsed/duration clamped to [0,1]
func (c *Cooldown) Normalized() float64 {
	if c.Duration <= 0 {
		return 1
	}
	n := c.elapsed / c.Duration
	if n > 1 {
		return 1
	}
	return n
}
