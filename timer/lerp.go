package timer

import "math"

// Repeat selects how a LerpThing behaves after one full duration
type Repeat uint8

const (
	// RepeatNone holds the end value
	RepeatNone Repeat = iota
	// RepeatLoop restarts from the start value
	RepeatLoop
	// RepeatBounce alternates direction every loop
	RepeatBounce
)

// LerpThing interpolates From -> To over Duration seconds
// Loop index counts completed durations; with RepeatBounce even loops run
// From -> To and odd loops run To -> From
type LerpThing struct {
	From, To float64
	Duration float64
	Repeat   Repeat
	Loops    int // 0 = unbounded

	elapsed float64
}

// NewLerp creates a LerpThing positioned at its start value
func NewLerp(from, to, duration float64, repeat Repeat, loops int) LerpThing {
	return LerpThing{From: from, To: to, Duration: duration, Repeat: repeat, Loops: loops}
}

// Tick advances the curve by dt seconds
func (l *LerpThing) Tick(dt float64) {
	l.elapsed += dt
}

// Loop returns the index of the loop currently running
// Clamped to Loops-1 once finished
func (l *LerpThing) Loop() int {
	if l.Duration <= 0 {
		return l.lastLoop()
	}
	loop := int(math.Floor(l.elapsed / l.Duration))
	if l.Repeat == RepeatNone {
		return 0
	}
	if l.Loops > 0 && loop >= l.Loops {
		return l.Loops - 1
	}
	return loop
}

func (l *LerpThing) lastLoop() int {
	if l.Loops > 0 {
		return l.Loops - 1
	}
	return 0
}

// Finished reports whether the curve has reached its final value
func (l *LerpThing) Finished() bool {
	if l.Duration <= 0 {
		return true
	}
	switch l.Repeat {
	case RepeatNone:
		return l.elapsed >= l.Duration
	default:
		return l.Loops > 0 && l.elapsed >= l.Duration*float64(l.Loops)
	}
}

// Value returns the interpolated value at the current time
func (l *LerpThing) Value() float64 {
	return l.From + (l.To-l.From)*l.progress()
}

// progress maps elapsed time onto [0,1] along the current loop direction
func (l *LerpThing) progress() float64 {
	if l.Finished() {
		if l.Repeat == RepeatBounce && l.lastLoop()%2 == 1 {
			return 0
		}
		return 1
	}

	t := l.elapsed / l.Duration
	loop := math.Floor(t)
	frac := t - loop

	if l.Repeat == RepeatNone {
		return frac
	}
	if l.Repeat == RepeatBounce && int(loop)%2 == 1 {
		return 1 - frac
	}
	return frac
}
