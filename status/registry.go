// Package status is the runtime counter registry shown on the HUD title line
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Well-known keys written by the game loop
const (
	KeyPhase      = "game.phase"
	KeyLevel      = "game.level"
	KeySlots      = "game.slots"
	KeyLeft       = "game.left"
	KeySmartbombs = "game.smartbombs"
	KeyEntities   = "engine.entities"
	KeyFPS        = "loop.fps"
)

// Registry groups metric maps by value type
// Writers cache the pointers once; readers may run on another goroutine
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns the number of registered metrics
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Title renders "app - fps=60.00  slots=3  left=9  entities=41"
// Only registered keys appear
func (r *Registry) Title(app string) string {
	var b strings.Builder
	b.WriteString(app)
	b.WriteString(" -")

	if r.Floats.Has(KeyFPS) {
		fmt.Fprintf(&b, " fps=%.2f ", r.Floats.Get(KeyFPS).Get())
	}
	for _, k := range []struct{ key, label string }{
		{KeySlots, "slots"},
		{KeyLeft, "left"},
		{KeyEntities, "entities"},
	} {
		if r.Ints.Has(k.key) {
			fmt.Fprintf(&b, " %s=%d ", k.label, r.Ints.Get(k.key).Load())
		}
	}
	return strings.TrimRight(b.String(), " -")
}
