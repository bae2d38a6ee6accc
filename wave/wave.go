// Package wave holds the wave tables, the combined wave iterator and the
// bounded slot sets that limit simultaneous threats
package wave

import (
	"errors"
	"fmt"
)

// ErrEmptyTable is returned when a wave or flyer table has no rows
var ErrEmptyTable = errors.New("empty wave table")

// Row is one entry of the wave table
type Row struct {
	Missiles     int
	MissileSpeed float64 // Pixels per second
	Smartbombs   int
}

// FlyerRow is one entry of the flyer table
// A zero Cooldown disables flyers for the wave
type FlyerRow struct {
	MinHeight     float64
	MaxHeight     float64
	Cooldown      float64 // Seconds between flyer appearances
	ShootCooldown float64 // Seconds between bomblet volleys
}

// Wave is the combined record for one wave
type Wave struct {
	Row
	Flyer FlyerRow
}

// HasFlyers reports whether the wave spawns flyers at all
func (w Wave) HasFlyers() bool {
	return w.Flyer.Cooldown > 0
}

// Iterator cycles the wave and flyer tables independently by their own length
// Call n of a fresh iterator always yields the same record
type Iterator struct {
	waves  []Row
	flyers []FlyerRow
	wIdx   int
	fIdx   int
}

// NewIterator creates an iterator over copies of both tables
func NewIterator(waves []Row, flyers []FlyerRow) (*Iterator, error) {
	if len(waves) == 0 {
		return nil, fmt.Errorf("%w: no waves", ErrEmptyTable)
	}
	if len(flyers) == 0 {
		return nil, fmt.Errorf("%w: no flyers", ErrEmptyTable)
	}
	it := &Iterator{
		waves:  append([]Row(nil), waves...),
		flyers: append([]FlyerRow(nil), flyers...),
	}
	return it, nil
}

// Next yields the current combined record and advances both cycles
func (it *Iterator) Next() Wave {
	w := Wave{Row: it.waves[it.wIdx], Flyer: it.flyers[it.fIdx]}
	it.wIdx = (it.wIdx + 1) % len(it.waves)
	it.fIdx = (it.fIdx + 1) % len(it.flyers)
	return w
}
