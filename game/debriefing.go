package game

import (
	"github.com/lixenwraith/missile-command/component"
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/timer"
	"github.com/lixenwraith/missile-command/vmath"
)

// Debriefing tallies unused silos and surviving cities after a wave
// Each counted item is moved onto a tally row and scored with the wave multiplier
type Debriefing struct {
	world  *engine.World
	state  *engine.GameState
	events *event.Queue

	phase DebriefPhase
	cd    timer.Cooldown

	silos  []core.Entity
	cities []core.Entity

	siloPos vmath.Vec2
	cityPos vmath.Vec2

	MissileScore int
	CityScore    int
}

// NewDebriefing snapshots the silos and cities to count
func NewDebriefing(w *engine.World, gs *engine.GameState, events *event.Queue) *Debriefing {
	d := &Debriefing{
		world:   w,
		state:   gs,
		events:  events,
		phase:   debriefGraph.Start(),
		siloPos: parameter.PosMissilesDebriefing,
		cityPos: parameter.PosCitiesDebriefing,
	}
	for _, silos := range gs.Batteries {
		d.silos = append(d.silos, silos...)
	}

	bySlot := make(map[int]core.Entity)
	for _, e := range w.Query().With(w.Slot).Has(component.IsCity).Execute() {
		bySlot[w.Slot.MustGet(e).ID] = e
	}
	for slot, alive := range gs.Cities {
		if e, ok := bySlot[slot]; alive && ok {
			d.cities = append(d.cities, e)
		}
	}
	return d
}

// Phase returns the current tally step
func (d *Debriefing) Phase() DebriefPhase { return d.phase }

// Update advances the tally; returns true once it is complete
func (d *Debriefing) Update(dt float64) bool {
	d.cd.Tick(dt)

	switch d.phase {
	case DebriefSetup:
		d.cd = timer.NewCooldown(parameter.DebriefLingerPre)
		d.next()

	case DebriefLingerPre:
		if d.cd.Cold() {
			d.cd = timer.NewCooldown(parameter.DebriefCount)
			d.next()
		}

	case DebriefMissiles:
		if d.cd.Hot() {
			break
		}
		if len(d.silos) == 0 {
			d.cd.Reset()
			d.next()
			break
		}
		d.MissileScore += d.count(&d.silos, &d.siloPos, parameter.ScoreUnusedMissile, parameter.DebriefSiloSpacing)
		d.cd.Reset()

	case DebriefCities:
		if d.cd.Hot() {
			break
		}
		if len(d.cities) == 0 {
			d.cd = timer.NewCooldown(parameter.DebriefLingerPost)
			d.next()
			break
		}
		d.CityScore += d.count(&d.cities, &d.cityPos, parameter.ScoreCity, parameter.DebriefCitySpacing)
		d.cd.ResetTo(parameter.DebriefCityCount)

	case DebriefLingerPost:
		if d.cd.Cold() {
			d.world.PurgeByProperty(component.IsDebriefing)
			return true
		}
	}
	return false
}

// count scores the first pending item and moves it onto the tally row
func (d *Debriefing) count(items *[]core.Entity, row *vmath.Vec2, base int, spacing float64) int {
	e := (*items)[0]
	*items = (*items)[1:]

	points := d.state.Award(base)
	if d.world.Alive(e) {
		d.world.PRSA.MustGet(e).Pos = *row
		d.world.SetProperty(e, component.IsDebriefing)
	}
	row.X += spacing

	d.events.Push(event.GameEvent{
		Type:    event.EventSoundRequest,
		Payload: &event.SoundRequestPayload{Sound: engine.SoundSiloCount},
	})
	return points
}

func (d *Debriefing) next() {
	p, err := NextDebriefPhase(d.phase)
	if err != nil {
		return
	}
	d.phase = p
}
