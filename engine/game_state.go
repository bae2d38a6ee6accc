package engine

import (
	"github.com/lixenwraith/missile-command/core"
	"github.com/lixenwraith/missile-command/event"
)

// GameState centralizes score, city and battery state
// Passed explicitly to every system; single-threaded, no locking
type GameState struct {
	// ===== SCORING =====
	Score       int
	ScoreMult   int
	BonusCities int

	// BonusCityScore is the score step that grants one bonus city
	BonusCityScore int

	// ===== WORLD OBJECTS =====

	// Cities holds one alive flag per city slot
	Cities []bool

	// Batteries holds the silo entities of each launch pad
	// Launching pops the last silo; a destroyed battery is emptied
	Batteries [][]core.Entity

	Level int

	// Events receives bonus city notifications
	Events *event.Queue
}

// NewGameState creates state for the given number of city slots and batteries
func NewGameState(cities, batteries, bonusCityScore int, events *event.Queue) *GameState {
	gs := &GameState{
		BonusCityScore: bonusCityScore,
		Events:         events,
	}
	gs.Reset(cities, batteries)
	return gs
}

// Reset restores a fresh game: all cities alive, no score, level -1
func (gs *GameState) Reset(cities, batteries int) {
	gs.Score = 0
	gs.ScoreMult = 1
	gs.BonusCities = 0
	gs.Level = -1
	gs.Cities = make([]bool, cities)
	for i := range gs.Cities {
		gs.Cities[i] = true
	}
	gs.Batteries = make([][]core.Entity, batteries)
}

// Award adds base*ScoreMult to the score and returns the points gained
// Every crossed BonusCityScore threshold grants one bonus city
func (gs *GameState) Award(base int) int {
	gained := base * gs.ScoreMult
	gs.AddScore(gained)
	return gained
}

// AddScore adds raw points and grants bonus cities for crossed thresholds
// Returns the number of bonus cities granted
func (gs *GameState) AddScore(points int) int {
	if gs.BonusCityScore <= 0 {
		gs.Score += points
		return 0
	}

	before := gs.Score / gs.BonusCityScore
	gs.Score += points
	granted := gs.Score/gs.BonusCityScore - before
	if granted > 0 {
		gs.BonusCities += granted
		if gs.Events != nil {
			gs.Events.Push(event.GameEvent{
				Type:    event.EventBonusCity,
				Payload: &event.BonusCityPayload{Count: gs.BonusCities, Score: gs.Score},
			})
		}
	}
	return granted
}

// CitiesAlive counts surviving city slots
func (gs *GameState) CitiesAlive() int {
	n := 0
	for _, alive := range gs.Cities {
		if alive {
			n++
		}
	}
	return n
}

// AnyCity reports whether at least one city survives
func (gs *GameState) AnyCity() bool {
	return gs.CitiesAlive() > 0
}

// SilosLeft counts remaining silos across all batteries
func (gs *GameState) SilosLeft() int {
	n := 0
	for _, b := range gs.Batteries {
		n += len(b)
	}
	return n
}

// PopSilo removes and returns the last silo of a battery
func (gs *GameState) PopSilo(battery int) (core.Entity, bool) {
	silos := gs.Batteries[battery]
	if len(silos) == 0 {
		return core.NoEntity, false
	}
	e := silos[len(silos)-1]
	gs.Batteries[battery] = silos[:len(silos)-1]
	return e, true
}
