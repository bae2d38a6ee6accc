package game

import (
	"math/rand"

	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/vmath"
)

// maxTargetCities bounds how many surviving cities a wave aims at
const maxTargetCities = 3

// targetCycle hands out threat destinations round-robin
type targetCycle struct {
	points []vmath.Vec2
	idx    int
}

// newTargetCycle interleaves up to three shuffled surviving cities with the
// battery positions: city, battery, city, battery...
// Cities repeat when fewer than three survive
func newTargetCycle(rng *rand.Rand, cities []bool) *targetCycle {
	var alive []int
	for slot, ok := range cities {
		if ok {
			alive = append(alive, slot)
		}
	}
	rng.Shuffle(len(alive), func(i, j int) { alive[i], alive[j] = alive[j], alive[i] })
	if len(alive) > maxTargetCities {
		alive = alive[:maxTargetCities]
	}

	tc := &targetCycle{}
	for i, battery := range parameter.PosBatteries {
		if len(alive) > 0 {
			tc.points = append(tc.points, parameter.PosCities[alive[i%len(alive)]])
		}
		tc.points = append(tc.points, battery)
	}
	return tc
}

func (tc *targetCycle) next() vmath.Vec2 {
	p := tc.points[tc.idx]
	tc.idx = (tc.idx + 1) % len(tc.points)
	return p
}
