package game

import "github.com/lixenwraith/missile-command/engine/fsm"

// Phase is one step of the per-wave flow
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseBriefing
	PhasePlaying
	PhasePreLinger
	PhaseLinger
	PhaseDebriefing
	PhaseGameOver
)

var phaseNames = [...]string{"setup", "briefing", "playing", "pre_linger", "linger", "debriefing", "gameover"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "unknown"
}

// Branches out of PhaseLinger
const (
	BranchDebriefing = 0
	BranchGameOver   = 1
)

var phaseGraph = fsm.NewGraph(PhaseSetup).
	Add(PhaseSetup, PhaseBriefing).
	Add(PhaseBriefing, PhasePlaying).
	Add(PhasePlaying, PhasePreLinger).
	Add(PhasePreLinger, PhaseLinger).
	Add(PhaseLinger, PhaseDebriefing, PhaseGameOver).
	Add(PhaseDebriefing, PhaseSetup).
	Add(PhaseGameOver)

// NextPhase returns the successor of current along branch
// PhaseGameOver is terminal and returns fsm.ErrTerminal
func NextPhase(current Phase, branch int) (Phase, error) {
	return phaseGraph.Next(current, branch)
}

// DebriefPhase is one step of the end-of-wave tally
type DebriefPhase uint8

const (
	DebriefSetup DebriefPhase = iota
	DebriefLingerPre
	DebriefMissiles
	DebriefCities
	DebriefLingerPost
)

var debriefGraph = fsm.NewGraph(DebriefSetup).
	Add(DebriefSetup, DebriefLingerPre).
	Add(DebriefLingerPre, DebriefMissiles).
	Add(DebriefMissiles, DebriefCities).
	Add(DebriefCities, DebriefLingerPost).
	Add(DebriefLingerPost)

// NextDebriefPhase returns the successor of a tally step
func NextDebriefPhase(current DebriefPhase) (DebriefPhase, error) {
	return debriefGraph.Next(current, 0)
}
