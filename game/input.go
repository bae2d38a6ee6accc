package game

import "github.com/lixenwraith/missile-command/vmath"

// InputKind classifies player input delivered to DispatchEvent
type InputKind uint8

const (
	InputQuit InputKind = iota + 1
	InputKey
	InputPointer
)

// InputEvent is a device-independent player action
// Pos is in logical play field coordinates
type InputEvent struct {
	Kind InputKind
	Key  rune
	Pos  vmath.Vec2
}

// Key bindings
const (
	KeyPause = 'p'
)

// KeySiloMap maps launch keys to battery indexes
var KeySiloMap = map[rune]int{
	'q': 0,
	'w': 1,
	'e': 2,
}

// Outcome tells the shell what follows the game
type Outcome uint8

const (
	OutcomeRunning   Outcome = iota
	OutcomeQuit              // player aborted
	OutcomeGameOver          // score does not enter the table
	OutcomeHighscore         // ask for initials
	OutcomeDemoEnd           // attract mode finished or interrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeQuit:
		return "quit"
	case OutcomeGameOver:
		return "gameover"
	case OutcomeHighscore:
		return "highscore"
	case OutcomeDemoEnd:
		return "demo_end"
	}
	return "unknown"
}
