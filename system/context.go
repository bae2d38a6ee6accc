// Package system holds the per-tick game systems and their fixed run order
package system

import (
	"github.com/lixenwraith/missile-command/engine"
	"github.com/lixenwraith/missile-command/event"
	"github.com/lixenwraith/missile-command/launcher"
	"github.com/lixenwraith/missile-command/parameter"
	"github.com/lixenwraith/missile-command/physics"
)

// Context is the explicit state every system receives
type Context struct {
	World  *engine.World
	State  *engine.GameState
	Events *event.Queue
	Launch *launcher.Launcher
	Evade  physics.EvadeProfile
}

// NewContext wires a system context with the default smart bomb evasion profile
func NewContext(l *launcher.Launcher, gs *engine.GameState, events *event.Queue) *Context {
	return &Context{
		World:  l.World,
		State:  gs,
		Events: events,
		Launch: l,
		Evade:  DefaultEvadeProfile,
	}
}

// DefaultEvadeProfile tunes smart bomb reactions to explosions
var DefaultEvadeProfile = physics.EvadeProfile{
	LethalFactor: parameter.SmartbombLethalFactor,
	DangerMargin: parameter.SmartbombDangerMargin,
	CloseMargin:  parameter.SmartbombCloseMargin,
	Dodge:        parameter.SmartbombDodge,
}
