// Package fsm provides a directed phase graph with explicit branch selection
// Next is a pure function of (current, branch); no cursor state is kept
package fsm

import "errors"

var (
	// ErrTerminal is returned when the current state ends the flow
	ErrTerminal = errors.New("terminal state")

	// ErrUnknownState is returned for a state never added to the graph
	ErrUnknownState = errors.New("unknown state")

	// ErrInvalidBranch is returned when the branch selector is out of range
	ErrInvalidBranch = errors.New("invalid branch")
)

// edge is an outgoing transition; terminal edges have no target
type edge[T comparable] struct {
	to       T
	terminal bool
}
