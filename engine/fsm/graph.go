package fsm

import "fmt"

// Graph is an immutable-after-build set of named states and their edges
type Graph[T comparable] struct {
	start T
	edges map[T][]edge[T]
	order []T
}

// NewGraph creates a graph whose flow begins at start
func NewGraph[T comparable](start T) *Graph[T] {
	return &Graph[T]{
		start: start,
		edges: make(map[T][]edge[T]),
	}
}

// Add appends edges from -> to...
// Add(from) with no targets marks from as ending the flow
func (g *Graph[T]) Add(from T, to ...T) *Graph[T] {
	if _, ok := g.edges[from]; !ok {
		g.order = append(g.order, from)
	}
	if len(to) == 0 {
		g.edges[from] = append(g.edges[from], edge[T]{terminal: true})
		return g
	}
	for _, t := range to {
		g.edges[from] = append(g.edges[from], edge[T]{to: t})
	}
	return g
}

// Start returns the initial state
func (g *Graph[T]) Start() T {
	return g.start
}

// Next returns the successor of current
// A single outgoing edge is taken regardless of branch
// With several edges, branch selects the edge in the order they were added
func (g *Graph[T]) Next(current T, branch int) (T, error) {
	var zero T

	out, ok := g.edges[current]
	if !ok {
		return zero, fmt.Errorf("%w: %v", ErrUnknownState, current)
	}

	e := out[0]
	if len(out) > 1 {
		if branch < 0 || branch >= len(out) {
			return zero, fmt.Errorf("%w: %d of %d from %v", ErrInvalidBranch, branch, len(out), current)
		}
		e = out[branch]
	}

	if e.terminal {
		return zero, ErrTerminal
	}
	return e.to, nil
}

// Branches returns the number of outgoing edges of a state
func (g *Graph[T]) Branches(current T) int {
	return len(g.edges[current])
}

// States returns all states with outgoing edges in insertion order
func (g *Graph[T]) States() []T {
	out := make([]T, len(g.order))
	copy(out, g.order)
	return out
}
