// Package core holds identifier types shared by every layer of the simulation
package core

// Entity is an opaque identifier grouping components and property tags
// Ids are allocated monotonically, so numeric order equals creation order
type Entity uint64

// NoEntity is never allocated
const NoEntity Entity = 0
