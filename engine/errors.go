package engine

import "errors"

var (
	// ErrUnknownEntity signals access to an entity that does not exist
	// Correct game flow only touches live query results, so this panics
	ErrUnknownEntity = errors.New("unknown entity")

	// ErrDuplicateEntity is returned when a named entity already exists
	ErrDuplicateEntity = errors.New("duplicate entity")

	// ErrMissingComponent signals a typed accessor miss
	ErrMissingComponent = errors.New("missing component")
)
