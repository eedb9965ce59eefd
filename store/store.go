// Package store holds the persistence façades over the schedule, feedback
// and user tables. Services depend on the interfaces so tests can swap in
// stubs; the GORM implementations translate driver errors into the two
// sentinel errors below.
package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the lookup.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert collides with a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
