package repository

import "errors"

var (
	// ErrNotFound is returned when a requested row does not exist
	ErrNotFound = errors.New("not found")
	// ErrDuplicate is returned when the uniqueness constraint on
	// (area, time_start) rejects an insert. Expected under re-runs and
	// concurrent ingestion; callers resolve it to a skip.
	ErrDuplicate = errors.New("duplicate observation")
)
