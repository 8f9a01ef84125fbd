package planner

import "errors"

var (
	// ErrDuplicateUnit is returned by AddUnit when the id is already taken.
	ErrDuplicateUnit = errors.New("unit id already exists")

	// ErrClosed is returned by manual sync operations after Close.
	ErrClosed = errors.New("planner store is closed")
)
