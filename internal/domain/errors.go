package domain

import "errors"

var (
	// ErrInvalidStatus indicates a status outside the closed enumeration.
	ErrInvalidStatus = errors.New("invalid lesson status")

	// ErrInvalidDate indicates a lesson date that is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid lesson date")

	// ErrMissingID indicates an entity without an identifier.
	ErrMissingID = errors.New("missing id")
)
