// services/errors.go
package services

import "errors"

// Validation errors returned by mutation operations. Each blocks the
// mutation entirely; no partial state is ever applied.
var (
	// ErrMissingField indicates a required input was empty or absent.
	ErrMissingField = errors.New("missing required field")
	// ErrDuplicateID indicates a player id collision.
	ErrDuplicateID = errors.New("duplicate id")
	// ErrUnknownPlayer indicates a playerId that resolves to no player.
	ErrUnknownPlayer = errors.New("unknown player")
	// ErrNotFound indicates an update/delete target that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalidValue indicates a field outside its allowed range or enum.
	ErrInvalidValue = errors.New("invalid value")
)
