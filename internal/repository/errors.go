package repository

import "errors"

// Sentinel errors shared by all repositories. Handlers translate these to
// HTTP statuses; anything else surfaces as an internal error.
var (
	ErrNotFound  = errors.New("not found")
	ErrInvalidID = errors.New("invalid id")
)
