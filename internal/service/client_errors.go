package service

import "errors"

var (
	// ErrNotLoggedIn means no usable session exists: nothing was stored, or
	// what was stored has expired.
	ErrNotLoggedIn = errors.New("not logged in")

	// ErrServerUnavailable means the server could not be reached at the
	// transport level. Task reads answered from the local cache carry it as
	// context.
	ErrServerUnavailable = errors.New("server unavailable")
)
