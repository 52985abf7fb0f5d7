package session

import "errors"

var (
	// ErrSessionNotFound means the store holds no session.
	ErrSessionNotFound = errors.New("no stored session was found")

	// ErrSessionMalformed means the store holds bytes that do not decode
	// into a session. Callers should treat the store as empty and purge it.
	ErrSessionMalformed = errors.New("stored session is malformed")
)
