// Package session persists the client's authenticated session across two
// stores with different lifetimes: a durable file store that survives
// process restarts and an ephemeral in-memory store that does not. Exactly
// one of the two holds a session at any moment; which one depends on
// whether the user asked to be remembered.
package session

import (
	"time"

	"github.com/MKhiriev/go-task-keeper/models"
)

// Session is the client-side record of an authenticated login: the bearer
// token plus the profile of the user it belongs to. The profile is kept so
// the UI can greet the user without a round trip to the server.
type Session struct {
	Token   string             `json:"token"`
	User    models.UserProfile `json:"user"`
	SavedAt time.Time          `json:"saved_at"`
}

// IsZero reports whether the session carries no token.
func (s Session) IsZero() bool {
	return s.Token == ""
}

// Store is a single persistence slot for at most one session.
type Store interface {
	// Save replaces whatever the store holds with the given session.
	Save(session Session) error

	// Load returns the stored session. It returns ErrSessionNotFound when
	// the store is empty and ErrSessionMalformed when the stored bytes
	// cannot be decoded.
	Load() (Session, error)

	// Clear empties the store. Clearing an already empty store is not an
	// error.
	Clear() error
}
