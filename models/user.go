package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// Assigned by the database at registration and immutable afterwards.
	UserID int64 `json:"id"`

	// Username is the unique, case-sensitive public handle of the user.
	// Allowed charset is [A-Za-z0-9_], length 3-30.
	Username string `json:"username"`

	// Email is the unique contact address of the user.
	// It is normalized to lowercase before any lookup or insert.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt digest of the user's password.
	// This value MUST be a derived value (adaptive salted hash), never
	// plaintext. It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// Profile returns the public projection of the user: the fields a client is
// allowed to see and persist locally alongside its session token.
func (u User) Profile() UserProfile {
	return UserProfile{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserProfile is the client-visible subset of a User record. It is embedded
// in auth responses and stored on the client next to the session token.
type UserProfile struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
