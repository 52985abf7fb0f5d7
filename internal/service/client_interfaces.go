package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/session"
	"github.com/MKhiriev/go-task-keeper/models"
)

// ClientAuthService defines the client-side contract for account registration,
// login, session restoration, and logout. Implementations are responsible for
// keeping the session stores, the server adapter token, and the local cache
// consistent with each other.
type ClientAuthService interface {
	// Register creates a new account on the server and persists the returned
	// session durably — a freshly registered user is always remembered.
	// Returns the new session or an error if validation or the server call
	// fails.
	Register(ctx context.Context, req models.RegisterRequest) (session.Session, error)

	// Login authenticates against the server. With req.RememberMe set the
	// session is persisted durably and survives restarts; without it the
	// session lives only in process memory. Returns the new session or an
	// error if the server rejects the credentials.
	Login(ctx context.Context, req models.LoginRequest) (session.Session, error)

	// Resume restores a previously persisted session on startup. A session
	// whose token has already expired is discarded and reported as
	// ErrNotLoggedIn, the same as no session at all.
	Resume(ctx context.Context) (session.Session, error)

	// Logout ends the session: both session stores are cleared, the adapter
	// token is dropped, and the local task cache of the user is emptied.
	Logout(ctx context.Context) error
}

// ClientTaskService defines the client-side contract for working with tasks.
// Reads prefer the server and fall back to the local SQLite cache when the
// server cannot be reached; every successful server read refreshes the cache.
type ClientTaskService interface {
	// Create creates a task on the server and refreshes the local cache.
	Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// List returns the user's tasks, newest first. The bool result is true
	// when the tasks were served from the local cache because the server was
	// unreachable.
	List(ctx context.Context) ([]models.Task, bool, error)

	// Get returns a single task from the server.
	Get(ctx context.Context, taskID int64) (models.Task, error)

	// Update applies a partial update on the server and refreshes the local
	// cache.
	Update(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error)

	// Delete removes a task on the server and refreshes the local cache.
	Delete(ctx context.Context, taskID int64) error

	// RefreshCache re-fetches the task list from the server and replaces the
	// local cache snapshot. Used by the background refresh worker.
	RefreshCache(ctx context.Context) error
}
