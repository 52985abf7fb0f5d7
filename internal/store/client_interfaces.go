package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// TaskCacheRepository is the client-side cache of the last task list fetched
// from the server. It lets the TUI render something useful while the server
// is unreachable; the server copy is always authoritative.
type TaskCacheRepository interface {
	// ReplaceAll atomically swaps the cached list for the given owner with
	// tasks.
	ReplaceAll(ctx context.Context, userID int64, tasks []models.Task) error

	// GetAll returns the cached tasks of the given owner, newest first.
	GetAll(ctx context.Context, userID int64) ([]models.Task, error)

	// Clear drops every cached task of the given owner. Called on logout.
	Clear(ctx context.Context, userID int64) error
}
