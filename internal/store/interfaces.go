package store

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// UserRepository is the data-access contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new account and returns it with server-assigned
	// fields populated. Duplicate username/email surface as
	// ErrUsernameAlreadyExists / ErrEmailAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks an account up by its (lowercased) email.
	// Returns ErrNoUserWasFound when the email is unknown.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks an account up by its primary key. Used by the auth
	// middleware to resolve a verified token subject.
	// Returns ErrNoUserWasFound when the id is unknown.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// TaskRepository is the data-access contract for tasks.
//
// Every method takes the owner's user id and applies it inside the query
// itself — ownership filtering happens at the point of lookup, never as a
// separate fetch-then-authorize step. A task that exists under a different
// owner is therefore indistinguishable from one that does not exist:
// both produce ErrTaskNotFound.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetAllTasks(ctx context.Context, userID int64) ([]models.Task, error)
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
