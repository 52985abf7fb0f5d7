package service

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

// AuthService handles account registration, credential verification, and
// the JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// TaskService validates task input and delegates persistence to the task
// repository. The ownerID parameter on every method is the identity resolved
// by the auth middleware — callers never supply an owner of their own.
type TaskService interface {
	CreateTask(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error)
	GetAllTasks(ctx context.Context, ownerID int64) ([]models.Task, error)
	GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID int64, req models.UpdateTaskRequest) (models.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID int64) error
}
