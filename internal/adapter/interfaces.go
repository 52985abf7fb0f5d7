// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the GoTaskKeeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// GoTaskKeeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to the
// sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login, and with an empty string on logout.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account. On success it stores the returned
	// bearer token via SetToken and returns the token together with the
	// public profile of the new user. Returns [ErrConflict] (wrapped) when
	// the username or email is already taken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates an existing account. On success it stores the
	// returned bearer token via SetToken. Returns [ErrUnauthorized] (wrapped)
	// for bad credentials.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// CreateTask creates a task owned by the authenticated user and returns
	// the server-side record, including the assigned ID.
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error)

	// ListTasks returns all tasks owned by the authenticated user, newest
	// first.
	ListTasks(ctx context.Context) ([]models.Task, error)

	// GetTask returns a single task by ID. Returns [ErrNotFound] (wrapped)
	// when the task does not exist or belongs to someone else.
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// UpdateTask applies a partial update and returns the updated record.
	// Returns [ErrNotFound] (wrapped) when the task does not exist or belongs
	// to someone else.
	UpdateTask(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error)

	// DeleteTask removes a task by ID. Returns [ErrNotFound] (wrapped) when
	// the task does not exist or belongs to someone else.
	DeleteTask(ctx context.Context, taskID int64) error
}
