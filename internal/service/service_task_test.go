// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.TaskRepository
// ─────────────────────────────────────────────

type mockTaskRepository struct {
	createTaskFn  func(ctx context.Context, task models.Task) (models.Task, error)
	getAllTasksFn func(ctx context.Context, userID int64) ([]models.Task, error)
	getTaskFn     func(ctx context.Context, userID, taskID int64) (models.Task, error)
	updateTaskFn  func(ctx context.Context, update models.TaskUpdate) (models.Task, error)
	deleteTaskFn  func(ctx context.Context, userID, taskID int64) error
}

func (m *mockTaskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	if m.createTaskFn != nil {
		return m.createTaskFn(ctx, task)
	}
	return task, nil
}

func (m *mockTaskRepository) GetAllTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	if m.getAllTasksFn != nil {
		return m.getAllTasksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepository) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	if m.getTaskFn != nil {
		return m.getTaskFn(ctx, userID, taskID)
	}
	return models.Task{}, nil
}

func (m *mockTaskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	if m.updateTaskFn != nil {
		return m.updateTaskFn(ctx, update)
	}
	return models.Task{}, nil
}

func (m *mockTaskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if m.deleteTaskFn != nil {
		return m.deleteTaskFn(ctx, userID, taskID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestTaskService(repo *mockTaskRepository) *taskService {
	return &taskService{
		taskRepository: repo,
		logger:         logger.Nop(),
	}
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.TaskStatus) *models.TaskStatus { return &s }

// ─────────────────────────────────────────────
// CreateTask
// ─────────────────────────────────────────────

func TestTaskService_CreateTask_Success(t *testing.T) {
	repo := &mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, int64(7), task.UserID, "owner must come from the authenticated identity")
			assert.Equal(t, "Buy milk", task.Title)
			assert.Equal(t, models.StatusInProgress, task.Status)

			task.TaskID = 1
			return task, nil
		},
	}
	svc := newTestTaskService(repo)

	created, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:  "  Buy milk  ",
		Status: models.StatusInProgress,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.TaskID)
	assert.Equal(t, "Buy milk", created.Title, "title must be trimmed before persisting")
}

func TestTaskService_CreateTask_DefaultsStatusToToDo(t *testing.T) {
	repo := &mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, models.StatusToDo, task.Status)
			return task, nil
		},
	}
	svc := newTestTaskService(repo)

	_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{Title: "t"})

	require.NoError(t, err)
}

func TestTaskService_CreateTask_TitleValidation(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{
		createTaskFn: func(_ context.Context, _ models.Task) (models.Task, error) {
			t.Fatal("CreateTask must not be called for invalid input")
			return models.Task{}, nil
		},
	})

	for _, title := range []string{"", "   ", strings.Repeat("x", 201)} {
		_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{Title: title})

		require.ErrorIs(t, err, ErrValidationTitleRequired, "title %q", title)
	}
}

func TestTaskService_CreateTask_DescriptionTooLong(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{})

	_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:       "t",
		Description: strings.Repeat("x", 1001),
	})

	require.ErrorIs(t, err, ErrValidationDescriptionTooLong)
}

// Length limits count characters, not bytes: a 150-character Cyrillic title
// occupies 300 bytes but is well inside the 200-character cap.
func TestTaskService_CreateTask_MultibyteLengthLimits(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			return task, nil
		},
	})

	_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:       strings.Repeat("й", 150),
		Description: strings.Repeat("ё", 1000),
	})
	require.NoError(t, err)

	_, err = svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title: strings.Repeat("й", 201),
	})
	require.ErrorIs(t, err, ErrValidationTitleRequired)

	_, err = svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:       "t",
		Description: strings.Repeat("ё", 1001),
	})
	require.ErrorIs(t, err, ErrValidationDescriptionTooLong)
}

func TestTaskService_CreateTask_TrimsDescription(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{
		createTaskFn: func(_ context.Context, task models.Task) (models.Task, error) {
			assert.Equal(t, "weekly groceries", task.Description)
			return task, nil
		},
	})

	_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:       "Buy milk",
		Description: "  weekly groceries  ",
	})

	require.NoError(t, err)
}

func TestTaskService_CreateTask_InvalidStatus(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{})

	_, err := svc.CreateTask(context.Background(), 7, models.CreateTaskRequest{
		Title:  "t",
		Status: models.TaskStatus("Archived"),
	})

	require.ErrorIs(t, err, ErrValidationInvalidStatus)
}

// ─────────────────────────────────────────────
// GetAllTasks / GetTask
// ─────────────────────────────────────────────

func TestTaskService_GetAllTasks_Success(t *testing.T) {
	expected := []models.Task{{TaskID: 2}, {TaskID: 1}}
	repo := &mockTaskRepository{
		getAllTasksFn: func(_ context.Context, userID int64) ([]models.Task, error) {
			assert.Equal(t, int64(7), userID)
			return expected, nil
		},
	}
	svc := newTestTaskService(repo)

	tasks, err := svc.GetAllTasks(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, expected, tasks)
}

func TestTaskService_GetTask_NotFound(t *testing.T) {
	repo := &mockTaskRepository{
		getTaskFn: func(_ context.Context, _, _ int64) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	svc := newTestTaskService(repo)

	_, err := svc.GetTask(context.Background(), 7, 99)

	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

// ─────────────────────────────────────────────
// UpdateTask
// ─────────────────────────────────────────────

func TestTaskService_UpdateTask_PartialUpdate(t *testing.T) {
	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			assert.Equal(t, int64(7), update.UserID)
			assert.Equal(t, int64(3), update.TaskID)
			require.NotNil(t, update.Status)
			assert.Equal(t, models.StatusDone, *update.Status)
			assert.Nil(t, update.Title, "omitted fields must stay untouched")
			assert.Nil(t, update.Description)

			return models.Task{TaskID: 3, UserID: 7, Status: models.StatusDone}, nil
		},
	}
	svc := newTestTaskService(repo)

	updated, err := svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{
		Status: statusPtr(models.StatusDone),
	})

	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, updated.Status)
}

func TestTaskService_UpdateTask_TrimsTitle(t *testing.T) {
	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "Renamed", *update.Title)
			return models.Task{TaskID: 3, Title: *update.Title}, nil
		},
	}
	svc := newTestTaskService(repo)

	_, err := svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{
		Title: strPtr("  Renamed  "),
	})

	require.NoError(t, err)
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	svc := newTestTaskService(&mockTaskRepository{
		updateTaskFn: func(_ context.Context, _ models.TaskUpdate) (models.Task, error) {
			t.Fatal("UpdateTask must not be called for invalid input")
			return models.Task{}, nil
		},
	})

	_, err := svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{Title: strPtr("   ")})
	require.ErrorIs(t, err, ErrValidationTitleRequired)

	_, err = svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{Description: strPtr(strings.Repeat("x", 1001))})
	require.ErrorIs(t, err, ErrValidationDescriptionTooLong)

	_, err = svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{Status: statusPtr("Paused")})
	require.ErrorIs(t, err, ErrValidationInvalidStatus)
}

func TestTaskService_UpdateTask_MultibyteLengthLimits(t *testing.T) {
	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, update models.TaskUpdate) (models.Task, error) {
			require.NotNil(t, update.Description)
			assert.Equal(t, "детали", *update.Description, "description must be stored trimmed")
			return models.Task{TaskID: 3}, nil
		},
	}
	svc := newTestTaskService(repo)

	_, err := svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{
		Title:       strPtr(strings.Repeat("й", 200)),
		Description: strPtr(" детали "),
	})
	require.NoError(t, err)

	_, err = svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{
		Title: strPtr(strings.Repeat("й", 201)),
	})
	require.ErrorIs(t, err, ErrValidationTitleRequired)

	_, err = svc.UpdateTask(context.Background(), 7, 3, models.UpdateTaskRequest{
		Description: strPtr(strings.Repeat("ё", 1001)),
	})
	require.ErrorIs(t, err, ErrValidationDescriptionTooLong)
}

func TestTaskService_UpdateTask_NotFound(t *testing.T) {
	repo := &mockTaskRepository{
		updateTaskFn: func(_ context.Context, _ models.TaskUpdate) (models.Task, error) {
			return models.Task{}, store.ErrTaskNotFound
		},
	}
	svc := newTestTaskService(repo)

	_, err := svc.UpdateTask(context.Background(), 7, 404, models.UpdateTaskRequest{
		Status: statusPtr(models.StatusDone),
	})

	require.ErrorIs(t, err, store.ErrTaskNotFound)
}

// ─────────────────────────────────────────────
// DeleteTask
// ─────────────────────────────────────────────

func TestTaskService_DeleteTask_Success(t *testing.T) {
	called := false
	repo := &mockTaskRepository{
		deleteTaskFn: func(_ context.Context, userID, taskID int64) error {
			called = true
			assert.Equal(t, int64(7), userID)
			assert.Equal(t, int64(3), taskID)
			return nil
		},
	}
	svc := newTestTaskService(repo)

	err := svc.DeleteTask(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestTaskService_DeleteTask_NotFound(t *testing.T) {
	repo := &mockTaskRepository{
		deleteTaskFn: func(_ context.Context, _, _ int64) error {
			return store.ErrTaskNotFound
		},
	}
	svc := newTestTaskService(repo)

	err := svc.DeleteTask(context.Background(), 7, 404)

	require.ErrorIs(t, err, store.ErrTaskNotFound)
}
