package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/models"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 1000
)

// taskService is the concrete implementation of TaskService. It validates
// incoming task data and delegates persistence to a TaskRepository. Ownership
// is enforced below it, inside the repository queries; the service only
// threads the authenticated owner through.
type taskService struct {
	taskRepository store.TaskRepository
	logger         *logger.Logger
}

// NewTaskService constructs a TaskService on top of the given TaskRepository.
func NewTaskService(taskRepository store.TaskRepository, logger *logger.Logger) TaskService {
	return &taskService{
		taskRepository: taskRepository,
		logger:         logger,
	}
}

// CreateTask validates the request and persists a new task owned by ownerID.
// The title is trimmed and must be 1-200 characters; the description may be
// empty but is capped at 1000 characters; an omitted status defaults to
// "To Do".
func (t *taskService) CreateTask(ctx context.Context, ownerID int64, req models.CreateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	// limits count characters, not bytes, so multibyte text is not penalized
	title := strings.TrimSpace(req.Title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		log.Warn().Int64("user_id", ownerID).Msg("invalid task title provided")
		return models.Task{}, ErrValidationTitleRequired
	}
	description := strings.TrimSpace(req.Description)
	if utf8.RuneCountInString(description) > maxDescriptionLength {
		log.Warn().Int64("user_id", ownerID).Msg("task description too long")
		return models.Task{}, ErrValidationDescriptionTooLong
	}

	status := req.Status
	if status == "" {
		status = models.StatusToDo
	}
	if !status.Valid() {
		log.Warn().Int64("user_id", ownerID).Str("status", string(req.Status)).Msg("invalid task status provided")
		return models.Task{}, ErrValidationInvalidStatus
	}

	createdTask, err := t.taskRepository.CreateTask(ctx, models.Task{
		UserID:      ownerID,
		Title:       title,
		Description: description,
		Status:      status,
	})
	if err != nil {
		log.Err(err).Int64("user_id", ownerID).Msg("task creation ended with error")
		return models.Task{}, fmt.Errorf("task creation ended with error: %w", err)
	}

	return createdTask, nil
}

// GetAllTasks returns every task owned by ownerID, newest first.
func (t *taskService) GetAllTasks(ctx context.Context, ownerID int64) ([]models.Task, error) {
	tasks, err := t.taskRepository.GetAllTasks(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", ownerID).Msg("task listing ended with error")
		return nil, fmt.Errorf("task listing ended with error: %w", err)
	}

	return tasks, nil
}

// GetTask returns a single task owned by ownerID. A task that exists but
// belongs to another owner surfaces as the same wrapped
// store.ErrTaskNotFound as a task that does not exist at all.
func (t *taskService) GetTask(ctx context.Context, ownerID, taskID int64) (models.Task, error) {
	task, err := t.taskRepository.GetTask(ctx, ownerID, taskID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", ownerID).
			Int64("task_id", taskID).
			Msg("task retrieval ended with error")
		return models.Task{}, fmt.Errorf("task retrieval ended with error: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to a task owned by ownerID. Only the
// fields present in the request are validated and changed; omitted fields
// keep their stored values.
func (t *taskService) UpdateTask(ctx context.Context, ownerID, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	update := models.TaskUpdate{
		TaskID: taskID,
		UserID: ownerID,
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
			log.Warn().Int64("task_id", taskID).Msg("invalid task title provided")
			return models.Task{}, ErrValidationTitleRequired
		}
		update.Title = &title
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if utf8.RuneCountInString(description) > maxDescriptionLength {
			log.Warn().Int64("task_id", taskID).Msg("task description too long")
			return models.Task{}, ErrValidationDescriptionTooLong
		}
		update.Description = &description
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			log.Warn().Int64("task_id", taskID).Str("status", string(*req.Status)).Msg("invalid task status provided")
			return models.Task{}, ErrValidationInvalidStatus
		}
		update.Status = req.Status
	}

	updatedTask, err := t.taskRepository.UpdateTask(ctx, update)
	if err != nil {
		log.Err(err).
			Int64("user_id", ownerID).
			Int64("task_id", taskID).
			Msg("task update ended with error")
		return models.Task{}, fmt.Errorf("task update ended with error: %w", err)
	}

	return updatedTask, nil
}

// DeleteTask removes a task owned by ownerID. Deleting a missing or
// foreign task returns a wrapped store.ErrTaskNotFound.
func (t *taskService) DeleteTask(ctx context.Context, ownerID, taskID int64) error {
	if err := t.taskRepository.DeleteTask(ctx, ownerID, taskID); err != nil {
		logger.FromContext(ctx).Err(err).
			Int64("user_id", ownerID).
			Int64("task_id", taskID).
			Msg("task deletion ended with error")
		return fmt.Errorf("task deletion ended with error: %w", err)
	}

	return nil
}
