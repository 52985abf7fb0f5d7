package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

// taskRepository is the PostgreSQL-backed implementation of [TaskRepository].
// It executes all task CRUD operations against the "tasks" table using the
// embedded [*DB] connection.
//
// Ownership scoping is a query-level contract here: every statement carries
// user_id in its WHERE clause, so "not found" and "owned by someone else"
// are the same outcome ([ErrTaskNotFound]) by construction.
type taskRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskRepository constructs a [TaskRepository] backed by the provided
// database connection and logger.
func NewTaskRepository(db *DB, logger *logger.Logger) TaskRepository {
	logger.Debug().Msg("creating task repository")
	return &taskRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateTask persists a new task and returns it with server-assigned fields
// (TaskID, CreatedAt) populated from the INSERT … RETURNING clause.
func (r *taskRepository) CreateTask(ctx context.Context, task models.Task) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createTask, task.UserID, task.Title, task.Description, task.Status)

	var saved models.Task
	if err := row.Scan(&saved.TaskID, &saved.UserID, &saved.Title, &saved.Description, &saved.Status, &saved.CreatedAt); err != nil {
		log.Err(err).
			Str("func", "taskRepository.CreateTask").
			Int64("user_id", task.UserID).
			Msg("failed to insert task")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetAllTasks returns every task owned by userID, newest-created first.
// An owner with no tasks gets an empty slice, not an error.
func (r *taskRepository) GetAllTasks(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, getAllTasks, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "taskRepository.GetAllTasks").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user tasks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	tasks := make([]models.Task, 0, 20)

	for rows.Next() {
		var task models.Task

		scanErr := rows.Scan(
			&task.TaskID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Status,
			&task.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "taskRepository.GetAllTasks").
				Int64("user_id", userID).
				Msg("failed to scan task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "taskRepository.GetAllTasks").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// GetTask returns the task with the given id if — and only if — it belongs
// to userID. Zero matched rows collapse to [ErrTaskNotFound] whether the id
// is unknown or the task belongs to another account.
func (r *taskRepository) GetTask(ctx context.Context, userID, taskID int64) (models.Task, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getTask, taskID, userID)

	var task models.Task
	if err := row.Scan(&task.TaskID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(err).
			Str("func", "taskRepository.GetTask").
			Int64("user_id", userID).
			Int64("task_id", taskID).
			Msg("failed to scan task row")
		return models.Task{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return task, nil
}

// UpdateTask applies the non-nil fields of update to the task identified by
// (TaskID, UserID) and returns the updated row.
//
// The UPDATE statement is built dynamically via [buildUpdateTaskQuery]; when
// update carries no fields the current row is returned unchanged through
// [GetTask]. Zero matched rows → [ErrTaskNotFound], same as in GetTask.
func (r *taskRepository) UpdateTask(ctx context.Context, update models.TaskUpdate) (models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, ok, err := buildUpdateTaskQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.UpdateTask").
			Int64("task_id", update.TaskID).
			Msg("failed to build update query")
		return models.Task{}, err
	}

	if !ok {
		log.Warn().
			Str("func", "taskRepository.UpdateTask").
			Int64("task_id", update.TaskID).
			Msg("no fields to update, returning current row")
		return r.GetTask(ctx, update.UserID, update.TaskID)
	}

	row := r.DB.QueryRowContext(ctx, query, args...)

	var task models.Task
	if scanErr := row.Scan(&task.TaskID, &task.UserID, &task.Title, &task.Description, &task.Status, &task.CreatedAt); scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Task{}, ErrTaskNotFound
		}

		log.Err(scanErr).
			Str("func", "taskRepository.UpdateTask").
			Int64("task_id", update.TaskID).
			Msg("failed to execute update query")
		return models.Task{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return task, nil
}

// DeleteTask removes the task identified by (taskID, userID). Deletion is
// immediate and irreversible — there is no soft-delete for tasks.
// Zero affected rows → [ErrTaskNotFound].
func (r *taskRepository) DeleteTask(ctx context.Context, userID, taskID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTask, taskID, userID)
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Int64("user_id", userID).
			Int64("task_id", taskID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "taskRepository.DeleteTask").
			Int64("task_id", taskID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected == 0 {
		return ErrTaskNotFound
	}

	return nil
}
