package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const createTaskCacheSchema = `CREATE TABLE IF NOT EXISTS task_cache (
    task_id     INTEGER NOT NULL,
    user_id     INTEGER NOT NULL,
    title       TEXT    NOT NULL,
    description TEXT    NOT NULL DEFAULT '',
    status      TEXT    NOT NULL,
    created_at  TIMESTAMP NOT NULL,
    PRIMARY KEY (user_id, task_id)
);`

// taskCacheRepository is the SQLite-backed implementation of
// [TaskCacheRepository]. The cache holds a snapshot of the last server
// response per owner and is replaced wholesale on every successful fetch.
type taskCacheRepository struct {
	*DB
	logger *logger.Logger
}

// NewTaskCacheRepository constructs a [TaskCacheRepository] on top of the
// local SQLite connection, creating the cache table if it does not exist.
func NewTaskCacheRepository(db *DB, logger *logger.Logger) (TaskCacheRepository, error) {
	if _, err := db.Exec(createTaskCacheSchema); err != nil {
		return nil, fmt.Errorf("error creating task cache schema: %w", err)
	}

	return &taskCacheRepository{
		DB:     db,
		logger: logger,
	}, nil
}

// ReplaceAll swaps the cached task list of userID inside a single
// transaction: delete the old snapshot, insert the new one. A crash between
// the two steps is rolled back, so readers always see a complete snapshot.
func (r *taskCacheRepository) ReplaceAll(ctx context.Context, userID int64, tasks []models.Task) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "taskCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("error beginning cache transaction: %w", err)
	}
	defer tx.Rollback()

	deleteQuery, deleteArgs, err := sq.Delete("task_cache").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).
			Str("func", "taskCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to clear previous snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	for _, task := range tasks {
		insertQuery, insertArgs, buildErr := sq.Insert("task_cache").
			Columns("task_id", "user_id", "title", "description", "status", "created_at").
			Values(task.TaskID, userID, task.Title, task.Description, task.Status, task.CreatedAt).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "taskCacheRepository.ReplaceAll").
				Int64("task_id", task.TaskID).
				Msg("failed to insert cached task")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).
			Str("func", "taskCacheRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to commit cache transaction")
		return fmt.Errorf("error committing cache transaction: %w", commitErr)
	}

	return nil
}

// GetAll returns the cached snapshot for userID, newest-created first —
// the same order the server uses.
func (r *taskCacheRepository) GetAll(ctx context.Context, userID int64) ([]models.Task, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("task_id", "user_id", "title", "description", "status", "created_at").
		From("task_cache").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "task_id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "taskCacheRepository.GetAll").
			Int64("user_id", userID).
			Msg("failed to query task cache")
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
				Str("func", "taskCacheRepository.GetAll").
				Int64("user_id", userID).
				Msg("failed to scan cached task row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		tasks = append(tasks, task)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return tasks, nil
}

// Clear removes the cached snapshot for userID.
func (r *taskCacheRepository) Clear(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete("task_cache").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "taskCacheRepository.Clear").
			Int64("user_id", userID).
			Msg("failed to clear task cache")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
