package store

import (
	"fmt"

	"github.com/MKhiriev/go-task-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, username, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	createTask = `INSERT INTO tasks (user_id, title, description, status)
    VALUES ($1, $2, $3, $4)
    RETURNING task_id, user_id, title, description, status, created_at;`

	// Ownership filter is part of every task query: user_id sits in the
	// WHERE clause, so rows belonging to other accounts never leave the
	// database.
	getAllTasks = `SELECT task_id, user_id, title, description, status, created_at
    FROM tasks
    WHERE user_id = $1
    ORDER BY created_at DESC, task_id DESC;`

	getTask = `SELECT task_id, user_id, title, description, status, created_at
    FROM tasks
    WHERE task_id = $1 AND user_id = $2;`

	deleteTask = `DELETE FROM tasks
    WHERE task_id = $1 AND user_id = $2;`
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateTaskQuery builds a partial UPDATE for a task. Only non-nil
// fields of update produce SET clauses. The WHERE clause always carries both
// task_id and user_id, and the statement returns the updated row so the
// repository can hand the caller the canonical database state.
//
// Returns ok=false when update contains no fields to change.
func buildUpdateTaskQuery(update models.TaskUpdate) (query string, args []any, ok bool, err error) {
	builder := psql.Update("tasks")

	hasChanges := false
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
		hasChanges = true
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
		hasChanges = true
	}
	if update.Status != nil {
		builder = builder.Set("status", *update.Status)
		hasChanges = true
	}

	if !hasChanges {
		return "", nil, false, nil
	}

	query, args, err = builder.
		Where(sq.Eq{"task_id": update.TaskID, "user_id": update.UserID}).
		Suffix("RETURNING task_id, user_id, title, description, status, created_at").
		ToSql()
	if err != nil {
		return "", nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, true, nil
}
