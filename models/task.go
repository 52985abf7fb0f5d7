package models

import "time"

// TaskStatus is the workflow state of a task.
type TaskStatus string

// Allowed task statuses. The string values are part of the wire format and
// match what clients send and render.
const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

// Valid reports whether s is one of the allowed task statuses.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task is a single to-do item owned by exactly one user.
//
// Every persistence-layer operation on tasks filters by UserID at the point
// of lookup, so a task belonging to another account is indistinguishable
// from a task that does not exist.
type Task struct {
	// TaskID is the internal unique identifier, assigned at creation.
	TaskID int64 `json:"id"`

	// UserID references the owning user. Set once at creation, immutable.
	UserID int64 `json:"user_id"`

	// Title is the short description of the task, 1-200 characters after
	// trimming. Required.
	Title string `json:"title"`

	// Description is optional free-form text, up to 1000 characters after
	// trimming.
	Description string `json:"description,omitempty"`

	// Status is the current workflow state, StatusToDo by default.
	Status TaskStatus `json:"status"`

	// CreatedAt is set once when the task is persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskUpdate describes a partial update of a task. Nil fields are left
// untouched; non-nil fields replace the stored values after validation.
type TaskUpdate struct {
	TaskID      int64       `json:"-"`
	UserID      int64       `json:"-"`
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}
