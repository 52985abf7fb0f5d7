package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"remember_me,omitempty"`
}

// AuthResponse is returned by both auth endpoints. Token carries the compact
// signed JWT; User is the public profile the client persists alongside it.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// CreateTaskRequest is the body of POST /api/tasks.
// Status is optional and defaults to StatusToDo when empty.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status,omitempty"`
}

// UpdateTaskRequest is the body of PUT /api/tasks/{id}. All fields are
// optional; only non-nil fields are applied.
type UpdateTaskRequest struct {
	Title       *string     `json:"title,omitempty"`
	Description *string     `json:"description,omitempty"`
	Status      *TaskStatus `json:"status,omitempty"`
}

// MessageResponse is the generic {message} body used for deletions and
// error responses.
type MessageResponse struct {
	Message string `json:"message"`
}
