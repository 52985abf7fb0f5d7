package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-resty/resty/v2"
)

// httpServerAdapter is the resty-backed implementation of [ServerAdapter].
// The bearer token is guarded by a mutex because the TUI and background
// workers share one adapter instance.
type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs a [ServerAdapter] talking REST to the
// server at cfg.HTTPAddress. An address without a scheme gets "http://"
// prepended, so "localhost:8080" works as-is.
func NewHTTPServerAdapter(cfg config.ClientAdapter) ServerAdapter {
	baseURL := strings.TrimRight(cfg.HTTPAddress, "/")
	if baseURL != "" && !strings.Contains(baseURL, "://") {
		baseURL = "http://" + baseURL
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: cli}
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter].
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode register response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// Login implements [ServerAdapter].
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	var auth models.AuthResponse
	if err = json.Unmarshal(resp.Body(), &auth); err != nil {
		return models.AuthResponse{}, fmt.Errorf("decode login response: %w", err)
	}

	h.SetToken(auth.Token)
	return auth, nil
}

// CreateTask implements [ServerAdapter].
func (h *httpServerAdapter) CreateTask(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/tasks")
	if err != nil {
		return models.Task{}, fmt.Errorf("create task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode create task response: %w", err)
	}

	return task, nil
}

// ListTasks implements [ServerAdapter].
func (h *httpServerAdapter) ListTasks(ctx context.Context) ([]models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks")
	if err != nil {
		return nil, fmt.Errorf("list tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var tasks []models.Task
	if err = json.Unmarshal(resp.Body(), &tasks); err != nil {
		return nil, fmt.Errorf("decode list tasks response: %w", err)
	}

	return tasks, nil
}

// GetTask implements [ServerAdapter].
func (h *httpServerAdapter) GetTask(ctx context.Context, taskID int64) (models.Task, error) {
	resp, err := h.authedRequest(ctx).Get("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return models.Task{}, fmt.Errorf("get task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode get task response: %w", err)
	}

	return task, nil
}

// UpdateTask implements [ServerAdapter].
func (h *httpServerAdapter) UpdateTask(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Put("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return models.Task{}, fmt.Errorf("update task request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Task{}, err
	}

	var task models.Task
	if err = json.Unmarshal(resp.Body(), &task); err != nil {
		return models.Task{}, fmt.Errorf("decode update task response: %w", err)
	}

	return task, nil
}

// DeleteTask implements [ServerAdapter].
func (h *httpServerAdapter) DeleteTask(ctx context.Context, taskID int64) error {
	resp, err := h.authedRequest(ctx).Delete("/api/tasks/" + strconv.FormatInt(taskID, 10))
	if err != nil {
		return fmt.Errorf("delete task request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
