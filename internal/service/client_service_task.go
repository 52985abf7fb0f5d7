// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// clientTaskService is the concrete implementation of [ClientTaskService].
// The server stays the source of truth; the SQLite cache is a read-only
// snapshot kept fresh after every successful server round trip so the list
// is still usable when the server is down.
type clientTaskService struct {
	serverAdapter adapter.ServerAdapter
	taskCache     store.TaskCacheRepository
	logger        *logger.Logger
}

// NewClientTaskService constructs a [ClientTaskService].
func NewClientTaskService(serverAdapter adapter.ServerAdapter, taskCache store.TaskCacheRepository, logger *logger.Logger) ClientTaskService {
	return &clientTaskService{
		serverAdapter: serverAdapter,
		taskCache:     taskCache,
		logger:        logger,
	}
}

// Create implements [ClientTaskService].
func (c *clientTaskService) Create(ctx context.Context, req models.CreateTaskRequest) (models.Task, error) {
	task, err := c.serverAdapter.CreateTask(ctx, req)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}

	c.refreshCacheBestEffort(ctx)

	return task, nil
}

// List implements [ClientTaskService]. On a connectivity failure the cached
// snapshot is returned instead; any other error (expired token, server
// error) is surfaced as-is, because stale data must not mask an auth
// problem.
func (c *clientTaskService) List(ctx context.Context) ([]models.Task, bool, error) {
	tasks, err := c.serverAdapter.ListTasks(ctx)
	if err == nil {
		if cacheErr := c.replaceCache(ctx, tasks); cacheErr != nil {
			c.logger.Warn().Err(cacheErr).Msg("failed to refresh task cache")
		}
		return tasks, false, nil
	}

	mapped := mapAdapterError(err)
	if !errors.Is(mapped, ErrServerUnavailable) {
		return nil, false, mapped
	}

	userID, idErr := utils.ParseUserIDFromJWT(c.serverAdapter.Token())
	if idErr != nil {
		return nil, false, ErrNotLoggedIn
	}

	cached, cacheErr := c.taskCache.GetAll(ctx, userID)
	if cacheErr != nil {
		return nil, false, fmt.Errorf("error reading task cache: %w", cacheErr)
	}

	c.logger.Warn().Err(err).Msg("server unreachable, serving tasks from local cache")

	return cached, true, nil
}

// Get implements [ClientTaskService].
func (c *clientTaskService) Get(ctx context.Context, taskID int64) (models.Task, error) {
	task, err := c.serverAdapter.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}

	return task, nil
}

// Update implements [ClientTaskService].
func (c *clientTaskService) Update(ctx context.Context, taskID int64, req models.UpdateTaskRequest) (models.Task, error) {
	task, err := c.serverAdapter.UpdateTask(ctx, taskID, req)
	if err != nil {
		return models.Task{}, mapAdapterError(err)
	}

	c.refreshCacheBestEffort(ctx)

	return task, nil
}

// Delete implements [ClientTaskService].
func (c *clientTaskService) Delete(ctx context.Context, taskID int64) error {
	if err := c.serverAdapter.DeleteTask(ctx, taskID); err != nil {
		return mapAdapterError(err)
	}

	c.refreshCacheBestEffort(ctx)

	return nil
}

// RefreshCache implements [ClientTaskService].
func (c *clientTaskService) RefreshCache(ctx context.Context) error {
	tasks, err := c.serverAdapter.ListTasks(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	return c.replaceCache(ctx, tasks)
}

// refreshCacheBestEffort refreshes the cache after a mutation. A failure here
// only means the offline snapshot is one write behind; the mutation itself
// already succeeded, so the error is logged, not returned.
func (c *clientTaskService) refreshCacheBestEffort(ctx context.Context) {
	if err := c.RefreshCache(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("failed to refresh task cache")
	}
}

func (c *clientTaskService) replaceCache(ctx context.Context, tasks []models.Task) error {
	userID, err := utils.ParseUserIDFromJWT(c.serverAdapter.Token())
	if err != nil {
		return ErrNotLoggedIn
	}

	if err = c.taskCache.ReplaceAll(ctx, userID, tasks); err != nil {
		return fmt.Errorf("error replacing task cache: %w", err)
	}

	return nil
}
