// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
)

const defaultRefreshInterval = time.Minute

// CacheRefreshWorker periodically re-fetches the task list from the server
// so the local offline snapshot stays close to the server state while the
// client is running. Refresh failures are logged and retried on the next
// tick; the worker never gives up on its own.
type CacheRefreshWorker struct {
	taskService service.ClientTaskService
	interval    time.Duration
	logger      *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCacheRefreshWorker constructs a CacheRefreshWorker ticking every
// interval, defaulting to one minute when interval is zero or negative.
func NewCacheRefreshWorker(taskService service.ClientTaskService, interval time.Duration, logger *logger.Logger) *CacheRefreshWorker {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}

	return &CacheRefreshWorker{
		taskService: taskService,
		interval:    interval,
		logger:      logger,
	}
}

// Run implements [Worker]. It starts the refresh loop in its own goroutine
// and returns immediately.
func (w *CacheRefreshWorker) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	w.wg.Add(1)
	go w.loop(ctx)

	w.logger.Info().Dur("interval", w.interval).Msg("cache refresh worker started")
}

// Stop implements [Worker]. It signals the loop to exit and blocks until it
// has.
func (w *CacheRefreshWorker) Stop() {
	if w.cancel == nil {
		return
	}

	w.cancel()
	w.wg.Wait()
	w.logger.Info().Msg("cache refresh worker stopped")
}

func (w *CacheRefreshWorker) loop(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.taskService.RefreshCache(ctx); err != nil {
				// not logged in yet or between sessions: nothing to refresh
				if errors.Is(err, service.ErrNotLoggedIn) {
					continue
				}
				w.logger.Warn().Err(err).Msg("cache refresh failed")
			}
		}
	}
}
