// Package client assembles the terminal client: session restore, background
// cache refresh, and the TUI loop.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/tui"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
)

// App ties the client services, the background workers, and the terminal UI
// into one run loop.
type App struct {
	services *service.ClientServices
	ui       *tui.TUI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp builds the client application around already-constructed services
// and UI. The cache refresh worker is created here so the run loop owns its
// lifecycle.
func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.Workers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app: services and ui are required")
	}

	refreshWorker := workers.NewCacheRefreshWorker(services.TaskService, cfg.RefreshInterval, logger)

	return &App{
		services: services,
		ui:       ui,
		workers:  workers.NewWorkers(refreshWorker),
		logger:   logger,
	}, nil
}

// Run restores a persisted session if one exists, starts the background
// workers, and hands control to the TUI. After an explicit logout the loop
// returns to the welcome screen instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()

	loggedIn := true
	if _, err := a.services.AuthService.Resume(ctx); err != nil {
		if !errors.Is(err, service.ErrNotLoggedIn) {
			return fmt.Errorf("restore session: %w", err)
		}
		loggedIn = false
	}

	a.workers.Run()
	defer a.workers.Stop()

	for {
		logout, err := a.ui.Run(ctx, loggedIn)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
		if !logout {
			return nil
		}

		// signed out: back to the welcome screen
		loggedIn = false
	}
}
