// Package tui implements the interactive terminal client on top of Bubble
// Tea. One program instance covers both the authentication flow and the main
// task list; the screens are routed by a single root model.
package tui

import (
	"context"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) *TUI {
	return &TUI{services: services, logger: logger}
}

// Run starts the terminal UI. With loggedIn set the program opens directly on
// the task list; otherwise it starts at the welcome screen. It returns
// logout=true when the user explicitly signed out, and ErrUserQuit when the
// user left without ever signing in.
func (t *TUI) Run(ctx context.Context, loggedIn bool) (logout bool, err error) {
	model := newAppModel(ctx, t.services, loggedIn)

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.err != nil {
		return result.logout, result.err
	}
	return result.logout, nil
}
