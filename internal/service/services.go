package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// Services groups all server-side services behind one value so the handler
// layer can receive a single dependency.
type Services struct {
	AuthService
	TaskService
}

// NewServices constructs the service layer on top of the given storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	logger.Info().Msg("creating new services...")

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
