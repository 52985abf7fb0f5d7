package service

import (
	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/session"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// ClientServices groups the client-side services behind one value.
type ClientServices struct {
	AuthService ClientAuthService
	TaskService ClientTaskService
}

// NewClientServices constructs the client service layer on top of the server
// adapter, the session manager, and the local storages.
func NewClientServices(serverAdapter adapter.ServerAdapter, sessionManager *session.Manager, storages *store.ClientStorages, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService: NewClientAuthService(serverAdapter, sessionManager, storages.TaskCache, logger),
		TaskService: NewClientTaskService(serverAdapter, storages.TaskCache, logger),
	}
}
