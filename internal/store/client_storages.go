package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// ClientStorages groups all client-side storage repositories into a single
// value that can be passed around the client service layer. Currently it
// holds only [TaskCacheRepository]; additional repositories can be added
// here as the feature set grows.
type ClientStorages struct {
	// TaskCache is the SQLite-backed snapshot of the last fetched task list.
	TaskCache TaskCacheRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It opens an SQLite connection to the file path
// specified in cfg.DB.DSN (creating the database file if it does not yet
// exist) and constructs the task cache repository on top of it.
//
// Returns an error if the database connection cannot be established or the
// cache schema cannot be created.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	taskCache, err := NewTaskCacheRepository(db, logger)
	if err != nil {
		return nil, fmt.Errorf("task cache init error: %w", err)
	}

	return &ClientStorages{
		TaskCache: taskCache,
	}, nil
}
