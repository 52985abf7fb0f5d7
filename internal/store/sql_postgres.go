package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/migrations"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB wraps the standard sql.DB with the error classifier and a logger.
// Both the server (PostgreSQL) and the client cache (SQLite) connect through
// this type.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the server database schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// NewConnectPostgres opens a PostgreSQL connection through the pgx stdlib
// driver, configures the pool, and verifies connectivity with a ping.
// Transient ping failures (connection-class errors) are retried a few times
// before giving up.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	classifier := NewPostgresErrorClassifier()

	// ping database, retrying transient failures
	pingErr := conn.PingContext(ctx)
	for attempt := 1; pingErr != nil && attempt <= 3 && classifier.Classify(pingErr) == Retryable; attempt++ {
		log.Warn().
			Err(pingErr).
			Str("func", "NewConnectPostgres").
			Int("attempt", attempt).
			Msg("transient database ping failure, retrying")
		time.Sleep(time.Duration(attempt) * time.Second)
		pingErr = conn.PingContext(ctx)
	}
	if pingErr != nil {
		log.Err(pingErr).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		return nil, pingErr
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: classifier,
	}

	return db, nil
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func postgresConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}

	return ""
}
