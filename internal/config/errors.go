package config

import "errors"

// Validation errors returned by the config validate methods when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing key was provided
	// by any configuration source. The server cannot issue or verify tokens
	// without it, so startup is aborted.
	ErrMissingTokenSignKey = errors.New("token signing key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string was
	// provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (missing server address).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
