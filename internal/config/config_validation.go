// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup, and fills in defaults for
// the optional fields.
//
// The token signing key and the database DSN have no defaults: their absence
// is a fatal configuration error, not a per-request failure.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	return nil
}

// validate checks the merged [ClientConfig] and fills in defaults. Only the
// server address is mandatory; cache and session files default to paths
// under the user's home directory.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultAdapterTimeout
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = DefaultRefreshInterval
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = filepath.Join(home, ".go-task-keeper", "cache.db")
	}
	if cfg.Session.DurablePath == "" {
		cfg.Session.DurablePath = filepath.Join(home, ".go-task-keeper", "session.json")
	}

	return nil
}
