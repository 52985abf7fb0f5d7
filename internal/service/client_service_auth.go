// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/session"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

// clientAuthService is the concrete implementation of [ClientAuthService].
// It ties three pieces of client state together: the session manager (where
// the token lives between runs), the server adapter (which attaches the token
// to requests), and the task cache (which must not outlive the login).
type clientAuthService struct {
	serverAdapter  adapter.ServerAdapter
	sessionManager *session.Manager
	taskCache      store.TaskCacheRepository
	logger         *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService].
func NewClientAuthService(serverAdapter adapter.ServerAdapter, sessionManager *session.Manager, taskCache store.TaskCacheRepository, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		serverAdapter:  serverAdapter,
		sessionManager: sessionManager,
		taskCache:      taskCache,
		logger:         logger,
	}
}

// Register implements [ClientAuthService]. Registration always persists the
// session durably: a user who just created an account expects to stay logged
// in.
func (c *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (session.Session, error) {
	auth, err := c.serverAdapter.Register(ctx, req)
	if err != nil {
		return session.Session{}, mapAdapterError(err)
	}

	newSession := session.Session{
		Token:   auth.Token,
		User:    auth.User,
		SavedAt: time.Now(),
	}
	if err = c.sessionManager.Remember(newSession, true); err != nil {
		return session.Session{}, fmt.Errorf("error persisting session: %w", err)
	}

	c.logger.Info().Str("username", auth.User.Username).Msg("registered and logged in")

	return newSession, nil
}

// Login implements [ClientAuthService].
func (c *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (session.Session, error) {
	auth, err := c.serverAdapter.Login(ctx, req)
	if err != nil {
		return session.Session{}, mapAdapterError(err)
	}

	newSession := session.Session{
		Token:   auth.Token,
		User:    auth.User,
		SavedAt: time.Now(),
	}
	if err = c.sessionManager.Remember(newSession, req.RememberMe); err != nil {
		return session.Session{}, fmt.Errorf("error persisting session: %w", err)
	}

	c.logger.Info().
		Str("username", auth.User.Username).
		Bool("remember_me", req.RememberMe).
		Msg("logged in")

	return newSession, nil
}

// Resume implements [ClientAuthService]. An expired stored token is logged
// out eagerly instead of being offered to the server: the server would reject
// it anyway, and the stale session file would keep resurfacing on every
// startup.
func (c *clientAuthService) Resume(ctx context.Context) (session.Session, error) {
	restored, err := c.sessionManager.Restore()
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return session.Session{}, ErrNotLoggedIn
		}
		return session.Session{}, fmt.Errorf("error restoring session: %w", err)
	}

	if utils.TokenIsExpired(restored.Token) {
		c.logger.Info().Str("username", restored.User.Username).Msg("stored session has expired")
		if logoutErr := c.Logout(ctx); logoutErr != nil {
			return session.Session{}, logoutErr
		}
		return session.Session{}, ErrNotLoggedIn
	}

	c.serverAdapter.SetToken(restored.Token)
	c.logger.Info().Str("username", restored.User.Username).Msg("session restored")

	return restored, nil
}

// Logout implements [ClientAuthService]. The cache is cleared with the
// session: cached tasks belong to the login, not to the machine.
func (c *clientAuthService) Logout(ctx context.Context) error {
	userID, _ := utils.ParseUserIDFromJWT(c.serverAdapter.Token())

	c.serverAdapter.SetToken("")

	if err := c.sessionManager.Logout(); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	if userID != 0 {
		if err := c.taskCache.Clear(ctx, userID); err != nil {
			c.logger.Warn().Err(err).Msg("failed to clear task cache on logout")
		}
	}

	c.logger.Info().Msg("logged out")

	return nil
}
