// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-task-keeper/internal/logger"
)

// Manager coordinates the durable and ephemeral stores so that at most one
// of them holds a session. Every mutation writes the new state first and
// clears the other store second: if the process dies between the two steps
// the user ends up logged in twice rather than logged out.
type Manager struct {
	durable   Store
	ephemeral Store
	logger    *logger.Logger
}

// NewManager wires a Manager over the given store pair.
func NewManager(durable, ephemeral Store, logger *logger.Logger) *Manager {
	return &Manager{
		durable:   durable,
		ephemeral: ephemeral,
		logger:    logger,
	}
}

// Remember persists the session. With remember set the session goes to the
// durable store and survives restarts; without it the session lives only in
// memory. The other store is cleared afterwards so a stale older session
// can never shadow this one.
func (m *Manager) Remember(session Session, remember bool) error {
	target, other := m.ephemeral, m.durable
	if remember {
		target, other = m.durable, m.ephemeral
	}

	if err := target.Save(session); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}
	if err := other.Clear(); err != nil {
		return fmt.Errorf("error clearing previous session: %w", err)
	}

	return nil
}

// Restore returns the current session, checking the durable store first
// and falling back to the ephemeral one. A malformed durable session is
// purged and treated as absent instead of wedging every startup.
//
// Returns ErrSessionNotFound when neither store holds a session.
func (m *Manager) Restore() (Session, error) {
	session, err := m.durable.Load()
	if err == nil {
		return session, nil
	}
	if errors.Is(err, ErrSessionMalformed) {
		m.logger.Warn().Err(err).Msg("purging malformed stored session")
		if clearErr := m.durable.Clear(); clearErr != nil {
			return Session{}, fmt.Errorf("error purging malformed session: %w", clearErr)
		}
	} else if !errors.Is(err, ErrSessionNotFound) {
		return Session{}, fmt.Errorf("error loading stored session: %w", err)
	}

	session, err = m.ephemeral.Load()
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return Session{}, ErrSessionNotFound
		}
		return Session{}, fmt.Errorf("error loading in-memory session: %w", err)
	}

	return session, nil
}

// Logout clears both stores. Both clears are attempted even if the first
// one fails, so a durable-store error cannot leave the in-memory token
// alive.
func (m *Manager) Logout() error {
	durableErr := m.durable.Clear()
	ephemeralErr := m.ephemeral.Clear()

	if durableErr != nil {
		return fmt.Errorf("error clearing stored session: %w", durableErr)
	}
	if ephemeralErr != nil {
		return fmt.Errorf("error clearing in-memory session: %w", ephemeralErr)
	}

	return nil
}
