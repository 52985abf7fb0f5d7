// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into the business
// error the rest of the client understands. Errors that carry no adapter
// sentinel at all are connectivity failures and become ErrServerUnavailable.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		case app.MsgInvalidEmailPassword:
			return ErrWrongPassword
		}
		return err

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrNotFound):
		return store.ErrTaskNotFound

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUsernameAlreadyExists:
			return store.ErrUsernameAlreadyExists
		case app.MsgEmailAlreadyExists:
			return store.ErrEmailAlreadyExists
		}
		return err

	case errors.Is(err, adapter.ErrInternalServerError):
		return err

	default:
		return errors.Join(ErrServerUnavailable, err)
	}
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
