// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// GoTaskKeeper server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any existing user record. The same message
	// covers an unknown email and a wrong password, so the response does not
	// reveal which accounts exist.
	MsgInvalidEmailPassword = "invalid email or password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// missing, expired, or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameAlreadyExists is returned when a registration collides with
	// an existing username.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgEmailAlreadyExists is returned when a registration collides with an
	// existing email.
	MsgEmailAlreadyExists = "email already exists"

	// MsgTaskNotFound is returned when the requested task does not exist or
	// is owned by a different user. Both cases get the same message so a
	// caller cannot probe which task IDs exist.
	MsgTaskNotFound = "task not found"

	// MsgTaskDeleted is returned in the body of a successful delete.
	MsgTaskDeleted = "task deleted successfully"
)
