package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrTokenIsExpiredOrInvalid is the single error every token validation
	// failure collapses to. Callers must not be able to distinguish a bad
	// signature from an expired token.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrValidationInvalidUsername = errors.New("username must be 3-30 characters of letters, numbers, and underscores")
	ErrValidationInvalidEmail    = errors.New("a valid email is required")
	ErrValidationWeakPassword    = errors.New("password must be at least 5 characters and contain a letter and a number")

	ErrValidationTitleRequired      = errors.New("title is required and must be at most 200 characters")
	ErrValidationDescriptionTooLong = errors.New("description must be at most 1000 characters")
	ErrValidationInvalidStatus      = errors.New("status must be one of: To Do, In Progress, Done")
)
