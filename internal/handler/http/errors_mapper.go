package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/service"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrValidationInvalidUsername:    http.StatusBadRequest,
	service.ErrValidationInvalidEmail:       http.StatusBadRequest,
	service.ErrValidationWeakPassword:       http.StatusBadRequest,
	service.ErrValidationTitleRequired:      http.StatusBadRequest,
	service.ErrValidationDescriptionTooLong: http.StatusBadRequest,
	service.ErrValidationInvalidStatus:      http.StatusBadRequest,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusBadRequest,
	store.ErrTaskNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError chooses the body text for an error response. Validation
// errors carry their own user-facing text; everything else gets a fixed
// message per status so that internals (and account existence) never leak.
func messageFromError(err error, status int) string {
	switch status {
	case http.StatusBadRequest:
		// bad credentials share one fixed body, so the response never tells
		// an unknown email apart from a wrong password
		if errors.Is(err, service.ErrWrongPassword) || errors.Is(err, store.ErrNoUserWasFound) {
			return app.MsgInvalidEmailPassword
		}
		return err.Error()
	case http.StatusUnauthorized:
		return app.MsgTokenIsExpiredOrInvalid
	case http.StatusNotFound:
		return app.MsgTaskNotFound
	case http.StatusConflict:
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return app.MsgEmailAlreadyExists
		}
		return app.MsgUsernameAlreadyExists
	default:
		return app.MsgInternalServerError
	}
}

// handleServiceError maps a service/store error onto an HTTP status and a
// JSON {message} body.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
	} else {
		log.Warn().Err(err).Int("status", status).Send()
	}

	writeMessage(w, messageFromError(err, status), status)
}

func writeMessage(w http.ResponseWriter, message string, status int) {
	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}
