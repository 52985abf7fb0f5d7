package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-task-keeper/internal/app"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.createTask").Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.CreateTask(r.Context(), ownerID, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, task, http.StatusCreated)
}

func (h *Handler) listTasks(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	tasks, err := h.services.TaskService.GetAllTasks(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	// an owner with no tasks gets an empty array, not null
	if tasks == nil {
		tasks = []models.Task{}
	}

	_, _ = utils.WriteJSON(w, tasks, http.StatusOK)
}

func (h *Handler) getTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Warn().Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid task id")
		writeMessage(w, app.MsgTaskNotFound, http.StatusNotFound)
		return
	}

	task, err := h.services.TaskService.GetTask(r.Context(), ownerID, taskID)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) updateTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Warn().Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid task id")
		writeMessage(w, app.MsgTaskNotFound, http.StatusNotFound)
		return
	}

	var req models.UpdateTaskRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.updateTask").Msg("Invalid JSON was passed")
		writeMessage(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	task, err := h.services.TaskService.UpdateTask(r.Context(), ownerID, taskID, req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, task, http.StatusOK)
}

func (h *Handler) deleteTask(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		log.Error().Msg("no user ID in request context")
		writeMessage(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
		return
	}

	taskID, err := taskIDFromURL(r)
	if err != nil {
		log.Warn().Err(err).Str("id", chi.URLParam(r, "id")).Msg("invalid task id")
		writeMessage(w, app.MsgTaskNotFound, http.StatusNotFound)
		return
	}

	if err = h.services.TaskService.DeleteTask(r.Context(), ownerID, taskID); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	writeMessage(w, app.MsgTaskDeleted, http.StatusOK)
}

// taskIDFromURL parses the {id} route parameter. A non-numeric ID is
// indistinguishable from a missing task for the caller.
func taskIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
