package update_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	"github.com/kiranchintala/app-booking/internal/service/draft"
	"github.com/kiranchintala/app-booking/internal/service/draft/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgForbidden          = "доступ запрещен"
	msgVersionConflict    = "черновик изменен другим запросом, обновите данные"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	service DraftService
	logger  Logger
}

func NewHandler(service DraftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/booking-flow/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /booking-flow/sessions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var fields models.UpdateFields
	if err := handlers.DecodeJSON(r, &fields); err != nil {
		h.logger.Warn("PATCH /booking-flow/sessions/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDraft(r.Context(), sessionID, userID, &fields)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrSessionNotFound):
			h.logger.Warn("PATCH /booking-flow/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, draft.ErrAccessDenied):
			h.logger.Warn("PATCH /booking-flow/sessions/{id} - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, draft.ErrVersionConflict):
			h.logger.Warn("PATCH /booking-flow/sessions/{id} - Version conflict: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgVersionConflict)

		case errors.Is(err, draft.ErrInvalidDate):
			h.logger.Warn("PATCH /booking-flow/sessions/{id} - Invalid date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, draft.ErrInvalidTime):
			h.logger.Warn("PATCH /booking-flow/sessions/{id} - Invalid time: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("PATCH /booking-flow/sessions/{id} - Failed to update draft: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /booking-flow/sessions/{id} - Draft updated: session_id=%s, version=%d",
		sessionID, result.Version)
	handlers.RespondJSON(w, http.StatusOK, result)
}
