package remove_service

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	"github.com/kiranchintala/app-booking/internal/service/draft"
)

const (
	msgInvalidServiceID = "некорректный ID услуги"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgSessionNotFound  = "сессия бронирования не найдена"
	msgForbidden        = "доступ запрещен"
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

// Handle DELETE /api/v1/booking-flow/sessions/{sessionId}/services/{serviceId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["sessionId"]

	serviceID, err := strconv.ParseInt(vars["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.RemoveService(r.Context(), sessionID, userID, serviceID)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrSessionNotFound):
			h.logger.Warn("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, draft.ErrAccessDenied):
			h.logger.Warn("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Failed to remove service: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /booking-flow/sessions/{id}/services/{serviceId} - Service removed: session_id=%s, service_id=%d",
		sessionID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
