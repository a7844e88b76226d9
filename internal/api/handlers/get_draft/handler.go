package get_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	"github.com/kiranchintala/app-booking/internal/service/draft"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgSessionNotFound = "сессия бронирования не найдена"
	msgForbidden       = "доступ запрещен"
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

// Handle GET /api/v1/booking-flow/sessions/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-flow/sessions/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.GetDraft(r.Context(), sessionID, userID)
	if err != nil {
		switch {
		case errors.Is(err, draft.ErrSessionNotFound):
			h.logger.Warn("GET /booking-flow/sessions/{id} - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, draft.ErrAccessDenied):
			h.logger.Warn("GET /booking-flow/sessions/{id} - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /booking-flow/sessions/{id} - Failed to get draft: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
