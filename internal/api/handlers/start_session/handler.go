package start_session

import (
	"net/http"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
)

const msgMissingUserID = "отсутствует ID пользователя"

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

// Handle POST /api/v1/booking-flow/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-flow/sessions - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	draft := h.service.StartSession(r.Context(), userID)

	h.logger.Info("POST /booking-flow/sessions - Session started: session_id=%s, user_id=%s",
		draft.SessionID, userID)
	handlers.RespondJSON(w, http.StatusCreated, draft)
}
