package get_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	getSchedule "github.com/kiranchintala/app-booking/internal/usecase/get_schedule"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgMissingDate        = "отсутствует параметр date"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgForbidden          = "доступ запрещен"
	msgNoServicesSelected = "сначала выберите услуги"
	msgInvalidDate        = "некорректная или прошедшая дата, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-flow/sessions/{sessionId}/schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Missing date: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSchedule.Request{
		SessionID: sessionID,
		UserID:    userID,
		Date:      date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getSchedule.ErrSessionNotFound):
			h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, getSchedule.ErrAccessDenied):
			h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, getSchedule.ErrNoServicesSelected):
			h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Empty selection: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoServicesSelected)

		case errors.Is(err, getSchedule.ErrInvalidDate):
			h.logger.Warn("GET /booking-flow/sessions/{id}/schedule - Invalid date: session_id=%s, date=%s", sessionID, date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /booking-flow/sessions/{id}/schedule - Failed to get schedule: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
