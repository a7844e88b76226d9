package submit_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	submitBooking "github.com/kiranchintala/app-booking/internal/usecase/submit_booking"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgForbidden          = "доступ запрещен"
	msgNoServicesSelected = "сначала выберите услуги"
	msgInvalidDate        = "некорректная или прошедшая дата"
	msgInvalidTime        = "некорректное или прошедшее время"
	msgSlotTaken          = "выбранное время уже занято, выберите другой слот"
	msgInvalidGuests      = "некорректное количество гостей"
	msgInvalidNotes       = "заметки слишком длинные"
	msgRejected           = "заявка отклонена, проверьте данные бронирования"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-flow/sessions/{sessionId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &submitBooking.Request{
		SessionID: sessionID,
		UserID:    userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSessionNotFound):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, submitBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, submitBooking.ErrNoServicesSelected):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Empty selection: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgNoServicesSelected)

		case errors.Is(err, submitBooking.ErrInvalidDate):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Invalid date: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, submitBooking.ErrInvalidTime):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Invalid time: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, submitBooking.ErrSlotTaken):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Slot taken: session_id=%s", sessionID)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitBooking.ErrInvalidGuests):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Invalid guests: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, submitBooking.ErrInvalidNotes):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Invalid notes: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgInvalidNotes)

		case errors.Is(err, submitBooking.ErrRejected):
			h.logger.Warn("POST /booking-flow/sessions/{id}/submit - Rejected by appointments API: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		default:
			h.logger.Error("POST /booking-flow/sessions/{id}/submit - Failed to submit booking: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-flow/sessions/{id}/submit - Appointment created: session_id=%s, appointment_id=%s",
		sessionID, result.AppointmentID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
