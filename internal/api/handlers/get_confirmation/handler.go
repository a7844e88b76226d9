package get_confirmation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	getConfirmation "github.com/kiranchintala/app-booking/internal/usecase/get_confirmation"
)

const msgNotFound = "запись не найдена"

type Handler struct {
	useCase GetConfirmationUseCase
	logger  Logger
}

func NewHandler(useCase GetConfirmationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-flow/confirmations/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	result, err := h.useCase.Execute(r.Context(), &getConfirmation.Request{
		AppointmentID: appointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getConfirmation.ErrAppointmentNotFound):
			h.logger.Warn("GET /booking-flow/confirmations/{id} - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /booking-flow/confirmations/{id} - Failed to get confirmation: appointment_id=%s, error=%v", appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /booking-flow/confirmations/{id} - Confirmation retrieved: appointment_id=%s", appointmentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
