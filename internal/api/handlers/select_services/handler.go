package select_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	"github.com/kiranchintala/app-booking/internal/api/middleware"
	draftModels "github.com/kiranchintala/app-booking/internal/service/draft/models"
	selectServices "github.com/kiranchintala/app-booking/internal/usecase/select_services"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgSessionNotFound    = "сессия бронирования не найдена"
	msgForbidden          = "доступ запрещен"
	msgNoServicesSelected = "выберите хотя бы одну услугу"
	msgUnknownService     = "услуга не найдена в каталоге"
	msgCatalogUnavailable = "каталог услуг временно недоступен, попробуйте позже"
)

type Handler struct {
	useCase           SelectServicesUseCase
	perGuestSurcharge float64
	logger            Logger
}

func NewHandler(useCase SelectServicesUseCase, perGuestSurcharge float64, logger Logger) *Handler {
	return &Handler{
		useCase:           useCase,
		perGuestSurcharge: perGuestSurcharge,
		logger:            logger,
	}
}

// Handle PUT /api/v1/booking-flow/sessions/{sessionId}/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SelectServicesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &selectServices.Request{
		SessionID:  sessionID,
		UserID:     userID,
		ServiceIDs: req.ServiceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, selectServices.ErrSessionNotFound):
			h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, selectServices.ErrAccessDenied):
			h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Access denied: session_id=%s, user_id=%s", sessionID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, selectServices.ErrNoServicesSelected):
			h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Empty selection: session_id=%s", sessionID)
			handlers.RespondBadRequest(w, msgNoServicesSelected)

		case errors.Is(err, selectServices.ErrUnknownService):
			h.logger.Warn("PUT /booking-flow/sessions/{id}/services - Unknown service: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, selectServices.ErrCatalogUnavailable):
			h.logger.Error("PUT /booking-flow/sessions/{id}/services - Catalog unavailable: session_id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("PUT /booking-flow/sessions/{id}/services - Failed to select services: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /booking-flow/sessions/{id}/services - Selection updated: session_id=%s, services=%d",
		sessionID, len(result.Draft.Services))
	handlers.RespondJSON(w, http.StatusOK, draftModels.FromDomainDraft(result.Draft, h.perGuestSurcharge))
}
