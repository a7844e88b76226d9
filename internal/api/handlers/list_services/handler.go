package list_services

import (
	"errors"
	"net/http"

	"github.com/kiranchintala/app-booking/internal/api/handlers"
	listServices "github.com/kiranchintala/app-booking/internal/usecase/list_services"
)

const msgCatalogUnavailable = "каталог услуг временно недоступен, попробуйте позже"

type Handler struct {
	useCase ListServicesUseCase
	logger  Logger
}

func NewHandler(useCase ListServicesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/booking-flow/services?search=&category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.useCase.Execute(r.Context(), &listServices.Request{
		Search:   query.Get("search"),
		Category: query.Get("category"),
	})
	if err != nil {
		switch {
		case errors.Is(err, listServices.ErrCatalogUnavailable):
			h.logger.Error("GET /booking-flow/services - Catalog unavailable: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgCatalogUnavailable)

		default:
			h.logger.Error("GET /booking-flow/services - Failed to list services: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
