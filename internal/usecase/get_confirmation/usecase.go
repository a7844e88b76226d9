package get_confirmation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// UseCase use case получения подтверждения созданной записи (шаг 3)
type UseCase struct {
	client AppointmentClient
	logger Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AppointmentClient, logger Logger) *UseCase {
	return &UseCase{
		client: client,
		logger: logger,
	}
}

// Execute выполняет use case получения подтверждения
// Шаг терминальный: несуществующий ID означает, что запись недоступна,
// повторный переход в flow начинается с новой сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetConfirmation: appointment=%s", req.AppointmentID)

	if strings.TrimSpace(req.AppointmentID) == "" {
		return nil, ErrAppointmentNotFound
	}

	appointment, err := uc.client.GetAppointment(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentservice.ErrAppointmentNotFound) {
			uc.logger.Warn("GetConfirmation: appointment=%s not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("GetConfirmation: failed to get appointment=%s: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
	}

	result := toDomain(appointment)
	if !result.Status.IsKnown() {
		uc.logger.Warn("GetConfirmation: appointment=%s has unknown status %q", result.ID, result.Status)
	}

	return fromDomain(result), nil
}
