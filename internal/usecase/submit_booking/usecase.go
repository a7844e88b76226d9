package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// UseCase use case отправки черновика в appointments API (шаг 2, запись)
type UseCase struct {
	client       AppointmentClient
	store        SessionStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AppointmentClient, store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи из черновика
// Вся бизнес-валидация черновика выполняется здесь; при любой ошибке
// валидации запрос к appointments API не выполняется, черновик не трогается,
// отправку можно повторить. Запрос на создание выполняется ровно один раз
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s, user=%s", req.SessionID, req.UserID)

	// 1. Черновик должен существовать и принадлежать пользователю
	draft, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("SubmitBooking: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SubmitBooking: store error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if draft.UserID != req.UserID {
		uc.logger.Warn("SubmitBooking: access denied for user=%s to session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	// 2. Полная валидация черновика
	now := uc.timeProvider.Now()
	if err := validateDraft(draft, now); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Проверка занятости выбранного времени; сбой проверки
	//    не блокирует отправку, конфликт разрешит appointments API
	bookedValues, err := uc.client.GetBookedSlots(ctx, draft.Date)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to fetch booked slots for date=%s, proceeding: %v", draft.Date, err)
	} else {
		booked := domain.NewBookedSlotSet(bookedValues)
		if booked.Has(draft.Time) {
			uc.logger.Warn("SubmitBooking: slot %s on %s already booked", draft.Time, draft.Date)
			return nil, ErrSlotTaken
		}
	}

	// 4. Сборка заявки: локальная дата и время без смещения зоны,
	//    статус всегда Pending
	request := &domain.AppointmentRequest{
		UserID:     draft.UserID,
		ServiceIDs: draft.ServiceIDs(),
		DateTime:   draft.Date + "T" + draft.Time.String() + ":00",
		Guests:     draft.Guests,
		Notes:      draft.Notes,
		Status:     domain.StatusPending,
	}

	// 5. Создание записи
	appointment, err := uc.client.CreateAppointment(ctx, toCreateRequest(request))
	if err != nil {
		if errors.Is(err, appointmentservice.ErrRejected) {
			uc.logger.Warn("SubmitBooking: appointment rejected for session=%s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		uc.logger.Error("SubmitBooking: failed to create appointment for session=%s: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.logger.Info("SubmitBooking: created appointment id=%s for session=%s", appointment.ID, req.SessionID)

	return &Response{
		AppointmentID: appointment.ID,
		Status:        appointment.Status,
		DateTime:      appointment.DateTime,
		TotalCost:     appointment.TotalCost,
	}, nil
}
