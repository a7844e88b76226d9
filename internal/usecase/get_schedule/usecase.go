package get_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	"github.com/kiranchintala/app-booking/internal/slots"
	"github.com/kiranchintala/app-booking/pkg/types"
)

// UseCase use case получения расписания слотов на дату (шаг 2, чтение)
// Каталог слотов статичен для настроенного окна; занятость подтягивается
// из appointments API на каждую смену даты заново
type UseCase struct {
	slotsClient  SlotsClient
	store        SessionStore
	openTime     types.TimeString
	closeTime    types.TimeString
	stepMinutes  int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotsClient SlotsClient,
	store SessionStore,
	openTime, closeTime types.TimeString,
	stepMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotsClient:  slotsClient,
		store:        store,
		openTime:     openTime,
		closeTime:    closeTime,
		stepMinutes:  stepMinutes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания
// Слот недоступен, если он занят на эту дату или если дата - сегодня
// и время слота уже прошло. Недоступность appointments API не блокирует
// шаг: ответ помечается Degraded, конфликты не показываются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: session=%s, user=%s, date=%s", req.SessionID, req.UserID, req.Date)

	// 1. Черновик должен существовать, принадлежать пользователю
	//    и содержать выбранные услуги
	draft, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("GetSchedule: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("GetSchedule: store error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if draft.UserID != req.UserID {
		uc.logger.Warn("GetSchedule: access denied for user=%s to session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	if !draft.HasSelection() {
		uc.logger.Warn("GetSchedule: session=%s entered schedule step with empty selection", req.SessionID)
		return nil, ErrNoServicesSelected
	}

	// 2. Валидация даты: формат и не в прошлом
	now := uc.timeProvider.Now()
	requestDate, err := validateDate(req.Date, now)
	if err != nil {
		uc.logger.Warn("GetSchedule: date validation failed: %v", err)
		return nil, err
	}

	// 3. Полный каталог слотов дня
	allSlots, err := slots.Generate(uc.openTime, uc.closeTime, uc.stepMinutes)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 4. Занятые слоты на дату; при сбое деградируем, а не падаем
	degraded := false
	var booked domain.BookedSlotSet

	bookedValues, err := uc.slotsClient.GetBookedSlots(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to fetch booked slots for date=%s, degrading: %v", req.Date, err)
		degraded = true
		booked = domain.BookedSlotSet{}
	} else {
		booked = domain.NewBookedSlotSet(bookedValues)
	}

	// 5. Аннотируем каждый слот
	isToday := isSameDay(requestDate, now)
	nowTime := types.NewTimeString(now)

	statuses := make([]SlotStatus, len(allSlots))
	for i, slot := range allSlots {
		status := SlotStatus{
			Value:     slot.Value.String(),
			Label:     slot.Label,
			Available: true,
		}

		switch {
		case booked.Has(slot.Value):
			status.Available = false
			status.Reason = domain.ReasonBooked
		case isToday && !slot.Value.IsAfter(nowTime):
			status.Available = false
			status.Reason = domain.ReasonPast
		}

		statuses[i] = status
	}

	uc.logger.Info("GetSchedule: %d slots for date=%s, %d booked, degraded=%t",
		len(statuses), req.Date, len(booked), degraded)

	return &Response{
		Date:     req.Date,
		Slots:    statuses,
		Degraded: degraded,
	}, nil
}
