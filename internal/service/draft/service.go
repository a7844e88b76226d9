package draft

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	"github.com/kiranchintala/app-booking/internal/service/draft/models"
	"github.com/kiranchintala/app-booking/pkg/types"
)

// Service сервис для работы с черновиками бронирования
// Записи last-write-wins, без бизнес-валидации: шаги потока валидируют
// своё состояние сами перед переходом дальше
type Service struct {
	store             SessionStore
	perGuestSurcharge float64
	logger            Logger
}

// NewService создает новый экземпляр сервиса черновиков
func NewService(store SessionStore, perGuestSurcharge float64, logger Logger) *Service {
	return &Service{
		store:             store,
		perGuestSurcharge: perGuestSurcharge,
		logger:            logger,
	}
}

// StartSession создает новую booking-сессию с пустым черновиком
func (s *Service) StartSession(_ context.Context, userID string) *models.DraftResponse {
	draft := s.store.Create(userID)

	s.logger.Info("StartSession: created session=%s for user=%s", draft.SessionID, userID)
	return models.FromDomainDraft(draft, s.perGuestSurcharge)
}

// GetDraft возвращает текущий черновик сессии
// Пользователь видит только собственную сессию
func (s *Service) GetDraft(_ context.Context, sessionID, userID string) (*models.DraftResponse, error) {
	draft, err := s.getOwned(sessionID, userID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainDraft(draft, s.perGuestSurcharge), nil
}

// UpdateDraft применяет частичное обновление полей черновика
// Смена даты сбрасывает выбранное время: занятость слотов привязана к дате,
// и прежний выбор для новой даты не валиден
func (s *Service) UpdateDraft(_ context.Context, sessionID, userID string, fields *models.UpdateFields) (*models.DraftResponse, error) {
	if _, err := s.getOwned(sessionID, userID); err != nil {
		return nil, err
	}

	// Синтаксическая проверка до захвата блокировки store
	var newTime types.TimeString
	if fields.Time != nil && *fields.Time != "" {
		parsed, err := types.NewTimeStringFromString(*fields.Time)
		if err != nil {
			s.logger.Warn("UpdateDraft: invalid time %q for session=%s", *fields.Time, sessionID)
			return nil, fmt.Errorf("%w: %q", ErrInvalidTime, *fields.Time)
		}
		newTime = parsed
	}

	if fields.Date != nil && *fields.Date != "" {
		if _, err := time.Parse(domain.DateFormat, *fields.Date); err != nil {
			s.logger.Warn("UpdateDraft: invalid date %q for session=%s", *fields.Date, sessionID)
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *fields.Date)
		}
	}

	updated, err := s.store.Update(sessionID, fields.Version, func(d *domain.BookingDraft) error {
		if fields.Date != nil && *fields.Date != d.Date {
			d.Date = *fields.Date
			// Новая дата - прежний выбор времени недействителен
			d.Time = ""
		}
		if fields.Time != nil {
			d.Time = newTime
		}
		if fields.Guests != nil {
			d.Guests = *fields.Guests
		}
		if fields.Notes != nil {
			d.Notes = *fields.Notes
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreError("UpdateDraft", sessionID, err)
	}

	s.logger.Info("UpdateDraft: session=%s updated to version=%d", sessionID, updated.Version)
	return models.FromDomainDraft(updated, s.perGuestSurcharge), nil
}

// RemoveService удаляет услугу из выбора черновика
// Операция идемпотентна: удаление невыбранной услуги не является ошибкой
func (s *Service) RemoveService(_ context.Context, sessionID, userID string, serviceID int64) (*models.DraftResponse, error) {
	if _, err := s.getOwned(sessionID, userID); err != nil {
		return nil, err
	}

	updated, err := s.store.Update(sessionID, nil, func(d *domain.BookingDraft) error {
		if removed := d.RemoveService(serviceID); !removed {
			s.logger.Info("RemoveService: service=%d was not selected in session=%s", serviceID, sessionID)
		}
		return nil
	})
	if err != nil {
		return nil, s.mapStoreError("RemoveService", sessionID, err)
	}

	s.logger.Info("RemoveService: session=%s, service=%d, %d services remain",
		sessionID, serviceID, len(updated.Services))
	return models.FromDomainDraft(updated, s.perGuestSurcharge), nil
}

func (s *Service) getOwned(sessionID, userID string) (*domain.BookingDraft, error) {
	draft, err := s.store.Get(sessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			s.logger.Warn("session=%s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if draft.UserID != userID {
		s.logger.Warn("access denied: session=%s belongs to user=%s, requested by user=%s",
			sessionID, draft.UserID, userID)
		return nil, ErrAccessDenied
	}

	return draft, nil
}

func (s *Service) mapStoreError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		s.logger.Warn("%s: session=%s expired during update", op, sessionID)
		return ErrSessionNotFound
	case errors.Is(err, session.ErrVersionConflict):
		s.logger.Warn("%s: stale write rejected for session=%s", op, sessionID)
		return ErrVersionConflict
	default:
		s.logger.Error("%s: store error for session=%s: %v", op, sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
