package select_services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
)

// UseCase use case фиксации выбора услуг (шаг 1 потока бронирования)
// Выбор всегда ключуется стабильным ID услуги из каталога
type UseCase struct {
	catalogClient CatalogClient
	store         SessionStore
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogClient CatalogClient, store SessionStore, logger Logger) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		store:         store,
		logger:        logger,
	}
}

// Execute выполняет use case фиксации выбора услуг
// Проверяет, что выбор непустой и каждый ID существует в каталоге,
// затем заменяет выбор черновика целиком (порядок выбора сохраняется)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SelectServices: session=%s, user=%s, %d services",
		req.SessionID, req.UserID, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SelectServices: validation failed: %v", err)
		return nil, err
	}

	// 2. Черновик должен существовать и принадлежать пользователю
	draft, err := uc.store.Get(req.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			uc.logger.Warn("SelectServices: session=%s not found", req.SessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SelectServices: store error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if draft.UserID != req.UserID {
		uc.logger.Warn("SelectServices: access denied for user=%s to session=%s", req.UserID, req.SessionID)
		return nil, ErrAccessDenied
	}

	// 3. Разрешаем ID против каталога
	catalogServices, err := uc.catalogClient.ListServices(ctx)
	if err != nil {
		uc.logger.Error("SelectServices: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	byID := make(map[int64]domain.Service, len(catalogServices))
	for _, cs := range catalogServices {
		byID[cs.ID] = domain.Service{
			ID:              cs.ID,
			Name:            cs.Name,
			Category:        cs.Category,
			Description:     cs.Description,
			Price:           cs.Price,
			DurationMinutes: cs.DurationMinutes,
		}
	}

	selection := make([]domain.Service, 0, len(req.ServiceIDs))
	picked := make(map[int64]struct{}, len(req.ServiceIDs))

	for _, id := range req.ServiceIDs {
		if _, dup := picked[id]; dup {
			continue
		}

		s, ok := byID[id]
		if !ok {
			uc.logger.Warn("SelectServices: service id=%d not found in catalog", id)
			return nil, fmt.Errorf("%w: %d", ErrUnknownService, id)
		}

		picked[id] = struct{}{}
		selection = append(selection, s)
	}

	// 4. Записываем выбор в черновик
	updated, err := uc.store.Update(req.SessionID, nil, func(d *domain.BookingDraft) error {
		d.ReplaceServices(selection)
		return nil
	})
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("SelectServices: failed to update draft: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("SelectServices: session=%s now has %d services selected",
		req.SessionID, len(updated.Services))

	return &Response{Draft: updated}, nil
}
