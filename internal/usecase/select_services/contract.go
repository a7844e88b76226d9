package select_services

import (
	"context"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
}

// SessionStore интерфейс хранилища черновиков
type SessionStore interface {
	Get(sessionID string) (*domain.BookingDraft, error)
	Update(sessionID string, expectedVersion *int64, mutate func(*domain.BookingDraft) error) (*domain.BookingDraft, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
