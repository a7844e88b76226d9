package draft

import (
	"github.com/kiranchintala/app-booking/internal/domain"
)

// SessionStore интерфейс хранилища черновиков бронирования
type SessionStore interface {
	Create(userID string) *domain.BookingDraft
	Get(sessionID string) (*domain.BookingDraft, error)
	Update(sessionID string, expectedVersion *int64, mutate func(*domain.BookingDraft) error) (*domain.BookingDraft, error)
	Delete(sessionID string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
