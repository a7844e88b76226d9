package get_schedule

import (
	"context"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
)

// SlotsClient интерфейс клиента занятых слотов appointments API
type SlotsClient interface {
	GetBookedSlots(ctx context.Context, date string) ([]string, error)
}

// SessionStore интерфейс хранилища черновиков (только чтение)
type SessionStore interface {
	Get(sessionID string) (*domain.BookingDraft, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
