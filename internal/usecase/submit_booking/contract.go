package submit_booking

import (
	"context"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// AppointmentClient интерфейс клиента appointments API
type AppointmentClient interface {
	GetBookedSlots(ctx context.Context, date string) ([]string, error)
	CreateAppointment(ctx context.Context, req *appointmentservice.CreateAppointmentRequest) (*appointmentservice.Appointment, error)
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
