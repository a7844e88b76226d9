package get_confirmation

import (
	"context"

	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// AppointmentClient интерфейс клиента appointments API
type AppointmentClient interface {
	GetAppointment(ctx context.Context, appointmentID string) (*appointmentservice.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
