package appointmentservice

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// Mock in-process мок appointments API для non-production окружений
// Хранит созданные appointments в памяти и агрегирует занятые слоты по датам
type Mock struct {
	mu           sync.RWMutex
	appointments map[string]Appointment
}

// NewMock создает пустой мок appointments API
func NewMock() *Mock {
	return &Mock{
		appointments: make(map[string]Appointment),
	}
}

// GetBookedSlots возвращает занятые слоты ("HH:MM") на указанную дату
func (m *Mock) GetBookedSlots(_ context.Context, date string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	booked := make([]string, 0)
	for _, a := range m.appointments {
		// DateTime имеет вид "YYYY-MM-DDTHH:MM:SS"
		datePart, timePart, ok := strings.Cut(a.DateTime, "T")
		if !ok || datePart != date || len(timePart) < 5 {
			continue
		}
		booked = append(booked, timePart[:5])
	}

	return booked, nil
}

// CreateAppointment сохраняет appointment в памяти и присваивает ему ID
func (m *Mock) CreateAppointment(_ context.Context, req *CreateAppointmentRequest) (*Appointment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	appointment := Appointment{
		ID:       "mock-" + uuid.NewString(),
		Status:   req.Status,
		DateTime: req.DateTime,
		Guests:   req.Guests,
		Notes:    req.Notes,
	}

	// Итемизация услуг без обращения к каталогу моку недоступна,
	// поэтому TotalCost оставляем нулевым - подтверждение отобразит
	// то, что вернул бэкенд
	for _, id := range req.ServiceIDs {
		appointment.Services = append(appointment.Services, AppointmentService{ID: id})
	}

	m.appointments[appointment.ID] = appointment
	return &appointment, nil
}

// GetAppointment возвращает appointment по ID
func (m *Mock) GetAppointment(_ context.Context, id string) (*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	appointment, ok := m.appointments[id]
	if !ok {
		return nil, ErrAppointmentNotFound
	}

	return &appointment, nil
}
