package get_confirmation

import (
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// Request модель запроса подтверждения по ID записи
type Request struct {
	AppointmentID string
}

// ServiceLine услуга в составе подтверждения
type ServiceLine struct {
	ID    int64
	Name  string
	Price float64
}

// Response view model страницы подтверждения
// TotalCost отдается как есть, серверное значение не пересчитывается
type Response struct {
	AppointmentID string
	Status        string
	DateTime      string // "YYYY-MM-DDTHH:MM:SS" как вернул appointments API
	DateLabel     string // Отображаемая дата, например "Saturday, September 5, 2026"
	TimeLabel     string // Отображаемое время, например "10:00 AM"
	Guests        int
	Services      []ServiceLine
	Notes         string
	TotalCost     float64
}

// toDomain конвертирует модель appointments API в domain модель
func toDomain(apt *appointmentservice.Appointment) *domain.Appointment {
	services := make([]domain.AppointmentService, len(apt.Services))
	for i, svc := range apt.Services {
		services[i] = domain.AppointmentService{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		}
	}

	return &domain.Appointment{
		ID:        apt.ID,
		Status:    domain.AppointmentStatus(apt.Status),
		DateTime:  apt.DateTime,
		Guests:    apt.Guests,
		Services:  services,
		Notes:     apt.Notes,
		TotalCost: apt.TotalCost,
	}
}

func fromDomain(apt *domain.Appointment) *Response {
	resp := &Response{
		AppointmentID: apt.ID,
		Status:        string(apt.Status),
		DateTime:      apt.DateTime,
		Guests:        apt.Guests,
		Notes:         apt.Notes,
		TotalCost:     apt.TotalCost,
	}

	for _, svc := range apt.Services {
		resp.Services = append(resp.Services, ServiceLine{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		})
	}

	// Нечитаемый dateTime не ломает подтверждение: метки остаются пустыми
	if parsed, err := time.Parse(domain.DateTimeFormat, apt.DateTime); err == nil {
		resp.DateLabel = parsed.Format("Monday, January 2, 2006")
		resp.TimeLabel = parsed.Format("3:04 PM")
	}

	return resp
}
