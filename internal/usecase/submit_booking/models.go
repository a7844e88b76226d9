package submit_booking

import (
	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
)

// Request модель запроса на отправку черновика в appointments API
type Request struct {
	SessionID string // ID booking-сессии
	UserID    string // ID пользователя (владельца сессии)
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID string // Серверный ID созданной записи
	Status        string // Статус записи ("Pending")
	DateTime      string // "YYYY-MM-DDTHH:MM:SS"
	TotalCost     float64
}

// toCreateRequest конвертирует domain заявку в модель appointments API
func toCreateRequest(req *domain.AppointmentRequest) *appointmentservice.CreateAppointmentRequest {
	return &appointmentservice.CreateAppointmentRequest{
		UserID:     req.UserID,
		ServiceIDs: req.ServiceIDs,
		DateTime:   req.DateTime,
		Guests:     req.Guests,
		Notes:      req.Notes,
		Status:     string(req.Status),
	}
}
