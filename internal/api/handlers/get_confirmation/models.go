package get_confirmation

import (
	getConfirmation "github.com/kiranchintala/app-booking/internal/usecase/get_confirmation"
)

// ServiceLineResponse услуга в составе подтверждения
type ServiceLineResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// ConfirmationResponse ответ страницы подтверждения
type ConfirmationResponse struct {
	AppointmentID string                `json:"appointmentId"`
	Status        string                `json:"status"`
	DateTime      string                `json:"dateTime"`
	DateLabel     string                `json:"dateLabel,omitempty"`
	TimeLabel     string                `json:"timeLabel,omitempty"`
	Guests        int                   `json:"guests"`
	Services      []ServiceLineResponse `json:"services"`
	Notes         string                `json:"notes,omitempty"`
	TotalCost     float64               `json:"totalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(result *getConfirmation.Response) *ConfirmationResponse {
	services := make([]ServiceLineResponse, len(result.Services))
	for i, svc := range result.Services {
		services[i] = ServiceLineResponse{
			ID:    svc.ID,
			Name:  svc.Name,
			Price: svc.Price,
		}
	}

	return &ConfirmationResponse{
		AppointmentID: result.AppointmentID,
		Status:        result.Status,
		DateTime:      result.DateTime,
		DateLabel:     result.DateLabel,
		TimeLabel:     result.TimeLabel,
		Guests:        result.Guests,
		Services:      services,
		Notes:         result.Notes,
		TotalCost:     result.TotalCost,
	}
}
