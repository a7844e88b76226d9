package submit_booking

import (
	submitBooking "github.com/kiranchintala/app-booking/internal/usecase/submit_booking"
)

// SubmitResponse ответ успешной отправки черновика
type SubmitResponse struct {
	AppointmentID string  `json:"appointmentId"`
	Status        string  `json:"status"`
	DateTime      string  `json:"dateTime"`
	TotalCost     float64 `json:"totalCost"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(result *submitBooking.Response) *SubmitResponse {
	return &SubmitResponse{
		AppointmentID: result.AppointmentID,
		Status:        result.Status,
		DateTime:      result.DateTime,
		TotalCost:     result.TotalCost,
	}
}
