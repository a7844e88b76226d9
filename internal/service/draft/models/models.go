package models

import (
	"github.com/kiranchintala/app-booking/internal/domain"
)

// UpdateFields частичное обновление полей черновика
// nil-поле означает "не менять"; валидация здесь только синтаксическая
// (формат даты и времени), бизнес-валидация происходит на шагах потока
type UpdateFields struct {
	Date    *string `json:"date,omitempty"`
	Time    *string `json:"time,omitempty"`
	Guests  *int    `json:"guests,omitempty"`
	Notes   *string `json:"notes,omitempty"`
	Version *int64  `json:"version,omitempty"`
}

// ServiceItem услуга в составе черновика
type ServiceItem struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationInMinutes,omitempty"`
}

// DraftResponse модель черновика бронирования для API
type DraftResponse struct {
	SessionID      string        `json:"sessionId"`
	Services       []ServiceItem `json:"services"`
	Date           string        `json:"date,omitempty"`
	Time           string        `json:"time,omitempty"`
	Guests         int           `json:"guests"`
	Notes          string        `json:"notes,omitempty"`
	Version        int64         `json:"version"`
	EstimatedTotal float64       `json:"estimatedTotal"`
}

// FromDomainDraft конвертирует domain черновик в API модель
func FromDomainDraft(d *domain.BookingDraft, perGuestSurcharge float64) *DraftResponse {
	services := make([]ServiceItem, len(d.Services))
	for i, s := range d.Services {
		services[i] = ServiceItem{
			ID:              s.ID,
			Name:            s.Name,
			Category:        s.Category,
			Description:     s.Description,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		}
	}

	return &DraftResponse{
		SessionID:      d.SessionID,
		Services:       services,
		Date:           d.Date,
		Time:           d.Time.String(),
		Guests:         d.Guests,
		Notes:          d.Notes,
		Version:        d.Version,
		EstimatedTotal: d.EstimatedTotal(perGuestSurcharge),
	}
}
