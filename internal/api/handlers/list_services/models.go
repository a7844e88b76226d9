package list_services

import (
	listServices "github.com/kiranchintala/app-booking/internal/usecase/list_services"
)

// ServiceResponse услуга каталога в ответе API
type ServiceResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationInMinutes,omitempty"`
}

// ListServicesResponse ответ каталога с доступными категориями
type ListServicesResponse struct {
	Services   []ServiceResponse `json:"services"`
	Categories []string          `json:"categories"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(result *listServices.Response) *ListServicesResponse {
	services := make([]ServiceResponse, len(result.Services))
	for i, svc := range result.Services {
		services[i] = ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Category:        svc.Category,
			Description:     svc.Description,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		}
	}

	return &ListServicesResponse{
		Services:   services,
		Categories: result.Categories,
	}
}
