package list_services

import (
	"context"

	listServices "github.com/kiranchintala/app-booking/internal/usecase/list_services"
)

// ListServicesUseCase интерфейс use case каталога услуг
type ListServicesUseCase interface {
	Execute(ctx context.Context, req *listServices.Request) (*listServices.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
