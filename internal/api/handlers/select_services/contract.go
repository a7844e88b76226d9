package select_services

import (
	"context"

	selectServices "github.com/kiranchintala/app-booking/internal/usecase/select_services"
)

// SelectServicesUseCase интерфейс use case выбора услуг
type SelectServicesUseCase interface {
	Execute(ctx context.Context, req *selectServices.Request) (*selectServices.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
