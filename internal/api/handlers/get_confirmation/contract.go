package get_confirmation

import (
	"context"

	getConfirmation "github.com/kiranchintala/app-booking/internal/usecase/get_confirmation"
)

// GetConfirmationUseCase интерфейс use case подтверждения записи
type GetConfirmationUseCase interface {
	Execute(ctx context.Context, req *getConfirmation.Request) (*getConfirmation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
