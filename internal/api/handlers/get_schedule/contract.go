package get_schedule

import (
	"context"

	getSchedule "github.com/kiranchintala/app-booking/internal/usecase/get_schedule"
)

// GetScheduleUseCase интерфейс use case получения расписания
type GetScheduleUseCase interface {
	Execute(ctx context.Context, req *getSchedule.Request) (*getSchedule.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
