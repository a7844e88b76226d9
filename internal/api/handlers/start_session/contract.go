package start_session

import (
	"context"

	"github.com/kiranchintala/app-booking/internal/service/draft/models"
)

// DraftService интерфейс сервиса черновиков бронирования
type DraftService interface {
	StartSession(ctx context.Context, userID string) *models.DraftResponse
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
