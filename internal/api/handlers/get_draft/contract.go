package get_draft

import (
	"context"

	"github.com/kiranchintala/app-booking/internal/service/draft/models"
)

// DraftService интерфейс сервиса черновиков бронирования
type DraftService interface {
	GetDraft(ctx context.Context, sessionID, userID string) (*models.DraftResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
