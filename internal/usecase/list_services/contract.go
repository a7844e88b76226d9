package list_services

import (
	"context"

	"github.com/kiranchintala/app-booking/internal/integrations/catalogservice"
)

// CatalogClient интерфейс клиента каталога услуг
type CatalogClient interface {
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
