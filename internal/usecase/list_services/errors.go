package list_services

import "errors"

var (
	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	// Автоматических ретраев нет - клиент показывает ошибку и пользователь
	// повторяет запрос сам
	ErrCatalogUnavailable = errors.New("list_services: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("list_services: internal error")
)
