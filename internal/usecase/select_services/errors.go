package select_services

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("select_services: booking session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("select_services: access denied")

	// ErrNoServicesSelected возвращается при пустом выборе услуг
	// Переход к следующему шагу без выбранных услуг запрещён
	ErrNoServicesSelected = errors.New("select_services: at least one service must be selected")

	// ErrUnknownService возвращается, когда выбранный ID отсутствует в каталоге
	ErrUnknownService = errors.New("select_services: unknown service id")

	// ErrCatalogUnavailable возвращается, когда каталог недоступен
	ErrCatalogUnavailable = errors.New("select_services: catalog unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("select_services: internal error")
)
