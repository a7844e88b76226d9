package draft

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("booking session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrVersionConflict возвращается, когда обновление несёт устаревшую версию черновика
	ErrVersionConflict = errors.New("draft version conflict")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("draft service: internal error")
)
