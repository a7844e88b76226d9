package get_schedule

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("get_schedule: booking session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("get_schedule: access denied")

	// ErrNoServicesSelected возвращается при входе на шаг расписания без
	// выбранных услуг - клиент должен вернуть пользователя на шаг выбора
	ErrNoServicesSelected = errors.New("get_schedule: no services selected")

	// ErrInvalidDate возвращается при некорректной или прошедшей дате
	ErrInvalidDate = errors.New("get_schedule: invalid date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_schedule: internal error")
)
