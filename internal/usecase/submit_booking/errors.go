package submit_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не существует или истекла
	ErrSessionNotFound = errors.New("submit_booking: booking session not found")

	// ErrAccessDenied возвращается, когда сессия принадлежит другому пользователю
	ErrAccessDenied = errors.New("submit_booking: access denied")

	// ErrNoServicesSelected возвращается при попытке отправки без выбранных услуг
	ErrNoServicesSelected = errors.New("submit_booking: no services selected")

	// ErrInvalidDate возвращается при отсутствующей, некорректной или прошедшей дате
	ErrInvalidDate = errors.New("submit_booking: invalid date")

	// ErrInvalidTime возвращается при отсутствующем или прошедшем времени
	ErrInvalidTime = errors.New("submit_booking: invalid time")

	// ErrSlotTaken возвращается, когда выбранное время уже занято на эту дату
	ErrSlotTaken = errors.New("submit_booking: slot already booked")

	// ErrInvalidGuests возвращается при недопустимом количестве гостей
	ErrInvalidGuests = errors.New("submit_booking: invalid guests count")

	// ErrInvalidNotes возвращается при превышении лимита длины заметок
	ErrInvalidNotes = errors.New("submit_booking: notes too long")

	// ErrRejected возвращается, когда appointments API отклонил заявку
	ErrRejected = errors.New("submit_booking: appointment rejected")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
