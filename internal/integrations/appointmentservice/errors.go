package appointmentservice

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда appointment с указанным ID не существует
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("appointmentservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("appointmentservice client: invalid response")

	// ErrRejected возвращается, когда appointments API отклонил создание
	ErrRejected = errors.New("appointmentservice client: create request rejected")
)
