package get_confirmation

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись с таким ID не существует
	ErrAppointmentNotFound = errors.New("get_confirmation: appointment not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_confirmation: internal error")
)
