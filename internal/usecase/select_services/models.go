package select_services

import (
	"github.com/kiranchintala/app-booking/internal/domain"
)

// Request модель запроса фиксации выбора услуг (переход с шага 1)
type Request struct {
	SessionID  string  // ID booking-сессии
	UserID     string  // ID пользователя (владельца сессии)
	ServiceIDs []int64 // Выбранные услуги, в порядке выбора
}

// Response модель ответа с обновлённым черновиком
type Response struct {
	Draft *domain.BookingDraft
}
