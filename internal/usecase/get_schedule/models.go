package get_schedule

import (
	"github.com/kiranchintala/app-booking/internal/domain"
)

// Request модель запроса расписания на дату
type Request struct {
	SessionID string // ID booking-сессии
	UserID    string // ID пользователя (владельца сессии)
	Date      string // Дата "YYYY-MM-DD"
}

// SlotStatus слот дня с признаком доступности
type SlotStatus struct {
	Value     string // "HH:MM"
	Label     string // Отображаемая форма, например "6:30 AM"
	Available bool
	Reason    domain.SlotUnavailableReason // Заполнен только для недоступных слотов
}

// Response модель ответа с полным каталогом слотов на дату
type Response struct {
	Date  string
	Slots []SlotStatus

	// Degraded = true, когда занятость получить не удалось: слоты отданы
	// без отметок о конфликтах, пользователь всё ещё может выбрать время
	Degraded bool
}
