package slots

import (
	"fmt"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/pkg/types"
)

// Generate генерирует каталог слотов дня в интервале [open, close)
// с фиксированным шагом stepMinutes.
// Результат детерминирован: одинаковые входы дают одинаковую последовательность.
func Generate(open, close types.TimeString, stepMinutes int) ([]domain.TimeSlot, error) {
	if stepMinutes <= 0 {
		return nil, fmt.Errorf("step must be positive, got %d", stepMinutes)
	}

	if !open.IsBefore(close) {
		return nil, fmt.Errorf("open time %s must be before close time %s", open, close)
	}

	slots := make([]domain.TimeSlot, 0, (close.Minutes()-open.Minutes())/stepMinutes)
	current := open

	for current.IsBefore(close) {
		slots = append(slots, domain.TimeSlot{
			Value: current,
			Label: Label(current),
		})

		next, err := current.AddMinutes(stepMinutes)
		if err != nil {
			// Дошли до конца суток
			break
		}
		current = next
	}

	return slots, nil
}

// Label возвращает отображаемую форму слота, например "6:30 AM"
func Label(value types.TimeString) string {
	t, err := time.Parse(domain.TimeFormat, value.String())
	if err != nil {
		return value.String()
	}
	return t.Format("3:04 PM")
}
