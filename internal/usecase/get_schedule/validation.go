package get_schedule

import (
	"fmt"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
)

// validateDate проверяет формат даты и что дата не в прошлом
// относительно текущего дня
func validateDate(date string, now time.Time) (time.Time, error) {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsed.Before(today) {
		return time.Time{}, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return parsed, nil
}

func isSameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
