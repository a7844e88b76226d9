package submit_booking

import (
	"fmt"
	"time"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/pkg/types"
)

// validateDraft проверяет полноту и корректность черновика перед отправкой
// Черновик собирается без бизнес-валидации, поэтому все проверки
// выполняются здесь, непосредственно перед созданием записи
func validateDraft(draft *domain.BookingDraft, now time.Time) error {
	if !draft.HasSelection() {
		return ErrNoServicesSelected
	}

	if draft.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	parsedDate, err := time.ParseInLocation(domain.DateFormat, draft.Date, now.Location())
	if err != nil {
		return fmt.Errorf("%w: expected format %s", ErrInvalidDate, domain.DateFormat)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if parsedDate.Before(today) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	if draft.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidTime)
	}

	if parsedDate.Equal(today) && !draft.Time.IsAfter(types.NewTimeString(now)) {
		return fmt.Errorf("%w: time is in the past", ErrInvalidTime)
	}

	if draft.Guests < 0 {
		return fmt.Errorf("%w: guests must be >= 0", ErrInvalidGuests)
	}

	if draft.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be <= %d", ErrInvalidGuests, domain.MaxGuests)
	}

	if len(draft.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be <= %d characters", ErrInvalidNotes, domain.MaxNotesLength)
	}

	return nil
}
