package domain

import "github.com/kiranchintala/app-booking/pkg/types"

// TimeSlot represents one bookable interval of the business day.
// Value is the canonical "HH:MM" form used on the wire; Label is the
// locale-formatted display form (e.g. "6:30 PM").
type TimeSlot struct {
	Value types.TimeString
	Label string
}

// SlotUnavailableReason explains why a slot cannot be chosen
type SlotUnavailableReason string

const (
	// ReasonBooked - the slot is already taken for the requested date
	ReasonBooked SlotUnavailableReason = "booked"

	// ReasonPast - the requested date is today and the slot has already passed
	ReasonPast SlotUnavailableReason = "past"
)

// BookedSlotSet is the set of already-booked "HH:MM" values for one date.
// It is fetched per date and discarded when the date changes.
type BookedSlotSet map[types.TimeString]struct{}

// NewBookedSlotSet builds a set from raw "HH:MM" values.
// Unparseable values are skipped.
func NewBookedSlotSet(values []string) BookedSlotSet {
	set := make(BookedSlotSet, len(values))
	for _, v := range values {
		ts, err := types.NewTimeStringFromString(v)
		if err != nil {
			continue
		}
		set[ts] = struct{}{}
	}
	return set
}

// Has returns true if the slot value is booked
func (s BookedSlotSet) Has(value types.TimeString) bool {
	_, ok := s[value]
	return ok
}
