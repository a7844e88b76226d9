package domain

import (
	"time"

	"github.com/kiranchintala/app-booking/pkg/types"
)

// BookingDraft is the in-progress, unsubmitted appointment selection of one
// booking session. It lives in memory only; the lifetime is bounded by the
// session TTL and it is never persisted.
//
// Writes are last-write-wins and carry no business validation - the step
// usecases validate before advancing (select_services, submit_booking).
// Version increments on every mutation so that a superseded writer can be
// detected and rejected instead of overwriting newer state.
type BookingDraft struct {
	SessionID string
	UserID    string

	// Ordered selection, unique by Service.ID
	Services []Service

	Date   string           // "YYYY-MM-DD", empty until chosen
	Time   types.TimeString // empty until chosen
	Guests int
	Notes  string

	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSelection returns true if at least one service is selected
func (d *BookingDraft) HasSelection() bool {
	return len(d.Services) > 0
}

// RemoveService removes the service with the given ID from the selection.
// Returns false if the service was not selected (removal is idempotent).
func (d *BookingDraft) RemoveService(serviceID int64) bool {
	for i, s := range d.Services {
		if s.ID == serviceID {
			d.Services = append(d.Services[:i], d.Services[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceServices replaces the whole selection, preserving the given order
func (d *BookingDraft) ReplaceServices(services []Service) {
	d.Services = make([]Service, len(services))
	copy(d.Services, services)
}

// ServiceIDs returns the IDs of the selected services in selection order
func (d *BookingDraft) ServiceIDs() []int64 {
	ids := make([]int64, len(d.Services))
	for i, s := range d.Services {
		ids[i] = s.ID
	}
	return ids
}

// EstimatedTotal returns the sum of selected service prices plus the
// per-guest surcharge. The appointments API owns the authoritative total;
// this value is shown while the draft is being assembled.
func (d *BookingDraft) EstimatedTotal(perGuestSurcharge float64) float64 {
	total := 0.0
	for _, s := range d.Services {
		total += s.Price
	}
	if d.Guests > 0 {
		total += perGuestSurcharge * float64(d.Guests)
	}
	return total
}

// Clone returns a deep copy of the draft
func (d *BookingDraft) Clone() *BookingDraft {
	clone := *d
	clone.Services = make([]Service, len(d.Services))
	copy(clone.Services, d.Services)
	return &clone
}
