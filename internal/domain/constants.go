package domain

// Default booking window values
const (
	DefaultOpenTime            = "06:00"
	DefaultCloseTime           = "21:00"
	DefaultSlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxNotesLength = 500
	MaxGuests      = 50
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DateTimeFormat формат локальной даты-времени в AppointmentRequest
	DateTimeFormat = "2006-01-02T15:04:05"
)
