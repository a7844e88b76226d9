package domain

// AppointmentStatus represents the status of an appointment
// as reported by the appointments API
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "Pending"
	StatusConfirmed AppointmentStatus = "Confirmed"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// IsKnown reports whether the status is one of the documented
// appointments API statuses. An unknown status still renders verbatim;
// the caller only decides whether to log it.
func (s AppointmentStatus) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// AppointmentRequest is the create payload sent to the appointments API.
// DateTime is the local combination of the draft's date and time,
// "YYYY-MM-DDTHH:MM:SS" without a zone designator.
type AppointmentRequest struct {
	UserID     string
	ServiceIDs []int64
	DateTime   string
	Guests     int
	Notes      string
	Status     AppointmentStatus
}

// AppointmentService is one itemized service of a created appointment
type AppointmentService struct {
	ID    int64
	Name  string
	Price float64
}

// Appointment is the server-assigned, read-only view of a created
// appointment, fetched by ID for the confirmation screen
type Appointment struct {
	ID        string
	Status    AppointmentStatus
	DateTime  string
	Guests    int
	Services  []AppointmentService
	Notes     string
	TotalCost float64
}
