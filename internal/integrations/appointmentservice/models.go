package appointmentservice

// CreateAppointmentRequest тело запроса создания appointment
type CreateAppointmentRequest struct {
	UserID     string  `json:"userId"`
	ServiceIDs []int64 `json:"serviceIds"`
	DateTime   string  `json:"dateTime"` // "YYYY-MM-DDTHH:MM:SS", локальное время
	Guests     int     `json:"guests"`
	Notes      string  `json:"notes,omitempty"`
	Status     string  `json:"status"`
}

// AppointmentService услуга в составе appointment
type AppointmentService struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Appointment модель appointment из appointments API
type Appointment struct {
	ID        string               `json:"id"`
	Status    string               `json:"status"`
	DateTime  string               `json:"dateTime"`
	Guests    int                  `json:"guests"`
	Services  []AppointmentService `json:"services,omitempty"`
	Notes     string               `json:"notes,omitempty"`
	TotalCost float64              `json:"totalCost"`
}

// bookedSlotsResponse конверт ответа занятых слотов на дату
type bookedSlotsResponse struct {
	BookedSlots []string `json:"bookedSlots"`
}

// ErrorResponse модель ошибки от appointments API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
