package catalogservice

// Service модель услуги из каталога
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category,omitempty"`
	Description     string  `json:"description,omitempty"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationInMinutes,omitempty"`
}

// listServicesResponse конверт ответа каталога
// Каталог отдаёт список услуг в поле "content"
type listServicesResponse struct {
	Content []Service `json:"content"`
}

// ErrorResponse модель ошибки от каталога
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
