package catalogservice

import "context"

// Mock in-process мок каталога для non-production окружений
// Отдаёт фиксированный набор услуг без сетевых вызовов
type Mock struct {
	services []Service
}

// NewMock создает мок каталога с предзаполненными услугами
func NewMock() *Mock {
	return &Mock{
		services: []Service{
			{ID: 1, Name: "Classic Haircut", Category: "Hair", Description: "Wash, cut and style", Price: 35, DurationMinutes: 30},
			{ID: 2, Name: "Beard Trim", Category: "Hair", Description: "Shape and line-up", Price: 18, DurationMinutes: 30},
			{ID: 3, Name: "Hair Coloring", Category: "Hair", Description: "Single-process color", Price: 80, DurationMinutes: 90},
			{ID: 4, Name: "Manicure", Category: "Nails", Description: "Classic manicure with polish", Price: 28, DurationMinutes: 45},
			{ID: 5, Name: "Pedicure", Category: "Nails", Description: "Spa pedicure", Price: 40, DurationMinutes: 60},
			{ID: 6, Name: "Deep Tissue Massage", Category: "Spa", Description: "60-minute full-body massage", Price: 95, DurationMinutes: 60},
			{ID: 7, Name: "Facial Treatment", Category: "Spa", Description: "Cleansing facial", Price: 65, DurationMinutes: 45},
		},
	}
}

// ListServices возвращает копию предзаполненного каталога
func (m *Mock) ListServices(_ context.Context) ([]Service, error) {
	services := make([]Service, len(m.services))
	copy(services, m.services)
	return services, nil
}
