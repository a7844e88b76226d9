package list_services

import (
	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/integrations/catalogservice"
)

// CategoryAll специальное значение фильтра категории: без фильтрации
const CategoryAll = "All"

// Request модель запроса списка услуг
type Request struct {
	Search   string // Поисковая строка, подстрочное совпадение по имени без учета регистра
	Category string // Фильтр по категории; пусто или "All" - все категории
}

// Response модель ответа со списком услуг и известными категориями
type Response struct {
	Services   []domain.Service // Отфильтрованный список услуг
	Categories []string         // "All" + категории каталога в порядке появления
}

// fromCatalogService конвертирует модель каталога в domain модель
func fromCatalogService(s catalogservice.Service) domain.Service {
	return domain.Service{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
	}
}
