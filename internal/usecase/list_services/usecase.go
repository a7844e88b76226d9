package list_services

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiranchintala/app-booking/internal/domain"
)

// UseCase use case получения каталога услуг с фильтрацией
type UseCase struct {
	catalogClient CatalogClient
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(catalogClient CatalogClient, logger Logger) *UseCase {
	return &UseCase{
		catalogClient: catalogClient,
		logger:        logger,
	}
}

// Execute выполняет use case получения списка услуг
// Фильтр категории "All" (или пустой) возвращает нефильтрованный список;
// поиск - подстрочное совпадение по имени без учета регистра
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ListServices: search=%q, category=%q", req.Search, req.Category)

	catalogServices, err := uc.catalogClient.ListServices(ctx)
	if err != nil {
		uc.logger.Error("ListServices: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
	}

	services := make([]domain.Service, 0, len(catalogServices))
	categories := []string{CategoryAll}
	seen := make(map[string]struct{})

	searchLower := strings.ToLower(req.Search)

	for _, cs := range catalogServices {
		s := fromCatalogService(cs)

		// Категории собираются по всему каталогу, не по отфильтрованной части
		if s.Category != "" {
			if _, ok := seen[s.Category]; !ok {
				seen[s.Category] = struct{}{}
				categories = append(categories, s.Category)
			}
		}

		if !matchesCategory(s, req.Category) {
			continue
		}
		if !strings.Contains(strings.ToLower(s.Name), searchLower) {
			continue
		}

		services = append(services, s)
	}

	uc.logger.Info("ListServices: %d of %d services matched", len(services), len(catalogServices))

	return &Response{
		Services:   services,
		Categories: categories,
	}, nil
}

func matchesCategory(s domain.Service, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return s.Category == category
}
