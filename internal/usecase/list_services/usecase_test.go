package list_services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchintala/app-booking/internal/integrations/catalogservice"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCatalog struct {
	services []catalogservice.Service
	err      error
}

func (f *fakeCatalog) ListServices(context.Context) ([]catalogservice.Service, error) {
	return f.services, f.err
}

var testCatalog = []catalogservice.Service{
	{ID: 1, Name: "Classic Haircut", Category: "Hair", Price: 35},
	{ID: 2, Name: "Hair Coloring", Category: "Hair", Price: 80},
	{ID: 3, Name: "Manicure", Category: "Nails", Price: 28},
	{ID: 4, Name: "Deep Tissue Massage", Category: "Spa", Price: 95},
}

func TestExecute_CategoryAllReturnsEverything(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{services: testCatalog}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Category: CategoryAll})
	require.NoError(t, err)
	assert.Len(t, resp.Services, len(testCatalog))

	// Пустая категория эквивалентна "All"
	resp2, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, resp.Services, resp2.Services)
}

func TestExecute_CategoryFilter(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{services: testCatalog}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Category: "Hair"})
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	for _, s := range resp.Services {
		assert.Equal(t, "Hair", s.Category)
	}
}

func TestExecute_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{services: testCatalog}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Search: "hAiR"})
	require.NoError(t, err)
	require.Len(t, resp.Services, 2)
	assert.Equal(t, int64(1), resp.Services[0].ID)
	assert.Equal(t, int64(2), resp.Services[1].ID)

	resp, err = uc.Execute(context.Background(), &Request{Search: "massage"})
	require.NoError(t, err)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, int64(4), resp.Services[0].ID)
}

func TestExecute_SearchAndCategoryCombined(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{services: testCatalog}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Search: "hair", Category: "Nails"})
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
}

func TestExecute_CategoriesCollectedFromWholeCatalog(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{services: testCatalog}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Category: "Spa"})
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Hair", "Nails", "Spa"}, resp.Categories)
}

func TestExecute_CatalogUnavailable(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{err: errors.New("connection refused")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}

func TestExecute_EmptyCatalog(t *testing.T) {
	uc := NewUseCase(&fakeCatalog{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Search: "anything"})
	require.NoError(t, err)
	assert.Empty(t, resp.Services)
	assert.Equal(t, []string{"All"}, resp.Categories)
}
