package select_services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchintala/app-booking/internal/infra/session"
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
	{ID: 2, Name: "Manicure", Category: "Nails", Price: 28},
	{ID: 3, Name: "Deep Tissue Massage", Category: "Spa", Price: 95},
}

func setup(t *testing.T) (*UseCase, *session.Store, string) {
	t.Helper()

	store := session.NewStore(time.Minute, time.Minute)
	t.Cleanup(store.Close)

	uc := NewUseCase(&fakeCatalog{services: testCatalog}, store, nopLogger{})
	draft := store.Create("user-1")
	return uc, store, draft.SessionID
}

func TestExecute_WritesSelectionToDraft(t *testing.T) {
	uc, store, sessionID := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:  sessionID,
		UserID:     "user-1",
		ServiceIDs: []int64{3, 1},
	})
	require.NoError(t, err)

	// Порядок выбора сохраняется, услуги разрешены против каталога
	require.Len(t, resp.Draft.Services, 2)
	assert.Equal(t, int64(3), resp.Draft.Services[0].ID)
	assert.Equal(t, "Deep Tissue Massage", resp.Draft.Services[0].Name)
	assert.Equal(t, int64(1), resp.Draft.Services[1].ID)

	stored, err := store.Get(sessionID)
	require.NoError(t, err)
	assert.Len(t, stored.Services, 2)
}

func TestExecute_EmptySelectionRejected(t *testing.T) {
	uc, _, sessionID := setup(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
	})
	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_UnknownServiceRejected(t *testing.T) {
	uc, store, sessionID := setup(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:  sessionID,
		UserID:     "user-1",
		ServiceIDs: []int64{1, 999},
	})
	assert.ErrorIs(t, err, ErrUnknownService)

	// Черновик не тронут
	stored, err := store.Get(sessionID)
	require.NoError(t, err)
	assert.Empty(t, stored.Services)
}

func TestExecute_DuplicateIDsCollapsed(t *testing.T) {
	uc, _, sessionID := setup(t)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID:  sessionID,
		UserID:     "user-1",
		ServiceIDs: []int64{1, 1, 2},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Draft.Services, 2)
}

func TestExecute_ReplacesPreviousSelection(t *testing.T) {
	uc, _, sessionID := setup(t)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{SessionID: sessionID, UserID: "user-1", ServiceIDs: []int64{1, 2}})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{SessionID: sessionID, UserID: "user-1", ServiceIDs: []int64{3}})
	require.NoError(t, err)
	require.Len(t, resp.Draft.Services, 1)
	assert.Equal(t, int64(3), resp.Draft.Services[0].ID)
}

func TestExecute_SessionErrors(t *testing.T) {
	uc, _, sessionID := setup(t)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID:  "missing",
		UserID:     "user-1",
		ServiceIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = uc.Execute(context.Background(), &Request{
		SessionID:  sessionID,
		UserID:     "intruder",
		ServiceIDs: []int64{1},
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}
