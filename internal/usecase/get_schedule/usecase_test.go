package get_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	"github.com/kiranchintala/app-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSlotsClient struct {
	booked []string
	err    error
	calls  int
}

func (f *fakeSlotsClient) GetBookedSlots(_ context.Context, _ string) ([]string, error) {
	f.calls++
	return f.booked, f.err
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func setup(t *testing.T, client *fakeSlotsClient, now time.Time) (*UseCase, string) {
	t.Helper()

	store := session.NewStore(time.Minute, time.Minute)
	t.Cleanup(store.Close)

	draft := store.Create("user-1")
	_, err := store.Update(draft.SessionID, nil, func(d *domain.BookingDraft) error {
		d.Services = []domain.Service{{ID: 1, Name: "Classic Haircut", Price: 35}}
		return nil
	})
	require.NoError(t, err)

	uc := NewUseCase(client, store, mustTime(t, "06:00"), mustTime(t, "21:00"), 30, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc, draft.SessionID
}

func TestExecute_FullDayOfSlots(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc, sessionID := setup(t, &fakeSlotsClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "2026-09-05",
	})
	require.NoError(t, err)

	// 06:00-21:00 с шагом 30 минут = 30 слотов, все доступны на будущую дату
	require.Len(t, resp.Slots, 30)
	assert.Equal(t, "06:00", resp.Slots[0].Value)
	assert.Equal(t, "20:30", resp.Slots[29].Value)
	assert.False(t, resp.Degraded)

	for _, slot := range resp.Slots {
		assert.True(t, slot.Available, "slot %s", slot.Value)
		assert.Empty(t, slot.Reason)
	}
}

func TestExecute_BookedSlotsMarked(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	client := &fakeSlotsClient{booked: []string{"10:00", "14:30"}}
	uc, sessionID := setup(t, client, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "2026-09-05",
	})
	require.NoError(t, err)

	byValue := make(map[string]SlotStatus)
	for _, slot := range resp.Slots {
		byValue[slot.Value] = slot
	}

	assert.False(t, byValue["10:00"].Available)
	assert.Equal(t, domain.ReasonBooked, byValue["10:00"].Reason)
	assert.False(t, byValue["14:30"].Available)
	assert.True(t, byValue["10:30"].Available)
}

func TestExecute_TodayPastSlotsDisabled(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 15, 0, 0, time.Local)
	uc, sessionID := setup(t, &fakeSlotsClient{}, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "2026-09-01",
	})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		switch slot.Value {
		case "10:00":
			// Слот 10:00 при текущем времени 10:15 уже прошел
			assert.False(t, slot.Available)
			assert.Equal(t, domain.ReasonPast, slot.Reason)
		case "10:30":
			assert.True(t, slot.Available)
		case "06:00":
			assert.False(t, slot.Available)
			assert.Equal(t, domain.ReasonPast, slot.Reason)
		}
	}
}

func TestExecute_PastDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	client := &fakeSlotsClient{}
	uc, sessionID := setup(t, client, now)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "2026-08-31",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, client.calls)
}

func TestExecute_MalformedDateRejected(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc, sessionID := setup(t, &fakeSlotsClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "05.09.2026",
	})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_DegradesWhenSlotsFetchFails(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	client := &fakeSlotsClient{err: errors.New("connection refused")}
	uc, sessionID := setup(t, client, now)

	resp, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-1",
		Date:      "2026-09-05",
	})
	require.NoError(t, err)

	// Сбой appointments API не блокирует шаг: слоты отданы без занятости
	assert.True(t, resp.Degraded)
	require.Len(t, resp.Slots, 30)
	for _, slot := range resp.Slots {
		assert.True(t, slot.Available)
	}
}

func TestExecute_EmptySelectionRedirects(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	store := session.NewStore(time.Minute, time.Minute)
	t.Cleanup(store.Close)
	draft := store.Create("user-1")

	uc := NewUseCase(&fakeSlotsClient{}, store, mustTime(t, "06:00"), mustTime(t, "21:00"), 30, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: draft.SessionID,
		UserID:    "user-1",
		Date:      "2026-09-05",
	})
	assert.ErrorIs(t, err, ErrNoServicesSelected)
}

func TestExecute_AccessDenied(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc, sessionID := setup(t, &fakeSlotsClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: sessionID,
		UserID:    "user-2",
		Date:      "2026-09-05",
	})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_SessionNotFound(t *testing.T) {
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)
	uc, _ := setup(t, &fakeSlotsClient{}, now)

	_, err := uc.Execute(context.Background(), &Request{
		SessionID: "unknown",
		UserID:    "user-1",
		Date:      "2026-09-05",
	})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
