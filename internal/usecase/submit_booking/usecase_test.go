package submit_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiranchintala/app-booking/internal/domain"
	"github.com/kiranchintala/app-booking/internal/infra/session"
	"github.com/kiranchintala/app-booking/internal/integrations/appointmentservice"
	"github.com/kiranchintala/app-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeClient struct {
	booked      []string
	bookedErr   error
	created     *appointmentservice.Appointment
	createErr   error
	createCalls int
	lastRequest *appointmentservice.CreateAppointmentRequest
}

func (f *fakeClient) GetBookedSlots(_ context.Context, _ string) ([]string, error) {
	return f.booked, f.bookedErr
}

func (f *fakeClient) CreateAppointment(_ context.Context, req *appointmentservice.CreateAppointmentRequest) (*appointmentservice.Appointment, error) {
	f.createCalls++
	f.lastRequest = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

var testNow = time.Date(2026, 9, 1, 8, 0, 0, 0, time.Local)

func mustTime(t *testing.T, value string) types.TimeString {
	t.Helper()
	ts, err := types.NewTimeStringFromString(value)
	require.NoError(t, err)
	return ts
}

func newStore(t *testing.T) *session.Store {
	t.Helper()
	store := session.NewStore(time.Minute, time.Minute)
	t.Cleanup(store.Close)
	return store
}

func seedDraft(t *testing.T, store *session.Store, mutate func(*domain.BookingDraft)) string {
	t.Helper()
	draft := store.Create("user-1")
	_, err := store.Update(draft.SessionID, nil, func(d *domain.BookingDraft) error {
		d.Services = []domain.Service{
			{ID: 1, Name: "Classic Haircut", Price: 35},
			{ID: 3, Name: "Deep Tissue Massage", Price: 95},
		}
		d.Date = "2026-09-05"
		d.Time = mustTime(t, "10:00")
		d.Guests = 2
		if mutate != nil {
			mutate(d)
		}
		return nil
	})
	require.NoError(t, err)
	return draft.SessionID
}

func newUseCase(client *fakeClient, store *session.Store) *UseCase {
	uc := NewUseCase(client, store, nopLogger{})
	uc.timeProvider = &fixedTime{now: testNow}
	return uc
}

func TestExecute_CreatesAppointment(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	client := &fakeClient{
		created: &appointmentservice.Appointment{
			ID:        "apt-42",
			Status:    "Pending",
			DateTime:  "2026-09-05T10:00:00",
			TotalCost: 130,
		},
	}
	uc := newUseCase(client, store)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	require.NoError(t, err)

	assert.Equal(t, "apt-42", resp.AppointmentID)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, float64(130), resp.TotalCost)

	// Заявка собрана из черновика: локальный dateTime, статус Pending
	require.Equal(t, 1, client.createCalls)
	require.NotNil(t, client.lastRequest)
	assert.Equal(t, "user-1", client.lastRequest.UserID)
	assert.Equal(t, []int64{1, 3}, client.lastRequest.ServiceIDs)
	assert.Equal(t, "2026-09-05T10:00:00", client.lastRequest.DateTime)
	assert.Equal(t, 2, client.lastRequest.Guests)
	assert.Equal(t, "Pending", client.lastRequest.Status)
}

func TestExecute_EmptySelectionRejectedWithoutNetworkCall(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Services = nil
	})
	client := &fakeClient{}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrNoServicesSelected)
	assert.Zero(t, client.createCalls)
}

func TestExecute_MissingDateRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Date = ""
	})
	client := &fakeClient{}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidDate)
	assert.Zero(t, client.createCalls)
}

func TestExecute_PastDateRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Date = "2026-08-31"
	})
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_MissingTimeRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Time = ""
	})
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestExecute_PastTimeTodayRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Date = "2026-09-01"
		d.Time = mustTime(t, "07:30")
	})
	uc := newUseCase(&fakeClient{}, store)

	// Текущее время 08:00, слот 07:30 сегодня уже прошел
	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestExecute_BookedSlotRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	client := &fakeClient{booked: []string{"10:00"}}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Zero(t, client.createCalls)

	// Черновик не тронут, отправку можно повторить
	draft, err := store.Get(sessionID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-05", draft.Date)
	assert.Len(t, draft.Services, 2)
}

func TestExecute_SlotsFetchFailureDoesNotBlockSubmit(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	client := &fakeClient{
		bookedErr: errors.New("connection refused"),
		created:   &appointmentservice.Appointment{ID: "apt-1", Status: "Pending"},
	}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, 1, client.createCalls)
}

func TestExecute_NegativeGuestsRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Guests = -1
	})
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidGuests)
}

func TestExecute_NotesTooLongRejected(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, func(d *domain.BookingDraft) {
		d.Notes = string(make([]byte, domain.MaxNotesLength+1))
	})
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInvalidNotes)
}

func TestExecute_CreateFailureIsRetryable(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	client := &fakeClient{createErr: appointmentservice.ErrInternal}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrInternal)

	// Черновик сохранен, повторная отправка после восстановления API возможна
	draft, storeErr := store.Get(sessionID)
	require.NoError(t, storeErr)
	assert.Equal(t, "10:00", draft.Time.String())

	client.createErr = nil
	client.created = &appointmentservice.Appointment{ID: "apt-2", Status: "Pending"}
	resp, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	require.NoError(t, err)
	assert.Equal(t, "apt-2", resp.AppointmentID)
}

func TestExecute_RejectedByAppointmentsAPI(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	client := &fakeClient{createErr: appointmentservice.ErrRejected}
	uc := newUseCase(client, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-1"})
	assert.ErrorIs(t, err, ErrRejected)
}

func TestExecute_AccessDenied(t *testing.T) {
	store := newStore(t)
	sessionID := seedDraft(t, store, nil)
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: sessionID, UserID: "user-2"})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_SessionNotFound(t *testing.T) {
	store := newStore(t)
	uc := newUseCase(&fakeClient{}, store)

	_, err := uc.Execute(context.Background(), &Request{SessionID: "unknown", UserID: "user-1"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
