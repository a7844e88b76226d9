package appointmentservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, 2*time.Second, nopLogger{}, nil)
}

func TestGetBookedSlots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/appointments/slots", r.URL.Path)
		assert.Equal(t, "2030-05-01", r.URL.Query().Get("date"))
		w.Write([]byte(`{"bookedSlots":["10:00","14:30"]}`))
	}))
	defer srv.Close()

	slots, err := newTestClient(srv.URL).GetBookedSlots(context.Background(), "2030-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00", "14:30"}, slots)
}

func TestCreateAppointment_Created(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var body CreateAppointmentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Pending", body.Status)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Appointment{
			ID:       "apt-42",
			Status:   body.Status,
			DateTime: body.DateTime,
			Guests:   body.Guests,
		})
	}))
	defer srv.Close()

	created, err := newTestClient(srv.URL).CreateAppointment(context.Background(), &CreateAppointmentRequest{
		UserID:     "user-1",
		ServiceIDs: []int64{1, 2},
		DateTime:   "2030-05-01T10:00:00",
		Guests:     2,
		Status:     "Pending",
	})
	require.NoError(t, err)
	assert.Equal(t, "apt-42", created.ID)
}

func TestCreateAppointment_Non201IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 200 вместо ожидаемого 201 - ответ считается некорректным
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"id":"apt-42"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CreateAppointment(context.Background(), &CreateAppointmentRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetAppointment_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).GetAppointment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestMock_CreateThenRead(t *testing.T) {
	mock := NewMock()

	created, err := mock.CreateAppointment(context.Background(), &CreateAppointmentRequest{
		UserID:     "user-1",
		ServiceIDs: []int64{1},
		DateTime:   "2030-05-01T10:00:00",
		Status:     "Pending",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	fetched, err := mock.GetAppointment(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.DateTime, fetched.DateTime)

	booked, err := mock.GetBookedSlots(context.Background(), "2030-05-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, booked)

	_, err = mock.GetAppointment(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
