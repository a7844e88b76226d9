package appointmentservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/kiranchintala/app-booking/pkg/clientmetrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с appointments API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *clientmetrics.Collector
}

// NewClient создает новый экземпляр клиента appointments API
// metrics может быть nil, если сбор метрик отключен
func NewClient(baseURL string, timeout time.Duration, log Logger, metrics *clientmetrics.Collector) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// GetBookedSlots получает занятые слоты на указанную дату (YYYY-MM-DD)
func (c *Client) GetBookedSlots(ctx context.Context, date string) ([]string, error) {
	endpoint := fmt.Sprintf("%s/api/v1/appointments/slots?date=%s", c.baseURL, url.QueryEscape(date))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe("appointments", http.MethodGet, 0, time.Since(start))
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.metrics.Observe("appointments", http.MethodGet, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope bookedSlotsResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return envelope.BookedSlots, nil
}

// CreateAppointment создает appointment и возвращает серверную модель с ID
// Успехом считается строго HTTP 201; ретраев на этой стороне нет -
// повторная отправка инициируется пользователем с тем же черновиком
func (c *Client) CreateAppointment(ctx context.Context, reqBody *CreateAppointmentRequest) (*Appointment, error) {
	endpoint := fmt.Sprintf("%s/api/v1/appointments", c.baseURL)

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe("appointments", http.MethodPost, 0, time.Since(start))
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.metrics.Observe("appointments", http.MethodPost, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if appointment.ID == "" {
		return nil, fmt.Errorf("%w: created appointment has no id", ErrInvalidResponse)
	}

	return &appointment, nil
}

// GetAppointment получает appointment по ID
func (c *Client) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	endpoint := fmt.Sprintf("%s/api/v1/appointments/%s", c.baseURL, url.PathEscape(id))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe("appointments", http.MethodGet, 0, time.Since(start))
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	c.metrics.Observe("appointments", http.MethodGet, resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrAppointmentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var appointment Appointment
	if err := json.NewDecoder(resp.Body).Decode(&appointment); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &appointment, nil
}
