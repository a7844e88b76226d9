package catalogservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kiranchintala/app-booking/pkg/clientmetrics"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с каталогом услуг
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
	metrics    *clientmetrics.Collector
}

// NewClient создает новый экземпляр клиента каталога
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

// ListServices получает полный список услуг каталога
// Каталог отвечает конвертом {"content": [...]}; отсутствующее или
// некорректное поле content трактуется как пустой каталог с записью
// ошибки в лог - приложение при этом продолжает работать
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	url := fmt.Sprintf("%s/api/v1/services", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Observe("catalog", http.MethodGet, 0, time.Since(start))
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.metrics.Observe("catalog", http.MethodGet, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var envelope listServicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		// Некорректный формат - не фатально, работаем с пустым каталогом
		c.log.Error("Catalog response was not in the expected format, expected a 'content' array: %v", err)
		return []Service{}, nil
	}

	if envelope.Content == nil {
		c.log.Error("Catalog response has no 'content' array, treating catalog as empty")
		return []Service{}, nil
	}

	return envelope.Content, nil
}
