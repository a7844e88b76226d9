package clientmetrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector метрики исходящих запросов к интеграционным сервисам
// Передаётся в интеграционных клиентов; nil-collector допустим и означает,
// что метрики отключены
type Collector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New создает и регистрирует коллектор метрик интеграций
func New(serviceName string) *Collector {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Collector{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "integration_requests_total",
				Help:        "Total number of outgoing requests to integration services",
				ConstLabels: constLabels,
			},
			[]string{"target", "method", "status"},
		),
		requestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "integration_request_duration_seconds",
				Help:        "Outgoing integration request duration in seconds",
				ConstLabels: constLabels,
				Buckets:     prometheus.DefBuckets,
			},
			[]string{"target", "method"},
		),
	}
}

// Observe записывает результат одного исходящего запроса
// status = 0 означает сетевую ошибку (ответ не получен)
func (c *Collector) Observe(target, method string, status int, duration time.Duration) {
	if c == nil {
		return
	}

	statusLabel := "error"
	if status > 0 {
		statusLabel = strconv.Itoa(status)
	}

	c.requestsTotal.WithLabelValues(target, method, statusLabel).Inc()
	c.requestDuration.WithLabelValues(target, method).Observe(duration.Seconds())
}
