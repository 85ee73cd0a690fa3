package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBConnsOpen     prometheus.Gauge
	DBConnsInUse    prometheus.Gauge
	DBConnsIdle     prometheus.Gauge

	// Capacity resolver: fail-open деградации при ошибках внешних lookup'ов
	CapacityFailOpenTotal *prometheus.CounterVec
}

// CapacityFailOpen инкрементирует счётчик fail-open деградаций
// Безопасен при nil-получателе (метрики выключены)
func (m *Metrics) CapacityFailOpen(reason string) {
	if m == nil {
		return
	}
	m.CapacityFailOpenTotal.WithLabelValues(reason).Inc()
}

// New создает и регистрирует метрики сервиса в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		DBConnsOpen: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Number of open database connections",
			ConstLabels: constLabels,
		}),

		DBConnsInUse: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "Number of database connections currently in use",
			ConstLabels: constLabels,
		}),

		DBConnsIdle: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Number of idle database connections",
			ConstLabels: constLabels,
		}),

		CapacityFailOpenTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "capacity_failopen_total",
			Help:        "Capacity lookups that failed and degraded to unlimited capacity",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}
