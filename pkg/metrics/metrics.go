package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	BackendRequestsTotal   *prometheus.CounterVec
	BackendRequestDuration *prometheus.HistogramVec

	StaleResponsesTotal prometheus.Counter
	ActiveDrafts        prometheus.Gauge
}

// New создает и регистрирует метрики в собственном реестре
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		BackendRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "backend_requests_total",
			Help:        "Total number of calls to the karting backend",
			ConstLabels: labels,
		}, []string{"operation", "outcome"}),
		BackendRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "backend_request_duration_seconds",
			Help:        "Karting backend call latency",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),
		StaleResponsesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "reservation_stale_responses_total",
			Help:        "Reserved-times responses discarded because the selected date changed",
			ConstLabels: labels,
		}),
		ActiveDrafts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "reservation_active_drafts",
			Help:        "Number of reservation drafts currently held in memory",
			ConstLabels: labels,
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.BackendRequestsTotal,
		m.BackendRequestDuration,
		m.StaleResponsesTotal,
		m.ActiveDrafts,
	)

	return m
}

// Handler возвращает http.Handler для эндпоинта /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveBackendCall фиксирует результат вызова бэкенда.
// Безопасен для nil-получателя (метрики выключены).
func (m *Metrics) ObserveBackendCall(operation, outcome string, started time.Time) {
	if m == nil {
		return
	}
	m.BackendRequestsTotal.WithLabelValues(operation, outcome).Inc()
	m.BackendRequestDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

// IncStaleResponses увеличивает счетчик отброшенных устаревших ответов
func (m *Metrics) IncStaleResponses() {
	if m == nil {
		return
	}
	m.StaleResponsesTotal.Inc()
}

// SetActiveDrafts выставляет количество черновиков в памяти
func (m *Metrics) SetActiveDrafts(n int) {
	if m == nil {
		return
	}
	m.ActiveDrafts.Set(float64(n))
}
