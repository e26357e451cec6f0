package relay

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector defines the interface for collecting outbox metrics
type MetricsCollector interface {
	RecordEventProcessed(eventType string, success bool, duration time.Duration)
	RecordBatchProcessed(count int, duration time.Duration)
	RecordOutboxLag(lag int)
	RecordPublishAttempt(eventType string, attempt int, success bool)
}

// NoOpMetricsCollector is a no-op implementation for when metrics aren't needed
type NoOpMetricsCollector struct{}

func (n *NoOpMetricsCollector) RecordEventProcessed(eventType string, success bool, duration time.Duration) {
}
func (n *NoOpMetricsCollector) RecordBatchProcessed(count int, duration time.Duration)           {}
func (n *NoOpMetricsCollector) RecordOutboxLag(lag int)                                          {}
func (n *NoOpMetricsCollector) RecordPublishAttempt(eventType string, attempt int, success bool) {}

// PrometheusMetrics implements MetricsCollector with client_golang collectors
type PrometheusMetrics struct {
	events          *prometheus.CounterVec
	eventDuration   *prometheus.HistogramVec
	batchSize       prometheus.Histogram
	batchDuration   prometheus.Histogram
	outboxLag       prometheus.Gauge
	publishAttempts *prometheus.CounterVec
}

// NewPrometheusMetrics registers the relay collectors with reg.
func NewPrometheusMetrics(reg prometheus.Registerer) *PrometheusMetrics {
	m := &PrometheusMetrics{
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "events_processed_total",
			Help:      "Outbox events handed to the broker by type and outcome.",
		}, []string{"event_type", "status"}),
		eventDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "event_publish_duration_seconds",
			Help:      "Time spent publishing one event, retries included.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"event_type"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "batch_size",
			Help:      "Events delivered per sweep.",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250},
		}),
		batchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "batch_duration_seconds",
			Help:      "Duration of a sweep.",
			Buckets:   prometheus.DefBuckets,
		}),
		outboxLag: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "pending_events",
			Help:      "Unsent events seen by the last sweep.",
		}),
		publishAttempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tipster",
			Subsystem: "outbox",
			Name:      "publish_attempts_total",
			Help:      "Publish attempts by type, attempt number and outcome.",
		}, []string{"event_type", "attempt", "status"}),
	}
	reg.MustRegister(m.events, m.eventDuration, m.batchSize, m.batchDuration, m.outboxLag, m.publishAttempts)
	return m
}

func (m *PrometheusMetrics) RecordEventProcessed(eventType string, success bool, duration time.Duration) {
	m.events.WithLabelValues(eventType, status(success)).Inc()
	m.eventDuration.WithLabelValues(eventType).Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordBatchProcessed(count int, duration time.Duration) {
	m.batchSize.Observe(float64(count))
	m.batchDuration.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) RecordOutboxLag(lag int) {
	m.outboxLag.Set(float64(lag))
}

func (m *PrometheusMetrics) RecordPublishAttempt(eventType string, attempt int, success bool) {
	m.publishAttempts.WithLabelValues(eventType, strconv.Itoa(attempt), status(success)).Inc()
}

func status(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
