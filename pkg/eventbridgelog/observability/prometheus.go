package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Default histogram buckets for decode latency (in seconds).
var decodeBuckets = []float64{
	.00005, .0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1,
}

// Buckets for serialized event sizes (in bytes).
var sizeBuckets = prometheus.ExponentialBuckets(128, 2, 10)

// PrometheusMetrics implements MetricsRecorder using Prometheus collectors.
type PrometheusMetrics struct {
	decoded        *prometheus.CounterVec
	decodeDuration *prometheus.HistogramVec
	encodedBytes   *prometheus.HistogramVec
	settingsLoads  *prometheus.CounterVec
}

// Compile-time interface check.
var _ MetricsRecorder = (*PrometheusMetrics)(nil)

// NewPrometheusMetrics creates the collectors and registers them on reg.
// Registering twice on the same registerer returns the registration error,
// and a failed call leaves nothing registered.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		decoded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventbridgelog_events_decoded_total",
			Help: "Total number of decode attempts by event type and outcome",
		}, []string{"event_type", "status"}),

		decodeDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventbridgelog_event_decode_duration_seconds",
			Help:    "Event decode latency in seconds",
			Buckets: decodeBuckets,
		}, []string{"event_type"}),

		encodedBytes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "eventbridgelog_event_encoded_bytes",
			Help:    "Serialized event size in bytes",
			Buckets: sizeBuckets,
		}, []string{"event_type"}),

		settingsLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "eventbridgelog_settings_loads_total",
			Help: "Total number of settings builds by source and outcome",
		}, []string{"source", "status"}),
	}

	collectors := []prometheus.Collector{m.decoded, m.decodeDuration, m.encodedBytes, m.settingsLoads}
	for i, c := range collectors {
		if err := reg.Register(c); err != nil {
			for _, registered := range collectors[:i] {
				reg.Unregister(registered)
			}
			return nil, err
		}
	}
	return m, nil
}

// RecordDecode records a decode attempt.
func (m *PrometheusMetrics) RecordDecode(_ context.Context, eventType string, duration time.Duration, err error) {
	m.decoded.WithLabelValues(eventType, status(err)).Inc()
	m.decodeDuration.WithLabelValues(eventType).Observe(duration.Seconds())
}

// RecordEncode records a serialized event size.
func (m *PrometheusMetrics) RecordEncode(_ context.Context, eventType string, sizeBytes int) {
	m.encodedBytes.WithLabelValues(eventType).Observe(float64(sizeBytes))
}

// RecordSettingsLoad records a settings build.
func (m *PrometheusMetrics) RecordSettingsLoad(_ context.Context, source string, err error) {
	m.settingsLoads.WithLabelValues(source, status(err)).Inc()
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
