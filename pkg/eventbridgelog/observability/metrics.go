package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records codec and settings metrics.
// Use NewMetricsRecorder() for OTel metrics, NewPrometheusMetrics for
// Prometheus, or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordDecode records one decode attempt. A non-nil err counts as a rejection.
	RecordDecode(ctx context.Context, eventType string, duration time.Duration, err error)

	// RecordEncode records the size of one serialized event.
	RecordEncode(ctx context.Context, eventType string, sizeBytes int)

	// RecordSettingsLoad records a settings build from source ("env", "file", "overrides").
	RecordSettingsLoad(ctx context.Context, source string, err error)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	decoded       metric.Int64Counter
	rejected      metric.Int64Counter
	decodeLatency metric.Float64Histogram
	encodedSize   metric.Int64Histogram
	settingsLoads metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics(otel.Meter("eventbridgelog"))
	})
	return defaultMetrics, defaultMetricsErr
}

func newOtelMetrics(meter metric.Meter) (*otelMetrics, error) {
	decoded, err := meter.Int64Counter("eventbridgelog.event.decoded",
		metric.WithDescription("Number of payloads decoded into valid events"),
	)
	if err != nil {
		return nil, err
	}

	rejected, err := meter.Int64Counter("eventbridgelog.event.rejected",
		metric.WithDescription("Number of payloads rejected by validation"),
	)
	if err != nil {
		return nil, err
	}

	decodeLatency, err := meter.Float64Histogram("eventbridgelog.event.decode.latency_ms",
		metric.WithDescription("Event decode latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	encodedSize, err := meter.Int64Histogram("eventbridgelog.event.encoded.size_bytes",
		metric.WithDescription("Serialized event size in bytes"),
		metric.WithUnit("By"),
	)
	if err != nil {
		return nil, err
	}

	settingsLoads, err := meter.Int64Counter("eventbridgelog.settings.loads",
		metric.WithDescription("Number of settings builds"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		decoded:       decoded,
		rejected:      rejected,
		decodeLatency: decodeLatency,
		encodedSize:   encodedSize,
		settingsLoads: settingsLoads,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// NewMetricsRecorderFromProvider returns an OTel MetricsRecorder bound to
// provider instead of the global one.
func NewMetricsRecorderFromProvider(provider metric.MeterProvider) (MetricsRecorder, error) {
	m, err := newOtelMetrics(provider.Meter("eventbridgelog"))
	if err != nil {
		return nil, err
	}
	return m, nil
}

// RecordDecode records a decode attempt.
func (m *otelMetrics) RecordDecode(ctx context.Context, eventType string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("event_type", eventType))

	if err != nil {
		m.rejected.Add(ctx, 1, attrs)
	} else {
		m.decoded.Add(ctx, 1, attrs)
	}
	m.decodeLatency.Record(ctx, float64(duration.Microseconds())/1000, attrs)
}

// RecordEncode records a serialized event size.
func (m *otelMetrics) RecordEncode(ctx context.Context, eventType string, sizeBytes int) {
	m.encodedSize.Record(ctx, int64(sizeBytes),
		metric.WithAttributes(attribute.String("event_type", eventType)))
}

// RecordSettingsLoad records a settings build.
func (m *otelMetrics) RecordSettingsLoad(ctx context.Context, source string, err error) {
	m.settingsLoads.Add(ctx, 1, metric.WithAttributes(
		attribute.String("source", source),
		attribute.Bool("success", err == nil),
	))
}
