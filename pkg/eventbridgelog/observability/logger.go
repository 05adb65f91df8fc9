// Package observability provides logging, metrics and tracing hooks for
// the event codec and the settings loaders.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry or Prometheus
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
// Event constructors never call into this package; only the codec and
// settings loaders do.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds event identity to a logger.
//
// Example:
//
//	enriched := EnrichLogger(logger, "order.created", "4b1f...")
//	enriched.Info("publishing") // includes event_type and event_id
func EnrichLogger(logger *slog.Logger, eventType, eventID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("event_type", eventType),
		slog.String("event_id", eventID),
	)
}

// LogEventDecoded logs a payload that decoded into a valid event.
func LogEventDecoded(logger *slog.Logger, eventType, eventID string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("event decoded",
		slog.String("event_type", eventType),
		slog.String("event_id", eventID),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEventRejected logs a payload that failed validation.
func LogEventRejected(logger *slog.Logger, eventType string, err error, fields []string) {
	if logger == nil {
		return
	}
	logger.Warn("event rejected",
		slog.String("event_type", eventType),
		slog.String("error", err.Error()),
		slog.Any("fields", fields),
	)
}

// LogEventEncoded logs a serialized event.
func LogEventEncoded(logger *slog.Logger, eventType, eventID string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("event encoded",
		slog.String("event_type", eventType),
		slog.String("event_id", eventID),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogSettingsLoaded logs a successful settings load.
func LogSettingsLoaded(logger *slog.Logger, source, environment string) {
	if logger == nil {
		return
	}
	logger.Info("settings loaded",
		slog.String("source", source),
		slog.String("environment", environment),
	)
}

// LogSettingsReloadFailed logs a rejected settings reload (non-fatal; the
// previous snapshot stays active).
func LogSettingsReloadFailed(logger *slog.Logger, path string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("settings reload failed",
		slog.String("path", path),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
