package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJSONLogger returns a debug-level JSON logger writing into a buffer.
func newJSONLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	handler := slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(handler), buf
}

// lastRecord decodes the last JSON line written to buf.
func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.NotEmpty(t, lines)
	var m map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &m))
	return m
}

func TestEnrichLogger(t *testing.T) {
	t.Run("adds event identity", func(t *testing.T) {
		logger, buf := newJSONLogger()
		enriched := EnrichLogger(logger, "order.created", "evt-1")
		require.NotNil(t, enriched)

		enriched.Info("publishing")

		rec := lastRecord(t, buf)
		assert.Equal(t, "publishing", rec["msg"])
		assert.Equal(t, "order.created", rec["event_type"])
		assert.Equal(t, "evt-1", rec["event_id"])
	})

	t.Run("nil logger returns nil", func(t *testing.T) {
		assert.Nil(t, EnrichLogger(nil, "order.created", "evt-1"))
	})
}

func TestLogHelpers(t *testing.T) {
	tests := []struct {
		name    string
		log     func(*slog.Logger)
		level   string
		msg     string
		wantKey string
		wantVal any
	}{
		{
			name:    "decoded",
			log:     func(l *slog.Logger) { LogEventDecoded(l, "page.view", "evt-1", 1.5) },
			level:   "DEBUG",
			msg:     "event decoded",
			wantKey: "duration_ms",
			wantVal: 1.5,
		},
		{
			name:    "rejected",
			log:     func(l *slog.Logger) { LogEventRejected(l, "order.created", errors.New("bad"), []string{"order_id"}) },
			level:   "WARN",
			msg:     "event rejected",
			wantKey: "error",
			wantVal: "bad",
		},
		{
			name:    "encoded",
			log:     func(l *slog.Logger) { LogEventEncoded(l, "order.paid", "evt-2", 321) },
			level:   "DEBUG",
			msg:     "event encoded",
			wantKey: "size_bytes",
			wantVal: float64(321),
		},
		{
			name:    "settings loaded",
			log:     func(l *slog.Logger) { LogSettingsLoaded(l, "file", "production") },
			level:   "INFO",
			msg:     "settings loaded",
			wantKey: "environment",
			wantVal: "production",
		},
		{
			name:    "settings reload failed",
			log:     func(l *slog.Logger) { LogSettingsReloadFailed(l, "/etc/app.yaml", errors.New("parse")) },
			level:   "WARN",
			msg:     "settings reload failed",
			wantKey: "path",
			wantVal: "/etc/app.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newJSONLogger()
			tt.log(logger)

			rec := lastRecord(t, buf)
			assert.Equal(t, tt.level, rec["level"])
			assert.Equal(t, tt.msg, rec["msg"])
			assert.Equal(t, tt.wantVal, rec[tt.wantKey])
		})

		t.Run(tt.name+" nil logger", func(t *testing.T) {
			assert.NotPanics(t, func() { tt.log(nil) })
		})
	}
}

func TestLogEventRejected_Fields(t *testing.T) {
	logger, buf := newJSONLogger()
	LogEventRejected(logger, "order.created", errors.New("bad"), []string{"order_id", "order_total"})

	rec := lastRecord(t, buf)
	assert.Equal(t, []any{"order_id", "order_total"}, rec["fields"])
}

func TestTimedOperation(t *testing.T) {
	done := TimedOperation()
	time.Sleep(5 * time.Millisecond)
	elapsed := done()
	assert.GreaterOrEqual(t, elapsed, 4.0)
}
