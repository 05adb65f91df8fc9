package event_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/event"
	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/observability"
)

func TestRoundTrip_AllExamples(t *testing.T) {
	event.DefaultRegistry.Range(func(s *event.Schema) bool {
		t.Run(string(s.Type), func(t *testing.T) {
			original, err := s.BuildExample()
			require.NoError(t, err)
			assert.Equal(t, s.Type, original.Type())

			t.Run("json", func(t *testing.T) {
				data, err := event.ToJSON(original)
				require.NoError(t, err)

				back, err := event.FromJSON(data)
				require.NoError(t, err)
				assert.IsType(t, original, back)
				requireSameEvent(t, original, back)
			})

			t.Run("map", func(t *testing.T) {
				m, err := event.ToMap(original)
				require.NoError(t, err)
				assert.Equal(t, string(s.Type), m["event_type"])

				back, err := event.FromMap(m)
				require.NoError(t, err)
				requireSameEvent(t, original, back)
			})
		})
		return true
	})
}

func TestToJSON_CanonicalForm(t *testing.T) {
	evt, err := event.NewOrderCreatedEvent(example(t, event.OrderCreated).With(event.Fields{
		"timestamp":   "2024-01-15T10:00:00.123456789+00:00",
		"order_total": 299.98,
	}))
	require.NoError(t, err)

	data, err := event.ToJSON(evt)
	require.NoError(t, err)
	s := string(data)

	assert.True(t, strings.HasPrefix(s, `{"event_id":"`+evt.EventID.String()+`","event_type":"order.created"`), s)
	assert.Contains(t, s, `"timestamp":"2024-01-15T10:00:00.123456Z"`)
	assert.Contains(t, s, `"order_total":"299.98"`)
	assert.Contains(t, s, `"tax_amount":"24"`)
	assert.Contains(t, s, `"environment":"development"`)
	assert.NotContains(t, s, "discount_amount")
	assert.NotContains(t, s, "correlation_id")
	assert.NotContains(t, s, "metadata")
	assert.Equal(t, strings.ToLower(evt.EventID.String()), evt.EventID.String())

	t.Run("required empty list is kept", func(t *testing.T) {
		evt, err := event.NewUserSessionEvent(without(example(t, event.UserSession), "conversion_events"))
		require.NoError(t, err)
		data, err := event.ToJSON(evt)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"conversion_events":[]`)
	})

	t.Run("nil event", func(t *testing.T) {
		_, err := event.ToJSON(nil)
		assert.Error(t, err)
	})
}

func TestToMap_Values(t *testing.T) {
	evt, err := event.NewPaymentProcessedEvent(example(t, event.PaymentProcessed))
	require.NoError(t, err)

	m, err := event.ToMap(evt)
	require.NoError(t, err)

	assert.Equal(t, "299.98", m["payment_amount"])
	assert.Equal(t, json.Number("120"), m["processing_time_ms"])
	assert.Equal(t, evt.EventID.String(), m["event_id"])
	_, hasCorrelation := m["correlation_id"]
	assert.False(t, hasCorrelation)
}

func TestFromJSON_Errors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantFields  []string
		wantUnknown bool
	}{
		{
			name:       "missing event_type",
			input:      `{"source":"test"}`,
			wantFields: []string{"event_type"},
		},
		{
			name:       "event_type not a string",
			input:      `{"event_type":5,"source":"test"}`,
			wantFields: []string{"event_type"},
		},
		{
			name:        "unknown event_type",
			input:       `{"event_type":"user.teleported","source":"test"}`,
			wantFields:  []string{"event_type"},
			wantUnknown: true,
		},
		{
			name:       "variant validation",
			input:      `{"event_type":"page.view","source":"test"}`,
			wantFields: []string{"content_type", "page_category", "page_sequence", "page_title", "page_url", "session_id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := event.FromJSON([]byte(tt.input))
			valErr := requireValidationError(t, err)
			assert.Equal(t, tt.wantFields, valErr.FieldNames())
			if tt.wantUnknown {
				assert.ErrorIs(t, err, event.ErrUnknownEventType)
			}
		})
	}

	t.Run("decimal exponent out of range", func(t *testing.T) {
		for _, total := range []any{"1e400000000", json.Number("1e400000000"), json.Number("-1e-400000000")} {
			data, err := json.Marshal(example(t, event.OrderCreated).With(event.Fields{
				"event_type":  "order.created",
				"order_total": total,
			}))
			require.NoError(t, err)

			_, err = event.FromJSON(data)
			valErr := requireValidationError(t, err)
			assert.Equal(t, []string{"order_total"}, valErr.FieldNames(), "%v", total)
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		for _, input := range []string{`{"event_type":`, `null`, `[1,2]`, `"page.view"`} {
			_, err := event.FromJSON([]byte(input))
			assert.Error(t, err, input)
		}
	})
}

func TestFromMap_IgnoresUnknownKeys(t *testing.T) {
	f := example(t, event.CartItemAdded).With(event.Fields{
		"event_type":   "cart.item_added",
		"promo_banner": "summer",
	})
	evt, err := event.FromMap(f)
	require.NoError(t, err)
	require.IsType(t, &event.CartItemAddedEvent{}, evt)

	data, err := event.ToJSON(evt)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "promo_banner")
}

// recordingMetrics captures codec metric calls.
type recordingMetrics struct {
	mu       sync.Mutex
	decoded  []string
	rejected []string
	encoded  map[string]int
}

func (m *recordingMetrics) RecordDecode(_ context.Context, eventType string, _ time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err != nil {
		m.rejected = append(m.rejected, eventType)
		return
	}
	m.decoded = append(m.decoded, eventType)
}

func (m *recordingMetrics) RecordEncode(_ context.Context, eventType string, sizeBytes int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.encoded == nil {
		m.encoded = make(map[string]int)
	}
	m.encoded[eventType] = sizeBytes
}

func (m *recordingMetrics) RecordSettingsLoad(context.Context, string, error) {}

var _ observability.MetricsRecorder = (*recordingMetrics)(nil)

func newTestCodec(t *testing.T, opts ...event.CodecOption) (*event.Codec, *recordingMetrics, *tracetest.InMemoryExporter, *bytes.Buffer) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() {
		_ = tp.Shutdown(context.Background())
	})

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	metrics := &recordingMetrics{}

	opts = append([]event.CodecOption{
		event.WithLogger(logger),
		event.WithMetrics(metrics),
		event.WithTracing(observability.NewSpanManagerFromProvider(tp)),
	}, opts...)
	return event.NewCodec(opts...), metrics, exporter, &buf
}

func TestCodec_DecodeEncode(t *testing.T) {
	codec, metrics, exporter, logs := newTestCodec(t)
	ctx := context.Background()

	original, err := event.NewProductViewedEvent(example(t, event.ProductViewed))
	require.NoError(t, err)

	data, err := codec.Encode(ctx, original)
	require.NoError(t, err)

	back, err := codec.Decode(ctx, data)
	require.NoError(t, err)
	requireSameEvent(t, original, back)

	assert.Equal(t, []string{"product.viewed"}, metrics.decoded)
	assert.Equal(t, len(data), metrics.encoded["product.viewed"])

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "eventbridgelog.encode", spans[0].Name)
	assert.Equal(t, "eventbridgelog.decode", spans[1].Name)
	assert.Equal(t, codes.Ok, spans[1].Status.Code)

	assert.Contains(t, logs.String(), `"msg":"event encoded"`)
	assert.Contains(t, logs.String(), `"msg":"event decoded"`)
	assert.Contains(t, logs.String(), original.EventID.String())
}

func TestCodec_DecodeRejected(t *testing.T) {
	codec, metrics, exporter, logs := newTestCodec(t)

	_, err := codec.Decode(context.Background(), []byte(`{"event_type":"review.submitted","source":"web","rating":9}`))
	valErr := requireValidationError(t, err)
	assert.True(t, valErr.Has("rating"))

	assert.Equal(t, []string{"review.submitted"}, metrics.rejected)
	assert.Empty(t, metrics.decoded)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)

	assert.Contains(t, logs.String(), `"level":"WARN"`)
	assert.Contains(t, logs.String(), `"msg":"event rejected"`)
	assert.Contains(t, logs.String(), `"rating"`)
}

func TestCodec_WithRegistry(t *testing.T) {
	reg := event.NewRegistry()
	s, ok := event.DefaultRegistry.Get(event.PageView)
	require.True(t, ok)
	reg.MustRegister(s)

	codec, _, _, _ := newTestCodec(t, event.WithRegistry(reg))
	ctx := context.Background()

	pv, err := s.BuildExample()
	require.NoError(t, err)
	data, err := codec.Encode(ctx, pv)
	require.NoError(t, err)
	_, err = codec.Decode(ctx, data)
	require.NoError(t, err)

	login, err := event.NewUserLoginEvent(example(t, event.UserLogin))
	require.NoError(t, err)
	data, err = event.ToJSON(login)
	require.NoError(t, err)

	_, err = codec.Decode(ctx, data)
	assert.ErrorIs(t, err, event.ErrUnknownEventType)
}

func TestCodec_UnknownTypesShareOneLabel(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := observability.NewPrometheusMetrics(reg)
	require.NoError(t, err)

	metrics := &recordingMetrics{}
	codec := event.NewCodec(event.WithMetrics(m))
	recorded := event.NewCodec(event.WithMetrics(metrics))
	ctx := context.Background()

	payloads := []string{`{"source":"web"}`, `{"event_type":7}`, `not json`}
	for i := 0; i < 50; i++ {
		payloads = append(payloads, fmt.Sprintf(`{"event_type":"junk.%d","source":"web"}`, i))
	}
	for _, p := range payloads {
		_, err := codec.Decode(ctx, []byte(p))
		require.Error(t, err)
		_, err = recorded.Decode(ctx, []byte(p))
		require.Error(t, err)
	}

	count, err := testutil.GatherAndCount(reg, "eventbridgelog_events_decoded_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	for _, label := range metrics.rejected {
		assert.Equal(t, "unknown", label)
	}
	assert.Len(t, metrics.rejected, len(payloads))
}

func TestCodec_DecodeMap(t *testing.T) {
	codec := event.NewCodec()
	f := example(t, event.InventoryOutOfStock).With(event.Fields{"event_type": "inventory.out_of_stock"})

	evt, err := codec.DecodeMap(context.Background(), f)
	require.NoError(t, err)
	assert.Equal(t, event.InventoryOutOfStock, evt.Type())

	_, err = codec.Encode(context.Background(), nil)
	assert.Error(t, err)
}
