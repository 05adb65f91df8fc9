package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTracingTest creates a test tracer provider with an in-memory span recorder.
func setupTracingTest(t *testing.T) (*tracetest.InMemoryExporter, *sdktrace.TracerProvider) {
	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
	)
	t.Cleanup(func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			t.Logf("Error shutting down tracer provider: %v", err)
		}
	})
	return exporter, tp
}

func attrValue(attrs []attribute.KeyValue, key string) (attribute.Value, bool) {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

func TestSpanManager_DecodeSpan(t *testing.T) {
	exporter, tp := setupTracingTest(t)
	sm := NewSpanManagerFromProvider(tp)

	ctx, span := sm.StartDecodeSpan(context.Background(), 128)
	require.NotNil(t, span)
	sm.AddSpanEvent(ctx, "validated", attribute.String("event.type", "page.view"))
	sm.EndSpanWithError(span, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "eventbridgelog.decode", s.Name)
	assert.Equal(t, codes.Ok, s.Status.Code)

	size, ok := attrValue(s.Attributes, "payload.size_bytes")
	require.True(t, ok)
	assert.Equal(t, int64(128), size.AsInt64())

	require.Len(t, s.Events, 1)
	assert.Equal(t, "validated", s.Events[0].Name)
}

func TestSpanManager_EncodeSpan(t *testing.T) {
	exporter, tp := setupTracingTest(t)
	sm := NewSpanManagerFromProvider(tp)

	_, span := sm.StartEncodeSpan(context.Background(), "order.paid", "evt-1")
	sm.EndSpanWithError(span, errors.New("marshal failed"))

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	s := spans[0]
	assert.Equal(t, "eventbridgelog.encode", s.Name)
	assert.Equal(t, codes.Error, s.Status.Code)
	assert.Equal(t, "marshal failed", s.Status.Description)

	eventType, ok := attrValue(s.Attributes, "event.type")
	require.True(t, ok)
	assert.Equal(t, "order.paid", eventType.AsString())

	found := false
	for _, event := range s.Events {
		if event.Name == "exception" {
			found = true
		}
	}
	assert.True(t, found, "Expected exception event")
}

func TestNewSpanManager_UsesGlobalProvider(t *testing.T) {
	exporter, tp := setupTracingTest(t)

	original := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	tracer = otel.Tracer("eventbridgelog")
	defer func() {
		otel.SetTracerProvider(original)
		tracer = otel.Tracer("eventbridgelog")
	}()

	sm := NewSpanManager()
	_, span := sm.StartDecodeSpan(context.Background(), 10)
	sm.EndSpanWithError(span, nil)

	require.Len(t, exporter.GetSpans(), 1)
}

func TestEndSpanWithError_NilSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		EndSpanWithError(nil, nil)
	})
	assert.NotPanics(t, func() {
		EndSpanWithError(nil, errors.New("test"))
	})
}

func TestAddSpanEvent_NoSpan(t *testing.T) {
	assert.NotPanics(t, func() {
		AddSpanEvent(context.Background(), "orphan")
	})
}
