package event

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/observability"
)

// ToJSON serializes evt in canonical form: base fields first, UUIDs
// lowercase, timestamps RFC 3339 UTC, decimals as strings, absent optional
// fields omitted.
func ToJSON(evt Event) ([]byte, error) {
	if evt == nil {
		return nil, fmt.Errorf("encode event: nil event")
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", evt.Type(), err)
	}
	return data, nil
}

// ToMap returns the canonical mapping of evt: the decoded form of ToJSON,
// with numbers kept as json.Number.
func ToMap(evt Event) (Fields, error) {
	data, err := ToJSON(evt)
	if err != nil {
		return nil, err
	}
	return decodeObject(data)
}

// FromMap rebuilds an event from a mapping, dispatching on its event_type
// through DefaultRegistry.
func FromMap(f Fields) (Event, error) {
	return fromMap(DefaultRegistry, f)
}

// FromJSON rebuilds an event from its JSON form.
func FromJSON(data []byte) (Event, error) {
	f, err := decodeObject(data)
	if err != nil {
		return nil, err
	}
	return fromMap(DefaultRegistry, f)
}

func fromMap(reg *Registry, f Fields) (Event, error) {
	t, err := typeOf(reg, f)
	if err != nil {
		return nil, err
	}
	return reg.Build(t, f)
}

// typeOf reads and checks the event_type discriminator.
func typeOf(reg *Registry, f Fields) (EventType, error) {
	raw, ok := f["event_type"]
	if !ok || raw == nil {
		return "", eberrors.NewValidationError("Event", []eberrors.FieldError{
			{Field: "event_type", Message: msgRequired},
		})
	}
	s, ok := raw.(string)
	if !ok {
		return "", eberrors.NewValidationError("Event", []eberrors.FieldError{
			{Field: "event_type", Message: "value is not a valid string", Value: raw},
		})
	}
	t := EventType(s)
	if !reg.Has(t) {
		return "", eberrors.NewValidationError("Event", []eberrors.FieldError{
			{Field: "event_type", Message: "unknown event type", Value: s, Err: ErrUnknownEventType},
		})
	}
	return t, nil
}

func decodeObject(data []byte) (Fields, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var f Fields
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	if f == nil {
		return nil, fmt.Errorf("decode event: payload is not a JSON object")
	}
	return f, nil
}

// Codec decodes and encodes events while recording logs, metrics and
// spans. The zero-option codec uses DefaultRegistry and no-op hooks.
type Codec struct {
	registry *Registry
	logger   *slog.Logger
	metrics  observability.MetricsRecorder
	spans    observability.SpanManager
}

// CodecOption configures a Codec.
type CodecOption func(*Codec)

// WithRegistry restricts decoding to the schemas in reg.
func WithRegistry(reg *Registry) CodecOption {
	return func(c *Codec) {
		c.registry = reg
	}
}

// WithLogger sets the logger for decode and encode outcomes.
func WithLogger(logger *slog.Logger) CodecOption {
	return func(c *Codec) {
		c.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m observability.MetricsRecorder) CodecOption {
	return func(c *Codec) {
		c.metrics = m
	}
}

// WithTracing sets the span manager.
func WithTracing(sm observability.SpanManager) CodecOption {
	return func(c *Codec) {
		c.spans = sm
	}
}

// NewCodec creates a codec.
func NewCodec(opts ...CodecOption) *Codec {
	c := &Codec{
		registry: DefaultRegistry,
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = DefaultRegistry
	}
	if c.metrics == nil {
		c.metrics = observability.NoopMetrics{}
	}
	if c.spans == nil {
		c.spans = observability.NoopSpanManager{}
	}
	return c
}

// Decode parses one JSON event. Validation failures are logged at warn
// level and returned unchanged.
func (c *Codec) Decode(ctx context.Context, data []byte) (Event, error) {
	start := time.Now()
	elapsedMs := observability.TimedOperation()
	ctx, span := c.spans.StartDecodeSpan(ctx, len(data))

	evt, eventType, err := c.decode(data)

	c.metrics.RecordDecode(ctx, eventType, time.Since(start), err)
	c.spans.EndSpanWithError(span, err)

	if err != nil {
		var valErr *eberrors.ValidationError
		var fields []string
		if errors.As(err, &valErr) {
			fields = valErr.FieldNames()
		}
		observability.LogEventRejected(c.logger, eventType, err, fields)
		return nil, err
	}

	observability.LogEventDecoded(c.logger, eventType, evt.Header().EventID.String(), elapsedMs())
	return evt, nil
}

// DecodeMap builds one event from an already parsed mapping.
func (c *Codec) DecodeMap(ctx context.Context, f Fields) (Event, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return c.Decode(ctx, data)
}

// unknownEventType labels payloads whose event_type is missing or not
// registered, keeping metric label values bounded by the registry.
const unknownEventType = "unknown"

func (c *Codec) decode(data []byte) (Event, string, error) {
	f, err := decodeObject(data)
	if err != nil {
		return nil, unknownEventType, err
	}

	t, err := typeOf(c.registry, f)
	if err != nil {
		return nil, unknownEventType, err
	}

	evt, err := c.registry.Build(t, f)
	return evt, string(t), err
}

// Encode serializes evt in canonical form.
func (c *Codec) Encode(ctx context.Context, evt Event) ([]byte, error) {
	if evt == nil {
		return nil, fmt.Errorf("encode event: nil event")
	}

	h := evt.Header()
	eventType, eventID := string(h.EventType), h.EventID.String()

	ctx, span := c.spans.StartEncodeSpan(ctx, eventType, eventID)
	data, err := ToJSON(evt)
	c.spans.EndSpanWithError(span, err)
	if err != nil {
		return nil, err
	}

	c.metrics.RecordEncode(ctx, eventType, len(data))
	observability.LogEventEncoded(c.logger, eventType, eventID, len(data))
	return data, nil
}
