// Package event defines the event records shared by every service on the
// platform: user, ecommerce, inventory, payment and analytics events.
//
// # Overview
//
// Each event is a struct embedding BaseEvent and carrying a fixed
// event_type. Events are built from a field mapping, validated at
// construction, and immutable by convention afterwards:
//
//	evt, err := event.NewOrderCreatedEvent(event.Fields{
//	    "order_id":         "order_123",
//	    "order_number":     "ORD-2024-001",
//	    "order_total":      "299.98",
//	    "items":            []map[string]any{},
//	    "item_count":       0,
//	    "customer_email":   "jane.doe@example.com",
//	    "shipping_address": map[string]any{"line1": "1 Main St"},
//	    "payment_method":   "credit_card",
//	    "shipping_method":  "standard",
//	    "source":           "checkout-service",
//	})
//
// event_id and timestamp are generated when absent. The concrete
// constructors always set their own event_type, ignoring any event_type in
// the mapping. NewBaseEvent is the only constructor that reads event_type.
//
// # Validation
//
// A constructor either returns a fully valid event or a
// *errors.ValidationError listing every offending field; it never stops at
// the first failure and never returns a partial value:
//
//	_, err := event.NewPaymentFailedEvent(event.Fields{"source": "api"})
//	var valErr *errors.ValidationError
//	if errors.As(err, &valErr) {
//	    fmt.Println(valErr.FieldNames()) // [failure_reason order_id payment_amount ...]
//	}
//
// Inputs are coerced leniently: integers accept whole floats, json.Number
// and numeric strings; booleans accept "true"/"false"; currency fields
// accept integers, floats, decimal strings and decimal.Decimal values and
// are stored exactly as decimal.Decimal. Unknown keys are ignored.
//
// # Serialization
//
// ToJSON and ToMap produce the canonical form: base fields first, UUIDs
// lowercase, timestamps RFC 3339 in UTC with microsecond precision,
// decimals as JSON strings, absent optional fields omitted. FromJSON and
// FromMap dispatch on event_type through DefaultRegistry, and the round
// trip is exact:
//
//	data, _ := event.ToJSON(evt)
//	back, _ := event.FromJSON(data) // same event_id, timestamp, amounts
//
// # Registry
//
// DefaultRegistry holds a Schema per event type with its domain, field
// names, tags and an example payload. Codec wraps decoding and encoding
// with logging, metrics and tracing, and can be limited to a subset of
// schemas with WithRegistry.
//
// # Correlation
//
// Correlate copies the correlation id, user id, environment and source of
// a parent event so a derived event joins the same chain:
//
//	fields := event.Correlate(order).With(event.Fields{...})
//	payment, err := event.NewPaymentProcessedEvent(fields)
package event
