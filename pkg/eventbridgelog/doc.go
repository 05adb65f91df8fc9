/*
Package eventbridgelog is the shared schema library of the event bridge log
platform.

# Overview

Every producer and consumer on the platform imports this module for two
things: the event records that travel between services, and the settings
that name the cloud resources those records flow through. It has no
transport, storage or runtime of its own.

# Events

The event subpackage defines 24 event types in five domains (user,
ecommerce, inventory, payment, analytics). Each is built from a field
mapping and validated at construction:

	order, err := event.NewOrderCreatedEvent(event.Fields{
	    "order_id":         "order_123",
	    "order_number":     "ORD-2024-001",
	    "order_total":      "299.98",
	    "items":            []map[string]any{{"sku": "SKU-1", "quantity": 2}},
	    "item_count":       1,
	    "customer_email":   "jane.doe@example.com",
	    "shipping_address": map[string]any{"line1": "1 Main St"},
	    "payment_method":   "credit_card",
	    "shipping_method":  "standard",
	    "source":           "checkout-service",
	})
	if err != nil {
	    log.Fatal(err) // *errors.ValidationError listing every bad field
	}

	data, _ := event.ToJSON(order)
	back, _ := event.FromJSON(data)

# Settings

The config subpackage builds immutable settings from overrides, the process
environment (optionally layered over a .env file) or a YAML/JSON file:

	settings, err := config.SettingsFromEnv(config.OSEnv())
	if err != nil {
	    log.Fatal(err) // *errors.ConfigurationError
	}
	logger := settings.App.NewLogger(os.Stderr)
	bus := settings.AWS.EventBridgeBusName // "production-event-bridge-log-bus"

config.Watcher reloads a settings file on change.

# Observability

event.Codec decodes and encodes events with slog logging, metrics
(OpenTelemetry or Prometheus) and OpenTelemetry tracing:

	codec := event.NewCodec(
	    event.WithLogger(logger),
	    event.WithMetrics(observability.NewMetricsRecorder()),
	)
	evt, err := codec.Decode(ctx, payload)

# Subpackages

  - event: Event types, registry, canonical JSON and Codec
  - config: AWS and application settings, file loader and watcher
  - errors: ValidationError and ConfigurationError
  - registry: Generic ordered registry backing the schema registry
  - observability: Logging, metrics, and tracing helpers
*/
package eventbridgelog
