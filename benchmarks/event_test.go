package benchmarks

import (
	"testing"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/event"
)

// BenchmarkNewBaseEvent measures base field validation with generated ids.
func BenchmarkNewBaseEvent(b *testing.B) {
	fields := event.Fields{"event_type": "user.login", "source": "auth-service"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = event.NewBaseEvent(fields)
	}
}

// BenchmarkNewOrderCreatedEvent measures a large variant with decimals and items.
func BenchmarkNewOrderCreatedEvent(b *testing.B) {
	fields := orderFields(10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = event.NewOrderCreatedEvent(fields)
	}
}

// BenchmarkNewOrderCreatedEvent_Invalid measures the all-errors path.
func BenchmarkNewOrderCreatedEvent_Invalid(b *testing.B) {
	fields := event.Fields{"source": "checkout-service", "order_total": "-1"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = event.NewOrderCreatedEvent(fields)
	}
}

// BenchmarkRegistry_BuildAll builds the example of every registered schema.
func BenchmarkRegistry_BuildAll(b *testing.B) {
	for i := 0; i < b.N; i++ {
		event.DefaultRegistry.Range(func(s *event.Schema) bool {
			_, _ = s.BuildExample()
			return true
		})
	}
}

// BenchmarkCorrelate measures deriving correlation fields from a parent.
func BenchmarkCorrelate(b *testing.B) {
	order := mustOrder(3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = event.Correlate(order).With(event.Fields{"payment_id": "pay_1"})
	}
}

// Helper functions

func orderFields(items int) event.Fields {
	list := make([]map[string]any, items)
	for i := range list {
		list[i] = map[string]any{"product_id": "prod", "quantity": i + 1, "unit_price": "19.99"}
	}
	return event.Fields{
		"user_id":          "user_42",
		"source":           "checkout-service",
		"order_id":         "order_123",
		"order_number":     "ORD-2024-001",
		"order_total":      "299.98",
		"items":            list,
		"item_count":       items,
		"customer_email":   "jane.doe@example.com",
		"shipping_address": map[string]any{"line1": "1 Main St"},
		"payment_method":   "credit_card",
		"shipping_method":  "standard",
		"tax_amount":       "24.00",
		"shipping_cost":    "5.99",
	}
}

func mustOrder(items int) *event.OrderCreatedEvent {
	order, err := event.NewOrderCreatedEvent(orderFields(items))
	if err != nil {
		panic(err)
	}
	return order
}
