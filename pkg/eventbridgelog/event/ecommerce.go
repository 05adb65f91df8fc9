package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductViewedEvent is emitted when a product page is shown.
// Required: product_id, product_name, product_category, product_price.
type ProductViewedEvent struct {
	BaseEvent
	ProductID       string          `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductCategory string          `json:"product_category"`
	ProductPrice    decimal.Decimal `json:"product_price"`
	Currency        string          `json:"currency"`
	ProductBrand    string          `json:"product_brand,omitempty"`
	IsAuthenticated bool            `json:"is_authenticated"`
	ViewSource      string          `json:"view_source,omitempty"`
	SessionID       string          `json:"session_id,omitempty"`
}

// NewProductViewedEvent validates fields and builds a ProductViewedEvent.
func NewProductViewedEvent(fields Fields) (*ProductViewedEvent, error) {
	r := newReader(fields)
	e := &ProductViewedEvent{
		BaseEvent:       r.base(ProductViewed, false),
		ProductID:       r.requiredString("product_id"),
		ProductName:     r.requiredString("product_name"),
		ProductCategory: r.requiredString("product_category"),
		ProductPrice:    r.requiredDecimal("product_price"),
		Currency:        r.stringDefault("currency", "USD"),
		ProductBrand:    r.optionalString("product_brand"),
		IsAuthenticated: r.boolDefault("is_authenticated", false),
		ViewSource:      r.optionalString("view_source"),
		SessionID:       r.optionalString("session_id"),
	}
	r.nonNegativeDecimal("product_price", e.ProductPrice)
	if err := r.err("ProductViewedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// ProductSearchedEvent is emitted for a catalogue search.
// Required: search_query, results_count.
type ProductSearchedEvent struct {
	BaseEvent
	SearchQuery  string         `json:"search_query"`
	ResultsCount int            `json:"results_count"`
	Filters      map[string]any `json:"filters,omitempty"`
	SortOrder    string         `json:"sort_order,omitempty"`
	Page         int            `json:"page"`
	SessionID    string         `json:"session_id,omitempty"`
}

// NewProductSearchedEvent validates fields and builds a ProductSearchedEvent.
func NewProductSearchedEvent(fields Fields) (*ProductSearchedEvent, error) {
	r := newReader(fields)
	e := &ProductSearchedEvent{
		BaseEvent:    r.base(ProductSearched, false),
		SearchQuery:  r.requiredString("search_query"),
		ResultsCount: r.requiredInt("results_count"),
		Filters:      r.object("filters", false),
		SortOrder:    r.optionalString("sort_order"),
		Page:         r.intDefault("page", 1),
		SessionID:    r.optionalString("session_id"),
	}
	r.minInt("results_count", e.ResultsCount, 0)
	r.minInt("page", e.Page, 1)
	if err := r.err("ProductSearchedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// CartItemAddedEvent is emitted when a product goes into a cart.
// Required: cart_id, product_id, product_name, quantity, unit_price, cart_total.
type CartItemAddedEvent struct {
	BaseEvent
	CartID      string          `json:"cart_id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	CartTotal   decimal.Decimal `json:"cart_total"`
	Currency    string          `json:"currency"`
}

// NewCartItemAddedEvent validates fields and builds a CartItemAddedEvent.
func NewCartItemAddedEvent(fields Fields) (*CartItemAddedEvent, error) {
	r := newReader(fields)
	e := &CartItemAddedEvent{
		BaseEvent:   r.base(CartItemAdded, false),
		CartID:      r.requiredString("cart_id"),
		ProductID:   r.requiredString("product_id"),
		ProductName: r.requiredString("product_name"),
		Quantity:    r.requiredInt("quantity"),
		UnitPrice:   r.requiredDecimal("unit_price"),
		CartTotal:   r.requiredDecimal("cart_total"),
		Currency:    r.stringDefault("currency", "USD"),
	}
	r.minInt("quantity", e.Quantity, 1)
	r.nonNegativeDecimal("unit_price", e.UnitPrice)
	r.nonNegativeDecimal("cart_total", e.CartTotal)
	if err := r.err("CartItemAddedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// CartItemRemovedEvent is emitted when a product leaves a cart.
// Required: cart_id, product_id, quantity, unit_price, cart_total.
type CartItemRemovedEvent struct {
	BaseEvent
	CartID        string          `json:"cart_id"`
	ProductID     string          `json:"product_id"`
	Quantity      int             `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	CartTotal     decimal.Decimal `json:"cart_total"`
	Currency      string          `json:"currency"`
	RemovalReason string          `json:"removal_reason,omitempty"`
}

// NewCartItemRemovedEvent validates fields and builds a CartItemRemovedEvent.
func NewCartItemRemovedEvent(fields Fields) (*CartItemRemovedEvent, error) {
	r := newReader(fields)
	e := &CartItemRemovedEvent{
		BaseEvent:     r.base(CartItemRemoved, false),
		CartID:        r.requiredString("cart_id"),
		ProductID:     r.requiredString("product_id"),
		Quantity:      r.requiredInt("quantity"),
		UnitPrice:     r.requiredDecimal("unit_price"),
		CartTotal:     r.requiredDecimal("cart_total"),
		Currency:      r.stringDefault("currency", "USD"),
		RemovalReason: r.optionalString("removal_reason"),
	}
	r.minInt("quantity", e.Quantity, 1)
	r.nonNegativeDecimal("unit_price", e.UnitPrice)
	r.nonNegativeDecimal("cart_total", e.CartTotal)
	if err := r.err("CartItemRemovedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// CartAbandonedEvent is emitted when a cart expires without checkout.
// Required: cart_id, cart_total, item_count, items.
type CartAbandonedEvent struct {
	BaseEvent
	CartID            string           `json:"cart_id"`
	CartTotal         decimal.Decimal  `json:"cart_total"`
	Currency          string           `json:"currency"`
	ItemCount         int              `json:"item_count"`
	Items             []map[string]any `json:"items"`
	AbandonmentStage  string           `json:"abandonment_stage,omitempty"`
	TimeInCartSeconds *int             `json:"time_in_cart_seconds,omitempty"`
}

// NewCartAbandonedEvent validates fields and builds a CartAbandonedEvent.
func NewCartAbandonedEvent(fields Fields) (*CartAbandonedEvent, error) {
	r := newReader(fields)
	e := &CartAbandonedEvent{
		BaseEvent:         r.base(CartAbandoned, false),
		CartID:            r.requiredString("cart_id"),
		CartTotal:         r.requiredDecimal("cart_total"),
		Currency:          r.stringDefault("currency", "USD"),
		ItemCount:         r.requiredInt("item_count"),
		Items:             r.objectList("items", true),
		AbandonmentStage:  r.optionalString("abandonment_stage"),
		TimeInCartSeconds: r.optionalInt("time_in_cart_seconds"),
	}
	r.nonNegativeDecimal("cart_total", e.CartTotal)
	r.minInt("item_count", e.ItemCount, 0)
	r.minIntPtr("time_in_cart_seconds", e.TimeInCartSeconds, 0)
	if err := r.err("CartAbandonedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// OrderCreatedEvent is emitted at checkout.
// Required: order_id, order_number, order_total, items, item_count,
// customer_email, shipping_address, payment_method, shipping_method.
type OrderCreatedEvent struct {
	BaseEvent
	OrderID         string           `json:"order_id"`
	OrderNumber     string           `json:"order_number"`
	OrderTotal      decimal.Decimal  `json:"order_total"`
	OrderStatus     string           `json:"order_status"`
	Currency        string           `json:"currency"`
	Items           []map[string]any `json:"items"`
	ItemCount       int              `json:"item_count"`
	CustomerEmail   string           `json:"customer_email"`
	ShippingAddress map[string]any   `json:"shipping_address"`
	BillingAddress  map[string]any   `json:"billing_address,omitempty"`
	PaymentMethod   string           `json:"payment_method"`
	ShippingMethod  string           `json:"shipping_method"`
	TaxAmount       *decimal.Decimal `json:"tax_amount,omitempty"`
	ShippingCost    *decimal.Decimal `json:"shipping_cost,omitempty"`
	DiscountAmount  *decimal.Decimal `json:"discount_amount,omitempty"`
}

// NewOrderCreatedEvent validates fields and builds an OrderCreatedEvent.
func NewOrderCreatedEvent(fields Fields) (*OrderCreatedEvent, error) {
	r := newReader(fields)
	e := &OrderCreatedEvent{
		BaseEvent:       r.base(OrderCreated, false),
		OrderID:         r.requiredString("order_id"),
		OrderNumber:     r.requiredString("order_number"),
		OrderTotal:      r.requiredDecimal("order_total"),
		OrderStatus:     r.stringDefault("order_status", "created"),
		Currency:        r.stringDefault("currency", "USD"),
		Items:           r.objectList("items", true),
		ItemCount:       r.requiredInt("item_count"),
		CustomerEmail:   r.requiredEmail("customer_email"),
		ShippingAddress: r.object("shipping_address", true),
		BillingAddress:  r.object("billing_address", false),
		PaymentMethod:   r.requiredString("payment_method"),
		ShippingMethod:  r.requiredString("shipping_method"),
		TaxAmount:       r.optionalDecimal("tax_amount"),
		ShippingCost:    r.optionalDecimal("shipping_cost"),
		DiscountAmount:  r.optionalDecimal("discount_amount"),
	}
	r.nonNegativeDecimal("order_total", e.OrderTotal)
	r.minInt("item_count", e.ItemCount, 0)
	r.nonNegativeDecimalPtr("tax_amount", e.TaxAmount)
	r.nonNegativeDecimalPtr("shipping_cost", e.ShippingCost)
	r.nonNegativeDecimalPtr("discount_amount", e.DiscountAmount)
	if err := r.err("OrderCreatedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// OrderPaidEvent is emitted once payment for an order is captured.
// Required: order_id, order_number, payment_id, payment_amount, payment_method.
type OrderPaidEvent struct {
	BaseEvent
	OrderID       string          `json:"order_id"`
	OrderNumber   string          `json:"order_number"`
	PaymentID     string          `json:"payment_id"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
	PaymentMethod string          `json:"payment_method"`
	Currency      string          `json:"currency"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
}

// NewOrderPaidEvent validates fields and builds an OrderPaidEvent.
func NewOrderPaidEvent(fields Fields) (*OrderPaidEvent, error) {
	r := newReader(fields)
	e := &OrderPaidEvent{
		BaseEvent:     r.base(OrderPaid, false),
		OrderID:       r.requiredString("order_id"),
		OrderNumber:   r.requiredString("order_number"),
		PaymentID:     r.requiredString("payment_id"),
		PaymentAmount: r.requiredDecimal("payment_amount"),
		PaymentMethod: r.requiredString("payment_method"),
		Currency:      r.stringDefault("currency", "USD"),
		PaidAt:        r.optionalTime("paid_at"),
	}
	r.nonNegativeDecimal("payment_amount", e.PaymentAmount)
	if err := r.err("OrderPaidEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// OrderShippedEvent is emitted when a carrier picks up an order.
// Required: order_id, order_number, tracking_number, carrier, shipping_method.
type OrderShippedEvent struct {
	BaseEvent
	OrderID           string           `json:"order_id"`
	OrderNumber       string           `json:"order_number"`
	TrackingNumber    string           `json:"tracking_number"`
	Carrier           string           `json:"carrier"`
	ShippingMethod    string           `json:"shipping_method"`
	EstimatedDelivery *time.Time       `json:"estimated_delivery,omitempty"`
	ShippedItems      []map[string]any `json:"shipped_items,omitempty"`
}

// NewOrderShippedEvent validates fields and builds an OrderShippedEvent.
func NewOrderShippedEvent(fields Fields) (*OrderShippedEvent, error) {
	r := newReader(fields)
	e := &OrderShippedEvent{
		BaseEvent:         r.base(OrderShipped, false),
		OrderID:           r.requiredString("order_id"),
		OrderNumber:       r.requiredString("order_number"),
		TrackingNumber:    r.requiredString("tracking_number"),
		Carrier:           r.requiredString("carrier"),
		ShippingMethod:    r.requiredString("shipping_method"),
		EstimatedDelivery: r.optionalTime("estimated_delivery"),
		ShippedItems:      r.objectList("shipped_items", false),
	}
	if err := r.err("OrderShippedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// OrderDeliveredEvent is emitted when the carrier confirms delivery.
// Required: order_id, order_number, tracking_number, carrier, delivered_at.
type OrderDeliveredEvent struct {
	BaseEvent
	OrderID           string    `json:"order_id"`
	OrderNumber       string    `json:"order_number"`
	TrackingNumber    string    `json:"tracking_number"`
	Carrier           string    `json:"carrier"`
	DeliveredAt       time.Time `json:"delivered_at"`
	DeliverySignature string    `json:"delivery_signature,omitempty"`
	DeliveryNotes     string    `json:"delivery_notes,omitempty"`
}

// NewOrderDeliveredEvent validates fields and builds an OrderDeliveredEvent.
func NewOrderDeliveredEvent(fields Fields) (*OrderDeliveredEvent, error) {
	r := newReader(fields)
	e := &OrderDeliveredEvent{
		BaseEvent:         r.base(OrderDelivered, false),
		OrderID:           r.requiredString("order_id"),
		OrderNumber:       r.requiredString("order_number"),
		TrackingNumber:    r.requiredString("tracking_number"),
		Carrier:           r.requiredString("carrier"),
		DeliveredAt:       r.requiredTime("delivered_at"),
		DeliverySignature: r.optionalString("delivery_signature"),
		DeliveryNotes:     r.optionalString("delivery_notes"),
	}
	if err := r.err("OrderDeliveredEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// OrderCancelledEvent is emitted when an order is cancelled.
// Required: order_id, order_number, cancellation_reason, cancelled_by.
type OrderCancelledEvent struct {
	BaseEvent
	OrderID            string           `json:"order_id"`
	OrderNumber        string           `json:"order_number"`
	CancellationReason string           `json:"cancellation_reason"`
	CancelledBy        string           `json:"cancelled_by"`
	RefundAmount       *decimal.Decimal `json:"refund_amount,omitempty"`
	RefundIssued       bool             `json:"refund_issued"`
}

// NewOrderCancelledEvent validates fields and builds an OrderCancelledEvent.
func NewOrderCancelledEvent(fields Fields) (*OrderCancelledEvent, error) {
	r := newReader(fields)
	e := &OrderCancelledEvent{
		BaseEvent:          r.base(OrderCancelled, false),
		OrderID:            r.requiredString("order_id"),
		OrderNumber:        r.requiredString("order_number"),
		CancellationReason: r.requiredString("cancellation_reason"),
		CancelledBy:        r.requiredString("cancelled_by"),
		RefundAmount:       r.optionalDecimal("refund_amount"),
		RefundIssued:       r.boolDefault("refund_issued", false),
	}
	r.nonNegativeDecimalPtr("refund_amount", e.RefundAmount)
	if err := r.err("OrderCancelledEvent"); err != nil {
		return nil, err
	}
	return e, nil
}
