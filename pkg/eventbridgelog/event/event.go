package event

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrUnknownEventType indicates an event_type outside the closed set, or one
// with no schema in the registry used for decoding.
var ErrUnknownEventType = errors.New("unknown event type")

// EventType is the dotted discriminator carried in every event.
type EventType string

// User events.
const (
	UserRegistered     EventType = "user.registered"
	UserLogin          EventType = "user.login"
	UserLogout         EventType = "user.logout"
	UserProfileUpdated EventType = "user.profile_updated"
	UserDeleted        EventType = "user.deleted"
)

// Ecommerce events.
const (
	ProductViewed   EventType = "product.viewed"
	ProductSearched EventType = "product.searched"
	CartItemAdded   EventType = "cart.item_added"
	CartItemRemoved EventType = "cart.item_removed"
	CartAbandoned   EventType = "cart.abandoned"
	OrderCreated    EventType = "order.created"
	OrderPaid       EventType = "order.paid"
	OrderShipped    EventType = "order.shipped"
	OrderDelivered  EventType = "order.delivered"
	OrderCancelled  EventType = "order.cancelled"
)

// Inventory events.
const (
	InventoryLowStock   EventType = "inventory.low_stock"
	InventoryOutOfStock EventType = "inventory.out_of_stock"
	InventoryRestocked  EventType = "inventory.restocked"
)

// Payment events.
const (
	PaymentProcessed EventType = "payment.processed"
	PaymentFailed    EventType = "payment.failed"
	PaymentRefunded  EventType = "payment.refunded"
)

// Analytics events.
const (
	ReviewSubmitted EventType = "review.submitted"
	UserSession     EventType = "user.session"
	PageView        EventType = "page.view"
)

// Domain groups event types by the business area that emits them.
type Domain string

const (
	DomainUser      Domain = "user"
	DomainEcommerce Domain = "ecommerce"
	DomainInventory Domain = "inventory"
	DomainPayment   Domain = "payment"
	DomainAnalytics Domain = "analytics"
)

// eventTypes is the closed set, in declaration order.
var eventTypes = []struct {
	t EventType
	d Domain
}{
	{UserRegistered, DomainUser},
	{UserLogin, DomainUser},
	{UserLogout, DomainUser},
	{UserProfileUpdated, DomainUser},
	{UserDeleted, DomainUser},
	{ProductViewed, DomainEcommerce},
	{ProductSearched, DomainEcommerce},
	{CartItemAdded, DomainEcommerce},
	{CartItemRemoved, DomainEcommerce},
	{CartAbandoned, DomainEcommerce},
	{OrderCreated, DomainEcommerce},
	{OrderPaid, DomainEcommerce},
	{OrderShipped, DomainEcommerce},
	{OrderDelivered, DomainEcommerce},
	{OrderCancelled, DomainEcommerce},
	{InventoryLowStock, DomainInventory},
	{InventoryOutOfStock, DomainInventory},
	{InventoryRestocked, DomainInventory},
	{PaymentProcessed, DomainPayment},
	{PaymentFailed, DomainPayment},
	{PaymentRefunded, DomainPayment},
	{ReviewSubmitted, DomainAnalytics},
	{UserSession, DomainAnalytics},
	{PageView, DomainAnalytics},
}

var domainByType = func() map[EventType]Domain {
	m := make(map[EventType]Domain, len(eventTypes))
	for _, et := range eventTypes {
		m[et.t] = et.d
	}
	return m
}()

// EventTypes returns every event type in declaration order.
func EventTypes() []EventType {
	out := make([]EventType, len(eventTypes))
	for i, et := range eventTypes {
		out[i] = et.t
	}
	return out
}

// ParseEventType validates s against the closed set.
func ParseEventType(s string) (EventType, error) {
	t := EventType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownEventType, s)
	}
	return t, nil
}

// Valid reports whether t is in the closed set.
func (t EventType) Valid() bool {
	_, ok := domainByType[t]
	return ok
}

// Domain returns the domain t belongs to, or "" for unknown types.
func (t EventType) Domain() Domain {
	return domainByType[t]
}

// String returns the dotted name.
func (t EventType) String() string {
	return string(t)
}

// Environment is the deployment environment recorded on an event.
type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// ParseEnvironment lower-cases s and maps anything other than "production"
// to Development. It never fails.
func ParseEnvironment(s string) Environment {
	if strings.ToLower(strings.TrimSpace(s)) == string(Production) {
		return Production
	}
	return Development
}

// Event is implemented by BaseEvent and every concrete variant.
type Event interface {
	// Type returns the fixed discriminator.
	Type() EventType

	// Header returns a copy of the common base fields.
	Header() BaseEvent

	// Domain returns the business area of the event type.
	Domain() Domain
}

// BaseEvent holds the fields common to every event. Concrete variants embed
// it, so its fields serialize first.
type BaseEvent struct {
	EventID       uuid.UUID      `json:"event_id"`
	EventType     EventType      `json:"event_type"`
	Timestamp     time.Time      `json:"timestamp"`
	Source        string         `json:"source"`
	Environment   Environment    `json:"environment"`
	CorrelationID *uuid.UUID     `json:"correlation_id,omitempty"`
	UserID        string         `json:"user_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Type returns the event type.
func (e *BaseEvent) Type() EventType {
	return e.EventType
}

// Header returns a copy of the base fields.
func (e *BaseEvent) Header() BaseEvent {
	h := *e
	if e.CorrelationID != nil {
		id := *e.CorrelationID
		h.CorrelationID = &id
	}
	return h
}

// Domain returns the domain of the event type.
func (e *BaseEvent) Domain() Domain {
	return e.EventType.Domain()
}

// NewBaseEvent builds the generic root record. Unlike the concrete
// constructors it requires event_type, which must be in the closed set.
func NewBaseEvent(fields Fields) (*BaseEvent, error) {
	r := newReader(fields)

	var t EventType
	if raw := r.requiredString("event_type"); raw != "" {
		parsed, err := ParseEventType(raw)
		if err != nil {
			r.failErr("event_type", "unknown event type", raw, ErrUnknownEventType)
		}
		t = parsed
	}

	base := r.base(t, false)
	if err := r.err("BaseEvent"); err != nil {
		return nil, err
	}
	return &base, nil
}

// base reads the common fields. The event type is always t; any
// event_type in the mapping is ignored.
func (r *reader) base(t EventType, requireUser bool) BaseEvent {
	b := BaseEvent{
		EventType:   t,
		Source:      r.requiredString("source"),
		Environment: Development,
	}

	if v, ok := r.lookup("event_id"); ok {
		id, err := asUUID(v)
		if err != nil {
			r.fail("event_id", err.Error(), v)
		}
		b.EventID = id
	} else {
		b.EventID = uuid.New()
	}

	if _, ok := r.lookup("timestamp"); ok {
		b.Timestamp = r.requiredTime("timestamp")
	} else {
		b.Timestamp = normalizeTime(time.Now())
	}

	if v, ok := r.lookup("environment"); ok {
		if s, isString := v.(string); isString {
			b.Environment = ParseEnvironment(s)
		}
	}

	b.CorrelationID = r.optionalUUID("correlation_id")

	if requireUser {
		b.UserID = r.requiredString("user_id")
	} else {
		b.UserID = r.optionalString("user_id")
	}

	b.Metadata = r.object("metadata", false)
	return b
}

// Correlate returns the base fields a derived event inherits from parent:
// the correlation id (parent's own event_id when it has none), user_id,
// environment and source. Merge the result with the new event's fields.
//
//	fields := event.Correlate(order).With(event.Fields{"payment_id": "pay_1", ...})
//	payment, err := event.NewPaymentProcessedEvent(fields)
func Correlate(parent Event) Fields {
	h := parent.Header()

	correlation := h.EventID
	if h.CorrelationID != nil {
		correlation = *h.CorrelationID
	}

	f := Fields{
		"correlation_id": correlation.String(),
		"environment":    string(h.Environment),
		"source":         h.Source,
	}
	if h.UserID != "" {
		f["user_id"] = h.UserID
	}
	return f
}
