package event

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/registry"
)

// Schema describes one event type: its domain, Go type, field names and
// an example payload, plus the constructor used to decode it.
type Schema struct {
	// Type is the fixed event_type discriminator.
	Type EventType

	// Domain is the business area of the event type.
	Domain Domain

	// Name is the Go type name (e.g. "OrderCreatedEvent").
	Name string

	// Description explains the event's purpose.
	Description string

	// Tags enable search and categorization.
	Tags []string

	// Fields lists the JSON field names in serialization order, base fields first.
	Fields []string

	// Example is a valid construction mapping for this type.
	Example Fields

	build func(Fields) (Event, error)
}

// SchemaOption configures a Schema.
type SchemaOption func(*Schema)

// WithDescription sets the schema description.
func WithDescription(desc string) SchemaOption {
	return func(s *Schema) {
		s.Description = desc
	}
}

// WithTags sets the schema tags.
func WithTags(tags ...string) SchemaOption {
	return func(s *Schema) {
		s.Tags = tags
	}
}

// WithExample sets the example payload.
func WithExample(example Fields) SchemaOption {
	return func(s *Schema) {
		s.Example = example
	}
}

// NewSchema describes event type t built by ctor. E must be a pointer to
// a struct embedding BaseEvent.
func NewSchema[E Event](t EventType, ctor func(Fields) (E, error), opts ...SchemaOption) *Schema {
	rt := reflect.TypeOf((*E)(nil)).Elem()
	if rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}

	s := &Schema{
		Type:   t,
		Domain: t.Domain(),
		Name:   rt.Name(),
		Fields: jsonFieldNames(rt),
		build: func(f Fields) (Event, error) {
			evt, err := ctor(f)
			if err != nil {
				return nil, err
			}
			return evt, nil
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build constructs an event of this schema's type from f.
func (s *Schema) Build(f Fields) (Event, error) {
	return s.build(f)
}

// BuildExample constructs an event from the example payload.
func (s *Schema) BuildExample() (Event, error) {
	return s.build(s.Example.Clone())
}

// HasTag reports whether the schema carries tag.
func (s *Schema) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// jsonFieldNames walks struct fields in declaration order, descending into
// embedded structs, and returns their JSON names.
func jsonFieldNames(t reflect.Type) []string {
	var names []string
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			names = append(names, jsonFieldNames(f.Type)...)
			continue
		}
		if !f.IsExported() {
			continue
		}
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		if name == "" {
			name = f.Name
		}
		names = append(names, name)
	}
	return names
}

// Registry maps event types to schemas. It is safe for concurrent use.
type Registry struct {
	schemas *registry.Registry[EventType, *Schema]
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: registry.New[EventType, *Schema](),
	}
}

// Register adds a schema. The type must be in the closed set and not
// already registered.
func (r *Registry) Register(s *Schema) error {
	if s == nil || s.build == nil {
		return fmt.Errorf("schema must be created with NewSchema")
	}
	if !s.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownEventType, s.Type)
	}
	return r.schemas.Register(s.Type, s)
}

// MustRegister adds a schema, panicking on error.
func (r *Registry) MustRegister(s *Schema) {
	if err := r.Register(s); err != nil {
		panic(fmt.Sprintf("failed to register event schema: %v", err))
	}
}

// Get returns the schema for an event type.
func (r *Registry) Get(t EventType) (*Schema, bool) {
	return r.schemas.Get(t)
}

// Has returns true if a schema exists for the event type.
func (r *Registry) Has(t EventType) bool {
	return r.schemas.Has(t)
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	return r.schemas.Len()
}

// Build constructs an event of type t from f. The type in f, if any, is
// ignored.
func (r *Registry) Build(t EventType, f Fields) (Event, error) {
	s, ok := r.schemas.Get(t)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEventType, t)
	}
	return s.Build(f)
}

// Types returns all registered event types in registration order.
func (r *Registry) Types() []EventType {
	return r.schemas.Keys()
}

// Schemas returns all schemas in registration order.
func (r *Registry) Schemas() []*Schema {
	return r.schemas.Values()
}

// ListByDomain returns the schemas of a domain in registration order.
func (r *Registry) ListByDomain(d Domain) []*Schema {
	var out []*Schema
	for _, s := range r.Schemas() {
		if s.Domain == d {
			out = append(out, s)
		}
	}
	return out
}

// ListByTag returns the schemas carrying tag in registration order.
func (r *Registry) ListByTag(tag string) []*Schema {
	var out []*Schema
	for _, s := range r.Schemas() {
		if s.HasTag(tag) {
			out = append(out, s)
		}
	}
	return out
}

// Range iterates over a snapshot of the schemas in registration order.
// If fn returns false, iteration stops.
func (r *Registry) Range(fn func(*Schema) bool) {
	r.schemas.Range(func(_ EventType, s *Schema) bool {
		return fn(s)
	})
}

// DefaultRegistry holds a schema for every event type.
var DefaultRegistry = newDefaultRegistry()
