package errors

import (
	"fmt"
	"sort"
	"strings"
)

// FieldError describes a single offending field.
type FieldError struct {
	// Field is the snake_case field name as it appears in the mapping.
	Field string

	// Message explains what is wrong with the value.
	Message string

	// Value is the rejected input, nil when the field was missing.
	Value any

	// Err is an optional sentinel describing the failure class.
	Err error
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError reports every field that failed validation while
// building an event. A constructor that returns one never returns a value.
type ValidationError struct {
	// Model is the Go type name of the record being built.
	Model string

	// Fields lists all violations, ordered by field name.
	Fields []FieldError
}

// NewValidationError builds a ValidationError, sorting fields for stable output.
func NewValidationError(model string, fields []FieldError) *ValidationError {
	sorted := make([]FieldError, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Field < sorted[j].Field
	})
	return &ValidationError{Model: model, Fields: sorted}
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return formatFields(e.Model, "validation", e.Fields)
}

// Unwrap exposes field causes to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	var causes []error
	for _, f := range e.Fields {
		if f.Err != nil {
			causes = append(causes, f.Err)
		}
	}
	return causes
}

// Has reports whether field is among the violations.
func (e *ValidationError) Has(field string) bool {
	return hasField(e.Fields, field)
}

// FieldNames returns the names of all offending fields.
func (e *ValidationError) FieldNames() []string {
	return fieldNames(e.Fields)
}

// ConfigurationError reports invalid settings. Application behavior
// settings fail fast with this error; resource naming settings never do.
type ConfigurationError struct {
	// Section names the settings object ("app", "aws", "settings").
	Section string

	// Fields lists all violations, ordered by field name.
	Fields []FieldError

	// Err is an underlying cause such as a file read or parse failure.
	Err error
}

// NewConfigurationError builds a ConfigurationError, sorting fields for stable output.
func NewConfigurationError(section string, fields []FieldError) *ConfigurationError {
	sorted := make([]FieldError, len(fields))
	copy(sorted, fields)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Field < sorted[j].Field
	})
	return &ConfigurationError{Section: section, Fields: sorted}
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	if e.Err != nil && len(e.Fields) == 0 {
		return fmt.Sprintf("%s configuration error: %v", e.Section, e.Err)
	}
	return formatFields(e.Section, "configuration", e.Fields)
}

// Unwrap returns the underlying cause.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Has reports whether field is among the violations.
func (e *ConfigurationError) Has(field string) bool {
	return hasField(e.Fields, field)
}

// FieldNames returns the names of all offending fields.
func (e *ConfigurationError) FieldNames() []string {
	return fieldNames(e.Fields)
}

func formatFields(owner, kind string, fields []FieldError) string {
	if len(fields) == 1 {
		return fmt.Sprintf("%s: 1 %s error: %s", owner, kind, fields[0].Error())
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Error()
	}
	return fmt.Sprintf("%s: %d %s errors:\n  - %s", owner, len(fields), kind, strings.Join(parts, "\n  - "))
}

func hasField(fields []FieldError, field string) bool {
	for _, f := range fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

func fieldNames(fields []FieldError) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Field
	}
	return names
}
