// Package errors defines the error kinds shared by the event schemas and
// the settings loaders.
//
// Both kinds are raised synchronously at construction and carry the full
// list of offending fields:
//   - ValidationError: an event mapping is missing fields, has wrong types,
//     or holds a value outside an enumerated set
//   - ConfigurationError: application settings are invalid
//
// Neither kind is retryable; the input must change.
package errors

import (
	"errors"
)

// Kind classifies an error produced by this module.
type Kind int

const (
	// KindUnknown is any error not produced by validation or configuration.
	KindUnknown Kind = iota

	// KindValidation marks event validation failures.
	KindValidation

	// KindConfiguration marks settings failures.
	KindConfiguration
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat indicates a settings file with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported settings format")

// KindOf determines which kind err belongs to, looking through wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}

	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return KindValidation
	}

	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return KindConfiguration
	}

	return KindUnknown
}

// IsValidation reports whether err is or wraps a ValidationError.
func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}

// IsConfiguration reports whether err is or wraps a ConfigurationError.
func IsConfiguration(err error) bool {
	return KindOf(err) == KindConfiguration
}
