package event_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	eberrors "github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/errors"
	"github.com/randalmurphal/eventbridgelog/pkg/eventbridgelog/event"
)

// example returns a copy of the registered example payload for t.
func example(t *testing.T, et event.EventType) event.Fields {
	t.Helper()
	s, ok := event.DefaultRegistry.Get(et)
	require.True(t, ok, "no schema for %s", et)
	return s.Example.Clone()
}

// without returns a copy of f minus keys.
func without(f event.Fields, keys ...string) event.Fields {
	out := f.Clone()
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

// requireValidationError asserts err is a ValidationError and returns it.
func requireValidationError(t *testing.T, err error) *eberrors.ValidationError {
	t.Helper()
	require.Error(t, err)
	var valErr *eberrors.ValidationError
	require.True(t, errors.As(err, &valErr), "expected ValidationError, got %T: %v", err, err)
	return valErr
}

// requireSameEvent compares two events through their canonical JSON.
func requireSameEvent(t *testing.T, want, got event.Event) {
	t.Helper()
	wantJSON, err := event.ToJSON(want)
	require.NoError(t, err)
	gotJSON, err := event.ToJSON(got)
	require.NoError(t, err)
	require.JSONEq(t, string(wantJSON), string(gotJSON))
	require.Equal(t, string(wantJSON), string(gotJSON))
}
