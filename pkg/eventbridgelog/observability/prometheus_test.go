package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrometheusMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)
	require.NotNil(t, m)

	ctx := context.Background()
	m.RecordDecode(ctx, "order.created", time.Millisecond, nil)
	m.RecordEncode(ctx, "order.created", 400)
	m.RecordSettingsLoad(ctx, "env", nil)

	mfs, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, mf := range mfs {
		names[mf.GetName()] = true
	}

	assert.True(t, names["eventbridgelog_events_decoded_total"])
	assert.True(t, names["eventbridgelog_event_decode_duration_seconds"])
	assert.True(t, names["eventbridgelog_event_encoded_bytes"])
	assert.True(t, names["eventbridgelog_settings_loads_total"])
}

func TestNewPrometheusMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	_, err = NewPrometheusMetrics(reg)
	require.Error(t, err)

	var already prometheus.AlreadyRegisteredError
	assert.ErrorAs(t, err, &already)
}

func TestNewPrometheusMetrics_FailedRegistrationRollsBack(t *testing.T) {
	reg := prometheus.NewRegistry()
	blocker := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "eventbridgelog_event_encoded_bytes",
		Help: "Conflicting collector",
	})
	require.NoError(t, reg.Register(blocker))

	_, err := NewPrometheusMetrics(reg)
	require.Error(t, err)

	require.True(t, reg.Unregister(blocker))
	_, err = NewPrometheusMetrics(reg)
	require.NoError(t, err, "earlier collectors must not be left registered")
}

func TestPrometheusMetrics_Status(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewPrometheusMetrics(reg)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordDecode(ctx, "payment.failed", time.Millisecond, nil)
	m.RecordDecode(ctx, "payment.failed", time.Millisecond, errors.New("invalid"))
	m.RecordDecode(ctx, "payment.failed", time.Millisecond, errors.New("invalid"))
	m.RecordSettingsLoad(ctx, "file", errors.New("missing"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.decoded.WithLabelValues("payment.failed", "ok")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.decoded.WithLabelValues("payment.failed", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.settingsLoads.WithLabelValues("file", "error")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.decodeDuration))
}
