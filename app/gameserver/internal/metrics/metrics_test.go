package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsLifecycle(t *testing.T) {
	m, err := New(DefaultConfig())
	require.NoError(t, err)
	defer m.Stop()

	registry := prometheus.NewRegistry()
	require.NoError(t, m.Register(registry))

	m.RecordSessionOpen()
	m.RecordSessionOpen()
	m.RecordSessionClose()
	m.RecordPacket(101, true, 0.001)
	m.RecordPacket(107, false, 0.2)

	stats := m.Stats()
	assert.Equal(t, int64(1), stats.OnlineSessions)
	assert.Equal(t, int64(2), stats.TotalPackets)
	assert.Equal(t, int64(1), stats.FailedPackets)

	families, err := registry.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestMetricsNilConfigDefaults(t *testing.T) {
	m, err := New(nil)
	require.NoError(t, err)
	defer m.Stop()

	assert.Equal(t, "gameserver", m.config.Namespace)
}
