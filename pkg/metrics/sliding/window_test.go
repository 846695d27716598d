package sliding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowRecordAndStats(t *testing.T) {
	w, err := NewWindow(&WindowConfig{Enabled: true, WindowSize: time.Minute, BucketCount: 60})
	require.NoError(t, err)
	defer w.Stop()

	w.Record(0.01, true)
	w.Record(0.03, false)

	stats := w.GetStats()
	assert.Equal(t, int64(2), stats.TotalCount)
	assert.Equal(t, int64(1), stats.SuccessCount)
	assert.Equal(t, int64(1), stats.FailureCount)
	assert.InDelta(t, 0.02, stats.AvgLatency, 1e-9)
	assert.InDelta(t, 50.0, stats.SuccessRate, 1e-9)
	assert.InDelta(t, 0.01, stats.MinLatency, 1e-9)
	assert.InDelta(t, 0.03, stats.MaxLatency, 1e-9)
}

func TestWindowDisabled(t *testing.T) {
	w, err := NewWindow(&WindowConfig{Enabled: false, WindowSize: time.Minute, BucketCount: 60})
	require.NoError(t, err)
	defer w.Stop()

	w.Record(0.5, true)
	assert.Zero(t, w.GetStats().TotalCount)
}

func TestWindowDefaults(t *testing.T) {
	w, err := NewWindow(nil)
	require.NoError(t, err)
	defer w.Stop()

	assert.Equal(t, 60*time.Second, w.config.WindowSize)
	assert.Equal(t, 60, w.config.BucketCount)
}
