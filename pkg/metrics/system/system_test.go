package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorStats(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	c.Start(50 * time.Millisecond)
	defer c.Stop()

	stats := c.GetStats()
	assert.Positive(t, stats.Goroutines)
	assert.False(t, stats.UpdatedAt.IsZero())
}

func TestCollectorStartIdempotent(t *testing.T) {
	c, err := New()
	require.NoError(t, err)

	c.Start(time.Second)
	c.Start(time.Second)
	c.Stop()
}
