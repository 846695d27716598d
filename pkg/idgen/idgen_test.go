package idgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSequenceMonotonic(t *testing.T) {
	g := NewSequence(1_000_000)

	first, err := g.NextID()
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_001), first)

	second, err := g.NextID()
	require.NoError(t, err)
	assert.Equal(t, int64(1_000_002), second)
}

func TestSonyflakeUnique(t *testing.T) {
	g, err := NewSonyflake(1)
	require.NoError(t, err)

	seen := make(map[int64]struct{})
	for i := 0; i < 100; i++ {
		id, err := g.NextID()
		require.NoError(t, err)
		_, dup := seen[id]
		require.False(t, dup)
		seen[id] = struct{}{}
	}
}
