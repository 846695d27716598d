package bytebuff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetPut(t *testing.T) {
	p := NewPool()

	buf := p.Get()
	require.NotNil(t, buf)

	buf.WriteString("hello")
	assert.Equal(t, "hello", buf.String())

	p.Put(buf)

	gets, puts := p.Stats()
	assert.Equal(t, uint64(1), gets)
	assert.Equal(t, uint64(1), puts)
}

func TestPoolPutNil(t *testing.T) {
	p := NewPool()
	p.Put(nil)

	_, puts := p.Stats()
	assert.Zero(t, puts)
}

func TestDefaultPool(t *testing.T) {
	buf := Get()
	require.NotNil(t, buf)
	buf.WriteByte(0x01)
	Put(buf)
}
