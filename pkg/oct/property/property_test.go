package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

func TestMapBaseEncoding(t *testing.T) {
	m := MapOf(Pair[uint16, int32]{2, 20}, Pair[uint16, int32]{1, 10})

	w := oct.NewWriter()
	require.NoError(t, m.Marshal(w, 0))

	// 数量 + 按键序排列的键值对
	assert.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x0A, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x14, 0x00, 0x00, 0x00,
	}, w.Bytes())
}

func TestMapModifyEncoding(t *testing.T) {
	m := MapModify([]Pair[uint16, int32]{{1, 10}}, []uint16{9})

	w := oct.NewWriter()
	require.NoError(t, m.Marshal(w, 0))

	// 负数量；新增带 false 墓碑与值，删除带 true 墓碑
	assert.Equal(t, []byte{
		0xFE, 0xFF, 0xFF, 0xFF, // -2
		0x01, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00,
		0x09, 0x00, 0x01,
	}, w.Bytes())
}

func TestMapModifyReadsPanic(t *testing.T) {
	m := MapModify([]Pair[uint16, int32]{{1, 10}}, nil)

	v, ok := m.Get(1)
	assert.False(t, ok)
	assert.Zero(t, v)

	assert.Panics(t, func() { m.Range(func(uint16, int32) bool { return true }) })
	assert.Panics(t, func() { m.Keys() })
}

func TestMapLen(t *testing.T) {
	assert.Equal(t, 2, MapOf(Pair[uint16, int32]{1, 10}, Pair[uint16, int32]{2, 20}).Len())
	assert.Equal(t, 3, MapModify([]Pair[uint16, int32]{{1, 10}, {2, 20}}, []uint16{3}).Len())
	assert.True(t, NewMap[uint16, int32]().IsEmpty())
}

func TestMapUnmarshalRestoresForm(t *testing.T) {
	base := MapOf(Pair[uint32, uint64]{7, 70})
	w := oct.NewWriter()
	require.NoError(t, base.Marshal(w, 0))

	var got Map[uint32, uint64]
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.False(t, got.IsModify())
	v, ok := got.Get(7)
	require.True(t, ok)
	assert.Equal(t, uint64(70), v)

	mod := MapModify([]Pair[uint32, uint64]{{1, 11}}, []uint32{2})
	w.Reset()
	require.NoError(t, mod.Marshal(w, 0))

	var got2 Map[uint32, uint64]
	require.NoError(t, got2.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.True(t, got2.IsModify())
	assert.Equal(t, 2, got2.Len())
}

func TestSetBaseEncoding(t *testing.T) {
	s := SetOf[uint16](3, 1)

	w := oct.NewWriter()
	require.NoError(t, s.Marshal(w, 0))

	assert.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00,
		0x03, 0x00,
	}, w.Bytes())
}

func TestSetModifyRoundTrip(t *testing.T) {
	s := SetModify([]uint16{5}, []uint16{6})

	w := oct.NewWriter()
	require.NoError(t, s.Marshal(w, 0))
	assert.Equal(t, []byte{
		0xFE, 0xFF, 0xFF, 0xFF,
		0x05, 0x00, 0x00,
		0x06, 0x00, 0x01,
	}, w.Bytes())

	var got Set[uint16]
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.True(t, got.IsModify())
	assert.Equal(t, 2, got.Len())
}

func TestSetContains(t *testing.T) {
	s := SetOf[uint32](1, 2)
	assert.True(t, s.Contains(2))
	assert.False(t, s.Contains(3))

	assert.False(t, SetModify([]uint32{1}, nil).Contains(1))
}

func TestDKMapBaseEncoding(t *testing.T) {
	m := DKMapOf(
		Triple[uint16, uint16, int32]{2, 1, 21},
		Triple[uint16, uint16, int32]{1, 2, 12},
		Triple[uint16, uint16, int32]{1, 1, 11},
	)

	w := oct.NewWriter()
	require.NoError(t, m.Marshal(w, 0))

	// 总条目数 + 按 (主键, 子键) 排序的三元组
	assert.Equal(t, []byte{
		0x03, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x01, 0x00, 0x0B, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x02, 0x00, 0x0C, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x01, 0x00, 0x15, 0x00, 0x00, 0x00,
	}, w.Bytes())
}

func TestDKMapModifyRoundTrip(t *testing.T) {
	m := DKMapModify(
		[]Triple[uint16, uint16, int32]{{1, 1, 11}},
		[]KeyPair[uint16, uint16]{{2, 2}},
	)

	w := oct.NewWriter()
	require.NoError(t, m.Marshal(w, 0))
	assert.Equal(t, []byte{
		0xFE, 0xFF, 0xFF, 0xFF,
		0x01, 0x00, 0x01, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x02, 0x00, 0x01,
	}, w.Bytes())

	var got DKMap[uint16, uint16, int32]
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.True(t, got.IsModify())
	assert.Equal(t, 2, got.Len())
}

func TestDKMapGet(t *testing.T) {
	m := DKMapOf(Triple[uint16, uint16, int32]{1, 2, 12})

	v, ok := m.Get(1, 2)
	require.True(t, ok)
	assert.Equal(t, int32(12), v)

	_, ok = m.Get(1, 3)
	assert.False(t, ok)

	_, ok = DKMapModify[uint16, uint16, int32](nil, nil).Get(1, 2)
	assert.False(t, ok)
}
