package oct

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLittleEndianPrimitives(t *testing.T) {
	w := NewWriter()
	w.WriteUint16(0x1234)
	w.WriteUint32(0x01020304)
	w.WriteBool(true)
	w.WriteFloat32(1.0)

	assert.Equal(t, []byte{
		0x34, 0x12,
		0x04, 0x03, 0x02, 0x01,
		0x01,
		0x00, 0x00, 0x80, 0x3F,
	}, w.Bytes())
}

func TestStringEmptySentinel(t *testing.T) {
	w := NewWriter()
	w.WriteString("")
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, w.Bytes())

	s, err := NewReader(w.Bytes()).ReadString()
	require.NoError(t, err)
	assert.Equal(t, "", s)
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("abc")
	assert.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 'a', 'b', 'c'}, w.Bytes())

	s, err := NewReader(w.Bytes()).ReadString()
	require.NoError(t, err)
	assert.Equal(t, "abc", s)
}

func TestReaderUnexpectedEOF(t *testing.T) {
	_, err := NewReader([]byte{1, 2}).ReadUint32()
	assert.ErrorIs(t, err, ErrUnexpectedEOF)
}

func TestVectorTombstoneDecoding(t *testing.T) {
	// 负长度向量：|n| 组 (墓碑, 元素)，墓碑位不影响保留
	w := NewWriter()
	w.WriteInt32(-2)
	w.WriteBool(false)
	w.WriteInt32(7)
	w.WriteBool(true)
	w.WriteInt32(9)

	xs, err := ReadValueAs[[]int32](NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	assert.Equal(t, []int32{7, 9}, xs)
}

func TestWriteValueMapSortsKeys(t *testing.T) {
	w := NewWriter()
	require.NoError(t, WriteValue(w, map[uint16]int32{2: 20, 1: 10}, 0))

	assert.Equal(t, []byte{
		0x02, 0x00, 0x00, 0x00,
		0x01, 0x00, 0x0A, 0x00, 0x00, 0x00,
		0x02, 0x00, 0x14, 0x00, 0x00, 0x00,
	}, w.Bytes())
}

func TestHashMapRoundTrip(t *testing.T) {
	in := map[int32]uint64{5: 50, 3: 30}
	w := NewWriter()
	require.NoError(t, WriteHashMap(w, in, 0))

	out, err := ReadHashMap[int32, uint64](NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestHashSetRoundTrip(t *testing.T) {
	in := map[uint8]struct{}{4: {}, 2: {}}
	w := NewWriter()
	require.NoError(t, WriteHashSet(w, in, 0))

	out, err := ReadHashSet[uint8](NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestListRoundTrip(t *testing.T) {
	in := []string{"x", "", "yz"}
	w := NewWriter()
	require.NoError(t, WriteList(w, in, 0))

	out, err := ReadList[string](NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
