package oct

import (
	"encoding/binary"
	"math"

	"github.com/cockroachdb/errors"
)

// Reader 小端序解码游标。
type Reader struct {
	buf []byte
	off int
}

// NewReader 在给定字节上创建解码游标。
func NewReader(b []byte) *Reader {
	return &Reader{buf: b}
}

// Remaining 返回未读字节数。
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Skip 跳过 n 字节。
func (r *Reader) Skip(n int) error {
	if n < 0 {
		return ErrNegativeLength
	}
	if r.Remaining() < n {
		return errors.Wrapf(ErrUnexpectedEOF, "skip %d bytes, %d remaining", n, r.Remaining())
	}
	r.off += n
	return nil
}

func (r *Reader) take(n int) ([]byte, error) {
	if r.Remaining() < n {
		return nil, errors.Wrapf(ErrUnexpectedEOF, "need %d bytes, %d remaining", n, r.Remaining())
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.take(1)
	if err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (r *Reader) ReadUint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadInt8() (int8, error) {
	v, err := r.ReadUint8()
	return int8(v), err
}

func (r *Reader) ReadUint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

func (r *Reader) ReadUint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *Reader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

func (r *Reader) ReadUint64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *Reader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

func (r *Reader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	return math.Float32frombits(v), err
}

func (r *Reader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadString 读取 i32 长度前缀的字符串；-1 表示空串。
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n == -1 {
		return "", nil
	}
	if n < 0 {
		return "", errors.Wrapf(ErrNegativeLength, "string length %d", n)
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadRaw 读取 n 个原始字节。
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
