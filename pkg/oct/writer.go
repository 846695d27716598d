package oct

import (
	"encoding/binary"
	"math"
)

// Writer 小端序编码缓冲。零值可用。
type Writer struct {
	buf []byte
}

// NewWriter 创建编码缓冲。
func NewWriter() *Writer {
	return &Writer{buf: make([]byte, 0, 256)}
}

// Bytes 返回已写入的字节。
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len 返回已写入的字节数。
func (w *Writer) Len() int {
	return len(w.buf)
}

// Reset 清空缓冲以便复用。
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

func (w *Writer) WriteUint8(v uint8) {
	w.buf = append(w.buf, v)
}

func (w *Writer) WriteInt8(v int8) {
	w.buf = append(w.buf, byte(v))
}

func (w *Writer) WriteUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) WriteInt16(v int16) {
	w.WriteUint16(uint16(v))
}

func (w *Writer) WriteUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

func (w *Writer) WriteUint64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteFloat32 按位转为 u32 编码。
func (w *Writer) WriteFloat32(v float32) {
	w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 按位转为 u64 编码。
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteString 写入 i32 长度前缀的字符串；空串写入 -1。
func (w *Writer) WriteString(s string) {
	if len(s) == 0 {
		w.WriteInt32(-1)
		return
	}
	w.WriteInt32(int32(len(s)))
	w.buf = append(w.buf, s...)
}

// WriteRaw 追加原始字节，不带任何前缀。
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}
