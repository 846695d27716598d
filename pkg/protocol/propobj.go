// Package protocol 定义客户端协议的全部数据结构与编解码规则。
//
// 三类编码框架：
//   - 普通结构体：tag 为 0 时先写 u16 字段数，随后按声明序写各字段；
//   - 包结构体（Rpc*/Ptc*）：不写字段数，直接写字段；
//   - 属性对象：写 u16 有效字段数，随后写 (u16 字段标签, 载荷) 对，
//     根对象（AccountInfo/PlayerInfo）额外为每个字段加 u32 长度前缀。
package protocol

import (
	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

// 属性对象标记值，根对象编码前强制 bt_property_tag 为该值。
const clientPropFlag uint16 = 0x01

var (
	// ErrFieldCount 字段数与声明不符。
	ErrFieldCount = errors.New("protocol: unexpected field count")
	// ErrUnknownTag 属性对象中出现未声明的字段标签。
	ErrUnknownTag = errors.New("protocol: unknown property tag")
	// ErrUnknownDiscriminant 多态记录出现未声明的判别值。
	ErrUnknownDiscriminant = errors.New("protocol: unknown discriminant")
	// ErrBadMarker 属性对象标记值不符。
	ErrBadMarker = errors.New("protocol: bad property object marker")
)

// writeFieldCount 普通结构体的字段数前缀。
func writeFieldCount(w *oct.Writer, tag uint16, n uint16) {
	if tag == 0 {
		w.WriteUint16(n)
	}
}

// readFieldCount 校验普通结构体的字段数前缀。
func readFieldCount(r *oct.Reader, tag uint16, n uint16) error {
	if tag != 0 {
		return nil
	}
	got, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if got != n {
		return errors.Wrapf(ErrFieldCount, "want %d got %d", n, got)
	}
	return nil
}

// writeSeq 按声明序编码一组字段。
func writeSeq(w *oct.Writer, tag uint16, fields ...any) error {
	for _, f := range fields {
		if err := oct.WriteValue(w, f, tag); err != nil {
			return err
		}
	}
	return nil
}

// readSeq 按声明序解码到一组字段指针。
func readSeq(r *oct.Reader, tag uint16, fields ...any) error {
	for _, f := range fields {
		if err := oct.ReadInto(r, tag, f); err != nil {
			return err
		}
	}
	return nil
}

// marshalStruct 普通结构体编码：字段数前缀 + 字段序列。
func marshalStruct(w *oct.Writer, tag uint16, n uint16, fields ...any) error {
	writeFieldCount(w, tag, n)
	return writeSeq(w, tag, fields...)
}

// unmarshalStruct 普通结构体解码。
func unmarshalStruct(r *oct.Reader, tag uint16, n uint16, fields ...any) error {
	if err := readFieldCount(r, tag, n); err != nil {
		return err
	}
	return readSeq(r, tag, fields...)
}

// propField 属性对象的一个可选字段。skip 字段只上报标签不携带载荷。
type propField struct {
	tag     uint16
	skip    bool
	marker  bool
	present func() bool
	enc     func(w *oct.Writer, tag uint16) error
	dec     func(r *oct.Reader, tag uint16) error
}

func (f propField) skipped() propField { f.skip = true; return f }
func (f propField) marked() propField  { f.marker = true; return f }

// propObject 属性对象描述符。root 为真时按根对象框架编码。
type propObject struct {
	root      bool
	tagged    bool
	numFields uint16
	fields    []propField
}

func (o *propObject) marshal(w *oct.Writer, tag uint16) error {
	if o.tagged {
		tag = clientPropFlag
		w.WriteUint16(clientPropFlag)
	} else if tag == 0 {
		w.WriteUint16(o.numFields)
	}
	var n uint16
	for i := range o.fields {
		if o.fields[i].present() {
			n++
		}
	}
	w.WriteUint16(n)
	for i := range o.fields {
		f := &o.fields[i]
		if !f.present() {
			continue
		}
		w.WriteUint16(f.tag)
		switch {
		case f.skip && o.root:
			w.WriteUint32(0)
		case f.skip:
		case o.root:
			sw := oct.NewWriter()
			if f.marker {
				sw.WriteUint8(uint8(clientPropFlag))
			}
			if err := f.enc(sw, tag); err != nil {
				return err
			}
			w.WriteUint32(uint32(sw.Len()))
			w.WriteRaw(sw.Bytes())
		default:
			if f.marker {
				w.WriteUint8(uint8(clientPropFlag))
			}
			if err := f.enc(w, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *propObject) unmarshal(r *oct.Reader, tag uint16) error {
	if o.tagged {
		tag = clientPropFlag
		m, err := r.ReadUint16()
		if err != nil {
			return err
		}
		if m != clientPropFlag {
			return errors.Wrapf(ErrBadMarker, "want %#x got %#x", clientPropFlag, m)
		}
	} else if tag == 0 {
		if err := readFieldCount(r, 0, o.numFields); err != nil {
			return err
		}
	}
	n, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if n > o.numFields {
		return errors.Wrapf(ErrFieldCount, "at most %d fields, got %d", o.numFields, n)
	}
	for i := uint16(0); i < n; i++ {
		ft, err := r.ReadUint16()
		if err != nil {
			return err
		}
		f := o.lookup(ft)
		if f == nil {
			return errors.Wrapf(ErrUnknownTag, "tag %d", ft)
		}
		switch {
		case f.skip && o.root:
			if _, err := r.ReadUint32(); err != nil {
				return err
			}
		case f.skip:
		case o.root:
			l, err := r.ReadUint32()
			if err != nil {
				return err
			}
			raw, err := r.ReadRaw(int(l))
			if err != nil {
				return err
			}
			sub := oct.NewReader(raw)
			if f.marker {
				m, err := sub.ReadUint8()
				if err != nil {
					return err
				}
				if m != uint8(clientPropFlag) {
					return errors.Wrapf(ErrBadMarker, "field %d marker %#x", ft, m)
				}
			}
			if err := f.dec(sub, tag); err != nil {
				return err
			}
		default:
			if f.marker {
				m, err := r.ReadUint8()
				if err != nil {
					return err
				}
				if m != uint8(clientPropFlag) {
					return errors.Wrapf(ErrBadMarker, "field %d marker %#x", ft, m)
				}
			}
			if err := f.dec(r, tag); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *propObject) lookup(tag uint16) *propField {
	for i := range o.fields {
		if o.fields[i].tag == tag {
			return &o.fields[i]
		}
	}
	return nil
}

// scalarField 可选标量/值类型字段（Option<T> 对应 *T）。
func scalarField[T any](tag uint16, p **T) propField {
	return propField{
		tag:     tag,
		present: func() bool { return *p != nil },
		enc: func(w *oct.Writer, t uint16) error {
			return oct.WriteValue(w, **p, t)
		},
		dec: func(r *oct.Reader, t uint16) error {
			v, err := oct.ReadValueAs[T](r, t)
			if err != nil {
				return err
			}
			*p = &v
			return nil
		},
	}
}

// dataField 可选嵌套对象字段（Option<T> 对应 *T，*T 实现 oct.Data）。
func dataField[T any, PT interface {
	*T
	oct.Data
}](tag uint16, p *PT) propField {
	return propField{
		tag:     tag,
		present: func() bool { return *p != nil },
		enc: func(w *oct.Writer, t uint16) error {
			return (*p).Marshal(w, t)
		},
		dec: func(r *oct.Reader, t uint16) error {
			v := PT(new(T))
			if err := v.Unmarshal(r, t); err != nil {
				return err
			}
			*p = v
			return nil
		},
	}
}

// listField 可选列表字段，nil 视为 None。
func listField[T any](tag uint16, p *[]T) propField {
	return propField{
		tag:     tag,
		present: func() bool { return *p != nil },
		enc: func(w *oct.Writer, t uint16) error {
			return oct.WriteList(w, *p, t)
		},
		dec: func(r *oct.Reader, t uint16) error {
			v, err := oct.ReadList[T](r, t)
			if err != nil {
				return err
			}
			if v == nil {
				v = []T{}
			}
			*p = v
			return nil
		},
	}
}

// Ptr 取值指针，用于填充属性对象的可选标量字段。
func Ptr[T any](v T) *T { return &v }
