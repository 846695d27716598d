package oct

import (
	"reflect"
	"sort"
	"sync"

	"github.com/cockroachdb/errors"
)

// 多态接口（如 ItemInfo）无法从零值解码，由上层注册判别器驱动的解码函数。
var (
	ifaceDecMu   sync.RWMutex
	ifaceDecoder = make(map[reflect.Type]func(*Reader, uint16) (any, error))
)

// RegisterInterfaceDecoder 注册接口类型 T 的解码函数。
// 容器元素为接口类型时，泛型解码会通过该注册表分派。
func RegisterInterfaceDecoder[T any](dec func(*Reader, uint16) (T, error)) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	ifaceDecMu.Lock()
	defer ifaceDecMu.Unlock()
	ifaceDecoder[t] = func(r *Reader, tag uint16) (any, error) {
		return dec(r, tag)
	}
}

// WriteValue 编码任意受支持的值：原生类型、字符串、命名枚举、切片、
// 原生 map/set、实现 Data 的结构体或接口值。
func WriteValue(w *Writer, v any, tag uint16) error {
	if v == nil {
		return errors.Wrap(ErrUnsupportedType, "write nil value")
	}
	switch x := v.(type) {
	case bool:
		w.WriteBool(x)
		return nil
	case uint8:
		w.WriteUint8(x)
		return nil
	case int8:
		w.WriteInt8(x)
		return nil
	case uint16:
		w.WriteUint16(x)
		return nil
	case int16:
		w.WriteInt16(x)
		return nil
	case uint32:
		w.WriteUint32(x)
		return nil
	case int32:
		w.WriteInt32(x)
		return nil
	case uint64:
		w.WriteUint64(x)
		return nil
	case int64:
		w.WriteInt64(x)
		return nil
	case float32:
		w.WriteFloat32(x)
		return nil
	case float64:
		w.WriteFloat64(x)
		return nil
	case string:
		w.WriteString(x)
		return nil
	case Data:
		return x.Marshal(w, tag)
	}
	return writeReflect(w, reflect.ValueOf(v), tag)
}

func writeReflect(w *Writer, rv reflect.Value, tag uint16) error {
	switch rv.Kind() {
	case reflect.Bool:
		w.WriteBool(rv.Bool())
		return nil
	case reflect.Int8:
		w.WriteInt8(int8(rv.Int()))
		return nil
	case reflect.Int16:
		w.WriteInt16(int16(rv.Int()))
		return nil
	case reflect.Int32:
		w.WriteInt32(int32(rv.Int()))
		return nil
	case reflect.Int64, reflect.Int:
		w.WriteInt64(rv.Int())
		return nil
	case reflect.Uint8:
		w.WriteUint8(uint8(rv.Uint()))
		return nil
	case reflect.Uint16:
		w.WriteUint16(uint16(rv.Uint()))
		return nil
	case reflect.Uint32:
		w.WriteUint32(uint32(rv.Uint()))
		return nil
	case reflect.Uint64, reflect.Uint:
		w.WriteUint64(rv.Uint())
		return nil
	case reflect.Float32:
		w.WriteFloat32(float32(rv.Float()))
		return nil
	case reflect.Float64:
		w.WriteFloat64(rv.Float())
		return nil
	case reflect.String:
		w.WriteString(rv.String())
		return nil
	case reflect.Slice:
		w.WriteInt32(int32(rv.Len()))
		for i := 0; i < rv.Len(); i++ {
			if err := WriteValue(w, rv.Index(i).Interface(), tag); err != nil {
				return err
			}
		}
		return nil
	case reflect.Map:
		return writeReflectMap(w, rv, tag)
	case reflect.Ptr:
		if d, ok := rv.Interface().(Data); ok {
			return d.Marshal(w, tag)
		}
	case reflect.Struct:
		// 值类型结构体：取可寻址副本后走 Data 接口
		pv := reflect.New(rv.Type())
		pv.Elem().Set(rv)
		if d, ok := pv.Interface().(Data); ok {
			return d.Marshal(w, tag)
		}
	}
	return errors.Wrapf(ErrUnsupportedType, "write %s", rv.Type())
}

// 原生 map 按键序输出；值为 struct{} 时按集合编码（仅键）。
func writeReflectMap(w *Writer, rv reflect.Value, tag uint16) error {
	keys := rv.MapKeys()
	sort.Slice(keys, func(i, j int) bool { return reflectKeyLess(keys[i], keys[j]) })
	w.WriteInt32(int32(len(keys)))
	isSet := rv.Type().Elem() == reflect.TypeOf(struct{}{})
	for _, k := range keys {
		if err := WriteValue(w, k.Interface(), tag); err != nil {
			return err
		}
		if isSet {
			continue
		}
		if err := WriteValue(w, rv.MapIndex(k).Interface(), tag); err != nil {
			return err
		}
	}
	return nil
}

func reflectKeyLess(a, b reflect.Value) bool {
	switch a.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	case reflect.String:
		return a.String() < b.String()
	}
	return false
}

// ReadValueAs 解码 T 类型的值，与 WriteValue 对偶。
func ReadValueAs[T any](r *Reader, tag uint16) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		b, err := r.ReadBool()
		*p = b
		return v, err
	case *uint8:
		x, err := r.ReadUint8()
		*p = x
		return v, err
	case *int8:
		x, err := r.ReadInt8()
		*p = x
		return v, err
	case *uint16:
		x, err := r.ReadUint16()
		*p = x
		return v, err
	case *int16:
		x, err := r.ReadInt16()
		*p = x
		return v, err
	case *uint32:
		x, err := r.ReadUint32()
		*p = x
		return v, err
	case *int32:
		x, err := r.ReadInt32()
		*p = x
		return v, err
	case *uint64:
		x, err := r.ReadUint64()
		*p = x
		return v, err
	case *int64:
		x, err := r.ReadInt64()
		*p = x
		return v, err
	case *float32:
		x, err := r.ReadFloat32()
		*p = x
		return v, err
	case *float64:
		x, err := r.ReadFloat64()
		*p = x
		return v, err
	case *string:
		x, err := r.ReadString()
		*p = x
		return v, err
	}

	// 指向结构体的 *T 实现 Data（结构体值元素）
	if d, ok := any(&v).(Data); ok {
		err := d.Unmarshal(r, tag)
		return v, err
	}

	rv, err := readReflect(r, reflect.TypeOf(&v).Elem(), tag)
	if err != nil {
		return v, err
	}
	return rv.Interface().(T), nil
}

// ReadInto 解码下一个值并写入 p 指向的位置，与 WriteValue 对偶。
func ReadInto(r *Reader, tag uint16, p any) error {
	if d, ok := p.(Data); ok {
		return d.Unmarshal(r, tag)
	}
	rv := reflect.ValueOf(p)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return errors.Wrap(ErrUnsupportedType, "read target must be a non-nil pointer")
	}
	v, err := readReflect(r, rv.Type().Elem(), tag)
	if err != nil {
		return err
	}
	rv.Elem().Set(v)
	return nil
}

func readReflect(r *Reader, t reflect.Type, tag uint16) (reflect.Value, error) {
	switch t.Kind() {
	case reflect.Bool:
		x, err := r.ReadBool()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Int8:
		x, err := r.ReadInt8()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Int16:
		x, err := r.ReadInt16()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Int32:
		x, err := r.ReadInt32()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Int64, reflect.Int:
		x, err := r.ReadInt64()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Uint8:
		x, err := r.ReadUint8()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Uint16:
		x, err := r.ReadUint16()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Uint32:
		x, err := r.ReadUint32()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Uint64, reflect.Uint:
		x, err := r.ReadUint64()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Float32:
		x, err := r.ReadFloat32()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Float64:
		x, err := r.ReadFloat64()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.String:
		x, err := r.ReadString()
		return reflect.ValueOf(x).Convert(t), err
	case reflect.Slice:
		return readReflectSlice(r, t, tag)
	case reflect.Map:
		return readReflectMap(r, t, tag)
	case reflect.Ptr:
		pv := reflect.New(t.Elem())
		if d, ok := pv.Interface().(Data); ok {
			if err := d.Unmarshal(r, tag); err != nil {
				return reflect.Value{}, err
			}
			return pv, nil
		}
	case reflect.Struct:
		pv := reflect.New(t)
		if d, ok := pv.Interface().(Data); ok {
			if err := d.Unmarshal(r, tag); err != nil {
				return reflect.Value{}, err
			}
			return pv.Elem(), nil
		}
	case reflect.Interface:
		ifaceDecMu.RLock()
		dec, ok := ifaceDecoder[t]
		ifaceDecMu.RUnlock()
		if ok {
			x, err := dec(r, tag)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(x), nil
		}
	}
	return reflect.Value{}, errors.Wrapf(ErrUnsupportedType, "read %s", t)
}

// 负长度为历史差量格式：|n| 组 (bool 墓碑, 元素)，墓碑读取后元素一并保留。
func readReflectSlice(r *Reader, t reflect.Type, tag uint16) (reflect.Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	tombstone := n < 0
	if tombstone {
		n = -n
	}
	out := reflect.MakeSlice(t, 0, int(n))
	for i := int32(0); i < n; i++ {
		if tombstone {
			if _, err := r.ReadBool(); err != nil {
				return reflect.Value{}, err
			}
		}
		ev, err := readReflect(r, t.Elem(), tag)
		if err != nil {
			return reflect.Value{}, err
		}
		out = reflect.Append(out, ev)
	}
	return out, nil
}

func readReflectMap(r *Reader, t reflect.Type, tag uint16) (reflect.Value, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return reflect.Value{}, err
	}
	if n < 0 {
		n = 0
	}
	out := reflect.MakeMapWithSize(t, int(n))
	isSet := t.Elem() == reflect.TypeOf(struct{}{})
	for i := int32(0); i < n; i++ {
		kv, err := readReflect(r, t.Key(), tag)
		if err != nil {
			return reflect.Value{}, err
		}
		if isSet {
			out.SetMapIndex(kv, reflect.ValueOf(struct{}{}))
			continue
		}
		vv, err := readReflect(r, t.Elem(), tag)
		if err != nil {
			return reflect.Value{}, err
		}
		out.SetMapIndex(kv, vv)
	}
	return out, nil
}
