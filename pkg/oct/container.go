package oct

import (
	"cmp"
	"sort"
)

// WriteList 编码切片：i32 长度 + 各元素。
func WriteList[T any](w *Writer, xs []T, tag uint16) error {
	w.WriteInt32(int32(len(xs)))
	for i := range xs {
		if err := WriteValue(w, xs[i], tag); err != nil {
			return err
		}
	}
	return nil
}

// ReadList 解码切片。负长度为历史差量格式：|n| 组 (bool 墓碑, 元素)，
// 墓碑与元素一并读取（与原始实现保持一致）。
func ReadList[T any](r *Reader, tag uint16) ([]T, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		n = -n
		xs := make([]T, 0, n)
		for i := int32(0); i < n; i++ {
			if _, err := r.ReadBool(); err != nil {
				return nil, err
			}
			v, err := ReadValueAs[T](r, tag)
			if err != nil {
				return nil, err
			}
			xs = append(xs, v)
		}
		return xs, nil
	}
	xs := make([]T, 0, n)
	for i := int32(0); i < n; i++ {
		v, err := ReadValueAs[T](r, tag)
		if err != nil {
			return nil, err
		}
		xs = append(xs, v)
	}
	return xs, nil
}

// SortedKeys 返回排序后的键切片。容器编码按键序输出，保证字节级确定性。
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// WriteHashMap 编码原生 map：i32 数量 + 键值对（按键序）。
func WriteHashMap[K cmp.Ordered, V any](w *Writer, m map[K]V, tag uint16) error {
	w.WriteInt32(int32(len(m)))
	for _, k := range SortedKeys(m) {
		if err := WriteValue(w, k, tag); err != nil {
			return err
		}
		if err := WriteValue(w, m[k], tag); err != nil {
			return err
		}
	}
	return nil
}

// ReadHashMap 解码原生 map；数量 -1 表示空。
func ReadHashMap[K cmp.Ordered, V any](r *Reader, tag uint16) (map[K]V, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return map[K]V{}, nil
	}
	m := make(map[K]V, n)
	for i := int32(0); i < n; i++ {
		k, err := ReadValueAs[K](r, tag)
		if err != nil {
			return nil, err
		}
		v, err := ReadValueAs[V](r, tag)
		if err != nil {
			return nil, err
		}
		m[k] = v
	}
	return m, nil
}

// WriteHashSet 编码原生集合：i32 数量 + 各元素（按值序）。
func WriteHashSet[T cmp.Ordered](w *Writer, s map[T]struct{}, tag uint16) error {
	w.WriteInt32(int32(len(s)))
	for _, v := range SortedKeys(s) {
		if err := WriteValue(w, v, tag); err != nil {
			return err
		}
	}
	return nil
}

// ReadHashSet 解码原生集合；数量 -1 表示空。
func ReadHashSet[T cmp.Ordered](r *Reader, tag uint16) (map[T]struct{}, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return map[T]struct{}{}, nil
	}
	s := make(map[T]struct{}, n)
	for i := int32(0); i < n; i++ {
		v, err := ReadValueAs[T](r, tag)
		if err != nil {
			return nil, err
		}
		s[v] = struct{}{}
	}
	return s, nil
}
