package property

import (
	"cmp"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

// Triple DKMap 差量中的一条新增记录。
type Triple[K1, K2 cmp.Ordered, V any] struct {
	Key    K1
	SubKey K2
	Value  V
}

// KeyPair DKMap 差量中的一条删除记录。
type KeyPair[K1, K2 cmp.Ordered] struct {
	Key    K1
	SubKey K2
}

// DKMap 双键哈希表，Base/Modify 双形态。
type DKMap[K1, K2 cmp.Ordered, V any] struct {
	base     map[K1]map[K2]V
	toAdd    []Triple[K1, K2, V]
	toRemove []KeyPair[K1, K2]
	modify   bool
}

// NewDKMap 创建 Base 形态的空表。
func NewDKMap[K1, K2 cmp.Ordered, V any]() *DKMap[K1, K2, V] {
	return &DKMap[K1, K2, V]{base: make(map[K1]map[K2]V)}
}

// DKMapOf 以给定三元组创建 Base 形态的表。
func DKMapOf[K1, K2 cmp.Ordered, V any](triples ...Triple[K1, K2, V]) *DKMap[K1, K2, V] {
	m := NewDKMap[K1, K2, V]()
	for _, t := range triples {
		m.Insert(t.Key, t.SubKey, t.Value)
	}
	return m
}

// DKMapModify 创建 Modify 形态的差量。
func DKMapModify[K1, K2 cmp.Ordered, V any](toAdd []Triple[K1, K2, V], toRemove []KeyPair[K1, K2]) *DKMap[K1, K2, V] {
	return &DKMap[K1, K2, V]{toAdd: toAdd, toRemove: toRemove, modify: true}
}

// IsModify 是否为 Modify 形态。
func (m *DKMap[K1, K2, V]) IsModify() bool { return m.modify }

// Insert 写入；Modify 形态追加到 to_add。
func (m *DKMap[K1, K2, V]) Insert(key K1, subKey K2, value V) {
	if m.modify {
		m.toAdd = append(m.toAdd, Triple[K1, K2, V]{key, subKey, value})
		return
	}
	inner, ok := m.base[key]
	if !ok {
		inner = make(map[K2]V)
		m.base[key] = inner
	}
	inner[subKey] = value
}

// Remove 删除；Modify 形态追加到 to_remove。
func (m *DKMap[K1, K2, V]) Remove(key K1, subKey K2) {
	if m.modify {
		m.toRemove = append(m.toRemove, KeyPair[K1, K2]{key, subKey})
		return
	}
	if inner, ok := m.base[key]; ok {
		delete(inner, subKey)
	}
}

// Get 读取；Modify 形态不支持。
func (m *DKMap[K1, K2, V]) Get(key K1, subKey K2) (V, bool) {
	if m.modify {
		panic("property: Get on Modify dkmap")
	}
	var zero V
	inner, ok := m.base[key]
	if !ok {
		return zero, false
	}
	v, ok := inner[subKey]
	return v, ok
}

// Len Base 为外层键数；Modify 为差量条目之和。
func (m *DKMap[K1, K2, V]) Len() int {
	if m.modify {
		return len(m.toAdd) + len(m.toRemove)
	}
	return len(m.base)
}

// IsEmpty 是否为空。
func (m *DKMap[K1, K2, V]) IsEmpty() bool { return m.Len() == 0 }

// Range 按双键序遍历 Base 条目。
func (m *DKMap[K1, K2, V]) Range(fn func(key K1, subKey K2, value V) bool) {
	if m.modify {
		panic("property: Range on Modify dkmap")
	}
	for _, k1 := range oct.SortedKeys(m.base) {
		inner := m.base[k1]
		for _, k2 := range oct.SortedKeys(inner) {
			if !fn(k1, k2, inner[k2]) {
				return
			}
		}
	}
}

func (m *DKMap[K1, K2, V]) entryCount() int32 {
	var n int32
	for _, inner := range m.base {
		n += int32(len(inner))
	}
	return n
}

// Marshal Base：i32 总条目数 + 三元组；Modify：负数量 + (键, 子键, 墓碑, [值])。
func (m *DKMap[K1, K2, V]) Marshal(w *oct.Writer, tag uint16) error {
	if !m.modify {
		w.WriteInt32(m.entryCount())
		var err error
		m.Range(func(k1 K1, k2 K2, v V) bool {
			if err = oct.WriteValue(w, k1, tag); err != nil {
				return false
			}
			if err = oct.WriteValue(w, k2, tag); err != nil {
				return false
			}
			err = oct.WriteValue(w, v, tag)
			return err == nil
		})
		return err
	}
	w.WriteInt32(-int32(len(m.toAdd) + len(m.toRemove)))
	for _, t := range m.toAdd {
		if err := oct.WriteValue(w, t.Key, tag); err != nil {
			return err
		}
		if err := oct.WriteValue(w, t.SubKey, tag); err != nil {
			return err
		}
		w.WriteBool(false)
		if err := oct.WriteValue(w, t.Value, tag); err != nil {
			return err
		}
	}
	for _, k := range m.toRemove {
		if err := oct.WriteValue(w, k.Key, tag); err != nil {
			return err
		}
		if err := oct.WriteValue(w, k.SubKey, tag); err != nil {
			return err
		}
		w.WriteBool(true)
	}
	return nil
}

// Unmarshal 按数量符号还原 Base 或 Modify 形态。
func (m *DKMap[K1, K2, V]) Unmarshal(r *oct.Reader, tag uint16) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n >= 0 {
		m.modify = false
		m.toAdd, m.toRemove = nil, nil
		m.base = make(map[K1]map[K2]V)
		for i := int32(0); i < n; i++ {
			k1, err := oct.ReadValueAs[K1](r, tag)
			if err != nil {
				return err
			}
			k2, err := oct.ReadValueAs[K2](r, tag)
			if err != nil {
				return err
			}
			v, err := oct.ReadValueAs[V](r, tag)
			if err != nil {
				return err
			}
			m.Insert(k1, k2, v)
		}
		return nil
	}
	m.modify = true
	m.base = nil
	m.toAdd, m.toRemove = nil, nil
	for i := int32(0); i < -n; i++ {
		k1, err := oct.ReadValueAs[K1](r, tag)
		if err != nil {
			return err
		}
		k2, err := oct.ReadValueAs[K2](r, tag)
		if err != nil {
			return err
		}
		removed, err := r.ReadBool()
		if err != nil {
			return err
		}
		if removed {
			m.toRemove = append(m.toRemove, KeyPair[K1, K2]{k1, k2})
			continue
		}
		v, err := oct.ReadValueAs[V](r, tag)
		if err != nil {
			return err
		}
		m.toAdd = append(m.toAdd, Triple[K1, K2, V]{k1, k2, v})
	}
	return nil
}
