// Package property 实现带差量形态的属性容器。
//
// 每个容器有 Base 与 Modify 两种形态：Base 持有真实数据，Modify 仅携带
// to_add/to_remove 差量，用于拼装下发给客户端的 PlayerInfoChanged 补丁。
// Modify 形态不支持读取与遍历，误用视为编程错误并直接 panic。
package property

import (
	"cmp"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

// Pair Map 差量中的一条新增记录。
type Pair[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// Map Base/Modify 双形态哈希表。
type Map[K cmp.Ordered, V any] struct {
	base     map[K]V
	toAdd    []Pair[K, V]
	toRemove []K
	modify   bool
}

// NewMap 创建 Base 形态的空表。
func NewMap[K cmp.Ordered, V any]() *Map[K, V] {
	return &Map[K, V]{base: make(map[K]V)}
}

// MapOf 以给定键值对创建 Base 形态的表。
func MapOf[K cmp.Ordered, V any](pairs ...Pair[K, V]) *Map[K, V] {
	m := NewMap[K, V]()
	for _, p := range pairs {
		m.base[p.Key] = p.Value
	}
	return m
}

// MapModify 创建 Modify 形态的差量。
func MapModify[K cmp.Ordered, V any](toAdd []Pair[K, V], toRemove []K) *Map[K, V] {
	return &Map[K, V]{toAdd: toAdd, toRemove: toRemove, modify: true}
}

// IsModify 是否为 Modify 形态。
func (m *Map[K, V]) IsModify() bool { return m.modify }

// Insert 写入键值；Modify 形态追加到 to_add。
func (m *Map[K, V]) Insert(key K, value V) {
	if m.modify {
		m.toAdd = append(m.toAdd, Pair[K, V]{key, value})
		return
	}
	m.base[key] = value
}

// Remove 删除键；Modify 形态追加到 to_remove。
func (m *Map[K, V]) Remove(key K) {
	if m.modify {
		m.toRemove = append(m.toRemove, key)
		return
	}
	delete(m.base, key)
}

// Get 读取键值；Modify 形态恒返回未命中。
func (m *Map[K, V]) Get(key K) (V, bool) {
	if m.modify {
		var zero V
		return zero, false
	}
	v, ok := m.base[key]
	return v, ok
}

// Len Base 为条目数；Modify 为 to_add 与 to_remove 之和。
func (m *Map[K, V]) Len() int {
	if m.modify {
		return len(m.toAdd) + len(m.toRemove)
	}
	return len(m.base)
}

// IsEmpty 是否为空。
func (m *Map[K, V]) IsEmpty() bool { return m.Len() == 0 }

// Range 按键序遍历 Base 条目。
func (m *Map[K, V]) Range(fn func(key K, value V) bool) {
	if m.modify {
		panic("property: Range on Modify map")
	}
	for _, k := range oct.SortedKeys(m.base) {
		if !fn(k, m.base[k]) {
			return
		}
	}
}

// Keys 返回排序后的全部键。
func (m *Map[K, V]) Keys() []K {
	if m.modify {
		panic("property: Keys on Modify map")
	}
	return oct.SortedKeys(m.base)
}

// Marshal Base：i32 数量 + 键值对；Modify：负数量 + (键, 墓碑, [值])。
func (m *Map[K, V]) Marshal(w *oct.Writer, tag uint16) error {
	if !m.modify {
		w.WriteInt32(int32(len(m.base)))
		for _, k := range oct.SortedKeys(m.base) {
			if err := oct.WriteValue(w, k, tag); err != nil {
				return err
			}
			if err := oct.WriteValue(w, m.base[k], tag); err != nil {
				return err
			}
		}
		return nil
	}
	w.WriteInt32(-int32(len(m.toAdd) + len(m.toRemove)))
	for _, p := range m.toAdd {
		if err := oct.WriteValue(w, p.Key, tag); err != nil {
			return err
		}
		w.WriteBool(false)
		if err := oct.WriteValue(w, p.Value, tag); err != nil {
			return err
		}
	}
	for _, k := range m.toRemove {
		if err := oct.WriteValue(w, k, tag); err != nil {
			return err
		}
		w.WriteBool(true)
	}
	return nil
}

// Unmarshal 按数量符号还原 Base 或 Modify 形态。
func (m *Map[K, V]) Unmarshal(r *oct.Reader, tag uint16) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n >= 0 {
		m.modify = false
		m.toAdd, m.toRemove = nil, nil
		m.base = make(map[K]V, n)
		for i := int32(0); i < n; i++ {
			k, err := oct.ReadValueAs[K](r, tag)
			if err != nil {
				return err
			}
			v, err := oct.ReadValueAs[V](r, tag)
			if err != nil {
				return err
			}
			m.base[k] = v
		}
		return nil
	}
	m.modify = true
	m.base = nil
	m.toAdd, m.toRemove = nil, nil
	for i := int32(0); i < -n; i++ {
		k, err := oct.ReadValueAs[K](r, tag)
		if err != nil {
			return err
		}
		removed, err := r.ReadBool()
		if err != nil {
			return err
		}
		if removed {
			m.toRemove = append(m.toRemove, k)
			continue
		}
		v, err := oct.ReadValueAs[V](r, tag)
		if err != nil {
			return err
		}
		m.toAdd = append(m.toAdd, Pair[K, V]{k, v})
	}
	return nil
}
