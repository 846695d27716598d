package property

import (
	"cmp"

	"github.com/lk2023060901/hollowzero/pkg/oct"
)

// Set Base/Modify 双形态集合。
type Set[T cmp.Ordered] struct {
	base     map[T]struct{}
	toAdd    []T
	toRemove []T
	modify   bool
}

// NewSet 创建 Base 形态的空集合。
func NewSet[T cmp.Ordered]() *Set[T] {
	return &Set[T]{base: make(map[T]struct{})}
}

// SetOf 以给定元素创建 Base 形态的集合。
func SetOf[T cmp.Ordered](values ...T) *Set[T] {
	s := NewSet[T]()
	for _, v := range values {
		s.base[v] = struct{}{}
	}
	return s
}

// SetModify 创建 Modify 形态的差量。
func SetModify[T cmp.Ordered](toAdd, toRemove []T) *Set[T] {
	return &Set[T]{toAdd: toAdd, toRemove: toRemove, modify: true}
}

// IsModify 是否为 Modify 形态。
func (s *Set[T]) IsModify() bool { return s.modify }

// Insert 插入元素；Modify 形态追加到 to_add。
func (s *Set[T]) Insert(v T) {
	if s.modify {
		s.toAdd = append(s.toAdd, v)
		return
	}
	s.base[v] = struct{}{}
}

// Remove 移除元素；Modify 形态追加到 to_remove。
func (s *Set[T]) Remove(v T) {
	if s.modify {
		s.toRemove = append(s.toRemove, v)
		return
	}
	delete(s.base, v)
}

// Contains 是否包含；Modify 形态恒为否。
func (s *Set[T]) Contains(v T) bool {
	if s.modify {
		return false
	}
	_, ok := s.base[v]
	return ok
}

// Len Base 为元素数；Modify 为差量条目之和。
func (s *Set[T]) Len() int {
	if s.modify {
		return len(s.toAdd) + len(s.toRemove)
	}
	return len(s.base)
}

// IsEmpty 是否为空。
func (s *Set[T]) IsEmpty() bool { return s.Len() == 0 }

// Values 返回排序后的全部元素。
func (s *Set[T]) Values() []T {
	if s.modify {
		panic("property: Values on Modify set")
	}
	return oct.SortedKeys(s.base)
}

// Marshal Base：i32 数量 + 元素；Modify：负数量 + (元素, 墓碑)。
func (s *Set[T]) Marshal(w *oct.Writer, tag uint16) error {
	if !s.modify {
		w.WriteInt32(int32(len(s.base)))
		for _, v := range oct.SortedKeys(s.base) {
			if err := oct.WriteValue(w, v, tag); err != nil {
				return err
			}
		}
		return nil
	}
	w.WriteInt32(-int32(len(s.toAdd) + len(s.toRemove)))
	for _, v := range s.toAdd {
		if err := oct.WriteValue(w, v, tag); err != nil {
			return err
		}
		w.WriteBool(false)
	}
	for _, v := range s.toRemove {
		if err := oct.WriteValue(w, v, tag); err != nil {
			return err
		}
		w.WriteBool(true)
	}
	return nil
}

// Unmarshal 按数量符号还原 Base 或 Modify 形态。
func (s *Set[T]) Unmarshal(r *oct.Reader, tag uint16) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n >= 0 {
		s.modify = false
		s.toAdd, s.toRemove = nil, nil
		s.base = make(map[T]struct{}, n)
		for i := int32(0); i < n; i++ {
			v, err := oct.ReadValueAs[T](r, tag)
			if err != nil {
				return err
			}
			s.base[v] = struct{}{}
		}
		return nil
	}
	s.modify = true
	s.base = nil
	s.toAdd, s.toRemove = nil, nil
	for i := int32(0); i < -n; i++ {
		v, err := oct.ReadValueAs[T](r, tag)
		if err != nil {
			return err
		}
		removed, err := r.ReadBool()
		if err != nil {
			return err
		}
		if removed {
			s.toRemove = append(s.toRemove, v)
		} else {
			s.toAdd = append(s.toAdd, v)
		}
	}
	return nil
}
