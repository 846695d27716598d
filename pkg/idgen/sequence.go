package idgen

import "sync/atomic"

type sequenceGenerator struct {
	cur atomic.Int64
}

// NewSequence 创建从 base 起步的单调递增生成器
// 玩家作用域内的对象 uid（道具、场景、副本）使用该生成器，
// 同一存档内保证单调且不复用。
func NewSequence(base int64) Generator {
	g := &sequenceGenerator{}
	g.cur.Store(base)
	return g
}

func (g *sequenceGenerator) NextID() (int64, error) {
	return g.cur.Add(1), nil
}
