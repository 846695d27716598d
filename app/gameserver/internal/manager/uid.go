package manager

import (
	"time"

	"github.com/lk2023060901/hollowzero/pkg/idgen"
)

// 会话内对象 uid 从固定基准开始单调递增，登录期间不落盘。
const baseObjectUid = 1_000_000

// UidAllocator 会话级 uid 分配器，角色、场景、任务集合共用一条序列。
type UidAllocator struct {
	gen idgen.Generator
}

func NewUidAllocator() *UidAllocator {
	return &UidAllocator{gen: idgen.NewSequence(baseObjectUid)}
}

func (a *UidAllocator) Next() uint64 {
	id, _ := a.gen.NextID()
	return uint64(id)
}

func nowMs() uint64 {
	return uint64(time.Now().UnixMilli())
}
