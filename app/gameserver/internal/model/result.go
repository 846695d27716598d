package model

import "github.com/lk2023060901/hollowzero/pkg/protocol"

// OpResult 管理器操作的结果：业务返回值与待下发给客户端的属性增量。
// Changes 为 nil 表示该操作没有产生需要同步的属性变化。
type OpResult[T any] struct {
	Value   T
	Changes *protocol.PlayerInfo
}

// WithChanges 构造带属性增量的结果。
func WithChanges[T any](v T, changes *protocol.PlayerInfo) OpResult[T] {
	return OpResult[T]{Value: v, Changes: changes}
}
