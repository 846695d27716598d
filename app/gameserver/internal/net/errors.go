package net

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidConfig 配置非法
	ErrInvalidConfig = errors.New("net: invalid config")

	// ErrSessionClosed 会话已关闭
	ErrSessionClosed = errors.New("net: session closed")
)
