package config

import "github.com/cockroachdb/errors"

var (
	// ErrConfigFileNotFound 配置文件未找到
	ErrConfigFileNotFound = errors.New("config file not found")

	// ErrInvalidConfigFormat 配置格式无效
	ErrInvalidConfigFormat = errors.New("invalid config format")

	// ErrKeyNotFound 配置键不存在
	ErrKeyNotFound = errors.New("config key not found")
)
