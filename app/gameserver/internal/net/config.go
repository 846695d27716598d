package net

import (
	"fmt"
	"time"
)

// Config 网关监听配置
type Config struct {
	// 监听地址，如 "0.0.0.0:10301"
	Addr string `mapstructure:"addr" json:"addr" yaml:"addr"`

	// 网络类型，tcp/tcp4/tcp6
	Network string `mapstructure:"network" json:"network" yaml:"network"`

	// 是否启用多核
	Multicore bool `mapstructure:"multicore" json:"multicore" yaml:"multicore"`

	// 事件循环数量，0 表示使用 CPU 核心数
	NumEventLoop int `mapstructure:"num_event_loop" json:"num_event_loop" yaml:"num_event_loop"`

	// 是否启用端口复用
	ReusePort bool `mapstructure:"reuse_port" json:"reuse_port" yaml:"reuse_port"`

	// 是否启用地址复用
	ReuseAddr bool `mapstructure:"reuse_addr" json:"reuse_addr" yaml:"reuse_addr"`

	// TCP KeepAlive 间隔
	TCPKeepAlive time.Duration `mapstructure:"tcp_keep_alive" json:"tcp_keep_alive" yaml:"tcp_keep_alive"`

	// 派发协程池大小
	WorkerPoolSize int `mapstructure:"worker_pool_size" json:"worker_pool_size" yaml:"worker_pool_size"`

	// 连接号生成器的机器号
	MachineID uint16 `mapstructure:"machine_id" json:"machine_id" yaml:"machine_id"`
}

// DefaultConfig 返回默认网关配置
func DefaultConfig() *Config {
	return &Config{
		Addr:           "0.0.0.0:10301",
		Network:        "tcp",
		Multicore:      true,
		NumEventLoop:   0,
		ReusePort:      true,
		ReuseAddr:      true,
		TCPKeepAlive:   30 * time.Second,
		WorkerPoolSize: 1024,
	}
}

// Validate 验证网关配置
func (c *Config) Validate() error {
	if c == nil {
		return ErrInvalidConfig
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: addr is required", ErrInvalidConfig)
	}
	if c.Network == "" {
		c.Network = "tcp"
	}
	if c.WorkerPoolSize <= 0 {
		c.WorkerPoolSize = 1024
	}
	return nil
}
