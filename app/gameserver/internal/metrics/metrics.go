package metrics

import (
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lk2023060901/hollowzero/pkg/metrics/sliding"
	"github.com/lk2023060901/hollowzero/pkg/metrics/system"
)

// Config 指标配置
type Config struct {
	// Namespace 指标命名空间
	Namespace string `mapstructure:"namespace" json:"namespace" yaml:"namespace"`
	// System 系统指标采集间隔
	SystemCollectInterval time.Duration `mapstructure:"system_collect_interval" json:"system_collect_interval" yaml:"system_collect_interval"`
	// SlidingWindow 滑动窗口配置
	SlidingWindow sliding.WindowConfig `mapstructure:"sliding_window" json:"sliding_window" yaml:"sliding_window"`
}

// DefaultConfig 默认配置
func DefaultConfig() *Config {
	return &Config{
		Namespace:             "gameserver",
		SystemCollectInterval: 5 * time.Second,
		SlidingWindow:         *sliding.DefaultWindowConfig(),
	}
}

// ServerMetrics 游戏服指标
type ServerMetrics struct {
	config *Config

	// 会话指标
	OnlineSessions prometheus.Gauge   // 当前在线会话数
	SessionsTotal  prometheus.Counter // 累计接入会话数

	// 包指标
	PacketTotal    *prometheus.CounterVec   // 包处理总数（按协议号、结果）
	PacketDuration *prometheus.HistogramVec // 包处理延迟

	// 内部统计
	onlineCount   atomic.Int64
	totalPackets  atomic.Int64
	failedPackets atomic.Int64

	// 系统指标收集器
	systemCollector *system.Collector
	// 滑动窗口统计（QPS/延迟）
	slidingWindow *sliding.Window
}

// New 创建游戏服指标
func New(cfg *Config) (*ServerMetrics, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "gameserver"
	}
	if cfg.SystemCollectInterval <= 0 {
		cfg.SystemCollectInterval = 5 * time.Second
	}
	if cfg.SlidingWindow.WindowSize == 0 {
		cfg.SlidingWindow = *sliding.DefaultWindowConfig()
	}

	sysCollector, err := system.New()
	if err != nil {
		return nil, err
	}

	slidingWindow, err := sliding.NewWindow(&cfg.SlidingWindow)
	if err != nil {
		return nil, err
	}

	m := &ServerMetrics{
		config: cfg,

		OnlineSessions: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: cfg.Namespace,
				Name:      "online_sessions",
				Help:      "当前在线会话数",
			},
		),
		SessionsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "sessions_total",
				Help:      "累计接入会话数",
			},
		),

		PacketTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "packets_total",
				Help:      "包处理总数",
			},
			[]string{"protocol_id", "result"}, // result: success/failed
		),
		PacketDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "packet_duration_seconds",
				Help:      "包处理延迟（秒）",
				Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
			[]string{"protocol_id"},
		),

		systemCollector: sysCollector,
		slidingWindow:   slidingWindow,
	}

	sysCollector.Start(cfg.SystemCollectInterval)

	return m, nil
}

// Register 注册指标到 Prometheus Registry
func (m *ServerMetrics) Register(registerer prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.OnlineSessions,
		m.SessionsTotal,
		m.PacketTotal,
		m.PacketDuration,
	}

	for _, c := range collectors {
		if err := registerer.Register(c); err != nil {
			return err
		}
	}

	return nil
}

// RecordSessionOpen 记录会话接入
func (m *ServerMetrics) RecordSessionOpen() {
	m.onlineCount.Add(1)
	m.OnlineSessions.Inc()
	m.SessionsTotal.Inc()
}

// RecordSessionClose 记录会话断开
func (m *ServerMetrics) RecordSessionClose() {
	m.onlineCount.Add(-1)
	m.OnlineSessions.Dec()
}

// RecordPacket 记录一次包处理
func (m *ServerMetrics) RecordPacket(protocolID uint16, success bool, duration float64) {
	result := "success"
	if !success {
		result = "failed"
		m.failedPackets.Add(1)
	}
	m.totalPackets.Add(1)

	id := strconv.FormatUint(uint64(protocolID), 10)
	m.PacketTotal.WithLabelValues(id, result).Inc()
	m.PacketDuration.WithLabelValues(id).Observe(duration)

	m.slidingWindow.Record(duration, success)
}

// SystemStats 获取进程系统统计
func (m *ServerMetrics) SystemStats() system.Stats {
	return m.systemCollector.GetStats()
}

// Stats 获取统计数据
func (m *ServerMetrics) Stats() Stats {
	windowStats := m.slidingWindow.GetStats()
	sysStats := m.systemCollector.GetStats()
	return Stats{
		OnlineSessions: m.onlineCount.Load(),
		TotalPackets:   m.totalPackets.Load(),
		FailedPackets:  m.failedPackets.Load(),
		QPS:            windowStats.QPS,
		AvgLatency:     windowStats.AvgLatency,
		SuccessRate:    windowStats.SuccessRate,
		CPUPercent:     sysStats.CPUPercent,
		MemoryPercent:  sysStats.MemoryPercent,
		MemoryBytes:    sysStats.MemoryBytes,
		Goroutines:     sysStats.Goroutines,
	}
}

// Stats 统计数据结构
type Stats struct {
	OnlineSessions int64   `json:"online_sessions"`
	TotalPackets   int64   `json:"total_packets"`
	FailedPackets  int64   `json:"failed_packets"`
	QPS            float64 `json:"qps"`
	AvgLatency     float64 `json:"avg_latency"`
	SuccessRate    float64 `json:"success_rate"`
	CPUPercent     float64 `json:"cpu_percent"`
	MemoryPercent  float64 `json:"memory_percent"`
	MemoryBytes    uint64  `json:"memory_bytes"`
	Goroutines     int     `json:"goroutines"`
}

// Stop 停止后台采集
func (m *ServerMetrics) Stop() {
	m.systemCollector.Stop()
	m.slidingWindow.Stop()
}
