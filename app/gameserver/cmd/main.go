package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/metrics"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/net"
	"github.com/lk2023060901/hollowzero/pkg/config"
	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/prometheus"
)

// 系统资源日志输出间隔
const systemResourcesLogInterval = 20 * time.Second

// GameDataConfig 资源表加载配置
type GameDataConfig struct {
	AssetsDir string `mapstructure:"assets_dir"`
}

// Config 定义 gameserver 的完整配置结构
type Config struct {
	Log logger.Config `mapstructure:"log"`

	// 网关监听配置
	Gateway net.Config `mapstructure:"gateway"`

	// 资源表配置
	GameData GameDataConfig `mapstructure:"game_data"`

	// 跳过新手教学直接进主城
	SkipTutorial bool `mapstructure:"skip_tutorial"`

	// 周期性输出进程 CPU/内存日志
	SystemResourcesLogging bool `mapstructure:"system_resources_logging"`

	// Prometheus 配置
	Prometheus prometheus.Config `mapstructure:"prometheus"`

	// 指标配置
	Metrics metrics.Config `mapstructure:"metrics"`
}

func main() {
	var configPath string
	pflag.StringVarP(&configPath, "config", "c", "configs/gameserver.yaml", "path to config file")
	pflag.Parse()

	// 1. 加载配置（带热更监听）
	watcher, err := config.NewWatcher[Config](configPath, "yaml")
	if err != nil {
		panic(err)
	}
	cfg := watcher.GetConfig()

	// 2. 初始化 Logger
	l, err := logger.New(&cfg.Log)
	if err != nil {
		panic(err)
	}
	defer func() { _ = l.Sync() }()

	// 3. 创建 Prometheus 客户端
	promClient, err := prometheus.New(&cfg.Prometheus)
	if err != nil {
		l.Error("failed to create prometheus client", "error", err)
		return
	}
	defer func() { _ = promClient.Close() }()

	// 4. 创建指标收集器
	serverMetrics, err := metrics.New(&cfg.Metrics)
	if err != nil {
		l.Error("failed to create metrics", "error", err)
		return
	}
	defer serverMetrics.Stop()

	if err := serverMetrics.Register(promClient.Registry()); err != nil {
		l.Error("failed to register metrics", "error", err)
		return
	}

	// 5. 加载资源表
	tables, err := data.Load(cfg.GameData.AssetsDir, l)
	if err != nil {
		l.Error("failed to load game data", "assets_dir", cfg.GameData.AssetsDir, "error", err)
		return
	}

	// 6. 启动网关
	gateway, err := net.NewGateway(&cfg.Gateway, tables, cfg.SkipTutorial, serverMetrics, l)
	if err != nil {
		l.Error("failed to create gateway", "error", err)
		return
	}
	if err := gateway.Start(); err != nil {
		l.Error("failed to start gateway", "error", err)
		return
	}
	defer func() { _ = gateway.Stop() }()

	// 配置热更：skip_tutorial 改动对新会话即时生效
	watcher.OnChange(func(c *Config) {
		gateway.SetSkipTutorial(c.SkipTutorial)
		l.Info("config reloaded", "skip_tutorial", c.SkipTutorial)
	})
	watcher.OnError(func(err error) {
		l.Warn("config reload failed", "error", err)
	})

	// 7. 系统资源日志
	stopResourceLog := make(chan struct{})
	defer close(stopResourceLog)
	if cfg.SystemResourcesLogging {
		go logSystemResources(l, serverMetrics, stopResourceLog)
	}

	// 8. 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	l.Info("shutting down", "online_sessions", gateway.SessionCount())
}

func logSystemResources(l logger.Logger, m *metrics.ServerMetrics, stop <-chan struct{}) {
	ticker := time.NewTicker(systemResourcesLogInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			stats := m.SystemStats()
			l.Info("system resources",
				"cpu_percent", stats.CPUPercent,
				"memory_percent", stats.MemoryPercent,
				"memory_mb", float64(stats.MemoryBytes)/(1024*1024),
				"goroutines", stats.Goroutines,
			)
		case <-stop:
			return
		}
	}
}
