package net

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/panjf2000/gnet/v2"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/manager"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/metrics"
	"github.com/lk2023060901/hollowzero/pkg/idgen"
	"github.com/lk2023060901/hollowzero/pkg/logger"
)

// 登录不做校验，所有连接落在同一个默认账号上。
const defaultAccountID = 1337

// Gateway gnet 接入层。每条连接持有独立的游戏上下文，
// 单条会话出错只断开该会话，监听循环不受影响。
type Gateway struct {
	gnet.BuiltinEventEngine

	config  *Config
	tables  *data.Tables
	log     logger.Logger
	metrics *metrics.ServerMetrics

	skipTutorial atomic.Bool

	pool    *ants.Pool
	connIDs idgen.Generator

	sessions sync.Map // connID -> *GameSession
	engine   gnet.Engine
	started  bool
}

// NewGateway 创建网关。metrics 可以为 nil。
func NewGateway(cfg *Config, tables *data.Tables, skipTutorial bool, m *metrics.ServerMetrics, log logger.Logger) (*Gateway, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool, err := ants.NewPool(cfg.WorkerPoolSize)
	if err != nil {
		return nil, err
	}

	connIDs, err := idgen.NewSonyflake(cfg.MachineID)
	if err != nil {
		pool.Release()
		return nil, err
	}

	g := &Gateway{
		config:  cfg,
		tables:  tables,
		log:     log.Named("gateway"),
		metrics: m,
		pool:    pool,
		connIDs: connIDs,
	}
	g.skipTutorial.Store(skipTutorial)
	return g, nil
}

// SetSkipTutorial 热更新开关，仅影响之后建立的会话。
func (g *Gateway) SetSkipTutorial(v bool) {
	g.skipTutorial.Store(v)
}

func (g *Gateway) Start() error {
	opts := []gnet.Option{
		gnet.WithMulticore(g.config.Multicore),
		gnet.WithReusePort(g.config.ReusePort),
		gnet.WithReuseAddr(g.config.ReuseAddr),
		gnet.WithTCPKeepAlive(g.config.TCPKeepAlive),
		gnet.WithTCPNoDelay(gnet.TCPNoDelay),
	}
	if g.config.NumEventLoop > 0 {
		opts = append(opts, gnet.WithNumEventLoop(g.config.NumEventLoop))
	}

	protoAddr := fmt.Sprintf("%s://%s", g.config.Network, g.config.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- gnet.Run(g, protoAddr, opts...)
	}()

	// 等待一小段时间看是否启动失败
	select {
	case err := <-errCh:
		return err
	case <-time.After(100 * time.Millisecond):
		return nil
	}
}

func (g *Gateway) Stop() error {
	g.pool.Release()
	if g.started {
		return g.engine.Stop(context.Background())
	}
	return nil
}

// SessionCount 当前在线会话数。
func (g *Gateway) SessionCount() int {
	count := 0
	g.sessions.Range(func(_, _ any) bool {
		count++
		return true
	})
	return count
}

// OnBoot 实现 gnet.EventHandler。
func (g *Gateway) OnBoot(eng gnet.Engine) (action gnet.Action) {
	g.engine = eng
	g.started = true
	g.log.Info("listening", "addr", g.config.Addr)
	return gnet.None
}

// OnOpen 实现 gnet.EventHandler。
func (g *Gateway) OnOpen(c gnet.Conn) (out []byte, action gnet.Action) {
	connID, err := g.connIDs.NextID()
	if err != nil {
		g.log.Error("allocate conn id failed", "error", err)
		return nil, gnet.Close
	}

	gameCtx := manager.NewGameContext(defaultAccountID, g.tables, g.log)
	gameCtx.SkipTutorial = g.skipTutorial.Load()

	s := NewGameSession(c, connID, gameCtx, g.metrics, g.log)
	c.SetContext(s)
	g.sessions.Store(connID, s)
	if g.metrics != nil {
		g.metrics.RecordSessionOpen()
	}
	s.log.Info("new session")
	return nil, gnet.None
}

// OnClose 实现 gnet.EventHandler。
func (g *Gateway) OnClose(c gnet.Conn, err error) (action gnet.Action) {
	s, ok := c.Context().(*GameSession)
	if !ok {
		return gnet.None
	}
	s.release()
	g.sessions.Delete(s.connID)
	if g.metrics != nil {
		g.metrics.RecordSessionClose()
	}
	if err != nil {
		s.log.Warn("session disconnected", "error", err)
	} else {
		s.log.Info("session disconnected")
	}
	return gnet.None
}

// OnTraffic 实现 gnet.EventHandler。
func (g *Gateway) OnTraffic(c gnet.Conn) gnet.Action {
	data, _ := c.Next(-1)
	s, ok := c.Context().(*GameSession)
	if !ok {
		return gnet.Close
	}
	if s.push(data) {
		if err := g.pool.Submit(s.drain); err != nil {
			// 池满时退回事件循环内处理
			s.drain()
		}
	}
	return gnet.None
}
