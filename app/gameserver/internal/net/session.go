package net

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/gnet/v2"
	"github.com/valyala/bytebufferpool"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/handler"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/manager"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/metrics"
	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/pool/bytebuff"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// GameSession 一条客户端连接。收到的字节在 gnet 事件循环内追加到会话缓冲，
// 解包与派发由协程池里的 drain 串行执行，保证单连接内的处理时序。
// 连接建立后客户端先发 2 字节通道号完成握手，之后才是包流。
type GameSession struct {
	id     string
	connID int64
	addr   string

	log     logger.Logger
	gameCtx *manager.GameContext
	metrics *metrics.ServerMetrics

	write func(buf []byte) error

	mu         sync.Mutex
	recv       *bytebufferpool.ByteBuffer
	draining   bool
	handshaked bool
	channelID  uint16

	// 仅在 drain 协程内读写
	curRpcUid uint64
}

// NewGameSession 创建一个新的游戏会话。
func NewGameSession(conn gnet.Conn, connID int64, gameCtx *manager.GameContext, m *metrics.ServerMetrics, log logger.Logger) *GameSession {
	id := uuid.New().String()
	addr := conn.RemoteAddr().String()

	s := &GameSession{
		id:      id,
		connID:  connID,
		addr:    addr,
		gameCtx: gameCtx,
		metrics: m,
		recv:    bytebuff.Get(),
		write: func(buf []byte) error {
			return conn.AsyncWrite(buf, nil)
		},
	}
	s.log = log.WithFields("session_id", id, "conn_id", connID, "remote_addr", addr)
	s.gameCtx.Log = s.log
	return s
}

// ID 返回会话字符串 id。
func (s *GameSession) ID() string { return s.id }

// ConnID 返回会话的数字连接号。
func (s *GameSession) ConnID() int64 { return s.connID }

// RemoteAddr 返回对端地址。
func (s *GameSession) RemoteAddr() string { return s.addr }

// Context 实现 handler.Session。
func (s *GameSession) Context() *manager.GameContext { return s.gameCtx }

// SendRpcArg 实现 handler.Session，主动下发一条服务端通知。
func (s *GameSession) SendRpcArg(protocolID uint16, arg oct.Data) error {
	buf, err := protocol.EncodeArgPacket(protocolID, arg)
	if err != nil {
		return err
	}
	if err := s.write(buf); err != nil {
		return err
	}
	s.log.Debug("ptc sent", "protocol_id", protocolID)
	return nil
}

// sendRpcRet 回发当前请求的应答，关联号取最近一次请求的 rpc_arg_uid。
func (s *GameSession) sendRpcRet(data oct.Data) error {
	buf, err := protocol.EncodeRetPacket(s.curRpcUid, data)
	if err != nil {
		return err
	}
	return s.write(buf)
}

// push 追加收到的字节，返回是否需要调度一次 drain。
func (s *GameSession) push(data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recv == nil {
		return false
	}
	_, _ = s.recv.Write(data)
	if s.draining {
		return false
	}
	s.draining = true
	return true
}

// drain 从会话缓冲循环取出完整包并处理，缓冲耗尽后退出。
func (s *GameSession) drain() {
	for {
		pkt, again := s.nextPacket()
		if pkt != nil {
			s.handle(pkt)
		}
		if !again {
			return
		}
	}
}

func (s *GameSession) nextPacket() (*protocol.Packet, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recv == nil {
		s.draining = false
		return nil, false
	}

	if !s.handshaked {
		if s.recv.Len() < 2 {
			s.draining = false
			return nil, false
		}
		s.channelID = binary.LittleEndian.Uint16(s.recv.B[:2])
		s.discardLocked(2)
		s.handshaked = true
		s.log.Info("session bound to channel", "channel_id", s.channelID)
		return nil, true
	}

	pkt, n, err := protocol.DecodePacket(s.recv.B)
	if err != nil {
		s.log.Warn("dropping undecodable stream", "error", err, "buffered", s.recv.Len())
		s.recv.Reset()
		s.draining = false
		return nil, false
	}
	if pkt == nil {
		s.draining = false
		return nil, false
	}
	s.discardLocked(n)
	return pkt, true
}

func (s *GameSession) discardLocked(n int) {
	s.recv.B = append(s.recv.B[:0], s.recv.B[n:]...)
}

func (s *GameSession) handle(pkt *protocol.Packet) {
	req, err := protocol.ParseRequestBody(pkt.Body)
	if err != nil {
		s.log.Warn("malformed request body", "error", err)
		return
	}
	s.curRpcUid = pkt.Header.RpcArgUid

	start := time.Now()
	ret, err := handler.Dispatch(s, req.ProtocolID, req.Payload)
	if s.metrics != nil {
		s.metrics.RecordPacket(req.ProtocolID, err == nil, time.Since(start).Seconds())
	}
	if err != nil {
		s.log.Error("handler failed", "protocol_id", req.ProtocolID, "error", err)
		return
	}
	if ret == nil {
		return
	}
	if err := s.sendRpcRet(ret); err != nil {
		s.log.Error("send rpc ret failed", "protocol_id", req.ProtocolID, "error", err)
	}
}

// release 归还会话缓冲，之后的 push/drain 都成为空操作。
func (s *GameSession) release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.recv != nil {
		bytebuff.Put(s.recv)
		s.recv = nil
	}
}
