package net

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/manager"
	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/pool/bytebuff"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func newTestSession(t *testing.T) (*GameSession, *[][]byte) {
	t.Helper()
	tables := &data.Tables{EventGraphs: map[int32]*data.ConfigEventGraph{}}
	gameCtx := manager.NewGameContext(defaultAccountID, tables, logger.NewNoop())

	written := &[][]byte{}
	s := &GameSession{
		id:      "test",
		connID:  1,
		log:     logger.NewNoop(),
		gameCtx: gameCtx,
		recv:    bytebuff.Get(),
		write: func(buf []byte) error {
			*written = append(*written, buf)
			return nil
		},
	}
	t.Cleanup(s.release)
	return s, written
}

// 构造一个客户端请求包：外层帧 + 包头 + 请求体。
func clientPacket(t *testing.T, protocolID uint16, rpcArgUid uint64, arg oct.Data) []byte {
	t.Helper()
	w := oct.NewWriter()
	require.NoError(t, arg.Marshal(w, 0))

	body := protocol.RequestBody{ProtocolID: protocolID, Payload: w.Bytes()}.Encode()
	header := protocol.ProtocolHeader{RpcArgUid: rpcArgUid}.Encode()

	out := make([]byte, 0, 8+len(header)+len(body))
	out = binary.LittleEndian.AppendUint16(out, 0)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))
	out = binary.LittleEndian.AppendUint16(out, uint16(len(header)))
	out = append(out, header...)
	out = append(out, body...)
	return out
}

func TestSessionHandshakeAndDispatch(t *testing.T) {
	s, written := newTestSession(t)

	stream := append([]byte{1, 0}, clientPacket(t, protocol.RpcKeepAliveID, 777, &protocol.RpcKeepAliveArg{})...)
	require.True(t, s.push(stream))
	s.drain()

	assert.True(t, s.handshaked)
	assert.Equal(t, uint16(1), s.channelID)

	require.Len(t, *written, 1)
	pkt, _, err := protocol.DecodePacket((*written)[0])
	require.NoError(t, err)
	require.NotNil(t, pkt)
	assert.True(t, pkt.Header.IsRpcRet)
	assert.Equal(t, uint64(777), pkt.Header.RpcArgUid)
}

func TestSessionReassemblesSplitPackets(t *testing.T) {
	s, written := newTestSession(t)

	stream := append([]byte{0, 0}, clientPacket(t, protocol.RpcKeepAliveID, 1, &protocol.RpcKeepAliveArg{})...)
	stream = append(stream, clientPacket(t, protocol.RpcKeepAliveID, 2, &protocol.RpcKeepAliveArg{})...)

	// 逐字节投递，模拟 TCP 任意切分
	for _, b := range stream {
		if s.push([]byte{b}) {
			s.drain()
		}
	}

	require.Len(t, *written, 2)
	for i, want := range []uint64{1, 2} {
		pkt, _, err := protocol.DecodePacket((*written)[i])
		require.NoError(t, err)
		require.NotNil(t, pkt)
		assert.Equal(t, want, pkt.Header.RpcArgUid)
	}
}

func TestSessionUnknownProtocolKeepsSessionAlive(t *testing.T) {
	s, written := newTestSession(t)

	stream := append([]byte{0, 0}, clientPacket(t, 65000, 3, &protocol.RpcKeepAliveArg{})...)
	stream = append(stream, clientPacket(t, protocol.RpcKeepAliveID, 4, &protocol.RpcKeepAliveArg{})...)
	require.True(t, s.push(stream))
	s.drain()

	// 未注册协议丢弃，后续请求照常应答
	require.Len(t, *written, 1)
	pkt, _, err := protocol.DecodePacket((*written)[0])
	require.NoError(t, err)
	assert.Equal(t, uint64(4), pkt.Header.RpcArgUid)
}

func TestSendRpcArgFraming(t *testing.T) {
	s, written := newTestSession(t)

	require.NoError(t, s.SendRpcArg(protocol.PtcSyncSceneTimeID, &protocol.PtcSyncSceneTimeArg{Timestamp: 42}))

	require.Len(t, *written, 1)
	pkt, n, err := protocol.DecodePacket((*written)[0])
	require.NoError(t, err)
	require.NotNil(t, pkt)
	assert.Equal(t, len((*written)[0]), n)
	assert.False(t, pkt.Header.IsRpcRet)

	req, err := protocol.ParseRequestBody(pkt.Body)
	require.NoError(t, err)
	assert.Equal(t, protocol.PtcSyncSceneTimeID, req.ProtocolID)
}

func TestPushAfterReleaseIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	s.release()
	assert.False(t, s.push([]byte{0, 0}))
}
