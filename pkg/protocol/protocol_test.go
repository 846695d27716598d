package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
)

func TestProtocolHeaderEncoding(t *testing.T) {
	ret := ProtocolHeader{IsRpcRet: true, RpcArgUid: 7}.Encode()
	require.Len(t, ret, 13)
	assert.Equal(t, byte(1), ret[4])

	arg := ProtocolHeader{}.Encode()
	assert.Equal(t, byte(100), arg[4])

	parsed := ParseProtocolHeader(ret)
	assert.True(t, parsed.IsRpcRet)
	assert.Equal(t, uint64(7), parsed.RpcArgUid)
	assert.False(t, ParseProtocolHeader(arg).IsRpcRet)
}

func TestEncodeArgPacketRoundTrip(t *testing.T) {
	arg := &PtcSyncSceneTimeArg{Timestamp: 42, LastTimestamp: 41}
	buf, err := EncodeArgPacket(PtcSyncSceneTimeID, arg)
	require.NoError(t, err)

	pkt, consumed, err := DecodePacket(buf)
	require.NoError(t, err)
	require.NotNil(t, pkt)
	// 结尾的中间件数量计入 body_size，整包一次读尽
	assert.Equal(t, len(buf), consumed)
	assert.False(t, pkt.Header.IsRpcRet)

	body, err := ParseRequestBody(pkt.Body)
	require.NoError(t, err)
	assert.Equal(t, PtcSyncSceneTimeID, body.ProtocolID)

	var got PtcSyncSceneTimeArg
	require.NoError(t, got.Unmarshal(oct.NewReader(body.Payload), 0))
	assert.Equal(t, uint64(42), got.Timestamp)
	assert.Equal(t, uint64(41), got.LastTimestamp)
}

func TestEncodeRetPacketRoundTrip(t *testing.T) {
	buf, err := EncodeRetPacket(777, &RpcKeepAliveRet{})
	require.NoError(t, err)

	pkt, consumed, err := DecodePacket(buf)
	require.NoError(t, err)
	require.NotNil(t, pkt)
	assert.Equal(t, len(buf), consumed)
	assert.True(t, pkt.Header.IsRpcRet)
	assert.Equal(t, uint64(777), pkt.Header.RpcArgUid)

	// 应答体：中间件号 + 错误码均为 0
	require.GreaterOrEqual(t, len(pkt.Body), 4)
	assert.Equal(t, []byte{0, 0, 0, 0}, pkt.Body[:4])

	var ret RpcKeepAliveRet
	require.NoError(t, ret.Unmarshal(oct.NewReader(pkt.Body[4:]), 0))
	assert.Equal(t, ErrorCodeSuccess, ret.ErrorCode)
}

func TestDecodePacketWaitsForMoreData(t *testing.T) {
	buf, err := EncodeRetPacket(1, &RpcKeepAliveRet{})
	require.NoError(t, err)

	for i := 0; i < len(buf); i++ {
		pkt, consumed, err := DecodePacket(buf[:i])
		require.NoError(t, err)
		assert.Nil(t, pkt)
		assert.Zero(t, consumed)
	}
}

func TestParseRequestBodyTruncated(t *testing.T) {
	_, err := ParseRequestBody([]byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrTruncatedPacket)

	// 声明 4 字节载荷，实际只有 1 字节
	_, err = ParseRequestBody([]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x04, 0xAA})
	assert.ErrorIs(t, err, ErrTruncatedPacket)
}

func TestErrRet(t *testing.T) {
	ret := RpcKeepAliveRet{RetHead: ErrRet(ErrorCodeObjectNotExist, "avatar")}

	w := oct.NewWriter()
	require.NoError(t, ret.Marshal(w, 0))

	var got RpcKeepAliveRet
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.Equal(t, ErrorCodeObjectNotExist, got.ErrorCode)
	assert.Equal(t, []string{"avatar"}, got.ErrorCodeParams)
}

func TestAccountInfoRoundTrip(t *testing.T) {
	in := AccountInfo{
		AccountName: Ptr("1_1337"),
		Players:     []uint64{1337},
	}

	w := oct.NewWriter()
	require.NoError(t, in.Marshal(w, 0))

	var got AccountInfo
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	require.NotNil(t, got.AccountName)
	assert.Equal(t, "1_1337", *got.AccountName)
	assert.Equal(t, []uint64{1337}, got.Players)
	assert.Nil(t, got.GmLevel)
}

func TestActionInfoNoneSentinel(t *testing.T) {
	w := oct.NewWriter()
	require.NoError(t, (&ActionInfoNone{}).Marshal(w, 0))
	assert.Equal(t, []byte{0xFF, 0xFF}, w.Bytes())

	got, err := ReadActionInfo(oct.NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	assert.IsType(t, &ActionInfoNone{}, got)
}

func TestItemInfoPolymorphicRoundTrip(t *testing.T) {
	in := NewItemCurrency()
	in.Uid = 9001
	in.ID = 10
	in.Count = 500

	w := oct.NewWriter()
	require.NoError(t, in.Marshal(w, 0))

	got, err := ReadItemInfo(oct.NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	cur, ok := got.(*ItemCurrency)
	require.True(t, ok)
	assert.Equal(t, in.ItemInfoBase, cur.ItemInfoBase)
}

func TestEventInfoRoundTrip(t *testing.T) {
	in := EventInfo{
		ID:                      1000,
		CurActionID:             3,
		ActionMovePath:          []int32{1, 2, 3},
		State:                   EventStateWaitingClient,
		CurActionInfo:           &ActionInfoNone{},
		PredicatedFailedActions: property.SetOf[int32](),
	}

	w := oct.NewWriter()
	require.NoError(t, in.Marshal(w, 0))

	var got EventInfo
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	assert.Equal(t, in.ID, got.ID)
	assert.Equal(t, in.CurActionID, got.CurActionID)
	assert.Equal(t, in.ActionMovePath, got.ActionMovePath)
	assert.Equal(t, in.State, got.State)
	assert.IsType(t, &ActionInfoNone{}, got.CurActionInfo)
}

func TestPlayerInfoSubsetRoundTrip(t *testing.T) {
	in := PlayerInfo{
		Uid:         Ptr(uint64(1337)),
		AccountName: Ptr("1_1337"),
		SceneUid:    Ptr(uint64(5)),
	}

	w := oct.NewWriter()
	require.NoError(t, in.Marshal(w, 0))

	var got PlayerInfo
	require.NoError(t, got.Unmarshal(oct.NewReader(w.Bytes()), 0))
	require.NotNil(t, got.Uid)
	assert.Equal(t, uint64(1337), *got.Uid)
	require.NotNil(t, got.AccountName)
	assert.Equal(t, "1_1337", *got.AccountName)
	require.NotNil(t, got.SceneUid)
	assert.Equal(t, uint64(5), *got.SceneUid)
	assert.Nil(t, got.Items)
}

func TestSceneInfoPolymorphicRoundTrip(t *testing.T) {
	in := &SceneInfoHall{SceneInfoBase: SceneInfoBase{
		Uid:          100,
		ID:           1,
		EnteredTimes: 3,
		SectionID:    2,
	}}

	w := oct.NewWriter()
	require.NoError(t, in.Marshal(w, 0))

	got, err := ReadSceneInfo(oct.NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	hall, ok := got.(*SceneInfoHall)
	require.True(t, ok)
	assert.Equal(t, in.SceneInfoBase, hall.SceneInfoBase)
}
