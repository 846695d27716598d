package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/manager"
	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

type sentMsg struct {
	protocolID uint16
	arg        oct.Data
}

type fakeSession struct {
	ctx  *manager.GameContext
	sent []sentMsg
}

func newFakeSession(tables *data.Tables) *fakeSession {
	if tables == nil {
		tables = &data.Tables{EventGraphs: map[int32]*data.ConfigEventGraph{}}
	}
	ctx := manager.NewGameContext(1337, tables, logger.NewNoop())
	ctx.SkipTutorial = true
	return &fakeSession{ctx: ctx}
}

func (s *fakeSession) Context() *manager.GameContext { return s.ctx }

func (s *fakeSession) SendRpcArg(protocolID uint16, arg oct.Data) error {
	s.sent = append(s.sent, sentMsg{protocolID: protocolID, arg: arg})
	return nil
}

func (s *fakeSession) sentIDs() []uint16 {
	ids := make([]uint16, len(s.sent))
	for i, m := range s.sent {
		ids[i] = m.protocolID
	}
	return ids
}

func marshalArg(t *testing.T, arg oct.Data) []byte {
	t.Helper()
	w := oct.NewWriter()
	require.NoError(t, arg.Marshal(w, 0))
	return w.Bytes()
}

func enterWorld(t *testing.T, s *fakeSession) *protocol.RpcEnterWorldRet {
	t.Helper()
	ret, err := Dispatch(s, protocol.RpcEnterWorldID, marshalArg(t, &protocol.RpcEnterWorldArg{}))
	require.NoError(t, err)
	enterRet, ok := ret.(*protocol.RpcEnterWorldRet)
	require.True(t, ok)
	return enterRet
}

func TestDispatchUnknownProtocol(t *testing.T) {
	s := newFakeSession(nil)
	ret, err := Dispatch(s, 9999, nil)
	require.NoError(t, err)
	assert.Nil(t, ret)
}

func TestKeepAlive(t *testing.T) {
	s := newFakeSession(nil)
	ret, err := Dispatch(s, protocol.RpcKeepAliveID, nil)
	require.NoError(t, err)
	require.IsType(t, &protocol.RpcKeepAliveRet{}, ret)
}

func TestLoginReturnsAccountBlob(t *testing.T) {
	s := newFakeSession(nil)
	ret, err := Dispatch(s, protocol.RpcLoginID, marshalArg(t, &protocol.RpcLoginArg{AccountName: "1337"}))
	require.NoError(t, err)

	loginRet, ok := ret.(*protocol.RpcLoginRet)
	require.True(t, ok)
	require.NotEmpty(t, loginRet.AccountInfo.Stream)

	var account protocol.AccountInfo
	require.NoError(t, account.Unmarshal(oct.NewReader(loginRet.AccountInfo.Stream), 0))
	assert.Equal(t, []uint64{1337}, account.Players)
}

func TestBattleReportNeedIndex(t *testing.T) {
	s := newFakeSession(nil)
	ret, err := Dispatch(s, protocol.RpcBattleReportID, marshalArg(t, &protocol.RpcBattleReportArg{
		BattleReports: []protocol.BattleReport{{Index: 4}, {Index: 5}},
	}))
	require.NoError(t, err)
	assert.Equal(t, int32(6), ret.(*protocol.RpcBattleReportRet).NeedIndex)
}

func TestEnterWorldSkipTutorial(t *testing.T) {
	s := newFakeSession(nil)
	ret := enterWorld(t, s)
	require.NotEmpty(t, ret.PlayerInfo.Stream)

	var nickName string
	s.ctx.Props.Player(func(p *protocol.PlayerInfo) {
		nickName = *p.NickName
	})
	assert.Equal(t, "xeondev", nickName)

	// 主城进入序列:分区、场景单位、进场、场景时间
	ids := s.sentIDs()
	assert.Contains(t, ids, protocol.PtcEnterSectionID)
	assert.Contains(t, ids, protocol.PtcSyncSceneUnitID)
	assert.Contains(t, ids, protocol.PtcEnterSceneID)
	assert.Contains(t, ids, protocol.PtcSyncSceneTimeID)

	require.NotZero(t, s.ctx.Dungeon.DefaultSceneUid())
	assert.Equal(t, s.ctx.Dungeon.DefaultSceneUid(), s.ctx.Dungeon.CurSceneUid())
}

func TestEnterWorldTutorial(t *testing.T) {
	s := newFakeSession(nil)
	s.ctx.SkipTutorial = false

	enterWorld(t, s)

	assert.True(t, s.ctx.Dungeon.IsInTutorial())
	assert.Contains(t, s.sentIDs(), protocol.PtcEnterSceneID)
}

func TestModNickName(t *testing.T) {
	s := newFakeSession(nil)
	enterWorld(t, s)

	ret, err := Dispatch(s, protocol.RpcModNickNameID, marshalArg(t, &protocol.RpcModNickNameArg{
		NickName: "phantom",
		AvatarID: 2011,
	}))
	require.NoError(t, err)
	require.IsType(t, &protocol.RpcModNickNameRet{}, ret)

	s.ctx.Props.Player(func(p *protocol.PlayerInfo) {
		assert.Equal(t, "phantom", *p.NickName)
		assert.Equal(t, int32(2011), *p.AvatarID)
	})

	last := s.sent[len(s.sent)-1]
	assert.Equal(t, protocol.PtcPlayerInfoChangedID, last.protocolID)
}

func hollowTables() *data.Tables {
	return &data.Tables{
		AvatarConfigs: []data.AvatarConfigTemplate{
			{ID: 1011, Camp: 1, HP: 850},
		},
		EventGraphs: map[int32]*data.ConfigEventGraph{
			1000109: {
				ID: 1000109,
				Events: map[data.ConfigEventType]data.ConfigEvent{
					data.EventTypeOnStart: {Actions: []data.ConfigAction{data.ActionEmpty{}}},
				},
			},
			1000103: {
				ID: 1000103,
				Events: map[data.ConfigEventType]data.ConfigEvent{
					data.EventTypeOnStart: {Actions: []data.ConfigAction{
						data.ActionTriggerBattle{BattleID: data.ConfigValue{Constant: 10101001}},
					}},
				},
			},
		},
	}
}

func TestStartHollowQuestFlow(t *testing.T) {
	s := newFakeSession(hollowTables())
	enterWorld(t, s)

	var avatarUid uint64
	s.ctx.Props.Player(func(p *protocol.PlayerInfo) {
		p.Items.Range(func(uid uint64, item protocol.ItemInfo) bool {
			if _, ok := item.(*protocol.ItemAvatar); ok {
				avatarUid = uid
				return false
			}
			return true
		})
	})
	require.NotZero(t, avatarUid)

	s.sent = nil
	ret, err := Dispatch(s, protocol.RpcStartHollowQuestID, marshalArg(t, &protocol.RpcStartHollowQuestArg{
		HollowQuestID: 10010001,
		AvatarMap:     property.MapOf(property.Pair[int8, uint64]{Key: 0, Value: avatarUid}),
	}))
	require.NoError(t, err)
	require.Equal(t, protocol.ErrorCodeSuccess, ret.(*protocol.RpcStartHollowQuestRet).ErrorCode)

	ids := s.sentIDs()
	assert.Contains(t, ids, protocol.PtcPropertyChangedID)
	assert.Contains(t, ids, protocol.PtcSyncHollowGridMapsID)
	assert.Contains(t, ids, protocol.PtcPositionInHollowChangedID)
	assert.Contains(t, ids, protocol.PtcSyncHollowEventInfoID)
	assert.Contains(t, ids, protocol.PtcEnterSceneID)

	assert.Equal(t, uint16(22), s.ctx.HollowGrid.CurPosition())
}

func TestStartHollowQuestUnknownAvatar(t *testing.T) {
	s := newFakeSession(hollowTables())
	enterWorld(t, s)

	ret, err := Dispatch(s, protocol.RpcStartHollowQuestID, marshalArg(t, &protocol.RpcStartHollowQuestArg{
		HollowQuestID: 10010001,
		AvatarMap:     property.MapOf(property.Pair[int8, uint64]{Key: 0, Value: 424242}),
	}))
	require.NoError(t, err)
	assert.Equal(t, protocol.ErrorCodeObjectNotExist, ret.(*protocol.RpcStartHollowQuestRet).ErrorCode)
}

func TestHollowMove(t *testing.T) {
	s := newFakeSession(hollowTables())
	enterWorld(t, s)

	var avatarUid uint64
	s.ctx.Props.Player(func(p *protocol.PlayerInfo) {
		p.Items.Range(func(uid uint64, item protocol.ItemInfo) bool {
			if _, ok := item.(*protocol.ItemAvatar); ok {
				avatarUid = uid
				return false
			}
			return true
		})
	})

	_, err := Dispatch(s, protocol.RpcStartHollowQuestID, marshalArg(t, &protocol.RpcStartHollowQuestArg{
		HollowQuestID: 10010001,
		AvatarMap:     property.MapOf(property.Pair[int8, uint64]{Key: 0, Value: avatarUid}),
	}))
	require.NoError(t, err)

	s.sent = nil
	ret, err := Dispatch(s, protocol.RpcHollowMoveID, marshalArg(t, &protocol.RpcHollowMoveArg{
		HollowLevel: 1,
		Positions:   []uint16{23},
	}))
	require.NoError(t, err)

	moveRet := ret.(*protocol.RpcHollowMoveRet)
	assert.Equal(t, uint16(23), moveRet.Position)
	assert.Equal(t, uint16(23), s.ctx.HollowGrid.CurPosition())

	ids := s.sentIDs()
	assert.Contains(t, ids, protocol.PtcHollowGridID)
	assert.Contains(t, ids, protocol.PtcPositionInHollowChangedID)
}
