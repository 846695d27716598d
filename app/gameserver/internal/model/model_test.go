package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func TestDefaultAccount(t *testing.T) {
	acc := DefaultAccount(1337)

	require.NotNil(t, acc.AccountName)
	assert.Equal(t, "1_1337", *acc.AccountName)
	assert.Equal(t, []uint64{1337}, acc.Players)
	assert.Equal(t, uint8(10), *acc.GmLevel)
	assert.Equal(t, int32(1), *acc.AccountType)
}

func TestDefaultPlayer(t *testing.T) {
	p := DefaultPlayer(1337)

	assert.Equal(t, uint64(1337), *p.Uid)
	assert.Equal(t, "1_1337", *p.AccountName)
	assert.Equal(t, int32(1), *p.LoginTimes)
	assert.Equal(t, uint64(2), *p.PrevSceneUid)
	assert.Equal(t, int32(3), *p.RegisterPlatform)
	assert.True(t, *p.SwitchOfStoryMode)
	assert.True(t, *p.SwitchOfQte)
	assert.Equal(t, int32(1), *p.BgmInfo.BgmID)
	assert.Equal(t, []int32{102}, p.YorozuyaInfo.UnlockHollowID)
	assert.Equal(t, []int32{10020001}, p.MainCityQuestData.ExicingFinishScriptGroup)

	item, ok := p.Items.Get(DefaultBuddyUid)
	require.True(t, ok)
	base := item.ItemBase()
	assert.Equal(t, int32(50012), base.ID)
	assert.Equal(t, uint16(3), base.Package)

	assert.True(t, p.RamenData.UnlockRamen.Contains(20301))
	assert.Equal(t, 10, p.RamenData.UnlockMysticalSpice.Len())
	assert.True(t, p.NewbieInfo.UnlockedID.Contains(3))
	assert.Equal(t, 3, p.LoadingPageTipsInfo.UnlockedID.Len())

	recovery, ok := p.AutoRecoveryInfo.Get(501)
	require.True(t, ok)
	assert.Zero(t, recovery.BuyTimes)
}

func TestNewPlayer(t *testing.T) {
	p := NewPlayer(1337, false)
	assert.Equal(t, int32(2), *p.PosInMainCity.InitialPosID)
	assert.InDelta(t, 30.31, p.PosInMainCity.Position.X, 1e-6)
	assert.Equal(t, int32(0), *p.BeginnerProcedureInfo.ProcedureInfo)
	assert.Equal(t, "", *p.NickName)

	p = NewPlayer(1337, true)
	assert.Equal(t, int32(6), *p.BeginnerProcedureInfo.ProcedureInfo)
	assert.Equal(t, "xeondev", *p.NickName)
	assert.Equal(t, int32(2021), *p.AvatarID)
}

func TestPropertyManagerSerialize(t *testing.T) {
	m := NewPropertyManager(1337)

	blob, err := m.SerializeAccountInfo()
	require.NoError(t, err)
	require.NotEmpty(t, blob.Stream)

	var decoded protocol.AccountInfo
	require.NoError(t, decoded.Unmarshal(oct.NewReader(blob.Stream), 0))
	assert.Equal(t, "1_1337", *decoded.AccountName)
	assert.Equal(t, []uint64{1337}, decoded.Players)
}

func TestPropertyManagerPlayer(t *testing.T) {
	m := NewPropertyManager(1337)
	assert.Zero(t, m.PlayerUid())

	m.ReplacePlayer(NewPlayer(1337, true))
	assert.Equal(t, uint64(1337), m.PlayerUid())

	blob, err := m.SerializePlayerInfo()
	require.NoError(t, err)
	require.NotEmpty(t, blob.Stream)

	m.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.SceneUid = protocol.Ptr(uint64(42))
	})
	m.Player(func(p *protocol.PlayerInfo) {
		assert.Equal(t, uint64(42), *p.SceneUid)
	})
}
