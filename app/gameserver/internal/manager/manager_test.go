package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/logger"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func testContext(tables *data.Tables) *GameContext {
	if tables == nil {
		tables = &data.Tables{EventGraphs: map[int32]*data.ConfigEventGraph{}}
	}
	ctx := NewGameContext(1337, tables, logger.NewNoop())
	ctx.Props.ReplacePlayer(model.NewPlayer(1337, true))
	return ctx
}

func TestUidAllocatorMonotonic(t *testing.T) {
	alloc := NewUidAllocator()
	prev := alloc.Next()
	require.Greater(t, prev, uint64(0))
	for i := 0; i < 100; i++ {
		next := alloc.Next()
		require.Equal(t, prev+1, next)
		prev = next
	}
}

func TestAddResourceStacks(t *testing.T) {
	ctx := testContext(nil)

	first := ctx.Item.AddResource(10, 5)
	require.Equal(t, int32(5), first.Value)
	require.NotNil(t, first.Changes)

	second := ctx.Item.AddResource(10, 7)
	require.Equal(t, int32(12), second.Value)

	count := 0
	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		p.Items.Range(func(_ uint64, item protocol.ItemInfo) bool {
			if r, ok := item.(*protocol.ItemResource); ok && r.ID == 10 {
				count++
				assert.Equal(t, int32(12), r.Count)
			}
			return true
		})
	})
	require.Equal(t, 1, count, "stacking must reuse the existing entry")
}

func TestUnlockAvatarEquipsWeapon(t *testing.T) {
	ctx := testContext(nil)

	res := ctx.Item.UnlockAvatar(1011)
	require.NotZero(t, res.Value)

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		item, ok := p.Items.Get(res.Value)
		require.True(t, ok)
		avatar, ok := item.(*protocol.ItemAvatar)
		require.True(t, ok)
		assert.Equal(t, int32(1011), avatar.ID)
		assert.Equal(t, uint8(1), avatar.Star)

		equipped := false
		p.Items.Range(func(_ uint64, item protocol.ItemInfo) bool {
			if w, ok := item.(*protocol.ItemWeapon); ok && w.AvatarUid == avatar.Uid {
				equipped = true
				assert.Equal(t, int32(defaultWeaponID), w.ID)
				return false
			}
			return true
		})
		assert.True(t, equipped, "unlocking an avatar must equip the default weapon")
	})
}

func TestCreateHallBecomesDefaultScene(t *testing.T) {
	ctx := testContext(nil)

	res := ctx.Dungeon.CreateHall(1)
	require.NotZero(t, res.Value)
	require.Equal(t, res.Value, ctx.Dungeon.DefaultSceneUid())

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, ok := p.DungeonCollection.Scenes.Get(res.Value)
		require.True(t, ok)
		hall, ok := scene.(*protocol.SceneInfoHall)
		require.True(t, ok)
		assert.True(t, hall.ToBeDestroyed)
		assert.Equal(t, uint16(1), hall.EnteredTimes)

		dungeon, ok := p.DungeonCollection.Dungeons.Get(hall.DungeonUid)
		require.True(t, ok)
		assert.Equal(t, res.Value, dungeon.DefaultSceneUid)
	})
}

func TestEnterMainCity(t *testing.T) {
	ctx := testContext(nil)
	hallUid := ctx.Dungeon.CreateHall(1).Value

	res, err := ctx.Dungeon.EnterMainCity()
	require.NoError(t, err)

	arg := res.Value
	assert.Equal(t, hallUid, arg.SceneUid)
	assert.Equal(t, uint16(2), arg.EnteredTimes)
	assert.Equal(t, uint32(6000), arg.CameraY)
	assert.InDelta(t, 30.31, arg.Transform.Position.X, 0.001)
	require.NotNil(t, res.Changes)

	require.Equal(t, hallUid, ctx.Dungeon.CurSceneUid())
}

func TestCreateHollow(t *testing.T) {
	ctx := testContext(nil)
	ctx.Dungeon.CreateHall(1)

	avatars := []uint64{
		ctx.Item.UnlockAvatar(1011).Value,
		ctx.Item.UnlockAvatar(1081).Value,
		ctx.Item.UnlockAvatar(1021).Value,
	}

	res := ctx.Dungeon.CreateHollow(10001, 10010001, avatars)
	created := res.Value
	require.NotZero(t, created.DungeonUid)
	require.NotZero(t, created.SceneUid)

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, ok := p.DungeonCollection.Scenes.Get(created.SceneUid)
		require.True(t, ok)
		hollow, ok := scene.(*protocol.SceneInfoHollow)
		require.True(t, ok)

		section, ok := hollow.SectionsInfo.Get(1)
		require.True(t, ok)
		assert.Equal(t, uint16(22), section.CurGridIndex)
		assert.True(t, hollow.ExecutingEvent)
		assert.Equal(t, uint64(22), hollow.HollowEventGraphUid)

		dungeon, ok := p.DungeonCollection.Dungeons.Get(created.DungeonUid)
		require.True(t, ok)
		assert.Equal(t, int32(hollowEventVersion), dungeon.HollowEventVersion)
		assert.Equal(t, len(avatars), dungeon.AvatarMap.Len())

		hp, ok := p.SceneProperties.Get(created.SceneUid, 1002)
		require.True(t, ok)
		assert.Equal(t, int32(100), hp)

		item, _ := p.Items.Get(avatars[0])
		avatar := item.(*protocol.ItemAvatar)
		assert.Equal(t, int32(101000101), avatar.RobotID)
	})
}

func TestEnterAndLeaveBattle(t *testing.T) {
	ctx := testContext(nil)
	ctx.Dungeon.CreateHall(1)
	hollowUid := ctx.Dungeon.CreateHollow(10001, 10010001, nil).Value.SceneUid

	_, err := ctx.Dungeon.EnterScene(hollowUid)
	require.NoError(t, err)

	fightUid := ctx.Dungeon.CreateFight(10101001, hollowUid).Value
	_, err = ctx.Dungeon.EnterBattle(fightUid)
	require.NoError(t, err)
	require.Equal(t, fightUid, ctx.Dungeon.CurSceneUid())

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, _ := p.DungeonCollection.Scenes.Get(hollowUid)
		hollow := scene.(*protocol.SceneInfoHollow)
		assert.Equal(t, fightUid, hollow.BattleSceneUid)
		assert.Equal(t, "OnEnd", hollow.OnBattleSuccess)

		fight, _ := p.DungeonCollection.Scenes.Get(fightUid)
		assert.Equal(t, int32(fightRandomSeed), fight.(*protocol.SceneInfoFight).RandomSeed)
	})

	_, err = ctx.Dungeon.LeaveBattle()
	require.NoError(t, err)
	require.Equal(t, hollowUid, ctx.Dungeon.CurSceneUid())

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, _ := p.DungeonCollection.Scenes.Get(hollowUid)
		assert.Zero(t, scene.(*protocol.SceneInfoHollow).BattleSceneUid)
	})
}

func TestHollowGridMoveTo(t *testing.T) {
	ctx := testContext(nil)
	ctx.Dungeon.CreateHall(1)
	hollowUid := ctx.Dungeon.CreateHollow(10001, 10010001, nil).Value.SceneUid
	ctx.HollowGrid.InitDefaultMap()

	require.Equal(t, uint16(22), ctx.HollowGrid.CurPosition())

	res, err := ctx.HollowGrid.MoveTo(1337, 23, hollowUid)
	require.NoError(t, err)
	require.Equal(t, uint16(23), ctx.HollowGrid.CurPosition())

	require.NotNil(t, res.Value.SyncEvent)
	assert.Equal(t, uint64(23), res.Value.SyncEvent.EventGraphUid)
	assert.Equal(t, int32(1000109), res.Value.SyncEvent.HollowEventTemplateID)
	assert.Equal(t, protocol.EventStateWaitingClient, res.Value.SyncEvent.UpdatedEvent.State)

	require.NotNil(t, res.Value.GridUpdate)
	grid, ok := res.Value.GridUpdate.Grids[23]
	require.True(t, ok)
	assert.True(t, protocol.HasGridFlag(uint32(grid.Grid.Flag), protocol.GridFlagTravelled))
	assert.False(t, protocol.HasGridFlag(uint32(grid.Grid.Flag), protocol.GridFlagCanTriggerEvent))
	assert.True(t, grid.Grid.EventGraphInfo.Finished)
	assert.Equal(t, uint8(2), grid.Grid.EventGraphInfo.FiredCount)

	// 玩家在场景上的位置跟随棋盘移动
	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, _ := p.DungeonCollection.Scenes.Get(hollowUid)
		hollow := scene.(*protocol.SceneInfoHollow)
		section, _ := hollow.SectionsInfo.Get(1)
		assert.Equal(t, uint16(23), section.CurGridIndex)
		assert.Equal(t, uint16(22), section.PrevGridIndex)
		assert.Equal(t, uint64(23), hollow.HollowEventGraphUid)
	})

	// 再次踏入同一格：事件已存在，不再下发事件同步
	res, err = ctx.HollowGrid.MoveTo(1337, 23, hollowUid)
	require.NoError(t, err)
	assert.Nil(t, res.Value.SyncEvent)
	require.NotNil(t, res.Value.GridUpdate)
}

func battleGraphTables() *data.Tables {
	return &data.Tables{EventGraphs: map[int32]*data.ConfigEventGraph{
		1000101: {
			ID: 1000101,
			Events: map[data.ConfigEventType]data.ConfigEvent{
				data.EventTypeOnStart: {Actions: []data.ConfigAction{
					data.ActionSetMapState{
						X: data.ConfigValue{Constant: 1},
						Y: data.ConfigValue{Constant: 2},
					},
				}},
				data.EventTypeOnEnd: {Actions: []data.ConfigAction{
					data.ActionFinishHollow{},
				}},
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
	}}
}

func TestRunEventGraphUnlocksGrid(t *testing.T) {
	ctx := testContext(battleGraphTables())
	ctx.Dungeon.CreateHall(1)
	hollowUid := ctx.Dungeon.CreateHollow(10001, 10010001, nil).Value.SceneUid
	ctx.HollowGrid.InitDefaultMap()

	// 格 22 的事件图在 (1,2) 处点亮一格，即索引 2*11+1=23
	outcome, err := ctx.HollowGrid.RunEventGraph(1337, hollowUid, 22, []int32{1001})
	require.NoError(t, err)
	require.Zero(t, outcome.TriggerBattleID)
	require.False(t, outcome.HollowFinished)

	grid, ok := outcome.GridUpdate.Grids[23]
	require.True(t, ok)
	assert.True(t, protocol.HasGridFlag(uint32(grid.Grid.Flag), protocol.GridFlagVisible))
	assert.True(t, protocol.HasGridFlag(uint32(grid.Grid.Flag), protocol.GridFlagCanMove))

	require.NotNil(t, outcome.SyncEvent)
	assert.Equal(t, protocol.EventStateFinished, outcome.SyncEvent.UpdatedEvent.State)
	assert.Equal(t, []int32{1001, -1}, outcome.SyncEvent.UpdatedEvent.ActionMovePath)
}

func TestRunEventGraphTriggersBattle(t *testing.T) {
	ctx := testContext(battleGraphTables())
	ctx.Dungeon.CreateHall(1)
	hollowUid := ctx.Dungeon.CreateHollow(10001, 10010001, nil).Value.SceneUid
	ctx.HollowGrid.InitDefaultMap()

	outcome, err := ctx.HollowGrid.RunEventGraph(1337, hollowUid, 47, []int32{1001})
	require.NoError(t, err)
	assert.Equal(t, int32(battleIDNormal), outcome.TriggerBattleID)

	// 战斗触发时事件进度回到初始态，待战斗结束后续推
	require.NotNil(t, outcome.SyncEvent)
	assert.Equal(t, protocol.EventStateIniting, outcome.SyncEvent.UpdatedEvent.State)
	assert.Empty(t, outcome.SyncEvent.UpdatedEvent.ActionMovePath)
}

func TestBattleFinished(t *testing.T) {
	ctx := testContext(battleGraphTables())
	ctx.HollowGrid.InitDefaultMap()

	// 起始格 22 的事件图 OnEnd 首个动作为结束空洞
	sync, finished, err := ctx.HollowGrid.BattleFinished()
	require.NoError(t, err)
	assert.True(t, finished)
	require.NotNil(t, sync)
	assert.Equal(t, uint64(22), sync.EventGraphUid)
	assert.Equal(t, []int32{1001, 1002, 2001}, sync.UpdatedEvent.ActionMovePath)
	assert.Equal(t, protocol.EventStateWaitingClient, sync.UpdatedEvent.State)
}

func TestHollowFinishedTogglesUI(t *testing.T) {
	ctx := testContext(nil)
	ctx.Dungeon.CreateHall(1)
	hollowUid := ctx.Dungeon.CreateHollow(10001, 10010001, nil).Value.SceneUid
	_, err := ctx.Dungeon.EnterScene(hollowUid)
	require.NoError(t, err)

	res := ctx.Dungeon.HollowFinished()
	require.Equal(t, hollowUid, res.Value)

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		scene, _ := p.DungeonCollection.Scenes.Get(hollowUid)
		hollow := scene.(*protocol.SceneInfoHollow)

		state, ok := hollow.HollowSystemUIState.Get(protocol.HollowSystemTypeHollowResultPage)
		require.True(t, ok)
		assert.Equal(t, protocol.HollowSystemUIStateNormal, state)

		state, ok = hollow.HollowSystemUIState.Get(protocol.HollowSystemTypeMenu)
		require.True(t, ok)
		assert.Equal(t, protocol.HollowSystemUIStateClose, state)
	})
}

func TestYorozuyaHollowQuestBuckets(t *testing.T) {
	ctx := testContext(nil)

	ctx.Yorozuya.AddHollowQuest(102, protocol.HollowQuestTypeSideQuest, 10010002)
	res := ctx.Yorozuya.AddHollowQuest(102, protocol.HollowQuestTypeSideQuest, 10010003)
	require.NotNil(t, res.Changes)

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		quests, ok := p.YorozuyaInfo.HollowQuests.Get(102, protocol.HollowQuestTypeSideQuest)
		require.True(t, ok)
		assert.Equal(t, 2, quests.Len())
		assert.True(t, quests.Contains(10010003))
	})
}

func TestQuestCollections(t *testing.T) {
	ctx := testContext(nil)

	res := ctx.Quest.AddWorldQuest(&protocol.QuestMainCity{
		QuestInfoBase: protocol.QuestInfoBase{ID: 10020002, State: protocol.QuestStateInProgress},
	})
	require.NotZero(t, res.Value)

	// 第二个世界任务落进同一个集合
	res2 := ctx.Quest.AddWorldQuest(&protocol.QuestHollow{
		QuestInfoBase: protocol.QuestInfoBase{ID: 10010002, State: protocol.QuestStateReady},
	})
	require.Equal(t, res.Value, res2.Value)

	ctx.Props.Player(func(p *protocol.PlayerInfo) {
		quest, ok := p.QuestData.Quests.Get(res.Value, 10020002)
		require.True(t, ok)
		assert.Equal(t, res.Value, quest.QuestBase().CollectionUid)
	})
}
