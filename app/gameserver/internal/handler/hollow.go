package handler

import (
	"sort"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 首章空洞的固定配置。
const (
	hollowDungeonID      = 10001
	hollowWorldQuestID   = 10010001
	hollowInnerQuestID   = 1001000101
	performEventGraphUid = 3405096459205834
	performTemplateID    = 1000108
)

func init() {
	register(protocol.RpcStartHollowQuestID, onRpcStartHollowQuest)
	register(protocol.RpcHollowMoveID, onRpcHollowMove)
	register(protocol.RpcRunHollowEventGraphID, onRpcRunHollowEventGraph)
	register(protocol.RpcEndBattleID, onRpcEndBattle)
}

func onRpcStartHollowQuest(s Session, arg *protocol.RpcStartHollowQuestArg) (oct.Data, error) {
	ctx := s.Context()
	ctx.Log.Info("start hollow quest", "quest_id", arg.HollowQuestID)

	// 出战角色按编成位排序
	type slot struct {
		idx int8
		uid uint64
	}
	var slots []slot
	if arg.AvatarMap != nil {
		arg.AvatarMap.Range(func(idx int8, uid uint64) bool {
			slots = append(slots, slot{idx: idx, uid: uid})
			return true
		})
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].idx < slots[j].idx })

	avatars := make([]uint64, 0, len(slots))
	for _, sl := range slots {
		var hp int32
		found := false
		ctx.Props.Player(func(p *protocol.PlayerInfo) {
			item, ok := p.Items.Get(sl.uid)
			if !ok {
				return
			}
			avatar, ok := item.(*protocol.ItemAvatar)
			if !ok {
				return
			}
			if c, ok := ctx.Tables.GetAvatarConfig(avatar.ID); ok {
				hp = c.HP
				found = true
			}
		})
		if !found {
			return &protocol.RpcStartHollowQuestRet{
				RetHead: protocol.ErrRet(protocol.ErrorCodeObjectNotExist),
			}, nil
		}

		if err := s.SendRpcArg(protocol.PtcPropertyChangedID, &protocol.PtcPropertyChangedArg{
			SceneUnitUid: sl.uid,
			IsPartial:    true,
			ChangedProperties: property.MapOf(
				property.Pair[uint16, int32]{Key: 1, Value: hp},
				property.Pair[uint16, int32]{Key: 111, Value: hp},
			),
		}); err != nil {
			return nil, err
		}
		avatars = append(avatars, sl.uid)
	}

	created, err := sendChanges(s, ctx.Dungeon.CreateHollow(hollowDungeonID, hollowWorldQuestID, avatars))
	if err != nil {
		return nil, err
	}

	innerQuest := protocol.NewQuestDungeonInner()
	innerQuest.QuestInfoBase = protocol.QuestInfoBase{
		ID:                      hollowInnerQuestID,
		ParentQuestID:           hollowWorldQuestID,
		State:                   protocol.QuestStateInProgress,
		FinishConditionProgress: property.NewMap[int32, int32](),
		ProgressTime:            2111605,
		SortID:                  2000,
	}
	if _, err := sendChanges(s, ctx.Quest.AddQuestToCollection(created.DungeonUid, innerQuest)); err != nil {
		return nil, err
	}

	enterRes, err := ctx.Dungeon.EnterScene(created.SceneUid)
	if err != nil {
		return nil, err
	}
	enter, err := sendChanges(s, enterRes)
	if err != nil {
		return nil, err
	}

	ctx.HollowGrid.InitDefaultMap()

	playerUid := ctx.Props.PlayerUid()
	if err := s.SendRpcArg(protocol.PtcSyncHollowGridMapsID,
		ctx.HollowGrid.SyncHollowMaps(playerUid, created.SceneUid)); err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcPositionInHollowChangedID, &protocol.PtcPositionInHollowChangedArg{
		PlayerUid:   playerUid,
		HollowLevel: 1,
		Position:    ctx.HollowGrid.CurPosition(),
	}); err != nil {
		return nil, err
	}

	// 开场演出事件图
	if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, &protocol.PtcSyncHollowEventInfoArg{
		EventGraphUid:         performEventGraphUid,
		HollowEventTemplateID: performTemplateID,
		EventGraphID:          performTemplateID,
		UpdatedEvent:          unitEventInfo(1000, 1001, []int32{1001}, protocol.EventStateWaitingClient, protocol.EventStateRunning),
		Specials:              property.NewMap[string, int32](),
	}); err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcEnterSceneID, enter); err != nil {
		return nil, err
	}
	return &protocol.RpcStartHollowQuestRet{}, nil
}

func onRpcHollowMove(s Session, arg *protocol.RpcHollowMoveArg) (oct.Data, error) {
	ctx := s.Context()
	ctx.Log.Info("hollow movement", "positions", arg.Positions)

	dest := arg.Positions[len(arg.Positions)-1]
	playerUid := ctx.Props.PlayerUid()
	sceneUid := ctx.Dungeon.CurSceneUid()

	res, err := ctx.HollowGrid.MoveTo(playerUid, dest, sceneUid)
	if err != nil {
		return nil, err
	}
	move, err := sendChanges(s, res)
	if err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcHollowGridID, move.GridUpdate); err != nil {
		return nil, err
	}
	if move.SyncEvent != nil {
		if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, move.SyncEvent); err != nil {
			return nil, err
		}
	}

	if err := s.SendRpcArg(protocol.PtcPositionInHollowChangedID, &protocol.PtcPositionInHollowChangedArg{
		PlayerUid:   playerUid,
		HollowLevel: arg.HollowLevel,
		Position:    dest,
	}); err != nil {
		return nil, err
	}

	return &protocol.RpcHollowMoveRet{HollowLevel: arg.HollowLevel, Position: dest}, nil
}

func onRpcRunHollowEventGraph(s Session, arg *protocol.RpcRunHollowEventGraphArg) (oct.Data, error) {
	ctx := s.Context()
	ctx.Log.Info("run hollow event graph", "event_graph_uid", arg.EventGraphUid)

	sceneUid := ctx.Dungeon.CurSceneUid()
	playerUid := ctx.Props.PlayerUid()

	// 开场演出：直接判定完成并把玩家落回起始格
	if arg.EventGraphUid == performEventGraphUid {
		if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, &protocol.PtcSyncHollowEventInfoArg{
			EventGraphUid:         performEventGraphUid,
			HollowEventTemplateID: performTemplateID,
			EventGraphID:          performTemplateID,
			UpdatedEvent:          unitEventInfo(1000, -1, []int32{1001, 1002, -1}, protocol.EventStateFinished, protocol.EventStateRunning),
			Specials:              property.NewMap[string, int32](),
		}); err != nil {
			return nil, err
		}

		res, err := ctx.HollowGrid.MoveTo(playerUid, ctx.HollowGrid.CurPosition(), sceneUid)
		if err != nil {
			return nil, err
		}
		move, err := sendChanges(s, res)
		if err != nil {
			return nil, err
		}
		if err := s.SendRpcArg(protocol.PtcHollowGridID, move.GridUpdate); err != nil {
			return nil, err
		}
		if move.SyncEvent != nil {
			if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, move.SyncEvent); err != nil {
				return nil, err
			}
		}
		return &protocol.RpcRunHollowEventGraphRet{}, nil
	}

	outcome, err := ctx.HollowGrid.RunEventGraph(playerUid, sceneUid, arg.EventGraphUid, arg.MovePath)
	if err != nil {
		return nil, err
	}

	if !outcome.HollowFinished {
		if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, outcome.SyncEvent); err != nil {
			return nil, err
		}
	}
	if err := s.SendRpcArg(protocol.PtcHollowGridID, outcome.GridUpdate); err != nil {
		return nil, err
	}

	if outcome.HollowFinished {
		if _, err := sendChanges(s, ctx.Dungeon.HollowFinished()); err != nil {
			return nil, err
		}
		if err := s.SendRpcArg(protocol.PtcDungeonQuestFinishedID, &protocol.PtcDungeonQuestFinishedArg{
			PlayerUid:   playerUid,
			QuestID:     hollowInnerQuestID,
			Success:     true,
			RewardItems: property.NewMap[uint64, protocol.ItemIDCount](),
			Statistics:  property.NewMap[protocol.QuestStatisticsType, uint64](),
		}); err != nil {
			return nil, err
		}
	}

	if outcome.TriggerBattleID != 0 {
		battleSceneUid, err := sendChanges(s, ctx.Dungeon.CreateFight(outcome.TriggerBattleID, sceneUid))
		if err != nil {
			return nil, err
		}

		if err := s.SendRpcArg(protocol.PtcPositionInHollowChangedID, &protocol.PtcPositionInHollowChangedArg{
			PlayerUid:   playerUid,
			HollowLevel: 1,
			Position:    ctx.HollowGrid.CurPosition(),
		}); err != nil {
			return nil, err
		}

		enterRes, err := ctx.Dungeon.EnterBattle(battleSceneUid)
		if err != nil {
			return nil, err
		}
		enter, err := sendChanges(s, enterRes)
		if err != nil {
			return nil, err
		}
		if err := s.SendRpcArg(protocol.PtcEnterSceneID, enter); err != nil {
			return nil, err
		}
	}

	return &protocol.RpcRunHollowEventGraphRet{}, nil
}

func onRpcEndBattle(s Session, _ *protocol.RpcEndBattleArg) (oct.Data, error) {
	ctx := s.Context()
	playerUid := ctx.Props.PlayerUid()

	syncEvent, hollowFinished, err := ctx.HollowGrid.BattleFinished()
	if err != nil {
		return nil, err
	}

	if !hollowFinished {
		if err := s.SendRpcArg(protocol.PtcSyncHollowEventInfoID, syncEvent); err != nil {
			return nil, err
		}
	} else {
		if _, err := sendChanges(s, ctx.Dungeon.HollowFinished()); err != nil {
			return nil, err
		}
		if err := s.SendRpcArg(protocol.PtcDungeonQuestFinishedID, &protocol.PtcDungeonQuestFinishedArg{
			PlayerUid:   playerUid,
			QuestID:     hollowInnerQuestID,
			Success:     true,
			RewardItems: property.NewMap[uint64, protocol.ItemIDCount](),
			Statistics: property.MapOf(property.Pair[protocol.QuestStatisticsType, uint64]{
				Key: protocol.QuestStatisticsArrivedLevel, Value: 1,
			}),
		}); err != nil {
			return nil, err
		}
	}

	leaveRes, err := ctx.Dungeon.LeaveBattle()
	if err != nil {
		return nil, err
	}
	enter, err := sendChanges(s, leaveRes)
	if err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcSyncHollowGridMapsID,
		ctx.HollowGrid.SyncHollowMaps(playerUid, ctx.Dungeon.CurSceneUid())); err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcPositionInHollowChangedID, &protocol.PtcPositionInHollowChangedArg{
		PlayerUid:   playerUid,
		HollowLevel: 1,
		Position:    ctx.HollowGrid.CurPosition(),
	}); err != nil {
		return nil, err
	}

	if err := s.SendRpcArg(protocol.PtcEnterSceneID, enter); err != nil {
		return nil, err
	}

	templateID, _ := ctx.HollowGrid.CurEventTemplateID()
	return &protocol.RpcEndBattleRet{
		HollowEventID:       templateID,
		RewardItemsClassify: map[protocol.BattleRewardType]map[uint64]protocol.ItemIDCount{},
	}, nil
}
