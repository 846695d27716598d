package handler

import (
	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 主城常驻分区。
const mainCitySectionID = 2

func init() {
	register(protocol.RpcEnterWorldID, onRpcEnterWorld)
	register(protocol.RpcRunEventGraphID, onRpcRunEventGraph)
	register(protocol.RpcFinishEventGraphPerformShowID, onRpcFinishEventGraphPerformShow)
	register(protocol.RpcInteractWithUnitID, onRpcInteractWithUnit)
	register(protocol.RpcLeaveCurDungeonID, onRpcLeaveCurDungeon)
	register(protocol.PtcPlayerOperationID, onPtcPlayerOperation)
	register(protocol.RpcSavePosInMainCityID, onRpcSavePosInMainCity)
}

func onRpcEnterWorld(s Session, _ *protocol.RpcEnterWorldArg) (oct.Data, error) {
	ctx := s.Context()

	var playerID uint64
	ctx.Props.Account(func(a *protocol.AccountInfo) {
		if len(a.Players) > 0 {
			playerID = a.Players[0]
		}
	})
	if playerID == 0 {
		return nil, errors.New("account has no player slot")
	}
	ctx.Props.ReplacePlayer(model.NewPlayer(playerID, ctx.SkipTutorial))

	ctx.Item.AddResource(501, 120)
	ctx.Item.AddResource(10, 228)
	ctx.Item.AddResource(100, 1337)

	for i := range ctx.Tables.AvatarConfigs {
		if c := &ctx.Tables.AvatarConfigs[i]; c.Camp != 0 {
			ctx.Item.UnlockAvatar(c.ID)
		}
	}
	for i := range ctx.Tables.UnlockConfigs {
		ctx.Unlock.Unlock(ctx.Tables.UnlockConfigs[i].ID)
	}

	ctx.Dungeon.CreateHall(1)
	if err := ctx.SceneUnit.AddDefaultUnits(mainCitySectionID); err != nil {
		return nil, err
	}

	ctx.Quest.AddWorldQuest(&protocol.QuestMainCity{
		QuestInfoBase: protocol.QuestInfoBase{
			ID:                      10020002,
			State:                   protocol.QuestStateInProgress,
			FinishConditionProgress: property.NewMap[int32, int32](),
			ProgressTime:            2111012,
			SortID:                  1000,
		},
		BoundNPCAndInteract: property.NewMap[uint64, protocol.BoundNPCAndInteractInfo](),
	})
	ctx.Quest.AddWorldQuest(&protocol.QuestHollow{
		QuestInfoBase: protocol.QuestInfoBase{
			ID:                      10010002,
			CollectionUid:           3405096459205774,
			State:                   protocol.QuestStateReady,
			FinishConditionProgress: property.NewMap[int32, int32](),
			SortID:                  1001,
		},
		Statistics:    property.NewMap[protocol.QuestStatisticsType, uint64](),
		StatisticsExt: property.NewDKMap[protocol.QuestStatisticsType, int32, int32](),
	})

	ctx.Yorozuya.AddHollowQuest(102, protocol.HollowQuestTypeSideQuest, 10010002)

	if ctx.SkipTutorial {
		if err := enterMainCity(s); err != nil {
			return nil, err
		}
	} else {
		freshSceneUid := ctx.Dungeon.CreateFresh().Value
		enter, err := ctx.Dungeon.EnterScene(freshSceneUid)
		if err != nil {
			return nil, err
		}
		if err := s.SendRpcArg(protocol.PtcEnterSceneID, enter.Value); err != nil {
			return nil, err
		}
	}

	if err := s.SendRpcArg(protocol.PtcSyncSceneTimeID, &protocol.PtcSyncSceneTimeArg{
		Timestamp: 3600 * 8 * 1000,
	}); err != nil {
		return nil, err
	}

	blob, err := ctx.Props.SerializePlayerInfo()
	if err != nil {
		return nil, err
	}
	return &protocol.RpcEnterWorldRet{PlayerInfo: blob}, nil
}

// enterMainCity 下发回到主城的完整序列：分区、场景单位、进场。
func enterMainCity(s Session) error {
	ctx := s.Context()
	hallSceneUid := ctx.Dungeon.DefaultSceneUid()

	section, err := sendChanges(s, ctx.Dungeon.EnterSceneSection(hallSceneUid, mainCitySectionID))
	if err != nil {
		return err
	}
	if err := s.SendRpcArg(protocol.PtcEnterSectionID, section); err != nil {
		return err
	}

	if err := s.SendRpcArg(protocol.PtcSyncSceneUnitID,
		ctx.SceneUnit.Sync(hallSceneUid, mainCitySectionID)); err != nil {
		return err
	}

	res, err := ctx.Dungeon.EnterMainCity()
	if err != nil {
		return err
	}
	enter, err := sendChanges(s, res)
	if err != nil {
		return err
	}
	return s.SendRpcArg(protocol.PtcEnterSceneID, enter)
}

func onRpcRunEventGraph(s Session, arg *protocol.RpcRunEventGraphArg) (oct.Data, error) {
	s.Context().Log.Info("run event graph requested", "owner_uid", arg.OwnerUid)

	interactID, err := firstInteractOfUnit(s, arg.OwnerUid)
	if err != nil {
		return nil, err
	}

	sync := &protocol.PtcSyncEventInfoArg{
		OwnerType: protocol.EventGraphOwnerSceneUnit,
		OwnerUid:  arg.OwnerUid,
		UpdatedEvents: property.DKMapOf(property.Triple[int32, int32, protocol.EventInfo]{
			Key:    interactID,
			SubKey: 100,
			Value:  unitEventInfo(100, 101, []int32{101, 102, 101}, protocol.EventStateIniting, protocol.EventStateWaitingClient),
		}),
	}
	if err := s.SendRpcArg(protocol.PtcSyncEventInfoID, sync); err != nil {
		return nil, err
	}
	return &protocol.RpcRunEventGraphRet{}, nil
}

func onRpcFinishEventGraphPerformShow(s Session, arg *protocol.RpcFinishEventGraphPerformShowArg) (oct.Data, error) {
	sync := &protocol.PtcSyncEventInfoArg{
		OwnerType: protocol.EventGraphOwnerSceneUnit,
		OwnerUid:  arg.OwnerUid,
		UpdatedEvents: property.DKMapOf(property.Triple[int32, int32, protocol.EventInfo]{
			Key:    arg.EventGraphID,
			SubKey: arg.EventID,
			Value:  unitEventInfo(arg.EventID, -1, []int32{101, 102, 101, -1}, protocol.EventStateFinished, protocol.EventStateIniting),
		}),
	}
	if err := s.SendRpcArg(protocol.PtcSyncEventInfoID, sync); err != nil {
		return nil, err
	}
	return &protocol.RpcFinishEventGraphPerformShowRet{}, nil
}

func onRpcInteractWithUnit(s Session, arg *protocol.RpcInteractWithUnitArg) (oct.Data, error) {
	interactID, err := firstInteractOfUnit(s, arg.UnitUid)
	if err != nil {
		return nil, err
	}

	sync := &protocol.PtcSyncEventInfoArg{
		OwnerType: protocol.EventGraphOwnerSceneUnit,
		OwnerUid:  arg.UnitUid,
		UpdatedEvents: property.DKMapOf(property.Triple[int32, int32, protocol.EventInfo]{
			Key:    interactID,
			SubKey: 100,
			Value:  unitEventInfo(100, 101, []int32{101}, protocol.EventStateWaitingClient, protocol.EventStateRunning),
		}),
	}
	if err := s.SendRpcArg(protocol.PtcSyncEventInfoID, sync); err != nil {
		return nil, err
	}
	return &protocol.RpcInteractWithUnitRet{}, nil
}

func onRpcLeaveCurDungeon(s Session, _ *protocol.RpcLeaveCurDungeonArg) (oct.Data, error) {
	if err := enterMainCity(s); err != nil {
		return nil, err
	}
	return &protocol.RpcLeaveCurDungeonRet{}, nil
}

func onPtcPlayerOperation(_ Session, _ *protocol.PtcPlayerOperationArg) (oct.Data, error) {
	return &protocol.PtcPlayerOperationRet{}, nil
}

func onRpcSavePosInMainCity(s Session, _ *protocol.RpcSavePosInMainCityArg) (oct.Data, error) {
	s.Context().Log.Info("main city pos updated")
	return &protocol.RpcSavePosInMainCityRet{}, nil
}

// firstInteractOfUnit 查单位对应主城配置的首个交互 id。
func firstInteractOfUnit(s Session, unitUid uint64) (int32, error) {
	ctx := s.Context()

	unit, ok := ctx.SceneUnit.Get(unitUid)
	if !ok {
		return 0, errors.Newf("scene unit %d doesn't exist", unitUid)
	}
	npc, ok := unit.(*protocol.NpcProtocolInfo)
	if !ok {
		return 0, errors.Newf("scene unit %d is not an npc", unitUid)
	}

	obj, ok := ctx.Tables.GetMainCityObject(npc.Tag, npc.ID)
	if !ok || len(obj.DefaultInteractIDs) == 0 {
		return 0, errors.Newf("main city object %d/%d has no interacts", npc.Tag, npc.ID)
	}
	return obj.DefaultInteractIDs[0], nil
}

func unitEventInfo(id, curActionID int32, movePath []int32, state, prevState protocol.EventState) protocol.EventInfo {
	return protocol.EventInfo{
		ID:                      id,
		CurActionID:             curActionID,
		ActionMovePath:          movePath,
		State:                   state,
		PrevState:               prevState,
		CurActionInfo:           &protocol.ActionInfoNone{},
		CurActionState:          protocol.ActionStateInit,
		PredicatedFailedActions: property.NewSet[int32](),
		StackFrames:             []protocol.EventStackFrame{},
	}
}
