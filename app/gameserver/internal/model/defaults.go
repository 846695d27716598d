package model

import (
	"fmt"
	"time"

	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// DefaultBuddyUid 初始邦布的固定 uid，与初始存档保持一致。
const DefaultBuddyUid uint64 = 3405096459205780

// DefaultAccount 新账号的初始数据。账号名按 "1_{id}" 约定生成。
func DefaultAccount(id uint64) *protocol.AccountInfo {
	return &protocol.AccountInfo{
		AccountName: protocol.Ptr(fmt.Sprintf("1_%d", id)),
		Players:     []uint64{id},
		GmLevel:     protocol.Ptr(uint8(10)),
		AccountType: protocol.Ptr(int32(1)),
		RegisterCps: protocol.Ptr(""),
	}
}

// DefaultPlayer 新玩家的初始数据，覆盖全部 56 个根字段。
func DefaultPlayer(id uint64) *protocol.PlayerInfo {
	buddy := protocol.NewItemBuddy()
	buddy.ItemInfoBase = protocol.ItemInfoBase{
		Uid:     DefaultBuddyUid,
		ID:      50012,
		Count:   1,
		Package: 3,
	}

	return &protocol.PlayerInfo{
		Uid:                     protocol.Ptr(id),
		AccountName:             protocol.Ptr(fmt.Sprintf("1_%d", id)),
		LastEnterWorldTimestamp: protocol.Ptr(uint64(0)),
		Items: property.MapOf(
			property.Pair[uint64, protocol.ItemInfo]{Key: buddy.Uid, Value: buddy},
		),
		DungeonCollection: &protocol.DungeonCollection{
			Dungeons:          property.NewMap[uint64, protocol.DungeonInfo](),
			Scenes:            property.NewMap[uint64, protocol.SceneInfo](),
			DefaultSceneUid:   protocol.Ptr(uint64(0)),
			Transform:         &protocol.Transform{},
			UsedStoryMode:     protocol.Ptr(true),
			UsedManualQteMode: protocol.Ptr(true),
		},
		Properties:      property.NewDKMap[uint64, uint16, int32](),
		SceneProperties: property.NewDKMap[uint64, uint16, int32](),
		QuestData: &protocol.QuestData{
			Quests:                     property.NewDKMap[uint64, int32, protocol.QuestInfo](),
			WorldQuestForCurDungeon:    protocol.Ptr(int32(0)),
			WorldQuestCollectionUid:    protocol.Ptr(uint64(0)),
			UnlockConditionProgress:    property.NewDKMap[int32, int32, int32](),
			IsAfk:                      protocol.Ptr(false),
			WorldQuestForCurDungeonAfk: protocol.Ptr(int32(0)),
		},
		JoinedChatRooms: []uint64{},
		SceneUid:        protocol.Ptr(uint64(0)),
		ArchiveInfo: &protocol.ArchiveInfo{
			VideotapesInfo: property.NewMap[int32, protocol.VideotapeInfo](),
		},
		AutoRecoveryInfo: property.MapOf(
			property.Pair[int32, protocol.AutoRecoveryInfo]{Key: 501, Value: protocol.AutoRecoveryInfo{}},
		),
		UnlockInfo: &protocol.UnlockInfo{
			UnlockedList:      property.NewSet[int32](),
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		YorozuyaInfo: &protocol.YorozuyaInfo{
			LastRefreshTimestampCommon:     protocol.Ptr(uint64(0)),
			YorozuyaLevel:                  protocol.Ptr(uint32(1)),
			YorozuyaRank:                   protocol.Ptr(uint32(1)),
			GmQuests:                       property.NewMap[protocol.HollowQuestType, []int32](),
			GmEnabled:                      protocol.Ptr(true),
			HollowQuests:                   property.NewDKMap[int32, protocol.HollowQuestType, *property.Set[int32]](),
			UrgentQuestsQueue:              property.NewMap[int32, []int32](),
			LastRefreshTimestampUrgent:     protocol.Ptr(uint64(0)),
			NextRefreshTimestampUrgent:     protocol.Ptr(uint64(0)),
			FinishedHollowQuestCount:       protocol.Ptr(int32(0)),
			FinishedHollowQuestCountOfType: property.NewMap[int16, int32](),
			UnlockHollowID:                 []int32{102},
			UnlockHollowIDProgress:         property.NewDKMap[int32, int32, int32](),
		},
		EquipGachaInfo: &protocol.EquipGachaInfo{
			SmithyLevel:             protocol.Ptr(int32(0)),
			SecurityNumByLv:         property.NewMap[int32, int32](),
			TotalGachaTimes:         protocol.Ptr(int32(0)),
			EquipStarUpTimes:        protocol.Ptr(int32(0)),
			AvatarLevelAdvanceTimes: protocol.Ptr(int32(0)),
		},
		BeginnerProcedureInfo: &protocol.BeginnerProcedureInfo{
			ProcedureInfo: protocol.Ptr(int32(0)),
		},
		PosInMainCity: &protocol.PlayerPosInMainCity{
			Position:     &protocol.Vector3f{},
			Rotation:     &protocol.Vector3f{},
			InitialPosID: protocol.Ptr(int32(0)),
		},
		FairyInfo: &protocol.FairyInfo{
			FairyGroups:       property.NewMap[int32, protocol.FairyState](),
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		PopupWindowInfo: &protocol.PopupWindowInfo{
			PopupWindowList:   []int32{},
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		TipsInfo: &protocol.TipsInfo{
			TipsList:                   []int32{},
			TipsConditionProgress:      property.NewDKMap[int32, int32, int32](),
			TipsGroup:                  []int32{},
			TipsGroupConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		MainCityQuestData: &protocol.MainCityQuestData{
			ExicingFinishScriptGroup: []int32{10020001},
			InProgressQuests:         []int32{},
		},
		Embattles: &protocol.Embattles{
			LastEmbattles: property.NewMap[protocol.QuestType, protocol.EmbattleInfo](),
		},
		DayChangeInfo: &protocol.DayChangeInfo{
			LastDailyRefreshTiming: protocol.Ptr(uint64(0)),
		},
		NpcsInfo: &protocol.PlayerNPCsInfo{
			NpcsInfo:                   property.NewMap[uint64, protocol.PlayerNPCInfo](),
			DestroyNpcWhenLeaveSection: property.NewSet[uint64](),
		},
		ScriptsToExecute:        property.NewDKMap[int32, int32, protocol.ToExecuteScriptInfo](),
		ScriptsToRemove:         property.NewMap[int32, *property.Set[int32]](),
		LastLeaveWorldTimestamp: protocol.Ptr(uint64(0)),
		MuipData: &protocol.MUIPData{
			BanBeginTime:      protocol.Ptr(""),
			BanEndTime:        protocol.Ptr(""),
			TagValue:          protocol.Ptr(uint64(0)),
			DungeonEnterTimes: property.NewMap[int32, int32](),
			SceneEnterTimes:   property.NewMap[int32, int32](),
			DungeonPassTimes:  property.NewMap[int32, int32](),
			ScenePassTimes:    property.NewMap[int32, int32](),
			AlreadCmdUids:     property.NewSet[uint64](),
			GameTotalTime:     protocol.Ptr(uint64(0)),
			LanguageType:      protocol.Ptr(uint16(0)),
		},
		NickName: protocol.Ptr(""),
		RamenData: &protocol.RamenData{
			UnlockRamen:                             property.SetOf[int32](20301, 20401, 20501, 20601, 20201),
			CurRamen:                                protocol.Ptr(int32(0)),
			UsedTimes:                               protocol.Ptr(int32(0)),
			UnlockInitiativeItem:                    property.NewSet[int32](),
			UnlockRamenConditionProgress:            property.NewDKMap[int32, int32, int32](),
			UnlockItemConditionProgress:             property.NewDKMap[int32, int32, int32](),
			HasMysticalSpice:                        protocol.Ptr(true),
			UnlockHasMysticalSpiceConditionProgress: property.NewMap[int32, int32](),
			CurMysticalSpice:                        protocol.Ptr(int32(0)),
			UnlockMysticalSpice:                     property.SetOf[int32](30101, 30601, 30201, 30501, 30301, 30801, 31201, 30401, 31401, 31001),
			UnlockMysticalSpiceConditionProgress:    property.NewDKMap[int32, int32, int32](),
			UnlockInitiativeItemGroup:               property.NewSet[int32](),
			HollowItemHistory:                       property.NewMap[int32, int32](),
			InitialItemAbility:                      protocol.Ptr(uint64(0)),
			NewUnlockRamen:                          []int32{},
			EatRamenTimes:                           protocol.Ptr(int32(0)),
			MakeHollowItemTimes:                     protocol.Ptr(int32(0)),
			NewUnlockInitiativeItem:                 property.NewSet[int32](),
		},
		Shop: &protocol.ShopsInfo{
			VipLevel:     protocol.Ptr(uint8(0)),
			Shops:        property.NewMap[int32, protocol.ShopInfo](),
			ShopBuyTimes: protocol.Ptr(int32(0)),
		},
		VhsStoreData: defaultVhsStoreData(),
		OperationMailReceiveInfo: &protocol.OperationMailReceiveInfo{
			ReceiveList:       property.NewSet[int32](),
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		SecondLastEnterWorldTimestamp: protocol.Ptr(uint64(0)),
		LoginTimes:                    protocol.Ptr(int32(1)),
		CreateTimestamp:               protocol.Ptr(uint64(time.Now().UnixMilli())),
		Gender:                        protocol.Ptr(uint8(0)),
		AvatarID:                      protocol.Ptr(int32(0)),
		PrevSceneUid:                  protocol.Ptr(uint64(2)),
		RegisterCps:                   protocol.Ptr(""),
		RegisterPlatform:              protocol.Ptr(int32(3)),
		PayInfo: &protocol.PayInfo{
			MonthTotalPay: protocol.Ptr(int32(0)),
		},
		PrivateNpcs: property.NewMap[uint64, protocol.NpcInfo](),
		BattleEventInfo: &protocol.BattleEventInfo{
			UnlockBattle:                  property.NewSet[int32](),
			UnlockBattleConditionProgress: property.NewDKMap[int32, int32, int32](),
			AlreadRandBattle:              property.NewDKMap[int32, int32, map[int32]struct{}](),
			RandBattleType:                property.NewMap[int32, protocol.HollowBattleEventType](),
			AlreadBattleStage:             []string{},
		},
		GmData: &protocol.GMData{
			ConditionProress:    property.NewDKMap[string, int32, int32](),
			CompletedConditions: property.NewSet[string](),
			RegisterConditions:  property.NewSet[string](),
		},
		PlayerMailExtInfos: &protocol.PlayerMailExtInfos{
			PlayerMailExtInfo: property.NewMap[string, protocol.PlayerMailExtInfo](),
		},
		SingleDungeonGroup: &protocol.SingleDungeonGroup{
			Dungeons: property.NewMap[uint64, protocol.DungeonTable](),
			Scenes:   property.NewDKMap[uint64, uint64, protocol.SceneTable](),
			Section:  property.NewDKMap[uint64, int32, protocol.SectionInfo](),
			Npcs:     property.NewDKMap[uint64, uint64, protocol.NpcInfo](),
		},
		NewbieInfo: &protocol.NewbieInfo{
			UnlockedID:        property.SetOf[int32](3),
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		LoadingPageTipsInfo: &protocol.LoadingPageTipsInfo{
			UnlockedID:        property.SetOf[int32](1, 2, 3),
			ConditionProgress: property.NewDKMap[int32, int32, int32](),
		},
		SwitchOfStoryMode: protocol.Ptr(true),
		SwitchOfQte:       protocol.Ptr(true),
		CollectMap: &protocol.CollectMap{
			CardMap:                          property.NewSet[int32](),
			CurseMap:                         property.NewSet[int32](),
			EventIconMap:                     property.NewSet[int32](),
			UnlockCards:                      property.NewSet[int32](),
			UnlockCardConditionProgress:      property.NewDKMap[int32, int32, int32](),
			UnlockCurses:                     property.NewSet[int32](),
			UnlockCurseConditionProgress:     property.NewDKMap[int32, int32, int32](),
			UnlockEvents:                     property.NewSet[int32](),
			UnlockEventConditionProgress:     property.NewDKMap[int32, int32, int32](),
			UnlockEventIcons:                 property.NewSet[int32](),
			UnlockEventIconConditionProgress: property.NewDKMap[int32, int32, int32](),
			NewCardMap:                       property.NewSet[int32](),
			NewCurseMap:                      property.NewSet[int32](),
			NewEventIconMap:                  property.NewSet[int32](),
		},
		AreasInfo: &protocol.AreasInfo{
			AreaOwnersInfo: property.NewDKMap[uint16, int32, protocol.AreaOwnerInfo](),
			Sequence:       protocol.Ptr(uint32(0)),
		},
		BgmInfo: &protocol.BGMInfo{
			BgmID: protocol.Ptr(int32(1)),
		},
		MainCityObjectsState: property.NewMap[int32, int32](),
		HollowInfo: &protocol.HollowInfo{
			BannedHollowEvent: property.NewSet[int32](),
		},
	}
}

func defaultVhsStoreData() *protocol.VHSStoreData {
	return &protocol.VHSStoreData{
		StoreLevel:                      protocol.Ptr(int32(0)),
		UnreceivedReward:                protocol.Ptr(int32(0)),
		HollowEnterTimes:                protocol.Ptr(int32(0)),
		LastReceiveTime:                 protocol.Ptr(int32(0)),
		VhsCollectionSlot:               []int32{},
		UnlockVhsCollection:             property.NewSet[int32](),
		AlreadyTrending:                 property.NewSet[int32](),
		UnlockTrendingConditionProgress: property.NewDKMap[int32, int32, int32](),
		IsNeedRefresh:                   protocol.Ptr(true),
		ScriptsID:                       property.NewSet[int32](),
		StoreExp:                        protocol.Ptr(int32(0)),
		IsLevelChgTips:                  protocol.Ptr(true),
		VhsHollow:                       []int32{},
		IsReceiveTrendingReward:         protocol.Ptr(false),
		IsNeedFirstTrending:             protocol.Ptr(false),
		LastBasicScript:                 protocol.Ptr(int32(0)),
		IsCompleteFirstTrending:         protocol.Ptr(false),
		LastBasicNpc:                    protocol.Ptr(uint64(0)),
		CanRandomTrending:               property.NewSet[int32](),
		VhsTrendingInfo:                 []protocol.VHSTrendingInfo{},
		UnlockVhsTrendingInfo:           property.NewMap[int32, protocol.VHSTrendingCfgInfo](),
		VhsFlow:                         protocol.Ptr(int32(0)),
		ReceivedReward:                  protocol.Ptr(int32(0)),
		LastReward:                      protocol.Ptr(int32(0)),
		LastExp:                         protocol.Ptr(int32(0)),
		LastFlow:                        protocol.Ptr(int32(0)),
		LastVhsTrendingInfo:             []protocol.VHSTrendingInfo{},
		NewKnowTrend:                    []int32{},
		QuestFinishScript:               property.NewDKMap[int32, int32, map[string]uint64](),
		QuestFinishScriptsID:            property.NewSet[int32](),
		TotalReceivedReward:             property.NewMap[int32, int32](),
		LastVhsNpcInfo:                  []protocol.VHSNpcInfo{},
		VhsNpcInfo:                      []protocol.VHSNpcInfo{},
		NpcInfo:                         property.NewSet[int32](),
		TotalReceivedRewardTimes:        protocol.Ptr(int32(0)),
	}
}

// NewPlayer 在默认玩家上套用出生点。skipTutorial 时直接跳过新手流程。
func NewPlayer(id uint64, skipTutorial bool) *protocol.PlayerInfo {
	p := DefaultPlayer(id)
	p.PosInMainCity.InitialPosID = protocol.Ptr(int32(2))
	p.PosInMainCity.Position = &protocol.Vector3f{X: 30.31, Y: 0.58002, Z: 11.18}

	if skipTutorial {
		p.BeginnerProcedureInfo.ProcedureInfo = protocol.Ptr(int32(6))
		p.NickName = protocol.Ptr("xeondev")
		p.AvatarID = protocol.Ptr(int32(2021))
	}
	return p
}
