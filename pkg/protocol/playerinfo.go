package protocol

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
)

// AccountInfo 账号根属性对象，字段带 u32 长度前缀下发。
type AccountInfo struct {
	AccountName *string
	Players     []uint64
	GmLevel     *uint8
	AccountType *int32
	RegisterCps *string
}

func (x *AccountInfo) object() *propObject {
	return &propObject{
		root: true, tagged: true, numFields: 5,
		fields: []propField{
			scalarField(1, &x.AccountName),
			listField(2, &x.Players).marked(),
			scalarField(3, &x.GmLevel),
			scalarField(4, &x.AccountType),
			scalarField(5, &x.RegisterCps),
		},
	}
}

func (x *AccountInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *AccountInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

// DungeonCollection 玩家副本与场景集合。
type DungeonCollection struct {
	Dungeons          *property.Map[uint64, DungeonInfo]
	Scenes            *property.Map[uint64, SceneInfo]
	DefaultSceneUid   *uint64
	Transform         *Transform
	UsedStoryMode     *bool
	UsedManualQteMode *bool
}

func (x *DungeonCollection) object() *propObject {
	return &propObject{
		numFields: 6,
		fields: []propField{
			dataField(1, &x.Dungeons),
			dataField(2, &x.Scenes),
			scalarField(3, &x.DefaultSceneUid),
			dataField(4, &x.Transform),
			scalarField(5, &x.UsedStoryMode),
			scalarField(6, &x.UsedManualQteMode),
		},
	}
}

func (x *DungeonCollection) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *DungeonCollection) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

// QuestData 任务集合，按 (集合 uid, 任务 id) 双键索引。
type QuestData struct {
	Quests                     *property.DKMap[uint64, int32, QuestInfo]
	WorldQuestForCurDungeon    *int32
	WorldQuestCollectionUid    *uint64
	UnlockConditionProgress    *property.DKMap[int32, int32, int32]
	IsAfk                      *bool
	WorldQuestForCurDungeonAfk *int32
}

func (x *QuestData) object() *propObject {
	return &propObject{
		numFields: 6,
		fields: []propField{
			dataField(1, &x.Quests),
			scalarField(2, &x.WorldQuestForCurDungeon),
			scalarField(3, &x.WorldQuestCollectionUid),
			dataField(4, &x.UnlockConditionProgress).skipped(),
			scalarField(5, &x.IsAfk),
			scalarField(6, &x.WorldQuestForCurDungeonAfk),
		},
	}
}

func (x *QuestData) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *QuestData) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type ArchiveInfo struct {
	VideotapesInfo *property.Map[int32, VideotapeInfo]
}

func (x *ArchiveInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{dataField(1, &x.VideotapesInfo)},
	}
}

func (x *ArchiveInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *ArchiveInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type UnlockInfo struct {
	UnlockedList      *property.Set[int32]
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *UnlockInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.UnlockedList),
			dataField(2, &x.ConditionProgress).skipped(),
		},
	}
}

func (x *UnlockInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *UnlockInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

// YorozuyaInfo 万事屋委托数据。
type YorozuyaInfo struct {
	LastRefreshTimestampCommon     *uint64
	YorozuyaLevel                  *uint32
	YorozuyaRank                   *uint32
	GmQuests                       *property.Map[HollowQuestType, []int32]
	GmEnabled                      *bool
	HollowQuests                   *property.DKMap[int32, HollowQuestType, *property.Set[int32]]
	UrgentQuestsQueue              *property.Map[int32, []int32]
	LastRefreshTimestampUrgent     *uint64
	NextRefreshTimestampUrgent     *uint64
	FinishedHollowQuestCount       *int32
	FinishedHollowQuestCountOfType *property.Map[int16, int32]
	UnlockHollowID                 []int32
	UnlockHollowIDProgress         *property.DKMap[int32, int32, int32]
}

func (x *YorozuyaInfo) object() *propObject {
	return &propObject{
		numFields: 13,
		fields: []propField{
			scalarField(1, &x.LastRefreshTimestampCommon),
			scalarField(2, &x.YorozuyaLevel),
			scalarField(3, &x.YorozuyaRank),
			dataField(4, &x.GmQuests),
			scalarField(5, &x.GmEnabled),
			dataField(6, &x.HollowQuests),
			dataField(7, &x.UrgentQuestsQueue),
			scalarField(8, &x.LastRefreshTimestampUrgent),
			scalarField(9, &x.NextRefreshTimestampUrgent),
			scalarField(10, &x.FinishedHollowQuestCount),
			dataField(11, &x.FinishedHollowQuestCountOfType),
			listField(12, &x.UnlockHollowID),
			dataField(13, &x.UnlockHollowIDProgress).skipped(),
		},
	}
}

func (x *YorozuyaInfo) Marshal(w *oct.Writer, tag uint16) error { return x.object().marshal(w, tag) }
func (x *YorozuyaInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type EquipGachaInfo struct {
	SmithyLevel             *int32
	SecurityNumByLv         *property.Map[int32, int32]
	TotalGachaTimes         *int32
	EquipStarUpTimes        *int32
	AvatarLevelAdvanceTimes *int32
}

func (x *EquipGachaInfo) object() *propObject {
	return &propObject{
		numFields: 5,
		fields: []propField{
			scalarField(1, &x.SmithyLevel),
			dataField(2, &x.SecurityNumByLv),
			scalarField(3, &x.TotalGachaTimes).skipped(),
			scalarField(4, &x.EquipStarUpTimes).skipped(),
			scalarField(5, &x.AvatarLevelAdvanceTimes).skipped(),
		},
	}
}

func (x *EquipGachaInfo) Marshal(w *oct.Writer, tag uint16) error { return x.object().marshal(w, tag) }
func (x *EquipGachaInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type BeginnerProcedureInfo struct {
	ProcedureInfo *int32
}

func (x *BeginnerProcedureInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{scalarField(1, &x.ProcedureInfo)},
	}
}

func (x *BeginnerProcedureInfo) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *BeginnerProcedureInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type PlayerPosInMainCity struct {
	Position     *Vector3f
	Rotation     *Vector3f
	InitialPosID *int32
}

func (x *PlayerPosInMainCity) object() *propObject {
	return &propObject{
		numFields: 3,
		fields: []propField{
			dataField(1, &x.Position),
			dataField(2, &x.Rotation),
			scalarField(3, &x.InitialPosID),
		},
	}
}

func (x *PlayerPosInMainCity) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *PlayerPosInMainCity) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type FairyInfo struct {
	FairyGroups       *property.Map[int32, FairyState]
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *FairyInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.FairyGroups),
			dataField(2, &x.ConditionProgress).skipped(),
		},
	}
}

func (x *FairyInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *FairyInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type PopupWindowInfo struct {
	PopupWindowList   []int32
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *PopupWindowInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			listField(1, &x.PopupWindowList),
			dataField(2, &x.ConditionProgress).skipped(),
		},
	}
}

func (x *PopupWindowInfo) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *PopupWindowInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type TipsInfo struct {
	TipsList                   []int32
	TipsConditionProgress      *property.DKMap[int32, int32, int32]
	TipsGroup                  []int32
	TipsGroupConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *TipsInfo) object() *propObject {
	return &propObject{
		numFields: 4,
		fields: []propField{
			listField(1, &x.TipsList),
			dataField(2, &x.TipsConditionProgress).skipped(),
			listField(3, &x.TipsGroup),
			dataField(4, &x.TipsGroupConditionProgress).skipped(),
		},
	}
}

func (x *TipsInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *TipsInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type MainCityQuestData struct {
	ExicingFinishScriptGroup []int32
	InProgressQuests         []int32
}

func (x *MainCityQuestData) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			listField(1, &x.ExicingFinishScriptGroup),
			listField(2, &x.InProgressQuests),
		},
	}
}

func (x *MainCityQuestData) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *MainCityQuestData) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type Embattles struct {
	LastEmbattles *property.Map[QuestType, EmbattleInfo]
}

func (x *Embattles) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{dataField(1, &x.LastEmbattles)},
	}
}

func (x *Embattles) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *Embattles) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type DayChangeInfo struct {
	LastDailyRefreshTiming *uint64
}

func (x *DayChangeInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{scalarField(1, &x.LastDailyRefreshTiming)},
	}
}

func (x *DayChangeInfo) Marshal(w *oct.Writer, tag uint16) error { return x.object().marshal(w, tag) }
func (x *DayChangeInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type PlayerNPCsInfo struct {
	NpcsInfo                   *property.Map[uint64, PlayerNPCInfo]
	DestroyNpcWhenLeaveSection *property.Set[uint64]
}

func (x *PlayerNPCsInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.NpcsInfo),
			dataField(2, &x.DestroyNpcWhenLeaveSection),
		},
	}
}

func (x *PlayerNPCsInfo) Marshal(w *oct.Writer, tag uint16) error { return x.object().marshal(w, tag) }
func (x *PlayerNPCsInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type MUIPData struct {
	BanBeginTime      *string
	BanEndTime        *string
	TagValue          *uint64
	DungeonEnterTimes *property.Map[int32, int32]
	SceneEnterTimes   *property.Map[int32, int32]
	DungeonPassTimes  *property.Map[int32, int32]
	ScenePassTimes    *property.Map[int32, int32]
	AlreadCmdUids     *property.Set[uint64]
	GameTotalTime     *uint64
	LanguageType      *uint16
}

func (x *MUIPData) object() *propObject {
	return &propObject{
		numFields: 10,
		fields: []propField{
			scalarField(1, &x.BanBeginTime),
			scalarField(2, &x.BanEndTime),
			scalarField(3, &x.TagValue),
			dataField(4, &x.DungeonEnterTimes),
			dataField(5, &x.SceneEnterTimes),
			dataField(6, &x.DungeonPassTimes),
			dataField(7, &x.ScenePassTimes),
			dataField(8, &x.AlreadCmdUids),
			scalarField(9, &x.GameTotalTime),
			scalarField(10, &x.LanguageType),
		},
	}
}

func (x *MUIPData) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *MUIPData) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

// RamenData 拉面屋数据。
type RamenData struct {
	UnlockRamen                             *property.Set[int32]
	CurRamen                                *int32
	UsedTimes                               *int32
	UnlockInitiativeItem                    *property.Set[int32]
	UnlockRamenConditionProgress            *property.DKMap[int32, int32, int32]
	UnlockItemConditionProgress             *property.DKMap[int32, int32, int32]
	HasMysticalSpice                        *bool
	UnlockHasMysticalSpiceConditionProgress *property.Map[int32, int32]
	CurMysticalSpice                        *int32
	UnlockMysticalSpice                     *property.Set[int32]
	UnlockMysticalSpiceConditionProgress    *property.DKMap[int32, int32, int32]
	UnlockInitiativeItemGroup               *property.Set[int32]
	HollowItemHistory                       *property.Map[int32, int32]
	InitialItemAbility                      *uint64
	NewUnlockRamen                          []int32
	EatRamenTimes                           *int32
	MakeHollowItemTimes                     *int32
	NewUnlockInitiativeItem                 *property.Set[int32]
}

func (x *RamenData) object() *propObject {
	return &propObject{
		numFields: 18,
		fields: []propField{
			dataField(1, &x.UnlockRamen),
			scalarField(2, &x.CurRamen),
			scalarField(3, &x.UsedTimes),
			dataField(4, &x.UnlockInitiativeItem),
			dataField(5, &x.UnlockRamenConditionProgress).skipped(),
			dataField(6, &x.UnlockItemConditionProgress).skipped(),
			scalarField(7, &x.HasMysticalSpice),
			dataField(8, &x.UnlockHasMysticalSpiceConditionProgress).skipped(),
			scalarField(9, &x.CurMysticalSpice),
			dataField(10, &x.UnlockMysticalSpice),
			dataField(11, &x.UnlockMysticalSpiceConditionProgress).skipped(),
			dataField(12, &x.UnlockInitiativeItemGroup),
			dataField(13, &x.HollowItemHistory),
			scalarField(14, &x.InitialItemAbility),
			listField(15, &x.NewUnlockRamen).marked(),
			scalarField(16, &x.EatRamenTimes).skipped(),
			scalarField(17, &x.MakeHollowItemTimes).skipped(),
			dataField(18, &x.NewUnlockInitiativeItem),
		},
	}
}

func (x *RamenData) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *RamenData) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type ShopsInfo struct {
	VipLevel     *uint8
	Shops        *property.Map[int32, ShopInfo]
	ShopBuyTimes *int32
}

func (x *ShopsInfo) object() *propObject {
	return &propObject{
		numFields: 3,
		fields: []propField{
			scalarField(1, &x.VipLevel),
			dataField(2, &x.Shops).skipped(),
			scalarField(3, &x.ShopBuyTimes).skipped(),
		},
	}
}

func (x *ShopsInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *ShopsInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

// VHSStoreData 录像带店数据。
type VHSStoreData struct {
	StoreLevel                      *int32
	UnreceivedReward                *int32
	HollowEnterTimes                *int32
	LastReceiveTime                 *int32
	VhsCollectionSlot               []int32
	UnlockVhsCollection             *property.Set[int32]
	AlreadyTrending                 *property.Set[int32]
	UnlockTrendingConditionProgress *property.DKMap[int32, int32, int32]
	IsNeedRefresh                   *bool
	ScriptsID                       *property.Set[int32]
	StoreExp                        *int32
	IsLevelChgTips                  *bool
	VhsHollow                       []int32
	IsReceiveTrendingReward         *bool
	IsNeedFirstTrending             *bool
	LastBasicScript                 *int32
	IsCompleteFirstTrending         *bool
	LastBasicNpc                    *uint64
	CanRandomTrending               *property.Set[int32]
	VhsTrendingInfo                 []VHSTrendingInfo
	UnlockVhsTrendingInfo           *property.Map[int32, VHSTrendingCfgInfo]
	VhsFlow                         *int32
	ReceivedReward                  *int32
	LastReward                      *int32
	LastExp                         *int32
	LastFlow                        *int32
	LastVhsTrendingInfo             []VHSTrendingInfo
	NewKnowTrend                    []int32
	QuestFinishScript               *property.DKMap[int32, int32, map[string]uint64]
	QuestFinishScriptsID            *property.Set[int32]
	TotalReceivedReward             *property.Map[int32, int32]
	LastVhsNpcInfo                  []VHSNpcInfo
	VhsNpcInfo                      []VHSNpcInfo
	NpcInfo                         *property.Set[int32]
	TotalReceivedRewardTimes        *int32
}

func (x *VHSStoreData) object() *propObject {
	return &propObject{
		numFields: 35,
		fields: []propField{
			scalarField(1, &x.StoreLevel),
			scalarField(2, &x.UnreceivedReward),
			scalarField(3, &x.HollowEnterTimes).skipped(),
			scalarField(4, &x.LastReceiveTime),
			listField(5, &x.VhsCollectionSlot).marked(),
			dataField(6, &x.UnlockVhsCollection),
			dataField(7, &x.AlreadyTrending).skipped(),
			dataField(8, &x.UnlockTrendingConditionProgress).skipped(),
			scalarField(9, &x.IsNeedRefresh),
			dataField(10, &x.ScriptsID).skipped(),
			scalarField(11, &x.StoreExp),
			scalarField(12, &x.IsLevelChgTips),
			listField(13, &x.VhsHollow).skipped(),
			scalarField(14, &x.IsReceiveTrendingReward).skipped(),
			scalarField(15, &x.IsNeedFirstTrending).skipped(),
			scalarField(16, &x.LastBasicScript).skipped(),
			scalarField(17, &x.IsCompleteFirstTrending).skipped(),
			scalarField(18, &x.LastBasicNpc).skipped(),
			dataField(19, &x.CanRandomTrending).skipped(),
			listField(20, &x.VhsTrendingInfo).marked(),
			dataField(21, &x.UnlockVhsTrendingInfo),
			scalarField(22, &x.VhsFlow),
			scalarField(23, &x.ReceivedReward),
			scalarField(24, &x.LastReward),
			scalarField(25, &x.LastExp),
			scalarField(26, &x.LastFlow),
			listField(27, &x.LastVhsTrendingInfo).marked(),
			listField(28, &x.NewKnowTrend).marked(),
			dataField(29, &x.QuestFinishScript).skipped(),
			dataField(30, &x.QuestFinishScriptsID).skipped(),
			dataField(31, &x.TotalReceivedReward).skipped(),
			listField(32, &x.LastVhsNpcInfo).marked(),
			listField(33, &x.VhsNpcInfo).skipped(),
			dataField(34, &x.NpcInfo).skipped(),
			scalarField(35, &x.TotalReceivedRewardTimes).skipped(),
		},
	}
}

func (x *VHSStoreData) Marshal(w *oct.Writer, tag uint16) error { return x.object().marshal(w, tag) }
func (x *VHSStoreData) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type OperationMailReceiveInfo struct {
	ReceiveList       *property.Set[int32]
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *OperationMailReceiveInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.ReceiveList),
			dataField(2, &x.ConditionProgress),
		},
	}
}

func (x *OperationMailReceiveInfo) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *OperationMailReceiveInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type PayInfo struct {
	MonthTotalPay *int32
}

func (x *PayInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{scalarField(1, &x.MonthTotalPay)},
	}
}

func (x *PayInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *PayInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type BattleEventInfo struct {
	UnlockBattle                  *property.Set[int32]
	UnlockBattleConditionProgress *property.DKMap[int32, int32, int32]
	AlreadRandBattle              *property.DKMap[int32, int32, map[int32]struct{}]
	RandBattleType                *property.Map[int32, HollowBattleEventType]
	AlreadBattleStage             []string
}

func (x *BattleEventInfo) object() *propObject {
	return &propObject{
		numFields: 5,
		fields: []propField{
			dataField(1, &x.UnlockBattle).skipped(),
			dataField(2, &x.UnlockBattleConditionProgress).skipped(),
			dataField(3, &x.AlreadRandBattle).skipped(),
			dataField(4, &x.RandBattleType),
			listField(5, &x.AlreadBattleStage).marked(),
		},
	}
}

func (x *BattleEventInfo) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *BattleEventInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type GMData struct {
	ConditionProress    *property.DKMap[string, int32, int32]
	CompletedConditions *property.Set[string]
	RegisterConditions  *property.Set[string]
}

func (x *GMData) object() *propObject {
	return &propObject{
		numFields: 3,
		fields: []propField{
			dataField(1, &x.ConditionProress).skipped(),
			dataField(2, &x.CompletedConditions).skipped(),
			dataField(3, &x.RegisterConditions).skipped(),
		},
	}
}

func (x *GMData) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *GMData) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type PlayerMailExtInfos struct {
	PlayerMailExtInfo *property.Map[string, PlayerMailExtInfo]
}

func (x *PlayerMailExtInfos) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{dataField(1, &x.PlayerMailExtInfo)},
	}
}

func (x *PlayerMailExtInfos) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *PlayerMailExtInfos) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type SingleDungeonGroup struct {
	Dungeons *property.Map[uint64, DungeonTable]
	Scenes   *property.DKMap[uint64, uint64, SceneTable]
	Section  *property.DKMap[uint64, int32, SectionInfo]
	Npcs     *property.DKMap[uint64, uint64, NpcInfo]
}

func (x *SingleDungeonGroup) object() *propObject {
	return &propObject{
		numFields: 4,
		fields: []propField{
			dataField(1, &x.Dungeons),
			dataField(2, &x.Scenes),
			dataField(3, &x.Section),
			dataField(4, &x.Npcs),
		},
	}
}

func (x *SingleDungeonGroup) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *SingleDungeonGroup) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

type NewbieInfo struct {
	UnlockedID        *property.Set[int32]
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *NewbieInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.UnlockedID),
			dataField(2, &x.ConditionProgress).skipped(),
		},
	}
}

func (x *NewbieInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *NewbieInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type LoadingPageTipsInfo struct {
	UnlockedID        *property.Set[int32]
	ConditionProgress *property.DKMap[int32, int32, int32]
}

func (x *LoadingPageTipsInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.UnlockedID),
			dataField(2, &x.ConditionProgress).skipped(),
		},
	}
}

func (x *LoadingPageTipsInfo) Marshal(w *oct.Writer, tag uint16) error {
	return x.object().marshal(w, tag)
}

func (x *LoadingPageTipsInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.object().unmarshal(r, tag)
}

// CollectMap 图鉴收集数据。
type CollectMap struct {
	CardMap                          *property.Set[int32]
	CurseMap                         *property.Set[int32]
	EventIconMap                     *property.Set[int32]
	UnlockCards                      *property.Set[int32]
	UnlockCardConditionProgress      *property.DKMap[int32, int32, int32]
	UnlockCurses                     *property.Set[int32]
	UnlockCurseConditionProgress     *property.DKMap[int32, int32, int32]
	UnlockEvents                     *property.Set[int32]
	UnlockEventConditionProgress     *property.DKMap[int32, int32, int32]
	UnlockEventIcons                 *property.Set[int32]
	UnlockEventIconConditionProgress *property.DKMap[int32, int32, int32]
	NewCardMap                       *property.Set[int32]
	NewCurseMap                      *property.Set[int32]
	NewEventIconMap                  *property.Set[int32]
}

func (x *CollectMap) object() *propObject {
	return &propObject{
		numFields: 14,
		fields: []propField{
			dataField(1, &x.CardMap),
			dataField(2, &x.CurseMap),
			dataField(3, &x.EventIconMap),
			dataField(4, &x.UnlockCards).skipped(),
			dataField(5, &x.UnlockCardConditionProgress).skipped(),
			dataField(6, &x.UnlockCurses).skipped(),
			dataField(7, &x.UnlockCurseConditionProgress).skipped(),
			dataField(8, &x.UnlockEvents).skipped(),
			dataField(9, &x.UnlockEventConditionProgress).skipped(),
			dataField(10, &x.UnlockEventIcons).skipped(),
			dataField(11, &x.UnlockEventIconConditionProgress).skipped(),
			dataField(12, &x.NewCardMap),
			dataField(13, &x.NewCurseMap),
			dataField(14, &x.NewEventIconMap),
		},
	}
}

func (x *CollectMap) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *CollectMap) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type AreasInfo struct {
	AreaOwnersInfo *property.DKMap[uint16, int32, AreaOwnerInfo]
	Sequence       *uint32
}

func (x *AreasInfo) object() *propObject {
	return &propObject{
		numFields: 2,
		fields: []propField{
			dataField(1, &x.AreaOwnersInfo),
			scalarField(2, &x.Sequence),
		},
	}
}

func (x *AreasInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *AreasInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type BGMInfo struct {
	BgmID *int32
}

func (x *BGMInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{scalarField(1, &x.BgmID)},
	}
}

func (x *BGMInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *BGMInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

type HollowInfo struct {
	BannedHollowEvent *property.Set[int32]
}

func (x *HollowInfo) object() *propObject {
	return &propObject{
		numFields: 1,
		fields:    []propField{dataField(1, &x.BannedHollowEvent)},
	}
}

func (x *HollowInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *HollowInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }

// PlayerInfo 玩家根属性对象，字段带 u32 长度前缀下发。
type PlayerInfo struct {
	Uid                           *uint64
	AccountName                   *string
	LastEnterWorldTimestamp       *uint64
	Items                         *property.Map[uint64, ItemInfo]
	DungeonCollection             *DungeonCollection
	Properties                    *property.DKMap[uint64, uint16, int32]
	SceneProperties               *property.DKMap[uint64, uint16, int32]
	QuestData                     *QuestData
	JoinedChatRooms               []uint64
	SceneUid                      *uint64
	ArchiveInfo                   *ArchiveInfo
	AutoRecoveryInfo              *property.Map[int32, AutoRecoveryInfo]
	UnlockInfo                    *UnlockInfo
	YorozuyaInfo                  *YorozuyaInfo
	EquipGachaInfo                *EquipGachaInfo
	BeginnerProcedureInfo         *BeginnerProcedureInfo
	PosInMainCity                 *PlayerPosInMainCity
	FairyInfo                     *FairyInfo
	PopupWindowInfo               *PopupWindowInfo
	TipsInfo                      *TipsInfo
	MainCityQuestData             *MainCityQuestData
	Embattles                     *Embattles
	DayChangeInfo                 *DayChangeInfo
	NpcsInfo                      *PlayerNPCsInfo
	ScriptsToExecute              *property.DKMap[int32, int32, ToExecuteScriptInfo]
	ScriptsToRemove               *property.Map[int32, *property.Set[int32]]
	LastLeaveWorldTimestamp       *uint64
	MuipData                      *MUIPData
	NickName                      *string
	RamenData                     *RamenData
	Shop                          *ShopsInfo
	VhsStoreData                  *VHSStoreData
	OperationMailReceiveInfo      *OperationMailReceiveInfo
	SecondLastEnterWorldTimestamp *uint64
	LoginTimes                    *int32
	CreateTimestamp               *uint64
	Gender                        *uint8
	AvatarID                      *int32
	PrevSceneUid                  *uint64
	RegisterCps                   *string
	RegisterPlatform              *int32
	PayInfo                       *PayInfo
	PrivateNpcs                   *property.Map[uint64, NpcInfo]
	BattleEventInfo               *BattleEventInfo
	GmData                        *GMData
	PlayerMailExtInfos            *PlayerMailExtInfos
	SingleDungeonGroup            *SingleDungeonGroup
	NewbieInfo                    *NewbieInfo
	LoadingPageTipsInfo           *LoadingPageTipsInfo
	SwitchOfStoryMode             *bool
	SwitchOfQte                   *bool
	CollectMap                    *CollectMap
	AreasInfo                     *AreasInfo
	BgmInfo                       *BGMInfo
	MainCityObjectsState          *property.Map[int32, int32]
	HollowInfo                    *HollowInfo
}

func (x *PlayerInfo) object() *propObject {
	return &propObject{
		root: true, tagged: true, numFields: 56,
		fields: []propField{
			scalarField(1, &x.Uid),
			scalarField(2, &x.AccountName),
			scalarField(3, &x.LastEnterWorldTimestamp),
			dataField(4, &x.Items),
			dataField(5, &x.DungeonCollection),
			dataField(6, &x.Properties).skipped(),
			dataField(7, &x.SceneProperties),
			dataField(8, &x.QuestData),
			listField(9, &x.JoinedChatRooms),
			scalarField(10, &x.SceneUid),
			dataField(11, &x.ArchiveInfo),
			dataField(12, &x.AutoRecoveryInfo),
			dataField(13, &x.UnlockInfo),
			dataField(14, &x.YorozuyaInfo),
			dataField(15, &x.EquipGachaInfo),
			dataField(16, &x.BeginnerProcedureInfo),
			dataField(17, &x.PosInMainCity),
			dataField(18, &x.FairyInfo),
			dataField(19, &x.PopupWindowInfo),
			dataField(20, &x.TipsInfo),
			dataField(21, &x.MainCityQuestData),
			dataField(22, &x.Embattles),
			dataField(23, &x.DayChangeInfo).skipped(),
			dataField(24, &x.NpcsInfo).skipped(),
			dataField(25, &x.ScriptsToExecute).skipped(),
			dataField(26, &x.ScriptsToRemove).skipped(),
			scalarField(27, &x.LastLeaveWorldTimestamp),
			dataField(28, &x.MuipData).skipped(),
			scalarField(29, &x.NickName),
			dataField(30, &x.RamenData),
			dataField(31, &x.Shop),
			dataField(32, &x.VhsStoreData),
			dataField(33, &x.OperationMailReceiveInfo).skipped(),
			scalarField(34, &x.SecondLastEnterWorldTimestamp),
			scalarField(35, &x.LoginTimes),
			scalarField(36, &x.CreateTimestamp),
			scalarField(37, &x.Gender),
			scalarField(38, &x.AvatarID),
			scalarField(39, &x.PrevSceneUid),
			scalarField(40, &x.RegisterCps),
			scalarField(41, &x.RegisterPlatform),
			dataField(42, &x.PayInfo),
			dataField(43, &x.PrivateNpcs).skipped(),
			dataField(44, &x.BattleEventInfo),
			dataField(45, &x.GmData),
			dataField(46, &x.PlayerMailExtInfos).skipped(),
			dataField(47, &x.SingleDungeonGroup).skipped(),
			dataField(48, &x.NewbieInfo),
			dataField(49, &x.LoadingPageTipsInfo),
			scalarField(50, &x.SwitchOfStoryMode),
			scalarField(51, &x.SwitchOfQte),
			dataField(52, &x.CollectMap),
			dataField(53, &x.AreasInfo),
			dataField(54, &x.BgmInfo),
			dataField(55, &x.MainCityObjectsState),
			dataField(56, &x.HollowInfo),
		},
	}
}

func (x *PlayerInfo) Marshal(w *oct.Writer, tag uint16) error   { return x.object().marshal(w, tag) }
func (x *PlayerInfo) Unmarshal(r *oct.Reader, tag uint16) error { return x.object().unmarshal(r, tag) }
