package protocol

import (
	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
)

// PropertyBlob 预序列化的属性对象字节流。
type PropertyBlob struct {
	Stream []byte
}

func (x *PropertyBlob) Marshal(w *oct.Writer, _ uint16) error {
	if len(x.Stream) == 0 {
		w.WriteInt32(0)
		return nil
	}
	w.WriteInt32(int32(len(x.Stream)))
	w.WriteRaw(x.Stream)
	return nil
}

func (x *PropertyBlob) Unmarshal(r *oct.Reader, _ uint16) error {
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	if n < 0 {
		return errors.Wrap(oct.ErrNegativeLength, "property blob")
	}
	x.Stream, err = r.ReadRaw(int(n))
	return err
}

// Vector3f 三维坐标，分量按 f64 编码。
type Vector3f struct {
	X float64
	Y float64
	Z float64
}

func (x *Vector3f) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.X, x.Y, x.Z)
}

func (x *Vector3f) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.X, &x.Y, &x.Z)
}

// Transform 位置与朝向。
type Transform struct {
	Position Vector3f
	Rotation Vector3f
}

func (x *Transform) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Position, x.Rotation)
}

func (x *Transform) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Position, &x.Rotation)
}

type FightDropInfo struct {
	DropPackID int32
	Param1     int32
}

func (x *FightDropInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.DropPackID, x.Param1)
}

func (x *FightDropInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.DropPackID, &x.Param1)
}

type ChallengeResultInfo struct {
	Param1 int32
}

func (x *ChallengeResultInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 1, x.Param1)
}

func (x *ChallengeResultInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 1, &x.Param1)
}

type ItemIDCount struct {
	ID    int32
	Count int32
}

func (x *ItemIDCount) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.ID, x.Count)
}

func (x *ItemIDCount) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.ID, &x.Count)
}

type TimeEventInfo struct {
	ExecutedCount int32
}

func (x *TimeEventInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 1, x.ExecutedCount)
}

func (x *TimeEventInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 1, &x.ExecutedCount)
}

type TimeEventGroupInfo struct {
	GroupID             int32
	ExecutingScripts    *property.Set[int32]
	CompleteTime        uint64
	TimeEventsInfo      *property.Map[int32, TimeEventInfo]
	BoundNPCAndInteract *property.Map[uint64, BoundNPCAndInteractInfo]
	ExecutingTimeEvent  *property.Set[int32]
}

func (x *TimeEventGroupInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6,
		x.GroupID, x.ExecutingScripts, x.CompleteTime,
		x.TimeEventsInfo, x.BoundNPCAndInteract, x.ExecutingTimeEvent)
}

func (x *TimeEventGroupInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6,
		&x.GroupID, &x.ExecutingScripts, &x.CompleteTime,
		&x.TimeEventsInfo, &x.BoundNPCAndInteract, &x.ExecutingTimeEvent)
}

type MainCityTimeInfo struct {
	InitialTime               uint32
	PassedMilliseconds        uint64
	ExecutingEventGroups      *property.Set[int32]
	UnlockedTimeEvents        *property.Set[int32]
	TimeEventGroupsInfo       *property.Map[int32, TimeEventGroupInfo]
	ConditionProgressOfUnlock *property.DKMap[int32, int32, int32]
	ConditionProgressOfEnd    *property.DKMap[int32, int32, int32]
	EndedTimeEvents           *property.Set[int32]
	LeaveTime                 uint64
}

func (x *MainCityTimeInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 9,
		x.InitialTime, x.PassedMilliseconds, x.ExecutingEventGroups, x.UnlockedTimeEvents,
		x.TimeEventGroupsInfo, x.ConditionProgressOfUnlock, x.ConditionProgressOfEnd,
		x.EndedTimeEvents, x.LeaveTime)
}

func (x *MainCityTimeInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 9,
		&x.InitialTime, &x.PassedMilliseconds, &x.ExecutingEventGroups, &x.UnlockedTimeEvents,
		&x.TimeEventGroupsInfo, &x.ConditionProgressOfUnlock, &x.ConditionProgressOfEnd,
		&x.EndedTimeEvents, &x.LeaveTime)
}

type AvatarPropertyChgInHollow struct {
	HpLost int32
	HpAdd  int32
}

func (x *AvatarPropertyChgInHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.HpLost, x.HpAdd)
}

func (x *AvatarPropertyChgInHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.HpLost, &x.HpAdd)
}

// AvatarUnitInfo 副本内的角色单位。
type AvatarUnitInfo struct {
	Uid                 uint64
	PropertiesUid       uint64
	IsBanned            bool
	ModifiedProperty    *property.DKMap[uint64, PropertyType, int32]
	HpLostHollow        int32
	HpAddHollow         int32
	LayerPropertyChange *property.Map[int32, AvatarPropertyChgInHollow]
}

func (x *AvatarUnitInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 7,
		x.Uid, x.PropertiesUid, x.IsBanned, x.ModifiedProperty,
		x.HpLostHollow, x.HpAddHollow, x.LayerPropertyChange)
}

func (x *AvatarUnitInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 7,
		&x.Uid, &x.PropertiesUid, &x.IsBanned, &x.ModifiedProperty,
		&x.HpLostHollow, &x.HpAddHollow, &x.LayerPropertyChange)
}

type BuddyUnitInfo struct {
	Uid        uint64
	Properties uint64
}

func (x *BuddyUnitInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Uid, x.Properties)
}

func (x *BuddyUnitInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Uid, &x.Properties)
}

type DungeonDropPollInfo struct {
	ActionCardMask *property.Map[int32, int32]
}

func (x *DungeonDropPollInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 1, x.ActionCardMask)
}

func (x *DungeonDropPollInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 1, &x.ActionCardMask)
}

// BattleReport 客户端上报的一条战报。
type BattleReport struct {
	Index      int32
	ReportType ReportType
	ID         int32
}

func (x *BattleReport) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.Index, x.ReportType, x.ID)
}

func (x *BattleReport) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.Index, &x.ReportType, &x.ID)
}

// DungeonInfo 一次副本实例的完整状态。
type DungeonInfo struct {
	Uid                     uint64
	ID                      int32
	DefaultSceneUid         uint64
	StartTimestamp          uint64
	ToBeDestroyed           bool
	BackSceneUid            uint64
	QuestCollectionUid      uint64
	Avatars                 *property.Map[uint64, AvatarUnitInfo]
	Buddy                   BuddyUnitInfo
	WorldQuestID            int32
	ScenePropertiesUid      uint64
	DropPollChgInfos        *property.Map[DungeonContentDropPoolType, DungeonDropPollInfo]
	IsInDungeon             bool
	InitiativeItem          int32
	InitiativeItemUsedTimes int32
	AvatarMap               *property.Map[int8, AvatarUnitInfo]
	BattleReport            []BattleReport
	DungeonGroupUid         uint64
	EnteredTimes            uint16
	IsPresetAvatar          bool
	HollowEventVersion      int32
}

func (x *DungeonInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 21,
		x.Uid, x.ID, x.DefaultSceneUid, x.StartTimestamp, x.ToBeDestroyed,
		x.BackSceneUid, x.QuestCollectionUid, x.Avatars, x.Buddy, x.WorldQuestID,
		x.ScenePropertiesUid, x.DropPollChgInfos, x.IsInDungeon, x.InitiativeItem,
		x.InitiativeItemUsedTimes, x.AvatarMap, x.BattleReport, x.DungeonGroupUid,
		x.EnteredTimes, x.IsPresetAvatar, x.HollowEventVersion)
}

func (x *DungeonInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 21,
		&x.Uid, &x.ID, &x.DefaultSceneUid, &x.StartTimestamp, &x.ToBeDestroyed,
		&x.BackSceneUid, &x.QuestCollectionUid, &x.Avatars, &x.Buddy, &x.WorldQuestID,
		&x.ScenePropertiesUid, &x.DropPollChgInfos, &x.IsInDungeon, &x.InitiativeItem,
		&x.InitiativeItemUsedTimes, &x.AvatarMap, &x.BattleReport, &x.DungeonGroupUid,
		&x.EnteredTimes, &x.IsPresetAvatar, &x.HollowEventVersion)
}

type VideotapeInfo struct {
	StarCount   *property.Map[uint8, uint16]
	Finished    bool
	AwardedStar *property.Map[uint8, map[uint16]struct{}]
}

func (x *VideotapeInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.StarCount, x.Finished, x.AwardedStar)
}

func (x *VideotapeInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.StarCount, &x.Finished, &x.AwardedStar)
}

type AutoRecoveryInfo struct {
	LastRecoveryTimestamp uint64
	BuyTimes              uint32
}

func (x *AutoRecoveryInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.LastRecoveryTimestamp, x.BuyTimes)
}

func (x *AutoRecoveryInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.LastRecoveryTimestamp, &x.BuyTimes)
}

type EmbattleInfo struct {
	Avatars []int32
	Buddy   int32
}

func (x *EmbattleInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Avatars, x.Buddy)
}

func (x *EmbattleInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Avatars, &x.Buddy)
}

// InteractInfo 交互热点配置。
type InteractInfo struct {
	InteractID    int32
	InteractShape uint16
	ScaleX        float64
	ScaleY        float64
	ScaleZ        float64
	Name          string
	Participators *property.Map[int32, string]
	ScaleW        float64
	ScaleR        float64
}

func (x *InteractInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 9,
		x.InteractID, x.InteractShape, x.ScaleX, x.ScaleY, x.ScaleZ,
		x.Name, x.Participators, x.ScaleW, x.ScaleR)
}

func (x *InteractInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 9,
		&x.InteractID, &x.InteractShape, &x.ScaleX, &x.ScaleY, &x.ScaleZ,
		&x.Name, &x.Participators, &x.ScaleW, &x.ScaleR)
}

type EventGraphsInfo struct {
	EventGraphsInfo     *property.Map[int32, EventGraphInfo]
	DefaultEventGraphID int32
}

func (x *EventGraphsInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.EventGraphsInfo, x.DefaultEventGraphID)
}

func (x *EventGraphsInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.EventGraphsInfo, &x.DefaultEventGraphID)
}

type PlayerNPCInfo struct {
	InteractInfo     InteractInfo
	NpcUid           uint64
	EventGraphsInfo  EventGraphsInfo
	NpcTagID         int32
	VhsTrendingID    int32
	Visible          bool
	InvisibleByQuest *property.Set[int32]
	LookIK           bool
}

func (x *PlayerNPCInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 8,
		x.InteractInfo, x.NpcUid, x.EventGraphsInfo, x.NpcTagID,
		x.VhsTrendingID, x.Visible, x.InvisibleByQuest, x.LookIK)
}

func (x *PlayerNPCInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 8,
		&x.InteractInfo, &x.NpcUid, &x.EventGraphsInfo, &x.NpcTagID,
		&x.VhsTrendingID, &x.Visible, &x.InvisibleByQuest, &x.LookIK)
}

type ToExecuteScriptInfo struct {
	RemoveAfterFinish bool
	Specials          *property.Map[string, int64]
	EventGraphs       *property.Set[int32]
}

func (x *ToExecuteScriptInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.RemoveAfterFinish, x.Specials, x.EventGraphs)
}

func (x *ToExecuteScriptInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.RemoveAfterFinish, &x.Specials, &x.EventGraphs)
}

type GoodsInfo struct {
	ID              int32
	PurchasedNum    uint32
	LastRefreshTime uint64
	Discount        uint16
}

func (x *GoodsInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.ID, x.PurchasedNum, x.LastRefreshTime, x.Discount)
}

func (x *GoodsInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.ID, &x.PurchasedNum, &x.LastRefreshTime, &x.Discount)
}

type ShelfInfo struct {
	ID                 int32
	CustomGoodsInShelf *property.Set[int32]
	GoodsInfo          *property.Map[int32, GoodsInfo]
}

func (x *ShelfInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.ID, x.CustomGoodsInShelf, x.GoodsInfo)
}

func (x *ShelfInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.ID, &x.CustomGoodsInShelf, &x.GoodsInfo)
}

type ShopInfo struct {
	ID              int32
	ShelfInfo       *property.Map[int32, ShelfInfo]
	RefreshedCount  int32
	LastRefreshTime uint64
}

func (x *ShopInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.ID, x.ShelfInfo, x.RefreshedCount, x.LastRefreshTime)
}

func (x *ShopInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.ID, &x.ShelfInfo, &x.RefreshedCount, &x.LastRefreshTime)
}

type VHSTrendingInfo struct {
	TrendID    int32
	State      uint16
	MatchLevel uint16
	IsAccept   bool
}

func (x *VHSTrendingInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.TrendID, x.State, x.MatchLevel, x.IsAccept)
}

func (x *VHSTrendingInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.TrendID, &x.State, &x.MatchLevel, &x.IsAccept)
}

type VHSTrendingCfgInfo struct {
	TrendID       int32
	CompleteLevel int16
	KnowState     int16
}

func (x *VHSTrendingCfgInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.TrendID, x.CompleteLevel, x.KnowState)
}

func (x *VHSTrendingCfgInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.TrendID, &x.CompleteLevel, &x.KnowState)
}

type VHSNpcInfo struct {
	NpcID   int32
	State   int16
	NewKnow bool
}

func (x *VHSNpcInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.NpcID, x.State, x.NewKnow)
}

func (x *VHSNpcInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.NpcID, &x.State, &x.NewKnow)
}

type NpcSceneData struct {
	SectionID int32
	Transform Transform
}

func (x *NpcSceneData) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.SectionID, x.Transform)
}

func (x *NpcSceneData) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.SectionID, &x.Transform)
}

type NpcInfo struct {
	Uid        uint64
	ID         int32
	TagValue   int32
	SceneUid   uint64
	ParentUid  uint64
	OwnerUid   uint64
	SceneData  NpcSceneData
	References *property.Set[uint64]
}

func (x *NpcInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 8,
		x.Uid, x.ID, x.TagValue, x.SceneUid, x.ParentUid, x.OwnerUid, x.SceneData, x.References)
}

func (x *NpcInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 8,
		&x.Uid, &x.ID, &x.TagValue, &x.SceneUid, &x.ParentUid, &x.OwnerUid, &x.SceneData, &x.References)
}

type PlayerMailExtInfo struct {
	Timestamp uint64
	MailState MailState
}

func (x *PlayerMailExtInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Timestamp, x.MailState)
}

func (x *PlayerMailExtInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Timestamp, &x.MailState)
}

type DungeonTable struct {
	Uid            uint64
	ID             int32
	BeginTimestamp uint64
	DungeonExt     DungeonTableExt
	ToBeDestroyed  bool
}

func (x *DungeonTable) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.Uid, x.ID, x.BeginTimestamp, x.DungeonExt, x.ToBeDestroyed)
}

func (x *DungeonTable) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.Uid, &x.ID, &x.BeginTimestamp, &x.DungeonExt, &x.ToBeDestroyed)
}

type SceneTable struct {
	Uid            uint64
	ID             int32
	BeginTimestamp uint64
	SceneExt       SceneTableExt
	ToBeDestroyed  bool
}

func (x *SceneTable) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.Uid, x.ID, x.BeginTimestamp, x.SceneExt, x.ToBeDestroyed)
}

func (x *SceneTable) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.Uid, &x.ID, &x.BeginTimestamp, &x.SceneExt, &x.ToBeDestroyed)
}

type SectionInfo struct {
	ID              int32
	SceneUid        uint64
	EventGraphsInfo EventGraphsInfo
	SectionInfoExt  SectionInfoExt
}

func (x *SectionInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.ID, x.SceneUid, x.EventGraphsInfo, x.SectionInfoExt)
}

func (x *SectionInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.ID, &x.SceneUid, &x.EventGraphsInfo, &x.SectionInfoExt)
}

type AreaNPCInfo struct {
	TagID     int32
	Interacts *property.Set[int32]
}

func (x *AreaNPCInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.TagID, x.Interacts)
}

func (x *AreaNPCInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.TagID, &x.Interacts)
}

type AreaOwnerInfo struct {
	OwnerType uint16
	OwnerID   int32
	Npcs      *property.Map[uint64, AreaNPCInfo]
	Sequence  uint32
}

func (x *AreaOwnerInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.OwnerType, x.OwnerID, x.Npcs, x.Sequence)
}

func (x *AreaOwnerInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.OwnerType, &x.OwnerID, &x.Npcs, &x.Sequence)
}

type PropertyKeyValue struct {
	Key   PropertyType
	Value int32
}

func (x *PropertyKeyValue) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Key, x.Value)
}

func (x *PropertyKeyValue) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Key, &x.Value)
}

type HollowShopModification struct {
	AbilityModifiedNum *property.DKMap[HollowShopType, string, int32]
	ActionModifiedNum  *property.Map[HollowShopType, int32]
	OverwritePrice     *property.Map[HollowShopType, int32]
}

func (x *HollowShopModification) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.AbilityModifiedNum, x.ActionModifiedNum, x.OverwritePrice)
}

func (x *HollowShopModification) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.AbilityModifiedNum, &x.ActionModifiedNum, &x.OverwritePrice)
}

type HollowInitialStateOfPlayer struct {
	RogueLikeItems []ItemInfo
	Properties     *property.DKMap[uint64, uint16, int32]
}

func (x *HollowInitialStateOfPlayer) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.RogueLikeItems, x.Properties)
}

func (x *HollowInitialStateOfPlayer) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.RogueLikeItems, &x.Properties)
}

// PlayerHollowSectionInfo 玩家在空洞分段中的走格状态。
type PlayerHollowSectionInfo struct {
	PrevGridIndex     uint16
	CurGridIndex      uint16
	EnteredTimes      uint8
	GlobalEvent       uint64
	PerformEventGraph uint64
	PosBeforeMove     uint16
}

func (x *PlayerHollowSectionInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6,
		x.PrevGridIndex, x.CurGridIndex, x.EnteredTimes,
		x.GlobalEvent, x.PerformEventGraph, x.PosBeforeMove)
}

func (x *PlayerHollowSectionInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6,
		&x.PrevGridIndex, &x.CurGridIndex, &x.EnteredTimes,
		&x.GlobalEvent, &x.PerformEventGraph, &x.PosBeforeMove)
}

type EventStackFrame struct {
	ActionInfo ActionInfo
	ActionID   int32
}

func (x *EventStackFrame) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.ActionInfo, x.ActionID)
}

func (x *EventStackFrame) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.ActionInfo, &x.ActionID)
}

// EventInfo 事件图中单个事件的执行进度。
type EventInfo struct {
	ID                      int32
	CurActionID             int32
	ActionMovePath          []int32
	State                   EventState
	PrevState               EventState
	CurActionInfo           ActionInfo
	CurActionState          ActionState
	PredicatedFailedActions *property.Set[int32]
	StackFrames             []EventStackFrame
}

func (x *EventInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 9,
		x.ID, x.CurActionID, x.ActionMovePath, x.State, x.PrevState,
		x.CurActionInfo, x.CurActionState, x.PredicatedFailedActions, x.StackFrames)
}

func (x *EventInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 9,
		&x.ID, &x.CurActionID, &x.ActionMovePath, &x.State, &x.PrevState,
		&x.CurActionInfo, &x.CurActionState, &x.PredicatedFailedActions, &x.StackFrames)
}

// HollowEventGraphInfo 空洞事件图实例。字段按 6+4 两段编码，
// 段前缀仅在 tag 为 0 时写入，与客户端的继承布局保持一致。
type HollowEventGraphInfo struct {
	ConfigID     int32
	EventsInfo   *property.Map[int32, EventInfo]
	Specials     *property.Map[string, uint64]
	IsNew        bool
	Finished     bool
	ListSpecials *property.Map[string, []uint64]

	FiredCount            uint8
	HollowEventTemplateID int32
	Uid                   uint64
	IsCreateByGm          bool
}

func (x *HollowEventGraphInfo) Marshal(w *oct.Writer, tag uint16) error {
	writeFieldCount(w, tag, 6)
	if err := writeSeq(w, tag, x.ConfigID, x.EventsInfo, x.Specials, x.IsNew, x.Finished, x.ListSpecials); err != nil {
		return err
	}
	writeFieldCount(w, tag, 4)
	return writeSeq(w, tag, x.FiredCount, x.HollowEventTemplateID, x.Uid, x.IsCreateByGm)
}

func (x *HollowEventGraphInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readFieldCount(r, tag, 6); err != nil {
		return err
	}
	if err := readSeq(r, tag, &x.ConfigID, &x.EventsInfo, &x.Specials, &x.IsNew, &x.Finished, &x.ListSpecials); err != nil {
		return err
	}
	if err := readFieldCount(r, tag, 4); err != nil {
		return err
	}
	return readSeq(r, tag, &x.FiredCount, &x.HollowEventTemplateID, &x.Uid, &x.IsCreateByGm)
}

type PrepareSection struct {
	SectionID               int32
	InitialPos              uint16
	ShowOther               bool
	BattleEndGotoNextHollow bool
}

func (x *PrepareSection) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.SectionID, x.InitialPos, x.ShowOther, x.BattleEndGotoNextHollow)
}

func (x *PrepareSection) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.SectionID, &x.InitialPos, &x.ShowOther, &x.BattleEndGotoNextHollow)
}

type AbilityModifierInfo struct {
	Uid                uint64
	AddedSceneProperty *property.Map[ScenePropertyType, int32]
}

func (x *AbilityModifierInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Uid, x.AddedSceneProperty)
}

func (x *AbilityModifierInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Uid, &x.AddedSceneProperty)
}

type AbilityInfo struct {
	ID            string
	Specials      *property.Map[string, int64]
	ModifiersInfo *property.Map[string, AbilityModifierInfo]
	StackNum      int32
	Disabled      bool
	Sequence      uint16
}

func (x *AbilityInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6,
		x.ID, x.Specials, x.ModifiersInfo, x.StackNum, x.Disabled, x.Sequence)
}

func (x *AbilityInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6,
		&x.ID, &x.Specials, &x.ModifiersInfo, &x.StackNum, &x.Disabled, &x.Sequence)
}

type AbilitiesInfo struct {
	Abilities  *property.Map[uint64, AbilityInfo]
	SequenceNo uint16
}

func (x *AbilitiesInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Abilities, x.SequenceNo)
}

func (x *AbilitiesInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Abilities, &x.SequenceNo)
}

type HollowDungeonAvatarInfo struct {
	Uid           uint64
	PropertiesUid uint64
}

func (x *HollowDungeonAvatarInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Uid, x.PropertiesUid)
}

func (x *HollowDungeonAvatarInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Uid, &x.PropertiesUid)
}

type HollowDungeonBuddyInfo struct {
	Uid           uint64
	PropertiesUid uint64
}

func (x *HollowDungeonBuddyInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Uid, x.PropertiesUid)
}

func (x *HollowDungeonBuddyInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Uid, &x.PropertiesUid)
}

type HollowLevelInfo struct {
	ID              int32
	ChessboardID    int32
	DependentLevels []uint8
	Layer           int32
}

func (x *HollowLevelInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.ID, x.ChessboardID, x.DependentLevels, x.Layer)
}

func (x *HollowLevelInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.ID, &x.ChessboardID, &x.DependentLevels, &x.Layer)
}

type ToDoEventInfo struct {
	EventGraphUid uint64
	StartNode     string
	EventID       int32
}

func (x *ToDoEventInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.EventGraphUid, x.StartNode, x.EventID)
}

func (x *ToDoEventInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.EventGraphUid, &x.StartNode, &x.EventID)
}

// HollowGridMapInfo 分段棋盘的服务端完整视图。
type HollowGridMapInfo struct {
	Grids         *property.Map[uint16, HollowGridInfo]
	RowNum        uint8
	ColNum        uint8
	MainPath      []uint16
	AltPaths      [][]uint16
	Ring          *property.Set[uint16]
	ShopInfo      *property.DKMap[uint16, HollowShopType, ConfigShopInfo]
	ToDoEventList []ToDoEventInfo
	StartGrid     uint16
	EndGrid       uint16
}

func (x *HollowGridMapInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 10,
		x.Grids, x.RowNum, x.ColNum, x.MainPath, x.AltPaths,
		x.Ring, x.ShopInfo, x.ToDoEventList, x.StartGrid, x.EndGrid)
}

func (x *HollowGridMapInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 10,
		&x.Grids, &x.RowNum, &x.ColNum, &x.MainPath, &x.AltPaths,
		&x.Ring, &x.ShopInfo, &x.ToDoEventList, &x.StartGrid, &x.EndGrid)
}

type ChoiceInfo struct {
	ID        int32
	HideInfo  bool
	Forbidden bool
}

func (x *ChoiceInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.ID, x.HideInfo, x.Forbidden)
}

func (x *ChoiceInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.ID, &x.HideInfo, &x.Forbidden)
}

// HollowGridMapProtocolInfo 下发给客户端的棋盘视图。
type HollowGridMapProtocolInfo struct {
	Row          uint8
	Col          uint8
	StartGrid    uint16
	Grids        *property.Map[uint16, HollowGridProtocolInfo]
	ChessboardID int32
}

func (x *HollowGridMapProtocolInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.Row, x.Col, x.StartGrid, x.Grids, x.ChessboardID)
}

func (x *HollowGridMapProtocolInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.Row, &x.Col, &x.StartGrid, &x.Grids, &x.ChessboardID)
}

type HollowGridProtocolInfo struct {
	Grid       HollowGridInfo
	EventType  HollowEventType
	UsePerform bool
}

func (x *HollowGridProtocolInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.Grid, x.EventType, x.UsePerform)
}

func (x *HollowGridProtocolInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.Grid, &x.EventType, &x.UsePerform)
}

// HollowGridInfo 单个棋盘格。Flag 为 HollowGridFlag 位集，
// LinkTo 为 HollowGridLink 位集。
type HollowGridInfo struct {
	Flag           int32
	LinkTo         int8
	EventGraphInfo HollowEventGraphInfo
	TravelledCount uint16
	NodeState      NodeState
	NodeVisible    NodeVisible
}

func (x *HollowGridInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6,
		x.Flag, x.LinkTo, x.EventGraphInfo, x.TravelledCount, x.NodeState, x.NodeVisible)
}

func (x *HollowGridInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6,
		&x.Flag, &x.LinkTo, &x.EventGraphInfo, &x.TravelledCount, &x.NodeState, &x.NodeVisible)
}

type ConfigShopInfo struct {
	Goods    []ConfigItem
	Currency HollowShopCurrency
}

func (x *ConfigShopInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.Goods, x.Currency)
}

func (x *ConfigShopInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.Goods, &x.Currency)
}

type ConfigItem struct {
	Uid       int32
	ItemID    int32
	Count     int32
	Value     int32
	BaseValue int32
	Discount  int32
}

func (x *ConfigItem) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6, x.Uid, x.ItemID, x.Count, x.Value, x.BaseValue, x.Discount)
}

func (x *ConfigItem) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6, &x.Uid, &x.ItemID, &x.Count, &x.Value, &x.BaseValue, &x.Discount)
}

type EventListenerInfo struct {
	EventGraphID    int32
	EventsToTrigger []string
}

func (x *EventListenerInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 2, x.EventGraphID, x.EventsToTrigger)
}

func (x *EventListenerInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 2, &x.EventGraphID, &x.EventsToTrigger)
}

type BoundNPCAndInteractInfo struct {
	IsBoundNpc      bool
	Interacts       *property.Set[int32]
	NpcReferenceUid uint64
}

func (x *BoundNPCAndInteractInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 3, x.IsBoundNpc, x.Interacts, x.NpcReferenceUid)
}

func (x *BoundNPCAndInteractInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 3, &x.IsBoundNpc, &x.Interacts, &x.NpcReferenceUid)
}

type LogSkillUseInfo struct {
	SkillName string
	Damage    int32
	Level     uint8
	UseTimes  int32
	HitTimes  int32
}

func (x *LogSkillUseInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.SkillName, x.Damage, x.Level, x.UseTimes, x.HitTimes)
}

func (x *LogSkillUseInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.SkillName, &x.Damage, &x.Level, &x.UseTimes, &x.HitTimes)
}

type LogBattleAvatarInfo struct {
	AvatarID  int32
	AvatarUid int64
	Power     int32
	IsLive    uint8
	MaxHp     int32
	Hp        int32
	Damage    int32
	BeDamage  int32
	BeHit     int32
	Dodge     int32
	SuccDodge int32
	Resident  int32
	Dizzier   int32
	StartHp   int32
	SkillUse  []LogSkillUseInfo
}

func (x *LogBattleAvatarInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 15,
		x.AvatarID, x.AvatarUid, x.Power, x.IsLive, x.MaxHp, x.Hp, x.Damage,
		x.BeDamage, x.BeHit, x.Dodge, x.SuccDodge, x.Resident, x.Dizzier,
		x.StartHp, x.SkillUse)
}

func (x *LogBattleAvatarInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 15,
		&x.AvatarID, &x.AvatarUid, &x.Power, &x.IsLive, &x.MaxHp, &x.Hp, &x.Damage,
		&x.BeDamage, &x.BeHit, &x.Dodge, &x.SuccDodge, &x.Resident, &x.Dizzier,
		&x.StartHp, &x.SkillUse)
}

type LogMonsterSkillUseInfo struct {
	SkillName string
	Damage    int32
	UseTimes  int32
	HitTimes  int32
}

func (x *LogMonsterSkillUseInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 4, x.SkillName, x.Damage, x.UseTimes, x.HitTimes)
}

func (x *LogMonsterSkillUseInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 4, &x.SkillName, &x.Damage, &x.UseTimes, &x.HitTimes)
}

type LogMonsterInfo struct {
	MonsterID      int32
	MonsterUid     int64
	Damage         int32
	LiveTime       int32
	BeDizzierTimes int32
	SkillUse       []LogMonsterSkillUseInfo
}

func (x *LogMonsterInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 6,
		x.MonsterID, x.MonsterUid, x.Damage, x.LiveTime, x.BeDizzierTimes, x.SkillUse)
}

func (x *LogMonsterInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 6,
		&x.MonsterID, &x.MonsterUid, &x.Damage, &x.LiveTime, &x.BeDizzierTimes, &x.SkillUse)
}

type LogTrapInfo struct {
	TrapID    int32
	TrapUid   int64
	Damage    int32
	LiveTime  int32
	IsTrigger uint8
}

func (x *LogTrapInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.TrapID, x.TrapUid, x.Damage, x.LiveTime, x.IsTrigger)
}

func (x *LogTrapInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.TrapID, &x.TrapUid, &x.Damage, &x.LiveTime, &x.IsTrigger)
}

type LogBrokeItemInfo struct {
	BrokeID  int32
	BrokeUid int64
	Damage   int32
	LiveTime int32
	IsBroke  uint8
}

func (x *LogBrokeItemInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 5, x.BrokeID, x.BrokeUid, x.Damage, x.LiveTime, x.IsBroke)
}

func (x *LogBrokeItemInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 5, &x.BrokeID, &x.BrokeUid, &x.Damage, &x.LiveTime, &x.IsBroke)
}

// LogBattleStatistics 客户端上报的整场战斗统计。
type LogBattleStatistics struct {
	BattleUid     int64
	BattleID      int32
	PassTime      int32
	Result        uint8
	SwitchNum     int32
	Score         uint8
	AvatarList    []LogBattleAvatarInfo
	MonsterList   []LogMonsterInfo
	TrapList      []LogTrapInfo
	BrokeItemList []LogBrokeItemInfo
	Star          uint8
}

func (x *LogBattleStatistics) Marshal(w *oct.Writer, tag uint16) error {
	return marshalStruct(w, tag, 11,
		x.BattleUid, x.BattleID, x.PassTime, x.Result, x.SwitchNum, x.Score,
		x.AvatarList, x.MonsterList, x.TrapList, x.BrokeItemList, x.Star)
}

func (x *LogBattleStatistics) Unmarshal(r *oct.Reader, tag uint16) error {
	return unmarshalStruct(r, tag, 11,
		&x.BattleUid, &x.BattleID, &x.PassTime, &x.Result, &x.SwitchNum, &x.Score,
		&x.AvatarList, &x.MonsterList, &x.TrapList, &x.BrokeItemList, &x.Star)
}
