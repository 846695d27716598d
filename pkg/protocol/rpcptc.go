package protocol

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
)

// writeBlob 以 u32 长度前缀编码内嵌对象。
func writeBlob(w *oct.Writer, tag uint16, d oct.Data) error {
	sw := oct.NewWriter()
	if err := d.Marshal(sw, tag); err != nil {
		return err
	}
	w.WriteUint32(uint32(sw.Len()))
	w.WriteRaw(sw.Bytes())
	return nil
}

// readBlob 解码 u32 长度前缀的内嵌对象。
func readBlob(r *oct.Reader, tag uint16, d oct.Data) error {
	l, err := r.ReadUint32()
	if err != nil {
		return err
	}
	raw, err := r.ReadRaw(int(l))
	if err != nil {
		return err
	}
	return d.Unmarshal(oct.NewReader(raw), tag)
}

// RetHead 所有应答包的公共前缀。零值即成功。
type RetHead struct {
	ErrorCode       ErrorCode
	ErrorCodeParams []string
}

// ErrRet 构造失败应答前缀。
func ErrRet(code ErrorCode, params ...string) RetHead {
	return RetHead{ErrorCode: code, ErrorCodeParams: params}
}

func (h *RetHead) marshalHead(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, h.ErrorCode, h.ErrorCodeParams)
}

func (h *RetHead) unmarshalHead(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &h.ErrorCode, &h.ErrorCodeParams)
}

// ------------------------------------------------------------------
// 请求与通知
// ------------------------------------------------------------------

type RpcLoginArg struct {
	AccountName        string
	Token              string
	ClientProtocolSign string
	ConfigSign         string
}

func (x *RpcLoginArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.AccountName, x.Token, x.ClientProtocolSign, x.ConfigSign)
}

func (x *RpcLoginArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.AccountName, &x.Token, &x.ClientProtocolSign, &x.ConfigSign)
}

type PtcEnterSceneArg struct {
	PlayerUid          uint64
	SceneUid           uint64
	Ext                SceneTableExt
	EnteredTimes       uint16
	SectionID          int32
	Transform          Transform
	OpenUI             UIType
	ConditionConfigIDs []int32
	Timestamp          uint64
	CameraX            uint32
	CameraY            uint32
}

func (x *PtcEnterSceneArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag,
		x.PlayerUid, x.SceneUid, x.Ext, x.EnteredTimes, x.SectionID,
		x.Transform, x.OpenUI, x.ConditionConfigIDs, x.Timestamp,
		x.CameraX, x.CameraY)
}

func (x *PtcEnterSceneArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag,
		&x.PlayerUid, &x.SceneUid, &x.Ext, &x.EnteredTimes, &x.SectionID,
		&x.Transform, &x.OpenUI, &x.ConditionConfigIDs, &x.Timestamp,
		&x.CameraX, &x.CameraY)
}

type RpcEnterWorldArg struct{}

func (x *RpcEnterWorldArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *RpcEnterWorldArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

type RpcGetPlayerMailsArg struct{}

func (x *RpcGetPlayerMailsArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *RpcGetPlayerMailsArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

type PtcUnlockArg struct {
	UnlockID int32
}

func (x *PtcUnlockArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.UnlockID)
}

func (x *PtcUnlockArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.UnlockID)
}

type PtcGetServerTimestampArg struct{}

func (x *PtcGetServerTimestampArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *PtcGetServerTimestampArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

type RpcAdvanceBeginnerProcedureArg struct {
	PlayerUid   uint64
	ProcedureID int32
	Params      int32
}

func (x *RpcAdvanceBeginnerProcedureArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.ProcedureID, x.Params)
}

func (x *RpcAdvanceBeginnerProcedureArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.ProcedureID, &x.Params)
}

type RpcPerformTriggerArg struct {
	PerformID   int32
	PerformType int32
}

func (x *RpcPerformTriggerArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PerformID, x.PerformType)
}

func (x *RpcPerformTriggerArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PerformID, &x.PerformType)
}

type RpcPerformEndArg struct {
	PerformID   int32
	PerformType int32
	PerformUid  string
}

func (x *RpcPerformEndArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PerformID, x.PerformType, x.PerformUid)
}

func (x *RpcPerformEndArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PerformID, &x.PerformType, &x.PerformUid)
}

type RpcModNickNameArg struct {
	NickName string
	AvatarID int32
}

func (x *RpcModNickNameArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.NickName, x.AvatarID)
}

func (x *RpcModNickNameArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.NickName, &x.AvatarID)
}

type RpcFinishACTPerformShowArg struct {
	Moment ACTPerformShowMoment
	Step   uint8
}

func (x *RpcFinishACTPerformShowArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.Moment, x.Step)
}

func (x *RpcFinishACTPerformShowArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.Moment, &x.Step)
}

type RpcKeepAliveArg struct{}

func (x *RpcKeepAliveArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *RpcKeepAliveArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

type RpcPerformJumpArg struct {
	PerformID   int32
	PerformType int32
	PerformUid  string
}

func (x *RpcPerformJumpArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PerformID, x.PerformType, x.PerformUid)
}

func (x *RpcPerformJumpArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PerformID, &x.PerformType, &x.PerformUid)
}

type RpcBeginnerbattleBeginArg struct {
	BattleID int32
}

func (x *RpcBeginnerbattleBeginArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.BattleID)
}

func (x *RpcBeginnerbattleBeginArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.BattleID)
}

type RpcBattleReportArg struct {
	BattleReports []BattleReport
}

func (x *RpcBattleReportArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.BattleReports)
}

func (x *RpcBattleReportArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.BattleReports)
}

type RpcBeginnerbattleEndArg struct {
	BattleID         int32
	BattleUid        string
	BattleStatistics LogBattleStatistics
}

func (x *RpcBeginnerbattleEndArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.BattleID, x.BattleUid, x.BattleStatistics)
}

func (x *RpcBeginnerbattleEndArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.BattleID, &x.BattleUid, &x.BattleStatistics)
}

type RpcLeaveCurDungeonArg struct {
	PlayerUid  uint64
	DungeonUid uint64
}

func (x *RpcLeaveCurDungeonArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.DungeonUid)
}

func (x *RpcLeaveCurDungeonArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.DungeonUid)
}

type RpcSavePosInMainCityArg struct {
	Position Vector3f
	Rotation Vector3f
}

func (x *RpcSavePosInMainCityArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.Position, x.Rotation)
}

func (x *RpcSavePosInMainCityArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.Position, &x.Rotation)
}

type RpcCloseLevelChgTipsArg struct{}

func (x *RpcCloseLevelChgTipsArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *RpcCloseLevelChgTipsArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

// PtcPlayerInfoChangedArg 玩家属性全量下发，属性体带 u32 长度前缀。
type PtcPlayerInfoChangedArg struct {
	PlayerUid  uint64
	PlayerInfo PlayerInfo
}

func (x *PtcPlayerInfoChangedArg) Marshal(w *oct.Writer, tag uint16) error {
	if err := oct.WriteValue(w, x.PlayerUid, tag); err != nil {
		return err
	}
	return writeBlob(w, tag, &x.PlayerInfo)
}

func (x *PtcPlayerInfoChangedArg) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := oct.ReadInto(r, tag, &x.PlayerUid); err != nil {
		return err
	}
	return readBlob(r, tag, &x.PlayerInfo)
}

type PtcPlayerOperationArg struct {
	System   System
	Operator Operator
	Param    int32
}

func (x *PtcPlayerOperationArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.System, x.Operator, x.Param)
}

func (x *PtcPlayerOperationArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.System, &x.Operator, &x.Param)
}

type PtcScenePropertyChangedArg struct {
	PlayerUid         uint64
	IsPartial         bool
	ChangedProperties *property.Map[uint16, int32]
}

func (x *PtcScenePropertyChangedArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.IsPartial, x.ChangedProperties)
}

func (x *PtcScenePropertyChangedArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.IsPartial, &x.ChangedProperties)
}

type PtcPropertyChangedArg struct {
	SceneUnitUid      uint64
	IsPartial         bool
	ChangedProperties *property.Map[uint16, int32]
}

func (x *PtcPropertyChangedArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.SceneUnitUid, x.IsPartial, x.ChangedProperties)
}

func (x *PtcPropertyChangedArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.SceneUnitUid, &x.IsPartial, &x.ChangedProperties)
}

type PtcSyncSceneUnitArg struct {
	SceneUid          uint64
	SectionID         int32
	IsPartial         bool
	RemovedSceneUnits []uint64
	SceneUnits        []SceneUnitProtocolInfo
}

func (x *PtcSyncSceneUnitArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.SceneUid, x.SectionID, x.IsPartial, x.RemovedSceneUnits, x.SceneUnits)
}

func (x *PtcSyncSceneUnitArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.SceneUid, &x.SectionID, &x.IsPartial, &x.RemovedSceneUnits, &x.SceneUnits)
}

type PtcEnterSectionArg struct {
	SectionID int32
}

func (x *PtcEnterSectionArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.SectionID)
}

func (x *PtcEnterSectionArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.SectionID)
}

// PtcSyncSceneTimeArg 场景时间同步。
type PtcSyncSceneTimeArg struct {
	Timestamp     uint64
	LastTimestamp uint64
}

func (x *PtcSyncSceneTimeArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.Timestamp, x.LastTimestamp)
}

func (x *PtcSyncSceneTimeArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.Timestamp, &x.LastTimestamp)
}

type RpcRunEventGraphArg struct {
	OwnerType    EventGraphOwnerType
	OwnerUid     uint64
	EventGraphID int32
	EventID      int32
	MovePath     []int32
}

func (x *RpcRunEventGraphArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.OwnerType, x.OwnerUid, x.EventGraphID, x.EventID, x.MovePath)
}

func (x *RpcRunEventGraphArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.OwnerType, &x.OwnerUid, &x.EventGraphID, &x.EventID, &x.MovePath)
}

type RpcInteractWithUnitArg struct {
	UnitUid      uint64
	UnitType     InteractTarget
	EventGraphID int32
	Interaction  uint16
}

func (x *RpcInteractWithUnitArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.UnitUid, x.UnitType, x.EventGraphID, x.Interaction)
}

func (x *RpcInteractWithUnitArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.UnitUid, &x.UnitType, &x.EventGraphID, &x.Interaction)
}

type PtcSyncEventInfoArg struct {
	OwnerType     EventGraphOwnerType
	OwnerUid      uint64
	UpdatedEvents *property.DKMap[int32, int32, EventInfo]
}

func (x *PtcSyncEventInfoArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.OwnerType, x.OwnerUid, x.UpdatedEvents)
}

func (x *PtcSyncEventInfoArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.OwnerType, &x.OwnerUid, &x.UpdatedEvents)
}

type RpcCheckYorozuyaInfoRefreshArg struct{}

func (x *RpcCheckYorozuyaInfoRefreshArg) Marshal(w *oct.Writer, tag uint16) error   { return nil }
func (x *RpcCheckYorozuyaInfoRefreshArg) Unmarshal(r *oct.Reader, tag uint16) error { return nil }

type PtcHollowQuestUnlockedByMainCityQuestArg struct {
	QuestID int32
}

func (x *PtcHollowQuestUnlockedByMainCityQuestArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.QuestID)
}

func (x *PtcHollowQuestUnlockedByMainCityQuestArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.QuestID)
}

type RpcStartHollowQuestArg struct {
	HollowQuestID  int32
	Buddy          uint64
	InitiativeItem int32
	AvatarMap      *property.Map[int8, uint64]
	IsStory        bool
}

func (x *RpcStartHollowQuestArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.HollowQuestID, x.Buddy, x.InitiativeItem, x.AvatarMap, x.IsStory)
}

func (x *RpcStartHollowQuestArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.HollowQuestID, &x.Buddy, &x.InitiativeItem, &x.AvatarMap, &x.IsStory)
}

type PtcSyncHollowGridMapsArg struct {
	PlayerUid   uint64
	SceneUid    uint64
	HollowLevel int32
	MainMap     HollowGridMapProtocolInfo
	TimePeriod  TimePeriodType
	Weather     WeatherType
}

func (x *PtcSyncHollowGridMapsArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.SceneUid, x.HollowLevel, x.MainMap, x.TimePeriod, x.Weather)
}

func (x *PtcSyncHollowGridMapsArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.SceneUid, &x.HollowLevel, &x.MainMap, &x.TimePeriod, &x.Weather)
}

type PtcPositionInHollowChangedArg struct {
	PlayerUid   uint64
	HollowLevel int32
	Position    uint16
}

func (x *PtcPositionInHollowChangedArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.HollowLevel, x.Position)
}

func (x *PtcPositionInHollowChangedArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.HollowLevel, &x.Position)
}

type PtcSyncHollowEventInfoArg struct {
	EventGraphUid         uint64
	HollowEventTemplateID int32
	EventGraphID          int32
	UpdatedEvent          EventInfo
	Specials              *property.Map[string, int32]
}

func (x *PtcSyncHollowEventInfoArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.EventGraphUid, x.HollowEventTemplateID, x.EventGraphID, x.UpdatedEvent, x.Specials)
}

func (x *PtcSyncHollowEventInfoArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.EventGraphUid, &x.HollowEventTemplateID, &x.EventGraphID, &x.UpdatedEvent, &x.Specials)
}

type RpcRunHollowEventGraphArg struct {
	EventGraphUid uint64
	EventID       int32
	MovePath      []int32
}

func (x *RpcRunHollowEventGraphArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.EventGraphUid, x.EventID, x.MovePath)
}

func (x *RpcRunHollowEventGraphArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.EventGraphUid, &x.EventID, &x.MovePath)
}

type PtcHollowGridArg struct {
	PlayerUid   uint64
	IsPartial   bool
	SceneUid    uint64
	HollowLevel int32
	Grids       map[uint16]HollowGridProtocolInfo
}

func (x *PtcHollowGridArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.IsPartial, x.SceneUid, x.HollowLevel, x.Grids)
}

func (x *PtcHollowGridArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.IsPartial, &x.SceneUid, &x.HollowLevel, &x.Grids)
}

type RpcHollowMoveArg struct {
	PlayerUid   uint64
	SceneUid    uint64
	HollowLevel int32
	Positions   []uint16
}

func (x *RpcHollowMoveArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.SceneUid, x.HollowLevel, x.Positions)
}

func (x *RpcHollowMoveArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.SceneUid, &x.HollowLevel, &x.Positions)
}

type RpcEndBattleArg struct {
	PlayerUid           uint64
	FightRanking        FightRanking
	Success             bool
	AvatarProperties    *property.Map[uint64, map[uint16]int32]
	KilledEnemyCount    uint16
	ConditionStatistics map[int32]int32
	Star                uint8
	ChallengeStat       map[int32]uint8
	FightDropInfos      []FightDropInfo
	ChallengeResultInfo *property.Map[int32, ChallengeResultInfo]
	BattleStatistics    LogBattleStatistics
}

func (x *RpcEndBattleArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag,
		x.PlayerUid, x.FightRanking, x.Success, x.AvatarProperties,
		x.KilledEnemyCount, x.ConditionStatistics, x.Star, x.ChallengeStat,
		x.FightDropInfos, x.ChallengeResultInfo, x.BattleStatistics)
}

func (x *RpcEndBattleArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag,
		&x.PlayerUid, &x.FightRanking, &x.Success, &x.AvatarProperties,
		&x.KilledEnemyCount, &x.ConditionStatistics, &x.Star, &x.ChallengeStat,
		&x.FightDropInfos, &x.ChallengeResultInfo, &x.BattleStatistics)
}

type RpcFinishEventGraphPerformShowArg struct {
	OwnerType    EventGraphOwnerType
	OwnerUid     uint64
	EventGraphID int32
	EventID      int32
	Step         uint8
	ReturnMap    map[string]int32
}

func (x *RpcFinishEventGraphPerformShowArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.OwnerType, x.OwnerUid, x.EventGraphID, x.EventID, x.Step, x.ReturnMap)
}

func (x *RpcFinishEventGraphPerformShowArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.OwnerType, &x.OwnerUid, &x.EventGraphID, &x.EventID, &x.Step, &x.ReturnMap)
}

type RpcDelNewMapArg struct {
	MapType UnlockIDType
	IDs     *property.Set[int32]
}

func (x *RpcDelNewMapArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.MapType, x.IDs)
}

func (x *RpcDelNewMapArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.MapType, &x.IDs)
}

type PtcDungeonQuestFinishedArg struct {
	PlayerUid   uint64
	QuestID     int32
	Success     bool
	RewardItems *property.Map[uint64, ItemIDCount]
	Statistics  *property.Map[QuestStatisticsType, uint64]
}

func (x *PtcDungeonQuestFinishedArg) Marshal(w *oct.Writer, tag uint16) error {
	return writeSeq(w, tag, x.PlayerUid, x.QuestID, x.Success, x.RewardItems, x.Statistics)
}

func (x *PtcDungeonQuestFinishedArg) Unmarshal(r *oct.Reader, tag uint16) error {
	return readSeq(r, tag, &x.PlayerUid, &x.QuestID, &x.Success, &x.RewardItems, &x.Statistics)
}

// ------------------------------------------------------------------
// 应答
// ------------------------------------------------------------------

type RpcLoginRet struct {
	RetHead
	AccountInfo PropertyBlob
}

func (x *RpcLoginRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.AccountInfo)
}

func (x *RpcLoginRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.AccountInfo)
}

type RpcEnterWorldRet struct {
	RetHead
	PlayerInfo PropertyBlob
}

func (x *RpcEnterWorldRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.PlayerInfo)
}

func (x *RpcEnterWorldRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.PlayerInfo)
}

type RpcGetPlayerMailsRet struct {
	RetHead
	MailCount uint32
}

func (x *RpcGetPlayerMailsRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.MailCount)
}

func (x *RpcGetPlayerMailsRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.MailCount)
}

type PtcGetServerTimestampRet struct {
	RetHead
	Timestamp                 uint64
	BaseUtcOffsetMilliseconds int64
}

func (x *PtcGetServerTimestampRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.Timestamp, x.BaseUtcOffsetMilliseconds)
}

func (x *PtcGetServerTimestampRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.Timestamp, &x.BaseUtcOffsetMilliseconds)
}

type RpcAdvanceBeginnerProcedureRet struct {
	RetHead
	NextProcedureID int32
}

func (x *RpcAdvanceBeginnerProcedureRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.NextProcedureID)
}

func (x *RpcAdvanceBeginnerProcedureRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.NextProcedureID)
}

type RpcPerformTriggerRet struct {
	RetHead
	PerformUid string
}

func (x *RpcPerformTriggerRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.PerformUid)
}

func (x *RpcPerformTriggerRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.PerformUid)
}

type RpcPerformEndRet struct{ RetHead }

func (x *RpcPerformEndRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcPerformEndRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcModNickNameRet struct{ RetHead }

func (x *RpcModNickNameRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcModNickNameRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcFinishACTPerformShowRet struct{ RetHead }

func (x *RpcFinishACTPerformShowRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcFinishACTPerformShowRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcKeepAliveRet struct{ RetHead }

func (x *RpcKeepAliveRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcKeepAliveRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcPerformJumpRet struct{ RetHead }

func (x *RpcPerformJumpRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcPerformJumpRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcBeginnerbattleBeginRet struct {
	RetHead
	BattleUid string
}

func (x *RpcBeginnerbattleBeginRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.BattleUid)
}

func (x *RpcBeginnerbattleBeginRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.BattleUid)
}

type RpcBattleReportRet struct {
	RetHead
	NeedIndex int32
}

func (x *RpcBattleReportRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.NeedIndex)
}

func (x *RpcBattleReportRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.NeedIndex)
}

type RpcBeginnerbattleEndRet struct{ RetHead }

func (x *RpcBeginnerbattleEndRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcBeginnerbattleEndRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcLeaveCurDungeonRet struct{ RetHead }

func (x *RpcLeaveCurDungeonRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcLeaveCurDungeonRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcSavePosInMainCityRet struct{ RetHead }

func (x *RpcSavePosInMainCityRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcSavePosInMainCityRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcCloseLevelChgTipsRet struct{ RetHead }

func (x *RpcCloseLevelChgTipsRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcCloseLevelChgTipsRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type PtcPlayerOperationRet struct{ RetHead }

func (x *PtcPlayerOperationRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *PtcPlayerOperationRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcRunEventGraphRet struct{ RetHead }

func (x *RpcRunEventGraphRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcRunEventGraphRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcInteractWithUnitRet struct{ RetHead }

func (x *RpcInteractWithUnitRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcInteractWithUnitRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcCheckYorozuyaInfoRefreshRet struct{ RetHead }

func (x *RpcCheckYorozuyaInfoRefreshRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcCheckYorozuyaInfoRefreshRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcStartHollowQuestRet struct{ RetHead }

func (x *RpcStartHollowQuestRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcStartHollowQuestRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcRunHollowEventGraphRet struct{ RetHead }

func (x *RpcRunHollowEventGraphRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcRunHollowEventGraphRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcHollowMoveRet struct {
	RetHead
	HollowLevel int32
	Position    uint16
}

func (x *RpcHollowMoveRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.HollowLevel, x.Position)
}

func (x *RpcHollowMoveRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.HollowLevel, &x.Position)
}

type RpcEndBattleRet struct {
	RetHead
	HollowEventID       int32
	RewardItemsClassify map[BattleRewardType]map[uint64]ItemIDCount
}

func (x *RpcEndBattleRet) Marshal(w *oct.Writer, tag uint16) error {
	if err := x.marshalHead(w, tag); err != nil {
		return err
	}
	return writeSeq(w, tag, x.HollowEventID, x.RewardItemsClassify)
}

func (x *RpcEndBattleRet) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := x.unmarshalHead(r, tag); err != nil {
		return err
	}
	return readSeq(r, tag, &x.HollowEventID, &x.RewardItemsClassify)
}

type RpcFinishEventGraphPerformShowRet struct{ RetHead }

func (x *RpcFinishEventGraphPerformShowRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcFinishEventGraphPerformShowRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}

type RpcDelNewMapRet struct{ RetHead }

func (x *RpcDelNewMapRet) Marshal(w *oct.Writer, tag uint16) error {
	return x.marshalHead(w, tag)
}
func (x *RpcDelNewMapRet) Unmarshal(r *oct.Reader, tag uint16) error {
	return x.unmarshalHead(r, tag)
}
