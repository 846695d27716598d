package protocol

import (
	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
)

// 多态记录：u16 判别值 + 基段 + 变体段。
// 段前缀（u16 字段数）仅在 tag 为 0 时写入；
// 基段与变体段均为空时只写一个 u16 0；None 动作只写判别值。

func marshalPoly(w *oct.Writer, tag uint16, disc uint16, base, variant []any) error {
	w.WriteUint16(disc)
	writeFieldCount(w, tag, uint16(len(base)))
	if err := writeSeq(w, tag, base...); err != nil {
		return err
	}
	if len(base) == 0 && len(variant) == 0 {
		return nil
	}
	writeFieldCount(w, tag, uint16(len(variant)))
	return writeSeq(w, tag, variant...)
}

func unmarshalPolyBody(r *oct.Reader, tag uint16, base, variant []any) error {
	if err := readFieldCount(r, tag, uint16(len(base))); err != nil {
		return err
	}
	if err := readSeq(r, tag, base...); err != nil {
		return err
	}
	if len(base) == 0 && len(variant) == 0 {
		return nil
	}
	if err := readFieldCount(r, tag, uint16(len(variant))); err != nil {
		return err
	}
	return readSeq(r, tag, variant...)
}

func readDiscriminant(r *oct.Reader, want uint16) error {
	got, err := r.ReadUint16()
	if err != nil {
		return err
	}
	if got != want {
		return errors.Wrapf(ErrUnknownDiscriminant, "want %d got %d", want, got)
	}
	return nil
}

type polyVariant interface {
	unmarshalBody(r *oct.Reader, tag uint16) error
}

func readPoly[T any](r *oct.Reader, tag uint16, name string, variants map[uint16]func() T) (T, error) {
	var zero T
	disc, err := r.ReadUint16()
	if err != nil {
		return zero, err
	}
	mk, ok := variants[disc]
	if !ok {
		return zero, errors.Wrapf(ErrUnknownDiscriminant, "%s %d", name, disc)
	}
	v := mk()
	if err := any(v).(polyVariant).unmarshalBody(r, tag); err != nil {
		return zero, err
	}
	return v, nil
}

func init() {
	oct.RegisterInterfaceDecoder(ReadSceneUnitProtocolInfo)
	oct.RegisterInterfaceDecoder(ReadSceneInfo)
	oct.RegisterInterfaceDecoder(ReadItemInfo)
	oct.RegisterInterfaceDecoder(ReadDungeonTableExt)
	oct.RegisterInterfaceDecoder(ReadSceneTableExt)
	oct.RegisterInterfaceDecoder(ReadSectionInfoExt)
	oct.RegisterInterfaceDecoder(ReadActionInfo)
	oct.RegisterInterfaceDecoder(ReadEventGraphInfo)
	oct.RegisterInterfaceDecoder(ReadQuestInfo)
}

// ---------------------------------------------------------------------------
// SceneUnitProtocolInfo

// SceneUnitProtocolInfo 场景单位下发记录。
type SceneUnitProtocolInfo interface {
	oct.Data
	UnitBase() *SceneUnitProtocolInfoBase
}

type SceneUnitProtocolInfoBase struct {
	Uid uint64
	Tag int32
}

func (b *SceneUnitProtocolInfoBase) UnitBase() *SceneUnitProtocolInfoBase { return b }

func (b *SceneUnitProtocolInfoBase) values() []any { return []any{b.Uid, b.Tag} }
func (b *SceneUnitProtocolInfoBase) ptrs() []any   { return []any{&b.Uid, &b.Tag} }

type NpcProtocolInfo struct {
	SceneUnitProtocolInfoBase
	ID            int32
	QuestID       int32
	InteractsInfo *property.Map[int32, InteractInfo]
}

func (x *NpcProtocolInfo) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 0, x.values(), []any{x.ID, x.QuestID, x.InteractsInfo})
}

func (x *NpcProtocolInfo) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 0); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *NpcProtocolInfo) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.ID, &x.QuestID, &x.InteractsInfo})
}

func ReadSceneUnitProtocolInfo(r *oct.Reader, tag uint16) (SceneUnitProtocolInfo, error) {
	return readPoly(r, tag, "scene unit", map[uint16]func() SceneUnitProtocolInfo{
		0: func() SceneUnitProtocolInfo { return new(NpcProtocolInfo) },
	})
}

// ---------------------------------------------------------------------------
// SceneInfo

// SceneInfo 场景记录，按大厅/空洞/战斗/新手四型分化。
type SceneInfo interface {
	oct.Data
	SceneBase() *SceneInfoBase
}

type SceneInfoBase struct {
	Uid           uint64
	ID            int32
	DungeonUid    uint64
	EndTimestamp  uint64
	BackSceneUid  uint64
	EnteredTimes  uint16
	SectionID     int32
	OpenUI        UIType
	ToBeDestroyed bool
	CameraX       uint32
	CameraY       uint32
}

func (b *SceneInfoBase) SceneBase() *SceneInfoBase { return b }

func (b *SceneInfoBase) values() []any {
	return []any{b.Uid, b.ID, b.DungeonUid, b.EndTimestamp, b.BackSceneUid,
		b.EnteredTimes, b.SectionID, b.OpenUI, b.ToBeDestroyed, b.CameraX, b.CameraY}
}

func (b *SceneInfoBase) ptrs() []any {
	return []any{&b.Uid, &b.ID, &b.DungeonUid, &b.EndTimestamp, &b.BackSceneUid,
		&b.EnteredTimes, &b.SectionID, &b.OpenUI, &b.ToBeDestroyed, &b.CameraX, &b.CameraY}
}

type SceneInfoHall struct {
	SceneInfoBase
}

func (x *SceneInfoHall) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 1, x.values(), nil)
}

func (x *SceneInfoHall) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 1); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneInfoHall) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type SceneInfoHollow struct {
	SceneInfoBase
	EventVariables                *property.Map[string, int32]
	Buddy                         BuddyUnitInfo
	StressPunishAbilityRandomPool []string
	Finished                      bool
	EventWeightFactor             *property.Map[int32, int32]
	ShopModification              HollowShopModification
	LastChallengeStat             *property.Map[int32, uint8]
	CurChallenge                  *property.Set[int32]
	HollowSystemSwitch            *property.Map[HollowSystemType, bool]
	SectionsInfo                  *property.Map[int32, PlayerHollowSectionInfo]
	ExecutingEvent                bool
	EventID                       int32
	HollowEventGraphUid           uint64
	OnBattleSuccess               string
	OnBattleFailure               string
	BattleFinished                bool
	BattleSuccess                 bool
	BattleSceneUid                uint64
	SceneGlobalEvents             *property.Map[int32, uint64]
	PrepareSection                PrepareSection
	AbilitiesInfo                 AbilitiesInfo
	Blackout                      bool
	HollowSystemUIState           *property.Map[HollowSystemType, HollowSystemUIState]
}

func (x *SceneInfoHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 2, x.values(), []any{
		x.EventVariables, x.Buddy, x.StressPunishAbilityRandomPool, x.Finished,
		x.EventWeightFactor, x.ShopModification, x.LastChallengeStat, x.CurChallenge,
		x.HollowSystemSwitch, x.SectionsInfo, x.ExecutingEvent, x.EventID,
		x.HollowEventGraphUid, x.OnBattleSuccess, x.OnBattleFailure, x.BattleFinished,
		x.BattleSuccess, x.BattleSceneUid, x.SceneGlobalEvents, x.PrepareSection,
		x.AbilitiesInfo, x.Blackout, x.HollowSystemUIState,
	})
}

func (x *SceneInfoHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 2); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneInfoHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.EventVariables, &x.Buddy, &x.StressPunishAbilityRandomPool, &x.Finished,
		&x.EventWeightFactor, &x.ShopModification, &x.LastChallengeStat, &x.CurChallenge,
		&x.HollowSystemSwitch, &x.SectionsInfo, &x.ExecutingEvent, &x.EventID,
		&x.HollowEventGraphUid, &x.OnBattleSuccess, &x.OnBattleFailure, &x.BattleFinished,
		&x.BattleSuccess, &x.BattleSceneUid, &x.SceneGlobalEvents, &x.PrepareSection,
		&x.AbilitiesInfo, &x.Blackout, &x.HollowSystemUIState,
	})
}

type SceneInfoFight struct {
	SceneInfoBase
	PerformShowProgress *property.Map[ACTPerformShowMoment, uint8]
	EndHollow           bool
	RandomSeed          int32
}

func (x *SceneInfoFight) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 3, x.values(), []any{x.PerformShowProgress, x.EndHollow, x.RandomSeed})
}

func (x *SceneInfoFight) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 3); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneInfoFight) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.PerformShowProgress, &x.EndHollow, &x.RandomSeed})
}

type SceneInfoFresh struct {
	SceneInfoBase
}

func (x *SceneInfoFresh) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 4, x.values(), nil)
}

func (x *SceneInfoFresh) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 4); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneInfoFresh) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

func ReadSceneInfo(r *oct.Reader, tag uint16) (SceneInfo, error) {
	return readPoly(r, tag, "scene info", map[uint16]func() SceneInfo{
		1: func() SceneInfo { return new(SceneInfoHall) },
		2: func() SceneInfo { return new(SceneInfoHollow) },
		3: func() SceneInfo { return new(SceneInfoFight) },
		4: func() SceneInfo { return new(SceneInfoFresh) },
	})
}

// ---------------------------------------------------------------------------
// ItemInfo

// ItemInfo 物品记录。
type ItemInfo interface {
	oct.Data
	ItemBase() *ItemInfoBase
}

type ItemInfoBase struct {
	Uid          uint64
	ID           int32
	Count        int32
	Package      uint16
	FirstGetTime uint64
}

func (b *ItemInfoBase) ItemBase() *ItemInfoBase { return b }

func (b *ItemInfoBase) values() []any {
	return []any{b.Uid, b.ID, b.Count, b.Package, b.FirstGetTime}
}

func (b *ItemInfoBase) ptrs() []any {
	return []any{&b.Uid, &b.ID, &b.Count, &b.Package, &b.FirstGetTime}
}

// itemVariant 无变体字段的物品类别。
type itemVariant struct {
	ItemInfoBase
	disc uint16
}

func (x *itemVariant) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, x.disc, x.values(), nil)
}

func (x *itemVariant) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, x.disc); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *itemVariant) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type ItemCurrency struct{ itemVariant }
type ItemResource struct{ itemVariant }
type ItemAvatarPiece struct{ itemVariant }
type ItemBuddy struct{ itemVariant }
type ItemConsumable struct{ itemVariant }
type ItemUseable struct{ itemVariant }
type ItemAvatarLevelUpMaterial struct{ itemVariant }
type ItemWeaponLevelUpMaterial struct{ itemVariant }
type ItemEquipLevelUpMaterial struct{ itemVariant }
type ItemHollowItem struct{ itemVariant }
type ItemGift struct{ itemVariant }
type ItemOptionalGift struct{ itemVariant }

func NewItemCurrency() *ItemCurrency { return &ItemCurrency{itemVariant{disc: 1}} }
func NewItemResource() *ItemResource { return &ItemResource{itemVariant{disc: 2}} }
func NewItemAvatarPiece() *ItemAvatarPiece {
	return &ItemAvatarPiece{itemVariant{disc: 4}}
}
func NewItemBuddy() *ItemBuddy           { return &ItemBuddy{itemVariant{disc: 8}} }
func NewItemConsumable() *ItemConsumable { return &ItemConsumable{itemVariant{disc: 10}} }
func NewItemUseable() *ItemUseable       { return &ItemUseable{itemVariant{disc: 11}} }
func NewItemAvatarLevelUpMaterial() *ItemAvatarLevelUpMaterial {
	return &ItemAvatarLevelUpMaterial{itemVariant{disc: 12}}
}
func NewItemWeaponLevelUpMaterial() *ItemWeaponLevelUpMaterial {
	return &ItemWeaponLevelUpMaterial{itemVariant{disc: 13}}
}
func NewItemEquipLevelUpMaterial() *ItemEquipLevelUpMaterial {
	return &ItemEquipLevelUpMaterial{itemVariant{disc: 14}}
}
func NewItemHollowItem() *ItemHollowItem { return &ItemHollowItem{itemVariant{disc: 15}} }
func NewItemGift() *ItemGift             { return &ItemGift{itemVariant{disc: 51}} }
func NewItemOptionalGift() *ItemOptionalGift {
	return &ItemOptionalGift{itemVariant{disc: 52}}
}

type ItemAvatar struct {
	ItemInfoBase
	Star              uint8
	Exp               uint32
	Level             uint8
	Rank              uint8
	UnlockedTalentNum uint8
	Skills            *property.Map[uint8, uint8]
	IsCustomByDungeon bool
	RobotID           int32
}

func (x *ItemAvatar) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 3, x.values(), []any{
		x.Star, x.Exp, x.Level, x.Rank, x.UnlockedTalentNum,
		x.Skills, x.IsCustomByDungeon, x.RobotID,
	})
}

func (x *ItemAvatar) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 3); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemAvatar) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.Star, &x.Exp, &x.Level, &x.Rank, &x.UnlockedTalentNum,
		&x.Skills, &x.IsCustomByDungeon, &x.RobotID,
	})
}

type ItemWeapon struct {
	ItemInfoBase
	AvatarUid   uint64
	Star        uint8
	Exp         uint32
	Level       uint8
	Lock        uint8
	RefineLevel uint8
}

func (x *ItemWeapon) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 5, x.values(), []any{
		x.AvatarUid, x.Star, x.Exp, x.Level, x.Lock, x.RefineLevel,
	})
}

func (x *ItemWeapon) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 5); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemWeapon) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.AvatarUid, &x.Star, &x.Exp, &x.Level, &x.Lock, &x.RefineLevel,
	})
}

type ItemEquip struct {
	ItemInfoBase
	AvatarUid          uint64
	AvatarDressedIndex uint8
	RandProperties     []PropertyKeyValue
	Star               uint8
	Exp                uint32
	Leve               uint8
	Lock               uint8
	BaseRandProperties []PropertyKeyValue
	RandPropertiesLv   []int32
}

func (x *ItemEquip) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 7, x.values(), []any{
		x.AvatarUid, x.AvatarDressedIndex, x.RandProperties, x.Star, x.Exp,
		x.Leve, x.Lock, x.BaseRandProperties, x.RandPropertiesLv,
	})
}

func (x *ItemEquip) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 7); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemEquip) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.AvatarUid, &x.AvatarDressedIndex, &x.RandProperties, &x.Star, &x.Exp,
		&x.Leve, &x.Lock, &x.BaseRandProperties, &x.RandPropertiesLv,
	})
}

type ItemTarotCard struct {
	ItemInfoBase
	IsMute   bool
	Specials *property.Map[string, int32]
}

func (x *ItemTarotCard) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 31, x.values(), []any{x.IsMute, x.Specials})
}

func (x *ItemTarotCard) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 31); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemTarotCard) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.IsMute, &x.Specials})
}

type ItemBless struct {
	ItemInfoBase
	RemainTime   int32
	GetTime      uint64
	BanCharacter []int32
	Specials     *property.Map[string, int32]
	Slot         uint8
	IsSuperCurse bool
}

func (x *ItemBless) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 32, x.values(), []any{
		x.RemainTime, x.GetTime, x.BanCharacter, x.Specials, x.Slot, x.IsSuperCurse,
	})
}

func (x *ItemBless) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 32); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemBless) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.RemainTime, &x.GetTime, &x.BanCharacter, &x.Specials, &x.Slot, &x.IsSuperCurse,
	})
}

type ItemArcana struct {
	ItemInfoBase
	AffixList  []int32
	DressIndex uint8
}

func (x *ItemArcana) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 33, x.values(), []any{x.AffixList, x.DressIndex})
}

func (x *ItemArcana) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 33); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ItemArcana) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.AffixList, &x.DressIndex})
}

func ReadItemInfo(r *oct.Reader, tag uint16) (ItemInfo, error) {
	return readPoly(r, tag, "item info", map[uint16]func() ItemInfo{
		1:  func() ItemInfo { return NewItemCurrency() },
		2:  func() ItemInfo { return NewItemResource() },
		3:  func() ItemInfo { return new(ItemAvatar) },
		4:  func() ItemInfo { return NewItemAvatarPiece() },
		5:  func() ItemInfo { return new(ItemWeapon) },
		7:  func() ItemInfo { return new(ItemEquip) },
		8:  func() ItemInfo { return NewItemBuddy() },
		10: func() ItemInfo { return NewItemConsumable() },
		11: func() ItemInfo { return NewItemUseable() },
		12: func() ItemInfo { return NewItemAvatarLevelUpMaterial() },
		13: func() ItemInfo { return NewItemWeaponLevelUpMaterial() },
		14: func() ItemInfo { return NewItemEquipLevelUpMaterial() },
		15: func() ItemInfo { return NewItemHollowItem() },
		31: func() ItemInfo { return new(ItemTarotCard) },
		32: func() ItemInfo { return new(ItemBless) },
		33: func() ItemInfo { return new(ItemArcana) },
		51: func() ItemInfo { return NewItemGift() },
		52: func() ItemInfo { return NewItemOptionalGift() },
	})
}

// ---------------------------------------------------------------------------
// DungeonTableExt

type DungeonTableExt interface {
	oct.Data
	isDungeonTableExt()
}

type DungeonTableExtHall struct{}

func (*DungeonTableExtHall) isDungeonTableExt() {}

func (x *DungeonTableExtHall) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 1, nil, nil)
}

func (x *DungeonTableExtHall) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 1); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *DungeonTableExtHall) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, nil)
}

type DungeonTableExtHollow struct {
	Avatars            []HollowDungeonAvatarInfo
	ScenePropertiesUid uint64
	Buddy              HollowDungeonBuddyInfo
}

func (*DungeonTableExtHollow) isDungeonTableExt() {}

func (x *DungeonTableExtHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 2, nil, []any{x.Avatars, x.ScenePropertiesUid, x.Buddy})
}

func (x *DungeonTableExtHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 2); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *DungeonTableExtHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Avatars, &x.ScenePropertiesUid, &x.Buddy})
}

func ReadDungeonTableExt(r *oct.Reader, tag uint16) (DungeonTableExt, error) {
	return readPoly(r, tag, "dungeon table ext", map[uint16]func() DungeonTableExt{
		1: func() DungeonTableExt { return new(DungeonTableExtHall) },
		2: func() DungeonTableExt { return new(DungeonTableExtHollow) },
	})
}

// ---------------------------------------------------------------------------
// SceneTableExt

type SceneTableExt interface {
	oct.Data
	TableExtBase() *SceneTableExtBase
}

type SceneTableExtBase struct {
	EventGraphsInfo EventGraphsInfo
}

func (b *SceneTableExtBase) TableExtBase() *SceneTableExtBase { return b }

func (b *SceneTableExtBase) values() []any { return []any{b.EventGraphsInfo} }
func (b *SceneTableExtBase) ptrs() []any   { return []any{&b.EventGraphsInfo} }

type SceneTableExtHall struct {
	SceneTableExtBase
}

func (x *SceneTableExtHall) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 1, x.values(), nil)
}

func (x *SceneTableExtHall) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 1); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneTableExtHall) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type SceneTableExtHollow struct {
	SceneTableExtBase
	GridRandomSeed int32
	AlterSectionID int32
}

func (x *SceneTableExtHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 2, x.values(), []any{x.GridRandomSeed, x.AlterSectionID})
}

func (x *SceneTableExtHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 2); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneTableExtHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.GridRandomSeed, &x.AlterSectionID})
}

type SceneTableExtFight struct {
	SceneTableExtBase
}

func (x *SceneTableExtFight) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 3, x.values(), nil)
}

func (x *SceneTableExtFight) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 3); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneTableExtFight) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type SceneTableExtFresh struct {
	SceneTableExtBase
}

func (x *SceneTableExtFresh) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 4, x.values(), nil)
}

func (x *SceneTableExtFresh) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 4); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SceneTableExtFresh) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

func ReadSceneTableExt(r *oct.Reader, tag uint16) (SceneTableExt, error) {
	return readPoly(r, tag, "scene table ext", map[uint16]func() SceneTableExt{
		1: func() SceneTableExt { return new(SceneTableExtHall) },
		2: func() SceneTableExt { return new(SceneTableExtHollow) },
		3: func() SceneTableExt { return new(SceneTableExtFight) },
		4: func() SceneTableExt { return new(SceneTableExtFresh) },
	})
}

// ---------------------------------------------------------------------------
// SectionInfoExt

type SectionInfoExt interface {
	oct.Data
	SectionExtBase() *SectionInfoExtBase
}

type SectionInfoExtBase struct {
	DestroyNpcWhenNoPlayer *property.Set[uint64]
}

func (b *SectionInfoExtBase) SectionExtBase() *SectionInfoExtBase { return b }

func (b *SectionInfoExtBase) values() []any { return []any{b.DestroyNpcWhenNoPlayer} }
func (b *SectionInfoExtBase) ptrs() []any   { return []any{&b.DestroyNpcWhenNoPlayer} }

type SectionInfoExtHall struct {
	SectionInfoExtBase
}

func (x *SectionInfoExtHall) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 1, x.values(), nil)
}

func (x *SectionInfoExtHall) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 1); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SectionInfoExtHall) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type SectionInfoExtHollow struct {
	SectionInfoExtBase
	HollowLevelInfo   HollowLevelInfo
	HollowGridMapInfo HollowGridMapInfo
}

func (x *SectionInfoExtHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 0, x.values(), []any{x.HollowLevelInfo, x.HollowGridMapInfo})
}

func (x *SectionInfoExtHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 0); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *SectionInfoExtHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.HollowLevelInfo, &x.HollowGridMapInfo})
}

func ReadSectionInfoExt(r *oct.Reader, tag uint16) (SectionInfoExt, error) {
	return readPoly(r, tag, "section info ext", map[uint16]func() SectionInfoExt{
		0: func() SectionInfoExt { return new(SectionInfoExtHollow) },
		1: func() SectionInfoExt { return new(SectionInfoExtHall) },
	})
}

// ---------------------------------------------------------------------------
// ActionInfo

// ActionInfo 事件动作的客户端可见状态。None 仅写判别值 0xFFFF。
type ActionInfo interface {
	oct.Data
	isActionInfo()
}

const actionNoneDiscriminant uint16 = 0xFFFF

type ActionInfoNone struct{}

func (*ActionInfoNone) isActionInfo() {}

func (x *ActionInfoNone) Marshal(w *oct.Writer, _ uint16) error {
	w.WriteUint16(actionNoneDiscriminant)
	return nil
}

func (x *ActionInfoNone) Unmarshal(r *oct.Reader, tag uint16) error {
	return readDiscriminant(r, actionNoneDiscriminant)
}

func (x *ActionInfoNone) unmarshalBody(_ *oct.Reader, _ uint16) error { return nil }

type ActionServerChoices struct {
	Choices  []ChoiceInfo
	Finished bool
}

func (*ActionServerChoices) isActionInfo() {}

func (x *ActionServerChoices) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 52, nil, []any{x.Choices, x.Finished})
}

func (x *ActionServerChoices) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 52); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionServerChoices) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Choices, &x.Finished})
}

type ActionDropHollowItem struct {
	DropItem int32
}

func (*ActionDropHollowItem) isActionInfo() {}

func (x *ActionDropHollowItem) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 162, nil, []any{x.DropItem})
}

func (x *ActionDropHollowItem) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 162); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionDropHollowItem) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.DropItem})
}

type ActionFinishBlackout struct {
	Finished bool
	ShowTips bool
}

func (*ActionFinishBlackout) isActionInfo() {}

func (x *ActionFinishBlackout) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 133, nil, []any{x.Finished, x.ShowTips})
}

func (x *ActionFinishBlackout) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 133); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionFinishBlackout) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Finished, &x.ShowTips})
}

type ActionLoop struct {
	LoopTimes uint16
}

func (*ActionLoop) isActionInfo() {}

func (x *ActionLoop) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 141, nil, []any{x.LoopTimes})
}

func (x *ActionLoop) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 141); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionLoop) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.LoopTimes})
}

type ActionPerform struct {
	Step   uint8
	Return *property.Map[string, int32]
}

func (*ActionPerform) isActionInfo() {}

func (x *ActionPerform) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 23, nil, []any{x.Step, x.Return})
}

func (x *ActionPerform) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 23); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionPerform) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Step, &x.Return})
}

type ActionPrepareNextHollow struct {
	SectionID int32
	Finished  bool
	ShowOther bool
	MainMap   HollowGridMapProtocolInfo
}

func (*ActionPrepareNextHollow) isActionInfo() {}

func (x *ActionPrepareNextHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 130, nil, []any{x.SectionID, x.Finished, x.ShowOther, x.MainMap})
}

func (x *ActionPrepareNextHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 130); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionPrepareNextHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.SectionID, &x.Finished, &x.ShowOther, &x.MainMap})
}

type ActionRandomChallenge struct {
	Choices      []int32
	ChoiceResult int32
	Finished     bool
}

func (*ActionRandomChallenge) isActionInfo() {}

func (x *ActionRandomChallenge) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 109, nil, []any{x.Choices, x.ChoiceResult, x.Finished})
}

func (x *ActionRandomChallenge) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 109); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionRandomChallenge) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Choices, &x.ChoiceResult, &x.Finished})
}

type ActionRemoveCurse struct {
	CurseCanRemove []uint64
	ToRemoveNum    uint8
	Choosed        bool
}

func (*ActionRemoveCurse) isActionInfo() {}

func (x *ActionRemoveCurse) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 105, nil, []any{x.CurseCanRemove, x.ToRemoveNum, x.Choosed})
}

func (x *ActionRemoveCurse) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 105); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionRemoveCurse) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.CurseCanRemove, &x.ToRemoveNum, &x.Choosed})
}

type ActionSetHollowSystemState struct {
	Finished bool
}

func (*ActionSetHollowSystemState) isActionInfo() {}

func (x *ActionSetHollowSystemState) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 134, nil, []any{x.Finished})
}

func (x *ActionSetHollowSystemState) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 134); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionSetHollowSystemState) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Finished})
}

type ActionShop struct {
	ShopInfo *property.Map[HollowShopType, ConfigShopInfo]
	Finished bool
}

func (*ActionShop) isActionInfo() {}

func (x *ActionShop) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 62, nil, []any{x.ShopInfo, x.Finished})
}

func (x *ActionShop) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 62); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionShop) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.ShopInfo, &x.Finished})
}

type ActionSlotMachine struct {
	Indexes  []int32
	Index    int32
	Finished bool
}

func (*ActionSlotMachine) isActionInfo() {}

func (x *ActionSlotMachine) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 131, nil, []any{x.Indexes, x.Index, x.Finished})
}

func (x *ActionSlotMachine) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 131); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionSlotMachine) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.Indexes, &x.Index, &x.Finished})
}

type ActionTriggerBattle struct {
	NextActionID int32
	Finished     bool
}

func (*ActionTriggerBattle) isActionInfo() {}

func (x *ActionTriggerBattle) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 56, nil, []any{x.NextActionID, x.Finished})
}

func (x *ActionTriggerBattle) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 56); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *ActionTriggerBattle) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, nil, []any{&x.NextActionID, &x.Finished})
}

func ReadActionInfo(r *oct.Reader, tag uint16) (ActionInfo, error) {
	return readPoly(r, tag, "action info", map[uint16]func() ActionInfo{
		23:  func() ActionInfo { return new(ActionPerform) },
		52:  func() ActionInfo { return new(ActionServerChoices) },
		56:  func() ActionInfo { return new(ActionTriggerBattle) },
		62:  func() ActionInfo { return new(ActionShop) },
		105: func() ActionInfo { return new(ActionRemoveCurse) },
		109: func() ActionInfo { return new(ActionRandomChallenge) },
		130: func() ActionInfo { return new(ActionPrepareNextHollow) },
		131: func() ActionInfo { return new(ActionSlotMachine) },
		133: func() ActionInfo { return new(ActionFinishBlackout) },
		134: func() ActionInfo { return new(ActionSetHollowSystemState) },
		141: func() ActionInfo { return new(ActionLoop) },
		162: func() ActionInfo { return new(ActionDropHollowItem) },

		actionNoneDiscriminant: func() ActionInfo { return new(ActionInfoNone) },
	})
}

// ---------------------------------------------------------------------------
// EventGraphInfo

// EventGraphInfo 事件图记录，按分段/NPC/空洞三型分化。
type EventGraphInfo interface {
	oct.Data
	GraphBase() *EventGraphInfoBase
}

type EventGraphInfoBase struct {
	ConfigID     int32
	EventsInfo   *property.Map[int32, EventInfo]
	Specials     *property.Map[string, uint64]
	IsNew        bool
	Finished     bool
	ListSpecials *property.Map[string, []uint64]
}

func (b *EventGraphInfoBase) GraphBase() *EventGraphInfoBase { return b }

func (b *EventGraphInfoBase) values() []any {
	return []any{b.ConfigID, b.EventsInfo, b.Specials, b.IsNew, b.Finished, b.ListSpecials}
}

func (b *EventGraphInfoBase) ptrs() []any {
	return []any{&b.ConfigID, &b.EventsInfo, &b.Specials, &b.IsNew, &b.Finished, &b.ListSpecials}
}

type EventGraphSection struct {
	EventGraphInfoBase
}

func (x *EventGraphSection) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 1, x.values(), nil)
}

func (x *EventGraphSection) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 1); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *EventGraphSection) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type EventGraphNPC struct {
	EventGraphInfoBase
	SequenceOfGroup   uint16
	SectionListEvents *property.Map[string, EventListenerInfo]
	InteractInfo      InteractInfo
	Hide              bool
}

func (x *EventGraphNPC) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 2, x.values(), []any{
		x.SequenceOfGroup, x.SectionListEvents, x.InteractInfo, x.Hide,
	})
}

func (x *EventGraphNPC) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 2); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *EventGraphNPC) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.SequenceOfGroup, &x.SectionListEvents, &x.InteractInfo, &x.Hide,
	})
}

type EventGraphHollow struct {
	EventGraphInfoBase
	FiredCount            uint8
	HollowEventTemplateID int32
	Uid                   uint64
	IsCreatedByGm         bool
}

func (x *EventGraphHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 3, x.values(), []any{
		x.FiredCount, x.HollowEventTemplateID, x.Uid, x.IsCreatedByGm,
	})
}

func (x *EventGraphHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 3); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *EventGraphHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.FiredCount, &x.HollowEventTemplateID, &x.Uid, &x.IsCreatedByGm,
	})
}

func ReadEventGraphInfo(r *oct.Reader, tag uint16) (EventGraphInfo, error) {
	return readPoly(r, tag, "event graph info", map[uint16]func() EventGraphInfo{
		1: func() EventGraphInfo { return new(EventGraphSection) },
		2: func() EventGraphInfo { return new(EventGraphNPC) },
		3: func() EventGraphInfo { return new(EventGraphHollow) },
	})
}

// ---------------------------------------------------------------------------
// QuestInfo

// QuestInfo 任务记录。
type QuestInfo interface {
	oct.Data
	QuestBase() *QuestInfoBase
}

type QuestInfoBase struct {
	ID                      int32
	FinishedCount           int32
	CollectionUid           uint64
	Progress                uint16
	ParentQuestID           int32
	State                   QuestState
	FinishConditionProgress *property.Map[int32, int32]
	ProgressTime            uint32
	SortID                  uint64
}

func (b *QuestInfoBase) QuestBase() *QuestInfoBase { return b }

func (b *QuestInfoBase) values() []any {
	return []any{b.ID, b.FinishedCount, b.CollectionUid, b.Progress, b.ParentQuestID,
		b.State, b.FinishConditionProgress, b.ProgressTime, b.SortID}
}

func (b *QuestInfoBase) ptrs() []any {
	return []any{&b.ID, &b.FinishedCount, &b.CollectionUid, &b.Progress, &b.ParentQuestID,
		&b.State, &b.FinishConditionProgress, &b.ProgressTime, &b.SortID}
}

// questVariant 无变体字段的任务类别。
type questVariant struct {
	QuestInfoBase
	disc uint16
}

func (x *questVariant) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, x.disc, x.values(), nil)
}

func (x *questVariant) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, x.disc); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *questVariant) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), nil)
}

type QuestArchiveFile struct{ questVariant }
type QuestDungeonInner struct{ questVariant }
type QuestManual struct{ questVariant }
type QuestChallenge struct{ questVariant }
type QuestKnowledge struct{ questVariant }

func NewQuestArchiveFile() *QuestArchiveFile   { return &QuestArchiveFile{questVariant{disc: 1}} }
func NewQuestDungeonInner() *QuestDungeonInner { return &QuestDungeonInner{questVariant{disc: 2}} }
func NewQuestManual() *QuestManual             { return &QuestManual{questVariant{disc: 4}} }
func NewQuestChallenge() *QuestChallenge       { return &QuestChallenge{questVariant{disc: 6}} }
func NewQuestKnowledge() *QuestKnowledge       { return &QuestKnowledge{questVariant{disc: 8}} }

type QuestHollow struct {
	QuestInfoBase
	Statistics                    *property.Map[QuestStatisticsType, uint64]
	DungeonUid                    uint64
	StatisticsExt                 *property.DKMap[QuestStatisticsType, int32, int32]
	AcquiredHollowChallengeReward int32
}

func (x *QuestHollow) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 3, x.values(), []any{
		x.Statistics, x.DungeonUid, x.StatisticsExt, x.AcquiredHollowChallengeReward,
	})
}

func (x *QuestHollow) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 3); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *QuestHollow) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{
		&x.Statistics, &x.DungeonUid, &x.StatisticsExt, &x.AcquiredHollowChallengeReward,
	})
}

type QuestMainCity struct {
	QuestInfoBase
	BoundNPCAndInteract *property.Map[uint64, BoundNPCAndInteractInfo]
}

func (x *QuestMainCity) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 5, x.values(), []any{x.BoundNPCAndInteract})
}

func (x *QuestMainCity) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 5); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *QuestMainCity) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.BoundNPCAndInteract})
}

type QuestArchiveBattle struct {
	QuestInfoBase
	Statistics *property.Map[QuestStatisticsType, uint64]
	DungeonUid uint64
	Star       uint8
}

func (x *QuestArchiveBattle) Marshal(w *oct.Writer, tag uint16) error {
	return marshalPoly(w, tag, 7, x.values(), []any{x.Statistics, x.DungeonUid, x.Star})
}

func (x *QuestArchiveBattle) Unmarshal(r *oct.Reader, tag uint16) error {
	if err := readDiscriminant(r, 7); err != nil {
		return err
	}
	return x.unmarshalBody(r, tag)
}

func (x *QuestArchiveBattle) unmarshalBody(r *oct.Reader, tag uint16) error {
	return unmarshalPolyBody(r, tag, x.ptrs(), []any{&x.Statistics, &x.DungeonUid, &x.Star})
}

func ReadQuestInfo(r *oct.Reader, tag uint16) (QuestInfo, error) {
	return readPoly(r, tag, "quest info", map[uint16]func() QuestInfo{
		1: func() QuestInfo { return NewQuestArchiveFile() },
		2: func() QuestInfo { return NewQuestDungeonInner() },
		3: func() QuestInfo { return new(QuestHollow) },
		4: func() QuestInfo { return NewQuestManual() },
		5: func() QuestInfo { return new(QuestMainCity) },
		6: func() QuestInfo { return NewQuestChallenge() },
		7: func() QuestInfo { return new(QuestArchiveBattle) },
		8: func() QuestInfo { return NewQuestKnowledge() },
	})
}
