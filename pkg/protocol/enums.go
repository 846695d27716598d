package protocol

// ErrorCode 协议错误码。
type ErrorCode int32

const (
	ErrorCodeFail           ErrorCode = -1
	ErrorCodeSuccess        ErrorCode = 0
	ErrorCodeObjectNotExist ErrorCode = 1001
)

// HollowQuestType 空洞任务分类。
type HollowQuestType int16

const (
	HollowQuestTypeCommon           HollowQuestType = 0
	HollowQuestTypeMainQuest        HollowQuestType = 1
	HollowQuestTypeSideQuest        HollowQuestType = 2
	HollowQuestTypeUrgent           HollowQuestType = 3
	HollowQuestTypeUrgentSupplement HollowQuestType = 4
	HollowQuestTypeChallenge        HollowQuestType = 5
	HollowQuestTypeChallengeChaos   HollowQuestType = 6
	HollowQuestTypeAvatarSide       HollowQuestType = 7
)

// FairyState 精灵组状态。
type FairyState uint8

const (
	FairyStateUnlock FairyState = 0
	FairyStateClose  FairyState = 1
)

// FightRanking 战斗评级。
type FightRanking int16

const (
	FightRankingNone FightRanking = 0
	FightRankingD    FightRanking = 1
	FightRankingC    FightRanking = 2
	FightRankingB    FightRanking = 3
	FightRankingA    FightRanking = 4
	FightRankingS    FightRanking = 5
)

// BattleRewardType 战斗奖励归类。
type BattleRewardType int16

const (
	BattleRewardTypeClient    BattleRewardType = 1
	BattleRewardTypeBattleEvt BattleRewardType = 2
	BattleRewardTypeExt       BattleRewardType = 3
	BattleRewardTypeFight     BattleRewardType = 4
	BattleRewardTypeChallenge BattleRewardType = 5
)

// MailState 邮件状态。
type MailState int16

const (
	MailStateNew     MailState = 0
	MailStateOld     MailState = 1
	MailStateRead    MailState = 2
	MailStateAwarded MailState = 3
	MailStateRemoved MailState = 4
)

// HollowBattleEventType 空洞战斗事件类型。
type HollowBattleEventType int16

const (
	HollowBattleEventTypeDefault  HollowBattleEventType = 0
	HollowBattleEventTypeNormal   HollowBattleEventType = 1
	HollowBattleEventTypeElite    HollowBattleEventType = 2
	HollowBattleEventTypeBoss     HollowBattleEventType = 3
	HollowBattleEventTypeLevelEnd HollowBattleEventType = 4
	HollowBattleEventTypeLevelFin HollowBattleEventType = 5
)

// QuestType 任务大类。
type QuestType int16

const (
	QuestTypeArchiveFile     QuestType = 1
	QuestTypeDungeonInner    QuestType = 2
	QuestTypeHollow          QuestType = 3
	QuestTypeManual          QuestType = 4
	QuestTypeMainCity        QuestType = 5
	QuestTypeHollowChallenge QuestType = 6
	QuestTypeArchiveBattle   QuestType = 7
	QuestTypeKnowledge       QuestType = 8
)

// EventState 事件图事件状态。
type EventState int16

const (
	EventStateIniting       EventState = 0
	EventStateRunning       EventState = 1
	EventStatePause         EventState = 2
	EventStateWaitingMsg    EventState = 3
	EventStateWaitingClient EventState = 4
	EventStateFinished      EventState = 5
	EventStateError         EventState = 6
)

// ActionState 动作执行状态。
type ActionState int16

const (
	ActionStateInit     ActionState = 0
	ActionStateRunning  ActionState = 1
	ActionStateFinished ActionState = 2
	ActionStateError    ActionState = 3
)

// DungeonContentDropPoolType 掉落池分类。
type DungeonContentDropPoolType uint8

const (
	DropPoolTypeCard       DungeonContentDropPoolType = 0
	DropPoolTypeBaneCard   DungeonContentDropPoolType = 1
	DropPoolTypeArcana     DungeonContentDropPoolType = 2
	DropPoolTypeBlessing   DungeonContentDropPoolType = 3
	DropPoolTypeCurse      DungeonContentDropPoolType = 4
	DropPoolTypeReward     DungeonContentDropPoolType = 5
	DropPoolTypeHollowItem DungeonContentDropPoolType = 6
)

// ReportType 战报分类。
type ReportType int16

const (
	ReportTypeFairy         ReportType = 0
	ReportTypeDialog        ReportType = 1
	ReportTypeTask          ReportType = 2
	ReportTypeDialogInFairy ReportType = 3
)

// UIType 进场景时要打开的界面。
type UIType uint16

const (
	UITypeDefault     UIType = 0
	UITypeNone        UIType = 1
	UITypeHollowQuest UIType = 2
	UITypeArchive     UIType = 3
)

// ACTPerformShowMoment 演出时机。
type ACTPerformShowMoment int16

const (
	ACTPerformShowMomentBegin ACTPerformShowMoment = 0
	ACTPerformShowMomentEnd   ACTPerformShowMoment = 1
)

// HollowSystemType 空洞子系统。
type HollowSystemType int16

const (
	HollowSystemTypeCard             HollowSystemType = 1
	HollowSystemTypeMenu             HollowSystemType = 2
	HollowSystemTypeCurse            HollowSystemType = 3
	HollowSystemTypeBag              HollowSystemType = 4
	HollowSystemTypeHollowItem       HollowSystemType = 5
	HollowSystemTypeHollowResultPage HollowSystemType = 6
	HollowSystemTypeCurseInfo        HollowSystemType = 7
)

// HollowSystemUIState 空洞子系统界面状态。
type HollowSystemUIState int16

const (
	HollowSystemUIStateNormal   HollowSystemUIState = 0
	HollowSystemUIStateClose    HollowSystemUIState = 1
	HollowSystemUIStateBrighten HollowSystemUIState = 2
)

// HollowShopType 空洞商店分类。
type HollowShopType int16

const (
	HollowShopTypeAll        HollowShopType = 0
	HollowShopTypeItem       HollowShopType = 1
	HollowShopTypeCard       HollowShopType = 2
	HollowShopTypeCurse      HollowShopType = 3
	HollowShopTypeHollowItem HollowShopType = 4
	HollowShopTypeDiscount   HollowShopType = 5
	HollowShopTypeGachashop  HollowShopType = 6
)

// TimePeriodType 时段。
type TimePeriodType int16

const (
	TimePeriodTypeRandom  TimePeriodType = 0
	TimePeriodTypeMorning TimePeriodType = 1
	TimePeriodTypeEvening TimePeriodType = 2
	TimePeriodTypeNight   TimePeriodType = 3
)

// WeatherType 天气。
type WeatherType int16

const (
	WeatherTypeNone     WeatherType = -1
	WeatherTypeRandom   WeatherType = 0
	WeatherTypeSunShine WeatherType = 1
	WeatherTypeFog      WeatherType = 2
	WeatherTypeCloudy   WeatherType = 3
	WeatherTypeRain     WeatherType = 4
	WeatherTypeThunder  WeatherType = 5
)

// PropertyType 单位属性键。
type PropertyType int16

const (
	PropertyTypeHp                     PropertyType = 1
	PropertyTypeArmor                  PropertyType = 2
	PropertyTypeShield                 PropertyType = 3
	PropertyTypeStun                   PropertyType = 4
	PropertyTypeSp                     PropertyType = 5
	PropertyTypeUsp                    PropertyType = 6
	PropertyTypeDead                   PropertyType = 99
	PropertyTypeHpMax                  PropertyType = 111
	PropertyTypeArmorMax               PropertyType = 112
	PropertyTypeShieldMax              PropertyType = 113
	PropertyTypeStunMax                PropertyType = 114
	PropertyTypeSpMax                  PropertyType = 115
	PropertyTypeUspMax                 PropertyType = 116
	PropertyTypeAtk                    PropertyType = 121
	PropertyTypeBreakStun              PropertyType = 122
	PropertyTypeDef                    PropertyType = 131
	PropertyTypeCrit                   PropertyType = 201
	PropertyTypeCritRes                PropertyType = 202
	PropertyTypeCritDmg                PropertyType = 211
	PropertyTypeCritDmgRes             PropertyType = 212
	PropertyTypePen                    PropertyType = 231
	PropertyTypePenValue               PropertyType = 232
	PropertyTypeEndurance              PropertyType = 301
	PropertyTypeSpRecover              PropertyType = 305
	PropertyTypeHpHealRatio            PropertyType = 306
	PropertyTypeAddedDamageRatio       PropertyType = 307
	PropertyTypeHpMaxBattle            PropertyType = 1111
	PropertyTypeArmorMaxBattle         PropertyType = 1112
	PropertyTypeShieldMaxBattle        PropertyType = 1113
	PropertyTypeStunMaxBattle          PropertyType = 1114
	PropertyTypeSpBattle               PropertyType = 1115
	PropertyTypeAtkBattle              PropertyType = 1121
	PropertyTypeBreakStunBattle        PropertyType = 1122
	PropertyTypeDefBattle              PropertyType = 1131
	PropertyTypeCritBattle             PropertyType = 1201
	PropertyTypeCritResBattle          PropertyType = 1202
	PropertyTypeCritDmgBattle          PropertyType = 1211
	PropertyTypeCritDmgResBattle       PropertyType = 1212
	PropertyTypePenRatioBattle         PropertyType = 1231
	PropertyTypePenDeltaBattle         PropertyType = 1232
	PropertyTypeEnduranceBattle        PropertyType = 1301
	PropertyTypeSpRecoverBattle        PropertyType = 1305
	PropertyTypeHpHealRatioBattle      PropertyType = 1306
	PropertyTypeAddedDamageRatioBattle PropertyType = 1307
	PropertyTypeHpMaxBase              PropertyType = 11101
	PropertyTypeArmorMaxBase           PropertyType = 11201
	PropertyTypeShieldMaxBase          PropertyType = 11301
	PropertyTypeAtkBase                PropertyType = 12101
	PropertyTypeDefBase                PropertyType = 13101
	PropertyTypeCritBase               PropertyType = 20101
	PropertyTypeCritResBase            PropertyType = 20201
	PropertyTypeCritDmgBase            PropertyType = 21101
	PropertyTypeCritDmgResBase         PropertyType = 21201
	PropertyTypePenBase                PropertyType = 23101
	PropertyTypePenValueBase           PropertyType = 23201
	PropertyTypeBreakStunBase          PropertyType = 12201
	PropertyTypeStunMaxBase            PropertyType = 11401
	PropertyTypeSpMaxBase              PropertyType = 11501
	PropertyTypeEnduranceBase          PropertyType = 30101
	PropertyTypeUspMaxBase             PropertyType = 11601
	PropertyTypeSpRecoverBase          PropertyType = 30501
	PropertyTypeHpHealRatioBase        PropertyType = 30601
	PropertyTypeAddedDamageRatioBase   PropertyType = 30701
	PropertyTypeHpMaxRatio             PropertyType = 11102
	PropertyTypeArmorMaxRatio          PropertyType = 11202
	PropertyTypeShieldMaxRatio         PropertyType = 11302
	PropertyTypeAtkRatio               PropertyType = 12102
	PropertyTypeDefRatio               PropertyType = 13102
	PropertyTypeBreakStunRatio         PropertyType = 12202
	PropertyTypeStunMaxRatio           PropertyType = 11402
	PropertyTypeEnduranceRatio         PropertyType = 30102
	PropertyTypeSpRecoverRatio         PropertyType = 30502
	PropertyTypeHpMaxDelta             PropertyType = 11103
	PropertyTypeArmorMaxDelta          PropertyType = 11203
	PropertyTypeShieldMaxDelta         PropertyType = 11303
	PropertyTypeAtkDelta               PropertyType = 12103
	PropertyTypeDefDelta               PropertyType = 13103
	PropertyTypeBreakStunDelta         PropertyType = 12203
	PropertyTypeStunMaxDelta           PropertyType = 11403
	PropertyTypeSpMaxDelta             PropertyType = 11503
	PropertyTypeCritDelta              PropertyType = 20103
	PropertyTypeCritResDelta           PropertyType = 20203
	PropertyTypeCritDmgDelta           PropertyType = 21103
	PropertyTypeCritDmgResDelta        PropertyType = 21203
	PropertyTypeUspMaxDelta            PropertyType = 11603
	PropertyTypePenDelta               PropertyType = 23103
	PropertyTypePenValueDelta          PropertyType = 23203
	PropertyTypeEnduranceDelta         PropertyType = 30103
	PropertyTypeSpRecoverDelta         PropertyType = 30503
	PropertyTypeHpHealRatioDelta       PropertyType = 30603
	PropertyTypeAddedDamageRatioDelta  PropertyType = 30703
	PropertyTypeHpMaxRatioRL           PropertyType = 11104
	PropertyTypeArmorMaxRatioRL        PropertyType = 11204
	PropertyTypeShieldMaxRatioRL       PropertyType = 11304
	PropertyTypeAtkRatioRL             PropertyType = 12104
	PropertyTypeDefRatioRL             PropertyType = 13104
	PropertyTypeHpMaxDeltaRL           PropertyType = 11105
	PropertyTypeArmorMaxDeltaRL        PropertyType = 11205
	PropertyTypeShieldMaxDeltaRL       PropertyType = 11305
	PropertyTypeAtkDeltaRL             PropertyType = 12105
	PropertyTypeDefDeltaRL             PropertyType = 13105
	PropertyTypeCritRL                 PropertyType = 20105
	PropertyTypeCritResRL              PropertyType = 20205
	PropertyTypeCritDmgRL              PropertyType = 21105
	PropertyTypeCritDmgResRL           PropertyType = 21205
	PropertyTypePenRatioRL             PropertyType = 23105
	PropertyTypePenDeltaRL             PropertyType = 23205
	PropertyTypeBreakStunRatioRL       PropertyType = 12204
	PropertyTypeBreakStunDeltaRL       PropertyType = 12205
	PropertyTypeStunMaxRatioRL         PropertyType = 11404
	PropertyTypeSpMaxDeltaRL           PropertyType = 11505
	PropertyTypeUspMaxDeltaRL          PropertyType = 11605
	PropertyTypeEnduranceRatioRL       PropertyType = 30104
	PropertyTypeEnduranceDeltaRL       PropertyType = 30105
	PropertyTypeSpRecoverRatioRL       PropertyType = 30504
	PropertyTypeSpRecoverDeltaRL       PropertyType = 30505
	PropertyTypeHpHealRatioRL          PropertyType = 30605
	PropertyTypeAddedDamageRatioRL     PropertyType = 30705
	PropertyTypeMapHpreserveMaxhp      PropertyType = 10320
	PropertyTypeMapHpreserveCurhp      PropertyType = 10330
	PropertyTypeMapHpreserveAbsolute   PropertyType = 10340
	PropertyTypeActorMaxCurHP          PropertyType = 10350
)

// ScenePropertyType 场景属性键。
type ScenePropertyType int16

const (
	ScenePropertyStamina                      ScenePropertyType = 1001
	ScenePropertyStaminaMax                   ScenePropertyType = 1002
	ScenePropertyStaminaRatio                 ScenePropertyType = 1003
	ScenePropertyStaminaDelta                 ScenePropertyType = 1004
	ScenePropertyGoldRatio                    ScenePropertyType = 1005
	ScenePropertyGoldDelta                    ScenePropertyType = 1006
	ScenePropertyCardRWeight                  ScenePropertyType = 1007
	ScenePropertyCardRWeightRatio             ScenePropertyType = 1008
	ScenePropertyCardSRWeight                 ScenePropertyType = 1009
	ScenePropertyCardSRWeightRatio            ScenePropertyType = 1010
	ScenePropertyCardSSRWeight                ScenePropertyType = 1011
	ScenePropertyCardSSRWeightRatio           ScenePropertyType = 1012
	ScenePropertyMobility                     ScenePropertyType = 1013
	ScenePropertyBuffTurn                     ScenePropertyType = 1014
	ScenePropertyForbiddenStamina             ScenePropertyType = 1015
	ScenePropertyForbiddenGold                ScenePropertyType = 1016
	ScenePropertyOptionNum                    ScenePropertyType = 1017
	ScenePropertyShopPrice                    ScenePropertyType = 1018
	ScenePropertyStaminaIncrease              ScenePropertyType = 1019
	ScenePropertyStaminaOverLevel             ScenePropertyType = 1020
	ScenePropertyDropRate                     ScenePropertyType = 1021
	ScenePropertyBanCharacter1                ScenePropertyType = 1022
	ScenePropertyBanCharacter2                ScenePropertyType = 1023
	ScenePropertyBanCharacter3                ScenePropertyType = 1024
	ScenePropertyPlayerView                   ScenePropertyType = 1025
	ScenePropertyActorAddedDamageRatio        ScenePropertyType = 1030
	ScenePropertyActorDamageTakeRatio         ScenePropertyType = 1031
	ScenePropertyMapHpreserveMaxhp            ScenePropertyType = 1032
	ScenePropertyMapHpreserveCurhp            ScenePropertyType = 1033
	ScenePropertyMapHpreserveAbsolute         ScenePropertyType = 1034
	ScenePropertyActorMaxCurHP                ScenePropertyType = 1035
	ScenePropertyShopPriceDelta               ScenePropertyType = 1036
	ScenePropertyShopPriceOverwriteCard       ScenePropertyType = 1037
	ScenePropertyShopPriceOverwriteItem       ScenePropertyType = 1038
	ScenePropertyCardOptionHideNum            ScenePropertyType = 1039
	ScenePropertyCardOptionForbidNum          ScenePropertyType = 1040
	ScenePropertyHealingRatio                 ScenePropertyType = 1041
	ScenePropertyDinyRatio                    ScenePropertyType = 1042
	ScenePropertyWeather                      ScenePropertyType = 1043
	ScenePropertyTimePeriod                   ScenePropertyType = 1044
	ScenePropertyShopPriceOverwriteCurse      ScenePropertyType = 1045
	ScenePropertyShopPriceOverwriteHollowItem ScenePropertyType = 1046
	ScenePropertyShopPriceOverwriteDiscount   ScenePropertyType = 1047
	ScenePropertyShopPriceOverwriteGachashop  ScenePropertyType = 1048
)

// HollowGridFlag 棋盘格标志位。
type HollowGridFlag uint32

const (
	GridFlagCore                     HollowGridFlag = 1
	GridFlagCanMove                  HollowGridFlag = 2
	GridFlagTravelled                HollowGridFlag = 4
	GridFlagShowEventType            HollowGridFlag = 8
	GridFlagShowEventID              HollowGridFlag = 16
	GridFlagCanTriggerEvent          HollowGridFlag = 32
	GridFlagVisible                  HollowGridFlag = 64
	GridFlagVisibleAtGridAround      HollowGridFlag = 128
	GridFlagVisibleByTriggerEvent    HollowGridFlag = 256
	GridFlagSyncToClient             HollowGridFlag = 512
	GridFlagDoor                     HollowGridFlag = 1024
	GridFlagCanTriggerMultiTimes     HollowGridFlag = 2048
	GridFlagTemporaryVisibleAtAround HollowGridFlag = 4096
	GridFlagUnlocked                 HollowGridFlag = 8192
	GridFlagBrighten                 HollowGridFlag = 16384
	GridFlagGuide                    HollowGridFlag = 32768
	GridFlagTarget                   HollowGridFlag = 65536
	GridFlagBrightenOnlyVisible      HollowGridFlag = 131072
	GridFlagUnstable                 HollowGridFlag = 262144
)

// PackGridFlags 合并标志位。
func PackGridFlags(flags ...HollowGridFlag) uint32 {
	var v uint32
	for _, f := range flags {
		v |= uint32(f)
	}
	return v
}

// HasGridFlag 检查标志位。
func HasGridFlag(v uint32, flag HollowGridFlag) bool {
	return v&uint32(flag) != 0
}

// HollowGridLink 棋盘格连通方向。
type HollowGridLink uint8

const (
	GridLinkNone  HollowGridLink = 0
	GridLinkUp    HollowGridLink = 1
	GridLinkDown  HollowGridLink = 2
	GridLinkRight HollowGridLink = 4
	GridLinkLeft  HollowGridLink = 8
	GridLinkAll   HollowGridLink = 15
)

// NodeState 棋盘节点状态。
type NodeState int16

const (
	NodeStateAll                 NodeState = 0
	NodeStateLocked              NodeState = 1
	NodeStateUnlocked            NodeState = 2
	NodeStateFinished            NodeState = 3
	NodeStateShowEvent           NodeState = 4
	NodeStateDoor                NodeState = 5
	NodeStateBrighten            NodeState = 6
	NodeStateGuide               NodeState = 7
	NodeStateTarget              NodeState = 8
	NodeStateBrightenOnlyVisible NodeState = 9
	NodeStateUnstable            NodeState = 10
)

// NodeVisible 棋盘节点可见性。
type NodeVisible int16

const (
	NodeVisibleAll                      NodeVisible = 0
	NodeVisibleVisible                  NodeVisible = 1
	NodeVisibleAtGridAround             NodeVisible = 2
	NodeVisibleByTriggerEvent           NodeVisible = 3
	NodeVisibleTemporaryVisibleAtAround NodeVisible = 4
)

// HollowEventType 空洞事件类型。
type HollowEventType int16

const (
	HollowEventTypeNone                HollowEventType = 0
	HollowEventTypeAll                 HollowEventType = 1
	HollowEventTypeBegin               HollowEventType = 10
	HollowEventTypeEnd                 HollowEventType = 20
	HollowEventTypeInteractEnd         HollowEventType = 21
	HollowEventTypeBattleEnd           HollowEventType = 22
	HollowEventTypeChangeLevelInteract HollowEventType = 23
	HollowEventTypeChangeLevelFight    HollowEventType = 24
	HollowEventTypeBattle              HollowEventType = 30
	HollowEventTypeBattleNormal        HollowEventType = 31
	HollowEventTypeBattleElite         HollowEventType = 32
	HollowEventTypeBattleBoss          HollowEventType = 33
	HollowEventTypeDialog              HollowEventType = 40
	HollowEventTypeDialogPositive      HollowEventType = 41
	HollowEventTypeDialogNegative      HollowEventType = 42
	HollowEventTypeDialogSpecial       HollowEventType = 43
)

// HollowShopCurrency 空洞商店结算货币。
type HollowShopCurrency int16

const (
	HollowShopCurrencyCoin   HollowShopCurrency = 1
	HollowShopCurrencyCurse  HollowShopCurrency = 2
	HollowShopCurrencyRandom HollowShopCurrency = 3
)

// QuestState 任务状态机。
type QuestState int16

const (
	QuestStateUnlocked   QuestState = 0
	QuestStateReady      QuestState = 10
	QuestStateInProgress QuestState = 1
	QuestStateToFinish   QuestState = 2
	QuestStateFinished   QuestState = 3
)

// QuestStatisticsType 任务统计维度。
type QuestStatisticsType uint8

const (
	QuestStatisticsArrivedLevel           QuestStatisticsType = 1
	QuestStatisticsEventCount             QuestStatisticsType = 2
	QuestStatisticsCostTime               QuestStatisticsType = 3
	QuestStatisticsKilledEnemyCount       QuestStatisticsType = 4
	QuestStatisticsArcanaCount            QuestStatisticsType = 5
	QuestStatisticsTarotCardCount         QuestStatisticsType = 6
	QuestStatisticsStaminaOverLevelTimes  QuestStatisticsType = 7
	QuestStatisticsRebornTimes            QuestStatisticsType = 8
	QuestStatisticsFinishedEventTypeCount QuestStatisticsType = 9
	QuestStatisticsFinishedEventIDCount   QuestStatisticsType = 10
)

// System 客户端系统面板。
type System int16

const (
	SystemHollowQuestUI     System = 0
	SystemVHSUI             System = 1
	SystemRoleUI            System = 2
	SystemSmithyUI          System = 3
	SystemPackageUI         System = 4
	SystemTeleportUI        System = 5
	SystemYorozuyaManualUI  System = 6
	SystemVHSStoreUI        System = 7
	SystemRamenUI           System = 8
	SystemWorkbenchUI       System = 9
	SystemGroceryUI         System = 10
	SystemVideoshopUI       System = 11
	SystemSwitchOfStoryMode System = 12
	SystemSwitchOfQTE       System = 13
	SystemLineupSelect      System = 14
	SystemUseStoryMode      System = 15
	SystemUseManualQTEMode  System = 16
)

// InteractTarget 交互对象类型。
type InteractTarget int16

const (
	InteractTargetNPC        InteractTarget = 0
	InteractTargetTriggerBox InteractTarget = 1
)

// EventGraphOwnerType 事件图宿主类型。
type EventGraphOwnerType int16

const (
	EventGraphOwnerScene     EventGraphOwnerType = 0
	EventGraphOwnerSection   EventGraphOwnerType = 1
	EventGraphOwnerSceneUnit EventGraphOwnerType = 2
	EventGraphOwnerHollow    EventGraphOwnerType = 3
)

// Operator 面板操作。
type Operator int16

const (
	OperatorEnter Operator = 0
)

// UnlockIDType 收藏图鉴分类。
type UnlockIDType int16

const (
	UnlockIDTypeAll       UnlockIDType = 0
	UnlockIDTypeCard      UnlockIDType = 1
	UnlockIDTypeCurse     UnlockIDType = 2
	UnlockIDTypeEventIcon UnlockIDType = 3
)
