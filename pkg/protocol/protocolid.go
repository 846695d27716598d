package protocol

// 客户端协议号。
const (
	RpcLoginID                              uint16 = 100
	PtcPlayerInfoChangedID                  uint16 = 101
	PtcAccountInfoChangedID                 uint16 = 102
	RpcLogoutID                             uint16 = 103
	RpcCreatePlayerID                       uint16 = 104
	RpcEnterWorldID                         uint16 = 105
	RpcAvatarLevelUpID                      uint16 = 107
	RpcAvatarStarUpID                       uint16 = 108
	RpcUndressEquipmentID                   uint16 = 109
	PtcClientCommonID                       uint16 = 110
	RpcAvatarAdvanceID                      uint16 = 111
	RpcDressEquipmentID                     uint16 = 112
	RpcGMCommandID                          uint16 = 113
	PtcHollowGridID                         uint16 = 114
	PtcPrepareSectionID                     uint16 = 115
	PtcPauseMainCityTimeID                  uint16 = 116
	PtcItemChangedID                        uint16 = 117
	PtcEnterSceneID                         uint16 = 118
	RpcWeaponLockID                         uint16 = 119
	RpcWeaponDecomposeID                    uint16 = 120
	RpcGetShopInfoID                        uint16 = 122
	PtcSyncHollowGridMapsID                 uint16 = 124
	RpcBattleReportID                       uint16 = 125
	RpcWeaponLevelUpID                      uint16 = 126
	RpcWeaponStarUpID                       uint16 = 127
	PtcScenePropertyChangedID               uint16 = 128
	PtcPropertyChangedID                    uint16 = 129
	RpcEquipmentLevelUpID                   uint16 = 130
	RpcEquipmentStarUpID                    uint16 = 131
	RpcWeaponDressID                        uint16 = 132
	PtcFairyInfoChangedID                   uint16 = 134
	RpcOpenVHSStoreID                       uint16 = 135
	PtcDungeonQuestPrepareToFinishID        uint16 = 136
	RpcBeginArchiveBattleQuestID            uint16 = 137
	PtcHollowGlobalEventID                  uint16 = 138
	RpcWeaponUnDressID                      uint16 = 139
	RpcLeaveCurDungeonID                    uint16 = 140
	PtcPositionInHollowChangedID            uint16 = 141
	RpcGiveUpDungeonQuestID                 uint16 = 142
	RpcHollowChangeAffixID                  uint16 = 143
	PtcTransformToHollowGridID              uint16 = 144
	PtcBeforeGoToHollowLevelID              uint16 = 145
	RpcFinishGraphInClientID                uint16 = 146
	PtcStaminaOverLevelPunishID             uint16 = 147
	PtcDungeonQuestFinishedID               uint16 = 148
	RpcKeepAliveID                          uint16 = 149
	RpcReenterWorldID                       uint16 = 150
	PtcGoToHollowLevelID                    uint16 = 154
	PtcQuestUnlockedID                      uint16 = 158
	RpcGetChatHistoryClient2PlayerID        uint16 = 159
	RpcSendChatMessageClient2PlayerID       uint16 = 163
	PtcReceivedChatMessagePlayer2ClientID   uint16 = 165
	RpcGetArchiveRewardID                   uint16 = 166
	RpcBuyAutoRecoveryItemID                uint16 = 167
	RpcYorozuyaManualReceiveRewardID        uint16 = 168
	RpcEquipGachaID                         uint16 = 169
	RpcEquipDecomposeID                     uint16 = 170
	RpcAdvanceBeginnerProcedureID           uint16 = 171
	RpcEquipLockID                          uint16 = 172
	RpcGachaID                              uint16 = 173
	RpcEnterSectionID                       uint16 = 175
	PtcPositionID                           uint16 = 176
	PtcSyncEventInfoID                      uint16 = 177
	RpcRunEventGraphID                      uint16 = 179
	PtcSyncSceneUnitID                      uint16 = 180
	RpcInteractWithUnitID                   uint16 = 181
	RpcGetYorozuyaInfoID                    uint16 = 182
	RpcStartHollowQuestID                   uint16 = 183
	PtcKickPlayerID                         uint16 = 184
	RpcFinishACTPerformShowID               uint16 = 185
	RpcEndSlotMachineID                     uint16 = 186
	RpcFinishEventGraphPerformShowID        uint16 = 187
	RpcLeaveWorldID                         uint16 = 190
	PtcChallengeQuestFinishedID             uint16 = 193
	PtcUnlockID                             uint16 = 196
	RpcAvatarSkillLevelUpID                 uint16 = 197
	RpcSwitchHollowRankID                   uint16 = 198
	RpcAvatarUnlockTalentID                 uint16 = 199
	PtcEnterSceneBeginID                    uint16 = 200
	PtcHollowQuestUnlockedByMainCityQuestID uint16 = 201
	RpcSavePosInMainCityID                  uint16 = 202
	PtcPlayerOperationID                    uint16 = 203
	PtcGetServerTimestampID                 uint16 = 204
	PtcPopupWindowID                        uint16 = 206
	PtcShowTipsID                           uint16 = 207
	PtcSyncHollowEventInfoID                uint16 = 210
	RpcRunHollowEventGraphID                uint16 = 211
	RpcHollowShoppingID                     uint16 = 213
	RpcMakeChoiceOfEventID                  uint16 = 214
	RpcModNickNameID                        uint16 = 215
	RpcDebugPayID                           uint16 = 216
	PtcCardDisableID                        uint16 = 217
	RpcSelectVHSCollectionID                uint16 = 219
	RpcUseInitiativeItemID                  uint16 = 220
	RpcGetPlayerMailsID                     uint16 = 221
	PtcPlayerMailsReceivedID                uint16 = 222
	PtcEnterSceneEndID                      uint16 = 224
	PtcPlayerMailsRemovedID                 uint16 = 225
	PtcHpOrStressChangedID                  uint16 = 226
	RpcReceiveVHSStoreRewardID              uint16 = 227
	RpcDelNewRamenID                        uint16 = 228
	RpcRemoveHollowCurseID                  uint16 = 229
	RpcShoppingID                           uint16 = 230
	RpcWeaponRefineID                       uint16 = 232
	RpcMakeInitiativeItemID                 uint16 = 234
	RpcRefreshVHSTrendingID                 uint16 = 235
	RpcSelectChallengeID                    uint16 = 236
	RpcRefreshShopID                        uint16 = 237
	PtcAbilityPopTextID                     uint16 = 239
	RpcAFKHollowQuestID                     uint16 = 241
	PtcEnterSectionID                       uint16 = 243
	RpcCloseLevelChgTipsID                  uint16 = 244
	RpcCheckYorozuyaInfoRefreshID           uint16 = 245
	PtcAvatarMapChangedID                   uint16 = 246
	RpcHollowMoveID                         uint16 = 248
	PtcSyncSceneTimeID                      uint16 = 249
	RpcBeginnerbattleRebeginID              uint16 = 250
	RpcEndBattleID                          uint16 = 251
	RpcPrepareNextHollowEndID               uint16 = 252
	RpcPerformTriggerID                     uint16 = 253
	RpcPerformJumpID                        uint16 = 254
	RpcPerformEndID                         uint16 = 255
	RpcAwardPlayerMailID                    uint16 = 256
	RpcAwardAllPlayerMailID                 uint16 = 257
	RpcBeginnerbattleBeginID                uint16 = 258
	RpcReadPlayerMailID                     uint16 = 263
	RpcRemovePlayerMailsFromClientID        uint16 = 264
	RpcSetPlayerMailOldID                   uint16 = 265
	RpcFinishBlackoutID                     uint16 = 267
	PtcHollowBlackoutID                     uint16 = 268
	RpcBuyVHSCollectionID                   uint16 = 269
	PtcPreventAddictionID                   uint16 = 270
	RpcSetBGMID                             uint16 = 273
	RpcSetMainCityObjectStateID             uint16 = 274
	PtcShowCardGenreTipsID                  uint16 = 276
	PtcConfigUpdatedID                      uint16 = 277
	PtcShowUnlockIDTipsID                   uint16 = 278
	PtcFunctionSwitchMaskID                 uint16 = 279
	RpcGetAuthKeyID                         uint16 = 280
	RpcItemConvertID                        uint16 = 281
	RpcClickHollowSystemID                  uint16 = 282
	RpcEatRamenID                           uint16 = 283
	PtcHollowPushBackID                     uint16 = 284
	RpcBeginnerbattleEndID                  uint16 = 285
	RpcBattleRebeginID                      uint16 = 286
	RpcDelNewMapID                          uint16 = 287
)
