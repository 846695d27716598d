package manager

import (
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/logger"
)

// GameContext 单个连接的游戏世界。所有管理器共享同一份属性树与 uid 序列。
type GameContext struct {
	Log    logger.Logger
	Tables *data.Tables
	Props  *model.PropertyManager

	// 跳过新手教学，直接落在主城。
	SkipTutorial bool

	Uid        *UidAllocator
	Item       *ItemManager
	Quest      *QuestManager
	Unlock     *UnlockManager
	Yorozuya   *YorozuyaQuestManager
	SceneUnit  *SceneUnitManager
	Dungeon    *DungeonManager
	HollowGrid *HollowGridManager
}

func NewGameContext(accountID uint64, tables *data.Tables, log logger.Logger) *GameContext {
	props := model.NewPropertyManager(accountID)
	uid := NewUidAllocator()

	return &GameContext{
		Log:    log,
		Tables: tables,
		Props:  props,

		Uid:        uid,
		Item:       NewItemManager(uid, props),
		Quest:      NewQuestManager(uid, props),
		Unlock:     NewUnlockManager(props),
		Yorozuya:   NewYorozuyaQuestManager(props),
		SceneUnit:  NewSceneUnitManager(uid, tables),
		Dungeon:    NewDungeonManager(uid, props),
		HollowGrid: NewHollowGridManager(props, tables),
	}
}
