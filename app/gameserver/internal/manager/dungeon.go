package manager

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 空洞战斗的固定随机种子与事件图版本。
const (
	hollowEventVersion = 526
	fightRandomSeed    = 2281337
	cameraUnset        = 0xFFFFFFFF
)

// HollowCreation 新空洞副本的两个落点。
type HollowCreation struct {
	DungeonUid uint64
	SceneUid   uint64
}

// DungeonManager 副本与场景的生命周期：大厅、新手场、空洞棋盘与战斗场。
type DungeonManager struct {
	uid   *UidAllocator
	props *model.PropertyManager

	mu              sync.Mutex
	sceneProperties *property.DKMap[uint64, uint16, int32]
}

func NewDungeonManager(uid *UidAllocator, props *model.PropertyManager) *DungeonManager {
	return &DungeonManager{
		uid:             uid,
		props:           props,
		sceneProperties: property.NewDKMap[uint64, uint16, int32](),
	}
}

// EnterMainCity 回到默认大厅场景，出生点取玩家主城驻留位置。
func (m *DungeonManager) EnterMainCity() (model.OpResult[*protocol.PtcEnterSceneArg], error) {
	var res model.OpResult[*protocol.PtcEnterSceneArg]
	var retErr error

	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		playerUid := *p.Uid
		position := *p.PosInMainCity.Position
		rotation := *p.PosInMainCity.Rotation

		defaultSceneUid := *p.DungeonCollection.DefaultSceneUid
		p.SceneUid = protocol.Ptr(defaultSceneUid)

		scene, ok := p.DungeonCollection.Scenes.Get(defaultSceneUid)
		if !ok {
			retErr = errors.Newf("scene with uid %d doesn't exist", defaultSceneUid)
			return
		}
		hall, ok := scene.(*protocol.SceneInfoHall)
		if !ok {
			retErr = errors.New("unexpected main city scene type")
			return
		}

		dungeon, ok := p.DungeonCollection.Dungeons.Get(hall.DungeonUid)
		if !ok {
			retErr = errors.Newf("dungeon with uid %d doesn't exist", hall.DungeonUid)
			return
		}

		hall.EnteredTimes++
		dungeon.EnteredTimes++
		p.DungeonCollection.Dungeons.Insert(dungeon.Uid, dungeon)

		res = model.WithChanges(&protocol.PtcEnterSceneArg{
			PlayerUid: playerUid,
			SceneUid:  defaultSceneUid,
			SectionID: hall.SectionID,
			OpenUI:    protocol.UITypeDefault,
			Transform: protocol.Transform{Position: position, Rotation: rotation},
			Timestamp: nowMs(),
			CameraY:   6000,

			ConditionConfigIDs: []int32{},
			EnteredTimes:       hall.EnteredTimes,
			Ext:                &protocol.SceneTableExtHall{SceneTableExtBase: emptyTableExtBase()},
		}, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Dungeons: property.MapModify(
					[]property.Pair[uint64, protocol.DungeonInfo]{{Key: dungeon.Uid, Value: dungeon}}, nil),
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: hall.Uid, Value: hall}}, nil),
			},
			SceneUid: protocol.Ptr(hall.Uid),
		})
	})

	return res, retErr
}

// EnterSceneSection 切换场景内分区。
func (m *DungeonManager) EnterSceneSection(sceneUid uint64, sectionID int32) model.OpResult[*protocol.PtcEnterSectionArg] {
	var res model.OpResult[*protocol.PtcEnterSectionArg]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		scene, _ := p.DungeonCollection.Scenes.Get(sceneUid)
		scene.SceneBase().SectionID = sectionID

		res = model.WithChanges(&protocol.PtcEnterSectionArg{SectionID: sectionID}, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: scene}}, nil),
			},
		})
	})
	return res
}

// EnterScene 进入任意已创建的场景，维护进入次数与上一场景指针。
func (m *DungeonManager) EnterScene(sceneUid uint64) (model.OpResult[*protocol.PtcEnterSceneArg], error) {
	var res model.OpResult[*protocol.PtcEnterSceneArg]
	var retErr error

	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		playerUid := *p.Uid
		prevSceneUid := *p.SceneUid

		p.SceneUid = protocol.Ptr(sceneUid)
		p.PrevSceneUid = protocol.Ptr(prevSceneUid)

		scene, ok := p.DungeonCollection.Scenes.Get(sceneUid)
		if !ok {
			retErr = errors.Newf("scene with uid %d doesn't exist", sceneUid)
			return
		}
		base := scene.SceneBase()

		dungeon, ok := p.DungeonCollection.Dungeons.Get(base.DungeonUid)
		if !ok {
			retErr = errors.Newf("dungeon with uid %d doesn't exist", base.DungeonUid)
			return
		}

		base.EnteredTimes++
		dungeon.EnteredTimes++
		p.DungeonCollection.Dungeons.Insert(dungeon.Uid, dungeon)

		var ext protocol.SceneTableExt
		switch s := scene.(type) {
		case *protocol.SceneInfoHall:
			ext = &protocol.SceneTableExtHall{SceneTableExtBase: emptyTableExtBase()}
		case *protocol.SceneInfoFresh:
			ext = &protocol.SceneTableExtFresh{SceneTableExtBase: emptyTableExtBase()}
		case *protocol.SceneInfoFight:
			ext = &protocol.SceneTableExtFight{SceneTableExtBase: emptyTableExtBase()}
		case *protocol.SceneInfoHollow:
			section, _ := s.SectionsInfo.Get(1)
			section.EnteredTimes++
			s.SectionsInfo.Insert(1, section)
			ext = &protocol.SceneTableExtHollow{SceneTableExtBase: emptyTableExtBase()}
		}

		res = model.WithChanges(&protocol.PtcEnterSceneArg{
			PlayerUid: playerUid,
			SceneUid:  sceneUid,
			SectionID: base.SectionID,
			OpenUI:    protocol.UITypeDefault,
			Timestamp: nowMs(),
			CameraY:   6000,

			ConditionConfigIDs: []int32{},
			EnteredTimes:       base.EnteredTimes,
			Ext:                ext,
		}, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Dungeons: property.MapModify(
					[]property.Pair[uint64, protocol.DungeonInfo]{{Key: dungeon.Uid, Value: dungeon}}, nil),
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: scene}}, nil),
			},
			SceneUid:     protocol.Ptr(sceneUid),
			PrevSceneUid: protocol.Ptr(prevSceneUid),
		})
	})

	return res, retErr
}

// HollowFinished 空洞通关：弹出结算页并收起菜单。
func (m *DungeonManager) HollowFinished() model.OpResult[uint64] {
	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		curSceneUid := *p.SceneUid
		scene, _ := p.DungeonCollection.Scenes.Get(curSceneUid)

		if hollow, ok := scene.(*protocol.SceneInfoHollow); ok {
			hollow.HollowSystemUIState.Insert(protocol.HollowSystemTypeHollowResultPage, protocol.HollowSystemUIStateNormal)
			hollow.HollowSystemUIState.Insert(protocol.HollowSystemTypeMenu, protocol.HollowSystemUIStateClose)
		}

		res = model.WithChanges(curSceneUid, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: curSceneUid, Value: scene}}, nil),
			},
		})
	})
	return res
}

func (m *DungeonManager) DefaultSceneUid() uint64 {
	var uid uint64
	m.props.Player(func(p *protocol.PlayerInfo) {
		uid = *p.DungeonCollection.DefaultSceneUid
	})
	return uid
}

func (m *DungeonManager) CurSceneUid() uint64 {
	var uid uint64
	m.props.Player(func(p *protocol.PlayerInfo) {
		uid = *p.SceneUid
	})
	return uid
}

// IsInTutorial 当前是否处于新手场。
func (m *DungeonManager) IsInTutorial() bool {
	var fresh bool
	m.props.Player(func(p *protocol.PlayerInfo) {
		scene, ok := p.DungeonCollection.Scenes.Get(*p.SceneUid)
		if !ok {
			return
		}
		_, fresh = scene.(*protocol.SceneInfoFresh)
	})
	return fresh
}

// LeaveBattle 战斗结束回到空洞棋盘。
func (m *DungeonManager) LeaveBattle() (model.OpResult[*protocol.PtcEnterSceneArg], error) {
	var backSceneUid uint64
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		fightScene, _ := p.DungeonCollection.Scenes.Get(*p.SceneUid)
		backSceneUid = fightScene.SceneBase().BackSceneUid

		if hollow, ok := mapGetHollow(p, backSceneUid); ok {
			hollow.BattleSceneUid = 0
		}
	})

	return m.EnterScene(backSceneUid)
}

// EnterBattle 从棋盘切入战斗场。
func (m *DungeonManager) EnterBattle(sceneUid uint64) (model.OpResult[*protocol.PtcEnterSceneArg], error) {
	hollowSceneUid := m.CurSceneUid()

	var hollowScene protocol.SceneInfo
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		if hollow, ok := mapGetHollow(p, hollowSceneUid); ok {
			hollow.BattleSceneUid = sceneUid
			hollow.OnBattleSuccess = "OnEnd"
			hollowScene = hollow
		}
	})

	enter, err := m.EnterScene(sceneUid)
	if err != nil {
		return model.OpResult[*protocol.PtcEnterSceneArg]{}, err
	}

	var res model.OpResult[*protocol.PtcEnterSceneArg]
	m.props.Player(func(p *protocol.PlayerInfo) {
		fightScene, _ := p.DungeonCollection.Scenes.Get(sceneUid)

		res = model.WithChanges(enter.Value, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Scenes: property.MapModify([]property.Pair[uint64, protocol.SceneInfo]{
					{Key: hollowSceneUid, Value: hollowScene},
					{Key: sceneUid, Value: fightScene},
				}, nil),
			},
			SceneUid:     protocol.Ptr(sceneUid),
			PrevSceneUid: protocol.Ptr(hollowSceneUid),
		})
	})
	return res, nil
}

// CreateFight 为当前空洞创建战斗场景。
func (m *DungeonManager) CreateFight(id int32, hollowSceneUid uint64) model.OpResult[uint64] {
	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		hollowScene, _ := p.DungeonCollection.Scenes.Get(hollowSceneUid)

		fightScene := &protocol.SceneInfoFight{
			SceneInfoBase: protocol.SceneInfoBase{
				Uid:          m.uid.Next(),
				ID:           id,
				DungeonUid:   hollowScene.SceneBase().DungeonUid,
				BackSceneUid: hollowSceneUid,
				EnteredTimes: 1,
				SectionID:    1,
				OpenUI:       protocol.UITypeDefault,
				CameraX:      cameraUnset,
				CameraY:      cameraUnset,
			},
			PerformShowProgress: property.NewMap[protocol.ACTPerformShowMoment, uint8](),
			RandomSeed:          fightRandomSeed,
		}

		p.DungeonCollection.Scenes.Insert(fightScene.Uid, fightScene)

		res = model.WithChanges(fightScene.Uid, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: fightScene.Uid, Value: fightScene}}, nil),
			},
		})
	})
	return res
}

// CreateHollow 建立空洞副本：棋盘场景、出战编成与默认场景属性。
func (m *DungeonManager) CreateHollow(id, worldQuestID int32, avatarUids []uint64) model.OpResult[HollowCreation] {
	backSceneUid := m.DefaultSceneUid()

	dungeon := m.createBaseDungeon(id, backSceneUid, worldQuestID)
	dungeon.HollowEventVersion = hollowEventVersion

	sceneUid := m.uid.Next()
	dungeon.DefaultSceneUid = sceneUid
	dungeon.ScenePropertiesUid = sceneUid

	m.addDefaultHollowProperties(sceneUid)

	for i, avatarUid := range avatarUids {
		dungeon.AvatarMap.Insert(int8(i), protocol.AvatarUnitInfo{
			Uid:                 avatarUid,
			PropertiesUid:       m.uid.Next(),
			ModifiedProperty:    property.NewDKMap[uint64, protocol.PropertyType, int32](),
			LayerPropertyChange: property.NewMap[int32, protocol.AvatarPropertyChgInHollow](),
		})
	}

	scene := &protocol.SceneInfoHollow{
		SceneInfoBase: protocol.SceneInfoBase{
			Uid:          sceneUid,
			ID:           id,
			DungeonUid:   dungeon.Uid,
			BackSceneUid: backSceneUid,
			EnteredTimes: 1,
			SectionID:    1,
			OpenUI:       protocol.UITypeDefault,
			CameraX:      cameraUnset,
			CameraY:      cameraUnset,
		},
		EventVariables:                property.NewMap[string, int32](),
		StressPunishAbilityRandomPool: []string{"Stress_Punish_RandomDebuff_Normal"},
		EventWeightFactor:             property.NewMap[int32, int32](),
		ShopModification: protocol.HollowShopModification{
			AbilityModifiedNum: property.NewDKMap[protocol.HollowShopType, string, int32](),
			ActionModifiedNum:  property.NewMap[protocol.HollowShopType, int32](),
			OverwritePrice:     property.NewMap[protocol.HollowShopType, int32](),
		},
		LastChallengeStat:  property.NewMap[int32, uint8](),
		CurChallenge:       property.NewSet[int32](),
		HollowSystemSwitch: property.NewMap[protocol.HollowSystemType, bool](),
		SectionsInfo: property.MapOf(property.Pair[int32, protocol.PlayerHollowSectionInfo]{
			Key: 1,
			Value: protocol.PlayerHollowSectionInfo{
				CurGridIndex:      22,
				PerformEventGraph: 3405096459205834,
			},
		}),
		ExecutingEvent:      true,
		EventID:             1000,
		HollowEventGraphUid: 22,
		SceneGlobalEvents:   property.NewMap[int32, uint64](),
		AbilitiesInfo: protocol.AbilitiesInfo{
			Abilities: property.NewMap[uint64, protocol.AbilityInfo](),
		},
		HollowSystemUIState: property.NewMap[protocol.HollowSystemType, protocol.HollowSystemUIState](),
	}

	var res model.OpResult[HollowCreation]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		m.mu.Lock()
		propTriples := make([]property.Triple[uint64, uint16, int32], 0, m.sceneProperties.Len())
		m.sceneProperties.Range(func(key uint64, subKey uint16, value int32) bool {
			propTriples = append(propTriples, property.Triple[uint64, uint16, int32]{
				Key: key, SubKey: subKey, Value: value,
			})
			return true
		})
		m.mu.Unlock()

		p.SceneProperties = property.DKMapOf(propTriples...)
		p.DungeonCollection.Dungeons.Insert(dungeon.Uid, dungeon)
		p.DungeonCollection.Scenes.Insert(sceneUid, scene)

		updatedItems := make([]property.Pair[uint64, protocol.ItemInfo], 0, len(avatarUids))
		for _, avatarUid := range avatarUids {
			item, ok := p.Items.Get(avatarUid)
			if !ok {
				continue
			}
			avatar, ok := item.(*protocol.ItemAvatar)
			if !ok {
				continue
			}
			avatar.RobotID = 101000101
			updatedItems = append(updatedItems, property.Pair[uint64, protocol.ItemInfo]{Key: avatarUid, Value: avatar})
		}

		res = model.WithChanges(HollowCreation{DungeonUid: dungeon.Uid, SceneUid: sceneUid}, &protocol.PlayerInfo{
			Items: property.MapModify(updatedItems, nil),
			DungeonCollection: &protocol.DungeonCollection{
				Dungeons: property.MapModify(
					[]property.Pair[uint64, protocol.DungeonInfo]{{Key: dungeon.Uid, Value: dungeon}}, nil),
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: scene}}, nil),
			},
			SceneProperties: property.DKMapModify(propTriples, nil),
		})
	})
	return res
}

// CreateHall 创建大厅副本并设为默认场景。
func (m *DungeonManager) CreateHall(id int32) model.OpResult[uint64] {
	dungeon := m.createBaseDungeon(id, 0, 0)

	sceneUid := m.uid.Next()
	hallScene := &protocol.SceneInfoHall{
		SceneInfoBase: protocol.SceneInfoBase{
			Uid:           sceneUid,
			ID:            id,
			DungeonUid:    dungeon.Uid,
			EnteredTimes:  1,
			SectionID:     1,
			OpenUI:        protocol.UITypeDefault,
			ToBeDestroyed: true,
			CameraX:       cameraUnset,
			CameraY:       cameraUnset,
		},
	}
	dungeon.DefaultSceneUid = sceneUid

	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.DungeonCollection.Dungeons.Insert(dungeon.Uid, dungeon)
		p.DungeonCollection.Scenes.Insert(sceneUid, hallScene)
		p.DungeonCollection.DefaultSceneUid = protocol.Ptr(sceneUid)

		res = model.WithChanges(sceneUid, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Dungeons: property.MapModify(
					[]property.Pair[uint64, protocol.DungeonInfo]{{Key: dungeon.Uid, Value: dungeon}}, nil),
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: hallScene}}, nil),
				DefaultSceneUid: protocol.Ptr(sceneUid),
			},
		})
	})
	return res
}

// CreateFresh 创建新手教学场景。
func (m *DungeonManager) CreateFresh() model.OpResult[uint64] {
	dungeon := m.createBaseDungeon(2, 0, 0)

	sceneUid := m.uid.Next()
	freshScene := &protocol.SceneInfoFresh{
		SceneInfoBase: protocol.SceneInfoBase{
			Uid:           sceneUid,
			ID:            2,
			DungeonUid:    dungeon.Uid,
			EnteredTimes:  1,
			SectionID:     1,
			OpenUI:        protocol.UITypeDefault,
			ToBeDestroyed: true,
			CameraX:       cameraUnset,
			CameraY:       cameraUnset,
		},
	}
	dungeon.DefaultSceneUid = sceneUid

	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.DungeonCollection.Dungeons.Insert(dungeon.Uid, dungeon)
		p.DungeonCollection.Scenes.Insert(sceneUid, freshScene)

		res = model.WithChanges(sceneUid, &protocol.PlayerInfo{
			DungeonCollection: &protocol.DungeonCollection{
				Dungeons: property.MapModify(
					[]property.Pair[uint64, protocol.DungeonInfo]{{Key: dungeon.Uid, Value: dungeon}}, nil),
				Scenes: property.MapModify(
					[]property.Pair[uint64, protocol.SceneInfo]{{Key: sceneUid, Value: freshScene}}, nil),
			},
		})
	})
	return res
}

func (m *DungeonManager) createBaseDungeon(id int32, backSceneUid uint64, worldQuestID int32) protocol.DungeonInfo {
	uid := m.uid.Next()
	return protocol.DungeonInfo{
		Uid:                uid,
		ID:                 id,
		StartTimestamp:     nowMs(),
		BackSceneUid:       backSceneUid,
		QuestCollectionUid: uid,
		Avatars:            property.NewMap[uint64, protocol.AvatarUnitInfo](),
		WorldQuestID:       worldQuestID,
		DropPollChgInfos:   property.NewMap[protocol.DungeonContentDropPoolType, protocol.DungeonDropPollInfo](),
		AvatarMap:          property.NewMap[int8, protocol.AvatarUnitInfo](),
		BattleReport:       []protocol.BattleReport{},
		DungeonGroupUid:    m.props.PlayerUid(),
	}
}

func (m *DungeonManager) addDefaultHollowProperties(sceneUid uint64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, kv := range [][2]int32{
		{1001, 0}, {1002, 100}, {1003, 0}, {1004, 0}, {1019, 10}, {1020, 1},
		{1005, 0}, {1006, 0}, {1007, 0}, {1008, 0}, {1009, 0}, {1010, 0},
		{1011, 0}, {1012, 0}, {1013, 1}, {1014, 1}, {1015, 0}, {1016, 0},
		{1017, 4}, {1018, 10000}, {1021, 1}, {1025, 1}, {1035, 10000},
		{1041, 10000}, {1042, 10000}, {1043, 1}, {1044, 1},
	} {
		m.sceneProperties.Insert(sceneUid, uint16(kv[0]), kv[1])
	}
}

func mapGetHollow(p *protocol.PlayerInfo, sceneUid uint64) (*protocol.SceneInfoHollow, bool) {
	scene, ok := p.DungeonCollection.Scenes.Get(sceneUid)
	if !ok {
		return nil, false
	}
	hollow, ok := scene.(*protocol.SceneInfoHollow)
	return hollow, ok
}

func emptyTableExtBase() protocol.SceneTableExtBase {
	return protocol.SceneTableExtBase{
		EventGraphsInfo: protocol.EventGraphsInfo{
			EventGraphsInfo: property.NewMap[int32, protocol.EventGraphInfo](),
		},
	}
}
