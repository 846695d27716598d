package manager

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/data"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// SceneUnitManager 场景单位（NPC、交互物）注册表。
type SceneUnitManager struct {
	uid    *UidAllocator
	tables *data.Tables

	mu    sync.RWMutex
	units map[uint64]protocol.SceneUnitProtocolInfo
}

func NewSceneUnitManager(uid *UidAllocator, tables *data.Tables) *SceneUnitManager {
	return &SceneUnitManager{
		uid:    uid,
		tables: tables,
		units:  make(map[uint64]protocol.SceneUnitProtocolInfo),
	}
}

func (m *SceneUnitManager) CreateNpc(id, tag, questID int32, interacts *property.Map[int32, protocol.InteractInfo]) uint64 {
	uid := m.uid.Next()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.units[uid] = &protocol.NpcProtocolInfo{
		SceneUnitProtocolInfoBase: protocol.SceneUnitProtocolInfoBase{Uid: uid, Tag: tag},
		ID:                        id,
		QuestID:                   questID,
		InteractsInfo:             interacts,
	}
	return uid
}

func (m *SceneUnitManager) Get(uid uint64) (protocol.SceneUnitProtocolInfo, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.units[uid]
	return u, ok
}

// Sync 全量下发当前分区的场景单位。
func (m *SceneUnitManager) Sync(sceneUid uint64, sectionID int32) *protocol.PtcSyncSceneUnitArg {
	m.mu.RLock()
	defer m.mu.RUnlock()

	units := make([]protocol.SceneUnitProtocolInfo, 0, len(m.units))
	for _, u := range m.units {
		units = append(units, u)
	}

	return &protocol.PtcSyncSceneUnitArg{
		SceneUid:          sceneUid,
		SectionID:         sectionID,
		IsPartial:         false,
		RemovedSceneUnits: []uint64{},
		SceneUnits:        units,
	}
}

// AddDefaultUnits 按主城配置表铺设分区内的默认交互 NPC。
func (m *SceneUnitManager) AddDefaultUnits(sectionID int32) error {
	for i := range m.tables.MainCityObjects {
		o := &m.tables.MainCityObjects[i]
		if o.CreateType != 0 ||
			len(o.DefaultInteractIDs) == 0 ||
			data.IsTestPosition(o.CreatePosition) ||
			!m.tables.IsTransformInSection(o.CreatePosition, sectionID) {
			continue
		}

		if len(o.InteractScale) != 5 {
			return errors.Newf("main city object %d/%d: interact scale needs 5 values, got %d",
				o.TagID, o.NPCID, len(o.InteractScale))
		}

		interacts := property.NewMap[int32, protocol.InteractInfo]()
		for _, id := range o.DefaultInteractIDs {
			interacts.Insert(id, protocol.InteractInfo{
				InteractID:    id,
				InteractShape: uint16(o.InteractShape),
				ScaleX:        o.InteractScale[0],
				ScaleY:        o.InteractScale[1],
				ScaleZ:        o.InteractScale[2],
				ScaleW:        o.InteractScale[3],
				ScaleR:        o.InteractScale[4],
				Name:          o.InteractName,
				Participators: property.NewMap[int32, string](),
			})
		}

		m.CreateNpc(o.NPCID, o.TagID, 0, interacts)
	}
	return nil
}
