package manager

import (
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// QuestManager 任务集合维护。世界任务共用一个惰性创建的集合 uid。
type QuestManager struct {
	uid   *UidAllocator
	props *model.PropertyManager
}

func NewQuestManager(uid *UidAllocator, props *model.PropertyManager) *QuestManager {
	return &QuestManager{uid: uid, props: props}
}

// AddWorldQuest 把任务挂进世界任务集合，集合不存在时先分配。
func (m *QuestManager) AddWorldQuest(quest protocol.QuestInfo) model.OpResult[uint64] {
	var collectionUid uint64
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		collectionUid = *p.QuestData.WorldQuestCollectionUid
		if collectionUid == 0 {
			collectionUid = m.uid.Next()
			p.QuestData.WorldQuestCollectionUid = protocol.Ptr(collectionUid)
		}
	})

	return m.AddQuestToCollection(collectionUid, quest)
}

// AddQuestToCollection 把任务加入指定集合并产生增量。
func (m *QuestManager) AddQuestToCollection(collectionUid uint64, quest protocol.QuestInfo) model.OpResult[uint64] {
	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		base := quest.QuestBase()
		base.CollectionUid = collectionUid

		p.QuestData.Quests.Insert(collectionUid, base.ID, quest)

		res = model.WithChanges(collectionUid, &protocol.PlayerInfo{
			QuestData: &protocol.QuestData{
				Quests: property.DKMapModify(
					[]property.Triple[uint64, int32, protocol.QuestInfo]{
						{Key: collectionUid, SubKey: base.ID, Value: quest},
					}, nil),
			},
		})
	})
	return res
}
