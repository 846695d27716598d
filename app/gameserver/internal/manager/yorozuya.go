package manager

import (
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// YorozuyaQuestManager 万事屋空洞委托登记。
type YorozuyaQuestManager struct {
	props *model.PropertyManager
}

func NewYorozuyaQuestManager(props *model.PropertyManager) *YorozuyaQuestManager {
	return &YorozuyaQuestManager{props: props}
}

// AddHollowQuest 把委托 id 挂到 (集合, 类型) 桶里，增量下发整个桶。
func (m *YorozuyaQuestManager) AddHollowQuest(collectionID int32, questType protocol.HollowQuestType, id int32) model.OpResult[int32] {
	var res model.OpResult[int32]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		hollowQuests := p.YorozuyaInfo.HollowQuests

		quests, ok := hollowQuests.Get(collectionID, questType)
		if ok {
			quests.Insert(id)
		} else {
			quests = property.SetOf(id)
			hollowQuests.Insert(collectionID, questType, quests)
		}

		updated := property.SetOf(quests.Values()...)
		res = model.WithChanges(collectionID, &protocol.PlayerInfo{
			YorozuyaInfo: &protocol.YorozuyaInfo{
				HollowQuests: property.DKMapModify(
					[]property.Triple[int32, protocol.HollowQuestType, *property.Set[int32]]{
						{Key: collectionID, SubKey: questType, Value: updated},
					}, nil),
			},
		})
	})
	return res
}
