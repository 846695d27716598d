package manager

import (
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// UnlockManager 功能解锁列表。
type UnlockManager struct {
	props *model.PropertyManager
}

func NewUnlockManager(props *model.PropertyManager) *UnlockManager {
	return &UnlockManager{props: props}
}

func (m *UnlockManager) Unlock(unlockID int32) model.OpResult[protocol.PtcUnlockArg] {
	var res model.OpResult[protocol.PtcUnlockArg]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.UnlockInfo.UnlockedList.Insert(unlockID)

		res = model.WithChanges(protocol.PtcUnlockArg{UnlockID: unlockID}, &protocol.PlayerInfo{
			UnlockInfo: &protocol.UnlockInfo{
				UnlockedList: property.SetModify([]int32{unlockID}, nil),
			},
		})
	})
	return res
}
