package manager

import (
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct/property"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 默认配给的武器模板。
const defaultWeaponID = 10012

// ItemManager 背包操作：货币、角色、武器的发放与装配。
type ItemManager struct {
	uid   *UidAllocator
	props *model.PropertyManager
}

func NewItemManager(uid *UidAllocator, props *model.PropertyManager) *ItemManager {
	return &ItemManager{uid: uid, props: props}
}

// AddResource 增加货币数量，同一 id 的堆叠复用已有条目。
func (m *ItemManager) AddResource(currencyID, amount int32) model.OpResult[int32] {
	var res model.OpResult[int32]

	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		var found *protocol.ItemResource
		var foundUid uint64
		p.Items.Range(func(uid uint64, item protocol.ItemInfo) bool {
			if r, ok := item.(*protocol.ItemResource); ok && r.ID == currencyID {
				found, foundUid = r, uid
				return false
			}
			return true
		})

		if found != nil {
			found.Count += amount
			res = model.WithChanges(found.Count, &protocol.PlayerInfo{
				Items: property.MapModify(
					[]property.Pair[uint64, protocol.ItemInfo]{{Key: foundUid, Value: found}}, nil),
			})
			return
		}

		item := protocol.NewItemResource()
		item.ItemInfoBase = protocol.ItemInfoBase{
			Uid:          m.uid.Next(),
			ID:           currencyID,
			Count:        amount,
			Package:      3,
			FirstGetTime: nowMs(),
		}
		p.Items.Insert(item.Uid, item)

		res = model.WithChanges(amount, &protocol.PlayerInfo{
			Items: property.MapModify(
				[]property.Pair[uint64, protocol.ItemInfo]{{Key: item.Uid, Value: item}}, nil),
		})
	})

	return res
}

// UnlockAvatar 解锁角色，同时配发并装备默认武器。
func (m *ItemManager) UnlockAvatar(id int32) model.OpResult[uint64] {
	avatar := &protocol.ItemAvatar{
		ItemInfoBase: protocol.ItemInfoBase{
			Uid:          m.uid.Next(),
			ID:           id,
			Count:        1,
			Package:      3,
			FirstGetTime: nowMs(),
		},
		Star:  1,
		Level: 1,
		Rank:  1,
		Skills: property.MapOf(
			property.Pair[uint8, uint8]{Key: 2, Value: 1},
			property.Pair[uint8, uint8]{Key: 1, Value: 1},
			property.Pair[uint8, uint8]{Key: 0, Value: 1},
			property.Pair[uint8, uint8]{Key: 3, Value: 1},
			property.Pair[uint8, uint8]{Key: 4, Value: 1},
		),
		IsCustomByDungeon: true,
	}

	weaponUid := m.UnlockWeapon(defaultWeaponID).Value
	m.EquipWeapon(weaponUid, avatar.Uid)

	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.Items.Insert(avatar.Uid, avatar)
		weapon, _ := p.Items.Get(weaponUid)

		res = model.WithChanges(avatar.Uid, &protocol.PlayerInfo{
			Items: property.MapModify([]property.Pair[uint64, protocol.ItemInfo]{
				{Key: avatar.Uid, Value: avatar},
				{Key: weaponUid, Value: weapon},
			}, nil),
		})
	})
	return res
}

// UnlockWeapon 发放一把武器。
func (m *ItemManager) UnlockWeapon(id int32) model.OpResult[uint64] {
	weapon := &protocol.ItemWeapon{
		ItemInfoBase: protocol.ItemInfoBase{
			Uid:          m.uid.Next(),
			ID:           id,
			Count:        1,
			Package:      3,
			FirstGetTime: nowMs(),
		},
		Level:       1,
		RefineLevel: 1,
	}

	var res model.OpResult[uint64]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		p.Items.Insert(weapon.Uid, weapon)
		res = model.WithChanges(weapon.Uid, &protocol.PlayerInfo{
			Items: property.MapModify(
				[]property.Pair[uint64, protocol.ItemInfo]{{Key: weapon.Uid, Value: weapon}}, nil),
		})
	})
	return res
}

// EquipWeapon 把武器绑到角色上。武器不存在时返回 false。
func (m *ItemManager) EquipWeapon(weaponUid, avatarUid uint64) model.OpResult[bool] {
	var res model.OpResult[bool]
	m.props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		item, ok := p.Items.Get(weaponUid)
		if !ok {
			res = model.OpResult[bool]{Value: false}
			return
		}
		weapon, ok := item.(*protocol.ItemWeapon)
		if !ok {
			res = model.OpResult[bool]{Value: false}
			return
		}
		weapon.AvatarUid = avatarUid

		res = model.WithChanges(true, &protocol.PlayerInfo{
			Items: property.MapModify(
				[]property.Pair[uint64, protocol.ItemInfo]{{Key: weaponUid, Value: weapon}}, nil),
		})
	})
	return res
}
