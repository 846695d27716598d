package model

import (
	"sync"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// PropertyManager 持有会话内的账号与玩家根属性对象。
// 管理器之间共享同一份数据，读写经由锁保护。
type PropertyManager struct {
	mu      sync.RWMutex
	account *protocol.AccountInfo
	player  *protocol.PlayerInfo
}

// NewPropertyManager 以默认账号数据初始化。
func NewPropertyManager(accountID uint64) *PropertyManager {
	return &PropertyManager{
		account: DefaultAccount(accountID),
		player:  &protocol.PlayerInfo{},
	}
}

// ReplacePlayer 整体替换玩家数据（进入世界时）。
func (m *PropertyManager) ReplacePlayer(p *protocol.PlayerInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.player = p
}

// Account 在读锁内访问账号数据。
func (m *PropertyManager) Account(fn func(*protocol.AccountInfo)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.account)
}

// Player 在读锁内访问玩家数据。
func (m *PropertyManager) Player(fn func(*protocol.PlayerInfo)) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fn(m.player)
}

// UpdatePlayer 在写锁内修改玩家数据。
func (m *PropertyManager) UpdatePlayer(fn func(*protocol.PlayerInfo)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(m.player)
}

// PlayerUid 当前玩家 uid，未进入世界时为 0。
func (m *PropertyManager) PlayerUid() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.player.Uid == nil {
		return 0
	}
	return *m.player.Uid
}

// SerializeAccountInfo 账号属性序列化为下发字节流。
func (m *PropertyManager) SerializeAccountInfo() (protocol.PropertyBlob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return SerializeProperty(m.account)
}

// SerializePlayerInfo 玩家属性序列化为下发字节流。
func (m *PropertyManager) SerializePlayerInfo() (protocol.PropertyBlob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return SerializeProperty(m.player)
}

// SerializeProperty 属性对象编码为 PropertyBlob。
func SerializeProperty(d oct.Data) (protocol.PropertyBlob, error) {
	w := oct.NewWriter()
	if err := d.Marshal(w, 0); err != nil {
		return protocol.PropertyBlob{}, err
	}
	return protocol.PropertyBlob{Stream: w.Bytes()}, nil
}
