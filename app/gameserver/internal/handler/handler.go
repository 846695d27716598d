// 客户端协议处理。每个协议号注册一个处理函数，Dispatch 负责解码入参、
// 调用处理并把应答交还给会话层回发。
package handler

import (
	"time"

	"github.com/cockroachdb/errors"

	"github.com/lk2023060901/hollowzero/app/gameserver/internal/manager"
	"github.com/lk2023060901/hollowzero/app/gameserver/internal/model"
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// Session 处理函数眼里的连接：游戏上下文与主动下发通道。
type Session interface {
	Context() *manager.GameContext
	SendRpcArg(protocolID uint16, arg oct.Data) error
}

type handlerFunc func(s Session, payload []byte) (oct.Data, error)

var handlers = map[uint16]handlerFunc{}

// register 把处理函数包一层入参解码后挂到协议号上。
func register[A any, PA interface {
	*A
	oct.Data
}](protocolID uint16, fn func(Session, PA) (oct.Data, error)) {
	handlers[protocolID] = func(s Session, payload []byte) (oct.Data, error) {
		arg := PA(new(A))
		if err := arg.Unmarshal(oct.NewReader(payload), 0); err != nil {
			return nil, errors.Wrapf(err, "unmarshal arg for protocol %d", protocolID)
		}
		return fn(s, arg)
	}
}

// Dispatch 解码并执行一条客户端请求，返回需要回发的应答。
// 未注册的协议号不视为错误，记一条告警后丢弃。
func Dispatch(s Session, protocolID uint16, payload []byte) (oct.Data, error) {
	h, ok := handlers[protocolID]
	if !ok {
		s.Context().Log.Warn("message wasn't handled", "protocol_id", protocolID)
		return nil, nil
	}
	return h(s, payload)
}

// sendChanges 把操作结果携带的属性增量下发给客户端，返回操作值本身。
func sendChanges[T any](s Session, res model.OpResult[T]) (T, error) {
	if res.Changes == nil {
		return res.Value, nil
	}
	arg := &protocol.PtcPlayerInfoChangedArg{
		PlayerUid:  s.Context().Props.PlayerUid(),
		PlayerInfo: *res.Changes,
	}
	if err := s.SendRpcArg(protocol.PtcPlayerInfoChangedID, arg); err != nil {
		return res.Value, err
	}
	return res.Value, nil
}

func nowMs() uint64 {
	return uint64(time.Now().UnixMilli())
}

func nowSec() int64 {
	return time.Now().Unix()
}
