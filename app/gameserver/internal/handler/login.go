package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcLoginID, onRpcLogin)
	register(protocol.PtcGetServerTimestampID, onPtcGetServerTimestamp)
	register(protocol.RpcKeepAliveID, onRpcKeepAlive)
}

// 账号校验交给 sdk 侧，这里无条件放行并回发账号属性。
func onRpcLogin(s Session, arg *protocol.RpcLoginArg) (oct.Data, error) {
	ctx := s.Context()
	ctx.Log.Info("received rpc login arg", "account_name", arg.AccountName)

	blob, err := ctx.Props.SerializeAccountInfo()
	if err != nil {
		return nil, err
	}
	return &protocol.RpcLoginRet{AccountInfo: blob}, nil
}

func onPtcGetServerTimestamp(_ Session, _ *protocol.PtcGetServerTimestampArg) (oct.Data, error) {
	return &protocol.PtcGetServerTimestampRet{Timestamp: nowMs()}, nil
}

func onRpcKeepAlive(_ Session, _ *protocol.RpcKeepAliveArg) (oct.Data, error) {
	return &protocol.RpcKeepAliveRet{}, nil
}
