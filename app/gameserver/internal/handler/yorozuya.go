package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcCheckYorozuyaInfoRefreshID, onRpcCheckYorozuyaInfoRefresh)
}

func onRpcCheckYorozuyaInfoRefresh(_ Session, _ *protocol.RpcCheckYorozuyaInfoRefreshArg) (oct.Data, error) {
	return &protocol.RpcCheckYorozuyaInfoRefreshRet{}, nil
}
