package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcCloseLevelChgTipsID, onRpcCloseLevelChgTips)
	register(protocol.RpcDelNewMapID, onRpcDelNewMap)
}

func onRpcCloseLevelChgTips(_ Session, _ *protocol.RpcCloseLevelChgTipsArg) (oct.Data, error) {
	return &protocol.RpcCloseLevelChgTipsRet{}, nil
}

func onRpcDelNewMap(_ Session, _ *protocol.RpcDelNewMapArg) (oct.Data, error) {
	return &protocol.RpcDelNewMapRet{}, nil
}
