package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcGetPlayerMailsID, onRpcGetPlayerMails)
}

func onRpcGetPlayerMails(_ Session, _ *protocol.RpcGetPlayerMailsArg) (oct.Data, error) {
	return &protocol.RpcGetPlayerMailsRet{}, nil
}
