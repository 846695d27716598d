package handler

import (
	"fmt"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcPerformTriggerID, onRpcPerformTrigger)
	register(protocol.RpcPerformEndID, onRpcPerformEnd)
	register(protocol.RpcPerformJumpID, onRpcPerformJump)
	register(protocol.RpcFinishACTPerformShowID, onRpcFinishACTPerformShow)
}

func onRpcPerformTrigger(_ Session, arg *protocol.RpcPerformTriggerArg) (oct.Data, error) {
	return &protocol.RpcPerformTriggerRet{
		PerformUid: fmt.Sprintf("%d-%d", arg.PerformID, arg.PerformType),
	}, nil
}

func onRpcPerformEnd(_ Session, _ *protocol.RpcPerformEndArg) (oct.Data, error) {
	return &protocol.RpcPerformEndRet{}, nil
}

func onRpcPerformJump(_ Session, _ *protocol.RpcPerformJumpArg) (oct.Data, error) {
	return &protocol.RpcPerformJumpRet{}, nil
}

func onRpcFinishACTPerformShow(_ Session, _ *protocol.RpcFinishACTPerformShowArg) (oct.Data, error) {
	return &protocol.RpcFinishACTPerformShowRet{}, nil
}
