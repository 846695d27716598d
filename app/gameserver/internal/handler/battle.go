package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcBattleReportID, onRpcBattleReport)
}

// 客户端分批上报战斗日志，应答告知下一批的起始序号。
func onRpcBattleReport(_ Session, arg *protocol.RpcBattleReportArg) (oct.Data, error) {
	var needIndex int32
	if n := len(arg.BattleReports); n > 0 {
		needIndex = arg.BattleReports[n-1].Index + 1
	}
	return &protocol.RpcBattleReportRet{NeedIndex: needIndex}, nil
}
