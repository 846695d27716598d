package handler

import (
	"fmt"

	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

// 新手流程步骤号。步骤 6 结束教学、进入主城。
const (
	startProcedureID = 1
	tutorialEndStep  = 6
)

func init() {
	register(protocol.RpcAdvanceBeginnerProcedureID, onRpcAdvanceBeginnerProcedure)
	register(protocol.RpcBeginnerbattleBeginID, onRpcBeginnerbattleBegin)
	register(protocol.RpcBeginnerbattleEndID, onRpcBeginnerbattleEnd)
}

func onRpcAdvanceBeginnerProcedure(s Session, arg *protocol.RpcAdvanceBeginnerProcedureArg) (oct.Data, error) {
	s.Context().Log.Info("advance beginner procedure", "procedure_id", arg.ProcedureID)

	nextProcedureID := startProcedureID
	if arg.ProcedureID != 0 {
		nextProcedureID = int(arg.ProcedureID) + 1
	}

	if arg.ProcedureID == tutorialEndStep {
		if err := enterMainCity(s); err != nil {
			return nil, err
		}
	}

	return &protocol.RpcAdvanceBeginnerProcedureRet{NextProcedureID: int32(nextProcedureID)}, nil
}

func onRpcBeginnerbattleBegin(_ Session, arg *protocol.RpcBeginnerbattleBeginArg) (oct.Data, error) {
	return &protocol.RpcBeginnerbattleBeginRet{
		BattleUid: fmt.Sprintf("%d-%d", arg.BattleID, nowSec()),
	}, nil
}

func onRpcBeginnerbattleEnd(s Session, arg *protocol.RpcBeginnerbattleEndArg) (oct.Data, error) {
	s.Context().Log.Info("beginner battle finished", "battle_uid", arg.BattleUid)
	return &protocol.RpcBeginnerbattleEndRet{}, nil
}
