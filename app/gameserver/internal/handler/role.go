package handler

import (
	"github.com/lk2023060901/hollowzero/pkg/oct"
	"github.com/lk2023060901/hollowzero/pkg/protocol"
)

func init() {
	register(protocol.RpcModNickNameID, onRpcModNickName)
}

func onRpcModNickName(s Session, arg *protocol.RpcModNickNameArg) (oct.Data, error) {
	ctx := s.Context()
	ctx.Log.Info("creating character", "nick_name", arg.NickName)

	var playerUid uint64
	ctx.Props.UpdatePlayer(func(p *protocol.PlayerInfo) {
		playerUid = *p.Uid
		p.NickName = protocol.Ptr(arg.NickName)
		p.AvatarID = protocol.Ptr(arg.AvatarID)
	})

	if err := s.SendRpcArg(protocol.PtcPlayerInfoChangedID, &protocol.PtcPlayerInfoChangedArg{
		PlayerUid: playerUid,
		PlayerInfo: protocol.PlayerInfo{
			NickName: protocol.Ptr(arg.NickName),
			AvatarID: protocol.Ptr(arg.AvatarID),
		},
	}); err != nil {
		return nil, err
	}
	return &protocol.RpcModNickNameRet{}, nil
}
