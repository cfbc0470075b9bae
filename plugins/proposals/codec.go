package proposals

import (
	"github.com/club-chain/node/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(MsgSubmitProposal{}, "proposals/MsgSubmitProposal", nil)
	cdc.RegisterConcrete(MsgVote{}, "proposals/MsgVote", nil)
	cdc.RegisterConcrete(MsgExecuteProposal{}, "proposals/MsgExecuteProposal", nil)
	cdc.RegisterConcrete(MsgCancelProposal{}, "proposals/MsgCancelProposal", nil)
}
