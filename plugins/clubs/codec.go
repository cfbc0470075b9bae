package clubs

import (
	"github.com/club-chain/node/wire"
)

// Register concrete types on wire codec
func RegisterWire(cdc *wire.Codec) {
	cdc.RegisterConcrete(MsgCreateClub{}, "clubs/MsgCreateClub", nil)
	cdc.RegisterConcrete(MsgAddOfficer{}, "clubs/MsgAddOfficer", nil)
	cdc.RegisterConcrete(MsgRemoveOfficer{}, "clubs/MsgRemoveOfficer", nil)
	cdc.RegisterConcrete(MsgAddMember{}, "clubs/MsgAddMember", nil)
	cdc.RegisterConcrete(MsgRemoveMember{}, "clubs/MsgRemoveMember", nil)
}
