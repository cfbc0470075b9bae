package clubs

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

const (
	ClubRoute = "clubs"

	CreateClubType    = "createClub"
	AddOfficerType    = "addOfficer"
	RemoveOfficerType = "removeOfficer"
	AddMemberType     = "addMember"
	RemoveMemberType  = "removeMember"
)

var _ sdk.Msg = MsgCreateClub{}

// MsgCreateClub creates a new club. Restricted to the registry admin.
type MsgCreateClub struct {
	From  sdk.AccAddress `json:"from"`
	Name  string         `json:"name"`
	Admin sdk.AccAddress `json:"admin"`
}

func NewMsgCreateClub(from sdk.AccAddress, name string, admin sdk.AccAddress) MsgCreateClub {
	return MsgCreateClub{From: from, Name: name, Admin: admin}
}

func (msg MsgCreateClub) Route() string { return ClubRoute }
func (msg MsgCreateClub) Type() string  { return CreateClubType }
func (msg MsgCreateClub) String() string {
	return fmt.Sprintf("createClub{%v#%s#%v}", msg.From, msg.Name, msg.Admin)
}
func (msg MsgCreateClub) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.Admin)
}
func (msg MsgCreateClub) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

func (msg MsgCreateClub) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if len(msg.Admin) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Admin)))
	}
	if len(msg.Name) == 0 || len(msg.Name) > MaxClubNameLen {
		return ErrInvalidClubName(fmt.Sprintf("Club name shouldn't be empty and its length shouldn't exceed %d", MaxClubNameLen))
	}
	return nil
}

func (msg MsgCreateClub) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgAddOfficer{}

// MsgAddOfficer appoints an officer. Restricted to the club admin.
type MsgAddOfficer struct {
	From    sdk.AccAddress `json:"from"`
	ClubID  types.ClubID   `json:"club_id"`
	Officer sdk.AccAddress `json:"officer"`
}

func NewMsgAddOfficer(from sdk.AccAddress, club types.ClubID, officer sdk.AccAddress) MsgAddOfficer {
	return MsgAddOfficer{From: from, ClubID: club, Officer: officer}
}

func (msg MsgAddOfficer) Route() string { return ClubRoute }
func (msg MsgAddOfficer) Type() string  { return AddOfficerType }
func (msg MsgAddOfficer) String() string {
	return fmt.Sprintf("addOfficer{%v#%d#%v}", msg.From, msg.ClubID, msg.Officer)
}
func (msg MsgAddOfficer) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.Officer)
}
func (msg MsgAddOfficer) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

func (msg MsgAddOfficer) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if len(msg.Officer) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Officer)))
	}
	return nil
}

func (msg MsgAddOfficer) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgRemoveOfficer{}

// MsgRemoveOfficer removes an officer. Restricted to the club admin.
type MsgRemoveOfficer struct {
	From    sdk.AccAddress `json:"from"`
	ClubID  types.ClubID   `json:"club_id"`
	Officer sdk.AccAddress `json:"officer"`
}

func NewMsgRemoveOfficer(from sdk.AccAddress, club types.ClubID, officer sdk.AccAddress) MsgRemoveOfficer {
	return MsgRemoveOfficer{From: from, ClubID: club, Officer: officer}
}

func (msg MsgRemoveOfficer) Route() string { return ClubRoute }
func (msg MsgRemoveOfficer) Type() string  { return RemoveOfficerType }
func (msg MsgRemoveOfficer) String() string {
	return fmt.Sprintf("removeOfficer{%v#%d#%v}", msg.From, msg.ClubID, msg.Officer)
}
func (msg MsgRemoveOfficer) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.Officer)
}
func (msg MsgRemoveOfficer) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

func (msg MsgRemoveOfficer) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if len(msg.Officer) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Officer)))
	}
	return nil
}

func (msg MsgRemoveOfficer) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgAddMember{}

// MsgAddMember registers an account as a member of a club. Restricted to
// the club admin or an officer of the club.
type MsgAddMember struct {
	From   sdk.AccAddress `json:"from"`
	ClubID types.ClubID   `json:"club_id"`
	Member sdk.AccAddress `json:"member"`
}

func NewMsgAddMember(from sdk.AccAddress, club types.ClubID, member sdk.AccAddress) MsgAddMember {
	return MsgAddMember{From: from, ClubID: club, Member: member}
}

func (msg MsgAddMember) Route() string { return ClubRoute }
func (msg MsgAddMember) Type() string  { return AddMemberType }
func (msg MsgAddMember) String() string {
	return fmt.Sprintf("addMember{%v#%d#%v}", msg.From, msg.ClubID, msg.Member)
}
func (msg MsgAddMember) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.Member)
}
func (msg MsgAddMember) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

func (msg MsgAddMember) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if len(msg.Member) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Member)))
	}
	return nil
}

func (msg MsgAddMember) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgRemoveMember{}

// MsgRemoveMember removes an account from a club. Restricted to the club
// admin or an officer of the club.
type MsgRemoveMember struct {
	From   sdk.AccAddress `json:"from"`
	ClubID types.ClubID   `json:"club_id"`
	Member sdk.AccAddress `json:"member"`
}

func NewMsgRemoveMember(from sdk.AccAddress, club types.ClubID, member sdk.AccAddress) MsgRemoveMember {
	return MsgRemoveMember{From: from, ClubID: club, Member: member}
}

func (msg MsgRemoveMember) Route() string { return ClubRoute }
func (msg MsgRemoveMember) Type() string  { return RemoveMemberType }
func (msg MsgRemoveMember) String() string {
	return fmt.Sprintf("removeMember{%v#%d#%v}", msg.From, msg.ClubID, msg.Member)
}
func (msg MsgRemoveMember) GetInvolvedAddresses() []sdk.AccAddress {
	return append(msg.GetSigners(), msg.Member)
}
func (msg MsgRemoveMember) GetSigners() []sdk.AccAddress { return []sdk.AccAddress{msg.From} }

func (msg MsgRemoveMember) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if len(msg.Member) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Member)))
	}
	return nil
}

func (msg MsgRemoveMember) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}
