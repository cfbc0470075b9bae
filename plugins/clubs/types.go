package clubs

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

const (
	MaxClubNameLen     = 64
	MaxOfficersPerClub = 32
	MaxClubsPerMember  = 8
)

// ClubInfo is the stored record of a club. The admin may appoint officers;
// both may attest new members.
type ClubInfo struct {
	ID           types.ClubID     `json:"id"`
	Name         string           `json:"name"`
	Admin        sdk.AccAddress   `json:"admin"`
	Officers     []sdk.AccAddress `json:"officers"`
	MembersCount uint32           `json:"members_count"`
}

func (c *ClubInfo) IsOfficer(addr sdk.AccAddress) bool {
	for _, officer := range c.Officers {
		if officer.Equals(addr) {
			return true
		}
	}
	return false
}

// MemberInfo records which clubs an account belongs to. An account with a
// record holding at least one club is a registered member.
type MemberInfo struct {
	Clubs []types.ClubID `json:"clubs"`
}

func (m *MemberInfo) InClub(club types.ClubID) bool {
	for _, c := range m.Clubs {
		if c == club {
			return true
		}
	}
	return false
}
