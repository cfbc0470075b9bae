package clubs

import (
	"encoding/binary"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

var (
	RegistryAdminKey = []byte{0x01}
	NextClubIDKey    = []byte{0x02}
	ClubKeyPrefix    = []byte{0x03}
	MemberKeyPrefix  = []byte{0x04}
)

func GetClubKey(club types.ClubID) []byte {
	key := make([]byte, 1+4)
	copy(key[:1], ClubKeyPrefix)
	binary.BigEndian.PutUint32(key[1:], club)
	return key
}

func GetMemberKey(addr sdk.AccAddress) []byte {
	return append(MemberKeyPrefix, addr.Bytes()...)
}
