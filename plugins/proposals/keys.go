package proposals

import (
	"encoding/binary"

	"github.com/club-chain/node/common/types"
)

var (
	NextProposalIDKey  = []byte{0x01}
	ProposalKeyPrefix  = []byte{0x02}
	ClubIndexKeyPrefix = []byte{0x03}
)

func GetProposalKey(id types.ProposalID) []byte {
	key := make([]byte, 1+8)
	copy(key[:1], ProposalKeyPrefix)
	binary.BigEndian.PutUint64(key[1:], uint64(id))
	return key
}

func GetClubIndexKey(club types.ClubID) []byte {
	key := make([]byte, 1+4)
	copy(key[:1], ClubIndexKeyPrefix)
	binary.BigEndian.PutUint32(key[1:], club)
	return key
}
