package proposals

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

const (
	// DefaultVotingPeriod is the number of blocks a proposal stays open,
	// counted inclusively from its start height.
	DefaultVotingPeriod = int64(10)

	// DefaultQuorum is the minimum number of total votes for a proposal to
	// be executable.
	DefaultQuorum = types.Votes(1)

	// DefaultPassThreshold is the yea share, in basis points, a proposal
	// must reach or exceed to pass.
	DefaultPassThreshold = uint32(5000)

	// MaxPassThreshold is the fixed-point scale: 10000 basis points = 100%.
	MaxPassThreshold = uint32(10000)

	MaxActionLen         = 2048
	MaxMetadataLen       = 256
	MaxVotersPerProposal = 1024
	MaxProposalsPerClub  = 1024
)

type ScopeKind uint8

const (
	ScopeGlobal ScopeKind = iota
	ScopeClub
)

// Scope identifies the audience of a proposal: the whole registry, or a
// single club.
type Scope struct {
	Kind ScopeKind    `json:"kind"`
	Club types.ClubID `json:"club,omitempty"`
}

func GlobalScope() Scope {
	return Scope{Kind: ScopeGlobal}
}

func ClubScope(club types.ClubID) Scope {
	return Scope{Kind: ScopeClub, Club: club}
}

// Proposal is the stored record of a governance proposal. Action carries
// the encoded message to dispatch on execution; it is kept opaque until
// execution time.
type Proposal struct {
	ID            types.ProposalID `json:"id"`
	Proposer      sdk.AccAddress   `json:"proposer"`
	Scope         Scope            `json:"scope"`
	Action        []byte           `json:"action"`
	Metadata      []byte           `json:"metadata"`
	StartHeight   int64            `json:"start_height"`
	EndHeight     int64            `json:"end_height"`
	Yea           types.Votes      `json:"yea"`
	Nay           types.Votes      `json:"nay"`
	Executed      bool             `json:"executed"`
	Voters        []sdk.AccAddress `json:"voters"`
	Quorum        types.Votes      `json:"quorum"`
	PassThreshold uint32           `json:"pass_threshold"`
}

func (p *Proposal) HasVoted(addr sdk.AccAddress) bool {
	for _, voter := range p.Voters {
		if voter.Equals(addr) {
			return true
		}
	}
	return false
}

func (p *Proposal) TotalVotes() types.Votes {
	return p.Yea + p.Nay
}

// PassPercent returns the yea share in basis points, rounded down.
// Callers must ensure at least one vote was cast.
func (p *Proposal) PassPercent() uint32 {
	return uint32(uint64(p.Yea) * uint64(MaxPassThreshold) / uint64(p.TotalVotes()))
}

// VotingOpenAt reports whether the proposal accepts votes at the given
// height. Both window bounds are inclusive.
func (p *Proposal) VotingOpenAt(height int64) bool {
	return height >= p.StartHeight && height <= p.EndHeight
}
