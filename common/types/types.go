package types

const (
	NativeTokenSymbol = "CLUB"
)

// ClubID identifies a club in the member registry.
type ClubID = uint32

// ProposalID identifies a governance proposal.
type ProposalID = int64

// Votes counts ballots; voting weight is always 1 per account.
type Votes = uint32
