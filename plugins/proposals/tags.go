package proposals

import (
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

const (
	TagAction = "action"

	ActionProposalSubmitted = "proposalSubmitted"
	ActionVoteCast          = "voteCast"
	ActionProposalExecuted  = "proposalExecuted"
	ActionProposalFailed    = "proposalFailed"
	ActionProposalCancelled = "proposalCancelled"

	TagProposalID = "proposal-id"
	TagProposer   = "proposer"
	TagClubScoped = "club-scoped"
	TagVoter      = "voter"
	TagApprove    = "approve"
	TagWeight     = "weight"
	TagError      = "error"
)

func proposalIDTag(id types.ProposalID) sdk.Tags {
	return sdk.NewTags(TagProposalID, []byte(strconv.FormatInt(id, 10)))
}
