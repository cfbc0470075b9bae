package proposals

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

const (
	RouteProposals = "proposals"

	SubmitProposalType  = "submitProposal"
	VoteType            = "vote"
	ExecuteProposalType = "executeProposal"
	CancelProposalType  = "cancelProposal"
)

var _ sdk.Msg = MsgSubmitProposal{}

// MsgSubmitProposal opens a proposal carrying an encoded action to be
// dispatched if the proposal passes. Zero-valued VotingPeriod, Quorum and
// PassThreshold take the configured defaults.
type MsgSubmitProposal struct {
	Proposer      sdk.AccAddress `json:"proposer"`
	Scope         Scope          `json:"scope"`
	Action        []byte         `json:"action"`
	Metadata      []byte         `json:"metadata"`
	VotingPeriod  int64          `json:"voting_period"`
	Quorum        types.Votes    `json:"quorum"`
	PassThreshold uint32         `json:"pass_threshold"`
}

func NewMsgSubmitProposal(proposer sdk.AccAddress, scope Scope, action, metadata []byte) MsgSubmitProposal {
	return MsgSubmitProposal{
		Proposer: proposer,
		Scope:    scope,
		Action:   action,
		Metadata: metadata,
	}
}

func (msg MsgSubmitProposal) Route() string { return RouteProposals }
func (msg MsgSubmitProposal) Type() string  { return SubmitProposalType }
func (msg MsgSubmitProposal) String() string {
	return fmt.Sprintf("submitProposal{%v#%v#%d bytes}", msg.Proposer, msg.Scope, len(msg.Action))
}
func (msg MsgSubmitProposal) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg MsgSubmitProposal) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Proposer} }

func (msg MsgSubmitProposal) ValidateBasic() sdk.Error {
	if len(msg.Proposer) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Proposer)))
	}
	if len(msg.Action) == 0 {
		return ErrInvalidActionEncoding("proposal action must not be empty")
	}
	if len(msg.Action) > MaxActionLen {
		return ErrActionTooLarge(fmt.Sprintf("action length %d exceeds %d", len(msg.Action), MaxActionLen))
	}
	if len(msg.Metadata) > MaxMetadataLen {
		return ErrMetadataTooLarge(fmt.Sprintf("metadata length %d exceeds %d", len(msg.Metadata), MaxMetadataLen))
	}
	if msg.Scope.Kind != ScopeGlobal && msg.Scope.Kind != ScopeClub {
		return sdk.ErrUnknownRequest(fmt.Sprintf("unknown proposal scope kind %d", msg.Scope.Kind))
	}
	if msg.VotingPeriod < 0 {
		return sdk.ErrUnknownRequest("voting period must not be negative")
	}
	if msg.PassThreshold > MaxPassThreshold {
		return sdk.ErrUnknownRequest(fmt.Sprintf("pass threshold %d exceeds %d", msg.PassThreshold, MaxPassThreshold))
	}
	return nil
}

func (msg MsgSubmitProposal) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgVote{}

// MsgVote records an approve or reject vote on an open proposal.
type MsgVote struct {
	Voter      sdk.AccAddress   `json:"voter"`
	ProposalID types.ProposalID `json:"proposal_id"`
	Approve    bool             `json:"approve"`
}

func NewMsgVote(voter sdk.AccAddress, id types.ProposalID, approve bool) MsgVote {
	return MsgVote{Voter: voter, ProposalID: id, Approve: approve}
}

func (msg MsgVote) Route() string { return RouteProposals }
func (msg MsgVote) Type() string  { return VoteType }
func (msg MsgVote) String() string {
	return fmt.Sprintf("vote{%v#%d#%t}", msg.Voter, msg.ProposalID, msg.Approve)
}
func (msg MsgVote) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg MsgVote) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.Voter} }

func (msg MsgVote) ValidateBasic() sdk.Error {
	if len(msg.Voter) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.Voter)))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal("proposal id must not be negative")
	}
	return nil
}

func (msg MsgVote) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgExecuteProposal{}

// MsgExecuteProposal settles a closed proposal: if quorum and threshold
// are met, the stored action is decoded and dispatched.
type MsgExecuteProposal struct {
	From       sdk.AccAddress   `json:"from"`
	ProposalID types.ProposalID `json:"proposal_id"`
}

func NewMsgExecuteProposal(from sdk.AccAddress, id types.ProposalID) MsgExecuteProposal {
	return MsgExecuteProposal{From: from, ProposalID: id}
}

func (msg MsgExecuteProposal) Route() string { return RouteProposals }
func (msg MsgExecuteProposal) Type() string  { return ExecuteProposalType }
func (msg MsgExecuteProposal) String() string {
	return fmt.Sprintf("executeProposal{%v#%d}", msg.From, msg.ProposalID)
}
func (msg MsgExecuteProposal) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg MsgExecuteProposal) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }

func (msg MsgExecuteProposal) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal("proposal id must not be negative")
	}
	return nil
}

func (msg MsgExecuteProposal) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}

var _ sdk.Msg = MsgCancelProposal{}

// MsgCancelProposal withdraws a proposal before it has been executed.
// Only the registry admin may cancel.
type MsgCancelProposal struct {
	From       sdk.AccAddress   `json:"from"`
	ProposalID types.ProposalID `json:"proposal_id"`
}

func NewMsgCancelProposal(from sdk.AccAddress, id types.ProposalID) MsgCancelProposal {
	return MsgCancelProposal{From: from, ProposalID: id}
}

func (msg MsgCancelProposal) Route() string { return RouteProposals }
func (msg MsgCancelProposal) Type() string  { return CancelProposalType }
func (msg MsgCancelProposal) String() string {
	return fmt.Sprintf("cancelProposal{%v#%d}", msg.From, msg.ProposalID)
}
func (msg MsgCancelProposal) GetInvolvedAddresses() []sdk.AccAddress { return msg.GetSigners() }
func (msg MsgCancelProposal) GetSigners() []sdk.AccAddress           { return []sdk.AccAddress{msg.From} }

func (msg MsgCancelProposal) ValidateBasic() sdk.Error {
	if len(msg.From) != sdk.AddrLen {
		return sdk.ErrInvalidAddress(fmt.Sprintf("Expected address length is %d, actual length is %d", sdk.AddrLen, len(msg.From)))
	}
	if msg.ProposalID < 0 {
		return ErrUnknownProposal("proposal id must not be negative")
	}
	return nil
}

func (msg MsgCancelProposal) GetSignBytes() []byte {
	b, err := json.Marshal(msg)
	if err != nil {
		panic(err)
	}
	return b
}
