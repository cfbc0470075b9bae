package proposals

import (
	"fmt"
	"reflect"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func NewHandler(kp Keeper) sdk.Handler {
	return func(ctx sdk.Context, msg sdk.Msg) sdk.Result {
		switch msg := msg.(type) {
		case MsgSubmitProposal:
			return handleSubmitProposal(ctx, kp, msg)
		case MsgVote:
			return handleVote(ctx, kp, msg)
		case MsgExecuteProposal:
			return handleExecuteProposal(ctx, kp, msg)
		case MsgCancelProposal:
			return handleCancelProposal(ctx, kp, msg)
		default:
			errMsg := fmt.Sprintf("unrecognized message type: %v", reflect.TypeOf(msg).Name())
			return sdk.ErrUnknownRequest(errMsg).Result()
		}
	}
}

func handleSubmitProposal(ctx sdk.Context, kp Keeper, msg MsgSubmitProposal) sdk.Result {
	proposal, err := kp.SubmitProposal(ctx, msg)
	if err != nil {
		return err.Result()
	}

	proposalIDBytes := []byte(strconv.FormatInt(proposal.ID, 10))
	resTags := sdk.NewTags(
		TagAction, []byte(ActionProposalSubmitted),
		TagProposer, []byte(msg.Proposer.String()),
		TagProposalID, proposalIDBytes,
		TagClubScoped, []byte(strconv.FormatBool(msg.Scope.Kind == ScopeClub)),
	)
	return sdk.Result{
		Data: proposalIDBytes,
		Tags: resTags,
	}
}

func handleVote(ctx sdk.Context, kp Keeper, msg MsgVote) sdk.Result {
	err := kp.AddVote(ctx, msg.ProposalID, msg.Voter, msg.Approve)
	if err != nil {
		return err.Result()
	}

	// every ballot carries unit weight
	resTags := sdk.NewTags(
		TagAction, []byte(ActionVoteCast),
		TagVoter, []byte(msg.Voter.String()),
		TagProposalID, []byte(strconv.FormatInt(msg.ProposalID, 10)),
		TagApprove, []byte(strconv.FormatBool(msg.Approve)),
		TagWeight, []byte("1"),
	)
	return sdk.Result{
		Tags: resTags,
	}
}

// handleExecuteProposal is permissionless: anyone may settle a closed
// proposal. A failed dispatch still returns an OK result so the terminal
// executed mark commits; the failure is surfaced through tags.
func handleExecuteProposal(ctx sdk.Context, kp Keeper, msg MsgExecuteProposal) sdk.Result {
	tags, err := kp.ExecuteProposal(ctx, msg.ProposalID)
	if err != nil {
		return err.Result()
	}
	return sdk.Result{
		Tags: tags,
	}
}

func handleCancelProposal(ctx sdk.Context, kp Keeper, msg MsgCancelProposal) sdk.Result {
	if !kp.clubKeeper.IsRegistryAdmin(ctx, msg.From) {
		return ErrNotAuthorized(fmt.Sprintf("%s is not the registry admin", msg.From)).Result()
	}
	if err := kp.CancelProposal(ctx, msg.ProposalID); err != nil {
		return err.Result()
	}

	resTags := sdk.NewTags(
		TagAction, []byte(ActionProposalCancelled),
		TagProposalID, []byte(strconv.FormatInt(msg.ProposalID, 10)),
	)
	return sdk.Result{
		Tags: resTags,
	}
}
