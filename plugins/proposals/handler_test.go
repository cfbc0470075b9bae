package proposals

import (
	"strconv"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/club-chain/node/common/testutils"
)

func TestHandler_SubmitAndVote(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHandler(env.keeper)
	club := env.newClub(t)
	proposer := env.newMember(t, club)
	voter := env.newMember(t, club)

	result := handler(env.ctx,
		NewMsgSubmitProposal(proposer, ClubScope(club), env.transferAction(t, voter, 1), nil))
	require.True(t, result.IsOK())

	id, err := strconv.ParseInt(string(result.Data), 10, 64)
	require.NoError(t, err)
	require.Equal(t, int64(0), id)
	require.Contains(t, tagValues(result.Tags), ActionProposalSubmitted)
	require.Equal(t, "true", tagValue(result.Tags, TagClubScoped))

	result = handler(env.ctx, NewMsgVote(voter, id, true))
	require.True(t, result.IsOK())
	require.Contains(t, tagValues(result.Tags), ActionVoteCast)
	require.Equal(t, "1", tagValue(result.Tags, TagWeight))

	result = handler(env.ctx, NewMsgVote(voter, id, true))
	require.False(t, result.IsOK())
	require.Equal(t, sdk.ToABCICode(DefaultCodespace, CodeAlreadyVoted), result.Code)
}

func TestHandler_ExecuteFailureIsOK(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHandler(env.keeper)
	club := env.newClub(t)
	proposer := env.newMember(t, club)
	recipient := env.newMember(t, club)
	// no executor funds: the dispatch will fail while the settle tx succeeds

	submitRes := handler(env.ctx,
		NewMsgSubmitProposal(proposer, ClubScope(club), env.transferAction(t, recipient, 100), nil))
	require.True(t, submitRes.IsOK())
	id, _ := strconv.ParseInt(string(submitRes.Data), 10, 64)

	require.True(t, handler(env.ctx, NewMsgVote(proposer, id, true)).IsOK())

	proposal := env.keeper.GetProposal(env.ctx, id)
	closed := env.atHeight(proposal.EndHeight + 1)

	result := handler(closed, NewMsgExecuteProposal(proposer, id))
	require.True(t, result.IsOK())
	require.Contains(t, tagValues(result.Tags), ActionProposalFailed)
	require.True(t, env.keeper.GetProposal(env.ctx, id).Executed)
}

func TestHandler_CancelAuth(t *testing.T) {
	env := newTestEnv(t)
	handler := NewHandler(env.keeper)
	club := env.newClub(t)
	proposer := env.newMember(t, club)
	_, registryAcc := testutils.NewAccount(env.ctx, env.accKeeper, 1000e8)
	env.clubKeeper.SetRegistryAdmin(env.ctx, registryAcc.GetAddress())

	submitRes := handler(env.ctx,
		NewMsgSubmitProposal(proposer, ClubScope(club), env.transferAction(t, proposer, 1), nil))
	require.True(t, submitRes.IsOK())
	id, _ := strconv.ParseInt(string(submitRes.Data), 10, 64)

	// even the proposer cannot cancel
	result := handler(env.ctx, NewMsgCancelProposal(proposer, id))
	require.False(t, result.IsOK())
	require.Equal(t, sdk.ToABCICode(DefaultCodespace, CodeNotAuthorized), result.Code)

	result = handler(env.ctx, NewMsgCancelProposal(registryAcc.GetAddress(), id))
	require.True(t, result.IsOK())
	require.Contains(t, tagValues(result.Tags), ActionProposalCancelled)
	require.Nil(t, env.keeper.GetProposal(env.ctx, id))
}
