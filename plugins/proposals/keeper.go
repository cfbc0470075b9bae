package proposals

import (
	"fmt"
	"math"

	"github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/tendermint/tendermint/crypto"
	tmlog "github.com/tendermint/tendermint/libs/log"

	"github.com/club-chain/node/common/log"
	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/wire"
)

// ProposalExecutorAccAddr is the execution principal: every action a
// proposal dispatches runs with this module-owned address as its signer,
// never with the address of the caller who settled the proposal.
var ProposalExecutorAccAddr = sdk.AccAddress(crypto.AddressHash([]byte("ClubChainProposalExecutor")))

type Keeper struct {
	ck sdk.StoreKey

	cdc        *wire.Codec
	clubKeeper ClubKeeper
	router     baseapp.Router
	codespace  sdk.CodespaceType
	logger     tmlog.Logger

	votingPeriod  int64
	quorum        types.Votes
	passThreshold uint32
}

func NewKeeper(cdc *wire.Codec, key sdk.StoreKey, clubKeeper ClubKeeper, router baseapp.Router,
	codespace sdk.CodespaceType) Keeper {
	return Keeper{
		ck:            key,
		cdc:           cdc,
		clubKeeper:    clubKeeper,
		router:        router,
		codespace:     codespace,
		logger:        log.With("module", "proposals"),
		votingPeriod:  DefaultVotingPeriod,
		quorum:        DefaultQuorum,
		passThreshold: DefaultPassThreshold,
	}
}

// getNextProposalID allocates the next id, starting from 0 on a fresh
// chain.
func (kp Keeper) getNextProposalID(ctx sdk.Context) (types.ProposalID, sdk.Error) {
	store := ctx.KVStore(kp.ck)
	var id types.ProposalID
	if bz := store.Get(NextProposalIDKey); bz != nil {
		kp.cdc.MustUnmarshalBinaryBare(bz, &id)
	}
	if id == math.MaxInt64 {
		return 0, ErrProposalIDOverflow("proposal id space exhausted")
	}
	store.Set(NextProposalIDKey, kp.cdc.MustMarshalBinaryBare(id+1))
	return id, nil
}

// PeekNextProposalID returns the id the next submission will take,
// without consuming it.
func (kp Keeper) PeekNextProposalID(ctx sdk.Context) types.ProposalID {
	store := ctx.KVStore(kp.ck)
	var id types.ProposalID
	if bz := store.Get(NextProposalIDKey); bz != nil {
		kp.cdc.MustUnmarshalBinaryBare(bz, &id)
	}
	return id
}

func (kp Keeper) GetProposal(ctx sdk.Context, id types.ProposalID) *Proposal {
	store := ctx.KVStore(kp.ck)
	bz := store.Get(GetProposalKey(id))
	if bz == nil {
		return nil
	}
	var proposal Proposal
	kp.cdc.MustUnmarshalBinaryBare(bz, &proposal)
	return &proposal
}

func (kp Keeper) SetProposal(ctx sdk.Context, proposal *Proposal) {
	store := ctx.KVStore(kp.ck)
	store.Set(GetProposalKey(proposal.ID), kp.cdc.MustMarshalBinaryBare(*proposal))
}

func (kp Keeper) DeleteProposal(ctx sdk.Context, id types.ProposalID) {
	store := ctx.KVStore(kp.ck)
	store.Delete(GetProposalKey(id))
}

// GetClubProposals returns the ids ever indexed for a club. Ids whose
// record no longer resolves were cancelled or pruned; readers skip them.
func (kp Keeper) GetClubProposals(ctx sdk.Context, club types.ClubID) []types.ProposalID {
	store := ctx.KVStore(kp.ck)
	bz := store.Get(GetClubIndexKey(club))
	if bz == nil {
		return nil
	}
	var ids []types.ProposalID
	kp.cdc.MustUnmarshalBinaryBare(bz, &ids)
	return ids
}

func (kp Keeper) appendClubProposal(ctx sdk.Context, club types.ClubID, id types.ProposalID) sdk.Error {
	ids := kp.GetClubProposals(ctx, club)
	if len(ids) >= MaxProposalsPerClub {
		return ErrClubIndexOverflow(fmt.Sprintf("club %d already indexes %d proposals", club, MaxProposalsPerClub))
	}
	ids = append(ids, id)
	store := ctx.KVStore(kp.ck)
	store.Set(GetClubIndexKey(club), kp.cdc.MustMarshalBinaryBare(ids))
	return nil
}

func (kp Keeper) checkEligibility(ctx sdk.Context, scope Scope, addr sdk.AccAddress) sdk.Error {
	switch scope.Kind {
	case ScopeClub:
		if !kp.clubKeeper.IsClubMember(ctx, scope.Club, addr) {
			return ErrNotClubMember(fmt.Sprintf("%s is not a member of club %d", addr, scope.Club))
		}
	default:
		if !kp.clubKeeper.IsMember(ctx, addr) {
			return ErrNotMember(fmt.Sprintf("%s is not a registered member", addr))
		}
	}
	return nil
}

// SubmitProposal validates eligibility and bounds, allocates the next id
// and stores the proposal. The voting window is [StartHeight, EndHeight],
// both ends inclusive. Fails atomically on club index overflow.
func (kp Keeper) SubmitProposal(ctx sdk.Context, msg MsgSubmitProposal) (*Proposal, sdk.Error) {
	if err := kp.checkEligibility(ctx, msg.Scope, msg.Proposer); err != nil {
		return nil, err
	}

	votingPeriod := msg.VotingPeriod
	if votingPeriod == 0 {
		votingPeriod = kp.votingPeriod
	}
	quorum := msg.Quorum
	if quorum == 0 {
		quorum = kp.quorum
	}
	passThreshold := msg.PassThreshold
	if passThreshold == 0 {
		passThreshold = kp.passThreshold
	}

	id, err := kp.getNextProposalID(ctx)
	if err != nil {
		return nil, err
	}

	proposal := &Proposal{
		ID:            id,
		Proposer:      msg.Proposer,
		Scope:         msg.Scope,
		Action:        msg.Action,
		Metadata:      msg.Metadata,
		StartHeight:   ctx.BlockHeight(),
		EndHeight:     ctx.BlockHeight() + votingPeriod,
		Quorum:        quorum,
		PassThreshold: passThreshold,
	}

	if msg.Scope.Kind == ScopeClub {
		if err := kp.appendClubProposal(ctx, msg.Scope.Club, id); err != nil {
			return nil, err
		}
	}
	kp.SetProposal(ctx, proposal)

	kp.logger.Info("submitted proposal", "id", id, "proposer", msg.Proposer.String(),
		"endHeight", proposal.EndHeight)
	return proposal, nil
}

// AddVote records an approve or reject vote. One account, one vote, unit
// weight; eligibility is re-checked at vote time against the proposal's
// scope.
func (kp Keeper) AddVote(ctx sdk.Context, id types.ProposalID, voter sdk.AccAddress, approve bool) sdk.Error {
	proposal := kp.GetProposal(ctx, id)
	if proposal == nil {
		return ErrUnknownProposal(fmt.Sprintf("proposal %d does not exist", id))
	}
	if proposal.Executed {
		return ErrAlreadyExecuted(fmt.Sprintf("proposal %d has already been executed", id))
	}
	if !proposal.VotingOpenAt(ctx.BlockHeight()) {
		return ErrVotingClosed(fmt.Sprintf("proposal %d accepts votes in heights [%d, %d], current height is %d",
			id, proposal.StartHeight, proposal.EndHeight, ctx.BlockHeight()))
	}
	if err := kp.checkEligibility(ctx, proposal.Scope, voter); err != nil {
		return err
	}
	if proposal.HasVoted(voter) {
		return ErrAlreadyVoted(fmt.Sprintf("%s has already voted on proposal %d", voter, id))
	}
	if len(proposal.Voters) >= MaxVotersPerProposal {
		return ErrVotersOverflow(fmt.Sprintf("proposal %d already records %d voters", id, MaxVotersPerProposal))
	}

	proposal.Voters = append(proposal.Voters, voter)
	if approve {
		proposal.Yea++
	} else {
		proposal.Nay++
	}
	kp.SetProposal(ctx, proposal)
	return nil
}

// ExecuteProposal settles a proposal whose voting window has closed.
// Quorum, threshold and decode failures leave the proposal untouched and
// retryable. Once those gates pass the proposal is terminally marked
// executed; a failing dispatch keeps that mark while its own writes are
// discarded.
func (kp Keeper) ExecuteProposal(ctx sdk.Context, id types.ProposalID) (sdk.Tags, sdk.Error) {
	proposal := kp.GetProposal(ctx, id)
	if proposal == nil {
		return nil, ErrUnknownProposal(fmt.Sprintf("proposal %d does not exist", id))
	}
	if proposal.Executed {
		return nil, ErrAlreadyExecuted(fmt.Sprintf("proposal %d has already been executed", id))
	}
	if ctx.BlockHeight() <= proposal.EndHeight {
		return nil, ErrVotingClosed(fmt.Sprintf("proposal %d is still open for voting until height %d",
			id, proposal.EndHeight))
	}
	total := proposal.TotalVotes()
	if total < proposal.Quorum {
		return nil, ErrQuorumNotReached(fmt.Sprintf("proposal %d collected %d votes, quorum is %d",
			id, total, proposal.Quorum))
	}
	if proposal.PassPercent() < proposal.PassThreshold {
		return nil, ErrProposalNotPassed(fmt.Sprintf("proposal %d reached %d of %d required basis points",
			id, proposal.PassPercent(), proposal.PassThreshold))
	}

	action, err := kp.DecodeAction(proposal.Action)
	if err != nil {
		return nil, err
	}

	proposal.Executed = true
	kp.SetProposal(ctx, proposal)

	tags, dispatchErr := kp.dispatch(ctx, action)
	if dispatchErr != nil {
		kp.logger.Info("proposal action dispatch failed", "id", id, "err", dispatchErr.Error())
		return proposalIDTag(id).
			AppendTag(TagAction, []byte(ActionProposalFailed)).
			AppendTag(TagError, []byte(dispatchErr.Error())), nil
	}

	kp.logger.Info("executed proposal", "id", id)
	resTags := proposalIDTag(id).AppendTag(TagAction, []byte(ActionProposalExecuted))
	return resTags.AppendTags(tags), nil
}

// dispatch runs the decoded action against a cache-wrapped store so a
// failed action leaves no partial writes.
func (kp Keeper) dispatch(ctx sdk.Context, action sdk.Msg) (sdk.Tags, sdk.Error) {
	if err := action.ValidateBasic(); err != nil {
		return nil, err
	}
	for _, signer := range action.GetSigners() {
		if !signer.Equals(ProposalExecutorAccAddr) {
			return nil, ErrNotAuthorized(fmt.Sprintf("action signer %s is not the proposal executor", signer))
		}
	}
	handler := kp.router.Route(action.Route())
	if handler == nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("no handler registered for route %s", action.Route()))
	}

	cacheCtx, write := ctx.CacheContext()
	result := handler(cacheCtx, action)
	if !result.IsOK() {
		return nil, ErrExecutionFailed(fmt.Sprintf("action dispatch failed: %s", result.Log))
	}
	write()
	return result.Tags, nil
}

// CancelProposal removes the proposal record entirely. The club index is
// left as is; ids that no longer resolve read as gone.
func (kp Keeper) CancelProposal(ctx sdk.Context, id types.ProposalID) sdk.Error {
	proposal := kp.GetProposal(ctx, id)
	if proposal == nil {
		return ErrUnknownProposal(fmt.Sprintf("proposal %d does not exist", id))
	}
	if proposal.Executed {
		return ErrAlreadyExecuted(fmt.Sprintf("proposal %d has already been executed", id))
	}
	kp.DeleteProposal(ctx, id)
	kp.logger.Info("cancelled proposal", "id", id)
	return nil
}

// EncodeAction serializes a registered message for embedding in a
// proposal.
func (kp Keeper) EncodeAction(action sdk.Msg) []byte {
	return kp.cdc.MustMarshalBinaryLengthPrefixed(action)
}

// DecodeAction deserializes proposal action bytes back into a message.
// Only concrete types registered on the codec decode; anything else is an
// encoding error.
func (kp Keeper) DecodeAction(bz []byte) (sdk.Msg, sdk.Error) {
	var action sdk.Msg
	err := kp.cdc.UnmarshalBinaryLengthPrefixed(bz, &action)
	if err != nil {
		return nil, ErrInvalidActionEncoding(fmt.Sprintf("cannot decode proposal action: %s", err.Error()))
	}
	return action, nil
}
