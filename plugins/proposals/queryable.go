package proposals

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/wire"
)

const (
	QueryProposal      = "proposal"
	QueryClubProposals = "club"
	QueryNextID        = "nextid"
)

func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case QueryProposal:
			return queryProposal(ctx, req, keeper)
		case QueryClubProposals:
			return queryClubProposals(ctx, req, keeper)
		case QueryNextID:
			return queryNextID(ctx, keeper)
		default:
			return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown proposals query endpoint %s", path[0]))
		}
	}
}

// Params for query 'custom/proposals/proposal'
type QueryProposalParams struct {
	ProposalID types.ProposalID
}

// nolint: unparam
func queryProposal(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryProposalParams
	err := keeper.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}

	proposal := keeper.GetProposal(ctx, params.ProposalID)
	if proposal == nil {
		return nil, ErrUnknownProposal(fmt.Sprintf("proposal %d does not exist", params.ProposalID))
	}

	bz, err := wire.MarshalJSONIndent(keeper.cdc, *proposal)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}

// Params for query 'custom/proposals/club'
type QueryClubProposalsParams struct {
	ClubID types.ClubID
}

// nolint: unparam
func queryClubProposals(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryClubProposalsParams
	err := keeper.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}

	// skip ids whose record no longer resolves
	ids := keeper.GetClubProposals(ctx, params.ClubID)
	live := make([]Proposal, 0, len(ids))
	for _, id := range ids {
		if proposal := keeper.GetProposal(ctx, id); proposal != nil {
			live = append(live, *proposal)
		}
	}

	bz, err := wire.MarshalJSONIndent(keeper.cdc, live)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}

func queryNextID(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	next := keeper.PeekNextProposalID(ctx)

	bz, err := wire.MarshalJSONIndent(keeper.cdc, next)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}
