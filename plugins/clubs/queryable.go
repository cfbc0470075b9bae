package clubs

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/wire"
)

const (
	QueryClub   = "club"
	QueryMember = "member"
	QueryAdmin  = "admin"
)

func NewQuerier(keeper Keeper) sdk.Querier {
	return func(ctx sdk.Context, path []string, req abci.RequestQuery) (res []byte, err sdk.Error) {
		switch path[0] {
		case QueryClub:
			return queryClub(ctx, req, keeper)
		case QueryMember:
			return queryMember(ctx, req, keeper)
		case QueryAdmin:
			return queryAdmin(ctx, keeper)
		default:
			return nil, sdk.ErrUnknownRequest(fmt.Sprintf("unknown clubs query endpoint %s", path[0]))
		}
	}
}

// Params for query 'custom/clubs/club'
type QueryClubParams struct {
	ClubID types.ClubID
}

// nolint: unparam
func queryClub(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryClubParams
	err := keeper.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}

	club := keeper.GetClub(ctx, params.ClubID)
	if club == nil {
		return nil, ErrClubNotFound(fmt.Sprintf("club %d does not exist", params.ClubID))
	}

	bz, err := wire.MarshalJSONIndent(keeper.cdc, *club)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}

// Params for query 'custom/clubs/member'
type QueryMemberParams struct {
	Member sdk.AccAddress
}

// nolint: unparam
func queryMember(ctx sdk.Context, req abci.RequestQuery, keeper Keeper) ([]byte, sdk.Error) {
	var params QueryMemberParams
	err := keeper.cdc.UnmarshalJSON(req.Data, &params)
	if err != nil {
		return nil, sdk.ErrUnknownRequest(fmt.Sprintf("incorrectly formatted request data: %s", err.Error()))
	}

	if len(params.Member) != sdk.AddrLen {
		return nil, sdk.ErrInvalidAddress(fmt.Sprintf("length of address should be %d", sdk.AddrLen))
	}

	member := keeper.getMember(ctx, params.Member)
	if member == nil {
		return nil, ErrMemberNotFound(fmt.Sprintf("%s is not a registered member", params.Member))
	}

	bz, err := wire.MarshalJSONIndent(keeper.cdc, *member)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}

func queryAdmin(ctx sdk.Context, keeper Keeper) ([]byte, sdk.Error) {
	admin := keeper.GetRegistryAdmin(ctx)
	if admin == nil {
		return nil, ErrNotRegistryAdmin("registry admin is not set")
	}

	bz, err := wire.MarshalJSONIndent(keeper.cdc, admin)
	if err != nil {
		return nil, sdk.ErrInternal(fmt.Sprintf("could not marshal result to JSON: %s", err.Error()))
	}

	return bz, nil
}
