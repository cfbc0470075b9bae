package proposals

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/club-chain/node/common/types"
)

// ClubKeeper is the member registry interface the proposals plugin relies
// on for eligibility checks.
type ClubKeeper interface {
	IsMember(ctx sdk.Context, addr sdk.AccAddress) bool
	IsClubMember(ctx sdk.Context, id types.ClubID, addr sdk.AccAddress) bool
	IsRegistryAdmin(ctx sdk.Context, addr sdk.AccAddress) bool
}
