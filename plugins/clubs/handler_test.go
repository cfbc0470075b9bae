package clubs

import (
	"encoding/binary"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/club-chain/node/common/testutils"
)

func TestHandler_CreateClub(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)
	handler := NewHandler(keeper)

	_, registryAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	registry := registryAcc.GetAddress()
	admin := adminAcc.GetAddress()
	keeper.SetRegistryAdmin(ctx, registry)

	result := handler(ctx, NewMsgCreateClub(registry, "chess", admin))
	require.True(t, result.IsOK())
	require.Equal(t, uint32(1), binary.BigEndian.Uint32(result.Data))

	// only the registry admin may create clubs
	result = handler(ctx, NewMsgCreateClub(admin, "rogue", admin))
	require.False(t, result.IsOK())
	require.Equal(t, sdk.ToABCICode(DefaultCodespace, CodeNotRegistryAdmin), result.Code)
}

func TestHandler_OfficerAuth(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)
	handler := NewHandler(keeper)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, officerAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, strangerAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	admin := adminAcc.GetAddress()
	officer := officerAcc.GetAddress()
	stranger := strangerAcc.GetAddress()

	id, err := keeper.CreateClub(ctx, "chess", admin)
	require.NoError(t, err)

	result := handler(ctx, NewMsgAddOfficer(stranger, id, officer))
	require.False(t, result.IsOK())
	require.Equal(t, sdk.ToABCICode(DefaultCodespace, CodeNotClubAdmin), result.Code)

	result = handler(ctx, NewMsgAddOfficer(admin, id, officer))
	require.True(t, result.IsOK())

	result = handler(ctx, NewMsgRemoveOfficer(admin, 42, officer))
	require.False(t, result.IsOK())
	require.Equal(t, sdk.ToABCICode(DefaultCodespace, CodeClubNotFound), result.Code)

	result = handler(ctx, NewMsgRemoveOfficer(admin, id, officer))
	require.True(t, result.IsOK())
}

func TestHandler_MemberAuth(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)
	handler := NewHandler(keeper)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, officerAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, memberAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	admin := adminAcc.GetAddress()
	officer := officerAcc.GetAddress()
	member := memberAcc.GetAddress()

	id, err := keeper.CreateClub(ctx, "chess", admin)
	require.NoError(t, err)
	require.NoError(t, keeper.AddOfficer(ctx, id, officer))

	// a member can be attested by the admin or an officer, not by anyone else
	result := handler(ctx, NewMsgAddMember(member, id, member))
	require.False(t, result.IsOK())

	result = handler(ctx, NewMsgAddMember(officer, id, member))
	require.True(t, result.IsOK())
	require.True(t, keeper.IsClubMember(ctx, id, member))

	result = handler(ctx, NewMsgRemoveMember(admin, id, member))
	require.True(t, result.IsOK())
	require.False(t, keeper.IsClubMember(ctx, id, member))
}
