package clubs

import (
	"os"
	"testing"

	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/club-chain/node/common"
	"github.com/club-chain/node/common/testutils"
	"github.com/club-chain/node/wire"
)

func getAccountCache(cdc *codec.Codec, ms sdk.MultiStore) sdk.AccountCache {
	accountStore := ms.GetKVStore(common.AccountStoreKey)
	accountStoreCache := auth.NewAccountStoreCache(cdc, accountStore, 10)
	return auth.NewAccountCache(accountStoreCache)
}

func MakeCodec() *wire.Codec {
	var cdc = wire.NewCodec()

	wire.RegisterCrypto(cdc) // Register crypto.
	bank.RegisterCodec(cdc)
	sdk.RegisterCodec(cdc) // Register Msgs
	RegisterWire(cdc)

	return cdc
}

func MakeKeeper(cdc *wire.Codec) (auth.AccountKeeper, Keeper) {
	accKeeper := auth.NewAccountKeeper(cdc, common.AccountStoreKey, auth.ProtoBaseAccount)
	codespacer := sdk.NewCodespacer()
	keeper := NewKeeper(cdc, common.ClubStoreKey, codespacer.RegisterNext(DefaultCodespace))
	return accKeeper, keeper
}

func MakeCtx(cdc *wire.Codec) (sdk.Context, auth.AccountKeeper, Keeper) {
	accKeeper, keeper := MakeKeeper(cdc)
	ms := testutils.SetupMultiStoreForUnitTest()
	logger := log.NewTMLogger(os.Stdout)
	accountCache := getAccountCache(cdc, ms)
	ctx := sdk.NewContext(ms, abci.Header{Height: 1}, sdk.RunTxModeDeliver, logger).WithAccountCache(accountCache)
	return ctx, accKeeper, keeper
}

func TestKeeper_CreateClub(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	admin := adminAcc.GetAddress()

	id, err := keeper.CreateClub(ctx, "chess", admin)
	require.NoError(t, err)
	require.Equal(t, uint32(1), id)

	id2, err := keeper.CreateClub(ctx, "go", admin)
	require.NoError(t, err)
	require.Equal(t, uint32(2), id2)

	club := keeper.GetClub(ctx, id)
	require.NotNil(t, club)
	require.Equal(t, "chess", club.Name)
	require.Equal(t, admin, club.Admin)
	require.Empty(t, club.Officers)
	require.Zero(t, club.MembersCount)

	require.Nil(t, keeper.GetClub(ctx, 42))

	_, err = keeper.CreateClub(ctx, "", admin)
	require.Error(t, err)
	require.Equal(t, CodeInvalidClubName, err.Code())
}

func TestKeeper_RegistryAdmin(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)

	require.Nil(t, keeper.GetRegistryAdmin(ctx))

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, otherAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	keeper.SetRegistryAdmin(ctx, adminAcc.GetAddress())

	require.True(t, keeper.IsRegistryAdmin(ctx, adminAcc.GetAddress()))
	require.False(t, keeper.IsRegistryAdmin(ctx, otherAcc.GetAddress()))
}

func TestKeeper_Membership(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, memberAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	member := memberAcc.GetAddress()

	id, err := keeper.CreateClub(ctx, "chess", adminAcc.GetAddress())
	require.NoError(t, err)

	require.False(t, keeper.IsMember(ctx, member))
	require.Nil(t, keeper.MemberClubs(ctx, member))

	require.NoError(t, keeper.AddMember(ctx, id, member))
	require.True(t, keeper.IsMember(ctx, member))
	require.True(t, keeper.IsClubMember(ctx, id, member))
	require.Equal(t, []uint32{id}, keeper.MemberClubs(ctx, member))
	require.Equal(t, uint32(1), keeper.GetClub(ctx, id).MembersCount)

	// duplicate registration
	err = keeper.AddMember(ctx, id, member)
	require.Error(t, err)
	require.Equal(t, CodeAlreadyMember, err.Code())

	// unknown club
	err = keeper.AddMember(ctx, 42, member)
	require.Error(t, err)
	require.Equal(t, CodeClubNotFound, err.Code())

	require.NoError(t, keeper.RemoveMember(ctx, id, member))
	require.False(t, keeper.IsMember(ctx, member))
	require.False(t, keeper.IsClubMember(ctx, id, member))
	require.Zero(t, keeper.GetClub(ctx, id).MembersCount)

	err = keeper.RemoveMember(ctx, id, member)
	require.Error(t, err)
	require.Equal(t, CodeMemberNotFound, err.Code())
}

func TestKeeper_MemberClubsBound(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, memberAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	member := memberAcc.GetAddress()

	for i := 0; i < MaxClubsPerMember; i++ {
		id, err := keeper.CreateClub(ctx, "club", adminAcc.GetAddress())
		require.NoError(t, err)
		require.NoError(t, keeper.AddMember(ctx, id, member))
	}

	id, err := keeper.CreateClub(ctx, "one-too-many", adminAcc.GetAddress())
	require.NoError(t, err)
	err = keeper.AddMember(ctx, id, member)
	require.Error(t, err)
	require.Equal(t, CodeClubsOverflow, err.Code())
}

func TestKeeper_Officers(t *testing.T) {
	cdc := MakeCodec()
	ctx, accKeeper, keeper := MakeCtx(cdc)

	_, adminAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	_, officerAcc := testutils.NewAccount(ctx, accKeeper, 1000e8)
	admin := adminAcc.GetAddress()
	officer := officerAcc.GetAddress()

	id, err := keeper.CreateClub(ctx, "chess", admin)
	require.NoError(t, err)

	require.NoError(t, keeper.AddOfficer(ctx, id, officer))
	require.True(t, keeper.GetClub(ctx, id).IsOfficer(officer))

	err = keeper.AddOfficer(ctx, id, officer)
	require.Error(t, err)
	require.Equal(t, CodeAlreadyOfficer, err.Code())

	ok, sdkErr := keeper.IsOfficerOrAdmin(ctx, id, officer)
	require.NoError(t, sdkErr)
	require.True(t, ok)
	ok, sdkErr = keeper.IsOfficerOrAdmin(ctx, id, admin)
	require.NoError(t, sdkErr)
	require.True(t, ok)

	_, sdkErr = keeper.IsOfficerOrAdmin(ctx, 42, admin)
	require.Error(t, sdkErr)
	require.Equal(t, CodeClubNotFound, sdkErr.Code())

	require.NoError(t, keeper.RemoveOfficer(ctx, id, officer))
	require.False(t, keeper.GetClub(ctx, id).IsOfficer(officer))

	err = keeper.RemoveOfficer(ctx, id, officer)
	require.Error(t, err)
	require.Equal(t, CodeMemberNotFound, err.Code())

	ok, sdkErr = keeper.IsOfficerOrAdmin(ctx, id, officer)
	require.NoError(t, sdkErr)
	require.False(t, ok)
}
