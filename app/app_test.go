package app

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/club-chain/node/common/testutils"
	"github.com/club-chain/node/common/types"
	"github.com/club-chain/node/plugins/proposals"
	"github.com/club-chain/node/wire"
)

func TestInitChainSeedsState(t *testing.T) {
	db := dbm.NewMemDB()
	capp := NewClubChain(log.NewNopLogger(), db)

	_, registry := testutils.PrivAndAddr()
	_, alice := testutils.PrivAndAddr()
	genState := GenesisState{
		Accounts:      []GenesisAccount{NewGenesisAccount("alice", alice, 1000e8)},
		RegistryAdmin: registry,
		ExecutorFunds: sdk.Coins{sdk.NewCoin(types.NativeTokenSymbol, 500e8)},
	}
	stateBytes, err := wire.MarshalJSONIndent(capp.cdc, genState)
	require.NoError(t, err)

	capp.InitChain(abci.RequestInitChain{AppStateBytes: stateBytes})
	capp.Commit()

	ctx := capp.NewContext(sdk.RunTxModeCheck, abci.Header{})
	require.Equal(t, registry, capp.clubKeeper.GetRegistryAdmin(ctx))

	executor := capp.accountKeeper.GetAccount(ctx, proposals.ProposalExecutorAccAddr)
	require.NotNil(t, executor)
	require.Equal(t, int64(500e8), executor.GetCoins().AmountOf(types.NativeTokenSymbol))

	aliceAcc := capp.accountKeeper.GetAccount(ctx, alice)
	require.NotNil(t, aliceAcc)
	require.Equal(t, int64(1000e8), aliceAcc.GetCoins().AmountOf(types.NativeTokenSymbol))
}

func TestExportGenesis(t *testing.T) {
	db := dbm.NewMemDB()
	capp := NewClubChain(log.NewNopLogger(), db)

	_, registry := testutils.PrivAndAddr()
	genState := GenesisState{RegistryAdmin: registry}
	stateBytes, err := wire.MarshalJSONIndent(capp.cdc, genState)
	require.NoError(t, err)

	capp.InitChain(abci.RequestInitChain{AppStateBytes: stateBytes})
	capp.Commit()

	appState, _, err := capp.ExportAppStateAndValidators()
	require.NoError(t, err)

	exported := new(GenesisState)
	require.NoError(t, capp.cdc.UnmarshalJSON(appState, exported))
	require.Equal(t, registry, exported.RegistryAdmin)
}
