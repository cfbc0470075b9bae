package app

import (
	"encoding/json"
	"os"

	bam "github.com/cosmos/cosmos-sdk/baseapp"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/cosmos/cosmos-sdk/x/bank"
	"github.com/pkg/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	dbm "github.com/tendermint/tendermint/libs/db"
	tmlog "github.com/tendermint/tendermint/libs/log"
	tmtypes "github.com/tendermint/tendermint/types"

	"github.com/club-chain/node/common"
	bnclog "github.com/club-chain/node/common/log"
	"github.com/club-chain/node/plugins/clubs"
	"github.com/club-chain/node/plugins/proposals"
	"github.com/club-chain/node/wire"
)

const (
	appName = "ClubChain"
)

// default home directories for expected binaries
var (
	DefaultCLIHome  = os.ExpandEnv("$HOME/.clubchaincli")
	DefaultNodeHome = os.ExpandEnv("$HOME/.clubchaind")
)

// ClubChain is the governance chain ABCI application
type ClubChain struct {
	*bam.BaseApp
	cdc *wire.Codec

	// keys to access the substores
	capKeyMainStore     *sdk.KVStoreKey
	capKeyAccountStore  *sdk.KVStoreKey
	capKeyClubStore     *sdk.KVStoreKey
	capKeyProposalStore *sdk.KVStoreKey

	// keepers
	accountKeeper  auth.AccountKeeper
	coinKeeper     bank.Keeper
	clubKeeper     clubs.Keeper
	proposalKeeper proposals.Keeper
}

// NewClubChain creates a new instance of the ClubChain application.
func NewClubChain(logger tmlog.Logger, db dbm.DB, options ...func(*bam.BaseApp)) *ClubChain {
	// Create app-level codec for txs and accounts.
	var cdc = MakeCodec()

	bnclog.InitLogger(logger.With("module", "main"))

	var app = &ClubChain{
		BaseApp:             bam.NewBaseApp(appName, logger, db, auth.DefaultTxDecoder(cdc), sdk.CollectConfig{}, options...),
		cdc:                 cdc,
		capKeyMainStore:     common.MainStoreKey,
		capKeyAccountStore:  common.AccountStoreKey,
		capKeyClubStore:     common.ClubStoreKey,
		capKeyProposalStore: common.ProposalStoreKey,
	}

	app.accountKeeper = auth.NewAccountKeeper(cdc, app.capKeyAccountStore, auth.ProtoBaseAccount)
	app.coinKeeper = bank.NewBaseKeeper(app.accountKeeper)
	app.clubKeeper = clubs.NewKeeper(cdc, app.capKeyClubStore,
		app.RegisterCodespace(clubs.DefaultCodespace))
	app.proposalKeeper = proposals.NewKeeper(cdc, app.capKeyProposalStore, app.clubKeeper,
		app.Router(), app.RegisterCodespace(proposals.DefaultCodespace))

	app.registerHandlers()

	app.SetInitChainer(app.initChainerFn())
	app.SetAnteHandler(auth.NewAnteHandler(app.accountKeeper))
	app.MountStoresIAVL(app.capKeyMainStore, app.capKeyAccountStore,
		app.capKeyClubStore, app.capKeyProposalStore)
	err := app.LoadLatestVersion(app.capKeyMainStore)
	if err != nil {
		panic(err)
	}
	app.SetAccountStoreCache(cdc, app.GetCommitMultiStore().GetKVStore(app.capKeyAccountStore), defaultAccountCacheSize)
	return app
}

const defaultAccountCacheSize = 30000

func (app *ClubChain) registerHandlers() {
	app.Router().
		AddRoute("bank", bank.NewHandler(app.coinKeeper)).
		AddRoute(clubs.ClubRoute, clubs.NewHandler(app.clubKeeper)).
		AddRoute(proposals.RouteProposals, proposals.NewHandler(app.proposalKeeper))

	app.QueryRouter().
		AddRoute("clubs", clubs.NewQuerier(app.clubKeeper)).
		AddRoute("proposals", proposals.NewQuerier(app.proposalKeeper))
}

// MakeCodec creates a custom tx codec.
func MakeCodec() *wire.Codec {
	var cdc = wire.NewCodec()

	wire.RegisterCrypto(cdc) // Register crypto.
	sdk.RegisterCodec(cdc)   // Register Msgs
	bank.RegisterCodec(cdc)
	clubs.RegisterWire(cdc)
	proposals.RegisterWire(cdc)

	cdc.RegisterInterface((*sdk.Account)(nil), nil)
	cdc.RegisterConcrete(&auth.BaseAccount{}, "clubchain/Account", nil)
	return cdc
}

// initChainerFn performs custom logic for chain initialization.
func (app *ClubChain) initChainerFn() sdk.InitChainer {
	return func(ctx sdk.Context, req abci.RequestInitChain) abci.ResponseInitChain {
		stateJSON := req.AppStateBytes

		genesisState := new(GenesisState)
		err := app.cdc.UnmarshalJSON(stateJSON, genesisState)
		if err != nil {
			panic(errors.Wrap(err, "failed to parse application genesis state"))
		}

		for _, gacc := range genesisState.Accounts {
			acc := gacc.ToAccount()
			app.accountKeeper.SetAccount(ctx, acc)
		}

		// the execution principal holds the funds proposals can move
		executor := app.accountKeeper.NewAccountWithAddress(ctx, proposals.ProposalExecutorAccAddr)
		if !genesisState.ExecutorFunds.IsZero() {
			executor.SetCoins(genesisState.ExecutorFunds)
		}
		app.accountKeeper.SetAccount(ctx, executor)

		app.clubKeeper.SetRegistryAdmin(ctx, genesisState.RegistryAdmin)

		return abci.ResponseInitChain{}
	}
}

// ExportAppStateAndValidators exports blockchain world state to json.
func (app *ClubChain) ExportAppStateAndValidators() (appState json.RawMessage, validators []tmtypes.GenesisValidator, err error) {
	ctx := app.NewContext(sdk.RunTxModeCheck, abci.Header{})

	accounts := []GenesisAccount{}
	appendAccount := func(acc sdk.Account) (stop bool) {
		accounts = append(accounts, GenesisAccount{
			Address: acc.GetAddress(),
			Coins:   acc.GetCoins(),
		})
		return false
	}
	app.accountKeeper.IterateAccounts(ctx, appendAccount)

	genState := GenesisState{
		Accounts:      accounts,
		RegistryAdmin: app.clubKeeper.GetRegistryAdmin(ctx),
	}
	appState, err = wire.MarshalJSONIndent(app.cdc, genState)
	if err != nil {
		return nil, nil, err
	}
	return appState, validators, nil
}
