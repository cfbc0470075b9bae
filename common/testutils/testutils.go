package testutils

import (
	"github.com/cosmos/cosmos-sdk/store"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/secp256k1"
	dbm "github.com/tendermint/tendermint/libs/db"

	"github.com/club-chain/node/common"
	"github.com/club-chain/node/common/types"
)

// SetupMultiStoreForUnitTest mounts the account, club and proposal stores
// on a MemDB-backed multistore.
func SetupMultiStoreForUnitTest() sdk.MultiStore {
	db := dbm.NewMemDB()
	ms := store.NewCommitMultiStore(db)
	ms.MountStoreWithDB(common.MainStoreKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(common.AccountStoreKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(common.ClubStoreKey, sdk.StoreTypeIAVL, db)
	ms.MountStoreWithDB(common.ProposalStoreKey, sdk.StoreTypeIAVL, db)
	ms.LoadLatestVersion()
	return ms.CacheMultiStore()
}

// coins to more than cover the fee
func NewNativeTokens(amount int64) sdk.Coins {
	return sdk.Coins{
		sdk.NewCoin(types.NativeTokenSymbol, amount),
	}
}

// generate a priv key and return it with its address
func PrivAndAddr() (crypto.PrivKey, sdk.AccAddress) {
	priv := secp256k1.GenPrivKey()
	addr := sdk.AccAddress(priv.PubKey().Address())
	return priv, addr
}

func NewAccount(ctx sdk.Context, am auth.AccountKeeper, free int64) (crypto.PrivKey, sdk.Account) {
	privKey, addr := PrivAndAddr()
	acc := am.NewAccountWithAddress(ctx, addr)
	acc.SetCoins(NewNativeTokens(free))
	am.SetAccount(ctx, acc)
	return privKey, acc
}

// NewAccountAt seeds an account at a fixed address, used for module-owned
// accounts such as the proposal executor.
func NewAccountAt(ctx sdk.Context, am auth.AccountKeeper, addr sdk.AccAddress, free int64) sdk.Account {
	acc := am.NewAccountWithAddress(ctx, addr)
	acc.SetCoins(NewNativeTokens(free))
	am.SetAccount(ctx, acc)
	return acc
}
