package app

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/x/auth"

	"github.com/club-chain/node/common/types"
)

// GenesisState is the raw application state a new chain starts from.
type GenesisState struct {
	Accounts      []GenesisAccount `json:"accounts"`
	RegistryAdmin sdk.AccAddress   `json:"registry_admin"`
	ExecutorFunds sdk.Coins        `json:"executor_funds"`
}

// GenesisAccount doesn't need pubkey or sequence
type GenesisAccount struct {
	Name    string         `json:"name"`
	Address sdk.AccAddress `json:"address"`
	Coins   sdk.Coins      `json:"coins"`
}

func NewGenesisAccount(name string, addr sdk.AccAddress, free int64) GenesisAccount {
	return GenesisAccount{
		Name:    name,
		Address: addr,
		Coins:   sdk.Coins{sdk.NewCoin(types.NativeTokenSymbol, free)},
	}
}

// ToAccount converts a GenesisAccount to an account for the store.
func (ga *GenesisAccount) ToAccount() sdk.Account {
	return &auth.BaseAccount{
		Address: ga.Address,
		Coins:   ga.Coins.Sort(),
	}
}
