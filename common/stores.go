package common

import sdk "github.com/cosmos/cosmos-sdk/types"

const (
	MainStoreName     = "main"
	AccountStoreName  = "acc"
	ClubStoreName     = "clubs"
	ProposalStoreName = "proposals"
)

var (
	// keys to access the substores
	MainStoreKey     = sdk.NewKVStoreKey(MainStoreName)
	AccountStoreKey  = sdk.NewKVStoreKey(AccountStoreName)
	ClubStoreKey     = sdk.NewKVStoreKey(ClubStoreName)
	ProposalStoreKey = sdk.NewKVStoreKey(ProposalStoreName)
)
