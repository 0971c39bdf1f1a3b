package client

import (
	"github.com/openweb3-io/radixutils/types"
	"github.com/tidwall/btree"
)

type FungibleBalance struct {
	TokenAddress string        `json:"tokenAddress" yaml:"tokenAddress"`
	Amount       types.Decimal `json:"amount" yaml:"amount"`
}

type NonFungibleBalance struct {
	CollectionAddress string   `json:"collectionAddress" yaml:"collectionAddress"`
	IDs               []string `json:"ids" yaml:"ids"`
}

// WalletBalances holds only positive fungible amounts and non-empty NFT collections, keyed by
// resource address.
type WalletBalances struct {
	Fungible    map[string]FungibleBalance    `json:"fungible" yaml:"fungible"`
	NonFungible map[string]NonFungibleBalance `json:"nonFungible" yaml:"nonFungible"`
}

func NewWalletBalances() *WalletBalances {
	return &WalletBalances{
		Fungible:    map[string]FungibleBalance{},
		NonFungible: map[string]NonFungibleBalance{},
	}
}

// SortedFungible lists fungible balances by resource address
func (w *WalletBalances) SortedFungible() []FungibleBalance {
	return sortedValues(w.Fungible)
}

// SortedNonFungible lists NFT collections by resource address
func (w *WalletBalances) SortedNonFungible() []NonFungibleBalance {
	return sortedValues(w.NonFungible)
}

// ResourceCheckResult keeps, per account, the amount of the last positive vault seen. Total
// sums every positive vault, so an account with several vaults counts fully in the total.
type ResourceCheckResult struct {
	UsersWithResourceAmount map[string]types.Decimal `json:"usersWithResourceAmount" yaml:"usersWithResourceAmount"`
	TotalAmount             types.Decimal            `json:"totalAmount" yaml:"totalAmount"`
}

type ResourceHolder struct {
	Account string        `json:"account" yaml:"account"`
	Amount  types.Decimal `json:"amount" yaml:"amount"`
}

// SortedHolders lists holders by account address
func (r *ResourceCheckResult) SortedHolders() []ResourceHolder {
	// use btree map to get deterministic order
	holders := btree.NewMap[string, types.Decimal](1)
	for account, amount := range r.UsersWithResourceAmount {
		holders.Set(account, amount)
	}
	result := make([]ResourceHolder, 0, holders.Len())
	holders.Scan(func(account string, amount types.Decimal) bool {
		result = append(result, ResourceHolder{Account: account, Amount: amount})
		return true
	})
	return result
}

func sortedValues[V any](m map[string]V) []V {
	ordered := btree.NewMap[string, V](1)
	for key, value := range m {
		ordered.Set(key, value)
	}
	values := make([]V, 0, ordered.Len())
	ordered.Scan(func(_ string, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}
