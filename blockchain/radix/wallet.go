package radix

import (
	"context"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/types"
	"golang.org/x/sync/errgroup"
)

// FetchWalletBalances walks the fungible and non-fungible listings of an account concurrently.
// Zero amounts and collections without ids are left out.
func (c *Client) FetchWalletBalances(ctx context.Context, address string, selector *types.LedgerStateSelector) (*client.WalletBalances, error) {
	var (
		fungibles    []gateway.FungibleResourcesCollectionItem
		nonFungibles []gateway.NonFungibleResourcesCollectionItem
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		fungibles, err = c.fetchAllFungibles(groupCtx, address, selector)
		return err
	})
	group.Go(func() error {
		var err error
		nonFungibles, err = c.fetchAllNonFungibles(groupCtx, address, selector)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	balances := client.NewWalletBalances()
	for _, item := range fungibles {
		if item.AggregationLevel != gateway.AggregationGlobal || !item.Amount.IsPositive() {
			continue
		}
		balances.Fungible[item.ResourceAddress] = client.FungibleBalance{
			TokenAddress: item.ResourceAddress,
			Amount:       item.Amount,
		}
	}
	for _, item := range nonFungibles {
		if item.AggregationLevel != gateway.AggregationVault || item.Vaults == nil || len(item.Vaults.Items) == 0 {
			continue
		}
		// ids come from the first vault only
		ids := item.Vaults.Items[0].Items
		if len(ids) == 0 {
			continue
		}
		balances.NonFungible[item.ResourceAddress] = client.NonFungibleBalance{
			CollectionAddress: item.ResourceAddress,
			IDs:               ids,
		}
	}
	return balances, nil
}
