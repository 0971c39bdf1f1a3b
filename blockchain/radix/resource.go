package radix

import (
	"context"

	"github.com/openweb3-io/radixutils/blockchain/radix/batch"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
)

// CheckResourceInUsersFungibleAssets reads the vaults of one resource for every account. The
// reads run as a single batch that is retried as a whole.
//
// An account holding the resource in several vaults is reported with the amount of the last
// positive vault, while TotalAmount counts all of them.
func (c *Client) CheckResourceInUsersFungibleAssets(ctx context.Context, accounts []string, resource string, selector *types.LedgerStateSelector) (*client.ResourceCheckResult, error) {
	ops := make([]batch.Op[*gateway.EntityFungibleResourceVaultsPageResponse], 0, len(accounts))
	for _, account := range accounts {
		ops = append(ops, func(ctx context.Context) (*gateway.EntityFungibleResourceVaultsPageResponse, error) {
			return c.gateway.EntityFungibleResourceVaultPage(ctx, &gateway.EntityFungibleResourceVaultsPageRequest{
				AtLedgerState:   selector,
				Address:         account,
				ResourceAddress: resource,
			})
		})
	}

	responses, err := batch.RetryAll(ctx, ops, c.retryOptions()...)
	if err != nil {
		c.logger.WithError(err).WithField("resource", resource).Error("failed to check resource in accounts")
		return nil, errors.Wrapf(err, "checking %s in %d accounts", resource, len(accounts))
	}

	result := &client.ResourceCheckResult{
		UsersWithResourceAmount: map[string]types.Decimal{},
		TotalAmount:             types.ZeroDecimal,
	}
	for _, res := range responses {
		for _, vault := range res.Items {
			if !vault.Amount.IsPositive() {
				continue
			}
			result.UsersWithResourceAmount[res.Address] = vault.Amount
			result.TotalAmount = result.TotalAmount.Add(vault.Amount)
		}
	}
	return result, nil
}
