package radix

import (
	"context"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
)

type page[T any] struct {
	items       []T
	nextCursor  *string
	ledgerState types.LedgerState
}

type pageFetcher[T any] func(ctx context.Context, cursor *string, atLedgerState *types.LedgerStateSelector) (*page[T], error)

// collectPages follows next_cursor until the gateway stops returning one. Without an explicit
// selector every page after the first is pinned to the first page's state version, so a ledger
// moving underneath does not shift the pages.
func collectPages[T any](ctx context.Context, selector *types.LedgerStateSelector, fetch pageFetcher[T]) ([]T, error) {
	var (
		items  []T
		cursor *string
	)
	atLedgerState := selector
	for {
		p, err := fetch(ctx, cursor, atLedgerState)
		if err != nil {
			return nil, err
		}
		items = append(items, p.items...)

		if atLedgerState == nil && p.ledgerState.StateVersion > 0 {
			atLedgerState = types.AtStateVersion(p.ledgerState.StateVersion)
		}
		if p.nextCursor == nil || *p.nextCursor == "" {
			return items, nil
		}
		cursor = p.nextCursor
	}
}

func (c *Client) fetchAllFungibles(ctx context.Context, address string, selector *types.LedgerStateSelector) ([]gateway.FungibleResourcesCollectionItem, error) {
	return collectPages(ctx, selector, func(ctx context.Context, cursor *string, atLedgerState *types.LedgerStateSelector) (*page[gateway.FungibleResourcesCollectionItem], error) {
		resp, err := c.gateway.EntityFungiblesPage(ctx, &gateway.EntityFungiblesPageRequest{
			AtLedgerState:    atLedgerState,
			Cursor:           cursor,
			Address:          address,
			AggregationLevel: gateway.AggregationGlobal,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "fetching fungibles of %s", address)
		}
		return &page[gateway.FungibleResourcesCollectionItem]{
			items:       resp.Items,
			nextCursor:  resp.NextCursor,
			ledgerState: resp.LedgerState,
		}, nil
	})
}

func (c *Client) fetchAllNonFungibles(ctx context.Context, address string, selector *types.LedgerStateSelector) ([]gateway.NonFungibleResourcesCollectionItem, error) {
	return collectPages(ctx, selector, func(ctx context.Context, cursor *string, atLedgerState *types.LedgerStateSelector) (*page[gateway.NonFungibleResourcesCollectionItem], error) {
		resp, err := c.gateway.EntityNonFungiblesPage(ctx, &gateway.EntityNonFungiblesPageRequest{
			AtLedgerState:    atLedgerState,
			Cursor:           cursor,
			Address:          address,
			AggregationLevel: gateway.AggregationVault,
			OptIns:           &gateway.EntityNonFungiblesPageOptIns{NonFungibleIncludeNfids: true},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "fetching non-fungibles of %s", address)
		}
		return &page[gateway.NonFungibleResourcesCollectionItem]{
			items:       resp.Items,
			nextCursor:  resp.NextCursor,
			ledgerState: resp.LedgerState,
		}, nil
	})
}
