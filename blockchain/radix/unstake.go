package radix

import (
	"context"
	"strconv"

	"github.com/openweb3-io/radixutils/blockchain/radix/batch"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// NonFungibleDataBatchSize is the most ids the gateway accepts in one data request
const NonFungibleDataBatchSize = 100

const (
	fieldClaimAmount = "claim_amount"
	fieldClaimEpoch  = "claim_epoch"
)

// FetchUnstakeClaimNFTData reads claim NFTs in batches of NonFungibleDataBatchSize, all
// batches at once. NFTs whose data is not a tuple are left out.
func (c *Client) FetchUnstakeClaimNFTData(ctx context.Context, claimResource string, ids []string) (client.UnstakeClaimNFTData, error) {
	chunks := batch.Chunk(ids, NonFungibleDataBatchSize)
	pages := make([][]gateway.NonFungibleDataItem, len(chunks))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, chunk := range chunks {
		group.Go(func() error {
			resp, err := c.gateway.NonFungibleData(groupCtx, &gateway.NonFungibleDataRequest{
				ResourceAddress: claimResource,
				NonFungibleIDs:  chunk,
			})
			if err != nil {
				return errors.Wrapf(err, "fetching data of %d nfts of %s", len(chunk), claimResource)
			}
			pages[i] = resp.NonFungibleIDs
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	claims := client.UnstakeClaimNFTData{}
	for _, items := range pages {
		for _, item := range items {
			if item.Data == nil || item.Data.ProgrammaticJSON.Kind != gateway.KindTuple {
				continue
			}
			claim := claims[item.NonFungibleID]
			claim.NFTID = item.NonFungibleID
			readClaimFields(&claim, item.Data.ProgrammaticJSON.Fields)
			claims[item.NonFungibleID] = claim
		}
	}
	return claims, nil
}

func readClaimFields(claim *client.UnstakeClaimNFT, fields []gateway.ProgrammaticValue) {
	for _, field := range fields {
		switch {
		case field.Kind == gateway.KindDecimal && field.FieldName == fieldClaimAmount:
			if amount, err := types.NewDecimalFromStr(field.StringValue()); err == nil {
				claim.ClaimAmount = &amount
			}
		case field.Kind == gateway.KindU64 && field.FieldName == fieldClaimEpoch:
			if epoch, err := strconv.ParseUint(field.StringValue(), 10, 64); err == nil {
				claim.ClaimEpoch = &epoch
			}
		}
	}
}
