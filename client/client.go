package client

import (
	"context"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/types"
)

type WalletClient interface {
	// Fetch every fungible and non-fungible balance of an account, walking all pages
	FetchWalletBalances(ctx context.Context, address string, selector *types.LedgerStateSelector) (*WalletBalances, error)

	// Fetch how much of one resource each account holds, and the total
	CheckResourceInUsersFungibleAssets(ctx context.Context, accounts []string, resource string, selector *types.LedgerStateSelector) (*ResourceCheckResult, error)
}

type ValidatorClient interface {
	// Best effort: nil whenever the validator could not be read, for any reason
	FetchValidatorInfo(ctx context.Context, address string) *ValidatorInfo

	// Same as FetchValidatorInfo but tells absence apart from a failed fetch
	LookupValidator(ctx context.Context, address string) ValidatorLookup

	// Fetch claim amount and epoch of unstake-claim NFTs, keyed by NFT id
	FetchUnstakeClaimNFTData(ctx context.Context, claimResource string, ids []string) (UnstakeClaimNFTData, error)
}

type TransactionClient interface {
	GetEventFromTransaction(ctx context.Context, intentHash string, eventName string) (*gateway.DetailedEvent, error)

	GetEventKeyValuesFromTransaction(ctx context.Context, intentHash string, eventName string) (map[string]string, error)
}

type FeeClient interface {
	ComputeValidatorFeeFactor(current string, pending *NewFeeFactor, currentEpoch int64) FeeFactor

	// Estimate the wall clock date of an epoch, relative to now
	EstimateEpochDate(targetEpoch int64, currentEpoch int64) string
}
