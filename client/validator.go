package client

import (
	"github.com/openweb3-io/radixutils/types"
)

type NewFeeFactor struct {
	NewFeeFactor   string `json:"new_fee_factor" yaml:"new_fee_factor"`
	EpochEffective int64  `json:"epoch_effective" yaml:"epoch_effective"`
}

// FeeFactor is rendered as percentages. AboutToChange is only set while the pending change is
// still in the future.
type FeeFactor struct {
	Current       string        `json:"current" yaml:"current"`
	AboutToChange *NewFeeFactor `json:"aboutToChange" yaml:"aboutToChange"`
	Alert         string        `json:"alert" yaml:"alert"`
}

type UnlockingReward struct {
	EpochUnlocked   int64         `json:"epoch_unlocked" yaml:"epoch_unlocked"`
	StakeUnitAmount types.Decimal `json:"stake_unit_amount" yaml:"stake_unit_amount"`
}

type ValidatorVaults struct {
	CurrentlyEarnedLSUVault string `json:"NODE_CURRENTLY_EARNED_LSU_VAULT_ADDRESS" yaml:"NODE_CURRENTLY_EARNED_LSU_VAULT_ADDRESS"`
	OwnerUnlockingLSUVault  string `json:"NODE_OWNER_UNLOCKING_LSU_VAULT_ADDRESS" yaml:"NODE_OWNER_UNLOCKING_LSU_VAULT_ADDRESS"`
	TotalStakedXRDVault     string `json:"NODE_TOTAL_STAKED_XRD_VAULT_ADDRESS" yaml:"NODE_TOTAL_STAKED_XRD_VAULT_ADDRESS"`
	UnstakingXRDVault       string `json:"NODE_UNSTAKING_XRD_VAULT_ADDRESS" yaml:"NODE_UNSTAKING_XRD_VAULT_ADDRESS"`
}

type ValidatorInfo struct {
	CurrentlyEarnedLockedLSUs   types.Decimal     `json:"currentlyEarnedLockedLSUs" yaml:"currentlyEarnedLockedLSUs"`
	OwnerLSUsInUnlockingProcess types.Decimal     `json:"ownerLSUsInUnlockingProcess" yaml:"ownerLSUsInUnlockingProcess"`
	TotalStakedXRDs             types.Decimal     `json:"totalStakedXrds" yaml:"totalStakedXrds"`
	TotalXRDsLeavingNode        types.Decimal     `json:"totalXrdsLeavingOurNode" yaml:"totalXrdsLeavingOurNode"`
	UnlockingLSUsBreakdown      []UnlockingReward `json:"unlockingLSUsBreakdown" yaml:"unlockingLSUsBreakdown"`
	Epoch                       int64             `json:"epoch" yaml:"epoch"`
	UnlockedLSUs                types.Decimal     `json:"unlockedLSUs" yaml:"unlockedLSUs"`
	Metadata                    map[string]string `json:"metadata" yaml:"metadata"`
	StakeUnitAddress            string            `json:"stakeUnitAddress" yaml:"stakeUnitAddress"`
	Vaults                      ValidatorVaults   `json:"vaults" yaml:"vaults"`
	ValidatorAddress            string            `json:"validatorAddress" yaml:"validatorAddress"`
	Fees                        FeeFactor         `json:"fees" yaml:"fees"`
}

type ValidatorStatus string

const (
	ValidatorFound ValidatorStatus = "found"
	// the address is malformed, unknown, or not a component with state
	ValidatorNotFound ValidatorStatus = "not_found"
	// the gateway could not be read; retrying may succeed
	ValidatorUnavailable ValidatorStatus = "unavailable"
)

// ValidatorLookup is the outcome of reading a validator. Info is set only when Found, Err only
// when Unavailable.
type ValidatorLookup struct {
	Status ValidatorStatus
	Info   *ValidatorInfo
	Err    error
}

func NewValidatorFound(info *ValidatorInfo) ValidatorLookup {
	return ValidatorLookup{Status: ValidatorFound, Info: info}
}

func NewValidatorNotFound() ValidatorLookup {
	return ValidatorLookup{Status: ValidatorNotFound}
}

func NewValidatorUnavailable(err error) ValidatorLookup {
	return ValidatorLookup{Status: ValidatorUnavailable, Err: err}
}

type UnstakeClaimNFT struct {
	NFTID       string         `json:"nftId" yaml:"nftId"`
	ClaimAmount *types.Decimal `json:"claim_amount,omitempty" yaml:"claim_amount,omitempty"`
	ClaimEpoch  *uint64        `json:"claim_epoch,omitempty" yaml:"claim_epoch,omitempty"`
}

// UnstakeClaimNFTData is keyed by non-fungible id
type UnstakeClaimNFTData map[string]UnstakeClaimNFT
