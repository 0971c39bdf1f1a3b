package radix

import (
	"context"
	"encoding/json"

	"github.com/openweb3-io/radixutils/blockchain/radix/address"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
)

// validator component state fields
const (
	fieldStakeXRDVault                = "stake_xrd_vault"
	fieldPendingXRDWithdrawVault      = "pending_xrd_withdraw_vault"
	fieldLockedOwnerStakeUnitVault    = "locked_owner_stake_unit_vault"
	fieldPendingOwnerStakeUnlockVault = "pending_owner_stake_unit_unlock_vault"
	fieldPendingOwnerWithdrawals      = "pending_owner_stake_unit_withdrawals"
	fieldAlreadyUnlockedOwnerAmount   = "already_unlocked_owner_stake_unit_amount"
	fieldStakeUnitResourceAddress     = "stake_unit_resource_address"
	fieldValidatorFeeFactor           = "validator_fee_factor"
	fieldValidatorFeeChangeRequest    = "validator_fee_change_request"
)

// metadata kinds that hold a single string
var scalarMetadataTypes = map[string]bool{
	"String":             true,
	"Url":                true,
	"GlobalAddress":      true,
	"NonFungibleLocalId": true,
}

// FetchValidatorInfo returns nil when the validator cannot be read, whatever the reason.
// Fetch failures are logged; use LookupValidator to act on them.
func (c *Client) FetchValidatorInfo(ctx context.Context, validatorAddress string) *client.ValidatorInfo {
	lookup := c.LookupValidator(ctx, validatorAddress)
	if lookup.Status == client.ValidatorUnavailable {
		c.logger.WithError(lookup.Err).WithField("validator", validatorAddress).Warn("failed to fetch validator info")
	}
	return lookup.Info
}

func (c *Client) LookupValidator(ctx context.Context, validatorAddress string) client.ValidatorLookup {
	if !address.IsValidator(validatorAddress) {
		return client.NewValidatorNotFound()
	}

	resp, err := c.gateway.EntityDetails(ctx, &gateway.EntityDetailsRequest{
		Addresses:        []string{validatorAddress},
		AggregationLevel: gateway.AggregationVault,
	})
	if err != nil {
		return client.NewValidatorUnavailable(errors.Wrapf(err, "fetching validator %s", validatorAddress))
	}
	if len(resp.Items) == 0 {
		return client.NewValidatorNotFound()
	}

	item := resp.Items[0]
	if item.Details == nil || item.Details.Type != gateway.DetailsTypeComponent || !item.Details.HasState() {
		return client.NewValidatorNotFound()
	}
	state := validatorState{}
	if err := json.Unmarshal(item.Details.State, &state); err != nil {
		c.logger.WithError(err).WithField("validator", validatorAddress).Debug("validator state is not an object")
		return client.NewValidatorNotFound()
	}

	epoch := resp.LedgerState.Epoch
	vaults := state.vaults()
	balances := vaultBalances(item.FungibleResources)

	locked, unlocked, unlocking := partitionWithdrawals(state.withdrawals(), epoch)
	if amount, ok := state.decimal(fieldAlreadyUnlockedOwnerAmount); ok {
		unlocked = unlocked.Add(amount)
	}
	stakeUnitAddress, _ := state.text(fieldStakeUnitResourceAddress)

	fees := client.FeeFactor{}
	if feeFactor, ok := state.text(fieldValidatorFeeFactor); ok {
		fees = c.ComputeValidatorFeeFactor(feeFactor, state.feeChangeRequest(), epoch)
	}

	return client.NewValidatorFound(&client.ValidatorInfo{
		CurrentlyEarnedLockedLSUs:   balanceOf(balances, vaults.CurrentlyEarnedLSUVault),
		OwnerLSUsInUnlockingProcess: unlocking,
		TotalStakedXRDs:             balanceOf(balances, vaults.TotalStakedXRDVault),
		TotalXRDsLeavingNode:        balanceOf(balances, vaults.UnstakingXRDVault),
		UnlockingLSUsBreakdown:      locked,
		Epoch:                       epoch,
		UnlockedLSUs:                unlocked,
		Metadata:                    extractMetadata(item.Metadata),
		StakeUnitAddress:            stakeUnitAddress,
		Vaults:                      vaults,
		ValidatorAddress:            validatorAddress,
		Fees:                        fees,
	})
}

// partitionWithdrawals splits pending owner withdrawals into those still locked at epoch and
// the summed amounts of both sides. Order of the locked ones is kept.
func partitionWithdrawals(withdrawals []client.UnlockingReward, epoch int64) (locked []client.UnlockingReward, unlocked types.Decimal, unlocking types.Decimal) {
	locked = []client.UnlockingReward{}
	unlocked = types.ZeroDecimal
	unlocking = types.ZeroDecimal
	for _, withdrawal := range withdrawals {
		if withdrawal.EpochUnlocked <= epoch {
			unlocked = unlocked.Add(withdrawal.StakeUnitAmount)
			continue
		}
		unlocking = unlocking.Add(withdrawal.StakeUnitAmount)
		locked = append(locked, withdrawal)
	}
	return locked, unlocked, unlocking
}

func extractMetadata(metadata gateway.MetadataCollection) map[string]string {
	extracted := map[string]string{}
	for _, item := range metadata.Items {
		if !scalarMetadataTypes[item.Value.Typed.Type] {
			continue
		}
		if value, ok := item.Value.Typed.StringValue(); ok {
			extracted[item.Key] = value
		}
	}
	return extracted
}

func vaultBalances(resources *gateway.FungibleResourcesCollection) map[string]types.Decimal {
	balances := map[string]types.Decimal{}
	if resources == nil {
		return balances
	}
	for _, resource := range resources.Items {
		if resource.AggregationLevel != gateway.AggregationVault || resource.Vaults == nil {
			continue
		}
		for _, vault := range resource.Vaults.Items {
			balances[vault.VaultAddress] = vault.Amount
		}
	}
	return balances
}

func balanceOf(balances map[string]types.Decimal, vaultAddress string) types.Decimal {
	if amount, ok := balances[vaultAddress]; ok {
		return amount
	}
	return types.ZeroDecimal
}

// validatorState is the validator component state, read field by field so an unexpected shape
// of one field only drops that field.
type validatorState map[string]json.RawMessage

func (s validatorState) text(field string) (string, bool) {
	raw, ok := s[field]
	if !ok {
		return "", false
	}
	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}
	return value, true
}

func (s validatorState) decimal(field string) (types.Decimal, bool) {
	value, ok := s.text(field)
	if !ok {
		return types.ZeroDecimal, false
	}
	dec, err := types.NewDecimalFromStr(value)
	if err != nil {
		return types.ZeroDecimal, false
	}
	return dec, true
}

func (s validatorState) vaultAddress(field string) string {
	raw, ok := s[field]
	if !ok {
		return ""
	}
	var vault struct {
		EntityAddress string `json:"entity_address"`
	}
	if err := json.Unmarshal(raw, &vault); err != nil {
		return ""
	}
	return vault.EntityAddress
}

func (s validatorState) vaults() client.ValidatorVaults {
	return client.ValidatorVaults{
		CurrentlyEarnedLSUVault: s.vaultAddress(fieldLockedOwnerStakeUnitVault),
		OwnerUnlockingLSUVault:  s.vaultAddress(fieldPendingOwnerStakeUnlockVault),
		TotalStakedXRDVault:     s.vaultAddress(fieldStakeXRDVault),
		UnstakingXRDVault:       s.vaultAddress(fieldPendingXRDWithdrawVault),
	}
}

func (s validatorState) withdrawals() []client.UnlockingReward {
	raw, ok := s[fieldPendingOwnerWithdrawals]
	if !ok {
		return nil
	}
	var withdrawals []client.UnlockingReward
	if err := json.Unmarshal(raw, &withdrawals); err != nil {
		return nil
	}
	return withdrawals
}

// feeChangeRequest is nil when the field is absent, null or malformed
func (s validatorState) feeChangeRequest() *client.NewFeeFactor {
	raw, ok := s[fieldValidatorFeeChangeRequest]
	if !ok {
		return nil
	}
	var request *client.NewFeeFactor
	if err := json.Unmarshal(raw, &request); err != nil {
		return nil
	}
	return request
}
