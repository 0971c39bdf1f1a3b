package radix_test

import (
	"context"
	"errors"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	testutil "github.com/openweb3-io/radixutils/testutil/types"
	"github.com/openweb3-io/radixutils/types"
)

func validatorState() map[string]any {
	return map[string]any{
		"stake_xrd_vault":                       map[string]any{"entity_address": "internal_vault_rdx1stake"},
		"pending_xrd_withdraw_vault":            map[string]any{"entity_address": "internal_vault_rdx1leaving"},
		"locked_owner_stake_unit_vault":         map[string]any{"entity_address": "internal_vault_rdx1locked"},
		"pending_owner_stake_unit_unlock_vault": map[string]any{"entity_address": "internal_vault_rdx1unlocking"},
		"pending_owner_stake_unit_withdrawals": []any{
			map[string]any{"epoch_unlocked": 900, "stake_unit_amount": "10.5"},
			map[string]any{"epoch_unlocked": 1100, "stake_unit_amount": "20"},
			map[string]any{"epoch_unlocked": 1000, "stake_unit_amount": "4.5"},
			map[string]any{"epoch_unlocked": 1200, "stake_unit_amount": "0.000000000000000001"},
		},
		"already_unlocked_owner_stake_unit_amount": "100",
		"stake_unit_resource_address":              "resource_rdx1lsu",
		"validator_fee_factor":                     "0.05",
		"validator_fee_change_request":             nil,
	}
}

func validatorDetails(epoch int64, state map[string]any) *gateway.EntityDetailsResponse {
	return &gateway.EntityDetailsResponse{
		LedgerState: testutil.Ledger(5000, epoch),
		Items: []gateway.EntityDetailsItem{{
			Address: validatorAddress,
			Metadata: gateway.MetadataCollection{Items: []gateway.MetadataItem{
				testutil.MetadataString("name", "String", "Radix Node"),
				testutil.MetadataString("info_url", "Url", "https://example.com"),
				testutil.MetadataString("owner_badge", "NonFungibleLocalId", "[abc]"),
				testutil.MetadataString("pool_unit", "GlobalAddress", "resource_rdx1lsu"),
				testutil.MetadataString("decimals", "U8", "18"),
				{Key: "tags", Value: gateway.MetadataValue{Typed: gateway.MetadataTypedValue{Type: "StringArray"}}},
			}},
			FungibleResources: &gateway.FungibleResourcesCollection{Items: []gateway.FungibleResourcesCollectionItem{
				testutil.VaultFungible("resource_rdx1xrd",
					testutil.Vault("internal_vault_rdx1stake", "1000000.123456789012345678"),
					testutil.Vault("internal_vault_rdx1leaving", "250"),
				),
				testutil.VaultFungible("resource_rdx1lsu",
					testutil.Vault("internal_vault_rdx1locked", "42"),
				),
				testutil.GlobalFungible("resource_rdx1other", "7"),
			}},
			Details: testutil.ComponentDetails(state),
		}},
	}
}

func (s *ClientTestSuite) expectValidatorDetails(resp *gateway.EntityDetailsResponse) {
	s.gateway.EXPECT().
		EntityDetails(gomock.Any(), &gateway.EntityDetailsRequest{
			Addresses:        []string{validatorAddress},
			AggregationLevel: gateway.AggregationVault,
		}).
		Return(resp, nil)
}

func (s *ClientTestSuite) TestValidatorInfo() {
	require := s.Require()
	s.expectValidatorDetails(validatorDetails(1000, validatorState()))

	info := s.client.FetchValidatorInfo(context.Background(), validatorAddress)
	require.NotNil(info)

	require.Equal(validatorAddress, info.ValidatorAddress)
	require.EqualValues(1000, info.Epoch)
	require.Equal("resource_rdx1lsu", info.StakeUnitAddress)
	require.Equal(client.ValidatorVaults{
		CurrentlyEarnedLSUVault: "internal_vault_rdx1locked",
		OwnerUnlockingLSUVault:  "internal_vault_rdx1unlocking",
		TotalStakedXRDVault:     "internal_vault_rdx1stake",
		UnstakingXRDVault:       "internal_vault_rdx1leaving",
	}, info.Vaults)
	require.Equal(map[string]string{
		"name":        "Radix Node",
		"info_url":    "https://example.com",
		"owner_badge": "[abc]",
		"pool_unit":   "resource_rdx1lsu",
	}, info.Metadata)

	s.requireDecimal("1000000.123456789012345678", info.TotalStakedXRDs)
	s.requireDecimal("250", info.TotalXRDsLeavingNode)
	s.requireDecimal("42", info.CurrentlyEarnedLockedLSUs)

	// 10.5 and 4.5 are unlocked at epoch 1000, plus the already unlocked 100
	s.requireDecimal("115", info.UnlockedLSUs)
	s.requireDecimal("20.000000000000000001", info.OwnerLSUsInUnlockingProcess)
	require.Len(info.UnlockingLSUsBreakdown, 2)
	require.EqualValues(1100, info.UnlockingLSUsBreakdown[0].EpochUnlocked)
	require.EqualValues(1200, info.UnlockingLSUsBreakdown[1].EpochUnlocked)
	for _, w := range info.UnlockingLSUsBreakdown {
		require.Greater(w.EpochUnlocked, info.Epoch)
	}

	require.Equal(client.FeeFactor{Current: "5.00%"}, info.Fees)
}

func (s *ClientTestSuite) TestValidatorInfoWithPendingFeeChange() {
	require := s.Require()
	state := validatorState()
	state["validator_fee_change_request"] = map[string]any{"new_fee_factor": "0.03", "epoch_effective": 1012}
	s.expectValidatorDetails(validatorDetails(1000, state))

	info := s.client.FetchValidatorInfo(context.Background(), validatorAddress)
	require.NotNil(info)
	require.Equal(client.FeeFactor{
		Current:       "5.00%",
		AboutToChange: &client.NewFeeFactor{NewFeeFactor: "3.00%", EpochEffective: 1012},
		Alert:         "Fee will be changed to 3.00% on 01/03/2024, 1:00 pm",
	}, info.Fees)
}

func (s *ClientTestSuite) TestValidatorInfoWithSparseState() {
	require := s.Require()
	s.expectValidatorDetails(validatorDetails(1000, map[string]any{
		"stake_xrd_vault":                      "not an object",
		"pending_owner_stake_unit_withdrawals": "not a list",
	}))

	lookup := s.client.LookupValidator(context.Background(), validatorAddress)
	require.Equal(client.ValidatorFound, lookup.Status)
	info := lookup.Info
	require.Equal(client.ValidatorVaults{}, info.Vaults)
	require.Empty(info.UnlockingLSUsBreakdown)
	require.NotNil(info.UnlockingLSUsBreakdown)
	require.True(info.UnlockedLSUs.IsZero())
	require.True(info.TotalStakedXRDs.IsZero())
	require.Equal(client.FeeFactor{}, info.Fees)
}

func (s *ClientTestSuite) TestValidatorNotFound() {
	require := s.Require()
	ctx := context.Background()

	for _, addr := range []string{"", "account_rdx1abc", "resource_rdx1abc"} {
		require.Nil(s.client.FetchValidatorInfo(ctx, addr), addr)
		require.Equal(client.ValidatorNotFound, s.client.LookupValidator(ctx, addr).Status, addr)
	}

	s.expectValidatorDetails(&gateway.EntityDetailsResponse{LedgerState: testutil.Ledger(1, 1)})
	require.Nil(s.client.FetchValidatorInfo(ctx, validatorAddress))

	notComponent := validatorDetails(1000, validatorState())
	notComponent.Items[0].Details.Type = "FungibleResource"
	s.expectValidatorDetails(notComponent)
	require.Nil(s.client.FetchValidatorInfo(ctx, validatorAddress))

	stateless := validatorDetails(1000, validatorState())
	stateless.Items[0].Details.State = nil
	s.expectValidatorDetails(stateless)
	lookup := s.client.LookupValidator(ctx, validatorAddress)
	require.Equal(client.ValidatorNotFound, lookup.Status)
	require.Nil(lookup.Info)
	require.NoError(lookup.Err)

	notAnObject := validatorDetails(1000, validatorState())
	notAnObject.Items[0].Details = testutil.ComponentDetails([]int{1, 2})
	s.expectValidatorDetails(notAnObject)
	require.Equal(client.ValidatorNotFound, s.client.LookupValidator(ctx, validatorAddress).Status)
}

func (s *ClientTestSuite) TestValidatorUnavailable() {
	require := s.Require()
	ctx := context.Background()
	failure := types.WrapErr(types.ErrGateway, errors.New("connection reset"))

	s.gateway.EXPECT().EntityDetails(gomock.Any(), gomock.Any()).Return(nil, failure).Times(2)

	require.Nil(s.client.FetchValidatorInfo(ctx, validatorAddress))

	lookup := s.client.LookupValidator(ctx, validatorAddress)
	require.Equal(client.ValidatorUnavailable, lookup.Status)
	require.Nil(lookup.Info)
	require.ErrorIs(lookup.Err, types.ErrGateway)
}
