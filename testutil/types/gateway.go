package testutil

import (
	"encoding/json"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/types"
)

// Builders for gateway responses used across tests

func Ledger(stateVersion int64, epoch int64) types.LedgerState {
	return types.LedgerState{
		Network:      "mainnet",
		StateVersion: stateVersion,
		Epoch:        epoch,
	}
}

func FungiblesPage(stateVersion int64, nextCursor *string, items ...gateway.FungibleResourcesCollectionItem) *gateway.EntityFungiblesPageResponse {
	return &gateway.EntityFungiblesPageResponse{
		LedgerState: Ledger(stateVersion, 1),
		NextCursor:  nextCursor,
		Items:       items,
	}
}

func GlobalFungible(resource string, amount string) gateway.FungibleResourcesCollectionItem {
	return gateway.FungibleResourcesCollectionItem{
		AggregationLevel: gateway.AggregationGlobal,
		ResourceAddress:  resource,
		Amount:           Dec(amount),
	}
}

func VaultFungible(resource string, vaults ...gateway.FungibleVaultItem) gateway.FungibleResourcesCollectionItem {
	return gateway.FungibleResourcesCollectionItem{
		AggregationLevel: gateway.AggregationVault,
		ResourceAddress:  resource,
		Vaults:           &gateway.FungibleVaultsCollection{Items: vaults},
	}
}

func Vault(address string, amount string) gateway.FungibleVaultItem {
	return gateway.FungibleVaultItem{VaultAddress: address, Amount: Dec(amount)}
}

func NonFungiblesPage(stateVersion int64, nextCursor *string, items ...gateway.NonFungibleResourcesCollectionItem) *gateway.EntityNonFungiblesPageResponse {
	return &gateway.EntityNonFungiblesPageResponse{
		LedgerState: Ledger(stateVersion, 1),
		NextCursor:  nextCursor,
		Items:       items,
	}
}

func VaultNonFungible(resource string, ids ...string) gateway.NonFungibleResourcesCollectionItem {
	return gateway.NonFungibleResourcesCollectionItem{
		AggregationLevel: gateway.AggregationVault,
		ResourceAddress:  resource,
		Vaults: &gateway.NonFungibleVaultsCollection{Items: []gateway.NonFungibleVaultItem{{
			VaultAddress: "internal_vault_rdx1" + resource,
			TotalCount:   int64(len(ids)),
			Items:        ids,
		}}},
	}
}

func ResourceVaultsPage(account string, resource string, vaults ...gateway.FungibleVaultItem) *gateway.EntityFungibleResourceVaultsPageResponse {
	return &gateway.EntityFungibleResourceVaultsPageResponse{
		LedgerState:     Ledger(1, 1),
		Items:           vaults,
		Address:         account,
		ResourceAddress: resource,
	}
}

func Field(kind string, name string, value string) gateway.ProgrammaticValue {
	raw, _ := json.Marshal(value)
	return gateway.ProgrammaticValue{Kind: kind, FieldName: name, Value: raw}
}

func Tuple(fields ...gateway.ProgrammaticValue) gateway.ProgrammaticValue {
	return gateway.ProgrammaticValue{Kind: gateway.KindTuple, Fields: fields}
}

func NonFungibleData(id string, data gateway.ProgrammaticValue) gateway.NonFungibleDataItem {
	return gateway.NonFungibleDataItem{
		NonFungibleID: id,
		Data:          &gateway.ScryptoSborValue{ProgrammaticJSON: data},
	}
}

func Event(name string, fields ...gateway.ProgrammaticValue) gateway.DetailedEvent {
	return gateway.DetailedEvent{
		Identifier: gateway.DetailedEventIdentifier{Event: name},
		Payload:    gateway.ScryptoSborValue{ProgrammaticJSON: Tuple(fields...)},
	}
}

// MetadataString builds a metadata entry of the given typed kind holding a string
func MetadataString(key string, kind string, value string) gateway.MetadataItem {
	raw, _ := json.Marshal(value)
	return gateway.MetadataItem{
		Key: key,
		Value: gateway.MetadataValue{
			Typed: gateway.MetadataTypedValue{Type: kind, Value: raw},
		},
	}
}

// ComponentDetails wraps a state object as the details of a component entity
func ComponentDetails(state any) *gateway.EntityDetailsItemDetails {
	raw, err := json.Marshal(state)
	if err != nil {
		panic(err)
	}
	return &gateway.EntityDetailsItemDetails{
		Type:          gateway.DetailsTypeComponent,
		BlueprintName: "Validator",
		State:         raw,
	}
}
