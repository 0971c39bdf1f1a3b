package gateway

import (
	"encoding/json"

	"github.com/openweb3-io/radixutils/types"
)

type AggregationLevel string

const (
	// AggregationGlobal reports one total per resource
	AggregationGlobal = AggregationLevel("Global")
	// AggregationVault reports every vault holding the resource
	AggregationVault = AggregationLevel("Vault")
)

// DetailsTypeComponent marks an entity that carries component state (validators, pools, accounts...)
const DetailsTypeComponent = "Component"

// Programmatic SBOR kinds read by this module
const (
	KindTuple   = "Tuple"
	KindDecimal = "Decimal"
	KindU64     = "U64"
	KindString  = "String"
)

// ErrorResponse is the body the gateway returns with every non-2xx status.
type ErrorResponse struct {
	Message string          `json:"message"`
	Code    *int            `json:"code,omitempty"`
	Details json.RawMessage `json:"details,omitempty"`
	TraceID string          `json:"trace_id,omitempty"`
}

// ---- entity details ----

type EntityDetailsOptIns struct {
	AncestorIdentities           bool     `json:"ancestor_identities,omitempty"`
	ComponentRoyaltyVaultBalance bool     `json:"component_royalty_vault_balance,omitempty"`
	NonFungibleIncludeNfids      bool     `json:"non_fungible_include_nfids,omitempty"`
	ExplicitMetadata             []string `json:"explicit_metadata,omitempty"`
}

type EntityDetailsRequest struct {
	AtLedgerState    *types.LedgerStateSelector `json:"at_ledger_state,omitempty"`
	OptIns           *EntityDetailsOptIns       `json:"opt_ins,omitempty"`
	Addresses        []string                   `json:"addresses"`
	AggregationLevel AggregationLevel           `json:"aggregation_level,omitempty"`
}

type EntityDetailsResponse struct {
	LedgerState types.LedgerState   `json:"ledger_state"`
	Items       []EntityDetailsItem `json:"items"`
}

type EntityDetailsItem struct {
	Address              string                          `json:"address"`
	FungibleResources    *FungibleResourcesCollection    `json:"fungible_resources,omitempty"`
	NonFungibleResources *NonFungibleResourcesCollection `json:"non_fungible_resources,omitempty"`
	Metadata             MetadataCollection              `json:"metadata"`
	Details              *EntityDetailsItemDetails       `json:"details,omitempty"`
}

// EntityDetailsItemDetails is a union keyed by Type. State is only present on components and is
// left raw since its shape depends on the blueprint.
type EntityDetailsItemDetails struct {
	Type             string          `json:"type"`
	PackageAddress   string          `json:"package_address,omitempty"`
	BlueprintName    string          `json:"blueprint_name,omitempty"`
	BlueprintVersion string          `json:"blueprint_version,omitempty"`
	State            json.RawMessage `json:"state,omitempty"`
}

// HasState reports whether the entity carries a non-null component state
func (d *EntityDetailsItemDetails) HasState() bool {
	if d == nil || len(d.State) == 0 {
		return false
	}
	return string(d.State) != "null"
}

// ---- metadata ----

type MetadataCollection struct {
	TotalCount *int64         `json:"total_count,omitempty"`
	NextCursor *string        `json:"next_cursor,omitempty"`
	Items      []MetadataItem `json:"items"`
}

type MetadataItem struct {
	Key                       string        `json:"key"`
	Value                     MetadataValue `json:"value"`
	IsLocked                  bool          `json:"is_locked"`
	LastUpdatedAtStateVersion int64         `json:"last_updated_at_state_version"`
}

type MetadataValue struct {
	RawHex string             `json:"raw_hex"`
	Typed  MetadataTypedValue `json:"typed"`
}

// MetadataTypedValue keeps the value raw: scalar kinds carry a string, array kinds carry "values".
type MetadataTypedValue struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// StringValue returns the value when it is a JSON string
func (v MetadataTypedValue) StringValue() (string, bool) {
	return rawString(v.Value)
}

// ---- fungibles ----

type FungibleResourcesCollection struct {
	TotalCount *int64                            `json:"total_count,omitempty"`
	NextCursor *string                           `json:"next_cursor,omitempty"`
	Items      []FungibleResourcesCollectionItem `json:"items"`
}

// FungibleResourcesCollectionItem is Global (Amount set) or Vault (Vaults set) depending on
// AggregationLevel.
type FungibleResourcesCollectionItem struct {
	AggregationLevel          AggregationLevel          `json:"aggregation_level"`
	ResourceAddress           string                    `json:"resource_address"`
	Amount                    types.Decimal             `json:"amount"`
	LastUpdatedAtStateVersion int64                     `json:"last_updated_at_state_version,omitempty"`
	Vaults                    *FungibleVaultsCollection `json:"vaults,omitempty"`
}

type FungibleVaultsCollection struct {
	TotalCount *int64              `json:"total_count,omitempty"`
	NextCursor *string             `json:"next_cursor,omitempty"`
	Items      []FungibleVaultItem `json:"items"`
}

type FungibleVaultItem struct {
	VaultAddress              string        `json:"vault_address"`
	Amount                    types.Decimal `json:"amount"`
	LastUpdatedAtStateVersion int64         `json:"last_updated_at_state_version"`
}

type EntityFungiblesPageOptIns struct {
	ExplicitMetadata []string `json:"explicit_metadata,omitempty"`
}

type EntityFungiblesPageRequest struct {
	AtLedgerState    *types.LedgerStateSelector `json:"at_ledger_state,omitempty"`
	Cursor           *string                    `json:"cursor,omitempty"`
	LimitPerPage     *int32                     `json:"limit_per_page,omitempty"`
	Address          string                     `json:"address"`
	AggregationLevel AggregationLevel           `json:"aggregation_level,omitempty"`
	OptIns           *EntityFungiblesPageOptIns `json:"opt_ins,omitempty"`
}

type EntityFungiblesPageResponse struct {
	LedgerState types.LedgerState                 `json:"ledger_state"`
	TotalCount  *int64                            `json:"total_count,omitempty"`
	NextCursor  *string                           `json:"next_cursor,omitempty"`
	Items       []FungibleResourcesCollectionItem `json:"items"`
	Address     string                            `json:"address"`
}

type EntityFungibleResourceVaultsPageRequest struct {
	AtLedgerState   *types.LedgerStateSelector `json:"at_ledger_state,omitempty"`
	Cursor          *string                    `json:"cursor,omitempty"`
	LimitPerPage    *int32                     `json:"limit_per_page,omitempty"`
	Address         string                     `json:"address"`
	ResourceAddress string                     `json:"resource_address"`
}

type EntityFungibleResourceVaultsPageResponse struct {
	LedgerState     types.LedgerState   `json:"ledger_state"`
	TotalCount      *int64              `json:"total_count,omitempty"`
	NextCursor      *string             `json:"next_cursor,omitempty"`
	Items           []FungibleVaultItem `json:"items"`
	Address         string              `json:"address"`
	ResourceAddress string              `json:"resource_address"`
}

// ---- non fungibles ----

type NonFungibleResourcesCollection struct {
	TotalCount *int64                               `json:"total_count,omitempty"`
	NextCursor *string                              `json:"next_cursor,omitempty"`
	Items      []NonFungibleResourcesCollectionItem `json:"items"`
}

type NonFungibleResourcesCollectionItem struct {
	AggregationLevel          AggregationLevel             `json:"aggregation_level"`
	ResourceAddress           string                       `json:"resource_address"`
	Amount                    int64                        `json:"amount,omitempty"`
	LastUpdatedAtStateVersion int64                        `json:"last_updated_at_state_version,omitempty"`
	Vaults                    *NonFungibleVaultsCollection `json:"vaults,omitempty"`
}

type NonFungibleVaultsCollection struct {
	TotalCount *int64                 `json:"total_count,omitempty"`
	NextCursor *string                `json:"next_cursor,omitempty"`
	Items      []NonFungibleVaultItem `json:"items"`
}

// NonFungibleVaultItem lists ids only when non_fungible_include_nfids was opted in.
type NonFungibleVaultItem struct {
	VaultAddress              string   `json:"vault_address"`
	TotalCount                int64    `json:"total_count"`
	NextCursor                *string  `json:"next_cursor,omitempty"`
	Items                     []string `json:"items,omitempty"`
	LastUpdatedAtStateVersion int64    `json:"last_updated_at_state_version"`
}

type EntityNonFungiblesPageOptIns struct {
	NonFungibleIncludeNfids bool     `json:"non_fungible_include_nfids,omitempty"`
	ExplicitMetadata        []string `json:"explicit_metadata,omitempty"`
}

type EntityNonFungiblesPageRequest struct {
	AtLedgerState    *types.LedgerStateSelector    `json:"at_ledger_state,omitempty"`
	Cursor           *string                       `json:"cursor,omitempty"`
	LimitPerPage     *int32                        `json:"limit_per_page,omitempty"`
	Address          string                        `json:"address"`
	AggregationLevel AggregationLevel              `json:"aggregation_level,omitempty"`
	OptIns           *EntityNonFungiblesPageOptIns `json:"opt_ins,omitempty"`
}

type EntityNonFungiblesPageResponse struct {
	LedgerState types.LedgerState                    `json:"ledger_state"`
	TotalCount  *int64                               `json:"total_count,omitempty"`
	NextCursor  *string                              `json:"next_cursor,omitempty"`
	Items       []NonFungibleResourcesCollectionItem `json:"items"`
	Address     string                               `json:"address"`
}

type NonFungibleDataRequest struct {
	AtLedgerState   *types.LedgerStateSelector `json:"at_ledger_state,omitempty"`
	ResourceAddress string                     `json:"resource_address"`
	NonFungibleIDs  []string                   `json:"non_fungible_ids"`
}

type NonFungibleDataResponse struct {
	LedgerState       types.LedgerState     `json:"ledger_state"`
	ResourceAddress   string                `json:"resource_address"`
	NonFungibleIDType string                `json:"non_fungible_id_type"`
	NonFungibleIDs    []NonFungibleDataItem `json:"non_fungible_ids"`
}

type NonFungibleDataItem struct {
	IsBurned                  bool              `json:"is_burned"`
	NonFungibleID             string            `json:"non_fungible_id"`
	Data                      *ScryptoSborValue `json:"data,omitempty"`
	LastUpdatedAtStateVersion int64             `json:"last_updated_at_state_version"`
}

// ---- transactions ----

type TransactionDetailsOptIns struct {
	RawHex                 bool `json:"raw_hex,omitempty"`
	ReceiptEvents          bool `json:"receipt_events,omitempty"`
	AffectedGlobalEntities bool `json:"affected_global_entities,omitempty"`
	BalanceChanges         bool `json:"balance_changes,omitempty"`
	DetailedEvents         bool `json:"detailed_events,omitempty"`
}

type TransactionCommittedDetailsRequest struct {
	AtLedgerState *types.LedgerStateSelector `json:"at_ledger_state,omitempty"`
	IntentHash    string                     `json:"intent_hash"`
	OptIns        *TransactionDetailsOptIns  `json:"opt_ins,omitempty"`
}

type TransactionCommittedDetailsResponse struct {
	LedgerState types.LedgerState        `json:"ledger_state"`
	Transaction CommittedTransactionInfo `json:"transaction"`
}

type CommittedTransactionInfo struct {
	StateVersion      int64               `json:"state_version"`
	Epoch             int64               `json:"epoch"`
	Round             int64               `json:"round"`
	TransactionStatus string              `json:"transaction_status"`
	IntentHash        *string             `json:"intent_hash,omitempty"`
	ConfirmedAt       *string             `json:"confirmed_at,omitempty"`
	Receipt           *TransactionReceipt `json:"receipt,omitempty"`
}

// TransactionReceipt distinguishes a missing detailed_events list (nil) from an empty one.
type TransactionReceipt struct {
	Status         string          `json:"status,omitempty"`
	ErrorMessage   *string         `json:"error_message,omitempty"`
	DetailedEvents []DetailedEvent `json:"detailed_events,omitempty"`
}

type DetailedEvent struct {
	Identifier DetailedEventIdentifier `json:"identifier"`
	Emitter    json.RawMessage         `json:"emitter,omitempty"`
	Payload    ScryptoSborValue        `json:"payload"`
}

type DetailedEventIdentifier struct {
	Event   string `json:"event"`
	Module  string `json:"module,omitempty"`
	Package string `json:"package,omitempty"`
}

type ScryptoSborValue struct {
	RawHex           string            `json:"raw_hex,omitempty"`
	ProgrammaticJSON ProgrammaticValue `json:"programmatic_json"`
}

// ProgrammaticValue is a programmatic SBOR node. Composite kinds (Tuple, Enum) carry Fields,
// scalar kinds carry Value.
type ProgrammaticValue struct {
	Kind        string              `json:"kind"`
	TypeName    string              `json:"type_name,omitempty"`
	FieldName   string              `json:"field_name,omitempty"`
	Value       json.RawMessage     `json:"value,omitempty"`
	VariantID   string              `json:"variant_id,omitempty"`
	VariantName string              `json:"variant_name,omitempty"`
	Fields      []ProgrammaticValue `json:"fields,omitempty"`
	Elements    []ProgrammaticValue `json:"elements,omitempty"`
}

// StringValue renders a scalar value as text: strings are unquoted, other JSON literals are
// returned as written. Composite nodes have no value and return "".
func (v ProgrammaticValue) StringValue() string {
	if s, ok := rawString(v.Value); ok {
		return s
	}
	if len(v.Value) == 0 || string(v.Value) == "null" {
		return ""
	}
	return string(v.Value)
}

func rawString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || raw[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
