package gateway

import (
	"context"
)

//go:generate mockgen -destination=mock/gateway_mock.go -package=mock . Gateway

// Gateway is the subset of the Babylon Gateway API this module reads from.
// Implementations must be safe for concurrent use.
type Gateway interface {
	// EntityDetails POST /state/entity/details
	EntityDetails(ctx context.Context, req *EntityDetailsRequest) (*EntityDetailsResponse, error)
	// EntityFungiblesPage POST /state/entity/page/fungibles/
	EntityFungiblesPage(ctx context.Context, req *EntityFungiblesPageRequest) (*EntityFungiblesPageResponse, error)
	// EntityNonFungiblesPage POST /state/entity/page/non-fungibles/
	EntityNonFungiblesPage(ctx context.Context, req *EntityNonFungiblesPageRequest) (*EntityNonFungiblesPageResponse, error)
	// EntityFungibleResourceVaultPage POST /state/entity/page/fungible-vaults/
	EntityFungibleResourceVaultPage(ctx context.Context, req *EntityFungibleResourceVaultsPageRequest) (*EntityFungibleResourceVaultsPageResponse, error)
	// NonFungibleData POST /state/non-fungible/data
	NonFungibleData(ctx context.Context, req *NonFungibleDataRequest) (*NonFungibleDataResponse, error)
	// TransactionCommittedDetails POST /transaction/committed-details
	TransactionCommittedDetails(ctx context.Context, req *TransactionCommittedDetailsRequest) (*TransactionCommittedDetailsResponse, error)
}

// Endpoint paths relative to the gateway base url
const (
	PathEntityDetails               = "state/entity/details"
	PathEntityFungiblesPage         = "state/entity/page/fungibles/"
	PathEntityNonFungiblesPage      = "state/entity/page/non-fungibles/"
	PathEntityFungibleVaultsPage    = "state/entity/page/fungible-vaults/"
	PathNonFungibleData             = "state/non-fungible/data"
	PathTransactionCommittedDetails = "transaction/committed-details"
)
