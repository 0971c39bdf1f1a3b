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

func (s *ClientTestSuite) singleNonFungiblePage(items ...gateway.NonFungibleResourcesCollectionItem) {
	s.gateway.EXPECT().
		EntityNonFungiblesPage(gomock.Any(), gomock.Any()).
		Return(testutil.NonFungiblesPage(100, nil, items...), nil)
}

func (s *ClientTestSuite) TestWalletBalancesFiltersAndKeysByResource() {
	require := s.Require()
	s.gateway.EXPECT().
		EntityFungiblesPage(gomock.Any(), gomock.Any()).
		Return(testutil.FungiblesPage(100, nil,
			testutil.GlobalFungible("resource_rdx123", "1000.5"),
			testutil.GlobalFungible("resource_rdx456", "0"),
			testutil.VaultFungible("resource_rdx789", testutil.Vault("internal_vault_rdx1a", "7")),
		), nil)
	s.singleNonFungiblePage(
		testutil.VaultNonFungible("resource_rdx1nft", "#1#", "#2#", "#3#"),
		testutil.VaultNonFungible("resource_rdx1empty"),
		gateway.NonFungibleResourcesCollectionItem{
			AggregationLevel: gateway.AggregationGlobal,
			ResourceAddress:  "resource_rdx1global",
			Amount:           3,
		},
	)

	balances, err := s.client.FetchWalletBalances(context.Background(), accountAddress, nil)
	require.NoError(err)

	require.Len(balances.Fungible, 1)
	fungible := balances.Fungible["resource_rdx123"]
	require.Equal("resource_rdx123", fungible.TokenAddress)
	require.Equal("1000.5", fungible.Amount.String())

	require.Equal(map[string]client.NonFungibleBalance{
		"resource_rdx1nft": {
			CollectionAddress: "resource_rdx1nft",
			IDs:               []string{"#1#", "#2#", "#3#"},
		},
	}, balances.NonFungible)
}

func (s *ClientTestSuite) TestWalletBalancesWalksEveryPage() {
	require := s.Require()
	var requests []*gateway.EntityFungiblesPageRequest
	pages := []*gateway.EntityFungiblesPageResponse{
		testutil.FungiblesPage(100, testutil.Ptr("c1"), testutil.GlobalFungible("resource_rdx1a", "1")),
		testutil.FungiblesPage(100, testutil.Ptr("c2"), testutil.GlobalFungible("resource_rdx1b", "2")),
		testutil.FungiblesPage(100, nil, testutil.GlobalFungible("resource_rdx1c", "3")),
	}
	s.gateway.EXPECT().
		EntityFungiblesPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gateway.EntityFungiblesPageRequest) (*gateway.EntityFungiblesPageResponse, error) {
			requests = append(requests, req)
			return pages[len(requests)-1], nil
		}).
		Times(3)
	s.singleNonFungiblePage()

	balances, err := s.client.FetchWalletBalances(context.Background(), accountAddress, nil)
	require.NoError(err)

	require.Len(requests, 3)
	require.Nil(requests[0].Cursor)
	require.Nil(requests[0].AtLedgerState)
	require.Equal("c1", *requests[1].Cursor)
	require.Equal("c2", *requests[2].Cursor)
	for _, req := range requests {
		require.Equal(accountAddress, req.Address)
		require.Equal(gateway.AggregationGlobal, req.AggregationLevel)
	}
	// pinned to the state version of the first page
	require.Equal(types.AtStateVersion(100), requests[1].AtLedgerState)
	require.Equal(types.AtStateVersion(100), requests[2].AtLedgerState)

	sorted := balances.SortedFungible()
	require.Len(sorted, 3)
	require.Equal("resource_rdx1a", sorted[0].TokenAddress)
	require.Equal("resource_rdx1b", sorted[1].TokenAddress)
	require.Equal("resource_rdx1c", sorted[2].TokenAddress)
}

func (s *ClientTestSuite) TestWalletBalancesKeepsExplicitSelector() {
	require := s.Require()
	selector := types.AtStateVersion(42)
	var fungibleRequests []*gateway.EntityFungiblesPageRequest
	var nonFungibleRequest *gateway.EntityNonFungiblesPageRequest

	s.gateway.EXPECT().
		EntityFungiblesPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gateway.EntityFungiblesPageRequest) (*gateway.EntityFungiblesPageResponse, error) {
			fungibleRequests = append(fungibleRequests, req)
			if len(fungibleRequests) == 1 {
				return testutil.FungiblesPage(999, testutil.Ptr("next"), testutil.GlobalFungible("resource_rdx1a", "1")), nil
			}
			return testutil.FungiblesPage(999, nil), nil
		}).
		Times(2)
	s.gateway.EXPECT().
		EntityNonFungiblesPage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gateway.EntityNonFungiblesPageRequest) (*gateway.EntityNonFungiblesPageResponse, error) {
			nonFungibleRequest = req
			return testutil.NonFungiblesPage(999, nil), nil
		})

	_, err := s.client.FetchWalletBalances(context.Background(), accountAddress, selector)
	require.NoError(err)

	require.Same(selector, fungibleRequests[0].AtLedgerState)
	require.Same(selector, fungibleRequests[1].AtLedgerState)
	require.Same(selector, nonFungibleRequest.AtLedgerState)
	require.Equal(gateway.AggregationVault, nonFungibleRequest.AggregationLevel)
	require.True(nonFungibleRequest.OptIns.NonFungibleIncludeNfids)
}

func (s *ClientTestSuite) TestWalletBalancesPropagatesPageFailure() {
	require := s.Require()
	failure := types.WrapErr(types.ErrGateway, errors.New("503"))
	s.gateway.EXPECT().
		EntityFungiblesPage(gomock.Any(), gomock.Any()).
		Return(testutil.FungiblesPage(100, testutil.Ptr("c1"), testutil.GlobalFungible("resource_rdx1a", "1")), nil)
	s.gateway.EXPECT().
		EntityFungiblesPage(gomock.Any(), gomock.Any()).
		Return(nil, failure)
	s.gateway.EXPECT().
		EntityNonFungiblesPage(gomock.Any(), gomock.Any()).
		Return(testutil.NonFungiblesPage(100, nil), nil).
		AnyTimes()

	balances, err := s.client.FetchWalletBalances(context.Background(), accountAddress, nil)
	require.ErrorIs(err, types.ErrGateway)
	require.Nil(balances)
}
