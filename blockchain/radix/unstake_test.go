package radix_test

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/client"
	testutil "github.com/openweb3-io/radixutils/testutil/types"
	"github.com/openweb3-io/radixutils/types"
)

const claimResource = "resource_rdx1claim"

func claimIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("{claim-%d}", i)
	}
	return ids
}

func (s *ClientTestSuite) TestFetchUnstakeClaimNFTDataChunksIds() {
	require := s.Require()
	ids := claimIDs(150)
	var mu sync.Mutex
	var batches [][]string

	s.gateway.EXPECT().
		NonFungibleData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gateway.NonFungibleDataRequest) (*gateway.NonFungibleDataResponse, error) {
			s.Equal(claimResource, req.ResourceAddress)
			mu.Lock()
			batches = append(batches, req.NonFungibleIDs)
			mu.Unlock()

			items := make([]gateway.NonFungibleDataItem, 0, len(req.NonFungibleIDs))
			for _, id := range req.NonFungibleIDs {
				items = append(items, testutil.NonFungibleData(id, testutil.Tuple(
					testutil.Field(gateway.KindDecimal, "claim_amount", "1"),
				)))
			}
			return &gateway.NonFungibleDataResponse{ResourceAddress: claimResource, NonFungibleIDs: items}, nil
		}).
		Times(2)

	data, err := s.client.FetchUnstakeClaimNFTData(context.Background(), claimResource, ids)
	require.NoError(err)
	require.Len(data, 150)

	sort.Slice(batches, func(i, j int) bool { return len(batches[i]) > len(batches[j]) })
	require.Equal(ids[:100], batches[0])
	require.Equal(ids[100:], batches[1])
}

func (s *ClientTestSuite) TestFetchUnstakeClaimNFTDataReadsClaimFields() {
	require := s.Require()
	s.gateway.EXPECT().
		NonFungibleData(gomock.Any(), &gateway.NonFungibleDataRequest{
			ResourceAddress: claimResource,
			NonFungibleIDs:  []string{"{a}", "{b}", "{c}", "{d}", "{e}"},
		}).
		Return(&gateway.NonFungibleDataResponse{NonFungibleIDs: []gateway.NonFungibleDataItem{
			testutil.NonFungibleData("{a}", testutil.Tuple(
				testutil.Field(gateway.KindString, "name", "Stake Claim"),
				testutil.Field(gateway.KindDecimal, "claim_amount", "1234.567890123456789012"),
				testutil.Field(gateway.KindU64, "claim_epoch", "48201"),
			)),
			// wrong kinds are ignored
			testutil.NonFungibleData("{b}", testutil.Tuple(
				testutil.Field(gateway.KindString, "claim_amount", "5"),
				testutil.Field(gateway.KindDecimal, "claim_epoch", "7"),
			)),
			testutil.NonFungibleData("{c}", testutil.Field(gateway.KindString, "", "not a tuple")),
			{NonFungibleID: "{d}", IsBurned: true},
			testutil.NonFungibleData("{e}", testutil.Tuple(
				testutil.Field(gateway.KindU64, "claim_epoch", "-1"),
			)),
		}}, nil)

	data, err := s.client.FetchUnstakeClaimNFTData(context.Background(), claimResource, []string{"{a}", "{b}", "{c}", "{d}", "{e}"})
	require.NoError(err)

	require.Len(data, 3)
	require.NotContains(data, "{c}")
	require.NotContains(data, "{d}")

	a := data["{a}"]
	require.Equal("{a}", a.NFTID)
	require.NotNil(a.ClaimAmount)
	s.requireDecimal("1234.567890123456789012", *a.ClaimAmount)
	require.NotNil(a.ClaimEpoch)
	require.EqualValues(48201, *a.ClaimEpoch)

	require.Equal(client.UnstakeClaimNFT{NFTID: "{b}"}, data["{b}"])
	require.Equal(client.UnstakeClaimNFT{NFTID: "{e}"}, data["{e}"])
}

func (s *ClientTestSuite) TestFetchUnstakeClaimNFTDataWithoutIds() {
	data, err := s.client.FetchUnstakeClaimNFTData(context.Background(), claimResource, nil)
	s.Require().NoError(err)
	s.Require().Empty(data)
}

func (s *ClientTestSuite) TestFetchUnstakeClaimNFTDataAbortsOnFailure() {
	s.gateway.EXPECT().
		NonFungibleData(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gateway.NonFungibleDataRequest) (*gateway.NonFungibleDataResponse, error) {
			if len(req.NonFungibleIDs) < 100 {
				return nil, types.ErrGateway
			}
			return &gateway.NonFungibleDataResponse{}, nil
		}).
		Times(2)

	data, err := s.client.FetchUnstakeClaimNFTData(context.Background(), claimResource, claimIDs(120))
	s.Require().ErrorIs(err, types.ErrGateway)
	s.Require().Nil(data)
}
