package radix_test

import (
	"context"

	"github.com/golang/mock/gomock"
	"github.com/openweb3-io/radixutils/blockchain/radix"
	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	testutil "github.com/openweb3-io/radixutils/testutil/types"
	"github.com/openweb3-io/radixutils/types"
)

const intentHash = "txid_rdx1x8yh0tkf7gy2v8p4ej3y2dxhg3r9uvvtlxj3mtmhhyj7y0rcvvqs2p6rk5"

func (s *ClientTestSuite) expectTransaction(receipt *gateway.TransactionReceipt) {
	s.gateway.EXPECT().
		TransactionCommittedDetails(gomock.Any(), &gateway.TransactionCommittedDetailsRequest{
			IntentHash: intentHash,
			OptIns:     &gateway.TransactionDetailsOptIns{DetailedEvents: true},
		}).
		Return(&gateway.TransactionCommittedDetailsResponse{
			LedgerState: testutil.Ledger(10, 1),
			Transaction: gateway.CommittedTransactionInfo{Receipt: receipt},
		}, nil)
}

func (s *ClientTestSuite) TestGetEventKeyValuesFromTransaction() {
	require := s.Require()
	s.expectTransaction(&gateway.TransactionReceipt{DetailedEvents: []gateway.DetailedEvent{
		testutil.Event("WithdrawEvent", testutil.Field(gateway.KindDecimal, "amount", "10")),
		testutil.Event("StakeEvent",
			testutil.Field(gateway.KindDecimal, "xrd_staked", "1500.25"),
			testutil.Field(gateway.KindString, "note", "first"),
		),
		testutil.Event("StakeEvent", testutil.Field(gateway.KindDecimal, "xrd_staked", "1")),
	}})

	values, err := s.client.GetEventKeyValuesFromTransaction(context.Background(), intentHash, "StakeEvent")
	require.NoError(err)
	require.Equal(map[string]string{"xrd_staked": "1500.25", "note": "first"}, values)
}

func (s *ClientTestSuite) TestGetEventFromTransactionEventNotFound() {
	require := s.Require()
	s.expectTransaction(&gateway.TransactionReceipt{DetailedEvents: []gateway.DetailedEvent{
		testutil.Event("WithdrawEvent"),
	}})

	event, err := s.client.GetEventFromTransaction(context.Background(), intentHash, "StakeEvent")
	require.Nil(event)
	require.ErrorIs(err, types.ErrEventNotFound)
	require.NotErrorIs(err, types.ErrNoEvents)
	require.ErrorContains(err, "StakeEvent")
}

func (s *ClientTestSuite) TestGetEventFromTransactionEmptyEventList() {
	s.expectTransaction(&gateway.TransactionReceipt{DetailedEvents: []gateway.DetailedEvent{}})

	_, err := s.client.GetEventFromTransaction(context.Background(), intentHash, "StakeEvent")
	s.Require().ErrorIs(err, types.ErrEventNotFound)
}

func (s *ClientTestSuite) TestGetEventFromTransactionNoEvents() {
	require := s.Require()
	s.expectTransaction(&gateway.TransactionReceipt{Status: "CommittedSuccess"})
	_, err := s.client.GetEventFromTransaction(context.Background(), intentHash, "StakeEvent")
	require.ErrorIs(err, types.ErrNoEvents)
	require.NotErrorIs(err, types.ErrEventNotFound)

	s.expectTransaction(nil)
	_, err = s.client.GetEventKeyValuesFromTransaction(context.Background(), intentHash, "StakeEvent")
	require.ErrorIs(err, types.ErrNoEvents)
}

func (s *ClientTestSuite) TestGetEventFromTransactionTransportFailure() {
	s.gateway.EXPECT().
		TransactionCommittedDetails(gomock.Any(), gomock.Any()).
		Return(nil, types.ErrGateway)

	_, err := s.client.GetEventFromTransaction(context.Background(), intentHash, "StakeEvent")
	s.Require().ErrorIs(err, types.ErrGateway)
	s.Require().NotErrorIs(err, types.ErrNoEvents)
}

func (s *ClientTestSuite) TestExtractValuesFromTxEvent() {
	require := s.Require()

	event := testutil.Event("ClaimEvent",
		testutil.Field(gateway.KindU64, "claim_epoch", "42"),
		gateway.ProgrammaticValue{Kind: "Bool", FieldName: "claimed", Value: []byte("true")},
	)
	require.Equal(map[string]string{"claim_epoch": "42", "claimed": "true"}, radix.ExtractValuesFromTxEvent(&event))

	empty := gateway.DetailedEvent{Payload: gateway.ScryptoSborValue{ProgrammaticJSON: gateway.ProgrammaticValue{Kind: "Enum"}}}
	require.Empty(radix.ExtractValuesFromTxEvent(&empty))
	require.NotNil(radix.ExtractValuesFromTxEvent(&empty))
	require.Empty(radix.ExtractValuesFromTxEvent(nil))
}
