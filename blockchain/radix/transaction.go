package radix

import (
	"context"

	"github.com/openweb3-io/radixutils/blockchain/radix/gateway"
	"github.com/openweb3-io/radixutils/types"
	"github.com/pkg/errors"
)

// GetEventFromTransaction returns the first detailed event named eventName. A receipt without
// a detailed_events list fails with types.ErrNoEvents, a list without the event with
// types.ErrEventNotFound.
func (c *Client) GetEventFromTransaction(ctx context.Context, intentHash string, eventName string) (*gateway.DetailedEvent, error) {
	resp, err := c.gateway.TransactionCommittedDetails(ctx, &gateway.TransactionCommittedDetailsRequest{
		IntentHash: intentHash,
		OptIns:     &gateway.TransactionDetailsOptIns{DetailedEvents: true},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "fetching transaction %s", intentHash)
	}

	receipt := resp.Transaction.Receipt
	if receipt == nil || receipt.DetailedEvents == nil {
		return nil, types.WithDetails(types.ErrNoEvents, map[string]any{
			"intent_hash": intentHash,
		})
	}
	for i := range receipt.DetailedEvents {
		if receipt.DetailedEvents[i].Identifier.Event == eventName {
			return &receipt.DetailedEvents[i], nil
		}
	}
	return nil, types.WithDetails(types.ErrEventNotFound, map[string]any{
		"event":       eventName,
		"intent_hash": intentHash,
	})
}

func (c *Client) GetEventKeyValuesFromTransaction(ctx context.Context, intentHash string, eventName string) (map[string]string, error) {
	event, err := c.GetEventFromTransaction(ctx, intentHash, eventName)
	if err != nil {
		return nil, err
	}
	return ExtractValuesFromTxEvent(event), nil
}

// ExtractValuesFromTxEvent maps the field names of an event payload to their values.
// A payload without fields gives an empty map.
func ExtractValuesFromTxEvent(event *gateway.DetailedEvent) map[string]string {
	values := map[string]string{}
	if event == nil {
		return values
	}
	for _, field := range event.Payload.ProgrammaticJSON.Fields {
		values[field.FieldName] = field.StringValue()
	}
	return values
}
