package radix

import (
	"fmt"
	"time"

	"github.com/openweb3-io/radixutils/client"
	"github.com/openweb3-io/radixutils/types"
)

// ComputeValidatorFeeFactor renders fee factors (fractions such as "0.05") as percentages.
// A pending change whose effective epoch is reached replaces the current factor; one still in
// the future is reported as about to change, with an alert naming its estimated date.
func ComputeValidatorFeeFactor(current string, pending *client.NewFeeFactor, currentEpoch int64) client.FeeFactor {
	return computeValidatorFeeFactor(current, pending, currentEpoch, time.Now())
}

func (c *Client) ComputeValidatorFeeFactor(current string, pending *client.NewFeeFactor, currentEpoch int64) client.FeeFactor {
	return computeValidatorFeeFactor(current, pending, currentEpoch, c.clock.Now())
}

func computeValidatorFeeFactor(current string, pending *client.NewFeeFactor, currentEpoch int64, now time.Time) client.FeeFactor {
	fees := client.FeeFactor{
		Current: FormatFeeFactor(current),
	}
	if pending == nil {
		return fees
	}

	newFactor := FormatFeeFactor(pending.NewFeeFactor)
	if pending.EpochEffective <= currentEpoch {
		fees.Current = newFactor
		return fees
	}
	fees.AboutToChange = &client.NewFeeFactor{
		NewFeeFactor:   newFactor,
		EpochEffective: pending.EpochEffective,
	}
	fees.Alert = fmt.Sprintf("Fee will be changed to %s on %s", newFactor, EstimateEpochDateAt(now, pending.EpochEffective, currentEpoch))
	return fees
}

// FormatFeeFactor renders a fraction as a percentage with two decimals, e.g. "0.125" -> "12.50%".
// Unparseable input renders as "0.00%".
func FormatFeeFactor(factor string) string {
	dec, err := types.NewDecimalFromStr(factor)
	if err != nil {
		dec = types.ZeroDecimal
	}
	return dec.Percent()
}
