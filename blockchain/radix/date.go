package radix

import (
	"math"
	"time"
)

// EpochDuration is the nominal length of an epoch
const EpochDuration = 5 * time.Minute

// EpochDateLayout is day/month/year with a 12 hour clock, e.g. "18/10/2026, 3:04 pm"
const EpochDateLayout = "02/01/2006, 3:04 pm"

// EstimateEpochDate projects when targetEpoch starts (or started) assuming every epoch lasts
// EpochDuration. It is an estimate, not a ledger timestamp.
func EstimateEpochDate(targetEpoch int64, currentEpoch int64) string {
	return EstimateEpochDateAt(time.Now(), targetEpoch, currentEpoch)
}

// MaxEpochDelta is the largest epoch distance that still fits a time.Duration. Farther epochs
// are estimated at this distance.
const MaxEpochDelta = int64(math.MaxInt64 / EpochDuration)

func EstimateEpochDateAt(now time.Time, targetEpoch int64, currentEpoch int64) string {
	return now.Add(time.Duration(epochDelta(targetEpoch, currentEpoch)) * EpochDuration).Format(EpochDateLayout)
}

func epochDelta(targetEpoch int64, currentEpoch int64) int64 {
	delta := targetEpoch - currentEpoch
	switch {
	case targetEpoch > currentEpoch && (delta < 0 || delta > MaxEpochDelta):
		return MaxEpochDelta
	case targetEpoch < currentEpoch && (delta > 0 || delta < -MaxEpochDelta):
		return -MaxEpochDelta
	}
	return delta
}

func (c *Client) EstimateEpochDate(targetEpoch int64, currentEpoch int64) string {
	return EstimateEpochDateAt(c.clock.Now(), targetEpoch, currentEpoch)
}
