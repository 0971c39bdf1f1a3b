package testutil

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/openweb3-io/radixutils/types"
)

func FromTimeStamp(ts string) time.Time {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return t
}

func Dec(s string) types.Decimal {
	return types.MustDecimal(s)
}

func Ptr[T any](v T) *T {
	return &v
}

func JsonPrint(a any) {
	bz, _ := json.MarshalIndent(a, "", "  ")
	fmt.Println(string(bz))
}

// FixedClock always reports the same instant and lets every delay elapse at once
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) After(time.Duration) <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- c.At
	return ch
}
