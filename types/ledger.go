package types

// Epoch is the ledger's discrete time unit, used by unlock schedules and fee changes.
type Epoch = int64

// LedgerStateSelector pins a gateway query to a point in ledger history. At most one field
// should be set.
type LedgerStateSelector struct {
	StateVersion *int64  `json:"state_version,omitempty"`
	Timestamp    *string `json:"timestamp,omitempty"`
	Epoch        *int64  `json:"epoch,omitempty"`
	Round        *int64  `json:"round,omitempty"`
}

// AtStateVersion selects the ledger as of the given state version.
func AtStateVersion(version int64) *LedgerStateSelector {
	return &LedgerStateSelector{StateVersion: &version}
}

// LedgerState is the snapshot a gateway response was served from.
type LedgerState struct {
	Network                string `json:"network"`
	StateVersion           int64  `json:"state_version"`
	ProposerRoundTimestamp string `json:"proposer_round_timestamp"`
	Epoch                  int64  `json:"epoch"`
	Round                  int64  `json:"round"`
}
