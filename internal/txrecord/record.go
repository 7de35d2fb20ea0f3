// Package txrecord defines the canonical transaction record shared by every
// history source, along with the pure functions that normalize, merge, and
// reconcile records. Nothing in this package performs I/O.
package txrecord

import (
	"encoding/json"
	"sort"
	"strings"
)

// Status describes where a transaction stands in its ledger lifecycle.
type Status string

const (
	// StatusPending marks a transaction that was submitted but not yet included.
	StatusPending Status = "pending"

	// StatusConfirmed marks a transaction included in the ledger.
	StatusConfirmed Status = "confirmed"

	// StatusFailed marks a transaction that was included but reverted, or
	// rejected by the executing backend.
	StatusFailed Status = "failed"
)

// Terminal reports whether the status is final. Terminal statuses never
// transition back to pending.
func (s Status) Terminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// TransactionRecord is the canonical, source-independent shape of a single
// transaction in an account's history log.
//
// Hash is the primary identifier, stored lower-cased so identity comparisons
// are case-insensitive; DisplayHash preserves the original casing when the
// source distinguishes them. Value is always a decimal string to avoid
// precision loss on large amounts. Records are immutable once stored except
// through Reconcile.
type TransactionRecord struct {
	Hash             string          `json:"hash" validate:"required"`
	DisplayHash      string          `json:"displayHash,omitempty"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Value            string          `json:"value"`
	Asset            string          `json:"asset"`
	Status           Status          `json:"status"`
	CreatedAt        int64           `json:"createdAt"`
	NbConfirmations  int64           `json:"nbConfirmations"`
	GasUsed          float64         `json:"gasUsed"`
	GasPrice         float64         `json:"gasPrice"`
	BlockNumber      *int64          `json:"blockNumber,omitempty"`
	Note             string          `json:"note,omitempty"`
	Tag              string          `json:"tag,omitempty"`
	Extra            json.RawMessage `json:"extra,omitempty"`
	StateInPPN       string          `json:"stateInPPN,omitempty"`
	IsPPNTransaction bool            `json:"isPPNTransaction"`
}

// HashKey returns the case-normalized identity of the record, used for
// deduplication and reconciliation lookups.
func (r TransactionRecord) HashKey() string {
	return strings.ToLower(r.Hash)
}

// SortByCreatedAtDesc orders records newest-first by their creation time, in
// place. It is applied only during bulk-import reconciliation; incremental
// syncs preserve insertion order.
func SortByCreatedAtDesc(records []TransactionRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt > records[j].CreatedAt
	})
}
