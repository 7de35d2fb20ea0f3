package txrecord

import (
	"github.com/histwatch/histwatch/internal/pkg/types"
)

// Merge combines a batch of freshly fetched records with the stored
// per-account log, producing a new log with exactly one record per distinct
// case-normalized hash.
//
// Incoming records are partitioned into pending and mined (non-pending)
// subsets, and the result is assembled in the precedence order
//
//	mined incoming, existing, pending incoming
//
// keeping the first occurrence of each hash. The ordering is deliberate:
// freshly mined data supersedes a stale pending placeholder for the same
// transaction without losing history accumulated in the stored log.
//
// When a later duplicate carries a field the retained record lacks entirely
// (empty value, missing asset, nil block number, zero creation time), that
// field is backfilled so the merge never drops information either side had.
// Numeric gas fields are not backfilled: when two mined records for the same
// hash disagree on gasUsed, the first occurrence wins. Merge is a dedup pass,
// not a reconciler; mined records are treated as immutable, and the dedicated
// Reconcile path is the only field-level merger.
//
// Merge is idempotent: applying the same incoming batch twice yields the same
// result as applying it once.
func Merge(existing, incoming []TransactionRecord) []TransactionRecord {
	var pending, mined []TransactionRecord
	for _, record := range incoming {
		if record.Status == StatusPending {
			pending = append(pending, record)
		} else {
			mined = append(mined, record)
		}
	}

	combined := make([]TransactionRecord, 0, len(existing)+len(incoming))
	combined = append(combined, mined...)
	combined = append(combined, existing...)
	combined = append(combined, pending...)

	var (
		seen      = types.NewSet[string]()
		positions = make(map[string]int, len(combined))
		result    = make([]TransactionRecord, 0, len(combined))
	)
	for _, record := range combined {
		key := record.HashKey()
		if _, ok := seen[key]; ok {
			pos := positions[key]
			result[pos] = backfill(result[pos], record)
			continue
		}

		seen.Add(key)
		positions[key] = len(result)
		result = append(result, record)
	}

	return result
}

// backfill copies onto the retained record any field the dropped duplicate
// had that the retained record lacks entirely. It never overwrites a value
// the retained record already carries.
func backfill(kept, dropped TransactionRecord) TransactionRecord {
	if kept.DisplayHash == "" {
		kept.DisplayHash = dropped.DisplayHash
	}
	if kept.From == "" {
		kept.From = dropped.From
	}
	if kept.To == "" {
		kept.To = dropped.To
	}
	if kept.Value == "" {
		kept.Value = dropped.Value
	}
	if kept.Asset == "" {
		kept.Asset = dropped.Asset
	}
	if kept.CreatedAt == 0 {
		kept.CreatedAt = dropped.CreatedAt
	}
	if kept.BlockNumber == nil {
		kept.BlockNumber = dropped.BlockNumber
	}
	if kept.Note == "" {
		kept.Note = dropped.Note
	}
	if kept.Tag == "" {
		kept.Tag = dropped.Tag
	}
	if kept.Extra == nil {
		kept.Extra = dropped.Extra
	}
	if kept.StateInPPN == "" {
		kept.StateInPPN = dropped.StateInPPN
	}
	return kept
}
