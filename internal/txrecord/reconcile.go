package txrecord

import "strings"

// PartialUpdate carries field-level confirmation evidence for a single
// record. Nil (or empty, for Status) fields are left untouched on the target
// record, so a mined-status update that knows only the block number never
// erases previously accumulated data.
type PartialUpdate struct {
	Status          Status
	GasUsed         *float64
	GasPrice        *float64
	BlockNumber     *int64
	NbConfirmations *int64
}

// StatusConflict reports confirmation evidence that contradicts a status
// already settled on a record: either a terminal status flipping to the
// opposite terminal status, or evidence demoting a terminal record back to
// pending. Conflicts are surfaced for investigation, never auto-resolved.
type StatusConflict struct {
	Hash     string
	Existing Status
	Proposed Status
}

// Reconcile applies field-level updates to the records whose case-normalized
// hash matches a key in updatesByHash.
//
// Records not referenced by any update key are returned unchanged and in
// their original order. An update referencing a hash absent from the log is
// a no-op rather than an error: the confirmation source may race ahead of
// pending-record ingestion, and callers that care should re-run Merge before
// Reconcile.
//
// Status transitions are terminal-forward only. An update that would move a
// confirmed or failed record anywhere else is recorded as a StatusConflict
// and the status field of that update is dropped; its remaining fields still
// apply.
//
// The second return value is the last record an update was applied to, or
// nil when nothing matched; the confirmation pass runs with a single-hash
// update map, for which it is the patched record.
func Reconcile(existing []TransactionRecord, updatesByHash map[string]PartialUpdate) ([]TransactionRecord, *TransactionRecord, []StatusConflict) {
	if len(updatesByHash) == 0 {
		return existing, nil, nil
	}

	normalized := make(map[string]PartialUpdate, len(updatesByHash))
	for hash, update := range updatesByHash {
		normalized[strings.ToLower(hash)] = update
	}

	var (
		updated   *TransactionRecord
		conflicts []StatusConflict
		result    = make([]TransactionRecord, len(existing))
	)
	for i, record := range existing {
		update, ok := normalized[record.HashKey()]
		if !ok {
			result[i] = record
			continue
		}

		record, conflict := applyUpdate(record, update)
		if conflict != nil {
			conflicts = append(conflicts, *conflict)
		}

		result[i] = record
		updated = &result[i]
	}

	return result, updated, conflicts
}

// applyUpdate overwrites the non-nil fields of update onto record, guarding
// the terminal-forward status invariant.
func applyUpdate(record TransactionRecord, update PartialUpdate) (TransactionRecord, *StatusConflict) {
	var conflict *StatusConflict

	if update.Status != "" && update.Status != record.Status {
		if record.Status.Terminal() {
			conflict = &StatusConflict{
				Hash:     record.HashKey(),
				Existing: record.Status,
				Proposed: update.Status,
			}
		} else {
			record.Status = update.Status
		}
	}

	if update.GasUsed != nil {
		record.GasUsed = *update.GasUsed
	}
	if update.GasPrice != nil {
		record.GasPrice = *update.GasPrice
	}
	if update.BlockNumber != nil {
		record.BlockNumber = update.BlockNumber
	}
	if update.NbConfirmations != nil {
		record.NbConfirmations = *update.NbConfirmations
	}

	return record, conflict
}
