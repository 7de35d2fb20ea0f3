package histsync

import (
	"context"

	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// confirmPending runs the confirmation-check pass over the merged log:
// for every record still pending it fetches the transaction receipt, and when
// evidence is available promotes the record to confirmed or failed, attaching
// block number, gas used, and a confirmation count computed against the
// current chain head.
//
// Missing evidence (no receipt yet, zero head, a fetch error) skips the hash
// for this round; it never fails the sync. Status conflicts raised by the
// reconciler are passed to the configured handler.
func (s *service) confirmPending(ctx context.Context, log []txrecord.TransactionRecord) ([]txrecord.TransactionRecord, bool) {
	var pendingHashes []string
	for _, record := range log {
		if record.Status == txrecord.StatusPending {
			pendingHashes = append(pendingHashes, record.HashKey())
		}
	}
	if len(pendingHashes) == 0 {
		return log, false
	}

	head, err := s.chainInfo.FetchChainHeadNumber(ctx)
	if err != nil {
		logger.Warn(ctx, "chain head unavailable, skipping confirmation pass", "error", err)
		return log, false
	}

	changed := false
	for _, hash := range pendingHashes {
		receipt, err := s.fetchReceipt(ctx, hash)
		if err != nil {
			logger.Warn(ctx, "receipt fetch failed, skipping hash this round", "tx.hash", hash, "error", err)
			continue
		}
		if receipt == nil {
			continue
		}

		update := txrecord.PartialUpdate{
			Status:      txrecord.StatusFailed,
			BlockNumber: &receipt.BlockNumber,
		}
		if receipt.Succeeded {
			update.Status = txrecord.StatusConfirmed
		}
		if receipt.GasUsed > 0 {
			gasUsed := receipt.GasUsed
			update.GasUsed = &gasUsed
		}
		if head > 0 && head >= receipt.BlockNumber {
			nbConfirmations := head - receipt.BlockNumber
			update.NbConfirmations = &nbConfirmations
		}

		reconciled, updated, conflicts := txrecord.Reconcile(log, map[string]txrecord.PartialUpdate{hash: update})
		for _, conflict := range conflicts {
			s.statusConflictHandler(ctx, conflict)
		}

		log = reconciled
		if updated != nil {
			changed = true
		}
	}

	return log, changed
}

// fetchReceipt fetches a receipt, going through the configured retry policy
// when one is set.
func (s *service) fetchReceipt(ctx context.Context, hash string) (*Receipt, error) {
	if s.retry == nil {
		return s.chainInfo.FetchTransactionReceipt(ctx, hash)
	}

	var receipt *Receipt
	err := s.retry.Execute(ctx, func() error {
		var err error
		receipt, err = s.chainInfo.FetchTransactionReceipt(ctx, hash)
		return err
	})
	return receipt, err
}
