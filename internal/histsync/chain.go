package histsync

import "context"

// Receipt is the on-chain execution result for a single transaction, used as
// confirmation evidence by the reconciliation pass.
type Receipt struct {
	Succeeded   bool
	BlockNumber int64
	GasUsed     float64
}

// ChainInfo supplies live confirmation evidence for paradigms that support
// it. Both methods may report "unavailable" (a nil receipt, a zero head);
// the orchestrator treats that as insufficient evidence and skips
// reconciliation for the hash this round rather than failing the sync.
type ChainInfo interface {
	// FetchTransactionReceipt returns the receipt for the given hash, or
	// (nil, nil) when the transaction is not yet mined or the provider has
	// no answer.
	FetchTransactionReceipt(ctx context.Context, hash string) (*Receipt, error)

	// FetchChainHeadNumber returns the current head block number, or zero
	// when unavailable.
	FetchChainHeadNumber(ctx context.Context) (int64, error)
}
