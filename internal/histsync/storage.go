package histsync

import (
	"context"
	"errors"

	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// ErrNoHistoryFound is returned by LoadAccountHistory when no log has been
// stored yet for the requested account.
var ErrNoHistoryFound = errors.New("no history found for account")

// CursorCommit pairs a scoped cursor id (accountID:adapterKind) with the
// cursor value to persist alongside the log.
type CursorCommit struct {
	CursorID string
	Cursor   synccursor.Cursor
}

// HistoryStorage is the persistence boundary for account logs. The engine
// assumes per-key isolation equivalent to at-most-one-writer-at-a-time for a
// given account; cross-account writes are independent.
type HistoryStorage interface {
	// LoadAccountHistory returns the stored log for the account, or
	// ErrNoHistoryFound when the account has never been synced.
	LoadAccountHistory(ctx context.Context, accountID string) ([]txrecord.TransactionRecord, error)

	// CommitAccountHistory persists the log and the given cursors as one
	// logical write: either everything lands or nothing does. A failure
	// leaves the previously committed state untouched.
	CommitAccountHistory(ctx context.Context, accountID string, log []txrecord.TransactionRecord, cursors []CursorCommit) error
}
