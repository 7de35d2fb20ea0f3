package histsync

import (
	"context"
	"errors"

	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// ErrProviderFetch wraps any network, timeout, or non-2xx failure reported by
// a source adapter. A fetch failure aborts the whole sync attempt without
// mutating stored state; the caller may retry later.
var ErrProviderFetch = errors.New("provider fetch failed")

// Batch is the normalized output of one adapter fetch.
//
// Records are whole canonical records to merge into the log. Updates carry
// field-level confirmation evidence keyed by transaction hash, applied
// through Reconcile after the merge; an update whose hash is unknown to the
// log is dropped silently. NextCursor is the cursor the adapter computed for
// this window, equal to the input cursor when nothing new was seen and never
// earlier than it.
type Batch struct {
	Records    []txrecord.TransactionRecord
	Updates    map[string]txrecord.PartialUpdate
	NextCursor synccursor.Cursor
}

// Empty reports whether the batch carries no records and no updates. On an
// empty batch the orchestrator performs no history write and no cursor
// advance beyond what the adapter itself computed.
func (b Batch) Empty() bool {
	return len(b.Records) == 0 && len(b.Updates) == 0
}

// SourceAdapter fetches and normalizes new activity for one provider
// paradigm. Implementations run linearly through fetch and normalize for a
// single call; the orchestrator guarantees calls for the same account are
// never concurrent.
type SourceAdapter interface {
	// Kind returns a short stable name for the adapter (e.g. "explorer",
	// "pushfeed", "custodial"), used to scope the account's sync cursor.
	Kind() string

	// FetchNewActivity retrieves provider activity newer than cursor and
	// returns it normalized. A malformed provider record is skipped with the
	// remaining batch still processed; a fetch failure is reported wrapped
	// in ErrProviderFetch.
	FetchNewActivity(ctx context.Context, account Account, cursor synccursor.Cursor) (Batch, error)
}

// ContactSource is implemented by adapters that additionally support the
// activity-between-two-addresses query shape.
type ContactSource interface {
	// FetchActivityWith retrieves activity between the account's address and
	// the given counterparty address, normalized identically to
	// FetchNewActivity.
	FetchActivityWith(ctx context.Context, account Account, contactAddress string, cursor synccursor.Cursor) (Batch, error)
}

// HistoryRestorer performs the bulk-import path: a full provider-side
// history fetch used to rebuild an account's log, rather than an incremental
// window.
type HistoryRestorer interface {
	// RestoreHistory fetches the account's complete provider-side history
	// and returns it normalized. Records already present in the stored log
	// are deduplicated by the merge that follows.
	RestoreHistory(ctx context.Context, account Account) ([]txrecord.TransactionRecord, error)
}
