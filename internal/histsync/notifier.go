package histsync

import (
	"context"

	"github.com/histwatch/histwatch/internal/txrecord"
)

// HistoryUpdatedNotifier is notified once per successful sync that produced
// a net change to an account's log. Downstream consumers (UI selectors,
// fee-allowance checks, asset-transfer checks) hang off this event.
//
// A sync that only advanced a cursor does not fire it.
type HistoryUpdatedNotifier interface {
	NotifyHistoryUpdated(ctx context.Context, accountID string, log []txrecord.TransactionRecord) error
}

// nopHistoryUpdatedNotifier is the default when no subscriber is wired.
type nopHistoryUpdatedNotifier struct{}

var _ HistoryUpdatedNotifier = nopHistoryUpdatedNotifier{}

func (nopHistoryUpdatedNotifier) NotifyHistoryUpdated(context.Context, string, []txrecord.TransactionRecord) error {
	return nil
}
