// Package pushfeed adapts the notification-feed provider to the history sync
// engine. Pending transaction events become whole records to merge; mined
// events become field-level confirmation updates applied only to hashes the
// log already knows. The cursor is the newest event creation time seen.
package pushfeed

import (
	"context"
	"errors"
	"fmt"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// adapterKind scopes the sync cursor for this source.
const adapterKind = "pushfeed"

// Event kinds the feed is queried for. Confirmation events exist in a
// recipient and a sender variant on the provider side.
const (
	transactionPendingEvent            = "transactionPendingEvent"
	transactionConfirmationEvent       = "transactionConfirmationEvent"
	transactionConfirmationSenderEvent = "transactionConfirmationSenderEvent"
)

// Event is one raw notification returned by the feed: the event kind plus
// the embedded transaction payload.
type Event struct {
	Kind    string                     `json:"type"`
	Payload txrecord.NotificationShape `json:"payload"`
}

// NotificationAPI is the provider-facing port for the notification feed.
type NotificationAPI interface {
	// FetchNotificationsSince returns the wallet's notifications of the
	// given kinds created strictly after the unix-seconds timestamp, oldest
	// first.
	FetchNotificationsSince(ctx context.Context, walletID string, eventKinds []string, since int64) ([]Event, error)
}

type adapter struct {
	api NotificationAPI
}

var _ histsync.SourceAdapter = (*adapter)(nil)

// New creates the notification-feed source adapter.
func New(api NotificationAPI) *adapter {
	return &adapter{api: api}
}

func (a *adapter) Kind() string {
	return adapterKind
}

// FetchNewActivity fetches every notification created after the cursor and
// splits it by event kind: pending events yield whole normalized records,
// confirmation events yield partial updates keyed by hash. A confirmation
// for a hash the log never saw is dropped by the reconciler downstream, not
// here.
func (a *adapter) FetchNewActivity(ctx context.Context, account histsync.Account, cursor synccursor.Cursor) (histsync.Batch, error) {
	kinds := []string{
		transactionPendingEvent,
		transactionConfirmationEvent,
		transactionConfirmationSenderEvent,
	}

	events, err := a.api.FetchNotificationsSince(ctx, account.WalletID, kinds, int64(cursor))
	if err != nil {
		return histsync.Batch{}, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	batch := histsync.Batch{
		Updates:    make(map[string]txrecord.PartialUpdate),
		NextCursor: cursor,
	}
	for i := range events {
		event := events[i]

		if created := synccursor.Cursor(event.Payload.CreatedAt); created.After(batch.NextCursor) {
			batch.NextCursor = created
		}

		switch event.Kind {
		case transactionPendingEvent:
			record, err := txrecord.Normalize(txrecord.RawRecord{Notification: &event.Payload})
			if err != nil {
				if errors.Is(err, txrecord.ErrMalformedRecord) {
					logger.Warn(ctx, "skipping malformed notification event", "event.kind", event.Kind, "error", err)
					continue
				}
				logger.Warn(ctx, "skipping notification event", "event.kind", event.Kind, "tx.hash", event.Payload.Hash, "error", err)
				continue
			}
			batch.Records = append(batch.Records, record)

		case transactionConfirmationEvent, transactionConfirmationSenderEvent:
			hash, update, err := confirmationUpdate(event.Payload)
			if err != nil {
				logger.Warn(ctx, "skipping malformed notification event", "event.kind", event.Kind, "error", err)
				continue
			}
			batch.Updates[hash] = update

		default:
			logger.Warn(ctx, "skipping notification event of unexpected kind", "event.kind", event.Kind)
		}
	}

	if len(batch.Updates) == 0 {
		batch.Updates = nil
	}

	return batch, nil
}

// confirmationUpdate translates a mined-transaction event payload into a
// field-level update. Gas fields travel only when the feed reported them, so
// an absent value never clobbers one learned elsewhere.
func confirmationUpdate(payload txrecord.NotificationShape) (string, txrecord.PartialUpdate, error) {
	record, err := txrecord.Normalize(txrecord.RawRecord{Notification: &payload})
	if err != nil {
		return "", txrecord.PartialUpdate{}, err
	}

	update := txrecord.PartialUpdate{
		Status:      record.Status,
		BlockNumber: record.BlockNumber,
	}
	if record.Status == txrecord.StatusPending {
		// A confirmation event without an explicit status still means the
		// transaction was mined successfully.
		update.Status = txrecord.StatusConfirmed
	}
	if record.GasUsed > 0 {
		gasUsed := record.GasUsed
		update.GasUsed = &gasUsed
	}
	if record.GasPrice > 0 {
		gasPrice := record.GasPrice
		update.GasPrice = &gasPrice
	}

	return record.HashKey(), update, nil
}
