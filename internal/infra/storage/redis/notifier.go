package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// historyUpdatedChannel constructs the pub/sub channel history updates for
// one account are published on. The format is:
//
//	"history:updated:<accountID>"
func historyUpdatedChannel(accountID string) string {
	return fmt.Sprintf("%s:updated:%s", historyKeyPrefix, accountID)
}

// NotifyHistoryUpdated publishes the refreshed log as a single JSON document
// on the account's channel. Subscribers that missed the message recover by
// reading the stored log directly.
func (c *client) NotifyHistoryUpdated(ctx context.Context, accountID string, log []txrecord.TransactionRecord) error {
	payload, err := json.Marshal(log)
	if err != nil {
		return err
	}

	return c.conn.Publish(ctx, historyUpdatedChannel(accountID), payload).Err()
}

var _ histsync.HistoryUpdatedNotifier = new(client)
