package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/txrecord"

	"github.com/redis/go-redis/v9"
)

// historyKeyPrefix is the namespace prefix for all keys related to account
// history logs.
const historyKeyPrefix = "history"

// historyLogKey constructs the Redis key holding the serialized history log
// for one account. The format is:
//
//	"history:log:<accountID>"
func historyLogKey(accountID string) string {
	return fmt.Sprintf("%s:log:%s", historyKeyPrefix, accountID)
}

// LoadAccountHistory retrieves the stored history log for the given account.
//
// The log is stored as a single JSON document. If the account has never been
// synced, it returns histsync.ErrNoHistoryFound.
func (c *client) LoadAccountHistory(ctx context.Context, accountID string) ([]txrecord.TransactionRecord, error) {
	key := historyLogKey(accountID)

	data, err := c.conn.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = histsync.ErrNoHistoryFound
		}

		return nil, err
	}

	var log []txrecord.TransactionRecord
	return log, json.Unmarshal(data, &log)
}

// CommitAccountHistory persists the history log and the given cursor
// advances inside a single transactional pipeline, so a partially applied
// commit is never observable.
func (c *client) CommitAccountHistory(ctx context.Context, accountID string, log []txrecord.TransactionRecord, cursors []histsync.CursorCommit) error {
	data, err := json.Marshal(log)
	if err != nil {
		return err
	}

	pipe := c.conn.TxPipeline()
	pipe.Set(ctx, historyLogKey(accountID), data, 0)
	for _, commit := range cursors {
		pipe.Set(ctx, cursorKey(commit.CursorID), strconv.FormatInt(int64(commit.Cursor), 10), 0)
	}

	_, err = pipe.Exec(ctx)
	return err
}

// Compile-time assertion to ensure client implements the HistoryStorage interface.
var _ histsync.HistoryStorage = new(client)
