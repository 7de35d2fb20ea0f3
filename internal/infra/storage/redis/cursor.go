package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/histwatch/histwatch/internal/synccursor"

	"github.com/redis/go-redis/v9"
)

// cursorKey constructs the Redis key holding the sync cursor for one scoped
// cursor id (accountID:adapterKind). The format is:
//
//	"history:cursor:<cursorID>"
func cursorKey(cursorID string) string {
	return fmt.Sprintf("%s:cursor:%s", historyKeyPrefix, cursorID)
}

// SaveCursor persists the sync cursor for the given scoped cursor id. The
// cursor is stored with no expiration; monotonicity is enforced by the
// tracker above this layer.
func (c *client) SaveCursor(ctx context.Context, cursorID string, cursor synccursor.Cursor) error {
	key := cursorKey(cursorID)
	return c.conn.Set(ctx, key, strconv.FormatInt(int64(cursor), 10), 0).Err()
}

// LoadCursor retrieves the most recently saved cursor for the given scoped
// cursor id, or synccursor.ErrNoCursorFound when none was ever saved.
func (c *client) LoadCursor(ctx context.Context, cursorID string) (synccursor.Cursor, error) {
	key := cursorKey(cursorID)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = synccursor.ErrNoCursorFound
		}

		return 0, err
	}

	parsed, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, err
	}

	return synccursor.Cursor(parsed), nil
}

// Compile-time assertion to ensure client implements the CursorStorage interface.
var _ synccursor.CursorStorage = new(client)
