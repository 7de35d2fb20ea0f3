package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/histwatch/histwatch/internal/histsync"
)

// syncClaimKey constructs the Redis key marking an in-flight sync for one
// account. The format is:
//
//	"history:sync:<accountID>"
func syncClaimKey(accountID string) string {
	return fmt.Sprintf("%s:sync:%s", historyKeyPrefix, accountID)
}

// ClaimAccountSync acquires the distributed sync claim for the account using
// an atomic set-if-absent with the given TTL. The TTL bounds how long a
// crashed holder can block the account before the claim expires on its own.
func (c *client) ClaimAccountSync(ctx context.Context, accountID string, ttl time.Duration) error {
	key := syncClaimKey(accountID)

	acquired, err := c.conn.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return err
	}
	if !acquired {
		return histsync.ErrSyncInProgress
	}

	return nil
}

// ReleaseAccountSync drops the claim so the next trigger can sync the
// account immediately.
func (c *client) ReleaseAccountSync(ctx context.Context, accountID string) error {
	return c.conn.Del(ctx, syncClaimKey(accountID)).Err()
}

// Compile-time assertion to ensure client implements the SyncGuard interface.
var _ histsync.SyncGuard = new(client)
