package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/histsync"

	"github.com/redis/go-redis/v9"
)

// accountRegistryKey is the Redis hash holding every registered account,
// keyed by account id with the serialized account as the value.
const accountRegistryKey = "account:registry"

// SaveAccount adds the account to the registry hash, failing with
// accountregistry.ErrAccountAlreadyRegistered when its id is taken.
func (c *client) SaveAccount(ctx context.Context, account histsync.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}

	created, err := c.conn.HSetNX(ctx, accountRegistryKey, account.ID, data).Result()
	if err != nil {
		return err
	}
	if !created {
		return accountregistry.ErrAccountAlreadyRegistered
	}

	return nil
}

// DeleteAccount removes the account from the registry hash. Removing an
// unknown id is a no-op.
func (c *client) DeleteAccount(ctx context.Context, accountID string) error {
	return c.conn.HDel(ctx, accountRegistryKey, accountID).Err()
}

// GetAccount retrieves one registered account by id, or
// accountregistry.ErrAccountNotFound.
func (c *client) GetAccount(ctx context.Context, accountID string) (histsync.Account, error) {
	data, err := c.conn.HGet(ctx, accountRegistryKey, accountID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = accountregistry.ErrAccountNotFound
		}

		return histsync.Account{}, err
	}

	var account histsync.Account
	return account, json.Unmarshal(data, &account)
}

// ListAccounts retrieves every registered account.
func (c *client) ListAccounts(ctx context.Context) ([]histsync.Account, error) {
	entries, err := c.conn.HGetAll(ctx, accountRegistryKey).Result()
	if err != nil {
		return nil, err
	}

	accounts := make([]histsync.Account, 0, len(entries))
	for _, data := range entries {
		var account histsync.Account
		if err := json.Unmarshal([]byte(data), &account); err != nil {
			return nil, err
		}

		accounts = append(accounts, account)
	}

	return accounts, nil
}

// Compile-time assertion to ensure client implements the AccountStorage interface.
var _ accountregistry.AccountStorage = new(client)
