// Package accountregistry manages the set of accounts whose transaction
// history is kept synchronized. Registration validates the account shape and
// delegates persistence to the configured AccountStorage.
package accountregistry

import (
	"context"

	"github.com/histwatch/histwatch/internal/histsync"
)

// Service defines the interface for registering and unregistering accounts
// for history synchronization, and for looking registered accounts up when
// a sync is triggered.
type Service interface {
	// Register adds an account to the registry. The paradigm selects which
	// source adapters sync it; walletID may be empty when the account does
	// not use the notification feed.
	Register(ctx context.Context, id string, paradigm histsync.Paradigm, address, walletID string) error

	// Unregister removes the account with the given id from the registry.
	Unregister(ctx context.Context, id string) error

	// Get returns the registered account with the given id, or
	// ErrAccountNotFound.
	Get(ctx context.Context, id string) (histsync.Account, error)

	// List returns every registered account.
	List(ctx context.Context) ([]histsync.Account, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	accountStorage AccountStorage
}

var _ Service = (*service)(nil)

// New creates a new accountregistry service using the provided
// AccountStorage implementation.
func New(as AccountStorage) *service {
	return &service{
		accountStorage: as,
	}
}

// Register validates the account and persists it.
func (s *service) Register(ctx context.Context, id string, paradigm histsync.Paradigm, address, walletID string) error {
	account, err := buildAccount(id, paradigm, address, walletID)
	if err != nil {
		return err
	}

	return s.accountStorage.SaveAccount(ctx, account)
}

// Unregister removes the account from the registry.
func (s *service) Unregister(ctx context.Context, id string) error {
	return s.accountStorage.DeleteAccount(ctx, id)
}

// Get looks up one registered account by id.
func (s *service) Get(ctx context.Context, id string) (histsync.Account, error) {
	return s.accountStorage.GetAccount(ctx, id)
}

// List returns every registered account.
func (s *service) List(ctx context.Context) ([]histsync.Account, error) {
	return s.accountStorage.ListAccounts(ctx)
}
