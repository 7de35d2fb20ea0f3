package accountregistry

import (
	"context"
	"errors"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/validator"
)

// ErrAccountNotFound is returned when the requested account id is not
// registered.
var ErrAccountNotFound = errors.New("account not found")

// ErrAccountAlreadyRegistered is returned by SaveAccount when the account id
// is already registered.
var ErrAccountAlreadyRegistered = errors.New("account already registered")

// AccountStorage defines the persistence interface for the set of accounts
// whose history is kept synchronized.
type AccountStorage interface {
	// SaveAccount adds the account to the registry, failing with
	// ErrAccountAlreadyRegistered when its id is taken.
	SaveAccount(ctx context.Context, account histsync.Account) error

	// DeleteAccount removes the account with the given id. Removing an
	// unknown id is not an error.
	DeleteAccount(ctx context.Context, accountID string) error

	// GetAccount returns the registered account with the given id, or
	// ErrAccountNotFound.
	GetAccount(ctx context.Context, accountID string) (histsync.Account, error)

	// ListAccounts returns every registered account.
	ListAccounts(ctx context.Context) ([]histsync.Account, error)
}

// buildAccount constructs and validates an account from its parts. The
// wallet id may be empty for accounts that do not use the notification feed.
func buildAccount(id string, paradigm histsync.Paradigm, address, walletID string) (histsync.Account, error) {
	account := histsync.Account{
		ID:       id,
		Paradigm: paradigm,
		Address:  address,
		WalletID: walletID,
	}

	return account, validator.Validate(account)
}
