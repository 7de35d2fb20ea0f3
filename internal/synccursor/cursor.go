// Package synccursor tracks per-account incremental sync progress. A cursor
// bounds the next fetch window for an account's source adapter so repeated
// syncs are incremental rather than full rescans.
package synccursor

import (
	"context"
	"errors"
)

// ErrNoCursorFound is returned by LoadCursor when no cursor has been saved
// yet for the requested account.
var ErrNoCursorFound = errors.New("no sync cursor found for account")

// Cursor is an opaque progress marker for one account and adapter. The
// concrete meaning is provider-specific: a page offset for the explorer
// adapter, a unix-seconds timestamp for the notification feed, the newest
// seen transaction id for the custodial backend. All of them compare
// numerically, and a cursor never decreases.
type Cursor int64

// IsZero reports whether the cursor is the zero value, meaning no sync has
// completed yet and the next fetch starts from the beginning of the window.
func (c Cursor) IsZero() bool {
	return c == 0
}

// After reports whether c is strictly newer than other.
func (c Cursor) After(other Cursor) bool {
	return c > other
}

// Latest returns the newer of the two cursors.
func Latest(a, b Cursor) Cursor {
	if a.After(b) {
		return a
	}
	return b
}

// CursorStorage persists and retrieves the sync cursor for each account.
type CursorStorage interface {
	// SaveCursor records cursor as the latest sync position for the account.
	// Saving overwrites any previous cursor; monotonicity is enforced by the
	// Tracker, not the storage.
	SaveCursor(ctx context.Context, accountID string, cursor Cursor) error

	// LoadCursor returns the most recent cursor saved for the account, or
	// ErrNoCursorFound when the account has never been synced.
	LoadCursor(ctx context.Context, accountID string) (Cursor, error)
}
