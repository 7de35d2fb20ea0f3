package synccursor

import (
	"context"
	"errors"
)

// Tracker enforces monotonic cursor advancement over an injected
// CursorStorage. Syncs never re-request data strictly older than the stored
// cursor, though they may re-receive already-seen records; the idempotent
// merge absorbs those.
type Tracker struct {
	storage CursorStorage
}

// NewTracker creates a Tracker backed by the given storage.
func NewTracker(storage CursorStorage) *Tracker {
	return &Tracker{storage: storage}
}

// Get returns the stored cursor for the account, or the zero cursor when the
// account has never been synced.
func (t *Tracker) Get(ctx context.Context, accountID string) (Cursor, error) {
	cursor, err := t.storage.LoadCursor(ctx, accountID)
	if err != nil {
		if errors.Is(err, ErrNoCursorFound) {
			return 0, nil
		}
		return 0, err
	}

	return cursor, nil
}

// Advance moves the account's cursor to newCursor. Calling it with a cursor
// at or before the stored one is a no-op: a later sync window is never
// regressed backward.
func (t *Tracker) Advance(ctx context.Context, accountID string, newCursor Cursor) error {
	current, err := t.Get(ctx, accountID)
	if err != nil {
		return err
	}

	if !newCursor.After(current) {
		return nil
	}

	return t.storage.SaveCursor(ctx, accountID, newCursor)
}
