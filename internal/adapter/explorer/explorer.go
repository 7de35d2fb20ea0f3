// Package explorer adapts the explorer-style provider API to the history
// sync engine: it pages through an address's activity, normalizes each raw
// transaction, and reports progress as a page offset cursor.
package explorer

import (
	"context"
	"errors"
	"fmt"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/pkg/types"
	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"
)

// adapterKind scopes the sync cursor for this source.
const adapterKind = "explorer"

const (
	defaultPageSize = 10

	// allAssets asks the provider for activity across every asset rather
	// than a single symbol.
	allAssets = "ALL"
)

// HistoryAPI is the provider-facing port for explorer-style history queries.
// Implementations map 1:1 onto the provider's REST endpoints and return raw
// payloads untouched; normalization happens in the adapter.
type HistoryAPI interface {
	// FetchAddressActivity returns one page of the address's transactions
	// for the given asset symbol, starting at fromIndex, at most nbTx long.
	FetchAddressActivity(ctx context.Context, address, asset string, fromIndex, nbTx int64) ([]txrecord.ExplorerShape, error)

	// FetchActivityBetween returns one page of the transactions exchanged
	// between the two addresses.
	FetchActivityBetween(ctx context.Context, address, counterparty, asset string, fromIndex, nbTx int64) ([]txrecord.ExplorerShape, error)

	// FetchFullNativeHistory returns the address's complete native-currency
	// transaction history.
	FetchFullNativeHistory(ctx context.Context, address string) ([]txrecord.ExplorerShape, error)

	// FetchFullTokenHistory returns the address's complete token transfer
	// history.
	FetchFullTokenHistory(ctx context.Context, address string) ([]txrecord.ExplorerShape, error)

	// FetchSupportedAssets returns the asset symbols the platform supports.
	// Bulk-restored history is filtered down to this set.
	FetchSupportedAssets(ctx context.Context) ([]string, error)
}

type adapter struct {
	api      HistoryAPI
	pageSize int64
	asset    string
}

var (
	_ histsync.SourceAdapter   = (*adapter)(nil)
	_ histsync.ContactSource   = (*adapter)(nil)
	_ histsync.HistoryRestorer = (*adapter)(nil)
)

// Option configures the explorer adapter.
type Option func(*adapter)

// WithPageSize overrides the number of transactions requested per fetch.
func WithPageSize(n int64) Option {
	return func(a *adapter) {
		if n > 0 {
			a.pageSize = n
		}
	}
}

// WithAsset restricts incremental fetches to a single asset symbol instead
// of all assets.
func WithAsset(symbol string) Option {
	return func(a *adapter) {
		if symbol != "" {
			a.asset = symbol
		}
	}
}

// New creates the explorer source adapter on top of the given provider API.
func New(api HistoryAPI, opts ...Option) *adapter {
	a := &adapter{
		api:      api,
		pageSize: defaultPageSize,
		asset:    allAssets,
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

func (a *adapter) Kind() string {
	return adapterKind
}

// FetchNewActivity fetches the next page of the account's activity. The
// cursor is the page offset already consumed; it advances by the number of
// raw transactions the provider returned, malformed ones included, so a
// skipped record is never re-fetched forever.
func (a *adapter) FetchNewActivity(ctx context.Context, account histsync.Account, cursor synccursor.Cursor) (histsync.Batch, error) {
	raw, err := a.api.FetchAddressActivity(ctx, account.Address, a.asset, int64(cursor), a.pageSize)
	if err != nil {
		return histsync.Batch{}, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	return histsync.Batch{
		Records:    a.normalizeAll(ctx, raw),
		NextCursor: cursor + synccursor.Cursor(len(raw)),
	}, nil
}

// FetchActivityWith fetches one page of the transactions between the account
// and the counterparty address.
func (a *adapter) FetchActivityWith(ctx context.Context, account histsync.Account, contactAddress string, cursor synccursor.Cursor) (histsync.Batch, error) {
	raw, err := a.api.FetchActivityBetween(ctx, account.Address, contactAddress, a.asset, int64(cursor), a.pageSize)
	if err != nil {
		return histsync.Batch{}, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	return histsync.Batch{
		Records:    a.normalizeAll(ctx, raw),
		NextCursor: cursor + synccursor.Cursor(len(raw)),
	}, nil
}

// RestoreHistory fetches the account's complete native and token history and
// keeps only transactions whose asset the platform supports.
func (a *adapter) RestoreHistory(ctx context.Context, account histsync.Account) ([]txrecord.TransactionRecord, error) {
	supported, err := a.api.FetchSupportedAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}
	supportedSet := types.NewSet(supported...)

	native, err := a.api.FetchFullNativeHistory(ctx, account.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	tokens, err := a.api.FetchFullTokenHistory(ctx, account.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	raw := make([]txrecord.ExplorerShape, 0, len(native)+len(tokens))
	for _, tx := range append(native, tokens...) {
		if _, ok := supportedSet[tx.Asset]; !ok {
			continue
		}
		raw = append(raw, tx)
	}

	return a.normalizeAll(ctx, raw), nil
}

// normalizeAll converts the raw page, skipping records the normalizer
// rejects.
func (a *adapter) normalizeAll(ctx context.Context, raw []txrecord.ExplorerShape) []txrecord.TransactionRecord {
	records := make([]txrecord.TransactionRecord, 0, len(raw))
	for i := range raw {
		record, err := txrecord.Normalize(txrecord.RawRecord{Explorer: &raw[i]})
		if err != nil {
			if errors.Is(err, txrecord.ErrMalformedRecord) {
				logger.Warn(ctx, "skipping malformed explorer transaction", "error", err)
				continue
			}
			logger.Warn(ctx, "skipping explorer transaction", "tx.hash", raw[i].Hash, "error", err)
			continue
		}

		records = append(records, record)
	}

	return records
}
