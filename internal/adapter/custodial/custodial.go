// Package custodial adapts the custodial execution backend to the history
// sync engine. The backend reports transactions newest-first with monotonic
// numeric ids and raw base-unit amounts; the adapter translates assets and
// amounts through a contract-address table and uses the newest seen id as
// the sync cursor.
package custodial

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/synccursor"
	"github.com/histwatch/histwatch/internal/txrecord"

	"github.com/shopspring/decimal"
)

// adapterKind scopes the sync cursor for this source.
const adapterKind = "custodial"

// BackendTransaction is one raw transaction reported by the custodial
// backend. AssetAddress identifies the asset by contract address and
// AmountRaw is the integer amount in the asset's base units.
type BackendTransaction struct {
	ID           int64           `json:"id"`
	Hash         string          `json:"hash"`
	From         string          `json:"fromAddress"`
	To           string          `json:"toAddress"`
	AssetAddress string          `json:"assetAddress"`
	AmountRaw    decimal.Decimal `json:"amount"`
	Status       string          `json:"status"`
	CreatedAt    int64           `json:"createdAt"`
}

// AssetInfo describes one asset the backend can operate on, keyed by its
// contract address for translation.
type AssetInfo struct {
	Symbol   string `json:"symbol"`
	Address  string `json:"address"`
	Decimals int32  `json:"decimals"`
}

// BackendAPI is the provider-facing port for the custodial backend.
type BackendAPI interface {
	// FetchTransactionsSince returns the account's transactions with an id
	// strictly greater than lastID, newest first.
	FetchTransactionsSince(ctx context.Context, accountID string, lastID int64) ([]BackendTransaction, error)
}

type adapter struct {
	api    BackendAPI
	assets map[string]AssetInfo
}

var _ histsync.SourceAdapter = (*adapter)(nil)

// New creates the custodial source adapter. assets is the asset table used
// to translate backend contract addresses into symbols and base-unit amounts
// into asset units; lookup is case-insensitive on the address.
func New(api BackendAPI, assets []AssetInfo) *adapter {
	table := make(map[string]AssetInfo, len(assets))
	for _, asset := range assets {
		table[strings.ToLower(asset.Address)] = asset
	}

	return &adapter{
		api:    api,
		assets: table,
	}
}

func (a *adapter) Kind() string {
	return adapterKind
}

// FetchNewActivity fetches every backend transaction newer than the cursor
// and normalizes it. Transactions referencing an asset missing from the
// translation table are skipped with a warning; the cursor still advances
// past them. NextCursor is the id of the newest transaction in the window.
func (a *adapter) FetchNewActivity(ctx context.Context, account histsync.Account, cursor synccursor.Cursor) (histsync.Batch, error) {
	txs, err := a.api.FetchTransactionsSince(ctx, account.ID, int64(cursor))
	if err != nil {
		return histsync.Batch{}, fmt.Errorf("%w: %w", histsync.ErrProviderFetch, err)
	}

	batch := histsync.Batch{NextCursor: cursor}
	if len(txs) == 0 {
		return batch, nil
	}

	// Newest first, so the first id is the new cursor.
	if next := synccursor.Cursor(txs[0].ID); next.After(batch.NextCursor) {
		batch.NextCursor = next
	}

	batch.Records = make([]txrecord.TransactionRecord, 0, len(txs))
	for _, tx := range txs {
		asset, ok := a.assets[strings.ToLower(tx.AssetAddress)]
		if !ok {
			logger.Warn(ctx, "skipping transaction with unknown asset",
				"tx.id", tx.ID,
				"asset.address", tx.AssetAddress,
			)
			continue
		}

		record, err := txrecord.Normalize(txrecord.RawRecord{Custodial: &txrecord.CustodialShape{
			ID:        tx.ID,
			Hash:      tx.Hash,
			From:      tx.From,
			To:        tx.To,
			Value:     tx.AmountRaw.Shift(-asset.Decimals),
			Asset:     asset.Symbol,
			Status:    tx.Status,
			CreatedAt: tx.CreatedAt,
		}})
		if err != nil {
			if errors.Is(err, txrecord.ErrMalformedRecord) {
				logger.Warn(ctx, "skipping malformed backend transaction", "tx.id", tx.ID, "error", err)
				continue
			}
			logger.Warn(ctx, "skipping backend transaction", "tx.id", tx.ID, "error", err)
			continue
		}

		batch.Records = append(batch.Records, record)
	}

	return batch, nil
}
