package txrecord

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/histwatch/histwatch/internal/pkg/validator"

	"github.com/shopspring/decimal"
)

// ErrMalformedRecord is returned by Normalize when a raw payload lacks the
// transaction identifier required to place it in a history log. Callers are
// expected to skip the record and keep processing the rest of the batch.
var ErrMalformedRecord = errors.New("raw record is missing a transaction identifier")

// ExplorerShape is the raw transaction shape returned by the explorer-style
// provider API. Value decodes from both quoted and unquoted JSON numbers.
type ExplorerShape struct {
	Hash      string          `json:"hash"`
	From      string          `json:"from"`
	To        string          `json:"to"`
	Value     decimal.Decimal `json:"value"`
	Asset     string          `json:"asset"`
	Status    string          `json:"status"`
	Timestamp int64           `json:"timestamp"`
}

// NotificationShape is the transaction payload embedded in a push
// notification event. It is the richest of the provider shapes and may carry
// mined-status evidence alongside the base transaction fields.
type NotificationShape struct {
	Hash             string          `json:"hash"`
	From             string          `json:"from"`
	To               string          `json:"to"`
	Value            decimal.Decimal `json:"value"`
	Asset            string          `json:"asset"`
	Status           string          `json:"status"`
	GasUsed          float64         `json:"gasUsed"`
	GasPrice         float64         `json:"gasPrice"`
	BlockNumber      *int64          `json:"blockNumber"`
	CreatedAt        int64           `json:"createdAt"`
	Note             string          `json:"note"`
	Tag              string          `json:"tag"`
	Extra            json.RawMessage `json:"extra"`
	StateInPPN       string          `json:"stateInPPN"`
	IsPPNTransaction bool            `json:"isPPNTransaction"`
}

// CustodialShape is a transaction reported by the custodial execution
// backend, after the adapter has translated the backend-native asset and
// amount representations using its asset-symbol table. Value is the decimal
// amount in asset units, not base units.
type CustodialShape struct {
	ID        int64
	Hash      string
	From      string
	To        string
	Value     decimal.Decimal
	Asset     string
	Status    string
	CreatedAt int64
}

// RawRecord is the closed tagged union of provider-specific transaction
// shapes. Exactly one variant must be set; it is consumed only by Normalize,
// so no other component ever sees a provider-specific shape.
type RawRecord struct {
	Explorer     *ExplorerShape
	Notification *NotificationShape
	Custodial    *CustodialShape
}

// parseStatus maps a provider status string onto the canonical enum,
// defaulting to pending when the source did not specify one.
func parseStatus(raw string) Status {
	switch strings.ToLower(raw) {
	case string(StatusConfirmed), "completed", "success", "mined":
		return StatusConfirmed
	case string(StatusFailed), "reverted", "error":
		return StatusFailed
	default:
		return StatusPending
	}
}

// Normalize converts a provider-specific raw record into the canonical
// TransactionRecord. It is a pure function: no I/O, no shared state.
//
// Guarantees on the output:
//   - Status defaults to pending when the source did not specify one.
//   - CreatedAt defaults to the current time when the source omitted it.
//   - Hash is lower-cased for identity comparisons; the original casing is
//     preserved in DisplayHash when it differs.
//   - Value is a decimal string.
//
// It fails with ErrMalformedRecord when the raw payload carries no
// transaction identifier, or when no union variant is set.
func Normalize(raw RawRecord) (TransactionRecord, error) {
	var record TransactionRecord

	switch {
	case raw.Explorer != nil:
		r := raw.Explorer
		record = TransactionRecord{
			Hash:      r.Hash,
			From:      r.From,
			To:        r.To,
			Value:     r.Value.String(),
			Asset:     r.Asset,
			Status:    parseStatus(r.Status),
			CreatedAt: r.Timestamp,
		}
	case raw.Notification != nil:
		r := raw.Notification
		record = TransactionRecord{
			Hash:             r.Hash,
			From:             r.From,
			To:               r.To,
			Value:            r.Value.String(),
			Asset:            r.Asset,
			Status:           parseStatus(r.Status),
			CreatedAt:        r.CreatedAt,
			GasUsed:          r.GasUsed,
			GasPrice:         r.GasPrice,
			BlockNumber:      r.BlockNumber,
			Note:             r.Note,
			Tag:              r.Tag,
			Extra:            r.Extra,
			StateInPPN:       r.StateInPPN,
			IsPPNTransaction: r.IsPPNTransaction,
		}
	case raw.Custodial != nil:
		r := raw.Custodial
		record = TransactionRecord{
			Hash:      r.Hash,
			From:      r.From,
			To:        r.To,
			Value:     r.Value.String(),
			Asset:     r.Asset,
			Status:    parseStatus(r.Status),
			CreatedAt: r.CreatedAt,
		}
	default:
		return TransactionRecord{}, fmt.Errorf("%w: empty raw record", ErrMalformedRecord)
	}

	if lowered := strings.ToLower(record.Hash); lowered != record.Hash {
		record.DisplayHash = record.Hash
		record.Hash = lowered
	}

	if record.CreatedAt == 0 {
		record.CreatedAt = time.Now().Unix()
	}

	if err := validator.Validate(record); err != nil {
		return TransactionRecord{}, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
	}

	return record, nil
}
