package ethereum

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/types"

	"github.com/shopspring/decimal"
)

// receiptResponse is the raw transaction receipt returned by the
// eth_getTransactionReceipt call. Only the fields the confirmation pass
// consumes are decoded.
type receiptResponse struct {
	TransactionHash string    `json:"transactionHash"`
	Status          types.Hex `json:"status"`
	BlockNumber     types.Hex `json:"blockNumber"`
	GasUsed         types.Hex `json:"gasUsed"`
}

// toReceipt converts the raw response to the engine's receipt shape. A
// status of 0x1 marks successful execution.
func (r receiptResponse) toReceipt() *histsync.Receipt {
	return &histsync.Receipt{
		Succeeded:   r.Status.Int() == 1,
		BlockNumber: r.BlockNumber.Int(),
		GasUsed:     float64(r.GasUsed.Int()),
	}
}

// FetchTransactionReceipt fetches the receipt for the given transaction
// hash. A null node response means the transaction is not yet mined and is
// reported as (nil, nil).
func (c *client) FetchTransactionReceipt(ctx context.Context, hash string) (*histsync.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", hash)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 || string(data) == "null" {
		return nil, nil
	}

	var receipt receiptResponse
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}

	return receipt.toReceipt(), nil
}

// FetchChainHeadNumber fetches the latest block number known to the node.
func (c *client) FetchChainHeadNumber(ctx context.Context) (int64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var head types.Hex
	if err := json.Unmarshal(data, &head); err != nil {
		return 0, err
	}

	return head.Int(), nil
}

// FetchBalance fetches the address's native balance at the latest block,
// converted from base units to asset units. Balances can exceed int64, so
// the hex quantity is decoded through a big integer.
func (c *client) FetchBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	data, err := c.conn.Fetch(ctx, "eth_getBalance", address, "latest")
	if err != nil {
		return decimal.Zero, err
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return decimal.Zero, err
	}

	wei, ok := new(big.Int).SetString(strings.TrimPrefix(raw, "0x"), 16)
	if !ok {
		return decimal.Zero, fmt.Errorf("invalid balance quantity: %q", raw)
	}

	return decimal.NewFromBigInt(wei, -nativeDecimals), nil
}
