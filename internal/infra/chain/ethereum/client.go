// Package ethereum supplies on-chain confirmation evidence and balances for
// Ethereum-compatible networks over JSON-RPC. It implements the sync
// engine's ChainInfo port and the balance watcher's BalanceSource port.
package ethereum

import (
	"github.com/histwatch/histwatch/internal/balancewatch"
	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/transport/jsonrpc"
)

// nativeDecimals is the base-unit scale of the chain's native currency
// (wei per ether).
const nativeDecimals = 18

// client talks to an Ethereum-compatible node via a JSON-RPC connection.
type client struct {
	conn jsonrpc.Client
}

var (
	_ histsync.ChainInfo         = (*client)(nil)
	_ balancewatch.BalanceSource = (*client)(nil)
)

// NewClient creates an Ethereum chain client on top of the given JSON-RPC
// connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
