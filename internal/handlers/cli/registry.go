package cli

import (
	"context"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/histsync"

	"github.com/urfave/cli/v3"
)

// startWatchingAccountCommand returns a CLI command that registers an
// account for history synchronization.
//
// Usage example:
//
//	histwatch watch --id acc-1 --paradigm explorer --address 0xABC123...
func startWatchingAccountCommand(ar accountregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register an account so its transaction history is kept synchronized.",
		Usage:       "Registers an account. Must provide an id and the paradigm its history is fetched through.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Stable account identifier used as the history log key",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "paradigm",
				Usage:    "History retrieval paradigm (explorer or custodial)",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "On-chain address the account's activity is fetched for",
			},
			&cli.StringFlag{
				Name:  "wallet-id",
				Usage: "Provider-side wallet id used by the notification feed",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				id       = c.String("id")
				paradigm = histsync.Paradigm(c.String("paradigm"))
				address  = c.String("address")
				walletID = c.String("wallet-id")
			)

			return ar.Register(ctx, id, paradigm, address, walletID)
		},
	}
}

// stopWatchingAccountCommand returns a CLI command that unregisters an
// account from history synchronization.
//
// Usage example:
//
//	histwatch unwatch --id acc-1
func stopWatchingAccountCommand(ar accountregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister an account from history synchronization.",
		Usage:       "Stops syncing an account. Must provide the account id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Account identifier to stop syncing",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return ar.Unregister(ctx, c.String("id"))
		},
	}
}
