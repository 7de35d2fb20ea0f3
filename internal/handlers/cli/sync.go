package cli

import (
	"context"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// syncAccountCommand returns a CLI command that runs one history sync for a
// registered account. With --contact it instead merges the activity between
// the account and a single counterparty address.
//
// Usage examples:
//
//	histwatch sync --id acc-1
//	histwatch sync --id acc-1 --contact 0xDEF456...
func syncAccountCommand(ar accountregistry.Service, hs histsync.Service) *cli.Command {
	return &cli.Command{
		Name:        "sync",
		Description: "Run one incremental history sync for a registered account.",
		Usage:       "Syncs an account's history. Must provide the account id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Account identifier to sync",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "contact",
				Usage: "Counterparty address to sync activity with, instead of a full sync",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			account, err := ar.Get(ctx, c.String("id"))
			if err != nil {
				return err
			}

			var outcome histsync.SyncOutcome
			if contact := c.String("contact"); contact != "" {
				outcome, err = hs.SyncContactHistory(ctx, account, contact)
			} else {
				outcome, err = hs.SyncAccountHistory(ctx, account)
			}
			if err != nil {
				return err
			}

			logger.Info(ctx, "sync finished",
				"account.id", account.ID,
				"updated", outcome.Updated,
				"log.size", len(outcome.Log),
			)
			return nil
		},
	}
}

// restoreAccountCommand returns a CLI command that rebuilds an account's
// history log from the provider's complete history.
//
// Usage example:
//
//	histwatch restore --id acc-1
func restoreAccountCommand(ar accountregistry.Service, hs histsync.Service) *cli.Command {
	return &cli.Command{
		Name:        "restore",
		Description: "Rebuild an account's history log from a full provider-side fetch.",
		Usage:       "Restores an account's history. Must provide the account id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "id",
				Usage:    "Account identifier to restore",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			account, err := ar.Get(ctx, c.String("id"))
			if err != nil {
				return err
			}

			outcome, err := hs.RestoreAccountHistory(ctx, account)
			if err != nil {
				return err
			}

			logger.Info(ctx, "restore finished",
				"account.id", account.ID,
				"updated", outcome.Updated,
				"log.size", len(outcome.Log),
			)
			return nil
		},
	}
}
