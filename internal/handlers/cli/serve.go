package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/balancewatch"
	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/urfave/cli/v3"
)

// defaultSyncSchedule is the cron expression used when --schedule is not
// given.
const defaultSyncSchedule = "@every 30s"

// syncAllAccounts runs one sync for every registered account. Per-account
// failures are logged and the remaining accounts still sync; a coalesced
// trigger is not an error.
func syncAllAccounts(ctx context.Context, ar accountregistry.Service, hs histsync.Service) {
	accounts, err := ar.List(ctx)
	if err != nil {
		logger.Error(ctx, "error listing accounts for scheduled sync", "error", err)
		return
	}

	for _, account := range accounts {
		if _, err := hs.SyncAccountHistory(ctx, account); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			logger.Error(ctx, "scheduled sync failed", "account.id", account.ID, "error", err)
		}
	}
}

// watchAccountBalances subscribes every registered account with an on-chain
// address to balance-change events and re-syncs the account as soon as its
// balance moves, instead of waiting for the next scheduled tick. Accounts
// registered after startup are picked up by the schedule only. Subscriptions
// are torn down when ctx is canceled.
func watchAccountBalances(ctx context.Context, bw *balancewatch.Watcher, ar accountregistry.Service, hs histsync.Service) {
	accounts, err := ar.List(ctx)
	if err != nil {
		logger.Error(ctx, "error listing accounts for balance watching", "error", err)
		return
	}

	for _, account := range accounts {
		if account.Address == "" {
			continue
		}

		sub := bw.Subscribe(ctx, account.Address)
		go func(account histsync.Account, sub *balancewatch.Subscription) {
			defer sub.Unsubscribe()

			for range sub.Changes() {
				if _, err := hs.SyncAccountHistory(ctx, account); err != nil {
					if errors.Is(err, context.Canceled) {
						return
					}
					logger.Error(ctx, "balance-triggered sync failed", "account.id", account.ID, "error", err)
				}
			}
		}(account, sub)
	}
}

// serveCommand returns a CLI command that keeps every registered account's
// history synchronized on a cron schedule.
//
// Usage example:
//
//	histwatch serve --schedule "@every 1m"
//
// The process runs indefinitely until it receives an interrupt (SIGINT or
// SIGTERM).
func serveCommand(ar accountregistry.Service, hs histsync.Service, bw *balancewatch.Watcher) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Continuously sync every registered account on a schedule.",
		Usage:       "Runs scheduled syncs. Terminates gracefully on Ctrl+C or termination signals.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "schedule",
				Usage: "Cron expression controlling how often accounts are synced",
				Value: defaultSyncSchedule,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			scheduler := cron.New()
			if _, err := scheduler.AddFunc(c.String("schedule"), func() {
				syncAllAccounts(ctx, ar, hs)
			}); err != nil {
				return err
			}

			scheduler.Start()
			defer func() {
				cancel()
				<-scheduler.Stop().Done()
			}()

			if bw != nil {
				watchAccountBalances(ctx, bw, ar, hs)
			}

			<-quit
			return nil
		},
	}
}
