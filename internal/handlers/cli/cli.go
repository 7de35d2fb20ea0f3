package cli

import (
	"context"
	"os"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/balancewatch"
	"github.com/histwatch/histwatch/internal/histsync"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the histwatch CLI application.
//
// It registers all available commands, including:
//
//   - `watch`: Registers an account for history synchronization.
//   - `unwatch`: Unregisters an account.
//   - `sync`: Runs one sync for an account, optionally against a single contact.
//   - `restore`: Rebuilds an account's history log from a full provider fetch.
//   - `serve`: Runs scheduled syncs for every registered account until interrupted.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - ar: The accountregistry service implementation used by account commands.
//   - hs: The histsync service implementation used by sync commands.
//   - bw: Optional balance watcher used by `serve` to trigger event-driven
//     syncs; may be nil when no chain RPC is configured.
func Run(ctx context.Context, ar accountregistry.Service, hs histsync.Service, bw *balancewatch.Watcher) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "histwatch",
		Description:           "Command-line interface for managing accounts and running history synchronization.",
		Usage:                 "histwatch [command] [flags]",
		Commands: []*cli.Command{
			startWatchingAccountCommand(ar),
			stopWatchingAccountCommand(ar),
			syncAccountCommand(ar, hs),
			restoreAccountCommand(ar, hs),
			serveCommand(ar, hs, bw),
		},
	}

	return app.Run(ctx, os.Args)
}
