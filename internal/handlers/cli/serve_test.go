package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/balancewatch"
	"github.com/histwatch/histwatch/internal/histsync"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestSyncAllAccounts(t *testing.T) {
	t.Run("should sync every registered account", func(t *testing.T) {
		ctx := t.Context()

		accounts := []histsync.Account{
			{ID: "acc-1", Paradigm: histsync.ParadigmExplorer, Address: "0x111"},
			{ID: "acc-2", Paradigm: histsync.ParadigmCustodial},
		}

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		sync := histsync.NewServiceMock(t)
		sync.EXPECT().SyncAccountHistory(mock.Anything, accounts[0]).Return(histsync.SyncOutcome{}, nil).Once()
		sync.EXPECT().SyncAccountHistory(mock.Anything, accounts[1]).Return(histsync.SyncOutcome{}, nil).Once()

		syncAllAccounts(ctx, registry, sync)
	})

	t.Run("should keep going when one account fails", func(t *testing.T) {
		ctx := t.Context()

		accounts := []histsync.Account{
			{ID: "acc-1", Paradigm: histsync.ParadigmExplorer, Address: "0x111"},
			{ID: "acc-2", Paradigm: histsync.ParadigmCustodial},
		}

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		sync := histsync.NewServiceMock(t)
		sync.EXPECT().
			SyncAccountHistory(mock.Anything, accounts[0]).
			Return(histsync.SyncOutcome{}, errors.New("provider down")).
			Once()
		sync.EXPECT().SyncAccountHistory(mock.Anything, accounts[1]).Return(histsync.SyncOutcome{}, nil).Once()

		syncAllAccounts(ctx, registry, sync)
	})

	t.Run("should stop once the context is canceled", func(t *testing.T) {
		ctx := t.Context()

		accounts := []histsync.Account{
			{ID: "acc-1", Paradigm: histsync.ParadigmExplorer, Address: "0x111"},
			{ID: "acc-2", Paradigm: histsync.ParadigmCustodial},
		}

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		sync := histsync.NewServiceMock(t)
		sync.EXPECT().
			SyncAccountHistory(mock.Anything, accounts[0]).
			Return(histsync.SyncOutcome{}, context.Canceled).
			Once()

		syncAllAccounts(ctx, registry, sync)
	})

	t.Run("should do nothing when listing fails", func(t *testing.T) {
		ctx := t.Context()

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return(nil, errors.New("storage down")).Once()

		syncAllAccounts(ctx, registry, histsync.NewServiceMock(t))
	})
}

func TestWatchAccountBalances(t *testing.T) {
	t.Run("should re-sync an account when its balance moves", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		account := histsync.Account{ID: "acc-1", Paradigm: histsync.ParadigmExplorer, Address: "0x111"}

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return([]histsync.Account{account}, nil).Once()

		synced := make(chan struct{}, 1)
		sync := histsync.NewServiceMock(t)
		sync.EXPECT().
			SyncAccountHistory(mock.Anything, account).
			RunAndReturn(func(context.Context, histsync.Account) (histsync.SyncOutcome, error) {
				select {
				case synced <- struct{}{}:
				default:
				}
				return histsync.SyncOutcome{}, nil
			})

		source := balancewatch.NewBalanceSourceMock(t)
		source.EXPECT().FetchBalance(mock.Anything, "0x111").Return(decimal.NewFromInt(10), nil).Once()
		source.EXPECT().FetchBalance(mock.Anything, "0x111").Return(decimal.NewFromInt(15), nil)

		bw := balancewatch.New(source, balancewatch.WithPollInterval(5*time.Millisecond))
		watchAccountBalances(ctx, bw, registry, sync)

		select {
		case <-synced:
		case <-time.After(time.Second):
			t.Fatal("expected a balance-triggered sync")
		}
	})

	t.Run("should skip accounts without an on-chain address", func(t *testing.T) {
		ctx := t.Context()

		accounts := []histsync.Account{{ID: "acc-2", Paradigm: histsync.ParadigmCustodial}}

		registry := accountregistry.NewServiceMock(t)
		registry.EXPECT().List(mock.Anything).Return(accounts, nil).Once()

		bw := balancewatch.New(balancewatch.NewBalanceSourceMock(t))
		watchAccountBalances(ctx, bw, registry, histsync.NewServiceMock(t))
	})
}

func TestServeCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		cmd := serveCommand(accountregistry.NewServiceMock(t), histsync.NewServiceMock(t), nil)

		assert.Equal(t, "serve", cmd.Name)
		assert.Len(t, cmd.Flags, 1)

		scheduleFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "schedule", scheduleFlag.Name)
		assert.False(t, scheduleFlag.Required)
		assert.Equal(t, defaultSyncSchedule, scheduleFlag.Value)
	})
}
