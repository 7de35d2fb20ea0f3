package cli

import (
	"errors"
	"testing"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/histsync"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/urfave/cli/v3"
)

func TestStartWatchingAccountCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		mockService := accountregistry.NewServiceMock(t)

		cmd := startWatchingAccountCommand(mockService)

		assert.Equal(t, "watch", cmd.Name)
		assert.Len(t, cmd.Flags, 4)

		idFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "id", idFlag.Name)
		assert.True(t, idFlag.Required)

		paradigmFlag := cmd.Flags[1].(*cli.StringFlag)
		assert.Equal(t, "paradigm", paradigmFlag.Name)
		assert.True(t, paradigmFlag.Required)

		addressFlag := cmd.Flags[2].(*cli.StringFlag)
		assert.Equal(t, "address", addressFlag.Name)
		assert.False(t, addressFlag.Required)

		walletIDFlag := cmd.Flags[3].(*cli.StringFlag)
		assert.Equal(t, "wallet-id", walletIDFlag.Name)
		assert.False(t, walletIDFlag.Required)
	})

	t.Run("should register the account with valid flags", func(t *testing.T) {
		ctx := t.Context()

		mockService := accountregistry.NewServiceMock(t)
		mockService.EXPECT().
			Register(mock.Anything, "acc-1", histsync.ParadigmExplorer, "0x111", "wallet-1").
			Return(nil).
			Once()

		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "watch", "--id", "acc-1", "--paradigm", "explorer", "--address", "0x111", "--wallet-id", "wallet-1"})
		assert.NoError(t, err)
	})

	t.Run("should return error when the service fails", func(t *testing.T) {
		ctx := t.Context()
		expectedError := errors.New("service error")

		mockService := accountregistry.NewServiceMock(t)
		mockService.EXPECT().
			Register(mock.Anything, "acc-1", histsync.ParadigmCustodial, "", "").
			Return(expectedError).
			Once()

		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "watch", "--id", "acc-1", "--paradigm", "custodial"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "service error")
	})

	t.Run("should fail when the id flag is missing", func(t *testing.T) {
		ctx := t.Context()

		mockService := accountregistry.NewServiceMock(t)
		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "watch", "--paradigm", "explorer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "id")
	})

	t.Run("should fail when the paradigm flag is missing", func(t *testing.T) {
		ctx := t.Context()

		mockService := accountregistry.NewServiceMock(t)
		app := &cli.Command{
			Commands: []*cli.Command{startWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "watch", "--id", "acc-1"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "paradigm")
	})
}

func TestStopWatchingAccountCommand(t *testing.T) {
	t.Run("should create command with correct metadata", func(t *testing.T) {
		mockService := accountregistry.NewServiceMock(t)

		cmd := stopWatchingAccountCommand(mockService)

		assert.Equal(t, "unwatch", cmd.Name)
		assert.Len(t, cmd.Flags, 1)

		idFlag := cmd.Flags[0].(*cli.StringFlag)
		assert.Equal(t, "id", idFlag.Name)
		assert.True(t, idFlag.Required)
	})

	t.Run("should unregister the account", func(t *testing.T) {
		ctx := t.Context()

		mockService := accountregistry.NewServiceMock(t)
		mockService.EXPECT().Unregister(mock.Anything, "acc-1").Return(nil).Once()

		app := &cli.Command{
			Commands: []*cli.Command{stopWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "unwatch", "--id", "acc-1"})
		assert.NoError(t, err)
	})

	t.Run("should return error when the service fails", func(t *testing.T) {
		ctx := t.Context()

		mockService := accountregistry.NewServiceMock(t)
		mockService.EXPECT().Unregister(mock.Anything, "acc-1").Return(errors.New("storage down")).Once()

		app := &cli.Command{
			Commands: []*cli.Command{stopWatchingAccountCommand(mockService)},
		}

		err := app.Run(ctx, []string{"test", "unwatch", "--id", "acc-1"})
		assert.Error(t, err)
	})
}
