package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/histwatch/histwatch/internal/accountregistry"
	"github.com/histwatch/histwatch/internal/adapter/custodial"
	"github.com/histwatch/histwatch/internal/adapter/explorer"
	"github.com/histwatch/histwatch/internal/adapter/pushfeed"
	"github.com/histwatch/histwatch/internal/balancewatch"
	"github.com/histwatch/histwatch/internal/handlers/cli"
	"github.com/histwatch/histwatch/internal/histsync"
	"github.com/histwatch/histwatch/internal/infra/chain/ethereum"
	"github.com/histwatch/histwatch/internal/infra/provider/custodialapi"
	"github.com/histwatch/histwatch/internal/infra/provider/explorerapi"
	"github.com/histwatch/histwatch/internal/infra/provider/pushapi"
	"github.com/histwatch/histwatch/internal/infra/storage/redis"
	"github.com/histwatch/histwatch/internal/pkg/logger"
	"github.com/histwatch/histwatch/internal/pkg/resilience/retry"
	"github.com/histwatch/histwatch/internal/pkg/telemetry"
	transporthttp "github.com/histwatch/histwatch/internal/pkg/transport/http"
	"github.com/histwatch/histwatch/internal/pkg/transport/jsonrpc"
	"github.com/histwatch/histwatch/internal/synccursor"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	OtelExporterEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`

	RedisAddress  string `envconfig:"REDIS_ADDRESS" required:"true"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	ExplorerAPIBaseURL string `envconfig:"EXPLORER_API_BASE_URL" required:"true"`
	ExplorerAPIKey     string `envconfig:"EXPLORER_API_KEY"`

	PushAPIBaseURL string `envconfig:"PUSH_API_BASE_URL"`
	PushAPIKey     string `envconfig:"PUSH_API_KEY"`

	CustodialAPIBaseURL string `envconfig:"CUSTODIAL_API_BASE_URL"`
	CustodialAPIKey     string `envconfig:"CUSTODIAL_API_KEY"`
	CustodialAssets     string `envconfig:"CUSTODIAL_ASSETS"`

	EthereumRPCEndpoint string `envconfig:"ETHEREUM_RPC_ENDPOINT"`

	FetchTimeout        time.Duration `envconfig:"FETCH_TIMEOUT" default:"30s"`
	MaxProcessingTime   time.Duration `envconfig:"MAX_PROCESSING_TIME" default:"5m"`
	BalancePollInterval time.Duration `envconfig:"BALANCE_POLL_INTERVAL" default:"30s"`
}

func main() {
	ctx := context.Background()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		panic(err)
	}

	if cfg.OtelExporterEndpoint != "" {
		shutdown, err := telemetry.Init(ctx, "histwatch")
		if err != nil {
			panic(err)
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}

	storage, err := redis.NewClient(ctx, cfg.RedisAddress, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "error connecting to redis", "error", err)
	}
	defer storage.Close()

	httpClient := transporthttp.NewClient(transporthttp.WithTimeout(cfg.FetchTimeout))

	explorerAdapter := explorer.New(explorerapi.NewClient(httpClient, cfg.ExplorerAPIBaseURL, cfg.ExplorerAPIKey))

	explorerAdapters := []histsync.SourceAdapter{explorerAdapter}
	if cfg.PushAPIBaseURL != "" {
		explorerAdapters = append(explorerAdapters, pushfeed.New(pushapi.NewClient(httpClient, cfg.PushAPIBaseURL, cfg.PushAPIKey)))
	}

	adapters := map[histsync.Paradigm][]histsync.SourceAdapter{
		histsync.ParadigmExplorer: explorerAdapters,
	}
	if cfg.CustodialAPIBaseURL != "" {
		var assets []custodial.AssetInfo
		if cfg.CustodialAssets != "" {
			if err := json.Unmarshal([]byte(cfg.CustodialAssets), &assets); err != nil {
				logger.Fatal(ctx, "error parsing custodial asset table", "error", err)
			}
		}

		adapters[histsync.ParadigmCustodial] = []histsync.SourceAdapter{
			custodial.New(custodialapi.NewClient(httpClient, cfg.CustodialAPIBaseURL, cfg.CustodialAPIKey), assets),
		}
	}

	opts := []histsync.Option{
		histsync.WithSyncGuard(storage),
		histsync.WithHistoryUpdatedNotifier(storage),
		histsync.WithFetchTimeout(cfg.FetchTimeout),
		histsync.WithMaxProcessingTime(cfg.MaxProcessingTime),
		histsync.WithRetry(retry.New()),
	}
	var balanceWatcher *balancewatch.Watcher
	if cfg.EthereumRPCEndpoint != "" {
		chain := ethereum.NewClient(jsonrpc.NewClient(httpClient.StandardClient(), cfg.EthereumRPCEndpoint))
		opts = append(opts, histsync.WithChainInfo(chain))
		balanceWatcher = balancewatch.New(chain, balancewatch.WithPollInterval(cfg.BalancePollInterval))
	}

	syncService := histsync.New(storage, synccursor.NewTracker(storage), adapters, opts...)
	registryService := accountregistry.New(storage)

	if err := cli.Run(ctx, registryService, syncService, balanceWatcher); err != nil {
		logger.Fatal(ctx, "error running histwatch", "error", err)
	}
}
