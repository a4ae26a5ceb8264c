// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sprintertech/sprinter-settlement/api"
	"github.com/sprintertech/sprinter-settlement/api/handlers"
	"github.com/sprintertech/sprinter-settlement/balance"
	"github.com/sprintertech/sprinter-settlement/bundle"
	"github.com/sprintertech/sprinter-settlement/cache"
	"github.com/sprintertech/sprinter-settlement/chains/evm"
	"github.com/sprintertech/sprinter-settlement/config"
	"github.com/sprintertech/sprinter-settlement/cost"
	"github.com/sprintertech/sprinter-settlement/health"
	"github.com/sprintertech/sprinter-settlement/metrics"
	"github.com/sprintertech/sprinter-settlement/price"
	"github.com/sprintertech/sprinter-settlement/protocol/rhinestone"
	"github.com/sygmaprotocol/sygma-core/observability"
)

var Version string

// LoadConfig reads the service configuration selected by the config flags
func LoadConfig() (*config.Config, error) {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)
	configURL := viper.GetString("config-url")

	var configuration *config.Config
	if configURL != "" {
		configuration, err = config.GetSharedConfigFromNetwork(configURL)
		if err != nil {
			return nil, err
		}
	}

	if strings.ToLower(configFlag) == "env" {
		return config.GetConfigFromENV(configuration)
	}
	return config.GetConfigFromFile(configFlag, configuration)
}

// NewBundleTracker wires the orchestrator backed bundle status tracker
func NewBundleTracker(ctx context.Context, configuration *config.Config, m bundle.Metrics) *bundle.Tracker {
	serviceConfig := configuration.ServiceConfig

	orchestrator := rhinestone.NewRhinestoneOrchestrator(
		serviceConfig.OrchestratorConfig.Url,
		serviceConfig.OrchestratorConfig.ApiKey,
		cache.NewCache[*rhinestone.Bundle](ctx, serviceConfig.BundleCacheTTL))
	guard := bundle.NewGuard(cache.NewCache[bundle.Status](ctx, serviceConfig.StatusCacheTTL))

	return bundle.NewTracker(
		orchestrator,
		orchestrator,
		guard,
		m,
		serviceConfig.FillQuorum,
		serviceConfig.QueryTimeout)
}

func Run() error {
	configuration, err := LoadConfig()
	panicOnError(err)

	serviceConfig := configuration.ServiceConfig
	observability.ConfigureLogger(serviceConfig.LogLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sc, err := config.LoadSolverConfig(
		ctx,
		viper.GetString(config.SolverConfigFlagName),
		viper.GetString(config.SolverConfigHashFlagName),
		config.S3Config{
			Region:   viper.GetString(config.S3RegionFlagName),
			Endpoint: viper.GetString(config.S3EndpointFlagName),
		})
	panicOnError(err)
	log.Info().Msg("Successfully loaded solver config")

	go health.StartHealthEndpoint(ctx, serviceConfig.HealthPort)

	mp, err := observability.InitMetricProvider(ctx, serviceConfig.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	settlementMetrics, err := metrics.NewSettlementMetrics(
		ctx,
		mp.Meter("settlement-metric-provider"),
		serviceConfig.Env,
		serviceConfig.Id,
		Version)
	panicOnError(err)

	tokenStore := config.NewTokenStore()
	clients := make(map[uint64]evm.ContractCaller)
	for _, chainConfig := range configuration.ChainConfigs {
		switch chainConfig["type"] {
		case "evm":
			{
				c, err := evm.NewEVMConfig(chainConfig, sc)
				panicOnError(err)

				client, err := ethclient.DialContext(ctx, c.GeneralChainConfig.Endpoint)
				panicOnError(err)

				log.Info().Uint64("chain", *c.GeneralChainConfig.Id).Msgf("Registering EVM chain %s", c.GeneralChainConfig.Name)

				clients[*c.GeneralChainConfig.Id] = client
				tokenStore.AddChainTokens(*c.GeneralChainConfig.Id, c.Tokens)
			}
		default:
			panic(fmt.Errorf("type '%s' not recognized", chainConfig["type"]))
		}
	}

	fetcher := balance.NewFetcher(
		evm.NewBalanceProvider(clients, tokenStore),
		tokenStore.Chains(),
		serviceConfig.QueryTimeout,
		settlementMetrics)

	priceAPI := price.NewCoinmarketcapAPI(
		serviceConfig.CoinmarketcapConfig.Url,
		serviceConfig.CoinmarketcapConfig.ApiKey)
	valuer := price.NewUSDValuer(priceAPI, tokenStore, cache.NewCache[float64](ctx, serviceConfig.PriceCacheTTL))
	resolver := cost.NewResolver(tokenStore, valuer)

	tracker := NewBundleTracker(ctx, configuration, settlementMetrics)

	quoteHandler := handlers.NewQuoteHandler(fetcher, resolver, tokenStore, settlementMetrics, serviceConfig.FeeBps)
	bundleHandler := handlers.NewBundleHandler(tracker)
	watchHandler := handlers.NewWatchHandler(tracker, serviceConfig.WatchInterval)
	go api.Serve(ctx, serviceConfig.ApiAddr, quoteHandler, bundleHandler, watchHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started settlement service %s. Version: v%s", serviceConfig.Id, Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
