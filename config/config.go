// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

const (
	ENV_PREFIX     = "SPRINTER"
	MAX_FEE_BPS    = 10_000
	ENV_CHAINS_KEY = "SPRINTER_CHAINS"
)

type Config struct {
	ServiceConfig ServiceConfig
	ChainConfigs  []map[string]interface{}
}

type ServiceConfig struct {
	Id                        string
	Env                       string
	LogLevel                  zerolog.Level
	ApiAddr                   string
	HealthPort                uint16
	OpenTelemetryCollectorURL string
	FeeBps                    uint64
	FillQuorum                uint64
	QueryTimeout              time.Duration
	StatusCacheTTL            time.Duration
	BundleCacheTTL            time.Duration
	PriceCacheTTL             time.Duration
	WatchInterval             time.Duration
	CoinmarketcapConfig       CoinmarketcapConfig
	OrchestratorConfig        OrchestratorConfig
}

type CoinmarketcapConfig struct {
	Url    string `mapstructure:"url" json:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey" json:"apiKey"`
}

type OrchestratorConfig struct {
	Url    string `mapstructure:"url" json:"url" default:"https://orchestrator.rhinestone.dev"`
	ApiKey string `mapstructure:"apiKey" json:"apiKey"`
}

type RawConfig struct {
	ServiceConfig RawServiceConfig         `mapstructure:"serviceConfig" json:"serviceConfig"`
	ChainConfigs  []map[string]interface{} `mapstructure:"chains" json:"chains"`
}

type RawServiceConfig struct {
	Id                        string              `mapstructure:"id" json:"id"`
	Env                       string              `mapstructure:"env" json:"env" default:"local"`
	LogLevel                  string              `mapstructure:"logLevel" json:"logLevel" default:"info"`
	ApiAddr                   string              `mapstructure:"apiAddr" json:"apiAddr" default:":3000"`
	HealthPort                uint16              `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	OpenTelemetryCollectorURL string              `mapstructure:"openTelemetryCollectorURL" json:"openTelemetryCollectorURL"`
	FeeBps                    *uint64             `mapstructure:"feeBps" json:"feeBps" default:"30"`
	FillQuorum                uint64              `mapstructure:"fillQuorum" json:"fillQuorum" default:"1"`
	QueryTimeout              string              `mapstructure:"queryTimeout" json:"queryTimeout" default:"10s"`
	StatusCacheTTL            string              `mapstructure:"statusCacheTTL" json:"statusCacheTTL" default:"24h"`
	BundleCacheTTL            string              `mapstructure:"bundleCacheTTL" json:"bundleCacheTTL" default:"5s"`
	PriceCacheTTL             string              `mapstructure:"priceCacheTTL" json:"priceCacheTTL" default:"1m"`
	WatchInterval             string              `mapstructure:"watchInterval" json:"watchInterval" default:"5s"`
	CoinmarketcapConfig       CoinmarketcapConfig `mapstructure:"coinmarketcap" json:"coinmarketcap"`
	OrchestratorConfig        OrchestratorConfig  `mapstructure:"orchestrator" json:"orchestrator"`
}

func (c *RawServiceConfig) Validate() error {
	if c.FeeBps != nil && *c.FeeBps > MAX_FEE_BPS {
		return fmt.Errorf("fee bps %d exceeds %d", *c.FeeBps, MAX_FEE_BPS)
	}
	if c.CoinmarketcapConfig.ApiKey == "" {
		return fmt.Errorf("required field coinmarketcap.apiKey empty")
	}
	return nil
}

// GetConfigFromFile reads configuration from a json or yaml file. Values missing from the file
// are filled from the shared configuration if one is provided.
func GetConfigFromFile(path string, shared *Config) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext != "" {
		v.SetConfigType(ext)
	}

	err := v.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("failed reading config file %s: %w", path, err)
	}

	rawConfig := RawConfig{}
	err = v.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	return processRawConfig(rawConfig, shared)
}

// GetConfigFromENV reads configuration from SPRINTER_ prefixed environment variables.
// Chain configurations are read as a json array from SPRINTER_CHAINS.
func GetConfigFromENV(shared *Config) (*Config, error) {
	v := viper.New()
	for key, env := range envKeys() {
		err := v.BindEnv(key, env)
		if err != nil {
			return nil, err
		}
	}

	rawConfig := RawConfig{}
	err := v.Unmarshal(&rawConfig)
	if err != nil {
		return nil, err
	}

	chains := os.Getenv(ENV_CHAINS_KEY)
	if chains != "" {
		err = json.Unmarshal([]byte(chains), &rawConfig.ChainConfigs)
		if err != nil {
			return nil, fmt.Errorf("failed parsing %s: %w", ENV_CHAINS_KEY, err)
		}
	}

	return processRawConfig(rawConfig, shared)
}

// GetSharedConfigFromNetwork fetches a json configuration shared between service instances.
// The shared configuration is not validated on its own.
func GetSharedConfigFromNetwork(url string) (*Config, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d, %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	rawConfig := RawConfig{}
	err = json.Unmarshal(body, &rawConfig)
	if err != nil {
		return nil, err
	}

	serviceConfig, err := parseServiceConfig(rawConfig.ServiceConfig)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceConfig: serviceConfig,
		ChainConfigs:  rawConfig.ChainConfigs,
	}, nil
}

func processRawConfig(rawConfig RawConfig, shared *Config) (*Config, error) {
	if shared != nil && len(rawConfig.ChainConfigs) == 0 {
		rawConfig.ChainConfigs = shared.ChainConfigs
	}

	// shared values only fill fields that local configuration leaves empty,
	// so they are applied before defaults
	if shared != nil {
		err := mergo.Merge(&rawConfig.ServiceConfig.CoinmarketcapConfig, shared.ServiceConfig.CoinmarketcapConfig)
		if err != nil {
			return nil, err
		}
		err = mergo.Merge(&rawConfig.ServiceConfig.OrchestratorConfig, shared.ServiceConfig.OrchestratorConfig)
		if err != nil {
			return nil, err
		}
	}

	// defaults only allocates a nil fee, so an explicit zero fee is kept
	err := defaults.Set(&rawConfig.ServiceConfig)
	if err != nil {
		return nil, err
	}

	err = rawConfig.ServiceConfig.Validate()
	if err != nil {
		return nil, err
	}

	serviceConfig, err := parseServiceConfig(rawConfig.ServiceConfig)
	if err != nil {
		return nil, err
	}

	return &Config{
		ServiceConfig: serviceConfig,
		ChainConfigs:  rawConfig.ChainConfigs,
	}, nil
}

func parseServiceConfig(c RawServiceConfig) (ServiceConfig, error) {
	logLevel, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return ServiceConfig{}, fmt.Errorf("invalid log level %s: %w", c.LogLevel, err)
	}

	var feeBps uint64
	if c.FeeBps != nil {
		feeBps = *c.FeeBps
	}

	durations := make([]time.Duration, 5)
	for i, d := range []string{c.QueryTimeout, c.StatusCacheTTL, c.BundleCacheTTL, c.PriceCacheTTL, c.WatchInterval} {
		if d == "" {
			continue
		}

		durations[i], err = time.ParseDuration(d)
		if err != nil {
			return ServiceConfig{}, fmt.Errorf("invalid duration %s: %w", d, err)
		}
	}

	return ServiceConfig{
		Id:                        c.Id,
		Env:                       c.Env,
		LogLevel:                  logLevel,
		ApiAddr:                   c.ApiAddr,
		HealthPort:                c.HealthPort,
		OpenTelemetryCollectorURL: c.OpenTelemetryCollectorURL,
		FeeBps:                    feeBps,
		FillQuorum:                c.FillQuorum,
		QueryTimeout:              durations[0],
		StatusCacheTTL:            durations[1],
		BundleCacheTTL:            durations[2],
		PriceCacheTTL:             durations[3],
		WatchInterval:             durations[4],
		CoinmarketcapConfig:       c.CoinmarketcapConfig,
		OrchestratorConfig:        c.OrchestratorConfig,
	}, nil
}

func envKeys() map[string]string {
	keys := map[string]string{
		"serviceConfig.id":                        "ID",
		"serviceConfig.env":                       "ENV",
		"serviceConfig.logLevel":                  "LOG_LEVEL",
		"serviceConfig.apiAddr":                   "API_ADDR",
		"serviceConfig.healthPort":                "HEALTH_PORT",
		"serviceConfig.openTelemetryCollectorURL": "OPENTELEMETRY_COLLECTOR_URL",
		"serviceConfig.feeBps":                    "FEE_BPS",
		"serviceConfig.fillQuorum":                "FILL_QUORUM",
		"serviceConfig.queryTimeout":              "QUERY_TIMEOUT",
		"serviceConfig.statusCacheTTL":            "STATUS_CACHE_TTL",
		"serviceConfig.bundleCacheTTL":            "BUNDLE_CACHE_TTL",
		"serviceConfig.priceCacheTTL":             "PRICE_CACHE_TTL",
		"serviceConfig.watchInterval":             "WATCH_INTERVAL",
		"serviceConfig.coinmarketcap.url":         "COINMARKETCAP_URL",
		"serviceConfig.coinmarketcap.apiKey":      "COINMARKETCAP_API_KEY",
		"serviceConfig.orchestrator.url":          "ORCHESTRATOR_URL",
		"serviceConfig.orchestrator.apiKey":       "ORCHESTRATOR_API_KEY",
	}
	for k, v := range keys {
		keys[k] = fmt.Sprintf("%s_%s", ENV_PREFIX, v)
	}
	return keys
}
