// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName           = "config"
	SolverConfigFlagName     = "solver-config"
	SolverConfigHashFlagName = "solver-config-hash"
	S3RegionFlagName         = "s3-region"
	S3EndpointFlagName       = "s3-endpoint"
	EnvFileFlagName          = "env-file"
)

func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, ".", "Path to JSON configuration file or 'env' to read configuration from environment")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(SolverConfigFlagName, "", "Path or s3://bucket/key url of the shared solver token configuration")
	_ = viper.BindPFlag(SolverConfigFlagName, rootCMD.PersistentFlags().Lookup(SolverConfigFlagName))

	rootCMD.PersistentFlags().String(SolverConfigHashFlagName, "", "Expected sha256 hash of the solver configuration fetched from S3")
	_ = viper.BindPFlag(SolverConfigHashFlagName, rootCMD.PersistentFlags().Lookup(SolverConfigHashFlagName))

	rootCMD.PersistentFlags().String(S3RegionFlagName, "us-east-1", "AWS region of the solver configuration bucket")
	_ = viper.BindPFlag(S3RegionFlagName, rootCMD.PersistentFlags().Lookup(S3RegionFlagName))

	rootCMD.PersistentFlags().String(S3EndpointFlagName, "", "Custom S3 endpoint")
	_ = viper.BindPFlag(S3EndpointFlagName, rootCMD.PersistentFlags().Lookup(S3EndpointFlagName))

	rootCMD.PersistentFlags().String(EnvFileFlagName, ".env", "Path to a .env file loaded before reading configuration")
	_ = viper.BindPFlag(EnvFileFlagName, rootCMD.PersistentFlags().Lookup(EnvFileFlagName))
}
