// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/sprinter-settlement/cli/solver"
	"github.com/sprintertech/sprinter-settlement/config"
)

var (
	rootCMD = &cobra.Command{
		Use:               "",
		PersistentPreRunE: loadEnvFile,
	}
)

func init() {
	config.BindFlags(rootCMD)

	rootCMD.PersistentFlags().String("config-url", "", "URL of shared configuration")
	_ = viper.BindPFlag("config-url", rootCMD.PersistentFlags().Lookup("config-url"))
}

// loadEnvFile exports variables from the env file before configuration is read.
// A missing file is not an error.
func loadEnvFile(cmd *cobra.Command, args []string) error {
	err := godotenv.Load(viper.GetString(config.EnvFileFlagName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func Execute() {
	rootCMD.AddCommand(runCMD, statusCMD, solver.SolverCLI)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
