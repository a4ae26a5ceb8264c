// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package solver

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/sprintertech/sprinter-settlement/config"
)

var (
	testSolverConfigCMD = &cobra.Command{
		Use:   "test",
		Short: "Test solver configuration from S3",
		Long: "CLI tests does provided S3 bucket contain a solver configuration " +
			"matching the expected hash that could be parsed accordingly",
		RunE: testSolverConfig,
	}
)

var (
	url       string
	region    string
	endpoint  string
	accessKey string
	secretKey string
	hash      string
)

func init() {
	testSolverConfigCMD.PersistentFlags().StringVar(&url, "url", "", "S3 url in s3://bucket/key format")
	_ = testSolverConfigCMD.MarkFlagRequired("url")
	testSolverConfigCMD.PersistentFlags().StringVar(&region, "region", "nyc3", "S3 region")
	testSolverConfigCMD.PersistentFlags().StringVar(&endpoint, "endpoint", "https://fra1.digitaloceanspaces.com", "S3 endpoint")
	testSolverConfigCMD.PersistentFlags().StringVar(&accessKey, "access-key", "", "S3 access key")
	_ = testSolverConfigCMD.MarkFlagRequired("access-key")
	testSolverConfigCMD.PersistentFlags().StringVar(&secretKey, "secret-key", "", "S3 secret key")
	_ = testSolverConfigCMD.MarkFlagRequired("secret-key")
	testSolverConfigCMD.PersistentFlags().StringVar(&hash, "hash", "", "hash of solver configuration")
}

func testSolverConfig(cmd *cobra.Command, args []string) error {
	client, err := config.NewS3Client(cmd.Context(), config.S3Config{
		Region:    region,
		Endpoint:  endpoint,
		AccessKey: accessKey,
		SecretKey: secretKey,
	})
	if err != nil {
		return err
	}

	provider, err := config.NewSolverConfigProvider(url, client)
	if err != nil {
		return err
	}

	sc, err := provider.SolverConfig(cmd.Context(), hash)
	if err != nil {
		return err
	}

	chains := make([]string, 0, len(sc.Chains))
	for chain := range sc.Chains {
		chains = append(chains, chain)
	}
	slices.Sort(chains)

	fmt.Printf("Solver configuration valid, chains: %v\n", chains)
	return nil
}
