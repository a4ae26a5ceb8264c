package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	solverConfig "github.com/sprintertech/solver-config/go/config"
)

// GetSolverConfig reads the shared solver configuration holding token addresses and
// decimals per chain. An empty path returns an empty configuration.
func GetSolverConfig(path string) (solverConfig.SolverConfig, error) {
	sc := solverConfig.SolverConfig{}
	if path == "" {
		return sc, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return sc, fmt.Errorf("failed reading solver config %s: %w", path, err)
	}

	err = json.Unmarshal(data, &sc)
	if err != nil {
		return sc, fmt.Errorf("failed parsing solver config: %w", err)
	}

	return sc, nil
}

// LoadSolverConfig reads the solver configuration from S3 for s3:// urls
// and from the local filesystem otherwise
func LoadSolverConfig(ctx context.Context, path string, hash string, s3Config S3Config) (solverConfig.SolverConfig, error) {
	if !IsS3URL(path) {
		return GetSolverConfig(path)
	}

	client, err := NewS3Client(ctx, s3Config)
	if err != nil {
		return solverConfig.SolverConfig{}, err
	}
	provider, err := NewSolverConfigProvider(path, client)
	if err != nil {
		return solverConfig.SolverConfig{}, err
	}
	return provider.SolverConfig(ctx, hash)
}
