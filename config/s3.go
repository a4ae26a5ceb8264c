// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"
	solverConfig "github.com/sprintertech/solver-config/go/config"
)

const S3_SCHEME = "s3://"

type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Config struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewS3Client creates an S3 client using static credentials when an access key
// is provided and the default credential chain otherwise
func NewS3Client(ctx context.Context, c S3Config) (*s3.Client, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(c.Region),
	}
	if c.AccessKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			c.AccessKey,
			c.SecretKey,
			"",
		)))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if c.Endpoint != "" {
			o.BaseEndpoint = aws.String(c.Endpoint)
		}
	}), nil
}

func IsS3URL(path string) bool {
	return strings.HasPrefix(path, S3_SCHEME)
}

// SolverConfigProvider reads the shared solver configuration from an S3 bucket
type SolverConfigProvider struct {
	bucket   string
	key      string
	s3Client S3Client
}

// NewSolverConfigProvider expects an url in the s3://bucket/key format
func NewSolverConfigProvider(url string, s3Client S3Client) (*SolverConfigProvider, error) {
	if !IsS3URL(url) {
		return nil, fmt.Errorf("invalid S3 url %s", url)
	}

	bucket, key, ok := strings.Cut(strings.TrimPrefix(url, S3_SCHEME), "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid S3 url %s", url)
	}

	return &SolverConfigProvider{
		bucket:   bucket,
		key:      key,
		s3Client: s3Client,
	}, nil
}

// SolverConfig fetches the latest solver configuration. If hash is set the
// sha256 of the fetched file must match it.
func (p *SolverConfigProvider) SolverConfig(ctx context.Context, hash string) (solverConfig.SolverConfig, error) {
	log.Info().Msgf("Reading solver config from S3 bucket: %s, file: %s", p.bucket, p.key)

	sc := solverConfig.SolverConfig{}
	output, err := p.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &p.bucket,
		Key:    &p.key,
	})
	if err != nil {
		return sc, err
	}

	defer output.Body.Close()
	body, err := io.ReadAll(output.Body)
	if err != nil {
		return sc, err
	}

	h := sha256.Sum256(body)
	eh := hex.EncodeToString(h[:])
	if hash != "" && eh != hash {
		return sc, fmt.Errorf("solver config hash %s not matching expected hash %s", eh, hash)
	}

	err = json.Unmarshal(body, &sc)
	if err != nil {
		return sc, fmt.Errorf("failed parsing solver config: %w", err)
	}
	return sc, nil
}
