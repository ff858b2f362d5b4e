package catalog

import (
	"context"
	"fmt"
	"strings"

	"stylique/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
)

// S3API is the subset of the S3 client used by the loader.
type S3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// s3Loader implements Loader for gzipped catalogue files stored in S3.
type s3Loader struct {
	client S3API
	logger zerolog.Logger
}

// NewS3Loader creates a new S3-based catalogue loader using the default AWS
// credential chain.
func NewS3Loader(ctx context.Context, region string, logger zerolog.Logger) (Loader, error) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		logger.Error().Err(err).Msg("failed to load AWS configuration")
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return newS3Loader(s3.NewFromConfig(cfg), logger), nil
}

func newS3Loader(client S3API, logger zerolog.Logger) *s3Loader {
	return &s3Loader{
		client: client,
		logger: logger.With().Str("component", "catalog-s3-loader").Logger(),
	}
}

// Load reads a gzipped catalogue file from an s3://bucket/key source.
func (l *s3Loader) Load(ctx context.Context, source string) ([]model.Product, error) {
	bucket, key, err := ParseS3URI(source)
	if err != nil {
		return nil, err
	}

	l.logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Msg("loading catalogue file from S3")

	result, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		l.logger.Error().
			Err(err).
			Str("bucket", bucket).
			Str("key", key).
			Msg("failed to get object from S3")
		return nil, fmt.Errorf("failed to get object from S3 (bucket=%s, key=%s): %w", bucket, key, err)
	}
	defer result.Body.Close()

	products, err := decode(ctx, result.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read S3 object %s: %w", key, err)
	}

	l.logger.Info().
		Str("bucket", bucket).
		Str("key", key).
		Int("products_loaded", len(products)).
		Msg("catalogue file loaded successfully from S3")

	return products, nil
}

// ParseS3URI splits s3://bucket/key into its bucket and key.
func ParseS3URI(source string) (bucket, key string, err error) {
	if !IsS3Source(source) {
		return "", "", fmt.Errorf("not an S3 URI: %q", source)
	}
	bucket, key, found := strings.Cut(strings.TrimPrefix(source, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", fmt.Errorf("S3 URI must look like s3://bucket/key, got %q", source)
	}
	return bucket, key, nil
}
