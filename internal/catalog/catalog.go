// Package catalog imports product catalogues exported as gzipped
// newline-delimited JSON, one product document per line.
package catalog

import (
	"bufio"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"stylique/internal/model"
)

// Loader reads a catalogue file into products.
type Loader interface {
	// Load reads every product from the given source.
	Load(ctx context.Context, source string) ([]model.Product, error)
}

const (
	s3Scheme       = "s3://"
	maxLineBytes   = 1024 * 1024
	cancelInterval = 10_000
)

// decode reads gzipped NDJSON from r. Blank lines are skipped.
func decode(ctx context.Context, r io.Reader) ([]model.Product, error) {
	gzipReader, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	scanner := bufio.NewScanner(gzipReader)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	products := []model.Product{}
	line := 0
	for scanner.Scan() {
		line++
		if line%cancelInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var p model.Product
		if err := json.Unmarshal([]byte(text), &p); err != nil {
			return nil, fmt.Errorf("failed to decode line %d: %w", line, err)
		}
		products = append(products, p)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalogue: %w", err)
	}

	return products, nil
}

// sourceLoader dispatches s3:// sources to the S3 loader and everything
// else to the local file loader.
type sourceLoader struct {
	file Loader
	s3   Loader
}

// NewLoader creates a loader that picks the backend from the source. s3 may
// be nil when only local files are expected.
func NewLoader(file, s3 Loader) Loader {
	return &sourceLoader{file: file, s3: s3}
}

func (l *sourceLoader) Load(ctx context.Context, source string) ([]model.Product, error) {
	if IsS3Source(source) {
		if l.s3 == nil {
			return nil, fmt.Errorf("no S3 loader configured for %s", source)
		}
		return l.s3.Load(ctx, source)
	}
	return l.file.Load(ctx, source)
}

// IsS3Source reports whether source is an s3://bucket/key URI.
func IsS3Source(source string) bool {
	return strings.HasPrefix(source, s3Scheme)
}
