package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"stylique/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipLines(t *testing.T, lines []string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	for _, line := range lines {
		_, err := gw.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// createTestCatalogFile creates a gzipped test catalogue file.
func createTestCatalogFile(t *testing.T, filename string, lines []string) string {
	t.Helper()

	filePath := filepath.Join(t.TempDir(), filename)
	require.NoError(t, os.WriteFile(filePath, gzipLines(t, lines), 0o600))
	return filePath
}

var sampleLines = []string{
	`{"_id":"P001","name":"Blue Shirt","category":"Shirts","price":30,"rating":4.5,"stock":3}`,
	``,
	`{"_id":"P002","name":"Chinos","category":"Trousers","brand":"Acme","price":45,"rating":4,"stock":0}`,
}

func TestFileLoader_Load(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestCatalogFile(t, "catalog.ndjson.gz", sampleLines)

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, model.Product{ID: "P001", Name: "Blue Shirt", Category: "Shirts", Price: 30, Rating: 4.5, Stock: 3}, products[0])
	assert.Equal(t, "Acme", products[1].Brand)
}

func TestFileLoader_Errors(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	tests := []struct {
		name        string
		setup       func(t *testing.T) string
		errContains string
	}{
		{
			name: "Missing file",
			setup: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "missing.gz")
			},
			errContains: "failed to open catalogue file",
		},
		{
			name: "Not gzipped",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "plain.ndjson")
				require.NoError(t, os.WriteFile(p, []byte(sampleLines[0]), 0o600))
				return p
			},
			errContains: "gzip",
		},
		{
			name: "Malformed line",
			setup: func(t *testing.T) string {
				return createTestCatalogFile(t, "bad.gz", []string{sampleLines[0], `{"_id":`})
			},
			errContains: "line 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load(context.Background(), tt.setup(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestFileLoader_EmptyFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestCatalogFile(t, "empty.gz", nil)

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)
}

type loaderFunc func(ctx context.Context, source string) ([]model.Product, error)

func (f loaderFunc) Load(ctx context.Context, source string) ([]model.Product, error) {
	return f(ctx, source)
}

func TestSourceLoader(t *testing.T) {
	fileLoader := loaderFunc(func(ctx context.Context, source string) ([]model.Product, error) {
		return []model.Product{{ID: "file"}}, nil
	})
	s3Loader := loaderFunc(func(ctx context.Context, source string) ([]model.Product, error) {
		return []model.Product{{ID: "s3"}}, nil
	})

	tests := []struct {
		name        string
		s3          Loader
		source      string
		expectedID  string
		expectError bool
	}{
		{"Local path", s3Loader, "/tmp/catalog.gz", "file", false},
		{"S3 URI", s3Loader, "s3://bucket/catalog.gz", "s3", false},
		{"S3 URI without S3 loader", nil, "s3://bucket/catalog.gz", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := NewLoader(fileLoader, tt.s3).Load(context.Background(), tt.source)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, products, 1)
			assert.Equal(t, tt.expectedID, products[0].ID)
		})
	}
}

func TestDecode_Cancelled(t *testing.T) {
	lines := make([]string, cancelInterval)
	for i := range lines {
		lines[i] = sampleLines[0]
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := decode(ctx, bytes.NewReader(gzipLines(t, lines)))

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestDecode_LongLine(t *testing.T) {
	long := `{"_id":"P001","name":"Blue Shirt","category":"Shirts","description":"` + strings.Repeat("x", 200*1024) + `"}`

	products, err := decode(context.Background(), bytes.NewReader(gzipLines(t, []string{long})))

	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Len(t, products[0].Description, 200*1024)
}
