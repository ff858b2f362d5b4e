package main

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

type product struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brand       string  `json:"brand,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
	Price       float64 `json:"price"`
	Rating      float64 `json:"rating"`
	Stock       int     `json:"stock"`
}

// main writes a small gzipped NDJSON catalogue that can be
// loaded with cmd/catalog-import.
func main() {
	dataDir := "data/catalog"

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []product{
		{ID: "P001", Name: "Blue Oxford Shirt", Category: "Shirts", Brand: "Northwind", Price: 30, Rating: 4.5, Stock: 12},
		{ID: "P002", Name: "White Linen Shirt", Category: "Shirts", Brand: "Northwind", Price: 42, Rating: 4.1, Stock: 5},
		{ID: "P003", Name: "Slim Chinos", Category: "Trousers", Brand: "Fieldhouse", Price: 55, Rating: 3.9, Stock: 8},
		{ID: "P004", Name: "Cargo Pants", Category: "Trousers", Brand: "Fieldhouse", Price: 60, Rating: 3.2, Stock: 0},
		{ID: "P005", Name: "Canvas Sneakers", Category: "Shoes", Brand: "Stride", Price: 75, Rating: 4.8, Stock: 20},
		{ID: "P006", Name: "Leather Belt", Category: "Accessories", Price: 5, Rating: 2.5, Stock: 1},
	}

	filePath := filepath.Join(dataDir, "sample_catalog.ndjson.gz")
	if err := createCatalogFile(filePath, products); err != nil {
		log.Fatalf("Failed to create %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
	fmt.Printf("\nImport it with:\n  go run ./cmd/catalog-import --file %s\n", filePath)
}

func createCatalogFile(filePath string, products []product) (err error) {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	gzipWriter := gzip.NewWriter(file)
	encoder := json.NewEncoder(gzipWriter)
	for _, p := range products {
		if err := encoder.Encode(p); err != nil {
			return fmt.Errorf("failed to write product %s: %w", p.ID, err)
		}
	}

	return gzipWriter.Close()
}
