package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"stylique/internal/catalog"
	"stylique/internal/config"
	"stylique/internal/database"
	"stylique/internal/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	file := pflag.StringP("file", "f", "", "gzipped NDJSON catalogue: local path or s3://bucket/key")
	dryRun := pflag.Bool("dry-run", false, "validate the catalogue without writing it")
	pflag.Parse()

	if *file == "" {
		return fmt.Errorf("--file flag: required")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "stylique-catalog-import")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var s3Loader catalog.Loader
	if catalog.IsS3Source(*file) {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.S3.Region, logger)
		if err != nil {
			return fmt.Errorf("failed to initialise S3 loader: %w", err)
		}
	}
	loader := catalog.NewLoader(catalog.NewFileLoader(logger), s3Loader)

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, database.MigrateUp, logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	importer := catalog.NewImporter(loader, repository.NewProductRepository(pool, logger), logger)

	result, err := importer.Import(ctx, *file, *dryRun)
	if err != nil {
		return err
	}

	fmt.Printf("read %d product(s), upserted %d (dry run: %t)\n", result.Read, result.Upserted, result.DryRun)
	return nil
}
