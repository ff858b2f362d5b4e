package catalog

import (
	"context"
	"fmt"

	"stylique/internal/repository"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// Result summarises an import run.
type Result struct {
	Read     int
	Upserted int
	DryRun   bool
}

// Importer loads, validates and stores catalogues.
type Importer interface {
	// Import reads source and upserts every product in one transaction.
	// Nothing is written when any record is invalid or dryRun is set.
	Import(ctx context.Context, source string, dryRun bool) (*Result, error)
}

type importer struct {
	loader      Loader
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewImporter creates a new catalogue importer.
func NewImporter(loader Loader, productRepo repository.ProductRepository, logger zerolog.Logger) Importer {
	return &importer{
		loader:      loader,
		productRepo: productRepo,
		logger:      logger.With().Str("component", "catalog-importer").Logger(),
	}
}

func (i *importer) Import(ctx context.Context, source string, dryRun bool) (result *Result, err error) {
	products, err := i.loader.Load(ctx, source)
	if err != nil {
		return nil, err
	}

	if err := Validate(products); err != nil {
		errs := multierr.Errors(err)
		for _, e := range errs {
			i.logger.Warn().Str("source", source).Msg(e.Error())
		}
		return nil, fmt.Errorf("catalogue validation failed with %d error(s): %w", len(errs), err)
	}

	result = &Result{Read: len(products), DryRun: dryRun}
	if dryRun {
		i.logger.Info().Str("source", source).Int("products", len(products)).Msg("dry run, nothing written")
		return result, nil
	}

	tx, err := i.productRepo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				i.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = i.productRepo.Upsert(ctx, tx, products); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit catalogue import: %w", err)
	}

	result.Upserted = len(products)
	i.logger.Info().Str("source", source).Int("products", result.Upserted).Msg("catalogue imported")

	return result, nil
}
