package service

import (
	"context"
	"fmt"

	"stylique/internal/model"
	"stylique/internal/repository"

	"github.com/rs/zerolog"
)

// StockValidator checks that every cart item can be fulfilled.
type StockValidator interface {
	// Validate returns a *model.StockError for the first item whose product
	// is missing or short of stock. Later items are not checked.
	Validate(ctx context.Context, items []model.CartItem) error
}

type stockValidator struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewStockValidator creates a stock validator reading from the product store.
func NewStockValidator(productRepo repository.ProductRepository, logger zerolog.Logger) StockValidator {
	return &stockValidator{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "stock").Logger(),
	}
}

func (v *stockValidator) Validate(ctx context.Context, items []model.CartItem) error {
	for _, item := range items {
		product, err := v.productRepo.GetByID(ctx, item.ProductID)
		if err != nil {
			return fmt.Errorf("failed to check stock: %w", err)
		}

		if product == nil || product.Stock < item.Count {
			available := 0
			if product != nil {
				available = product.Stock
			}
			v.logger.Info().
				Str("product_id", item.ProductID).
				Int("requested", item.Count).
				Int("available", available).
				Msg("stock not available")
			return &model.StockError{ProductID: item.ProductID, Name: item.Name}
		}
	}

	return nil
}
