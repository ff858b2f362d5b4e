package service

import (
	"context"
	"fmt"

	"stylique/internal/filter"
	"stylique/internal/model"
	"stylique/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves the products matching the filter params.
func (s *productService) List(ctx context.Context, params filter.Params) ([]model.Product, error) {
	pred := filter.Build(params)

	products, err := s.productRepo.Find(ctx, pred)
	if err != nil {
		s.logger.Error().Err(err).Int("conditions", len(pred.Conditions)).Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("conditions", len(pred.Conditions)).
		Int("count", len(products)).
		Msg("listed products")

	return products, nil
}

// ByCategory retrieves the products of one category.
func (s *productService) ByCategory(ctx context.Context, category string) ([]model.Product, error) {
	products, err := s.productRepo.Find(ctx, filter.Build(filter.Params{Category: &category}))
	if err != nil {
		s.logger.Error().Err(err).Str("category", category).Msg("failed to list products by category")
		return nil, fmt.Errorf("failed to list products by category: %w", err)
	}
	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return product, nil
}

// FilterStats returns the price and rating bounds of the catalogue.
func (s *productService) FilterStats(ctx context.Context) (*model.FilterStats, error) {
	stats, err := s.productRepo.FilterStats(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get filter stats")
		return nil, fmt.Errorf("failed to get filter stats: %w", err)
	}
	return stats, nil
}

// Categories lists the distinct categories.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.productRepo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get categories")
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}
