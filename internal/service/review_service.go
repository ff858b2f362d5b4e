package service

import (
	"context"
	"fmt"
	"time"

	"stylique/internal/model"
	"stylique/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
	now        func() time.Time
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
		now:        time.Now,
	}
}

func (s *reviewService) Create(ctx context.Context, req *model.ReviewRequest) (*model.InsertResult, error) {
	if req == nil {
		return nil, model.NewValidationError("", "review request is nil")
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		ProductID: req.ProductID,
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		Comment:   req.Comment,
		Photo:     req.Photo,
		CreatedAt: s.now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("product_id", req.ProductID).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info().
		Str("review_id", review.ID).
		Str("product_id", review.ProductID).
		Msg("review created")

	return &model.InsertResult{Acknowledged: true, InsertedID: review.ID}, nil
}

func (s *reviewService) ByProduct(ctx context.Context, productID string) ([]model.Review, error) {
	reviews, err := s.reviewRepo.FindByProductID(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Str("product_id", productID).Msg("failed to get reviews")
		return nil, fmt.Errorf("failed to get reviews: %w", err)
	}
	return reviews, nil
}
