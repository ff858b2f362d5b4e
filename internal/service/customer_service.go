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

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       zerolog.Logger
	now          func() time.Time
}

// NewCustomerService creates a new customer service.
func NewCustomerService(customerRepo repository.CustomerRepository, logger zerolog.Logger) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger.With().Str("service", "customer").Logger(),
		now:          time.Now,
	}
}

// Upsert inserts the customer when the email is new. A known email matches
// the stored profile and nothing is modified.
func (s *customerService) Upsert(ctx context.Context, req *model.CustomerRequest) (*model.UpdateResult, error) {
	if req == nil {
		return nil, model.NewValidationError("", "customer request is nil")
	}

	customer := &model.Customer{
		ID:        uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		PhotoURL:  req.PhotoURL,
		Phone:     req.Phone,
		Address:   req.Address,
		CreatedAt: s.now().UTC(),
	}

	inserted, err := s.customerRepo.InsertIfAbsent(ctx, customer)
	if err != nil {
		s.logger.Error().Err(err).Str("email", req.Email).Msg("failed to upsert customer")
		return nil, fmt.Errorf("failed to upsert customer: %w", err)
	}

	if !inserted {
		s.logger.Debug().Str("email", req.Email).Msg("customer already exists")
		return &model.UpdateResult{Acknowledged: true, MatchedCount: 1}, nil
	}

	s.logger.Info().Str("customer_id", customer.ID).Msg("customer created")

	return &model.UpdateResult{
		Acknowledged:  true,
		UpsertedCount: 1,
		UpsertedID:    &customer.ID,
	}, nil
}

func (s *customerService) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	customer, err := s.customerRepo.GetByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to get customer")
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}
