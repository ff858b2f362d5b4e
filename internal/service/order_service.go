package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stylique/internal/events"
	"stylique/internal/metrics"
	"stylique/internal/model"
	"stylique/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderOptions tunes checkout behaviour.
type OrderOptions struct {
	// ReserveStock decrements stock in the same transaction as the order
	// insert instead of validating it beforehand.
	ReserveStock bool
}

// orderService implements OrderService.
type orderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	stock       StockValidator
	publisher   events.Publisher
	metrics     *metrics.Metrics
	opts        OrderOptions
	logger      zerolog.Logger
	now         func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	stock StockValidator,
	publisher events.Publisher,
	m *metrics.Metrics,
	opts OrderOptions,
	logger zerolog.Logger,
) OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		stock:       stock,
		publisher:   publisher,
		metrics:     m,
		opts:        opts,
		logger:      logger.With().Str("service", "order").Logger(),
		now:         time.Now,
	}
}

// Checkout validates stock and places an order. It returns *model.StockError
// when an item cannot be fulfilled and model.ErrDuplicateOrder when the
// idempotency key was already used. Nothing is stored on either path.
func (s *orderService) Checkout(ctx context.Context, req *model.OrderRequest) (*model.InsertResult, error) {
	if req == nil {
		return nil, model.NewValidationError("", "order request is nil")
	}

	order := &model.Order{
		ID:             uuid.NewString(),
		Email:          req.Email,
		IdempotencyKey: req.IdempotencyKey,
		CustomerName:   req.CustomerName,
		Phone:          req.Phone,
		Address:        req.Address,
		TotalPrice:     req.TotalPrice,
		CartItems:      req.CartItems,
		CreatedAt:      s.now().UTC(),
	}

	var err error
	if s.opts.ReserveStock {
		err = s.placeReserving(ctx, order)
	} else {
		err = s.place(ctx, order)
	}
	if err != nil {
		s.metrics.IncCheckout(checkoutOutcome(err))
		return nil, err
	}

	s.metrics.IncCheckout(metrics.CheckoutPlaced)
	s.logger.Info().
		Str("order_id", order.ID).
		Str("idempotency_key", order.IdempotencyKey).
		Int("item_count", len(order.CartItems)).
		Msg("order placed")

	if err := s.publisher.PublishOrderPlaced(ctx, *order); err != nil {
		s.metrics.IncPublishFailure()
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to publish order event")
	}

	return &model.InsertResult{Acknowledged: true, InsertedID: order.ID}, nil
}

// place validates stock and then inserts the order. Stock is not locked, so
// two concurrent checkouts can both pass validation.
func (s *orderService) place(ctx context.Context, order *model.Order) error {
	if err := s.stock.Validate(ctx, order.CartItems); err != nil {
		return err
	}

	// the repository already wraps insert failures
	if err := s.orderRepo.Create(ctx, order); err != nil {
		return err
	}

	return nil
}

// placeReserving decrements stock for every item and inserts the order in
// one transaction.
func (s *orderService) placeReserving(ctx context.Context, order *model.Order) (err error) {
	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	for _, item := range order.CartItems {
		ok, reserveErr := s.productRepo.ReserveStock(ctx, tx, item.ProductID, item.Count)
		if reserveErr != nil {
			return fmt.Errorf("failed to create order: %w", reserveErr)
		}
		if !ok {
			s.logger.Info().
				Str("product_id", item.ProductID).
				Int("requested", item.Count).
				Msg("stock not available")
			return &model.StockError{ProductID: item.ProductID, Name: item.Name}
		}
	}

	if err = s.orderRepo.CreateTx(ctx, tx, order); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID).Msg("failed to commit transaction")
		return fmt.Errorf("failed to create order: %w", err)
	}

	return nil
}

// ByEmail retrieves the orders placed with an email.
func (s *orderService) ByEmail(ctx context.Context, email string) ([]model.Order, error) {
	orders, err := s.orderRepo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to get orders")
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}
	return orders, nil
}

func checkoutOutcome(err error) string {
	var stockErr *model.StockError
	switch {
	case errors.As(err, &stockErr):
		return metrics.CheckoutNoStock
	case errors.Is(err, model.ErrDuplicateOrder):
		return metrics.CheckoutDuplicate
	default:
		return metrics.CheckoutFailed
	}
}
