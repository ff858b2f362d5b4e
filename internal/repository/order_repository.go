package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"stylique/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a new order.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	return r.insert(ctx, r.pool, order)
}

// CreateTx inserts a new order within the provided transaction.
func (r *orderRepository) CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) error {
	return r.insert(ctx, tx, order)
}

func (r *orderRepository) insert(ctx context.Context, q Querier, order *model.Order) error {
	items, err := json.Marshal(order.CartItems)
	if err != nil {
		return fmt.Errorf("failed to encode cart items: %w", err)
	}

	query := `
		INSERT INTO orders (
			id, email, idempotency_key, customer_name, phone, address,
			total_price, cart_items, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = q.Exec(ctx, query,
		order.ID,
		order.Email,
		order.IdempotencyKey,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.TotalPrice,
		items,
		order.CreatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err, ConstraintOrderIdempotencyKey) {
			r.logger.Warn().
				Str("idempotency_key", order.IdempotencyKey).
				Msg("duplicate order rejected")
			return model.ErrDuplicateOrder
		}
		r.logger.Error().
			Err(err).
			Str("order_id", order.ID).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", order.ID).
		Int("items", len(order.CartItems)).
		Msg("order created successfully")

	return nil
}

// FindByEmail retrieves the orders placed with an email, oldest first.
func (r *orderRepository) FindByEmail(ctx context.Context, email string) ([]model.Order, error) {
	query := `
		SELECT id::text, email, idempotency_key, customer_name, phone, address,
			total_price, cart_items, created_at
		FROM orders
		WHERE email = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, email)
	if err != nil {
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		var (
			o     model.Order
			items []byte
		)
		err := rows.Scan(
			&o.ID,
			&o.Email,
			&o.IdempotencyKey,
			&o.CustomerName,
			&o.Phone,
			&o.Address,
			&o.TotalPrice,
			&items,
			&o.CreatedAt,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		if err := json.Unmarshal(items, &o.CartItems); err != nil {
			r.logger.Error().Err(err).Str("order_id", o.ID).Msg("failed to decode cart items")
			return nil, fmt.Errorf("failed to decode cart items: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}
