package repository

import (
	"context"
	"errors"
	"fmt"

	"stylique/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// InsertIfAbsent inserts the customer unless the email is already known.
// Existing rows are never updated.
func (r *customerRepository) InsertIfAbsent(ctx context.Context, c *model.Customer) (bool, error) {
	query := `
		INSERT INTO customers (id, email, name, photo_url, phone, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ON CONSTRAINT customers_email_key DO NOTHING
	`

	tag, err := r.pool.Exec(ctx, query,
		c.ID,
		c.Email,
		c.Name,
		c.PhotoURL,
		c.Phone,
		c.Address,
		c.CreatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("email", c.Email).Msg("failed to insert customer")
		return false, fmt.Errorf("failed to insert customer: %w", err)
	}

	inserted := tag.RowsAffected() == 1
	r.logger.Debug().
		Str("email", c.Email).
		Bool("inserted", inserted).
		Msg("customer upserted")

	return inserted, nil
}

func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	query := `
		SELECT id::text, email, name, photo_url, phone, address, created_at
		FROM customers
		WHERE email = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&c.ID,
		&c.Email,
		&c.Name,
		&c.PhotoURL,
		&c.Phone,
		&c.Address,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("email", email).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("email", email).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}
