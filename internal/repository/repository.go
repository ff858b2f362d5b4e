package repository

import (
	"context"

	"stylique/internal/filter"
	"stylique/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxBeginner starts database transactions.
type TxBeginner interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	TxBeginner

	// Find retrieves every product matching the predicate, ordered by name.
	Find(ctx context.Context, pred filter.Predicate) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// FilterStats returns the price and rating bounds across the catalogue.
	FilterStats(ctx context.Context) (*model.FilterStats, error)

	// Categories returns the distinct product categories in sorted order.
	Categories(ctx context.Context) ([]string, error)

	// ReserveStock decrements stock within tx only if enough is available.
	// It reports false when the product is missing or short.
	ReserveStock(ctx context.Context, tx pgx.Tx, productID string, count int) (bool, error)

	// Upsert inserts or replaces products within tx.
	Upsert(ctx context.Context, tx pgx.Tx, products []model.Product) error
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// Create inserts a new review.
	Create(ctx context.Context, review *model.Review) error

	// FindByProductID retrieves reviews for a product, oldest first.
	FindByProductID(ctx context.Context, productID string) ([]model.Review, error)
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	TxBeginner

	// Create inserts a new order. It returns model.ErrDuplicateOrder when the
	// idempotency key has been used before.
	Create(ctx context.Context, order *model.Order) error

	// CreateTx inserts a new order within the provided transaction.
	CreateTx(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// FindByEmail retrieves the orders placed with an email, oldest first.
	FindByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// CustomerRepository defines the interface for customer data access operations.
type CustomerRepository interface {
	// InsertIfAbsent inserts the customer unless one with the same email
	// exists. It reports whether a row was inserted.
	InsertIfAbsent(ctx context.Context, customer *model.Customer) (bool, error)

	// GetByEmail retrieves a customer by email.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}
