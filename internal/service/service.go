package service

import (
	"context"

	"stylique/internal/filter"
	"stylique/internal/model"
)

// ProductService defines the catalogue queries.
type ProductService interface {
	// List retrieves the products matching the filter params.
	List(ctx context.Context, params filter.Params) ([]model.Product, error)

	// ByCategory retrieves the products of one category.
	ByCategory(ctx context.Context, category string) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// FilterStats returns the price and rating bounds of the catalogue.
	FilterStats(ctx context.Context) (*model.FilterStats, error)

	// Categories lists the distinct categories.
	Categories(ctx context.Context) ([]string, error)
}

// ReviewService defines operations for product reviews.
type ReviewService interface {
	// Create stores a new review.
	Create(ctx context.Context, req *model.ReviewRequest) (*model.InsertResult, error)

	// ByProduct retrieves the reviews of a product.
	ByProduct(ctx context.Context, productID string) ([]model.Review, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Checkout validates stock and places an order.
	Checkout(ctx context.Context, req *model.OrderRequest) (*model.InsertResult, error)

	// ByEmail retrieves the orders placed with an email.
	ByEmail(ctx context.Context, email string) ([]model.Order, error)
}

// CustomerService defines operations for customer profiles.
type CustomerService interface {
	// Upsert creates the customer if the email is unknown. Existing profiles
	// are left untouched.
	Upsert(ctx context.Context, req *model.CustomerRequest) (*model.UpdateResult, error)

	// GetByEmail retrieves a customer profile by email.
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
}
