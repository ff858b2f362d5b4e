package model

import "time"

// CartItem is a single line of a checkout cart.
type CartItem struct {
	ProductID string  `json:"productId" validate:"required,max=100"`
	Name      string  `json:"name" validate:"max=255"`
	Count     int     `json:"count" validate:"gt=0"`
	Price     float64 `json:"price,omitempty" validate:"gte=0"`
	Image     string  `json:"image,omitempty"`
}

// Order is a placed order. Orders are immutable once created.
type Order struct {
	ID             string     `json:"_id" db:"id"`
	Email          string     `json:"email" db:"email"`
	IdempotencyKey string     `json:"idempotencyKey" db:"idempotency_key"`
	CustomerName   string     `json:"customerName,omitempty" db:"customer_name"`
	Phone          string     `json:"phone,omitempty" db:"phone"`
	Address        string     `json:"address,omitempty" db:"address"`
	TotalPrice     float64    `json:"totalPrice" db:"total_price"`
	CartItems      []CartItem `json:"cartItems" db:"cart_items"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
}

// OrderRequest represents the request payload for checkout.
type OrderRequest struct {
	Email          string     `json:"email" validate:"required,email"`
	IdempotencyKey string     `json:"idempotencyKey" validate:"required,max=128"`
	CustomerName   string     `json:"customerName" validate:"max=200"`
	Phone          string     `json:"phone" validate:"max=50"`
	Address        string     `json:"address" validate:"max=500"`
	TotalPrice     float64    `json:"totalPrice" validate:"gte=0"`
	CartItems      []CartItem `json:"cartItems" validate:"required,min=1,dive"`
}
