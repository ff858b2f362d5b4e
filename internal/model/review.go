package model

import "time"

// Review is a customer review attached to a product.
type Review struct {
	ID        string    `json:"_id" db:"id"`
	ProductID string    `json:"productId" db:"product_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email,omitempty" db:"email"`
	Rating    float64   `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	Photo     string    `json:"photo,omitempty" db:"photo"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ReviewRequest represents the request payload for submitting a review.
type ReviewRequest struct {
	ProductID string  `json:"productId" validate:"required,max=100"`
	Name      string  `json:"name" validate:"max=200"`
	Email     string  `json:"email" validate:"omitempty,email"`
	Rating    float64 `json:"rating" validate:"gte=0,lte=5"`
	Comment   string  `json:"comment" validate:"max=5000"`
	Photo     string  `json:"photo" validate:"omitempty,url"`
}
