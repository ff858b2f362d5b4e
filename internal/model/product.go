package model

import "time"

// Product represents an item in the storefront catalogue.
type Product struct {
	ID          string    `json:"_id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Category    string    `json:"category" db:"category"`
	Brand       string    `json:"brand,omitempty" db:"brand"`
	Description string    `json:"description,omitempty" db:"description"`
	Image       string    `json:"image,omitempty" db:"image"`
	Price       float64   `json:"price" db:"price"`
	Rating      float64   `json:"rating" db:"rating"`
	Stock       int       `json:"stock" db:"stock"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Range is a closed numeric interval. Bounds are nil when the catalogue is empty.
type Range struct {
	Min *float64 `json:"min"`
	Max *float64 `json:"max"`
}

// FilterStats holds the price and rating bounds across the whole catalogue.
type FilterStats struct {
	Price  Range `json:"price"`
	Rating Range `json:"rating"`
}
