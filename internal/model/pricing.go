package model

import "time"

// PricingPlan mirrors the `pricing_plans` table. Features is stored as a
// JSON array string in the database and round-tripped verbatim; the
// admin client owns its structure.
type PricingPlan struct {
	ID          uint64    `json:"id"`
	Title       string    `json:"title"`
	Price       string    `json:"price"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Features    string    `json:"features"`
	IsPopular   bool      `json:"is_popular"`
	OrderIndex  int       `json:"order_index"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   uint64    `json:"created_by"`
	UpdatedBy   uint64    `json:"updated_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
