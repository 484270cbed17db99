package catalog

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a product does not exist in the catalog.
var ErrNotFound = errors.New("product not found")

// Product is a sellable catalog entry. Stock and price are mutated only
// through the store; stock can never go below zero.
type Product struct {
	ID                    uuid.UUID
	Name                  string
	Category              string
	CurrentPrice          decimal.Decimal
	StockLevel            int
	StudentBenefits       string
	AvailableInOtherNodes bool
	PriceHistory          []PricePoint // Loaded on single-product reads only
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

// PricePoint records a historical price of a product.
type PricePoint struct {
	Price      decimal.Decimal
	RecordedAt time.Time
}
