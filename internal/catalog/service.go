package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repository interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)
	UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Product, error) {
	return s.repo.GetProduct(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*Product, error) {
	return s.repo.ListProducts(ctx)
}

// UpdatePrice changes a product's current price and records the previous one
// in its price history.
func (s *Service) UpdatePrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error {
	if !price.IsPositive() {
		return fmt.Errorf("price must be positive, got %s", price)
	}

	return s.repo.UpdatePrice(ctx, id, price)
}
