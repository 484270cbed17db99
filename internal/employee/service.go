package employee

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	GetEmployee(ctx context.Context, id uuid.UUID) (*Employee, error)
	ListEmployees(ctx context.Context, nodeLocation string) ([]*Employee, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Employee, error) {
	return s.repo.GetEmployee(ctx, id)
}

// List returns employees, optionally filtered by node location. An empty
// filter returns everyone.
func (s *Service) List(ctx context.Context, nodeLocation string) ([]*Employee, error) {
	return s.repo.ListEmployees(ctx, nodeLocation)
}
