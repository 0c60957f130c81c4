package ports

import (
	"context"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

// CategoryRepo holds static reference data. List returns categories in
// insertion order; Create exists for seeding only.
type CategoryRepo interface {
	Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error)
	List(ctx context.Context) ([]*domain.Category, error)
}
