package memory

import (
	"context"
	"sync"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

type CategoryRepository struct {
	mu         sync.Mutex
	categories map[int64]domain.Category
	nextID     int64
}

func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make(map[int64]domain.Category),
		nextID:     1,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category := domain.Category{
		ID:   r.nextID,
		Name: input.Name,
		Icon: input.Icon,
	}
	r.nextID++
	r.categories[category.ID] = category

	out := category
	return &out, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// ids are assigned sequentially and categories are never deleted,
	// so walking the id range yields insertion order.
	res := make([]*domain.Category, 0, len(r.categories))
	for id := int64(1); id < r.nextID; id++ {
		if c, ok := r.categories[id]; ok {
			out := c
			res = append(res, &out)
		}
	}

	return res, nil
}
