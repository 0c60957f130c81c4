package postgres

import (
	"context"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

type CategoryRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCategoryRepository(db *dbpg.DB) *CategoryRepository {
	return &CategoryRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func (r *CategoryRepository) Create(ctx context.Context, input domain.CreateCategoryInput) (*domain.Category, error) {
	query := `INSERT INTO categories (name, icon)
			  VALUES ($1, $2)
			  RETURNING id`

	category := domain.Category{
		Name: input.Name,
		Icon: input.Icon,
	}

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, category.Name, category.Icon)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	if err = row.Scan(&category.ID); err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}

	return &category, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domain.Category, error) {
	query := `SELECT id, name, icon
			  FROM categories
			  ORDER BY id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var res []*domain.Category
	for rows.Next() {
		var c domain.Category
		if err = rows.Scan(&c.ID, &c.Name, &c.Icon); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		res = append(res, &c)
	}

	return res, rows.Err()
}
