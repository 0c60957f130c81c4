package ports

import (
	"context"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

// EventRepo is the event half of the catalog store. ListByCategory
// filters by equality without validating that the category exists.
// Update merges the provided fields onto the stored record and reports
// an absent event with domain.ErrEventNotFound. Delete reports whether
// a record existed.
type EventRepo interface {
	Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error)
	Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
