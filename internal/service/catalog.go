package service

import (
	"context"
	"fmt"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CatalogService struct {
	categories ports.CategoryRepo
	events     ports.EventRepo
	logger     logger.Logger
}

func NewCatalogService(categories ports.CategoryRepo, events ports.EventRepo, logger logger.Logger) *CatalogService {
	return &CatalogService{
		categories: categories,
		events:     events,
		logger:     logger,
	}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

// ListEvents returns all events, or only those in the given category
// when categoryID is set. The category is not checked for existence.
func (s *CatalogService) ListEvents(ctx context.Context, categoryID *int64) ([]*domain.Event, error) {
	if categoryID != nil {
		return s.events.ListByCategory(ctx, *categoryID)
	}
	return s.events.List(ctx)
}

func (s *CatalogService) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	return s.events.GetByID(ctx, id)
}

func (s *CatalogService) CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", domain.ErrValidation)
	}
	if input.Venue == "" {
		return nil, fmt.Errorf("%w: venue is required", domain.ErrValidation)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	event, err := s.events.Create(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.Any("event_id", event.ID),
		logger.String("name", event.Name),
	)

	return event, nil
}

// UpdateEvent merges the provided fields onto the stored event.
// Only provided fields are validated.
func (s *CatalogService) UpdateEvent(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Name != nil && *input.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	event, err := s.events.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.Info("event updated",
		logger.Any("event_id", event.ID),
	)

	return event, nil
}

// DeleteEvent removes the event. Existing bookings for it are left in
// place: there is no cascading integrity check.
func (s *CatalogService) DeleteEvent(ctx context.Context, id int64) error {
	deleted, err := s.events.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if !deleted {
		return domain.ErrEventNotFound
	}

	s.logger.Info("event deleted",
		logger.Any("event_id", id),
	)

	return nil
}
