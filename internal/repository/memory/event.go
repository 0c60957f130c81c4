package memory

import (
	"context"
	"sync"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

type EventRepository struct {
	mu     sync.Mutex
	events map[int64]domain.Event
	nextID int64
}

func NewEventRepository() *EventRepository {
	return &EventRepository{
		events: make(map[int64]domain.Event),
		nextID: 1,
	}
}

func (r *EventRepository) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event := domain.Event{
		ID:          r.nextID,
		Name:        input.Name,
		Description: input.Description,
		CategoryID:  input.CategoryID,
		Date:        input.Date,
		Venue:       input.Venue,
		Address:     input.Address,
		Price:       input.Price,
		Capacity:    input.Capacity,
		Image:       input.Image,
		CreatedAt:   time.Now().UTC(),
	}
	r.nextID++
	r.events[event.ID] = event

	out := event
	return &out, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	out := event
	return &out, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*domain.Event, 0, len(r.events))
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.events[id]; ok {
			out := e
			res = append(res, &out)
		}
	}

	return res, nil
}

func (r *EventRepository) ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Event
	for id := int64(1); id < r.nextID; id++ {
		if e, ok := r.events[id]; ok && e.CategoryID == categoryID {
			out := e
			res = append(res, &out)
		}
	}

	return res, nil
}

func (r *EventRepository) Update(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	event, ok := r.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.CategoryID != nil {
		event.CategoryID = *input.CategoryID
	}
	if input.Date != nil {
		event.Date = *input.Date
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.Address != nil {
		event.Address = *input.Address
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.Capacity != nil {
		event.Capacity = *input.Capacity
	}
	if input.Image != nil {
		event.Image = *input.Image
	}

	r.events[id] = event

	out := event
	return &out, nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return false, nil
	}

	delete(r.events, id)
	return true, nil
}
