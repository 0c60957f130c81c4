package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

// eventResolver gives the booking store read access to events so a
// generated reference number can carry the event-name prefix.
type eventResolver interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type BookingRepository struct {
	mu       sync.Mutex
	bookings map[int64]domain.Booking
	nextID   int64
	events   eventResolver
}

func NewBookingRepository(events eventResolver) *BookingRepository {
	return &BookingRepository{
		bookings: make(map[int64]domain.Booking),
		nextID:   1,
		events:   events,
	}
}

func (r *BookingRepository) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	reference := input.ReferenceNumber
	if reference == "" {
		// NewReferenceNumber falls back to the "EV" prefix when the
		// event cannot be resolved.
		var eventName string
		if event, err := r.events.GetByID(ctx, input.EventID); err == nil {
			eventName = event.Name
		} else if !errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		reference = domain.NewReferenceNumber(eventName)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	booking := domain.Booking{
		ID:              r.nextID,
		UserID:          input.UserID,
		EventID:         input.EventID,
		ReferenceNumber: reference,
		CreatedAt:       time.Now().UTC(),
	}
	r.nextID++
	r.bookings[booking.ID] = booking

	out := booking
	return &out, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}

	out := booking
	return &out, nil
}

func (r *BookingRepository) GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.bookings[id]; ok && b.UserID == userID && b.EventID == eventID {
			out := b
			return &out, nil
		}
	}

	return nil, domain.ErrBookingNotFound
}

func (r *BookingRepository) List(ctx context.Context) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*domain.Booking, 0, len(r.bookings))
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.bookings[id]; ok {
			out := b
			res = append(res, &out)
		}
	}

	return res, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var res []*domain.Booking
	for id := int64(1); id < r.nextID; id++ {
		if b, ok := r.bookings[id]; ok && b.UserID == userID {
			out := b
			res = append(res, &out)
		}
	}

	return res, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[id]; !ok {
		return false, nil
	}

	delete(r.bookings, id)
	return true, nil
}
