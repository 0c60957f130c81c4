package ports

import (
	"context"

	"github.com/mahmoud1053/EventHub/internal/domain"
)

// BookingRepo holds bookings. GetByUserAndEvent is the mechanism
// behind the one-booking-per-user-per-event invariant: callers check
// it before Create. Create assigns the next id, stamps CreatedAt and
// generates a reference number when none is supplied. Delete reports
// whether a record existed.
type BookingRepo interface {
	Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserAndEvent(ctx context.Context, userID, eventID int64) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
