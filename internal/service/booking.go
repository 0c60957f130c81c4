package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// BookingWithEvent pairs a booking with its resolved event. Event is
// nil when the event has since been deleted.
type BookingWithEvent struct {
	Booking *domain.Booking
	Event   *domain.Event
}

type BookingService struct {
	bookings ports.BookingRepo
	events   ports.EventRepo
	logger   logger.Logger
}

func NewBookingService(bookings ports.BookingRepo, events ports.EventRepo, logger logger.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		events:   events,
		logger:   logger,
	}
}

// Book reserves a spot on an event for the caller. The event must
// exist and the caller must not already hold a booking for it. No
// capacity check is performed: booking count is never compared to the
// event's capacity.
func (s *BookingService) Book(ctx context.Context, userID, eventID int64) (*BookingWithEvent, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err = s.bookings.GetByUserAndEvent(ctx, userID, eventID); err == nil {
		return nil, domain.ErrAlreadyBooked
	} else if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("check booking: %w", err)
	}

	booking, err := s.bookings.Create(ctx, domain.CreateBookingInput{
		UserID:  userID,
		EventID: eventID,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.Any("booking_id", booking.ID),
		logger.Any("event_id", eventID),
		logger.Any("user_id", userID),
		logger.String("reference", booking.ReferenceNumber),
	)

	return &BookingWithEvent{Booking: booking, Event: event}, nil
}

// Cancel deletes a booking on behalf of its owner or an admin.
func (s *BookingService) Cancel(ctx context.Context, identity *domain.Identity, bookingID int64) error {
	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != identity.UserID && !identity.IsAdmin {
		return domain.ErrForbidden
	}

	deleted, err := s.bookings.Delete(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}
	if !deleted {
		return domain.ErrBookingNotFound
	}

	s.logger.Info("booking cancelled",
		logger.Any("booking_id", bookingID),
		logger.Any("user_id", identity.UserID),
	)

	return nil
}

// List returns the caller's bookings, or every booking when the caller
// is an admin, each composed with its event.
func (s *BookingService) List(ctx context.Context, identity *domain.Identity) ([]*BookingWithEvent, error) {
	var (
		bookings []*domain.Booking
		err      error
	)
	if identity.IsAdmin {
		bookings, err = s.bookings.List(ctx)
	} else {
		bookings, err = s.bookings.ListByUser(ctx, identity.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	res := make([]*BookingWithEvent, 0, len(bookings))
	for _, b := range bookings {
		event, err := s.events.GetByID(ctx, b.EventID)
		if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
			return nil, fmt.Errorf("get event: %w", err)
		}
		res = append(res, &BookingWithEvent{Booking: b, Event: event})
	}

	return res, nil
}

// Check reports whether the caller holds a booking for the event. A
// missing booking is not an error.
func (s *BookingService) Check(ctx context.Context, userID, eventID int64) (*domain.Booking, error) {
	booking, err := s.bookings.GetByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("check booking: %w", err)
	}

	return booking, nil
}
