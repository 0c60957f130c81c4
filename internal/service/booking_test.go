package service

import (
	"context"
	"testing"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBookingService(t *testing.T) (*BookingService, *memory.EventRepository) {
	t.Helper()
	events := memory.NewEventRepository()
	bookings := memory.NewBookingRepository(events)
	return NewBookingService(bookings, events, newTestLogger(t)), events
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	booked, err := svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), booked.Booking.UserID)
	assert.Equal(t, event.ID, booked.Booking.EventID)
	assert.NotEmpty(t, booked.Booking.ReferenceNumber)
	require.NotNil(t, booked.Event)
	assert.Equal(t, event.Name, booked.Event.Name)
}

func TestBookingService_Book_EventNotFound(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.Book(context.Background(), 1, 42)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestBookingService_Book_Duplicate(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	_, err = svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	_, err = svc.Book(ctx, 1, event.ID)
	assert.ErrorIs(t, err, domain.ErrAlreadyBooked)

	// a different user can still book the same event
	_, err = svc.Book(ctx, 2, event.ID)
	require.NoError(t, err)
}

func TestBookingService_Book_NoCapacityCheck(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	input := validEventInput()
	input.Capacity = 1
	event, err := events.Create(ctx, input)
	require.NoError(t, err)

	// booking count is never compared to capacity
	for userID := int64(1); userID <= 3; userID++ {
		_, err = svc.Book(ctx, userID, event.ID)
		require.NoError(t, err)
	}
}

func TestBookingService_Cancel_Owner(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	booked, err := svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	owner := &domain.Identity{UserID: 1}
	require.NoError(t, svc.Cancel(ctx, owner, booked.Booking.ID))

	list, err := svc.List(ctx, owner)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestBookingService_Cancel_Admin(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	booked, err := svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	admin := &domain.Identity{UserID: 99, IsAdmin: true}
	assert.NoError(t, svc.Cancel(ctx, admin, booked.Booking.ID))
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	booked, err := svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	stranger := &domain.Identity{UserID: 2}
	err = svc.Cancel(ctx, stranger, booked.Booking.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// booking is untouched
	list, err := svc.List(ctx, &domain.Identity{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, _ := newBookingService(t)

	err := svc.Cancel(context.Background(), &domain.Identity{UserID: 1}, 42)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_List_AdminSeesAll(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	_, err = svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)
	_, err = svc.Book(ctx, 2, event.ID)
	require.NoError(t, err)

	own, err := svc.List(ctx, &domain.Identity{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.List(ctx, &domain.Identity{UserID: 99, IsAdmin: true})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestBookingService_List_DeletedEventLeavesBooking(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	_, err = svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	// deleting the event does not cascade to bookings
	deleted, err := events.Delete(ctx, event.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	list, err := svc.List(ctx, &domain.Identity{UserID: 1})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Event)
}

func TestBookingService_Check(t *testing.T) {
	svc, events := newBookingService(t)
	ctx := context.Background()

	event, err := events.Create(ctx, validEventInput())
	require.NoError(t, err)

	booking, err := svc.Check(ctx, 1, event.ID)
	require.NoError(t, err)
	assert.Nil(t, booking)

	booked, err := svc.Book(ctx, 1, event.ID)
	require.NoError(t, err)

	booking, err = svc.Check(ctx, 1, event.ID)
	require.NoError(t, err)
	require.NotNil(t, booking)
	assert.Equal(t, booked.Booking.ID, booking.ID)
}
