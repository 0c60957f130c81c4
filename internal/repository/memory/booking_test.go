package memory

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^[A-Z0-9]{2}\d{4}-[A-Z0-9]{8}$`)

func newBookingRepos(t *testing.T) (*BookingRepository, *EventRepository) {
	t.Helper()
	events := NewEventRepository()
	return NewBookingRepository(events), events
}

func TestBookingRepository_Create_GeneratesReference(t *testing.T) {
	bookings, events := newBookingRepos(t)
	ctx := context.Background()

	event, err := events.Create(ctx, newEvent("Summer Music Festival", 1))
	require.NoError(t, err)

	booking, err := bookings.Create(ctx, domain.CreateBookingInput{
		UserID:  1,
		EventID: event.ID,
	})
	require.NoError(t, err)

	assert.Regexp(t, referencePattern, booking.ReferenceNumber)
	prefix := fmt.Sprintf("SU%d-", time.Now().Year())
	assert.Equal(t, prefix, booking.ReferenceNumber[:7])
	assert.Equal(t, int64(1), booking.ID)
	assert.False(t, booking.CreatedAt.IsZero())
}

func TestBookingRepository_Create_FallbackPrefix(t *testing.T) {
	bookings, _ := newBookingRepos(t)

	// event 99 does not exist, so the reference falls back to "EV"
	booking, err := bookings.Create(context.Background(), domain.CreateBookingInput{
		UserID:  1,
		EventID: 99,
	})
	require.NoError(t, err)

	assert.Equal(t, "EV", booking.ReferenceNumber[:2])
	assert.Regexp(t, referencePattern, booking.ReferenceNumber)
}

func TestBookingRepository_Create_KeepsSuppliedReference(t *testing.T) {
	bookings, events := newBookingRepos(t)
	ctx := context.Background()

	event, err := events.Create(ctx, newEvent("Summer Music Festival", 1))
	require.NoError(t, err)

	booking, err := bookings.Create(ctx, domain.CreateBookingInput{
		UserID:          1,
		EventID:         event.ID,
		ReferenceNumber: "MF2026-ABCD1234",
	})
	require.NoError(t, err)

	assert.Equal(t, "MF2026-ABCD1234", booking.ReferenceNumber)
}

func TestBookingRepository_GetByUserAndEvent(t *testing.T) {
	bookings, events := newBookingRepos(t)
	ctx := context.Background()

	event, err := events.Create(ctx, newEvent("Concert", 1))
	require.NoError(t, err)

	created, err := bookings.Create(ctx, domain.CreateBookingInput{UserID: 7, EventID: event.ID})
	require.NoError(t, err)

	found, err := bookings.GetByUserAndEvent(ctx, 7, event.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	_, err = bookings.GetByUserAndEvent(ctx, 8, event.ID)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingRepository_ListByUser(t *testing.T) {
	bookings, events := newBookingRepos(t)
	ctx := context.Background()

	e1, err := events.Create(ctx, newEvent("Concert", 1))
	require.NoError(t, err)
	e2, err := events.Create(ctx, newEvent("Conference", 2))
	require.NoError(t, err)

	_, err = bookings.Create(ctx, domain.CreateBookingInput{UserID: 1, EventID: e1.ID})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, domain.CreateBookingInput{UserID: 2, EventID: e1.ID})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, domain.CreateBookingInput{UserID: 1, EventID: e2.ID})
	require.NoError(t, err)

	all, err := bookings.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	own, err := bookings.ListByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, e1.ID, own[0].EventID)
	assert.Equal(t, e2.ID, own[1].EventID)
}

func TestBookingRepository_Delete(t *testing.T) {
	bookings, events := newBookingRepos(t)
	ctx := context.Background()

	event, err := events.Create(ctx, newEvent("Concert", 1))
	require.NoError(t, err)

	created, err := bookings.Create(ctx, domain.CreateBookingInput{UserID: 1, EventID: event.ID})
	require.NoError(t, err)

	deleted, err := bookings.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = bookings.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
