// Package seed loads the default catalog and demo accounts. It is
// invoked exactly once by startup code against explicitly constructed
// stores: there is no hidden global state.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type Stores struct {
	Users      ports.UserRepo
	Categories ports.CategoryRepo
	Events     ports.EventRepo
	Bookings   ports.BookingRepo
}

// Run creates the admin and demo accounts, the category reference
// data, a handful of events and one pre-existing booking for the demo
// user. Credentials are hashed by the user store like any other
// registration.
func Run(ctx context.Context, s Stores, log logger.Logger) error {
	_, err := s.Users.Create(ctx, domain.CreateUserInput{
		Username:  "admin",
		Password:  "admin123",
		FirstName: "Admin",
		LastName:  "User",
		Email:     "admin@eventhub.com",
		IsAdmin:   true,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	user, err := s.Users.Create(ctx, domain.CreateUserInput{
		Username:  "johndoe",
		Password:  "user123",
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
	})
	if err != nil {
		return fmt.Errorf("seed demo user: %w", err)
	}

	categories := []domain.CreateCategoryInput{
		{Name: "Music", Icon: "fas fa-music"},
		{Name: "Technology", Icon: "fas fa-laptop-code"},
		{Name: "Food & Drink", Icon: "fas fa-utensils"},
		{Name: "Education", Icon: "fas fa-graduation-cap"},
		{Name: "Business", Icon: "fas fa-briefcase"},
		{Name: "Health & Fitness", Icon: "fas fa-dumbbell"},
	}
	for _, cat := range categories {
		if _, err = s.Categories.Create(ctx, cat); err != nil {
			return fmt.Errorf("seed category %q: %w", cat.Name, err)
		}
	}

	events := []domain.CreateEventInput{
		{
			Name:        "Annual Tech Conference 2026",
			Description: "The biggest tech event of the year with keynotes, workshops and networking with industry leaders.",
			CategoryID:  2,
			Date:        time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
			Venue:       "Tech Center",
			Address:     "123 Tech Avenue, New York, NY 10001",
			Price:       199,
			Capacity:    500,
			Image:       "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
		},
		{
			Name:        "Summer Music Festival",
			Description: "The best music under the summer sky with top artists and bands from around the world.",
			CategoryID:  1,
			Date:        time.Date(2026, 8, 20, 14, 0, 0, 0, time.UTC),
			Venue:       "Central Park",
			Address:     "Central Park, New York, NY 10022",
			Price:       85,
			Capacity:    2000,
			Image:       "https://images.unsplash.com/photo-1540039155733-5bb30b53aa14",
		},
		{
			Name:        "Food & Wine Festival",
			Description: "Exceptional cuisine from award-winning chefs paired with fine wines.",
			CategoryID:  3,
			Date:        time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
			Venue:       "Grand Hotel",
			Address:     "500 Hotel Drive, Boston, MA 02108",
			Price:       75,
			Capacity:    1000,
			Image:       "https://images.unsplash.com/photo-1414235077428-338989a2e8c0",
		},
		{
			Name:        "Business Leadership Workshop",
			Description: "An intensive one-day leadership workshop for professionals.",
			CategoryID:  5,
			Date:        time.Date(2026, 11, 5, 9, 0, 0, 0, time.UTC),
			Venue:       "Business Center",
			Address:     "789 Corporate Boulevard, Chicago, IL 60601",
			Price:       120,
			Capacity:    100,
			Image:       "https://images.unsplash.com/photo-1558403194-611308249627",
		},
		{
			Name:        "Fitness Expo 2026",
			Description: "The latest fitness trends, equipment and workout techniques from top trainers.",
			CategoryID:  6,
			Date:        time.Date(2026, 10, 28, 10, 0, 0, 0, time.UTC),
			Venue:       "Sports Arena",
			Address:     "123 Stadium Way, Los Angeles, CA 90001",
			Price:       50,
			Capacity:    800,
			Image:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b",
		},
		{
			Name:        "Future of AI Education Seminar",
			Description: "How artificial intelligence is transforming education, with leading researchers.",
			CategoryID:  4,
			Date:        time.Date(2026, 12, 12, 13, 0, 0, 0, time.UTC),
			Venue:       "University Hall",
			Address:     "100 University Drive, San Francisco, CA 94103",
			Price:       0,
			Capacity:    200,
			Image:       "https://images.unsplash.com/photo-1509062522246-3755977927d7",
		},
	}

	var musicFestivalID int64
	for _, evt := range events {
		created, err := s.Events.Create(ctx, evt)
		if err != nil {
			return fmt.Errorf("seed event %q: %w", evt.Name, err)
		}
		if evt.Name == "Summer Music Festival" {
			musicFestivalID = created.ID
		}
	}

	if _, err = s.Bookings.Create(ctx, domain.CreateBookingInput{
		UserID:  user.ID,
		EventID: musicFestivalID,
	}); err != nil {
		return fmt.Errorf("seed booking: %w", err)
	}

	log.Info("seed data loaded",
		logger.Int("categories", len(categories)),
		logger.Int("events", len(events)),
	)

	return nil
}
