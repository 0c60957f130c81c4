package dto

import (
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/service"
)

// UserResponse is the external shape of a user. The credential hash
// never leaves the process.
type UserResponse struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type CategoryResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type EventResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	Date        string  `json:"date"`
	Venue       string  `json:"venue"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"created_at"`
}

type BookingResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"user_id"`
	EventID         int64  `json:"event_id"`
	ReferenceNumber string `json:"reference_number"`
	CreatedAt       string `json:"created_at"`
}

type BookingWithEventResponse struct {
	BookingResponse
	Event *EventResponse `json:"event"`
}

type CheckBookingResponse struct {
	IsBooked bool             `json:"is_booked"`
	Booking  *BookingResponse `json:"booking,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:   c.ID,
		Name: c.Name,
		Icon: c.Icon,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		CategoryID:  e.CategoryID,
		Date:        e.Date.Format(time.RFC3339),
		Venue:       e.Venue,
		Address:     e.Address,
		Price:       e.Price,
		Capacity:    e.Capacity,
		Image:       e.Image,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:              b.ID,
		UserID:          b.UserID,
		EventID:         b.EventID,
		ReferenceNumber: b.ReferenceNumber,
		CreatedAt:       b.CreatedAt.Format(time.RFC3339),
	}
}

func ToBookingWithEventResponse(bwe *service.BookingWithEvent) BookingWithEventResponse {
	resp := BookingWithEventResponse{
		BookingResponse: ToBookingResponse(bwe.Booking),
	}
	if bwe.Event != nil {
		event := ToEventResponse(bwe.Event)
		resp.Event = &event
	}
	return resp
}
