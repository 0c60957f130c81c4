package domain

import "time"

type Event struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"category_id"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	Address     string    `json:"address"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventInput struct {
	Name        string
	Description string
	CategoryID  int64
	Date        time.Time
	Venue       string
	Address     string
	Price       float64
	Capacity    int
	Image       string
}

// UpdateEventInput carries a partial update: nil fields keep the
// stored value.
type UpdateEventInput struct {
	Name        *string
	Description *string
	CategoryID  *int64
	Date        *time.Time
	Venue       *string
	Address     *string
	Price       *float64
	Capacity    *int
	Image       *string
}
