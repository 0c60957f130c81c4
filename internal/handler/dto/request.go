package dto

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateEventRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	CategoryID  int64   `json:"category_id"`
	Date        string  `json:"date" binding:"required"`
	Venue       string  `json:"venue" binding:"required"`
	Address     string  `json:"address"`
	Price       float64 `json:"price"`
	Capacity    int     `json:"capacity" binding:"required,gt=0"`
	Image       string  `json:"image"`
}

type UpdateEventRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	CategoryID  *int64   `json:"category_id"`
	Date        *string  `json:"date"`
	Venue       *string  `json:"venue"`
	Address     *string  `json:"address"`
	Price       *float64 `json:"price"`
	Capacity    *int     `json:"capacity"`
	Image       *string  `json:"image"`
}

type CreateBookingRequest struct {
	EventID int64 `json:"event_id"`
}
