package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrEventNotFound   = errors.New("event not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrEmailTaken    = errors.New("user with this email already exists")
	ErrAlreadyBooked = errors.New("event is already booked by this user")
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAuthRequired       = errors.New("authentication required")
	ErrAdminRequired      = errors.New("admin privileges required")
	ErrForbidden          = errors.New("no permission to access this booking")
)

var (
	ErrValidation = errors.New("validation error")
)
