package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mahmoud1053/EventHub/internal/domain"
	"github.com/mahmoud1053/EventHub/internal/handler/dto"
	"github.com/mahmoud1053/EventHub/internal/middleware"
	"github.com/mahmoud1053/EventHub/internal/service"
	"github.com/wb-go/wbf/ginext"
)

type AuthSvc interface {
	Register(ctx context.Context, input domain.CreateUserInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Me(ctx context.Context, userID int64) (*domain.User, error)
}

type CatalogSvc interface {
	ListCategories(ctx context.Context) ([]*domain.Category, error)
	ListEvents(ctx context.Context, categoryID *int64) ([]*domain.Event, error)
	GetEvent(ctx context.Context, id int64) (*domain.Event, error)
	CreateEvent(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error)
	UpdateEvent(ctx context.Context, id int64, input domain.UpdateEventInput) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type BookingSvc interface {
	Book(ctx context.Context, userID, eventID int64) (*service.BookingWithEvent, error)
	Cancel(ctx context.Context, identity *domain.Identity, bookingID int64) error
	List(ctx context.Context, identity *domain.Identity) ([]*service.BookingWithEvent, error)
	Check(ctx context.Context, userID, eventID int64) (*domain.Booking, error)
}

type Handler struct {
	authService    AuthSvc
	catalogService CatalogSvc
	bookingService BookingSvc
}

func NewHandler(authService AuthSvc, catalogService CatalogSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		authService:    authService,
		catalogService: catalogService,
		bookingService: bookingService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, tok, err := h.authService.Register(c.Request.Context(), domain.CreateUserInput{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: tok,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, tok, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		User:  dto.ToUserResponse(user),
		Token: tok,
	})
}

func (h *Handler) Me(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrAuthRequired.Error()})
		return
	}

	user, err := h.authService.Me(c.Request.Context(), identity.UserID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Categories

func (h *Handler) ListCategories(c *ginext.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		resp = append(resp, dto.ToCategoryResponse(cat))
	}

	c.JSON(http.StatusOK, resp)
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid categoryId"})
			return
		}
		categoryID = &id
	}

	events, err := h.catalogService.ListEvents(c.Request.Context(), categoryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	event, err := h.catalogService.GetEvent(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected RFC3339",
		})
		return
	}

	event, err := h.catalogService.CreateEvent(c.Request.Context(), domain.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Date:        date,
		Venue:       req.Venue,
		Address:     req.Address,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Image:       req.Image,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.UpdateEventInput{
		Name:        req.Name,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Venue:       req.Venue,
		Address:     req.Address,
		Price:       req.Price,
		Capacity:    req.Capacity,
		Image:       req.Image,
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected RFC3339",
			})
			return
		}
		input.Date = &date
	}

	event, err := h.catalogService.UpdateEvent(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.catalogService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

// Bookings

func (h *Handler) ListBookings(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrAuthRequired.Error()})
		return
	}

	bookings, err := h.bookingService.List(c.Request.Context(), identity)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingWithEventResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingWithEventResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrAuthRequired.Error()})
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	if req.EventID == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "event_id is required"})
		return
	}

	booked, err := h.bookingService.Book(c.Request.Context(), identity.UserID, req.EventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingWithEventResponse(booked))
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrAuthRequired.Error()})
		return
	}

	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.bookingService.Cancel(c.Request.Context(), identity, id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) CheckBooking(c *ginext.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: domain.ErrAuthRequired.Error()})
		return
	}

	eventID, ok := pathID(c, "eventId")
	if !ok {
		return
	}

	booking, err := h.bookingService.Check(c.Request.Context(), identity.UserID, eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.CheckBookingResponse{IsBooked: booking != nil}
	if booking != nil {
		b := dto.ToBookingResponse(booking)
		resp.Booking = &b
	}

	c.JSON(http.StatusOK, resp)
}

func pathID(c *ginext.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyBooked):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
