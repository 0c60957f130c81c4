package router

import (
	"net/http"

	"github.com/mahmoud1053/EventHub/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Register(c *ginext.Context)
	Login(c *ginext.Context)
	Me(c *ginext.Context)
	ListCategories(c *ginext.Context)
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	UpdateEvent(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	ListBookings(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckBooking(c *ginext.Context)
}

// InitRouter wires the route table. Identify runs globally so every
// handler sees a resolved identity when a valid credential is present;
// the auth tiers below it only gate, never resolve.
func InitRouter(mode string, h Handler, tokens middleware.TokenParser, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)
	router.Use(middleware.Identify(tokens))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.RequireAuth(), h.Me)

		api.GET("/categories", h.ListCategories)

		api.GET("/events", h.ListEvents)
		api.GET("/events/:id", h.GetEvent)

		admin := api.Group("/events", middleware.RequireAuth(), middleware.RequireAdmin())
		admin.POST("", h.CreateEvent)
		admin.PUT("/:id", h.UpdateEvent)
		admin.DELETE("/:id", h.DeleteEvent)

		bookings := api.Group("/bookings", middleware.RequireAuth())
		bookings.GET("", h.ListBookings)
		bookings.POST("", h.CreateBooking)
		bookings.DELETE("/:id", h.CancelBooking)
		bookings.GET("/check/:eventId", h.CheckBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
