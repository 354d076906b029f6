package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/movie-booking-assistant/internal/handler"
)

// RegisterRoutes registers routes that exist on every deployment of the
// service.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// The /healthz endpoint can be used by load balancers or monitoring
	// systems to verify that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterChat registers the conversational endpoints.  The optional
// rateLimit middleware is applied only to the message route, since that
// is the one that drives the dialogue engine and external catalog.
func RegisterChat(e *echo.Echo, h *handler.ChatHandler, rateLimit echo.MiddlewareFunc) {
	g := e.Group("/v1/sessions")
	if rateLimit != nil {
		g.POST("/:id/messages", h.PostMessage, rateLimit)
	} else {
		g.POST("/:id/messages", h.PostMessage)
	}
	g.GET("/:id", h.GetSession)
	g.DELETE("/:id", h.DeleteSession)
}

// RegisterBrowse registers the read-only catalog and ledger endpoints.
// These routes never mutate state and are not rate limited.
func RegisterBrowse(e *echo.Echo, b *handler.BrowseHandler, bk *handler.BookingHandler) {
	e.GET("/v1/movies", b.GetMovies)
	e.GET("/v1/theaters", b.GetTheaters)
	e.GET("/v1/bookings/:id", bk.GetBooking)
}
