// Package router wires the HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dinespot/table-reservation/internal/handler"
	"github.com/dinespot/table-reservation/internal/middleware"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Restaurants  *handler.RestaurantHandler
	Reservations *handler.ReservationHandler
	Reviews      *handler.ReviewHandler
	Admin        *handler.AdminHandler
}

// Register mounts all routes on the Echo instance. The browse endpoints are
// public and wrapped in the response cache; the admin reservation listing
// requires a bearer token from /admin/login. The reservation listing and
// cancellation share the /reservations/:id pattern because Echo requires a
// single parameter name per position.
func Register(e *echo.Echo, h Handlers, jwtSecret string, cache echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/restaurants", h.Restaurants.List, cache)
	e.GET("/restaurants/:id", h.Restaurants.Get, cache)

	e.POST("/reservations", h.Reservations.Create)
	e.DELETE("/reservations/:id", h.Reservations.Cancel)
	e.GET("/reservations/:id", h.Reservations.ListByRestaurant, middleware.JWTAuth(jwtSecret))

	e.POST("/reviews", h.Reviews.Create)
	e.GET("/reviews/:id", h.Reviews.List, cache)

	e.POST("/admin/login", h.Admin.Login)
}
