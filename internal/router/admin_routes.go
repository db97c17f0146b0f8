package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/handler"
	"github.com/tirtadhi/ZOEHotel/internal/middleware"
)

// RegisterAdmin registers the staff dashboard under /v1/admin. The
// admin role is enforced on the whole group on top of JWT auth.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, authMW echo.MiddlewareFunc) {
	g := e.Group("/v1/admin", authMW, middleware.RequireRole("admin"))

	g.GET("/dashboard", a.Dashboard)
	g.GET("/bookings", a.ListAllBookings)
	g.POST("/bookings/:id/complete", a.CompleteBooking)
	g.GET("/messages", a.ListMessages)
}
