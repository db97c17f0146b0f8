package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/handler"
)

// RegisterBooking registers the booking lifecycle and checkout
// endpoints. Every route here requires a valid access token.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler, p *handler.PaymentHandler, authMW echo.MiddlewareFunc) {
	g := e.Group("/v1", authMW)

	g.POST("/bookings", b.CreateBooking)
	g.GET("/bookings", b.ListBookings)
	g.GET("/bookings/:id", b.GetBooking)
	g.POST("/bookings/:id/confirm", b.ConfirmBooking)
	g.POST("/bookings/:id/cancel", b.CancelBooking)

	g.GET("/payments/methods", p.ListMethods)
	g.POST("/bookings/:id/payments", p.CreatePayment)
	g.GET("/payments/:id", p.GetPayment)
	g.POST("/payments/:id/resolve", p.ResolvePayment)
}
