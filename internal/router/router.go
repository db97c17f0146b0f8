// Package router wires HTTP routes onto the Echo instance. Routes are
// grouped by audience: public browse endpoints, authenticated guest
// endpoints and the admin surface.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/handler"
)

// RegisterRoutes registers routes that require no authentication at
// all. Currently that is only the health check, used by load balancers
// to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints under /v1/auth
// plus the authenticated /v1/me profile endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, authMW echo.MiddlewareFunc) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/logout", a.Logout)

	e.GET("/v1/me", a.Me, authMW)
}
