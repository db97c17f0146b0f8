package router

import (
	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/handler"
)

// RegisterPublic registers the unauthenticated browse endpoints: the
// room catalog and the contact form. cacheMW may be nil when response
// caching is disabled; when set it is applied to the catalog reads
// only, never to the contact form.
func RegisterPublic(e *echo.Echo, rooms *handler.RoomHandler, contact *handler.ContactHandler, cacheMW echo.MiddlewareFunc) {
	g := e.Group("/v1")
	if cacheMW != nil {
		g.GET("/rooms", rooms.ListRooms, cacheMW)
		g.GET("/rooms/:id", rooms.GetRoom, cacheMW)
	} else {
		g.GET("/rooms", rooms.ListRooms)
		g.GET("/rooms/:id", rooms.GetRoom)
	}
	g.POST("/contact", contact.SubmitMessage)
}
