package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tirtadhi/ZOEHotel/internal/model"
	"github.com/tirtadhi/ZOEHotel/internal/repository"
)

// RoomHandler exposes the public room catalog. These routes require no
// authentication so guests can browse before signing up; responses sit
// behind the Redis cache middleware since the catalog only changes on
// redeploy.
type RoomHandler struct {
	Rooms *repository.RoomStore
}

func NewRoomHandler(rooms *repository.RoomStore) *RoomHandler {
	if rooms == nil {
		panic("nil room store passed to NewRoomHandler")
	}
	return &RoomHandler{Rooms: rooms}
}

// ListRooms handles GET /v1/rooms. Optional query parameters:
// ?category=standard|deluxe|suite|family filters by category and
// ?available=true restricts to bookable rooms.
func (h *RoomHandler) ListRooms(c echo.Context) error {
	var rooms []model.Room
	if cat := c.QueryParam("category"); cat != "" {
		rooms = h.Rooms.ListByCategory(model.RoomCategory(cat))
	} else if c.QueryParam("available") == "true" {
		rooms = h.Rooms.ListAvailable()
	} else {
		rooms = h.Rooms.List()
	}
	if rooms == nil {
		rooms = []model.Room{}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rooms})
}

// GetRoom handles GET /v1/rooms/:id and returns one catalog entry.
func (h *RoomHandler) GetRoom(c echo.Context) error {
	room, err := h.Rooms.GetByID(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"item": room})
}
