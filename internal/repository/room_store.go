package repository

import (
	"github.com/tirtadhi/ZOEHotel/internal/model"
)

// RoomStore is the in-memory room catalog. Rooms are seeded once at
// construction and treated as immutable afterwards, so reads need no
// locking. Bookings copy the fields they need instead of holding
// references into the catalog.
type RoomStore struct {
	rooms []model.Room
	byID  map[string]*model.Room
}

// NewRoomStore builds a catalog from the given rooms. Passing nil seeds
// the default catalog.
func NewRoomStore(rooms []model.Room) *RoomStore {
	if rooms == nil {
		rooms = SeedRooms()
	}
	s := &RoomStore{rooms: rooms, byID: make(map[string]*model.Room, len(rooms))}
	for i := range s.rooms {
		s.byID[s.rooms[i].ID] = &s.rooms[i]
	}
	return s
}

// GetByID returns the room with the given ID or ErrRoomNotFound.
func (s *RoomStore) GetByID(id string) (model.Room, error) {
	r, ok := s.byID[id]
	if !ok {
		return model.Room{}, ErrRoomNotFound
	}
	return *r, nil
}

// IsAvailable reports whether the room exists and can be booked.
func (s *RoomStore) IsAvailable(id string) bool {
	r, ok := s.byID[id]
	return ok && r.Availability
}

// List returns every room in seed order.
func (s *RoomStore) List() []model.Room {
	out := make([]model.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// ListAvailable returns the rooms whose availability flag is on.
func (s *RoomStore) ListAvailable() []model.Room {
	var out []model.Room
	for _, r := range s.rooms {
		if r.Availability {
			out = append(out, r)
		}
	}
	return out
}

// ListByCategory returns the rooms in the given category, seed order.
func (s *RoomStore) ListByCategory(cat model.RoomCategory) []model.Room {
	var out []model.Room
	for _, r := range s.rooms {
		if r.Category == cat {
			out = append(out, r)
		}
	}
	return out
}

// Count returns the total number of rooms in the catalog.
func (s *RoomStore) Count() int { return len(s.rooms) }
