package model

// RoomCategory classifies a room for catalog filtering. The values
// mirror the categories shown on the public room listing.
type RoomCategory string

// Room categories available in the catalog.
const (
	CategoryStandard RoomCategory = "standard"
	CategoryDeluxe   RoomCategory = "deluxe"
	CategorySuite    RoomCategory = "suite"
	CategoryFamily   RoomCategory = "family"
)

// Room represents a catalog entry for a bookable hotel room. Rooms are
// seeded at startup and never mutated afterwards; bookings take a
// snapshot of the fields they need at creation time, so later catalog
// edits can never change an existing booking.
//
// Fields:
//  ID           – catalog identifier.
//  Name         – display name (e.g. "Deluxe Double Room").
//  Description  – marketing description shown on the detail page.
//  Price        – nightly rate in rupiah, no minor units.
//  Capacity     – maximum number of guests (>= 1).
//  Size         – floor area in square meters.
//  BedType      – bed configuration label.
//  Images       – ordered image URLs for the gallery.
//  Amenities    – amenity labels.
//  Availability – whether the room can currently be booked.
//  Rating       – average review score, 0..5.
//  Reviews      – number of reviews behind the rating.
//  Category     – catalog category for filtering.
type Room struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	Price        int64        `json:"price"`
	Capacity     int          `json:"capacity"`
	Size         int          `json:"size"`
	BedType      string       `json:"bed_type"`
	Images       []string     `json:"images"`
	Amenities    []string     `json:"amenities"`
	Availability bool         `json:"availability"`
	Rating       float64      `json:"rating"`
	Reviews      int          `json:"reviews"`
	Category     RoomCategory `json:"category"`
}
