package domain

import "time"

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomCleaning    RoomStatus = "cleaning"
	RoomMaintenance RoomStatus = "maintenance"
	RoomReserved    RoomStatus = "reserved"
)

type RoomCategory string

const (
	CategoryStandard  RoomCategory = "standard"
	CategoryBusiness  RoomCategory = "business"
	CategoryExecutive RoomCategory = "executive"
	CategorySuite     RoomCategory = "suite"
)

type Room struct {
	ID            int64        `json:"id"`
	RoomNumber    string       `json:"room_number" validate:"required"`
	Name          string       `json:"name"`
	Category      RoomCategory `json:"category"`
	Floor         int          `json:"floor"`
	Status        RoomStatus   `json:"status"`
	PricePerNight float64      `json:"price_per_night" validate:"gte=0"`
	Capacity      int          `json:"capacity"`
	IsOnline      bool         `json:"is_online"`
	Description   string       `json:"description,omitempty"`
	Amenities     []string     `json:"amenities,omitempty"`
	Images        []string     `json:"images,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// Bookable applies the canonical policy: a room is offered to the public only
// while it is flagged online and not under maintenance. Staff edits keep the
// two in sync (maintenance forces offline, available forces online).
func (r *Room) Bookable() bool {
	return r.IsOnline && r.Status != RoomMaintenance
}
