package rooms

import "moorehotels/internal/domain"

type CreateRoomRequest struct {
	RoomNumber    string              `json:"room_number" binding:"required"`
	Name          string              `json:"name" binding:"required"`
	Category      domain.RoomCategory `json:"category"`
	Floor         int                 `json:"floor"`
	Status        domain.RoomStatus   `json:"status"`
	PricePerNight float64             `json:"price_per_night" binding:"gte=0"`
	Capacity      int                 `json:"capacity"`
	Description   string              `json:"description"`
	Amenities     []string            `json:"amenities"`
	Images        []string            `json:"images"`
}

type UpdateRoomRequest struct {
	Name          string              `json:"name"`
	Category      domain.RoomCategory `json:"category"`
	Floor         int                 `json:"floor"`
	Status        domain.RoomStatus   `json:"status"`
	PricePerNight float64             `json:"price_per_night"`
	Capacity      int                 `json:"capacity"`
	IsOnline      bool                `json:"is_online"`
	Description   string              `json:"description"`
	Amenities     []string            `json:"amenities"`
}

type SearchRequest struct {
	CheckIn    string              `form:"check_in"`  // YYYY-MM-DD
	CheckOut   string              `form:"check_out"` // YYYY-MM-DD
	Category   domain.RoomCategory `form:"category"`
	Capacity   int                 `form:"capacity"`
	RoomNumber string              `form:"room_number"`
	Amenity    string              `form:"amenity"`
}

// AvailabilityResult carries the decision and the human-readable reason; the
// message is part of the contract, not incidental logging.
type AvailabilityResult struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}
