package domain

import "time"

type StayAction string

const (
	StayCheckIn  StayAction = "CHECK_IN"
	StayCheckOut StayAction = "CHECK_OUT"
)

// StayRecord is the front-desk register: one row per physical arrival or
// departure, kept separately from the booking itself.
type StayRecord struct {
	ID           int64      `json:"id"`
	BookingCode  string     `json:"booking_code"`
	GuestID      string     `json:"guest_id"`
	GuestName    string     `json:"guest_name"`
	RoomID       int64      `json:"room_id"`
	RoomNumber   string     `json:"room_number"`
	Action       StayAction `json:"action"`
	AuthorizedBy string     `json:"authorized_by"`
	Timestamp    time.Time  `json:"timestamp"`
}
