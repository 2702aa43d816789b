package domain

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
)

// Terminal reports whether no further lifecycle transition is possible.
func (s BookingStatus) Terminal() bool {
	return s == BookingCheckedOut || s == BookingCancelled
}

// Blocking reports whether a booking in this status still holds its room
// interval. Cancelled and checked-out bookings release the dates.
func (s BookingStatus) Blocking() bool {
	return s != BookingCancelled && s != BookingCheckedOut
}

type PaymentStatus string

const (
	PaymentUnpaid               PaymentStatus = "unpaid"
	PaymentAwaitingVerification PaymentStatus = "awaiting_verification"
	PaymentPaid                 PaymentStatus = "paid"
	PaymentRefundPending        PaymentStatus = "refund_pending"
	PaymentRefunded             PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodGateway        PaymentMethod = "gateway"
	MethodDirectTransfer PaymentMethod = "direct_transfer"
)

// House hours. Date-only inputs are anchored to these fixed UTC instants so
// that every stored interval compares consistently.
const (
	CheckInHour  = 15 // 3:00 PM
	CheckOutHour = 11 // 11:00 AM
)

type Booking struct {
	ID                   int64          `json:"id"`
	BookingCode          string         `json:"booking_code"` // MHS-XXXXXXXX
	RoomID               int64          `json:"room_id" validate:"required"`
	GuestID              string         `json:"guest_id" validate:"required"`
	CheckIn              time.Time      `json:"check_in" validate:"required"`
	CheckOut             time.Time      `json:"check_out" validate:"required"`
	Status               BookingStatus  `json:"status"`
	Amount               float64        `json:"amount"`
	PaymentStatus        PaymentStatus  `json:"payment_status"`
	PaymentMethod        PaymentMethod  `json:"payment_method,omitempty"`
	TransactionReference string         `json:"transaction_reference,omitempty"`
	Notes                string         `json:"notes,omitempty"`
	History              []HistoryEntry `json:"history"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`

	Room  *Room  `json:"room,omitempty"`
	Guest *Guest `json:"guest,omitempty"`
}

// NormalizeCheckIn anchors a calendar date to the house check-in instant.
func NormalizeCheckIn(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), CheckInHour, 0, 0, 0, time.UTC)
}

// NormalizeCheckOut anchors a calendar date to the house check-out instant.
func NormalizeCheckOut(d time.Time) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), CheckOutHour, 0, 0, 0, time.UTC)
}

// Nights counts billable nights between two normalized instants, never less
// than one.
func Nights(checkIn, checkOut time.Time) int {
	inDay := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	outDay := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	n := int(outDay.Sub(inDay).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// IntervalsOverlap reports whether two half-open intervals share any instant.
func IntervalsOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
