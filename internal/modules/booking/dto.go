package booking

import "moorehotels/internal/domain"

type CreateBookingRequest struct {
	RoomID         int64                `json:"room_id" binding:"required"`
	GuestFirstName string               `json:"guest_first_name" binding:"required"`
	GuestLastName  string               `json:"guest_last_name" binding:"required"`
	GuestEmail     string               `json:"guest_email" binding:"required,email"`
	GuestPhone     string               `json:"guest_phone" binding:"required"`
	CheckIn        string               `json:"check_in" binding:"required"` // YYYY-MM-DD
	CheckOut       string               `json:"check_out" binding:"required"`
	PaymentMethod  domain.PaymentMethod `json:"payment_method"`
	Notes          string               `json:"notes"`
}

type TransitionRequest struct {
	Status domain.BookingStatus `json:"status" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

type GuestCancelRequest struct {
	BookingCode string `json:"booking_code" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Reason      string `json:"reason"`
}

// Actor identifies who performed a transition, for history and audit rows.
type Actor struct {
	ID   int64
	Name string
}

var GuestActor = Actor{ID: 0, Name: "Guest"}

func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return "System"
}

type BookingResponse struct {
	Booking            *domain.Booking `json:"booking"`
	PaymentURL         string          `json:"payment_url,omitempty"`
	PaymentInstruction string          `json:"payment_instruction,omitempty"`
}
