package payment

// ConfirmRequest is the gateway callback payload.
type ConfirmRequest struct {
	BookingCode string `json:"booking_code" binding:"required"`
	Reference   string `json:"reference" binding:"required"`
}

// VerifyRequest comes from staff confirming a direct bank transfer.
type VerifyRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// RefundRequest marks a pending refund as executed.
type RefundRequest struct {
	Reference string `json:"reference" binding:"required"`
}

// Actor identifies who triggered a payment-side change.
type Actor struct {
	ID   int64
	Name string
}

// GatewayActor is used when the callback arrives from the processor itself.
var GatewayActor = Actor{Name: "payment-gateway"}

func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return "system"
}
