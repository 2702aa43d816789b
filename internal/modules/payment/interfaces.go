package payment

import (
	"context"

	"moorehotels/internal/domain"
)

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	ListPendingRefunds(ctx context.Context) ([]domain.Booking, error)
}

type GuestDirectory interface {
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
}

// Gateway is the external payment oracle. Verification is the only question
// this system ever asks it; money movement stays outside.
type Gateway interface {
	VerifyPayment(ctx context.Context, reference string) (bool, error)
	GatewayLink(bookingCode string, amount float64, email string) string
	TransferInstructions() string
}

type AuditSink interface {
	Record(ctx context.Context, actorID int64, actorName, action, entityType, entityID string, before, after any)
}

type NotificationSender interface {
	PaymentConfirmed(b *domain.Booking, guest *domain.Guest, reference string)
	RefundCompleted(b *domain.Booking, guest *domain.Guest, reference string)
}
