package payment

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"moorehotels/internal/domain"
)

type Service struct {
	bookings BookingRepository
	guests   GuestDirectory
	gateway  Gateway
	audit    AuditSink
	notifs   NotificationSender

	now func() time.Time
}

func NewService(bookings BookingRepository, guests GuestDirectory, gateway Gateway, audit AuditSink, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		guests:   guests,
		gateway:  gateway,
		audit:    audit,
		notifs:   notifs,
		now:      time.Now,
	}
}

// ConfirmPayment applies a verified payment to a booking. Calling it twice
// with the same outcome is safe: an already-paid booking is returned as-is.
// A cancelled booking is never resurrected.
func (s *Service) ConfirmPayment(ctx context.Context, bookingCode, reference string, actor Actor) (*domain.Booking, error) {
	bookingCode = strings.ToUpper(strings.TrimSpace(bookingCode))
	if bookingCode == "" || strings.TrimSpace(reference) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByCode(ctx, bookingCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.Status == domain.BookingCancelled {
		return nil, ErrBookingCancelled
	}
	if b.PaymentStatus == domain.PaymentPaid {
		return b, nil
	}

	before := snapshot(b)
	b.PaymentStatus = domain.PaymentPaid
	b.TransactionReference = reference
	b.Status = domain.BookingConfirmed
	b.History = domain.AppendHistory(b.History, domain.HistoryEntry{
		Event:        domain.EventPaymentConfirmed,
		Timestamp:    s.now().UTC(),
		Actor:        actor.DisplayName(),
		Reference:    reference,
		PaymentShift: domain.PaymentPaid,
	})

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor.ID, actor.DisplayName(), "payment.confirm", "booking", b.BookingCode, before, snapshot(b))
	if guest, err := s.guests.GetByID(ctx, b.GuestID); err == nil {
		s.notifs.PaymentConfirmed(b, guest, reference)
	}
	return b, nil
}

// ConfirmPaymentByID is the staff-facing variant keyed by the numeric
// booking id. It resolves the booking code and applies the same idempotent
// confirmation.
func (s *Service) ConfirmPaymentByID(ctx context.Context, bookingID int64, reference string, actor Actor) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.ConfirmPayment(ctx, b.BookingCode, reference, actor)
}

// VerifyAndConfirm handles the simulator/gateway callback: the reference is
// checked with the processor before the booking is touched.
func (s *Service) VerifyAndConfirm(ctx context.Context, bookingCode, reference string) (*domain.Booking, error) {
	ok, err := s.gateway.VerifyPayment(ctx, reference)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrVerification
	}
	return s.ConfirmPayment(ctx, bookingCode, reference, GatewayActor)
}

// CompleteRefund marks a pending refund as executed. Only a booking sitting
// in refund_pending can move; the transition happens at most once.
func (s *Service) CompleteRefund(ctx context.Context, bookingID int64, reference string, actor Actor) (*domain.Booking, error) {
	if strings.TrimSpace(reference) == "" {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.PaymentStatus != domain.PaymentRefundPending {
		return nil, ErrRefundNotPending
	}

	before := snapshot(b)
	b.PaymentStatus = domain.PaymentRefunded
	b.TransactionReference = reference
	b.History = domain.AppendHistory(b.History, domain.HistoryEntry{
		Event:        domain.EventRefundCompleted,
		Timestamp:    s.now().UTC(),
		Actor:        actor.DisplayName(),
		Reference:    reference,
		PaymentShift: domain.PaymentRefunded,
	})

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor.ID, actor.DisplayName(), "payment.refund", "booking", b.BookingCode, before, snapshot(b))
	if guest, err := s.guests.GetByID(ctx, b.GuestID); err == nil {
		s.notifs.RefundCompleted(b, guest, reference)
	}
	return b, nil
}

// ListPendingRefunds is the finance work queue.
func (s *Service) ListPendingRefunds(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListPendingRefunds(ctx)
}

// GatewayLink exposes the redirect URL builder for the booking flow.
func (s *Service) GatewayLink(bookingCode string, amount float64, email string) string {
	return s.gateway.GatewayLink(bookingCode, amount, email)
}

// TransferInstructions returns the static bank details for direct transfers.
func (s *Service) TransferInstructions() string {
	return s.gateway.TransferInstructions()
}

func snapshot(b *domain.Booking) map[string]any {
	return map[string]any{
		"status":         b.Status,
		"payment_status": b.PaymentStatus,
		"reference":      b.TransactionReference,
	}
}
