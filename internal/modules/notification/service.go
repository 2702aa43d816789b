package notification

import (
	"context"
	"fmt"
	"time"

	"moorehotels/internal/domain"
)

type Repository interface {
	Add(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

// Service fans a lifecycle event out to three sinks: the persisted staff
// inbox, the live dashboard sockets, and guest email. All delivery runs on
// the dispatcher so the lifecycle transition never waits on it.
type Service struct {
	repo       Repository
	hub        *Hub
	mailer     EmailSender
	dispatcher *Dispatcher
}

func NewService(repo Repository, hub *Hub, mailer EmailSender, dispatcher *Dispatcher) *Service {
	return &Service{repo: repo, hub: hub, mailer: mailer, dispatcher: dispatcher}
}

func (s *Service) BookingCreated(b *domain.Booking, guest *domain.Guest, room *domain.Room) {
	roomName := ""
	if room != nil {
		roomName = room.Name
	}
	s.emit(domain.NotifBookingCreated,
		fmt.Sprintf("New booking %s", b.BookingCode),
		fmt.Sprintf("%s booked %s, %s to %s",
			guestName(guest), roomName,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02")),
		map[string]any{"booking_code": b.BookingCode, "room_id": b.RoomID})

	s.email(guest, fmt.Sprintf("Booking %s received", b.BookingCode),
		fmt.Sprintf("Dear %s,\n\nYour booking %s for %s (%s to %s) has been received. Total: %.2f.\n\nMoore Hotel and Suites",
			guestName(guest), b.BookingCode, roomName,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02"), b.Amount))
}

func (s *Service) PaymentConfirmed(b *domain.Booking, guest *domain.Guest, reference string) {
	s.emit(domain.NotifPaymentConfirmed,
		fmt.Sprintf("Payment confirmed for %s", b.BookingCode),
		fmt.Sprintf("Reference %s, amount %.2f", reference, b.Amount),
		map[string]any{"booking_code": b.BookingCode, "reference": reference})

	s.email(guest, fmt.Sprintf("Booking %s confirmed", b.BookingCode),
		fmt.Sprintf("Dear %s,\n\nYour payment for booking %s has been confirmed. We look forward to your stay.\n\nMoore Hotel and Suites",
			guestName(guest), b.BookingCode))
}

func (s *Service) BookingCancelled(b *domain.Booking, guest *domain.Guest, roomName, reason string) {
	msg := fmt.Sprintf("%s cancelled booking for %s", guestName(guest), roomName)
	if reason != "" {
		msg += ": " + reason
	}
	s.emit(domain.NotifBookingCancelled,
		fmt.Sprintf("Booking %s cancelled", b.BookingCode), msg,
		map[string]any{"booking_code": b.BookingCode, "room_id": b.RoomID})

	s.email(guest, fmt.Sprintf("Booking %s cancelled", b.BookingCode),
		fmt.Sprintf("Dear %s,\n\nYour booking %s has been cancelled.\n\nMoore Hotel and Suites",
			guestName(guest), b.BookingCode))
}

func (s *Service) RefundRequired(b *domain.Booking, guest *domain.Guest, roomName string) {
	recipient := "the guest"
	if guest != nil && guest.Email != "" {
		recipient = guest.Email
	}
	s.emit(domain.NotifRefundRequired,
		fmt.Sprintf("Refund required for %s", b.BookingCode),
		fmt.Sprintf("Paid booking for %s was cancelled; %.2f must be refunded to %s",
			roomName, b.Amount, recipient),
		map[string]any{"booking_code": b.BookingCode, "amount": b.Amount})
}

func (s *Service) RefundCompleted(b *domain.Booking, guest *domain.Guest, reference string) {
	s.emit(domain.NotifRefundCompleted,
		fmt.Sprintf("Refund completed for %s", b.BookingCode),
		fmt.Sprintf("Reference %s, amount %.2f", reference, b.Amount),
		map[string]any{"booking_code": b.BookingCode, "reference": reference})

	s.email(guest, fmt.Sprintf("Refund for booking %s", b.BookingCode),
		fmt.Sprintf("Dear %s,\n\nYour refund of %.2f for booking %s has been processed (ref %s).\n\nMoore Hotel and Suites",
			guestName(guest), b.Amount, b.BookingCode, reference))
}

func (s *Service) CheckedOut(b *domain.Booking, guest *domain.Guest) {
	s.emit(domain.NotifCheckedOut,
		fmt.Sprintf("Guest checked out of booking %s", b.BookingCode),
		fmt.Sprintf("%s has checked out; room %d moved to cleaning", guestName(guest), b.RoomID),
		map[string]any{"booking_code": b.BookingCode, "room_id": b.RoomID})
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.Notification, error) {
	return s.repo.List(ctx, limit)
}

func (s *Service) MarkRead(ctx context.Context, id int64) error {
	return s.repo.MarkRead(ctx, id)
}

// emit persists the staff inbox row and pushes it to connected dashboards.
func (s *Service) emit(typ domain.NotificationType, title, message string, data map[string]any) {
	n := &domain.Notification{
		Type:      typ,
		Title:     title,
		Message:   message,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	s.dispatcher.Enqueue("inbox:"+string(typ), func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.repo.Add(ctx, n); err != nil {
			return err
		}
		s.hub.Broadcast(n)
		return nil
	})
}

// guestName tolerates a nil guest: cancellation and checkout notify after the
// state change has committed, and a failed guest lookup must not surface as a
// failure of the transition itself.
func guestName(g *domain.Guest) string {
	if g == nil {
		return "Guest"
	}
	return g.FullName()
}

func (s *Service) email(guest *domain.Guest, subject, body string) {
	if guest == nil || guest.Email == "" {
		return
	}
	to := guest.Email
	s.dispatcher.Enqueue("email:"+to, func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.mailer.Send(ctx, to, subject, body)
	})
}
