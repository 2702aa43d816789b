package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"moorehotels/internal/domain"
	"moorehotels/internal/pkg/identifier"
	"moorehotels/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PaymentAdvisor supplies the payment path details returned with a freshly
// created booking.
type PaymentAdvisor interface {
	GatewayLink(bookingCode string, amount float64, email string) string
	TransferInstructions() string
}

type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	guests   GuestDirectory
	stays    StayRecorder
	audit    AuditSink
	notifs   NotificationSender
	payments PaymentAdvisor

	now func() time.Time
}

func NewService(
	bookings BookingRepository,
	rooms RoomRepository,
	guests GuestDirectory,
	stays StayRecorder,
	audit AuditSink,
	notifs NotificationSender,
	payments PaymentAdvisor,
) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		guests:   guests,
		stays:    stays,
		audit:    audit,
		notifs:   notifs,
		payments: payments,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

const dateLayout = "2006-01-02"

func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	if strings.TrimSpace(req.GuestEmail) == "" ||
		strings.TrimSpace(req.GuestFirstName) == "" ||
		strings.TrimSpace(req.GuestLastName) == "" ||
		strings.TrimSpace(req.GuestPhone) == "" {
		return nil, ErrValidation
	}

	inDay, err := time.Parse(dateLayout, req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	outDay, err := time.Parse(dateLayout, req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}

	checkIn := domain.NormalizeCheckIn(inDay)
	checkOut := domain.NormalizeCheckOut(outDay)
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if !room.Bookable() {
		return nil, ErrRoomOffline
	}

	guest, err := s.guests.Resolve(ctx, req.GuestEmail, req.GuestFirstName, req.GuestLastName, req.GuestPhone)
	if err != nil {
		return nil, err
	}

	amount := room.PricePerNight * float64(domain.Nights(checkIn, checkOut))

	paymentStatus := domain.PaymentUnpaid
	if req.PaymentMethod == domain.MethodDirectTransfer {
		paymentStatus = domain.PaymentAwaitingVerification
	}

	b := &domain.Booking{
		BookingCode:   identifier.NewBookingCode(),
		RoomID:        room.ID,
		GuestID:       guest.ID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Status:        domain.BookingPending,
		Amount:        amount,
		PaymentStatus: paymentStatus,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		History: []domain.HistoryEntry{{
			Event:     domain.EventCreated,
			Timestamp: s.now(),
			Actor:     guest.FullName(),
		}},
		CreatedAt: s.now(),
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, classifyCreateError(err)
	}
	b.Guest = guest
	b.Room = room

	s.audit.Record(ctx, 0, guest.FullName(), "BOOKING_CREATED", "Booking", b.BookingCode, nil, map[string]any{
		"status": b.Status, "amount": b.Amount,
	})
	s.notifs.BookingCreated(b, guest, room)

	resp := &BookingResponse{Booking: b}
	switch req.PaymentMethod {
	case domain.MethodGateway:
		resp.PaymentURL = s.payments.GatewayLink(b.BookingCode, amount, guest.Email)
	case domain.MethodDirectTransfer:
		resp.PaymentInstruction = s.payments.TransferInstructions()
	}
	return resp, nil
}

// classifyCreateError maps storage-level collision signals onto ErrConflict.
// Two concurrent creates for the same interval lose on either the
// transactional re-check or the Postgres exclusion constraint.
func classifyCreateError(err error) error {
	if errors.Is(err, repository.ErrOverlap) {
		return ErrConflict
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" || pgErr.ConstraintName == "idx_no_overbooking" {
			return ErrConflict
		}
	}
	return err
}

// TransitionStatus drives check-in and check-out. Confirmation happens via
// payment verification and cancellation has its own entry points, so those
// targets are rejected here.
func (s *Service) TransitionStatus(ctx context.Context, bookingID int64, target domain.BookingStatus, actor Actor) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	switch target {
	case domain.BookingCheckedIn:
		return s.checkIn(ctx, b, actor)
	case domain.BookingCheckedOut:
		return s.checkOut(ctx, b, actor)
	default:
		return nil, ErrInvalidTransition
	}
}

func (s *Service) checkIn(ctx context.Context, b *domain.Booking, actor Actor) (*domain.Booking, error) {
	if b.Status != domain.BookingConfirmed {
		return nil, ErrInvalidTransition
	}
	if b.PaymentStatus != domain.PaymentPaid {
		return nil, ErrPaymentRequired
	}

	now := s.now()
	if dayOf(now).Before(dayOf(b.CheckIn)) {
		return nil, ErrEarlyCheckIn
	}
	if now.After(b.CheckOut) {
		return nil, ErrBookingExpired
	}

	oldStatus := b.Status
	b.Status = domain.BookingCheckedIn
	b.History = domain.AppendHistory(b.History, domain.HistoryEntry{
		Event:     domain.EventCheckedIn,
		Timestamp: now,
		Actor:     actor.DisplayName(),
	})
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.syncRoom(ctx, b.RoomID, domain.RoomOccupied)
	s.recordStay(ctx, b, domain.StayCheckIn, actor)
	s.audit.Record(ctx, actor.ID, actor.Name, "LIFECYCLE_TRANSITION", "Booking", b.BookingCode,
		map[string]any{"status": oldStatus}, map[string]any{"status": b.Status})

	return b, nil
}

func (s *Service) checkOut(ctx context.Context, b *domain.Booking, actor Actor) (*domain.Booking, error) {
	if b.Status != domain.BookingCheckedIn {
		return nil, ErrInvalidTransition
	}

	oldStatus := b.Status
	b.Status = domain.BookingCheckedOut
	b.History = domain.AppendHistory(b.History, domain.HistoryEntry{
		Event:     domain.EventCheckedOut,
		Timestamp: s.now(),
		Actor:     actor.DisplayName(),
	})
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.syncRoom(ctx, b.RoomID, domain.RoomCleaning)
	s.recordStay(ctx, b, domain.StayCheckOut, actor)
	s.audit.Record(ctx, actor.ID, actor.Name, "LIFECYCLE_TRANSITION", "Booking", b.BookingCode,
		map[string]any{"status": oldStatus}, map[string]any{"status": b.Status})

	if guest := s.guestOf(ctx, b); guest != nil {
		s.notifs.CheckedOut(b, guest)
	}

	return b, nil
}

// Cancel is the staff entry point. Cancelling an already-cancelled booking
// returns the current state unchanged.
func (s *Service) Cancel(ctx context.Context, bookingID int64, actor Actor, reason string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if reason == "" {
		reason = "Cancelled by staff"
	}
	return s.cancel(ctx, b, actor, reason)
}

// CancelByGuest verifies the booking code and the exact email on file. A
// wrong email surfaces as not-found, deliberately indistinguishable from an
// unknown code, so booking existence is never confirmed to a stranger.
func (s *Service) CancelByGuest(ctx context.Context, code, email, reason string) (*domain.Booking, error) {
	b, err := s.lookupByCodeAndEmail(ctx, code, email)
	if err != nil {
		return nil, err
	}
	if reason == "" {
		reason = "Self-service cancellation"
	}
	return s.cancel(ctx, b, GuestActor, reason)
}

func (s *Service) cancel(ctx context.Context, b *domain.Booking, actor Actor, reason string) (*domain.Booking, error) {
	if b.Status == domain.BookingCancelled {
		return b, nil
	}
	if b.Status == domain.BookingCheckedIn || b.Status == domain.BookingCheckedOut {
		return nil, ErrStayActive
	}

	oldStatus := b.Status
	b.Status = domain.BookingCancelled

	refundFlagged := false
	if b.PaymentStatus == domain.PaymentPaid {
		b.PaymentStatus = domain.PaymentRefundPending
		refundFlagged = true
	}

	b.History = domain.AppendHistory(b.History, domain.HistoryEntry{
		Event:        domain.EventCancelled,
		Timestamp:    s.now(),
		Actor:        actor.DisplayName(),
		Reason:       reason,
		PaymentShift: b.PaymentStatus,
	})
	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}

	s.syncRoom(ctx, b.RoomID, domain.RoomAvailable)
	s.audit.Record(ctx, actor.ID, actor.Name, "BOOKING_CANCELLED", "Booking", b.BookingCode,
		map[string]any{"status": oldStatus}, map[string]any{"status": b.Status, "payment_status": b.PaymentStatus})

	guest := s.guestOf(ctx, b)
	roomName := s.roomNameOf(ctx, b)
	s.notifs.BookingCancelled(b, guest, roomName, reason)
	if refundFlagged {
		s.notifs.RefundRequired(b, guest, roomName)
	}

	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	b, err := s.bookings.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetByCodeAndEmail is the guest self-service lookup; same not-found
// signalling as CancelByGuest.
func (s *Service) GetByCodeAndEmail(ctx context.Context, code, email string) (*domain.Booking, error) {
	return s.lookupByCodeAndEmail(ctx, code, email)
}

func (s *Service) List(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.List(ctx)
}

func (s *Service) lookupByCodeAndEmail(ctx context.Context, code, email string) (*domain.Booking, error) {
	b, err := s.bookings.GetByCode(ctx, normalizeCode(code))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	guest := s.guestOf(ctx, b)
	if guest == nil || !strings.EqualFold(guest.Email, strings.TrimSpace(email)) {
		return nil, ErrNotFound
	}
	b.Guest = guest
	return b, nil
}

func (s *Service) syncRoom(ctx context.Context, roomID int64, status domain.RoomStatus) {
	// Occupancy mirrors the lifecycle decision; a failed flip must not undo
	// the committed transition.
	_ = s.rooms.UpdateStatus(ctx, roomID, status)
}

func (s *Service) recordStay(ctx context.Context, b *domain.Booking, action domain.StayAction, actor Actor) {
	guestName := ""
	if guest := s.guestOf(ctx, b); guest != nil {
		guestName = guest.FullName()
	}
	roomNumber := ""
	if room, err := s.rooms.GetByID(ctx, b.RoomID); err == nil {
		roomNumber = room.RoomNumber
	}
	_ = s.stays.Add(ctx, &domain.StayRecord{
		BookingCode:  b.BookingCode,
		GuestID:      b.GuestID,
		GuestName:    guestName,
		RoomID:       b.RoomID,
		RoomNumber:   roomNumber,
		Action:       action,
		AuthorizedBy: actor.DisplayName(),
		Timestamp:    s.now(),
	})
}

func (s *Service) guestOf(ctx context.Context, b *domain.Booking) *domain.Guest {
	if b.Guest != nil {
		return b.Guest
	}
	guest, err := s.guests.GetByID(ctx, b.GuestID)
	if err != nil {
		return nil
	}
	return guest
}

func (s *Service) roomNameOf(ctx context.Context, b *domain.Booking) string {
	if room, err := s.rooms.GetByID(ctx, b.RoomID); err == nil && room.Name != "" {
		return room.Name
	}
	return "Reserved Room"
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
