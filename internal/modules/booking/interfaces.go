package booking

import (
	"context"
	"time"

	"moorehotels/internal/domain"
)

// BookingRepository is the storage contract for bookings. Create must check
// the interval and insert atomically with respect to concurrent callers.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCode(ctx context.Context, code string) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	HasOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	List(ctx context.Context) ([]domain.Booking, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error
}

// GuestDirectory finds or creates the guest for a booking request and looks
// up existing guests for side-effect payloads.
type GuestDirectory interface {
	Resolve(ctx context.Context, email, firstName, lastName, phone string) (*domain.Guest, error)
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
}

type StayRecorder interface {
	Add(ctx context.Context, rec *domain.StayRecord) error
}

// AuditSink receives before/after snapshots of lifecycle transitions. Write
// failures must never fail the transition itself.
type AuditSink interface {
	Record(ctx context.Context, actorID int64, actorName, action, entityType, entityID string, before, after any)
}

// NotificationSender dispatches side effects after a transition has
// committed. Implementations run asynchronously; errors stay internal.
type NotificationSender interface {
	BookingCreated(b *domain.Booking, guest *domain.Guest, room *domain.Room)
	BookingCancelled(b *domain.Booking, guest *domain.Guest, roomName, reason string)
	RefundRequired(b *domain.Booking, guest *domain.Guest, roomName string)
	CheckedOut(b *domain.Booking, guest *domain.Guest)
}
