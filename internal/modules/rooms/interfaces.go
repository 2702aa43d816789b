package rooms

import (
	"context"
	"time"

	"moorehotels/internal/domain"
)

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetByRoomNumber(ctx context.Context, number string) (*domain.Room, error)
	List(ctx context.Context, onlyOnline bool) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
}

type BookingRepository interface {
	HasOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	ListBookedRoomIDs(ctx context.Context, start, end time.Time) ([]int64, error)
}
