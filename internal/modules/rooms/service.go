package rooms

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"moorehotels/internal/cache"
	"moorehotels/internal/domain"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	roomListCacheKey = "rooms:list"
	roomListCacheTTL = 5 * time.Minute
)

type Service struct {
	rooms    RoomRepository
	bookings BookingRepository
	rdb      *redis.Client

	now func() time.Time
}

func NewService(rooms RoomRepository, bookings BookingRepository, rdb *redis.Client) *Service {
	return &Service{
		rooms:    rooms,
		bookings: bookings,
		rdb:      rdb,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CheckAvailability decides whether [checkIn, checkOut) is bookable for the
// room and explains the decision. Dates are calendar days; they are anchored
// to the house check-in/check-out hours before comparison.
func (s *Service) CheckAvailability(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (*AvailabilityResult, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &AvailabilityResult{Available: false, Message: "Room not found in registry."}, nil
		}
		return nil, err
	}

	if room.Status == domain.RoomMaintenance {
		return &AvailabilityResult{Available: false, Message: "Room is currently under maintenance."}, nil
	}
	if !room.IsOnline {
		return &AvailabilityResult{Available: false, Message: fmt.Sprintf("Room %s is currently offline.", room.RoomNumber)}, nil
	}

	start := domain.NormalizeCheckIn(checkIn)
	end := domain.NormalizeCheckOut(checkOut)
	if !start.Before(end) {
		return &AvailabilityResult{
			Available: false,
			Message:   fmt.Sprintf("Invalid range. Standard policy: check-in %d:00, check-out %d:00.", domain.CheckInHour, domain.CheckOutHour),
		}, nil
	}

	// Same-day arrivals cannot take a room someone is standing in right now,
	// regardless of what the calendar says.
	if sameDay(start, s.now()) && room.Status == domain.RoomOccupied {
		return &AvailabilityResult{Available: false, Message: "Room is occupied today; same-day booking is not possible."}, nil
	}

	conflict, err := s.bookings.HasOverlap(ctx, roomID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return &AvailabilityResult{Available: false, Message: "Room is already reserved for the selected dates."}, nil
	}

	return &AvailabilityResult{
		Available: true,
		Message:   fmt.Sprintf("Available (check-in %02d:00, check-out %02d:00).", domain.CheckInHour, domain.CheckOutHour),
	}, nil
}

// IsBookable is the boolean shortcut over CheckAvailability.
func (s *Service) IsBookable(ctx context.Context, roomID int64, checkIn, checkOut time.Time) (bool, error) {
	res, err := s.CheckAvailability(ctx, roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return res.Available, nil
}

func (s *Service) Create(ctx context.Context, req CreateRoomRequest) (*domain.Room, error) {
	number := strings.TrimSpace(req.RoomNumber)
	if number == "" || req.Name == "" || req.PricePerNight < 0 {
		return nil, ErrValidation
	}

	if _, err := s.rooms.GetByRoomNumber(ctx, number); err == nil {
		return nil, ErrRoomExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.RoomAvailable
	}

	room := &domain.Room{
		RoomNumber:    number,
		Name:          req.Name,
		Category:      req.Category,
		Floor:         req.Floor,
		Status:        status,
		PricePerNight: req.PricePerNight,
		Capacity:      req.Capacity,
		Description:   req.Description,
		Amenities:     req.Amenities,
		Images:        req.Images,
		IsOnline:      status != domain.RoomMaintenance,
		CreatedAt:     s.now(),
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return room, nil
}

// Update applies staff edits and keeps status and the online flag coupled:
// maintenance forces the room offline, available forces it online. This is
// the single canonical rule; no other code touches the pairing.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	room.Name = req.Name
	room.Category = req.Category
	room.Floor = req.Floor
	room.Status = req.Status
	room.PricePerNight = req.PricePerNight
	room.Capacity = req.Capacity
	room.Description = req.Description
	room.Amenities = req.Amenities

	switch req.Status {
	case domain.RoomMaintenance:
		room.IsOnline = false
	case domain.RoomAvailable:
		room.IsOnline = true
	default:
		room.IsOnline = req.IsOnline
	}

	if err := s.rooms.Update(ctx, room); err != nil {
		return nil, err
	}
	s.invalidateCache(ctx)
	return room, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return room, nil
}

// List serves the public room catalog, cached briefly in Redis when one is
// configured.
func (s *Service) List(ctx context.Context, onlyOnline bool) ([]domain.Room, error) {
	if onlyOnline {
		var cached []domain.Room
		if hit, err := cache.GetJSON(ctx, s.rdb, roomListCacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rooms, err := s.rooms.List(ctx, onlyOnline)
	if err != nil {
		return nil, err
	}

	if onlyOnline {
		if err := cache.SetJSON(ctx, s.rdb, roomListCacheKey, rooms, roomListCacheTTL); err != nil {
			log.Printf("room list cache write failed: %v", err)
		}
	}
	return rooms, nil
}

// Search filters the online catalog; when a date range is present, rooms
// holding a blocking booking in that range are excluded.
func (s *Service) Search(ctx context.Context, req SearchRequest) ([]domain.Room, error) {
	rooms, err := s.rooms.List(ctx, true)
	if err != nil {
		return nil, err
	}

	booked := map[int64]bool{}
	if req.CheckIn != "" && req.CheckOut != "" {
		inDay, err := time.Parse("2006-01-02", req.CheckIn)
		if err != nil {
			return nil, ErrValidation
		}
		outDay, err := time.Parse("2006-01-02", req.CheckOut)
		if err != nil {
			return nil, ErrValidation
		}
		ids, err := s.bookings.ListBookedRoomIDs(ctx, domain.NormalizeCheckIn(inDay), domain.NormalizeCheckOut(outDay))
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			booked[id] = true
		}
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if booked[r.ID] {
			continue
		}
		if req.Category != "" && r.Category != req.Category {
			continue
		}
		if req.Capacity > 0 && r.Capacity < req.Capacity {
			continue
		}
		if req.RoomNumber != "" && !strings.Contains(r.RoomNumber, req.RoomNumber) {
			continue
		}
		if req.Amenity != "" && !hasAmenity(r.Amenities, req.Amenity) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if err := cache.Delete(ctx, s.rdb, roomListCacheKey); err != nil {
		log.Printf("room list cache invalidation failed: %v", err)
	}
}

func hasAmenity(amenities []string, want string) bool {
	for _, a := range amenities {
		if strings.Contains(strings.ToLower(a), strings.ToLower(want)) {
			return true
		}
	}
	return false
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
