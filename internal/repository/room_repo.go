package repository

import (
	"context"
	"strings"
	"time"

	"moorehotels/internal/domain"
	"moorehotels/internal/pkg/utils"

	"gorm.io/gorm"
)

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

type roomModel struct {
	ID            int64     `gorm:"column:id;primaryKey"`
	RoomNumber    string    `gorm:"column:room_number;uniqueIndex"`
	Name          string    `gorm:"column:name"`
	Category      string    `gorm:"column:category"`
	Floor         int       `gorm:"column:floor"`
	Status        string    `gorm:"column:status"`
	PricePerNight float64   `gorm:"column:price_per_night"`
	Capacity      int       `gorm:"column:capacity"`
	IsOnline      bool      `gorm:"column:is_online"`
	Description   *string   `gorm:"column:description"`
	Amenities     string    `gorm:"column:amenities;type:text"`
	Images        string    `gorm:"column:images;type:text"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (roomModel) TableName() string { return "rooms" }

func toDomainRoom(m roomModel) *domain.Room {
	var desc string
	if m.Description != nil {
		desc = *m.Description
	}
	return &domain.Room{
		ID:            m.ID,
		RoomNumber:    m.RoomNumber,
		Name:          m.Name,
		Category:      domain.RoomCategory(m.Category),
		Floor:         m.Floor,
		Status:        domain.RoomStatus(m.Status),
		PricePerNight: m.PricePerNight,
		Capacity:      m.Capacity,
		IsOnline:      m.IsOnline,
		Description:   desc,
		Amenities:     utils.StringToList(m.Amenities),
		Images:        utils.StringToList(m.Images),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toRoomModel(r *domain.Room) roomModel {
	var desc *string
	if r.Description != "" {
		v := r.Description
		desc = &v
	}
	return roomModel{
		ID:            r.ID,
		RoomNumber:    strings.TrimSpace(r.RoomNumber),
		Name:          r.Name,
		Category:      string(r.Category),
		Floor:         r.Floor,
		Status:        string(r.Status),
		PricePerNight: r.PricePerNight,
		Capacity:      r.Capacity,
		IsOnline:      r.IsOnline,
		Description:   desc,
		Amenities:     utils.ListToString(r.Amenities),
		Images:        utils.ListToString(r.Images),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*room = *toDomainRoom(m)
	return nil
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) GetByRoomNumber(ctx context.Context, number string) (*domain.Room, error) {
	var m roomModel
	tx := r.db.WithContext(ctx).
		Where("room_number = ?", strings.TrimSpace(number)).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRoom(m), nil
}

func (r *RoomRepository) List(ctx context.Context, onlyOnline bool) ([]domain.Room, error) {
	q := r.db.WithContext(ctx).Model(&roomModel{})
	if onlyOnline {
		q = q.Where("is_online = ?", true)
	}
	var ms []roomModel
	if tx := q.Order("room_number").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Room, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRoom(m))
	}
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	m := toRoomModel(room)
	m.UpdatedAt = time.Now().UTC()
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"name":            m.Name,
			"category":        m.Category,
			"floor":           m.Floor,
			"status":          m.Status,
			"price_per_night": m.PricePerNight,
			"capacity":        m.Capacity,
			"is_online":       m.IsOnline,
			"description":     m.Description,
			"amenities":       m.Amenities,
			"images":          m.Images,
			"updated_at":      m.UpdatedAt,
		})
	return tx.Error
}

// UpdateStatus flips only the operational status column. Idempotent: setting
// the same status twice is a harmless no-op at the storage level.
func (r *RoomRepository) UpdateStatus(ctx context.Context, id int64, status domain.RoomStatus) error {
	tx := r.db.WithContext(ctx).Model(&roomModel{}).Where("id = ?", id).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": time.Now().UTC(),
		})
	return tx.Error
}
