package repository

import (
	"context"
	"time"

	"moorehotels/internal/domain"

	"gorm.io/gorm"
)

type StayRecordRepository struct {
	db *gorm.DB
}

func NewStayRecordRepository(db *gorm.DB) *StayRecordRepository {
	return &StayRecordRepository{db: db}
}

type stayRecordModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	BookingCode  string    `gorm:"column:booking_code;index"`
	GuestID      string    `gorm:"column:guest_id;index"`
	GuestName    string    `gorm:"column:guest_name"`
	RoomID       int64     `gorm:"column:room_id"`
	RoomNumber   string    `gorm:"column:room_number"`
	Action       string    `gorm:"column:action"`
	AuthorizedBy string    `gorm:"column:authorized_by"`
	Timestamp    time.Time `gorm:"column:timestamp"`
}

func (stayRecordModel) TableName() string { return "stay_records" }

func (r *StayRecordRepository) Add(ctx context.Context, rec *domain.StayRecord) error {
	m := stayRecordModel{
		BookingCode:  rec.BookingCode,
		GuestID:      rec.GuestID,
		GuestName:    rec.GuestName,
		RoomID:       rec.RoomID,
		RoomNumber:   rec.RoomNumber,
		Action:       string(rec.Action),
		AuthorizedBy: rec.AuthorizedBy,
		Timestamp:    rec.Timestamp,
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now().UTC()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	rec.ID = m.ID
	rec.Timestamp = m.Timestamp
	return nil
}

func (r *StayRecordRepository) List(ctx context.Context) ([]domain.StayRecord, error) {
	var ms []stayRecordModel
	tx := r.db.WithContext(ctx).Order("timestamp DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.StayRecord, 0, len(ms))
	for _, m := range ms {
		out = append(out, domain.StayRecord{
			ID:           m.ID,
			BookingCode:  m.BookingCode,
			GuestID:      m.GuestID,
			GuestName:    m.GuestName,
			RoomID:       m.RoomID,
			RoomNumber:   m.RoomNumber,
			Action:       domain.StayAction(m.Action),
			AuthorizedBy: m.AuthorizedBy,
			Timestamp:    m.Timestamp,
		})
	}
	return out, nil
}
