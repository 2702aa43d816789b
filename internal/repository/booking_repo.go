package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"moorehotels/internal/domain"

	"gorm.io/gorm"
)

// ErrOverlap is returned by Create when the requested interval collides with
// an existing blocking booking for the same room. The check and the insert
// run in one transaction so two concurrent requests cannot both pass.
var ErrOverlap = errors.New("room interval overlap")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	BookingCode          string    `gorm:"column:booking_code;uniqueIndex"`
	RoomID               int64     `gorm:"column:room_id;index"`
	GuestID              string    `gorm:"column:guest_id;index"`
	CheckIn              time.Time `gorm:"column:check_in"`
	CheckOut             time.Time `gorm:"column:check_out"`
	Status               string    `gorm:"column:status;index"`
	Amount               float64   `gorm:"column:amount"`
	PaymentStatus        string    `gorm:"column:payment_status;index"`
	PaymentMethod        *string   `gorm:"column:payment_method"`
	TransactionReference *string   `gorm:"column:transaction_reference"`
	Notes                *string   `gorm:"column:notes"`
	StatusHistory        string    `gorm:"column:status_history;type:text"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var method, ref, notes string
	if m.PaymentMethod != nil {
		method = *m.PaymentMethod
	}
	if m.TransactionReference != nil {
		ref = *m.TransactionReference
	}
	if m.Notes != nil {
		notes = *m.Notes
	}

	var history []domain.HistoryEntry
	if m.StatusHistory != "" {
		_ = json.Unmarshal([]byte(m.StatusHistory), &history)
	}

	return &domain.Booking{
		ID:                   m.ID,
		BookingCode:          m.BookingCode,
		RoomID:               m.RoomID,
		GuestID:              m.GuestID,
		CheckIn:              m.CheckIn,
		CheckOut:             m.CheckOut,
		Status:               domain.BookingStatus(m.Status),
		Amount:               m.Amount,
		PaymentStatus:        domain.PaymentStatus(m.PaymentStatus),
		PaymentMethod:        domain.PaymentMethod(method),
		TransactionReference: ref,
		Notes:                notes,
		History:              history,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var method, ref, notes *string
	if b.PaymentMethod != "" {
		v := string(b.PaymentMethod)
		method = &v
	}
	if b.TransactionReference != "" {
		v := b.TransactionReference
		ref = &v
	}
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	history := "[]"
	if b.History != nil {
		if data, err := json.Marshal(b.History); err == nil {
			history = string(data)
		}
	}

	return bookingModel{
		ID:                   b.ID,
		BookingCode:          b.BookingCode,
		RoomID:               b.RoomID,
		GuestID:              b.GuestID,
		CheckIn:              b.CheckIn,
		CheckOut:             b.CheckOut,
		Status:               string(b.Status),
		Amount:               b.Amount,
		PaymentStatus:        string(b.PaymentStatus),
		PaymentMethod:        method,
		TransactionReference: ref,
		Notes:                notes,
		StatusHistory:        history,
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

// Create inserts the booking after re-checking the interval inside the same
// transaction. On Postgres the bookings table additionally carries the
// idx_no_overbooking exclusion constraint as a second line of defence; a
// 23505 from it is surfaced unchanged for the service to classify.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cnt int64
		q := tx.Model(&bookingModel{}).
			Where("room_id = ?", m.RoomID).
			Where("status NOT IN ?", []string{string(domain.BookingCancelled), string(domain.BookingCheckedOut)}).
			Where("check_in < ? AND check_out > ?", m.CheckOut, m.CheckIn).
			Count(&cnt)
		if q.Error != nil {
			return q.Error
		}
		if cnt > 0 {
			return ErrOverlap
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return err
	}

	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).Where("booking_code = ?", code).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// Update persists every mutable column, including the history log. The
// history column is only ever replaced with a superset of its prior value.
func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).Where("id = ?", m.ID).
		Updates(map[string]any{
			"status":                m.Status,
			"payment_status":        m.PaymentStatus,
			"transaction_reference": m.TransactionReference,
			"notes":                 m.Notes,
			"status_history":        m.StatusHistory,
			"updated_at":            time.Now().UTC(),
		})
	return tx.Error
}

// HasOverlap reports whether any blocking booking collides with [start, end)
// for the room. Half-open interval semantics: back-to-back stays touch but
// do not conflict.
func (r *BookingRepository) HasOverlap(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status NOT IN ?", []string{string(domain.BookingCancelled), string(domain.BookingCheckedOut)}).
		Where("check_in < ? AND check_out > ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

func (r *BookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListPendingRefunds(ctx context.Context) ([]domain.Booking, error) {
	var ms []bookingModel
	tx := r.db.WithContext(ctx).
		Where("status = ? AND payment_status = ?", string(domain.BookingCancelled), string(domain.PaymentRefundPending)).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// ListBookedRoomIDs returns the distinct rooms holding a blocking booking
// that overlaps [start, end). Used by room search.
func (r *BookingRepository) ListBookedRoomIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).Model(&bookingModel{}).
		Distinct("room_id").
		Where("status NOT IN ?", []string{string(domain.BookingCancelled), string(domain.BookingCheckedOut)}).
		Where("check_in < ? AND check_out > ?", end, start).
		Pluck("room_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}
