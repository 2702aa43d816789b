package repository

import (
	"context"
	"strings"
	"time"

	"moorehotels/internal/domain"

	"gorm.io/gorm"
)

type GuestRepository struct {
	db *gorm.DB
}

func NewGuestRepository(db *gorm.DB) *GuestRepository {
	return &GuestRepository{db: db}
}

type guestModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	Phone     string    `gorm:"column:phone"`
	AvatarURL *string   `gorm:"column:avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (guestModel) TableName() string { return "guests" }

func toDomainGuest(m guestModel) *domain.Guest {
	var avatar string
	if m.AvatarURL != nil {
		avatar = *m.AvatarURL
	}
	return &domain.Guest{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Email:     m.Email,
		Phone:     m.Phone,
		AvatarURL: avatar,
		CreatedAt: m.CreatedAt,
	}
}

func toGuestModel(g *domain.Guest) guestModel {
	var avatar *string
	if g.AvatarURL != "" {
		v := g.AvatarURL
		avatar = &v
	}
	return guestModel{
		ID:        g.ID,
		FirstName: strings.TrimSpace(g.FirstName),
		LastName:  strings.TrimSpace(g.LastName),
		Email:     strings.ToLower(strings.TrimSpace(g.Email)),
		Phone:     strings.TrimSpace(g.Phone),
		AvatarURL: avatar,
		CreatedAt: g.CreatedAt,
	}
}

func (r *GuestRepository) Create(ctx context.Context, g *domain.Guest) error {
	m := toGuestModel(g)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*g = *toDomainGuest(m)
	return nil
}

func (r *GuestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).Where("id = ?", id).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	var m guestModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainGuest(m), nil
}

func (r *GuestRepository) Search(ctx context.Context, term string) ([]domain.Guest, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	var ms []guestModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?", like, like, like).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}

func (r *GuestRepository) List(ctx context.Context) ([]domain.Guest, error) {
	var ms []guestModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Guest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainGuest(m))
	}
	return out, nil
}
