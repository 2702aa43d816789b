package repository

import (
	"context"
	"encoding/json"
	"time"

	"moorehotels/internal/domain"

	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

type auditLogModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	ActorID    int64     `gorm:"column:actor_id;index"`
	ActorName  *string   `gorm:"column:actor_name"`
	Action     string    `gorm:"column:action;index"`
	EntityType string    `gorm:"column:entity_type"`
	EntityID   string    `gorm:"column:entity_id;index"`
	OldData    *string   `gorm:"column:old_data;type:text"`
	NewData    *string   `gorm:"column:new_data;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (auditLogModel) TableName() string { return "audit_logs" }

func marshalJSON(v any) *string {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	s := string(data)
	return &s
}

func (r *AuditLogRepository) Add(ctx context.Context, a *domain.AuditLog) error {
	var name *string
	if a.ActorName != "" {
		v := a.ActorName
		name = &v
	}
	m := auditLogModel{
		ActorID:    a.ActorID,
		ActorName:  name,
		Action:     a.Action,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		OldData:    marshalJSON(a.OldData),
		NewData:    marshalJSON(a.NewData),
		CreatedAt:  time.Now().UTC(),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	a.ID = m.ID
	a.CreatedAt = m.CreatedAt
	return nil
}

func (r *AuditLogRepository) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var ms []auditLogModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AuditLog, 0, len(ms))
	for _, m := range ms {
		entry := domain.AuditLog{
			ID:         m.ID,
			ActorID:    m.ActorID,
			Action:     m.Action,
			EntityType: m.EntityType,
			EntityID:   m.EntityID,
			CreatedAt:  m.CreatedAt,
		}
		if m.ActorName != nil {
			entry.ActorName = *m.ActorName
		}
		if m.OldData != nil {
			var v any
			if err := json.Unmarshal([]byte(*m.OldData), &v); err == nil {
				entry.OldData = v
			}
		}
		if m.NewData != nil {
			var v any
			if err := json.Unmarshal([]byte(*m.NewData), &v); err == nil {
				entry.NewData = v
			}
		}
		out = append(out, entry)
	}
	return out, nil
}
