package audit

import (
	"context"
	"log"

	"moorehotels/internal/domain"
)

type Repository interface {
	Add(ctx context.Context, a *domain.AuditLog) error
	List(ctx context.Context, limit int) ([]domain.AuditLog, error)
}

// Service writes the audit trail. Record swallows storage errors so a failed
// audit write can never roll back the lifecycle transition it describes.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Record(ctx context.Context, actorID int64, actorName, action, entityType, entityID string, before, after any) {
	entry := &domain.AuditLog{
		ActorID:    actorID,
		ActorName:  actorName,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		OldData:    before,
		NewData:    after,
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		log.Printf("audit: write failed action=%s entity=%s/%s: %v", action, entityType, entityID, err)
	}
}

func (s *Service) List(ctx context.Context, limit int) ([]domain.AuditLog, error) {
	return s.repo.List(ctx, limit)
}
