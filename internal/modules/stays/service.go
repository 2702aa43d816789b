package stays

import (
	"context"

	"moorehotels/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.StayRecord, error)
}

// Service exposes the front-desk register of physical arrivals and
// departures. Writes happen inside the booking transitions.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.StayRecord, error) {
	return s.repo.List(ctx)
}
