package guests

import (
	"context"

	"moorehotels/internal/domain"
)

type GuestRepository interface {
	Create(ctx context.Context, g *domain.Guest) error
	GetByID(ctx context.Context, id string) (*domain.Guest, error)
	GetByEmail(ctx context.Context, email string) (*domain.Guest, error)
	Search(ctx context.Context, term string) ([]domain.Guest, error)
	List(ctx context.Context) ([]domain.Guest, error)
}
