package guests

import (
	"context"
	"errors"
	"strings"

	"moorehotels/internal/domain"
	"moorehotels/internal/pkg/identifier"
	"moorehotels/internal/pkg/validator"

	"gorm.io/gorm"
)

type Service struct {
	guests GuestRepository
}

func NewService(guests GuestRepository) *Service {
	return &Service{guests: guests}
}

// Resolve is a find-or-create keyed by normalized email. Calling it twice
// with the same email returns the same guest; contact fields of an existing
// guest are left untouched.
func (s *Service) Resolve(ctx context.Context, email, firstName, lastName, phone string) (*domain.Guest, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, ErrValidation
	}

	existing, err := s.guests.GetByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	g := &domain.Guest{
		ID:        identifier.NewGuestID(),
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     email,
		Phone:     strings.TrimSpace(phone),
	}
	if violations := validator.Validate(g); violations != nil {
		return nil, ErrValidation
	}

	if err := s.guests.Create(ctx, g); err != nil {
		// Lost a race against a concurrent resolve for the same email; the
		// unique index on email guarantees a single winner.
		if retry, lookupErr := s.guests.GetByEmail(ctx, email); lookupErr == nil {
			return retry, nil
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	g, err := s.guests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *Service) Search(ctx context.Context, term string) ([]domain.Guest, error) {
	if strings.TrimSpace(term) == "" {
		return s.guests.List(ctx)
	}
	return s.guests.Search(ctx, term)
}

func (s *Service) List(ctx context.Context) ([]domain.Guest, error) {
	return s.guests.List(ctx)
}
