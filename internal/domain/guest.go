package domain

import "time"

type Guest struct {
	ID        string    `json:"id"` // GS-XXXXXX
	FirstName string    `json:"first_name" validate:"required"`
	LastName  string    `json:"last_name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"required,phone"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
