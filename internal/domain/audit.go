package domain

import "time"

type AuditLog struct {
	ID         int64     `json:"id"`
	ActorID    int64     `json:"actor_id"`
	ActorName  string    `json:"actor_name,omitempty"`
	Action     string    `json:"action"`
	EntityType string    `json:"entity_type"`
	EntityID   string    `json:"entity_id"`
	OldData    any       `json:"old_data,omitempty"`
	NewData    any       `json:"new_data,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
